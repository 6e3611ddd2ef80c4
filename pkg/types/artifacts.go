package types

import "time"

// TimeLayout is the layout used for every timestamp in a report.
const TimeLayout = "2006-01-02 15:04:05"

// Account is a signed-in sync account and the time the sync store was
// created for it.
type Account struct {
	Email     string
	CreatedAt time.Time
}

// Machine is a device attached to the sync account and the time it was
// first signed in.
type Machine struct {
	Name    string
	AddedAt time.Time
}

// ArtifactSet holds everything recovered from one database. It is built in a
// single pass by the decoder and must be treated as read-only afterwards.
type ArtifactSet struct {
	Accounts       []Account
	Machines       []Machine
	RecoveryEmails []string
	RecoveryPhone  string
	Extensions     []string
	FirstName      string
	LastName       string
	DateOfBirth    DateOfBirth
	HTTPSites      []string
	HTTPSSites     []string
	Encrypted      bool
}

// FullName joins first and last name. It reports false unless both are
// non-empty.
func (a *ArtifactSet) FullName() (string, bool) {
	if a.FirstName == "" || a.LastName == "" {
		return "", false
	}
	return a.FirstName + " " + a.LastName, true
}

// FullInfo returns the full name and the date-of-birth composite. It reports
// false when the full name is not available.
func (a *ArtifactSet) FullInfo() (name, dob string, ok bool) {
	name, ok = a.FullName()
	if !ok {
		return "", "", false
	}
	return name, a.DateOfBirth.String(), true
}

// AllSites returns http sites followed by https sites. It returns nil when
// neither list has entries.
func (a *ArtifactSet) AllSites() []string {
	switch {
	case len(a.HTTPSites) == 0 && len(a.HTTPSSites) == 0:
		return nil
	case len(a.HTTPSSites) == 0:
		return a.HTTPSites
	case len(a.HTTPSites) == 0:
		return a.HTTPSSites
	}
	sites := make([]string, 0, len(a.HTTPSites)+len(a.HTTPSSites))
	sites = append(sites, a.HTTPSites...)
	return append(sites, a.HTTPSSites...)
}
