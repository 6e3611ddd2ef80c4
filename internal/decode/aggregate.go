package decode

import (
	"time"

	"github.com/mesh-intelligence/syncparse/pkg/types"
)

// Aggregator folds account rows and metas rows into an ArtifactSet.
// Rows must be added in scan order; merge policies depend on it.
// An Aggregator is not safe for concurrent use.
type Aggregator struct {
	loc *time.Location
	set types.ArtifactSet
}

// NewAggregator returns an Aggregator that renders timestamps in loc.
// A nil loc means UTC.
func NewAggregator(loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &Aggregator{loc: loc}
}

// AddAccount appends a share_info row to the account list.
func (a *Aggregator) AddAccount(row types.AccountRow) {
	a.set.Accounts = append(a.set.Accounts, types.Account{
		Email:     row.Email,
		CreatedAt: time.Unix(row.CreatedAtSeconds, 0).In(a.loc),
	})
}

// AddRecord classifies one metas row on every axis and merges what it
// yields.
func (a *Aggregator) AddRecord(rec types.SyncRecord) {
	// Only the first encrypted entry matters.
	if !a.set.Encrypted && ClassifyEncrypted(rec) == types.EncryptedMarker {
		a.set.Encrypted = true
	}

	switch kind := ClassifySignature(rec.Signature); kind {
	case types.MachineSignature:
		a.set.Machines = append(a.set.Machines, types.Machine{
			Name:    Extract(rec, kind),
			AddedAt: time.Unix(floorDiv(rec.CreatedAtMillis, 1000), 0).In(a.loc),
		})
	case types.RecoveryEmailSignature:
		a.set.RecoveryEmails = append(a.set.RecoveryEmails, Extract(rec, kind))
	case types.ExtensionSignature:
		a.set.Extensions = append(a.set.Extensions, Extract(rec, kind))
	}

	switch kind := ClassifyMarker(rec.Payload); kind {
	case types.FirstNameMarker:
		a.set.FirstName = Extract(rec, kind)
	case types.LastNameMarker:
		a.set.LastName = Extract(rec, kind)
	case types.BirthDayMarker:
		a.set.DateOfBirth.SetDay(Extract(rec, kind))
	case types.BirthYearMarker:
		a.set.DateOfBirth.SetYear(Extract(rec, kind))
	case types.RecoveryPhoneMarker:
		a.set.RecoveryPhone = Extract(rec, kind)
	}

	switch kind := ClassifyURL(rec); kind {
	case types.HTTPURL:
		a.set.HTTPSites = append(a.set.HTTPSites, Extract(rec, kind))
	case types.HTTPSURL:
		a.set.HTTPSSites = append(a.set.HTTPSSites, Extract(rec, kind))
	}
}

// ArtifactSet returns the accumulated set. The Aggregator must not be used
// after this call.
func (a *Aggregator) ArtifactSet() *types.ArtifactSet {
	set := a.set
	a.set = types.ArtifactSet{}
	return &set
}

// Decode builds the ArtifactSet for one database from its account rows and
// its metas rows in scan order.
func Decode(accounts []types.AccountRow, records []types.SyncRecord, loc *time.Location) *types.ArtifactSet {
	agg := NewAggregator(loc)
	for _, row := range accounts {
		agg.AddAccount(row)
	}
	for _, rec := range records {
		agg.AddRecord(rec)
	}
	return agg.ArtifactSet()
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
