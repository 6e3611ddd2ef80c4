package report

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/syncparse/pkg/types"
)

// yamlDocument is the YAML form of one ScanResult.
type yamlDocument struct {
	ScanID         string      `yaml:"scan_id"`
	Database       string      `yaml:"database"`
	Error          string      `yaml:"error,omitempty"`
	Accounts       []yamlDated `yaml:"accounts,omitempty"`
	FullName       string      `yaml:"full_name,omitempty"`
	DateOfBirth    *yamlBirth  `yaml:"date_of_birth,omitempty"`
	Machines       []yamlDated `yaml:"machines,omitempty"`
	RecoveryEmails []string    `yaml:"recovery_emails,omitempty"`
	RecoveryPhone  string      `yaml:"recovery_phone,omitempty"`
	Extensions     []string    `yaml:"extensions,omitempty"`
	Sites          []string    `yaml:"sites,omitempty"`
	Encrypted      bool        `yaml:"encrypted"`
}

type yamlDated struct {
	Name string `yaml:"name"`
	Time string `yaml:"time"`
}

type yamlBirth struct {
	Value    string `yaml:"value"`
	Complete bool   `yaml:"complete"`
}

func (c *Context) yamlDocument(r types.ScanResult) yamlDocument {
	doc := yamlDocument{ScanID: r.ID, Database: r.Path}
	if r.Err != nil {
		doc.Error = r.Err.Error()
		return doc
	}

	a := r.Artifacts
	for _, acct := range a.Accounts {
		doc.Accounts = append(doc.Accounts, yamlDated{Name: acct.Email, Time: c.timestamp(acct.CreatedAt)})
	}
	for _, m := range a.Machines {
		doc.Machines = append(doc.Machines, yamlDated{Name: m.Name, Time: c.timestamp(m.AddedAt)})
	}
	doc.FullName, _ = a.FullName()
	if a.DateOfBirth.Observed() {
		doc.DateOfBirth = &yamlBirth{Value: a.DateOfBirth.String(), Complete: a.DateOfBirth.Complete()}
	}
	doc.RecoveryEmails = a.RecoveryEmails
	doc.RecoveryPhone = a.RecoveryPhone
	doc.Extensions = a.Extensions
	doc.Sites = a.AllSites()
	doc.Encrypted = a.Encrypted
	return doc
}

// WriteYAML writes one YAML document per result in the order given.
func WriteYAML(c *Context, results []types.ScanResult) error {
	enc := yaml.NewEncoder(c.Writer(LevelHigh))
	enc.SetIndent(2)
	for _, r := range results {
		if err := enc.Encode(c.yamlDocument(r)); err != nil {
			return fmt.Errorf("encode %s: %w", r.Path, err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return c.Err()
}

// Write renders results in the given format.
func Write(c *Context, format string, results []types.ScanResult) error {
	switch format {
	case types.FormatText, "":
		return WriteText(c, results)
	case types.FormatYAML:
		return WriteYAML(c, results)
	}
	return fmt.Errorf("%w: %q", types.ErrFormatUnknown, format)
}
