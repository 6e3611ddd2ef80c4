// Package synctest builds sync-state databases and metas rows for tests.
package synctest

import (
	"fmt"
	"slices"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/syncparse/pkg/types"
)

// autofillPrefix is the 15-byte prefix of autofill entry names.
const autofillPrefix = "autofill_entry|"

// Autofill field names as they appear in payloads.
const (
	FieldFirstName     = "FirstName"
	FieldLastName      = "LastName"
	FieldBirthDay      = "BirthDay"
	FieldBirthYear     = "BirthYear"
	FieldRecoveryPhone = "RecoveryPhoneNumber"
)

// Signatures with valid prefixes and enough trailing data to pass the
// length guards.
var (
	MachineSig       = []byte("\xd2\xb9\x4b\x0a\x14device-0123456789abcd")
	RecoveryEmailSig = []byte("\x8a\xbf\x0f\x35\x0a\x33recovery")
	ExtensionSig     = []byte("\xba\xbf\x17\x0a\x20aapocclcgogkmnckokdopfmhonfmgoek")
)

// Autofill returns the payload of an autofill entry for field.
func Autofill(field, value string) string {
	return autofillPrefix + field + "|" + value
}

// RecoveryEmailPayload returns a payload carrying email at offset 36.
func RecoveryEmailPayload(email string) string {
	return "autofill_profile|recovery_email|000|" + email
}

// Record returns a metas row with a non-NULL payload.
func Record(payload string, sig []byte, createdAtMillis int64) types.SyncRecord {
	return types.SyncRecord{
		Payload:         []byte(payload),
		PayloadValid:    true,
		Signature:       sig,
		CreatedAtMillis: createdAtMillis,
	}
}

// NullRecord returns a metas row whose payload is NULL.
func NullRecord(sig []byte, createdAtMillis int64) types.SyncRecord {
	return types.SyncRecord{Signature: sig, CreatedAtMillis: createdAtMillis}
}

// Fixture describes the content of a test database.
type Fixture struct {
	Accounts []types.AccountRow
	Records  []types.SyncRecord
	// OmitTables lists tables that are not created.
	OmitTables []string
}

// CreateDatabase writes f to a new SQLite file at path and fails the test on
// error.
func CreateDatabase(t testing.TB, path string, f Fixture) {
	t.Helper()
	if err := WriteDatabase(path, f); err != nil {
		t.Fatalf("create sync database: %v", err)
	}
}

// WriteDatabase writes f to a new SQLite file at path.
func WriteDatabase(path string, f Fixture) error {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, s := range schemaDDL {
		if slices.Contains(f.OmitTables, s.table) {
			continue
		}
		if _, err := tx.Exec(s.ddl); err != nil {
			return fmt.Errorf("create %s: %w", s.table, err)
		}
	}

	if !slices.Contains(f.OmitTables, "share_info") {
		for i, a := range f.Accounts {
			if _, err := tx.Exec(
				"INSERT INTO share_info (id, name, db_create_time) VALUES (?, ?, ?)",
				fmt.Sprintf("share-%d", i), a.Email, a.CreatedAtSeconds,
			); err != nil {
				return fmt.Errorf("insert account: %w", err)
			}
		}
	}

	if !slices.Contains(f.OmitTables, "metas") {
		for i, r := range f.Records {
			var payload any
			if r.PayloadValid {
				payload = string(r.Payload)
			}
			if _, err := tx.Exec(
				"INSERT INTO metas (metahandle, ctime, non_unique_name, specifics) VALUES (?, ?, ?, ?)",
				i+1, r.CreatedAtMillis, payload, r.Signature,
			); err != nil {
				return fmt.Errorf("insert metas row %d: %w", i, err)
			}
		}
	}

	return tx.Commit()
}
