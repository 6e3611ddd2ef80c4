package sqlite

import (
	"fmt"
	"net/url"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/syncparse/pkg/types"
)

// Source is a read-only handle on one sync-state database. It holds a single
// connection and must be used by one goroutine at a time.
type Source struct {
	path string
	db   *sqlx.DB
}

// Open opens the database at path read-only. The file is not modified and
// no journal is created.
func Open(path string) (*Source, error) {
	dsn, err := readOnlyDSN(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", types.ErrPathInvalid, path, err)
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", types.ErrDatabaseLockedOrCorrupt, path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: open %s: %w", types.ErrDatabaseLockedOrCorrupt, path, err)
	}

	return &Source{path: path, db: db}, nil
}

// readOnlyDSN builds a file: URI that opens path in read-only mode.
func readOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: "mode=ro"}
	return u.String(), nil
}

// Path returns the database file path.
// Close releases the connection. Close is idempotent.
func (s *Source) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Tables returns the names of all tables in the database.
func (s *Source) Tables() ([]string, error) {
	var names []string
	if err := s.db.Select(&names, queryTables); err != nil {
		return nil, s.queryError("list tables", err)
	}
	return names, nil
}

// CheckSchema lists the tables and verifies that every table the decoder
// reads is present. It returns the table names.
func (s *Source) CheckSchema() ([]string, error) {
	tables, err := s.Tables()
	if err != nil {
		return nil, err
	}
	for _, name := range types.RequiredTableNames {
		if !slices.Contains(tables, name) {
			return tables, fmt.Errorf("%w: %w: %s in %s", types.ErrDatabaseLockedOrCorrupt, types.ErrMissingTable, name, s.path)
		}
	}
	return tables, nil
}

// Accounts returns the share_info rows in table order.
func (s *Source) Accounts() ([]types.AccountRow, error) {
	var rows []types.AccountRow
	if err := s.db.Select(&rows, queryAccounts); err != nil {
		return nil, s.queryError("query share_info", err)
	}
	return rows, nil
}

// Records returns every metas row in table order.
func (s *Source) Records() ([]types.SyncRecord, error) {
	rows, err := s.db.Queryx(queryMetas)
	if err != nil {
		return nil, s.queryError("query metas", err)
	}
	defer rows.Close()

	var records []types.SyncRecord
	for rows.Next() {
		cols, err := rows.SliceScan()
		if err != nil {
			return nil, s.queryError("scan metas", err)
		}
		if len(cols) < minMetasColumns {
			return nil, fmt.Errorf("%w: metas in %s has %d columns, want at least %d",
				types.ErrDatabaseLockedOrCorrupt, s.path, len(cols), minMetasColumns)
		}
		records = append(records, toRecord(cols))
	}
	if err := rows.Err(); err != nil {
		return nil, s.queryError("read metas", err)
	}
	return records, nil
}

func (s *Source) queryError(op string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", types.ErrDatabaseLockedOrCorrupt, op, s.path, err)
}

// toRecord picks the payload, signature and creation time out of a metas
// row.
func toRecord(cols []any) types.SyncRecord {
	payload, valid := toBytes(cols[types.ColumnPayload])
	signature, _ := toBytes(cols[types.ColumnSignature])
	return types.SyncRecord{
		Payload:         payload,
		PayloadValid:    valid,
		Signature:       signature,
		CreatedAtMillis: toInt64(cols[types.ColumnCreatedAt]),
	}
}

// toBytes converts a column value to bytes. It reports false for NULL.
func toBytes(v any) ([]byte, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case []byte:
		return x, true
	case string:
		return []byte(x), true
	case int64:
		return strconv.AppendInt(nil, x, 10), true
	case float64:
		return strconv.AppendFloat(nil, x, 'g', -1, 64), true
	default:
		return fmt.Append(nil, x), true
	}
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case float64:
		return int64(x)
	case []byte:
		n, _ := strconv.ParseInt(string(x), 10, 64)
		return n
	case string:
		n, _ := strconv.ParseInt(x, 10, 64)
		return n
	}
	return 0
}
