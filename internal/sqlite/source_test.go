package sqlite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/syncparse/internal/synctest"
	"github.com/mesh-intelligence/syncparse/pkg/types"
)

func newTestSource(t *testing.T, f synctest.Fixture) *Source {
	t.Helper()
	path := filepath.Join(t.TempDir(), "SyncData.sqlite3")
	synctest.CreateDatabase(t, path, f)

	src, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { src.Close() })
	return src
}

func TestSource_Tables(t *testing.T) {
	src := newTestSource(t, synctest.Fixture{})

	tables, err := src.Tables()
	require.NoError(t, err)
	assert.ElementsMatch(t, types.ExpectedTableNames, tables)
	checked, err := src.CheckSchema()
	require.NoError(t, err)
	assert.Equal(t, tables, checked)
}

func TestSource_Accounts(t *testing.T) {
	src := newTestSource(t, synctest.Fixture{
		Accounts: []types.AccountRow{
			{Email: "a@x.com", CreatedAtSeconds: 1400000000},
			{Email: "b@x.com", CreatedAtSeconds: 1400000500},
		},
	})

	accounts, err := src.Accounts()
	require.NoError(t, err)
	assert.Equal(t, []types.AccountRow{
		{Email: "a@x.com", CreatedAtSeconds: 1400000000},
		{Email: "b@x.com", CreatedAtSeconds: 1400000500},
	}, accounts)
}

func TestSource_Records(t *testing.T) {
	src := newTestSource(t, synctest.Fixture{
		Records: []types.SyncRecord{
			synctest.Record("LAPTOP-1", synctest.MachineSig, 1500000000000),
			synctest.NullRecord(nil, 42),
			synctest.Record("http://example.com/", nil, 7),
		},
	})

	records, err := src.Records()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "LAPTOP-1", string(records[0].Payload))
	assert.True(t, records[0].PayloadValid)
	assert.Equal(t, synctest.MachineSig, records[0].Signature)
	assert.Equal(t, int64(1500000000000), records[0].CreatedAtMillis)

	assert.False(t, records[1].PayloadValid)
	assert.Empty(t, records[1].Signature)
	assert.Equal(t, int64(42), records[1].CreatedAtMillis)

	assert.Equal(t, "http://example.com/", string(records[2].Payload))
}

func TestSource_MissingTable(t *testing.T) {
	src := newTestSource(t, synctest.Fixture{OmitTables: []string{types.ShareInfoTable}})

	_, err := src.CheckSchema()
	assert.ErrorIs(t, err, types.ErrMissingTable)
	assert.ErrorIs(t, err, types.ErrDatabaseLockedOrCorrupt)
}

func TestSource_EmptyFileHasNoTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.sqlite3")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	tables, err := src.Tables()
	require.NoError(t, err)
	assert.Empty(t, tables)
	_, err = src.CheckSchema()
	assert.ErrorIs(t, err, types.ErrMissingTable)
}

func TestSource_NotADatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.sqlite3")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("not a sqlite file ", 512)), 0o644))

	src, err := Open(path)
	if err != nil {
		assert.ErrorIs(t, err, types.ErrDatabaseLockedOrCorrupt)
		return
	}
	defer src.Close()

	_, err = src.Tables()
	assert.ErrorIs(t, err, types.ErrDatabaseLockedOrCorrupt)
}

func TestSource_NarrowMetas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narrow.sqlite3")
	db, err := sqlx.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE metas (metahandle bigint, non_unique_name varchar);
INSERT INTO metas VALUES (1, 'LAPTOP-1');`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Records()
	assert.ErrorIs(t, err, types.ErrDatabaseLockedOrCorrupt)
}

func TestSource_DoesNotWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "SyncData.sqlite3")
	synctest.CreateDatabase(t, path, synctest.Fixture{
		Records: []types.SyncRecord{synctest.Record("LAPTOP-1", synctest.MachineSig, 1)},
	})
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	src, err := Open(path)
	require.NoError(t, err)
	_, err = src.Records()
	require.NoError(t, err)
	require.NoError(t, src.Close())

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSource_CloseIdempotent(t *testing.T) {
	src := newTestSource(t, synctest.Fixture{})
	assert.NoError(t, src.Close())
	assert.NoError(t, src.Close())
}

func TestReadOnlyDSN(t *testing.T) {
	dsn, err := readOnlyDSN("/evidence/User Data/Sync Data/SyncData.sqlite3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dsn, "file:///"))
	assert.True(t, strings.HasSuffix(dsn, "?mode=ro"))
	assert.Contains(t, dsn, "User%20Data")
}

func TestToBytes(t *testing.T) {
	b, ok := toBytes(nil)
	assert.False(t, ok)
	assert.Nil(t, b)

	b, ok = toBytes("abc")
	assert.True(t, ok)
	assert.Equal(t, []byte("abc"), b)

	b, ok = toBytes(int64(12))
	assert.True(t, ok)
	assert.Equal(t, []byte("12"), b)
}
