// Package sqlite reads Chromium sync-state databases.
package sqlite

// Queries run against a sync-state store. metas is read with SELECT * so the
// decoder can address columns by position.
const (
	queryTables   = `SELECT name FROM sqlite_master WHERE type='table';`
	queryAccounts = `SELECT COALESCE(name, '') AS name, COALESCE(db_create_time, 0) AS db_create_time FROM share_info;`
	queryMetas    = `SELECT * FROM metas;`
)

// minMetasColumns is the narrowest metas row the decoder can address.
const minMetasColumns = 24
