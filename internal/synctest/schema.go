package synctest

// DDL of a Chromium sync-state store, trimmed to the tables the decoder
// expects. Column order in metas matters: ctime is column 7,
// non_unique_name column 18 and specifics column 23.
const (
	createMetas = `CREATE TABLE metas (
    metahandle bigint primary key ON CONFLICT FAIL,
    base_version bigint default -1,
    server_version bigint default 0,
    local_external_id bigint default 0,
    transaction_version bigint default 0,
    mtime bigint default 0,
    server_mtime bigint default 0,
    ctime bigint default 0,
    server_ctime bigint default 0,
    id varchar(255) default 'r',
    parent_id varchar(255) default 'r',
    server_parent_id varchar(255) default 'r',
    is_unsynced bit default 0,
    is_unapplied_update bit default 0,
    is_del bit default 0,
    is_dir bit default 0,
    server_is_dir bit default 0,
    server_is_del bit default 0,
    non_unique_name varchar,
    server_non_unique_name varchar(255),
    unique_server_tag varchar,
    unique_client_tag varchar,
    unique_bookmark_tag varchar,
    specifics blob,
    server_specifics blob,
    base_server_specifics blob,
    server_unique_position blob,
    unique_position blob,
    attachment_metadata blob,
    server_attachment_metadata blob
);`

	createDeletedMetas = `CREATE TABLE deleted_metas (
    metahandle bigint primary key ON CONFLICT FAIL,
    ctime bigint default 0,
    non_unique_name varchar,
    specifics blob
);`

	createModels = `CREATE TABLE models (
    model_id BLOB primary key,
    progress_marker BLOB,
    transaction_version BIGINT default 1,
    initial_sync_done BOOLEAN default 0
);`

	createShareInfo = `CREATE TABLE share_info (
    id TEXT primary key,
    name TEXT,
    store_birthday TEXT,
    db_create_version TEXT,
    db_create_time INT,
    next_id INT default -2,
    cache_guid TEXT,
    notification_state BLOB,
    bag_of_chips BLOB
);`

	createShareVersion = `CREATE TABLE share_version (
    id VARCHAR(128) primary key,
    data INT
);`
)

// schemaDDL maps table names to their CREATE TABLE statements.
var schemaDDL = []struct {
	table string
	ddl   string
}{
	{"deleted_metas", createDeletedMetas},
	{"metas", createMetas},
	{"models", createModels},
	{"share_info", createShareInfo},
	{"share_version", createShareVersion},
}
