package types

// Expected tables in a sync-state database. Only MetasTable and
// ShareInfoTable are read; the others identify the file as a sync store.
const (
	DeletedMetasTable = "deleted_metas"
	MetasTable        = "metas"
	ModelsTable       = "models"
	ShareInfoTable    = "share_info"
	ShareVersionTable = "share_version"
)

// ExpectedTableNames lists the tables a sync-state database carries.
var ExpectedTableNames = []string{
	DeletedMetasTable,
	MetasTable,
	ModelsTable,
	ShareInfoTable,
	ShareVersionTable,
}

// RequiredTableNames lists the tables that must exist for a database to be
// decoded.
var RequiredTableNames = []string{
	MetasTable,
	ShareInfoTable,
}

// Fixed column positions in a metas row.
const (
	ColumnCreatedAt = 7
	ColumnPayload   = 18
	ColumnSignature = 23
)

// SyncRecord is one row of the metas table. Only the payload, signature and
// creation time columns carry meaning; the rest of the row is ignored.
type SyncRecord struct {
	Payload         []byte
	PayloadValid    bool // false when the payload column is NULL
	Signature       []byte
	CreatedAtMillis int64
}

// AccountRow is one row of the share_info table.
type AccountRow struct {
	Email            string `db:"name"`
	CreatedAtSeconds int64  `db:"db_create_time"`
}

// RecordKind is the semantic kind assigned to a metas row.
type RecordKind int

// Record kinds. Signature kinds and marker kinds are separate
// classification axes: a row may carry one of each.
const (
	Unclassified RecordKind = iota
	MachineSignature
	RecoveryEmailSignature
	ExtensionSignature
	EncryptedMarker
	FirstNameMarker
	LastNameMarker
	BirthDayMarker
	BirthYearMarker
	RecoveryPhoneMarker
	HTTPURL
	HTTPSURL
)

var recordKindNames = map[RecordKind]string{
	Unclassified:           "unclassified",
	MachineSignature:       "machine",
	RecoveryEmailSignature: "recovery_email",
	ExtensionSignature:     "extension",
	EncryptedMarker:        "encrypted",
	FirstNameMarker:        "first_name",
	LastNameMarker:         "last_name",
	BirthDayMarker:         "birth_day",
	BirthYearMarker:        "birth_year",
	RecoveryPhoneMarker:    "recovery_phone",
	HTTPURL:                "http_url",
	HTTPSURL:               "https_url",
}

// String returns the lower-case name of the kind.
func (k RecordKind) String() string {
	if name, ok := recordKindNames[k]; ok {
		return name
	}
	return "unknown"
}
