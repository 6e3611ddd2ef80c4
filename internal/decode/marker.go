package decode

import (
	"bytes"

	"github.com/mesh-intelligence/syncparse/pkg/types"
)

// markerRule matches when the payload holds exactly marker at
// [start, start+len(marker)). The value starts at valueOffset.
type markerRule struct {
	kind        types.RecordKind
	marker      string
	start       int
	valueOffset int
}

func (r markerRule) matches(payload []byte) bool {
	w, ok := window(payload, r.start, r.start+len(r.marker))
	return ok && string(w) == r.marker
}

var markerRules = []markerRule{
	{kind: types.FirstNameMarker, marker: "FirstName", start: 15, valueOffset: 25},
	{kind: types.LastNameMarker, marker: "LastName", start: 15, valueOffset: 24},
	{kind: types.BirthDayMarker, marker: "BirthDay", start: 15, valueOffset: 24},
	{kind: types.BirthYearMarker, marker: "BirthYea", start: 15, valueOffset: 25},
	{kind: types.RecoveryPhoneMarker, marker: "RecoveryPhone", start: 15, valueOffset: 35},
}

var (
	httpScheme  = []byte("http://")
	httpsScheme = []byte("https://")
)

// ClassifyMarker returns the marker kind found in payload, or Unclassified.
func ClassifyMarker(payload []byte) types.RecordKind {
	for _, r := range markerRules {
		if r.matches(payload) {
			return r.kind
		}
	}
	return types.Unclassified
}

// ClassifyURL returns HTTPURL or HTTPSURL when the payload starts with that
// scheme in any letter case. NULL payloads are never URLs.
func ClassifyURL(rec types.SyncRecord) types.RecordKind {
	if !rec.PayloadValid {
		return types.Unclassified
	}
	switch {
	case hasPrefixFold(rec.Payload, httpScheme):
		return types.HTTPURL
	case hasPrefixFold(rec.Payload, httpsScheme):
		return types.HTTPSURL
	}
	return types.Unclassified
}

func hasPrefixFold(b, prefix []byte) bool {
	return len(b) >= len(prefix) && bytes.EqualFold(b[:len(prefix)], prefix)
}
