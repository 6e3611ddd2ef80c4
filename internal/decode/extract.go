package decode

import "github.com/mesh-intelligence/syncparse/pkg/types"

// sliceFrom returns b[from:] as a string. Offsets past the end yield "".
func sliceFrom(b []byte, from int) string {
	if from < 0 || from >= len(b) {
		return ""
	}
	return string(b[from:])
}

// window returns b[start:end] only when the whole range is present.
func window(b []byte, start, end int) ([]byte, bool) {
	if start < 0 || end > len(b) || start > end {
		return nil, false
	}
	return b[start:end], true
}

// valueOffsets maps each extractable kind to the payload offset its value
// starts at.
var valueOffsets = buildValueOffsets()

func buildValueOffsets() map[types.RecordKind]int {
	offsets := map[types.RecordKind]int{
		types.HTTPURL:  0,
		types.HTTPSURL: 0,
	}
	for _, r := range signatureRules {
		offsets[r.kind] = r.valueOffset
	}
	for _, r := range markerRules {
		offsets[r.kind] = r.valueOffset
	}
	return offsets
}

// Extract returns the value of rec for the given kind. Kinds without a value
// and offsets beyond the payload both yield "".
func Extract(rec types.SyncRecord, kind types.RecordKind) string {
	offset, ok := valueOffsets[kind]
	if !ok || !rec.PayloadValid {
		return ""
	}
	return sliceFrom(rec.Payload, offset)
}
