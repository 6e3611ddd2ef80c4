package decode

import (
	"bytes"

	"github.com/mesh-intelligence/syncparse/pkg/types"
)

// signatureRule matches a signature that starts with prefix and whose
// printable rendering is at least minRendered characters long. Shorter
// signatures are truncated entries that would otherwise match.
type signatureRule struct {
	kind        types.RecordKind
	prefix      []byte
	minRendered int
	valueOffset int
}

var signatureRules = []signatureRule{
	{kind: types.MachineSignature, prefix: []byte{0xd2, 0xb9}, minRendered: 24, valueOffset: 0},
	{kind: types.RecoveryEmailSignature, prefix: []byte{0x8a, 0xbf, 0x0f, '5'}, minRendered: 15, valueOffset: 36},
	{kind: types.ExtensionSignature, prefix: []byte{0xba, 0xbf, 0x17}, minRendered: 15, valueOffset: 0},
}

// encryptedPayload is the payload written for every entry of an encrypted
// store.
const encryptedPayload = "encrypted"

// ClassifySignature returns the signature kind of sig, or Unclassified.
func ClassifySignature(sig []byte) types.RecordKind {
	for _, r := range signatureRules {
		if bytes.HasPrefix(sig, r.prefix) && renderedLen(sig) >= r.minRendered {
			return r.kind
		}
	}
	return types.Unclassified
}

// ClassifyEncrypted returns EncryptedMarker when rec is an encrypted-store
// entry, or Unclassified.
func ClassifyEncrypted(rec types.SyncRecord) types.RecordKind {
	if rec.PayloadValid && string(rec.Payload) == encryptedPayload {
		return types.EncryptedMarker
	}
	return types.Unclassified
}

// renderedLen returns the length of the b'...' literal form of b without
// building it: printable ASCII takes one character, backslash, the quote and
// \t \n \r take two, everything else takes four (\xNN). The double quote is
// used as delimiter when b holds a single quote and no double quote.
func renderedLen(b []byte) int {
	quote := byte('\'')
	if bytes.IndexByte(b, '\'') >= 0 && bytes.IndexByte(b, '"') < 0 {
		quote = '"'
	}
	n := 3
	for _, c := range b {
		switch {
		case c == quote, c == '\\', c == '\t', c == '\n', c == '\r':
			n += 2
		case c >= 0x20 && c < 0x7f:
			n++
		default:
			n += 4
		}
	}
	return n
}
