package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/syncparse/internal/synctest"
	"github.com/mesh-intelligence/syncparse/pkg/types"
)

func TestSliceFrom(t *testing.T) {
	b := []byte("0123456789")
	assert.Equal(t, "56789", sliceFrom(b, 5))
	assert.Equal(t, "", sliceFrom(b, 10))
	assert.Equal(t, "", sliceFrom(b, 35))
	assert.Equal(t, "", sliceFrom(nil, 0))
	assert.Equal(t, "", sliceFrom(b, -1))
}

func TestWindow(t *testing.T) {
	b := []byte("0123456789")

	w, ok := window(b, 2, 5)
	assert.True(t, ok)
	assert.Equal(t, "234", string(w))

	_, ok = window(b, 8, 12)
	assert.False(t, ok)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		rec  types.SyncRecord
		kind types.RecordKind
		want string
	}{
		{
			name: "machine takes whole payload",
			rec:  synctest.Record("LAPTOP-1", synctest.MachineSig, 0),
			kind: types.MachineSignature,
			want: "LAPTOP-1",
		},
		{
			name: "recovery email starts at 36",
			rec:  synctest.Record(synctest.RecoveryEmailPayload("r@x.com"), synctest.RecoveryEmailSig, 0),
			kind: types.RecoveryEmailSignature,
			want: "r@x.com",
		},
		{
			name: "recovery email on short payload is empty",
			rec:  synctest.Record("short", synctest.RecoveryEmailSig, 0),
			kind: types.RecoveryEmailSignature,
			want: "",
		},
		{
			name: "recovery phone starts at 35",
			rec:  synctest.Record(synctest.Autofill(synctest.FieldRecoveryPhone, "111"), nil, 0),
			kind: types.RecoveryPhoneMarker,
			want: "111",
		},
		{
			name: "url keeps payload",
			rec:  synctest.Record("HTTP://x", nil, 0),
			kind: types.HTTPURL,
			want: "HTTP://x",
		},
		{
			name: "null payload",
			rec:  synctest.NullRecord(synctest.MachineSig, 0),
			kind: types.MachineSignature,
			want: "",
		},
		{
			name: "kind without value",
			rec:  synctest.Record("encrypted", nil, 0),
			kind: types.EncryptedMarker,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.rec, tt.kind))
		})
	}
}
