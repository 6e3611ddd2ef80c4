package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtifactSetFullInfo(t *testing.T) {
	t.Run("missing last name is unavailable", func(t *testing.T) {
		a := ArtifactSet{FirstName: "Ann"}
		_, _, ok := a.FullInfo()
		assert.False(t, ok)
	})

	t.Run("missing first name is unavailable", func(t *testing.T) {
		a := ArtifactSet{LastName: "Lee"}
		_, ok := a.FullName()
		assert.False(t, ok)
	})

	t.Run("both names and complete date of birth", func(t *testing.T) {
		a := ArtifactSet{FirstName: "Ann", LastName: "Lee"}
		a.DateOfBirth.SetDay("5")
		a.DateOfBirth.SetYear("1990")

		name, dob, ok := a.FullInfo()
		assert.True(t, ok)
		assert.Equal(t, "Ann Lee", name)
		assert.Equal(t, "051990", dob)
	})

	t.Run("names without date of birth keep placeholders", func(t *testing.T) {
		a := ArtifactSet{FirstName: "Ann", LastName: "Lee"}
		name, dob, ok := a.FullInfo()
		assert.True(t, ok)
		assert.Equal(t, "Ann Lee", name)
		assert.Equal(t, "------", dob)
	})
}

func TestArtifactSetAllSites(t *testing.T) {
	tests := []struct {
		name  string
		http  []string
		https []string
		want  []string
	}{
		{
			name: "both empty is no data",
			want: nil,
		},
		{
			name: "http only",
			http: []string{"http://a", "http://b"},
			want: []string{"http://a", "http://b"},
		},
		{
			name:  "https only",
			https: []string{"https://c"},
			want:  []string{"https://c"},
		},
		{
			name:  "http always precedes https",
			http:  []string{"http://b"},
			https: []string{"https://a", "https://c"},
			want:  []string{"http://b", "https://a", "https://c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ArtifactSet{HTTPSites: tt.http, HTTPSSites: tt.https}
			assert.Equal(t, tt.want, a.AllSites())
		})
	}
}

func TestRecordKindString(t *testing.T) {
	assert.Equal(t, "machine", MachineSignature.String())
	assert.Equal(t, "https_url", HTTPSURL.String())
	assert.Equal(t, "unknown", RecordKind(99).String())
	assert.Equal(t, "encrypted", EncryptedMarker.String())
}
