package ref

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBareReference(t *testing.T) {
	r, err := Parse("node_a")
	require.NoError(t, err)
	assert.Equal(t, "node_a", r.NodeID)
	assert.False(t, r.HasIndex())
	assert.Equal(t, "node_a", r.String())
}

func TestParseIndexedReference(t *testing.T) {
	r, err := Parse("parts:12")
	require.NoError(t, err)
	assert.Equal(t, "parts", r.NodeID)
	require.True(t, r.HasIndex())
	assert.Equal(t, 12, r.Index)
	assert.Equal(t, "parts:12", r.String())
}

func TestParseIndexZero(t *testing.T) {
	r, err := Parse("p:0")
	require.NoError(t, err)
	assert.Equal(t, 0, r.Index)
	assert.True(t, r.HasIndex())
}

func TestParseRejectsMalformedReferences(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"empty index", "p:"},
		{"non-numeric index", "p:x"},
		{"negative index", "p:-1"},
		{"plus sign", "p:+1"},
		{"empty node id", ":3"},
		{"index with spaces", "p: 1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidReference))

			var refErr *InvalidReferenceError
			require.ErrorAs(t, err, &refErr)
			assert.Equal(t, tc.raw, refErr.Raw)
		})
	}
}
