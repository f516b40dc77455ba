package metadata_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xlab/phonenumber/metadata"
	"github.com/xlab/phonenumber/metadata/fixtures"
)

func TestEncodeLoadRoundTrip(t *testing.T) {
	t.Parallel()

	blob, err := metadata.Encode(fixtures.Metadatas())
	require.NoError(t, err)

	idx, err := metadata.Load(bytes.NewReader(blob))
	require.NoError(t, err)

	m, ok := idx.MetadataForRegion("US")
	require.True(t, ok)
	assert.Equal(t, 1, m.CountryCode)
}

func TestLoadBadBlob(t *testing.T) {
	t.Parallel()

	_, err := metadata.Load(strings.NewReader("not a gob stream"))
	require.Error(t, err)
	assert.ErrorIs(t, err, metadata.ErrDecode)
}
