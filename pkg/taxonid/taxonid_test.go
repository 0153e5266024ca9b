package taxonid_test

import (
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnmolluscs/pkg/errcode"
	"github.com/gnames/gnmolluscs/pkg/taxonid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	gen := taxonid.New("alien-molluscs-checklist")

	tests := []struct {
		msg  string
		name string
		res  string
	}{
		{
			msg:  "dataset prefix",
			name: "Arion vulgaris Moquin-Tandon, 1855",
			res:  "alien-molluscs-checklist:taxon:",
		},
	}

	for _, v := range tests {
		id, err := gen.ID(v.name)
		require.NoError(t, err, v.msg)
		assert.True(t, strings.HasPrefix(id, v.res), v.msg)
		// prefix + 32 hex characters
		assert.Len(t, id, len(v.res)+32, v.msg)
	}
}

func TestIDKnownDigest(t *testing.T) {
	gen := taxonid.New("ds")
	// md5("a") is a well-known digest
	id, err := gen.ID("a")
	require.NoError(t, err)
	assert.Equal(t, "ds:taxon:0cc175b9c0f1b6a831c399e269772661", id)
}

func TestIDDeterministic(t *testing.T) {
	names := []string{
		"Cernuella virgata (Da Costa, 1778)",
		"Cernuella cisalpina (Rossmässler, 1837)",
		"Helix balteata Pollonera, 1892",
	}
	gen1 := taxonid.New("alien-molluscs-checklist")
	gen2 := taxonid.New("alien-molluscs-checklist")
	for _, v := range names {
		id1, err := gen1.ID(v)
		require.NoError(t, err)
		id2, err := gen2.ID(v)
		require.NoError(t, err)
		assert.Equal(t, id1, id2, v)
	}
}

func TestIDDistinct(t *testing.T) {
	gen := taxonid.New("alien-molluscs-checklist")
	names := []string{
		"Cernuella virgata (Da Costa, 1778)",
		"Cernuella virgata (da Costa, 1778)",
		"Cernuella virgata (Da Costa, 1778) ",
		"Cernuella virgata",
		"Cernuella cisalpina (Rossmässler, 1837)",
	}
	seen := make(map[string]string)
	for _, v := range names {
		id, err := gen.ID(v)
		require.NoError(t, err)
		prev, ok := seen[id]
		assert.False(t, ok, "%q collides with %q", v, prev)
		seen[id] = v
	}
}

func TestIDEmpty(t *testing.T) {
	gen := taxonid.New("alien-molluscs-checklist")
	for _, v := range []string{"", "  ", "\t"} {
		_, err := gen.ID(v)
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.EmptyNameError, gnErr.Code)
		assert.ErrorIs(t, gnErr.Err, taxonid.ErrEmptyName)
	}
}

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "ds:taxon:abc:1", taxonid.WithSuffix("ds:taxon:abc", 1))
	assert.Equal(t, "ds:taxon:abc:2", taxonid.WithSuffix("ds:taxon:abc", 2))
}
