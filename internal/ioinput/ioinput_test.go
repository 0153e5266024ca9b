package ioinput_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnmolluscs/internal/ioinput"
	"github.com/gnames/gnmolluscs/pkg/config"
	"github.com/gnames/gnmolluscs/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const taxaCSV = "\ufeffScientific Name,first_observation,Family,native_range,realm,extra\n" +
	`"Cernuella virgata (Da Costa, 1778)",1850,Geomitridae,Europe | Africa,terrestrial,x` + "\n" +
	",,,,,\n" +
	`"Arion vulgaris Moquin-Tandon, 1855",1971` + "\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadTaxa(t *testing.T) {
	path := writeFile(t, t.TempDir(), "taxa.csv", taxaCSV)
	res, err := ioinput.ReadTaxa(path)
	require.NoError(t, err)
	require.Len(t, res, 2)

	assert.Equal(t, 2, res[0].Row)
	assert.Equal(t, "Cernuella virgata (Da Costa, 1778)", res[0].ScientificName)
	assert.Equal(t, "1850", res[0].FirstObservation)
	assert.Equal(t, "Geomitridae", res[0].Family)
	assert.Equal(t, "Europe | Africa", res[0].NativeRange)
	assert.Equal(t, "terrestrial", res[0].Realm)
	assert.Empty(t, res[0].Genus)

	// blank line is skipped, short row is accepted
	assert.Equal(t, 4, res[1].Row)
	assert.Equal(t, "Arion vulgaris Moquin-Tandon, 1855", res[1].ScientificName)
	assert.Equal(t, "1971", res[1].FirstObservation)
	assert.Empty(t, res[1].Family)
}

func TestReadOthers(t *testing.T) {
	dir := t.TempDir()

	path := writeFile(t, dir, "s.csv",
		"scientific_name,synonym_of,remarks\nHelix a,Helix b,original name\n")
	syns, err := ioinput.ReadSynonyms(path)
	require.NoError(t, err)
	require.Len(t, syns, 1)
	assert.Equal(t, "Helix b", syns[0].SynonymOf)
	assert.Equal(t, "original name", syns[0].Remarks)

	path = writeFile(t, dir, "v.csv",
		"language,vernacular_name,scientific_name\nDutch,Wegslak,Arion\n")
	vns, err := ioinput.ReadVernaculars(path)
	require.NoError(t, err)
	require.Len(t, vns, 1)
	assert.Equal(t, "Arion", vns[0].ScientificName)
	assert.Equal(t, "Dutch", vns[0].Language)

	path = writeFile(t, dir, "r.csv",
		"scientific_name,bibliographic_citation\nArion,Adam 1960\n")
	refs, err := ioinput.ReadReferences(path)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "Adam 1960", refs[0].Citation)
	assert.Empty(t, refs[0].Identifier)
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		msg, content string
		code         gn.ErrorCode
	}{
		{"empty file", "", errcode.MissingColumnError},
		{"no column", "scientific_name\nArion\n", errcode.MissingColumnError},
		{"bad quotes", "scientific_name,first_observation\n\"Arion,1\n",
			errcode.ReadFileError},
	}
	for _, v := range tests {
		path := writeFile(t, dir, "taxa.csv", v.content)
		_, err := ioinput.ReadTaxa(path)
		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr), v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
	}

	_, err := ioinput.ReadTaxa(filepath.Join(dir, "none.csv"))
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.ReadFileError, gnErr.Code)
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "taxa.csv", taxaCSV)
	writeFile(t, dir, "synonyms.csv", "scientific_name,synonym_of\n")
	writeFile(t, dir, "vernacular_names.csv",
		"scientific_name,vernacular_name,language\n")
	writeFile(t, dir, "references.csv",
		"scientific_name,bibliographic_citation\n")

	cfg := config.New()
	cfg.Update([]config.Option{config.OptInputDir(dir)})
	in, err := ioinput.Read(cfg)
	require.NoError(t, err)
	assert.Len(t, in.Taxa, 2)
	assert.Empty(t, in.Synonyms)
	assert.Empty(t, in.Vernaculars)
	assert.Empty(t, in.References)

	require.NoError(t, os.Remove(filepath.Join(dir, "references.csv")))
	_, err = ioinput.Read(cfg)
	assert.Error(t, err)
}
