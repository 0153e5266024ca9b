package vocab_test

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnmolluscs/pkg/errcode"
	"github.com/gnames/gnmolluscs/pkg/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguage(t *testing.T) {
	voc, err := vocab.New()
	require.NoError(t, err)

	tests := []struct {
		msg, name, code string
	}{
		{"dutch", "dutch", "nl"},
		{"english", "English", "en"},
		{"french", " FRENCH ", "fr"},
		{"german", "german", "de"},
	}

	for _, v := range tests {
		res, err := voc.Language(v.name)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.code, res, v.msg)
	}

	_, err = voc.Language("klingon")
	assertCode(t, err, errcode.VocabularyError)
}

func TestPathway(t *testing.T) {
	voc, err := vocab.New()
	require.NoError(t, err)

	res, err := voc.Pathway("contaminant: nursery")
	require.NoError(t, err)
	assert.Equal(t, "cbd_2014_pathway:contaminant_nursery", res)

	res, err = voc.Pathway("Stowaway: Container")
	require.NoError(t, err)
	assert.Equal(t, "cbd_2014_pathway:stowaway_container", res)

	_, err = voc.Pathway("teleportation")
	assertCode(t, err, errcode.VocabularyError)
}

func TestEstablishment(t *testing.T) {
	voc, err := vocab.New()
	require.NoError(t, err)

	tests := []struct {
		msg, raw, code string
	}{
		{"single", "C3", "blackburn_et_al_2011:C3"},
		{"range", "C1 - C3", "blackburn_et_al_2011:C3"},
		{"list", "D2, E", "blackburn_et_al_2011:E"},
		{"three", "C3, D1, D2", "blackburn_et_al_2011:D2"},
		{"lower", "b2", "blackburn_et_al_2011:B2"},
	}

	for _, v := range tests {
		res, err := voc.Establishment(v.raw)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.code, res, v.msg)
	}

	for _, raw := range []string{"X9", "C1 - Z", "", " - "} {
		_, err = voc.Establishment(raw)
		assertCode(t, err, errcode.VocabularyError)
	}
}

func TestLoad(t *testing.T) {
	data := []byte(`
languages:
  dutch: nl
pathways:
  name: pw
  codes:
    escape: esc
degree_of_establishment:
  name: doe
  precedence: [low, high]
  codes:
    low: L
    high: H
`)
	voc, err := vocab.Load(data)
	require.NoError(t, err)

	res, err := voc.Pathway("Escape")
	require.NoError(t, err)
	assert.Equal(t, "pw:esc", res)

	res, err = voc.Establishment("low, high")
	require.NoError(t, err)
	assert.Equal(t, "doe:H", res)

	bad := []struct {
		msg  string
		data string
	}{
		{"not yaml", "languages: [a"},
		{"no languages", "pathways: {name: pw, codes: {a: b}}"},
		{"bad language code", "languages: {dutch: netherlandish}"},
		{
			"stage without code",
			`languages: {dutch: nl}
pathways: {name: pw, codes: {a: b}}
degree_of_establishment: {name: doe, precedence: [Z], codes: {A: A}}`,
		},
	}
	for _, v := range bad {
		_, err = vocab.Load([]byte(v.data))
		assertCode(t, err, errcode.VocabularyLoadError)
	}
}

func assertCode(t *testing.T, err error, code gn.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, code, gnErr.Code)
}
