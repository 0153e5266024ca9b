// Package taxonid creates stable identifiers of taxa.
//
// An identifier has a form of `{dataset-shortname}:taxon:{md5}`, where md5 is
// a hex digest of a scientific name-string exactly as it is given in the
// source. Identical name-strings always receive the same identifier, so
// repeated conversions of unchanged data keep identifiers stable.
package taxonid

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"
)

// Generator creates taxon identifiers for one dataset.
type Generator struct {
	prefix string
}

// New creates a Generator for a dataset short name.
func New(shortName string) Generator {
	return Generator{prefix: shortName + ":taxon:"}
}

// ID returns an identifier of a scientific name. Empty names are rejected,
// a taxon cannot exist without a name.
func (g Generator) ID(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", EmptyNameError()
	}
	sum := md5.Sum([]byte(name))
	return g.prefix + hex.EncodeToString(sum[:]), nil
}

// WithSuffix disambiguates an identifier shared by several records by
// appending a 1-based position.
func WithSuffix(id string, pos int) string {
	return id + ":" + strconv.Itoa(pos)
}
