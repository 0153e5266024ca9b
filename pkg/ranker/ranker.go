// Package ranker infers taxonomic ranks of scientific names.
package ranker

import (
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
)

// Ranker returns a rank for a scientific name, or an empty string when the
// rank cannot be inferred.
type Ranker interface {
	Rank(name string) string
}

// ranks maps cardinality of a parsed name to a rank.
var ranks = map[int]string{
	1: "genus",
	2: "species",
	3: "subspecies",
}

type parserRanker struct {
	gnp gnparser.GNparser
}

// New creates a Ranker that parses names according to the zoological code.
func New() Ranker {
	cfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Zoological))
	return &parserRanker{gnp: gnparser.New(cfg)}
}

// Rank parses the name and derives its rank from the number of epithets.
func (r *parserRanker) Rank(name string) string {
	p := r.gnp.ParseName(name)
	if !p.Parsed {
		return ""
	}
	return ranks[p.Cardinality]
}

// Stub is a Ranker that returns ranks from a map. Names missing from the
// map get Default.
type Stub struct {
	Ranks   map[string]string
	Default string
}

// Rank implements Ranker.
func (s Stub) Rank(name string) string {
	if r, ok := s.Ranks[name]; ok {
		return r
	}
	return s.Default
}
