// Package resolve turns accepted taxa and synonyms of the source sheets
// into the Taxon core of the checklist.
//
// Resolution is a pure transformation: inputs are never modified and the
// same inputs always produce the same output, identifiers included.
package resolve

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gnames/gnmolluscs/pkg/dwc"
	"github.com/gnames/gnmolluscs/pkg/raw"
	"github.com/gnames/gnmolluscs/pkg/ranker"
	"github.com/gnames/gnmolluscs/pkg/report"
	"github.com/gnames/gnmolluscs/pkg/taxonid"
)

// OriginalName is the remark that marks a homotypic synonym.
const OriginalName = "original name"

const (
	taxaTable     = "taxa"
	synonymsTable = "synonyms"
)

// Resolver assigns identifiers, statuses and classification to names.
type Resolver struct {
	gen      taxonid.Generator
	rnk      ranker.Ranker
	proParte map[string]struct{}
	meta     dwc.Metadata
}

// Option configures a Resolver.
type Option func(*Resolver)

// OptProParte sets names known to be pro-parte synonyms, even if they
// occur only once in the synonyms sheet.
func OptProParte(names []string) Option {
	return func(r *Resolver) {
		for _, v := range names {
			r.proParte[v] = struct{}{}
		}
	}
}

// OptMetadata sets dataset metadata copied to every taxon.
func OptMetadata(meta dwc.Metadata) Option {
	return func(r *Resolver) {
		r.meta = meta
	}
}

// New creates a Resolver.
func New(
	gen taxonid.Generator,
	rnk ranker.Ranker,
	opts ...Option,
) *Resolver {
	res := &Resolver{
		gen:      gen,
		rnk:      rnk,
		proParte: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Result of the resolution.
type Result struct {
	// Taxa are accepted taxa followed by synonyms in the order of the
	// source sheets.
	Taxa []dwc.Taxon

	// Accepted maps scientific names of accepted taxa to their IDs.
	Accepted map[string]string

	// Anomalies are non-fatal problems of the source data.
	Anomalies []report.Anomaly
}

// Resolve creates the Taxon core. Empty names, accepted taxa without the
// first observation and colliding identifiers stop the resolution.
func (r *Resolver) Resolve(
	accepted []raw.Taxon,
	synonyms []raw.Synonym,
) (*Result, error) {
	res := Result{Accepted: make(map[string]string, len(accepted))}
	classes := make(map[string]raw.Taxon, len(accepted))

	for _, v := range accepted {
		t, err := r.acceptedTaxon(v)
		if err != nil {
			return nil, err
		}
		res.Taxa = append(res.Taxa, t)
		// the first occurrence wins, duplicates fail the final check
		if _, ok := res.Accepted[v.ScientificName]; !ok {
			res.Accepted[v.ScientificName] = t.TaxonID
			classes[v.ScientificName] = v
		}
	}

	syns, anoms, err := dedupSynonyms(synonyms)
	if err != nil {
		return nil, err
	}
	res.Anomalies = append(res.Anomalies, anoms...)

	groups := make(map[string]int)
	for _, v := range syns {
		groups[v.ScientificName]++
	}
	positions := make(map[string]int)

	for _, v := range syns {
		id, err := r.gen.ID(v.ScientificName)
		if err != nil {
			return nil, err
		}

		status := dwc.HeterotypicSynonym
		if _, ok := r.proParte[v.ScientificName]; ok ||
			groups[v.ScientificName] > 1 {
			status = dwc.ProParteSynonym
		} else if v.Remarks == OriginalName {
			status = dwc.HomotypicSynonym
		}

		if groups[v.ScientificName] > 1 {
			positions[v.ScientificName]++
			id = taxonid.WithSuffix(id, positions[v.ScientificName])
		}

		t := dwc.Taxon{
			TaxonID:           id,
			ScientificName:    v.ScientificName,
			AcceptedNameUsage: v.SynonymOf,
			TaxonRank:         r.rnk.Rank(v.ScientificName),
			TaxonomicStatus:   status,
			TaxonRemarks:      v.Remarks,
			Metadata:          r.meta,
		}

		if acc, ok := classes[v.SynonymOf]; ok {
			t.AcceptedNameUsageID = res.Accepted[v.SynonymOf]
			t.Class = acc.Class
			t.Order = acc.Order
			t.Family = acc.Family
			t.Genus = acc.Genus
		} else {
			res.Anomalies = append(res.Anomalies, report.Anomaly{
				Kind:  report.UnresolvedSynonym,
				Table: synonymsTable,
				Line:  v.Row,
				Name:  v.ScientificName,
				Message: fmt.Sprintf(
					"accepted name %q is not in the taxa sheet", v.SynonymOf,
				),
			})
		}
		res.Taxa = append(res.Taxa, t)
	}

	if dups := DuplicateIDs(res.Taxa); len(dups) > 0 {
		return nil, DuplicateTaxonIDError(dups)
	}
	return &res, nil
}

func (r *Resolver) acceptedTaxon(v raw.Taxon) (dwc.Taxon, error) {
	var res dwc.Taxon
	if strings.TrimSpace(v.ScientificName) == "" {
		return res, MissingFieldError(taxaTable, v.Row, "scientific_name")
	}
	if strings.TrimSpace(v.FirstObservation) == "" {
		return res, MissingFieldError(taxaTable, v.Row, "first_observation")
	}
	id, err := r.gen.ID(v.ScientificName)
	if err != nil {
		return res, err
	}
	res = dwc.Taxon{
		TaxonID:             id,
		AcceptedNameUsageID: id,
		ScientificName:      v.ScientificName,
		AcceptedNameUsage:   v.ScientificName,
		Class:               v.Class,
		Order:               v.Order,
		Family:              v.Family,
		Genus:               v.Genus,
		TaxonRank:           r.rnk.Rank(v.ScientificName),
		TaxonomicStatus:     dwc.Accepted,
		TaxonRemarks:        v.Remarks,
		Metadata:            r.meta,
	}
	return res, nil
}

// dedupSynonyms removes repeated (name, synonym of) pairs keeping the
// first one.
func dedupSynonyms(
	syns []raw.Synonym,
) ([]raw.Synonym, []report.Anomaly, error) {
	type pair struct{ name, synonymOf string }

	var anoms []report.Anomaly
	res := make([]raw.Synonym, 0, len(syns))
	seen := make(map[pair]int)
	for _, v := range syns {
		if strings.TrimSpace(v.ScientificName) == "" {
			return nil, nil, MissingFieldError(synonymsTable, v.Row, "scientific_name")
		}
		if strings.TrimSpace(v.SynonymOf) == "" {
			return nil, nil, MissingFieldError(synonymsTable, v.Row, "synonym_of")
		}
		p := pair{v.ScientificName, v.SynonymOf}
		if row, ok := seen[p]; ok {
			anoms = append(anoms, report.Anomaly{
				Kind:    report.DuplicateSynonym,
				Table:   synonymsTable,
				Line:    v.Row,
				Name:    v.ScientificName,
				Message: fmt.Sprintf("repeats row %d", row),
			})
			continue
		}
		seen[p] = v.Row
		res = append(res, v)
	}
	return res, anoms, nil
}

// DuplicateIDs returns sorted taxon IDs that occur more than once.
func DuplicateIDs(taxa []dwc.Taxon) []string {
	counts := make(map[string]int, len(taxa))
	var res []string
	for _, v := range taxa {
		counts[v.TaxonID]++
		if counts[v.TaxonID] == 2 {
			res = append(res, v.TaxonID)
		}
	}
	slices.Sort(res)
	return res
}
