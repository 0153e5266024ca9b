// Package checklist builds a Darwin Core checklist out of the source
// spreadsheets of the registry.
//
// Build is a pipeline of pure steps: taxa are resolved first, their IDs
// are joined to extension tables, multi-value fields are unpivoted into
// descriptions. A fatal problem at any step aborts the build and no output
// is returned, so partial checklists never reach the writers.
package checklist

import (
	"context"

	"github.com/gnames/gnmolluscs/pkg/config"
	"github.com/gnames/gnmolluscs/pkg/dwc"
	"github.com/gnames/gnmolluscs/pkg/extend"
	"github.com/gnames/gnmolluscs/pkg/ranker"
	"github.com/gnames/gnmolluscs/pkg/raw"
	"github.com/gnames/gnmolluscs/pkg/report"
	"github.com/gnames/gnmolluscs/pkg/resolve"
	"github.com/gnames/gnmolluscs/pkg/taxonid"
	"github.com/gnames/gnmolluscs/pkg/unpivot"
	"github.com/gnames/gnmolluscs/pkg/vocab"
)

// Converter reads the source files, builds the checklist and writes it
// to the output directory.
type Converter interface {
	Convert(ctx context.Context) error
}

// Input contains records of the four source sheets.
type Input struct {
	Taxa        []raw.Taxon
	Synonyms    []raw.Synonym
	Vernaculars []raw.Vernacular
	References  []raw.Reference
}

// Output contains Darwin Core tables and the anomalies found while
// building them.
type Output struct {
	Taxa          []dwc.Taxon
	Vernaculars   []dwc.VernacularName
	Profiles      []dwc.SpeciesProfile
	Distributions []dwc.Distribution
	References    []dwc.Reference
	Descriptions  []dwc.Description
	Report        report.Report
}

// Build creates the checklist.
func Build(
	cfg *config.Config,
	rnk ranker.Ranker,
	voc *vocab.Vocabularies,
	in Input,
) (*Output, error) {
	var res Output

	r := resolve.New(
		taxonid.New(cfg.Dataset.ShortName),
		rnk,
		resolve.OptProParte(cfg.ProParte),
		resolve.OptMetadata(Metadata(cfg)),
	)
	resolved, err := r.Resolve(in.Taxa, in.Synonyms)
	if err != nil {
		return nil, err
	}
	res.Taxa = resolved.Taxa
	res.Report.Add(resolved.Anomalies...)

	var anoms []report.Anomaly
	j := extend.New(resolved.Accepted)

	res.Vernaculars, anoms, err = j.VernacularNames(in.Vernaculars, voc)
	if err != nil {
		return nil, err
	}
	res.Report.Add(anoms...)

	res.Profiles, anoms = j.SpeciesProfiles(in.Taxa)
	res.Report.Add(anoms...)

	// unmatched taxa are already reported by resolution
	res.Distributions, _ = j.Distributions(in.Taxa)

	res.References, anoms = j.References(in.References)
	res.Report.Add(anoms...)

	res.Descriptions, err = unpivot.Descriptions(in.Taxa, resolved.Accepted, voc)
	if err != nil {
		return nil, err
	}

	if err = res.CheckIntegrity(); err != nil {
		return nil, err
	}
	return &res, nil
}

// Metadata creates dataset metadata from the configuration.
func Metadata(cfg *config.Config) dwc.Metadata {
	return dwc.Metadata{
		Language:        cfg.Dataset.Language,
		License:         cfg.Dataset.License,
		RightsHolder:    cfg.Dataset.RightsHolder,
		DatasetID:       cfg.Dataset.ID,
		InstitutionCode: cfg.Dataset.InstitutionCode,
		DatasetName:     cfg.Dataset.Name,
	}
}

// CheckIntegrity makes sure that every non-empty taxon ID of extensions
// points to a taxon of the core. Empty IDs are reported as anomalies
// during the build.
func (o *Output) CheckIntegrity() error {
	ids := make(map[string]struct{}, len(o.Taxa))
	for _, v := range o.Taxa {
		ids[v.TaxonID] = struct{}{}
	}

	var missing []string
	check := func(id string) {
		if id == "" {
			return
		}
		if _, ok := ids[id]; !ok {
			missing = append(missing, id)
		}
	}
	for _, v := range o.Vernaculars {
		check(v.TaxonID)
	}
	for _, v := range o.Profiles {
		check(v.TaxonID)
	}
	for _, v := range o.Distributions {
		check(v.TaxonID)
	}
	for _, v := range o.References {
		check(v.TaxonID)
	}
	for _, v := range o.Descriptions {
		check(v.TaxonID)
	}

	if len(missing) > 0 {
		return ReferentialIntegrityError(missing)
	}
	return nil
}

// Records returns rows of every Darwin Core table with the table name as
// a key.
func (o *Output) Records() map[string][]dwc.Record {
	return map[string][]dwc.Record{
		dwc.TaxonTable.Name:          records(o.Taxa),
		dwc.VernacularNameTable.Name: records(o.Vernaculars),
		dwc.SpeciesProfileTable.Name: records(o.Profiles),
		dwc.DistributionTable.Name:   records(o.Distributions),
		dwc.ReferenceTable.Name:      records(o.References),
		dwc.DescriptionTable.Name:    records(o.Descriptions),
	}
}

func records[T dwc.Record](rows []T) []dwc.Record {
	res := make([]dwc.Record, len(rows))
	for i := range rows {
		res[i] = rows[i]
	}
	return res
}
