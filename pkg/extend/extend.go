// Package extend attaches taxon IDs to the rows of extension tables.
// Rows are joined to accepted taxa by exact scientific name. A row without
// a match is kept with an empty taxon ID and reported as an anomaly.
package extend

import (
	"fmt"
	"strings"

	"github.com/gnames/gnmolluscs/pkg/dwc"
	"github.com/gnames/gnmolluscs/pkg/raw"
	"github.com/gnames/gnmolluscs/pkg/report"
	"github.com/gnames/gnmolluscs/pkg/vocab"
)

// Terrestrial is the only realm expected in the checklist.
const Terrestrial = "terrestrial"

const (
	taxaTable        = "taxa"
	vernacularsTable = "vernacular_names"
	referencesTable  = "references"
)

// Joiner joins extension rows to accepted taxa.
type Joiner struct {
	accepted map[string]string
}

// New creates a Joiner from a map of accepted scientific names to taxon
// IDs.
func New(accepted map[string]string) Joiner {
	return Joiner{accepted: accepted}
}

// id returns a taxon ID for the name. If there is no match, the ID is
// empty and an anomaly is returned.
func (j Joiner) id(table string, row int, name string) (string, *report.Anomaly) {
	if id, ok := j.accepted[name]; ok {
		return id, nil
	}
	return "", &report.Anomaly{
		Kind:    report.UnmatchedName,
		Table:   table,
		Line:    row,
		Name:    name,
		Message: "scientific name is not in the taxa sheet",
	}
}

// VernacularNames creates Vernacular Names extension. An empty language
// stays empty, a language absent from the vocabulary stops the conversion.
func (j Joiner) VernacularNames(
	vns []raw.Vernacular,
	voc *vocab.Vocabularies,
) ([]dwc.VernacularName, []report.Anomaly, error) {
	var anoms []report.Anomaly
	res := make([]dwc.VernacularName, 0, len(vns))
	for _, v := range vns {
		var lang string
		if strings.TrimSpace(v.Language) != "" {
			var err error
			if lang, err = voc.Language(v.Language); err != nil {
				return nil, nil, err
			}
		}
		id, a := j.id(vernacularsTable, v.Row, v.ScientificName)
		if a != nil {
			anoms = append(anoms, *a)
		}
		res = append(res, dwc.VernacularName{
			TaxonID:        id,
			VernacularName: v.VernacularName,
			Language:       lang,
		})
	}
	return res, anoms, nil
}

// SpeciesProfiles creates Species Profile extension. All taxa of the
// checklist are terrestrial.
func (j Joiner) SpeciesProfiles(
	taxa []raw.Taxon,
) ([]dwc.SpeciesProfile, []report.Anomaly) {
	var anoms []report.Anomaly
	res := make([]dwc.SpeciesProfile, 0, len(taxa))
	for _, v := range taxa {
		id, a := j.id(taxaTable, v.Row, v.ScientificName)
		if a != nil {
			anoms = append(anoms, *a)
		}
		realm := strings.ToLower(strings.TrimSpace(v.Realm))
		if realm != "" && realm != Terrestrial {
			anoms = append(anoms, report.Anomaly{
				Kind:    report.RealmMismatch,
				Table:   taxaTable,
				Line:    v.Row,
				Name:    v.ScientificName,
				Message: fmt.Sprintf("realm is %q", v.Realm),
			})
		}
		res = append(res, dwc.SpeciesProfile{
			TaxonID:       id,
			IsTerrestrial: true,
		})
	}
	return res, anoms
}

// Distributions creates Distribution extension, one row per taxon.
func (j Joiner) Distributions(
	taxa []raw.Taxon,
) ([]dwc.Distribution, []report.Anomaly) {
	var anoms []report.Anomaly
	res := make([]dwc.Distribution, 0, len(taxa))
	for _, v := range taxa {
		id, a := j.id(taxaTable, v.Row, v.ScientificName)
		if a != nil {
			anoms = append(anoms, *a)
		}
		res = append(res, dwc.Distribution{
			TaxonID:           id,
			OccurrenceStatus:  strings.ToLower(strings.TrimSpace(v.OccurrenceStatus)),
			EventDate:         EventDate(v.FirstObservation, v.LastObservation),
			Source:            v.SourceDistribution,
			OccurrenceRemarks: v.OccurrenceRemarks,
		})
	}
	return res, anoms
}

// References creates Literature References extension.
func (j Joiner) References(
	refs []raw.Reference,
) ([]dwc.Reference, []report.Anomaly) {
	var anoms []report.Anomaly
	res := make([]dwc.Reference, 0, len(refs))
	for _, v := range refs {
		id, a := j.id(referencesTable, v.Row, v.ScientificName)
		if a != nil {
			anoms = append(anoms, *a)
		}
		res = append(res, dwc.Reference{
			TaxonID:               id,
			Identifier:            v.Identifier,
			BibliographicCitation: v.Citation,
		})
	}
	return res, anoms
}

// EventDate creates an ISO 8601 interval from years of the first and the
// last observation. Without the last observation it is the first year.
func EventDate(first, last string) string {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	if last == "" {
		return first
	}
	return first + "/" + last
}
