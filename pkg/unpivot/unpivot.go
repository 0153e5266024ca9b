// Package unpivot converts multi-value fields of taxa into long-form
// Description extension rows.
package unpivot

import (
	"slices"
	"strings"

	"github.com/gnames/gnmolluscs/pkg/dwc"
	"github.com/gnames/gnmolluscs/pkg/raw"
	"github.com/gnames/gnmolluscs/pkg/vocab"
)

// Delimiter separates values of a multi-value field.
const Delimiter = " | "

// Field is a multi-value field of a taxon.
type Field int

const (
	NativeRange Field = iota
	Pathway
	DegreeOfEstablishment
)

// Fields lists all unpivoted fields in the order of the output.
var Fields = []Field{NativeRange, Pathway, DegreeOfEstablishment}

// Type returns the description type of the field.
func (f Field) Type() dwc.DescriptionType {
	switch f {
	case Pathway:
		return dwc.Pathway
	case DegreeOfEstablishment:
		return dwc.DegreeOfEstablishment
	default:
		return dwc.NativeRange
	}
}

func (f Field) value(t raw.Taxon) string {
	switch f {
	case Pathway:
		return t.IntroductionPathway
	case DegreeOfEstablishment:
		return t.DegreeOfEstablishment
	default:
		return t.NativeRange
	}
}

func (f Field) recode(voc *vocab.Vocabularies, token string) (string, error) {
	switch f {
	case Pathway:
		return voc.Pathway(token)
	case DegreeOfEstablishment:
		return voc.Establishment(token)
	default:
		return token, nil
	}
}

// Split breaks a multi-value string into trimmed non-empty tokens.
func Split(s string) []string {
	var res []string
	for _, v := range strings.Split(s, Delimiter) {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}

// Unpivot creates a description for every value of the field. Taxon IDs
// come from ids, a map of accepted names to their IDs. Pathway and
// degree of establishment values absent from vocabularies stop the
// conversion.
func Unpivot(
	taxa []raw.Taxon,
	ids map[string]string,
	f Field,
	voc *vocab.Vocabularies,
) ([]dwc.Description, error) {
	var res []dwc.Description
	for _, t := range taxa {
		for _, token := range Split(f.value(t)) {
			desc, err := f.recode(voc, token)
			if err != nil {
				return nil, err
			}
			res = append(res, dwc.Description{
				TaxonID:     ids[t.ScientificName],
				Description: desc,
				Type:        f.Type(),
				Language:    dwc.DescriptionLanguage,
			})
		}
	}
	return res, nil
}

// Descriptions unpivots all fields and groups rows by taxon ID. Within a
// taxon rows keep the order of Fields and of values.
func Descriptions(
	taxa []raw.Taxon,
	ids map[string]string,
	voc *vocab.Vocabularies,
) ([]dwc.Description, error) {
	var res []dwc.Description
	for _, f := range Fields {
		descs, err := Unpivot(taxa, ids, f, voc)
		if err != nil {
			return nil, err
		}
		res = append(res, descs...)
	}
	slices.SortStableFunc(res, func(a, b dwc.Description) int {
		return strings.Compare(a.TaxonID, b.TaxonID)
	})
	return res, nil
}
