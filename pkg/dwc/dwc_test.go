package dwc_test

import (
	"testing"

	"github.com/gnames/gnmolluscs/pkg/dwc"
	"github.com/stretchr/testify/assert"
)

func TestRowsMatchTables(t *testing.T) {
	tests := []struct {
		msg   string
		rec   dwc.Record
		table dwc.Table
	}{
		{"taxon", dwc.Taxon{}, dwc.TaxonTable},
		{"vernacular", dwc.VernacularName{}, dwc.VernacularNameTable},
		{"profile", dwc.SpeciesProfile{}, dwc.SpeciesProfileTable},
		{"distribution", dwc.Distribution{}, dwc.DistributionTable},
		{"reference", dwc.Reference{}, dwc.ReferenceTable},
		{"description", dwc.Description{}, dwc.DescriptionTable},
	}

	for _, v := range tests {
		assert.Equal(t, len(v.table.Terms), len(v.rec.Row()), v.msg)
		assert.Equal(t, dwc.CoreID, v.table.Header()[0], v.msg)
	}
}

func TestTaxonRow(t *testing.T) {
	tx := dwc.Taxon{
		TaxonID:             "ds:taxon:1",
		AcceptedNameUsageID: "ds:taxon:1",
		ScientificName:      "Arion vulgaris Moquin-Tandon, 1855",
		AcceptedNameUsage:   "Arion vulgaris Moquin-Tandon, 1855",
		Class:               "Gastropoda",
		Family:              "Arionidae",
		TaxonomicStatus:     dwc.Accepted,
		Metadata: dwc.Metadata{
			Language:        "en",
			InstitutionCode: "RBINS",
		},
	}
	row := tx.Row()
	header := dwc.TaxonTable.Header()
	fields := make(map[string]string)
	for i, v := range header {
		fields[v] = row[i]
	}
	assert.Equal(t, "Animalia", fields["kingdom"])
	assert.Equal(t, "Mollusca", fields["phylum"])
	assert.Equal(t, "ICZN", fields["nomenclaturalCode"])
	assert.Equal(t, "accepted", fields["taxonomicStatus"])
	assert.Equal(t, "Arionidae", fields["family"])
	assert.Equal(t, "", fields["order"])
	assert.Equal(t, "RBINS", fields["institutionCode"])
}

func TestSpeciesProfileRow(t *testing.T) {
	sp := dwc.SpeciesProfile{TaxonID: "id", IsTerrestrial: true}
	assert.Equal(t, []string{"id", "false", "false", "true"}, sp.Row())
}

func TestDistributionRow(t *testing.T) {
	d := dwc.Distribution{
		TaxonID:          "id",
		OccurrenceStatus: "present",
		EventDate:        "1950/2000",
	}
	assert.Equal(t, []string{
		"id", "ISO_3166-2:BE", "Belgium", "BE", "present", "introduced",
		"1950/2000", "", "",
	}, d.Row())
}

func TestTables(t *testing.T) {
	tables := dwc.Tables()
	assert.Len(t, tables, 6)
	assert.True(t, tables[0].IsCore())
	for _, v := range tables[1:] {
		assert.False(t, v.IsCore(), v.Name)
	}
}
