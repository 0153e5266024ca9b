package dwc

const (
	dwcNS    = "http://rs.tdwg.org/dwc/terms/"
	dcNS     = "http://purl.org/dc/terms/"
	gbifNS   = "http://rs.gbif.org/terms/1.0/"
	rowTaxon = dwcNS + "Taxon"
	rowGBIF  = gbifNS
)

// CoreID is the column that links extensions to the core. It is the first
// column of every table.
const CoreID = "taxonID"

// Term is a column of a Darwin Core table.
type Term struct {
	// Name is the column header.
	Name string
	// URI is the qualified name of the term.
	URI string
}

// Table describes a file of a Darwin Core Archive.
type Table struct {
	// Name is the base name of the file without extension.
	Name string

	// RowType is the URI of the record class.
	RowType string

	// Terms are the columns in the order of Record.Row.
	Terms []Term
}

// Header returns the column names of the table.
func (t Table) Header() []string {
	res := make([]string, len(t.Terms))
	for i, v := range t.Terms {
		res[i] = v.Name
	}
	return res
}

// IsCore is true for the Taxon table.
func (t Table) IsCore() bool {
	return t.RowType == rowTaxon
}

func dwcTerm(name string) Term  { return Term{Name: name, URI: dwcNS + name} }
func dcTerm(name string) Term   { return Term{Name: name, URI: dcNS + name} }
func gbifTerm(name string) Term { return Term{Name: name, URI: gbifNS + name} }

var (
	TaxonTable = Table{
		Name:    "taxon",
		RowType: rowTaxon,
		Terms: []Term{
			dwcTerm("taxonID"),
			dwcTerm("acceptedNameUsageID"),
			dwcTerm("scientificName"),
			dwcTerm("acceptedNameUsage"),
			dwcTerm("kingdom"),
			dwcTerm("phylum"),
			dwcTerm("class"),
			dwcTerm("order"),
			dwcTerm("family"),
			dwcTerm("genus"),
			dwcTerm("taxonRank"),
			dwcTerm("nomenclaturalCode"),
			dwcTerm("taxonomicStatus"),
			dwcTerm("taxonRemarks"),
			dcTerm("language"),
			dcTerm("license"),
			dcTerm("rightsHolder"),
			dwcTerm("datasetID"),
			dwcTerm("institutionCode"),
			dwcTerm("datasetName"),
		},
	}

	VernacularNameTable = Table{
		Name:    "vernacularname",
		RowType: rowGBIF + "VernacularName",
		Terms: []Term{
			dwcTerm("taxonID"),
			dwcTerm("vernacularName"),
			dcTerm("language"),
		},
	}

	SpeciesProfileTable = Table{
		Name:    "speciesprofile",
		RowType: rowGBIF + "SpeciesProfile",
		Terms: []Term{
			dwcTerm("taxonID"),
			gbifTerm("isMarine"),
			gbifTerm("isFreshwater"),
			gbifTerm("isTerrestrial"),
		},
	}

	DistributionTable = Table{
		Name:    "distribution",
		RowType: rowGBIF + "Distribution",
		Terms: []Term{
			dwcTerm("taxonID"),
			dwcTerm("locationID"),
			dwcTerm("locality"),
			dwcTerm("countryCode"),
			dwcTerm("occurrenceStatus"),
			dwcTerm("establishmentMeans"),
			dwcTerm("eventDate"),
			dcTerm("source"),
			dwcTerm("occurrenceRemarks"),
		},
	}

	ReferenceTable = Table{
		Name:    "references",
		RowType: rowGBIF + "Reference",
		Terms: []Term{
			dwcTerm("taxonID"),
			dcTerm("identifier"),
			dcTerm("bibliographicCitation"),
		},
	}

	DescriptionTable = Table{
		Name:    "description",
		RowType: rowGBIF + "Description",
		Terms: []Term{
			dwcTerm("taxonID"),
			dcTerm("description"),
			dcTerm("type"),
			dcTerm("language"),
		},
	}
)

// Tables lists all tables of the archive, core first.
func Tables() []Table {
	return []Table{
		TaxonTable,
		VernacularNameTable,
		SpeciesProfileTable,
		DistributionTable,
		ReferenceTable,
		DescriptionTable,
	}
}
