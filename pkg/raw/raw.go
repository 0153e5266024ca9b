// Package raw describes records of the source spreadsheets as they are
// read from CSV exports. Values are kept verbatim, all transformations
// happen downstream.
package raw

// Taxon is one accepted species of the checklist.
type Taxon struct {
	// Row is the line of the record in the source file (header is line 1).
	Row int

	// ScientificName with authorship, required.
	ScientificName string

	Class  string
	Order  string
	Family string
	Genus  string

	// NativeRange is a " | " delimited list of regions.
	NativeRange string

	// IntroductionPathway is a " | " delimited list of CBD pathways.
	IntroductionPathway string

	// DegreeOfEstablishment contains one or several Blackburn et al. 2011
	// stages, for example "C3" or "C1 - C3".
	DegreeOfEstablishment string

	OccurrenceStatus string

	// FirstObservation is a year, required.
	FirstObservation string

	// LastObservation is a year, optional.
	LastObservation string

	// SourceDistribution is a citation of the distribution data.
	SourceDistribution string

	// Realm is a habitat type of the species (terrestrial, freshwater,
	// marine).
	Realm string

	// Remarks are exported as taxon remarks.
	Remarks string

	// OccurrenceRemarks are exported with the distribution.
	OccurrenceRemarks string
}

// Synonym is a name that resolves to an accepted taxon.
type Synonym struct {
	// Row is the line of the record in the source file.
	Row int

	// ScientificName of the synonym.
	ScientificName string

	// SynonymOf is the scientific name of the accepted taxon.
	SynonymOf string

	// Remarks is free text. The value "original name" marks a homotypic
	// synonym.
	Remarks string
}

// Vernacular is a common name of an accepted taxon.
type Vernacular struct {
	Row            int
	ScientificName string
	VernacularName string
	// Language is a free-text language name like "Dutch".
	Language string
}

// Reference is a literature reference about an accepted taxon.
type Reference struct {
	Row            int
	ScientificName string
	Identifier     string
	Citation       string
}
