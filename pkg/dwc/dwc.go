// Package dwc defines Darwin Core records produced by the checklist
// conversion: Taxon core and Vernacular Names, Species Profile,
// Distribution, Literature References and Description extensions.
//
// Each record type knows its table layout, so writers do not need to know
// anything about the content.
package dwc

// TaxonomicStatus of a name.
type TaxonomicStatus string

const (
	Accepted           TaxonomicStatus = "accepted"
	HomotypicSynonym   TaxonomicStatus = "homotypicSynonym"
	HeterotypicSynonym TaxonomicStatus = "heterotypicSynonym"
	ProParteSynonym    TaxonomicStatus = "proParteSynonym"
)

// Constant values of the checklist.
const (
	Kingdom           = "Animalia"
	Phylum            = "Mollusca"
	NomenclaturalCode = "ICZN"

	LocationID         = "ISO_3166-2:BE"
	Locality           = "Belgium"
	CountryCode        = "BE"
	EstablishmentMeans = "introduced"

	DescriptionLanguage = "en"
)

// Record is a row of a Darwin Core table.
type Record interface {
	// Row returns values in the order of the table fields.
	Row() []string
}

// Metadata is copied to every taxon.
type Metadata struct {
	Language        string
	License         string
	RightsHolder    string
	DatasetID       string
	InstitutionCode string
	DatasetName     string
}

// Taxon is a record of the core table.
type Taxon struct {
	TaxonID             string
	AcceptedNameUsageID string
	ScientificName      string
	AcceptedNameUsage   string
	Class               string
	Order               string
	Family              string
	Genus               string
	TaxonRank           string
	TaxonomicStatus     TaxonomicStatus
	TaxonRemarks        string
	Metadata
}

func (t Taxon) Row() []string {
	return []string{
		t.TaxonID,
		t.AcceptedNameUsageID,
		t.ScientificName,
		t.AcceptedNameUsage,
		Kingdom,
		Phylum,
		t.Class,
		t.Order,
		t.Family,
		t.Genus,
		t.TaxonRank,
		NomenclaturalCode,
		string(t.TaxonomicStatus),
		t.TaxonRemarks,
		t.Language,
		t.License,
		t.RightsHolder,
		t.DatasetID,
		t.InstitutionCode,
		t.DatasetName,
	}
}

// VernacularName is a record of Vernacular Names extension.
type VernacularName struct {
	TaxonID        string
	VernacularName string
	Language       string
}

func (v VernacularName) Row() []string {
	return []string{v.TaxonID, v.VernacularName, v.Language}
}

// SpeciesProfile is a record of Species Profile extension.
type SpeciesProfile struct {
	TaxonID       string
	IsMarine      bool
	IsFreshwater  bool
	IsTerrestrial bool
}

func (s SpeciesProfile) Row() []string {
	return []string{
		s.TaxonID,
		boolStr(s.IsMarine),
		boolStr(s.IsFreshwater),
		boolStr(s.IsTerrestrial),
	}
}

// Distribution is a record of Distribution extension.
type Distribution struct {
	TaxonID           string
	OccurrenceStatus  string
	EventDate         string
	Source            string
	OccurrenceRemarks string
}

func (d Distribution) Row() []string {
	return []string{
		d.TaxonID,
		LocationID,
		Locality,
		CountryCode,
		d.OccurrenceStatus,
		EstablishmentMeans,
		d.EventDate,
		d.Source,
		d.OccurrenceRemarks,
	}
}

// Reference is a record of Literature References extension.
type Reference struct {
	TaxonID               string
	Identifier            string
	BibliographicCitation string
}

func (r Reference) Row() []string {
	return []string{r.TaxonID, r.Identifier, r.BibliographicCitation}
}

// DescriptionType is a category of a descriptor.
type DescriptionType string

const (
	NativeRange           DescriptionType = "native range"
	Pathway               DescriptionType = "pathway"
	DegreeOfEstablishment DescriptionType = "degree of establishment"
)

// Description is a record of Description extension.
type Description struct {
	TaxonID     string
	Description string
	Type        DescriptionType
	Language    string
}

func (d Description) Row() []string {
	return []string{d.TaxonID, d.Description, string(d.Type), d.Language}
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
