// Package report collects data-quality anomalies found during conversion.
// Anomalies are not fatal: the conversion continues, affected rows stay in
// the output and the report lists them for curators.
package report

import (
	"maps"
	"slices"
	"strconv"
)

// Kind is a category of an anomaly.
type Kind string

const (
	// UnresolvedSynonym is a synonym pointing to a name absent from the
	// accepted taxa.
	UnresolvedSynonym Kind = "unresolved_synonym"

	// UnmatchedName is an extension row whose scientific name does not
	// match any accepted taxon.
	UnmatchedName Kind = "unmatched_name"

	// DuplicateSynonym is a repeated (name, synonym of) pair.
	DuplicateSynonym Kind = "duplicate_synonym"

	// RealmMismatch is a taxon which realm contradicts the species profile
	// of the checklist.
	RealmMismatch Kind = "realm_mismatch"
)

// Anomaly describes one problematic source row.
type Anomaly struct {
	Kind Kind

	// Table is the name of the source table.
	Table string

	// Line is the line of the row in the source file.
	Line int

	// Name is the scientific name of the row.
	Name string

	Message string
}

// Header returns column names of the anomalies file.
func Header() []string {
	return []string{"kind", "table", "line", "scientificName", "message"}
}

// Row returns anomaly fields in the order of Header.
func (a Anomaly) Row() []string {
	return []string{
		string(a.Kind), a.Table, strconv.Itoa(a.Line), a.Name, a.Message,
	}
}

// Report accumulates anomalies of a conversion.
type Report struct {
	Anomalies []Anomaly
}

// Add appends anomalies to the report.
func (r *Report) Add(as ...Anomaly) {
	r.Anomalies = append(r.Anomalies, as...)
}

// Empty is true when no anomalies were found.
func (r *Report) Empty() bool {
	return len(r.Anomalies) == 0
}

// Counts returns the number of anomalies per kind.
func (r *Report) Counts() map[Kind]int {
	res := make(map[Kind]int)
	for _, v := range r.Anomalies {
		res[v.Kind]++
	}
	return res
}

// Kinds returns sorted kinds present in the report.
func (r *Report) Kinds() []Kind {
	return slices.Sorted(maps.Keys(r.Counts()))
}
