package report_test

import (
	"testing"

	"github.com/gnames/gnmolluscs/pkg/report"
	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	var r report.Report
	assert.True(t, r.Empty())

	r.Add(
		report.Anomaly{Kind: report.UnmatchedName, Table: "vernacular_names", Line: 4},
		report.Anomaly{Kind: report.UnresolvedSynonym, Table: "synonyms", Line: 2},
	)
	r.Add(report.Anomaly{Kind: report.UnmatchedName, Table: "references", Line: 7})

	assert.False(t, r.Empty())
	counts := r.Counts()
	assert.Equal(t, 2, counts[report.UnmatchedName])
	assert.Equal(t, 1, counts[report.UnresolvedSynonym])
	assert.Equal(t,
		[]report.Kind{report.UnmatchedName, report.UnresolvedSynonym},
		r.Kinds(),
	)
}

func TestAnomalyRow(t *testing.T) {
	a := report.Anomaly{
		Kind:    report.UnresolvedSynonym,
		Table:   "synonyms",
		Line:    12,
		Name:    "Helix pisana Müller, 1774",
		Message: "no accepted taxon",
	}
	assert.Equal(t, len(report.Header()), len(a.Row()))
	assert.Equal(t, []string{
		"unresolved_synonym", "synonyms", "12",
		"Helix pisana Müller, 1774", "no accepted taxon",
	}, a.Row())
}
