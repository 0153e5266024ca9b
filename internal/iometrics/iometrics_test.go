package iometrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gnames/gnmolluscs/internal/iometrics"
	"github.com/gnames/gnmolluscs/pkg/checklist"
	"github.com/gnames/gnmolluscs/pkg/dwc"
	"github.com/gnames/gnmolluscs/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	out := &checklist.Output{
		Taxa:         []dwc.Taxon{{TaxonID: "a"}, {TaxonID: "b"}},
		Descriptions: []dwc.Description{{TaxonID: "a"}},
	}
	out.Report.Add(report.Anomaly{Kind: report.UnmatchedName})

	path := filepath.Join(t.TempDir(), "gnmolluscs.prom")
	err := iometrics.Write(path, out, 1500*time.Millisecond)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	txt := string(data)
	assert.Contains(t, txt, `gnmolluscs_output_rows{table="taxon"} 2`)
	assert.Contains(t, txt, `gnmolluscs_output_rows{table="description"} 1`)
	assert.Contains(t, txt, `gnmolluscs_output_rows{table="references"} 0`)
	assert.Contains(t, txt, `gnmolluscs_anomalies{kind="unmatched_name"} 1`)
	assert.Contains(t, txt, "gnmolluscs_conversion_duration_seconds 1.5")
	assert.Contains(t, txt, "gnmolluscs_last_success_timestamp_seconds")
}

func TestWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "gnmolluscs.prom")
	err := iometrics.Write(path, &checklist.Output{}, time.Second)
	assert.Error(t, err)
}
