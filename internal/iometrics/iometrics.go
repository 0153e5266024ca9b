// Package iometrics saves statistics of a conversion in Prometheus text
// exposition format. The file is meant for node_exporter textfile
// collector, so a scheduled conversion can be monitored without a server.
package iometrics

import (
	"time"

	"github.com/gnames/gnmolluscs/pkg/checklist"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gnmolluscs"

// Write saves row counts of every table, anomaly counts per kind and the
// duration of the conversion to path.
func Write(path string, out *checklist.Output, dur time.Duration) error {
	reg := prometheus.NewRegistry()

	rows := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "output_rows",
		Help:      "Number of rows written to a Darwin Core table.",
	}, []string{"table"})
	anomalies := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "anomalies",
		Help:      "Number of data anomalies of a kind.",
	}, []string{"kind"})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "conversion_duration_seconds",
		Help:      "Duration of the last conversion.",
	})
	lastSuccess := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_success_timestamp_seconds",
		Help:      "Time when the last conversion finished.",
	})
	reg.MustRegister(rows, anomalies, duration, lastSuccess)

	for name, recs := range out.Records() {
		rows.WithLabelValues(name).Set(float64(len(recs)))
	}
	for kind, n := range out.Report.Counts() {
		anomalies.WithLabelValues(string(kind)).Set(float64(n))
	}
	duration.Set(dur.Seconds())
	lastSuccess.SetToCurrentTime()

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}
