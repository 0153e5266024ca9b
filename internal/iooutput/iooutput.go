// Package iooutput writes the checklist as a Darwin Core Archive directory:
// one CSV file per table, meta.xml descriptor and a report of anomalies.
package iooutput

import (
	"encoding/csv"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnmolluscs/pkg/checklist"
	"github.com/gnames/gnmolluscs/pkg/config"
	"github.com/gnames/gnmolluscs/pkg/dwc"
	"github.com/gnames/gnmolluscs/pkg/report"
	"github.com/gnames/gnsys"
)

const (
	// MetaFile describes files of the archive.
	MetaFile = "meta.xml"

	// AnomaliesFile lists problems of the source data.
	AnomaliesFile = "anomalies.csv"
)

// FileName returns the name of the CSV file of a table.
func FileName(t dwc.Table) string {
	return t.Name + ".csv"
}

// Writer saves checklist files to the output directory.
type Writer struct {
	dir          string
	withProgress bool
}

// New creates a Writer for the output settings of the config.
func New(cfg *config.Config) *Writer {
	return &Writer{
		dir:          cfg.Output.Dir,
		withProgress: cfg.Output.WithProgress,
	}
}

// Write creates the output directory and saves all tables, meta.xml and,
// if there are anomalies, the anomalies report. A report left from a
// previous run is removed when there are no anomalies.
func (w *Writer) Write(out *checklist.Output) error {
	if err := gnsys.MakeDir(w.dir); err != nil {
		return CreateDirError(w.dir, err)
	}

	recs := out.Records()
	for _, t := range dwc.Tables() {
		rows := recs[t.Name]
		path := filepath.Join(w.dir, FileName(t))
		if err := w.writeTable(path, t.Header(), rows); err != nil {
			return err
		}
		slog.Info("Wrote table",
			"file", FileName(t), "rows", humanize.Comma(int64(len(rows))))
	}

	if err := WriteMeta(filepath.Join(w.dir, MetaFile)); err != nil {
		return err
	}

	return w.writeReport(&out.Report)
}

func (w *Writer) writeTable(
	path string,
	header []string,
	rows []dwc.Record,
) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return WriteFileError(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = WriteFileError(path, cerr)
		}
	}()

	var bar *pb.ProgressBar
	if w.withProgress {
		bar = pb.Full.Start(len(rows))
		bar.Set("prefix", filepath.Base(path)+": ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	cw := csv.NewWriter(f)
	if err = cw.Write(header); err != nil {
		return WriteFileError(path, err)
	}
	for _, v := range rows {
		if err = cw.Write(v.Row()); err != nil {
			return WriteFileError(path, err)
		}
		if bar != nil {
			bar.Increment()
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return WriteFileError(path, err)
	}
	if err = f.Sync(); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}

func (w *Writer) writeReport(r *report.Report) error {
	path := filepath.Join(w.dir, AnomaliesFile)
	if r.Empty() {
		err := os.Remove(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return WriteFileError(path, err)
		}
		return nil
	}

	rows := make([]dwc.Record, len(r.Anomalies))
	for i := range r.Anomalies {
		rows[i] = r.Anomalies[i]
	}
	return w.writeTable(path, report.Header(), rows)
}
