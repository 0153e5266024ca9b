// Package ioconvert implements Converter interface for turning registry
// spreadsheets into a Darwin Core Archive directory.
// This is an impure I/O package that reads source CSV files and writes
// output files.
package ioconvert

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnmolluscs/internal/iofs"
	"github.com/gnames/gnmolluscs/internal/ioinput"
	"github.com/gnames/gnmolluscs/internal/iometrics"
	"github.com/gnames/gnmolluscs/internal/iooutput"
	"github.com/gnames/gnmolluscs/pkg/checklist"
	"github.com/gnames/gnmolluscs/pkg/config"
	"github.com/gnames/gnmolluscs/pkg/ranker"
	"github.com/gnames/gnmolluscs/pkg/report"
	"github.com/gnames/gnmolluscs/pkg/vocab"
)

// converter implements the Converter interface.
type converter struct {
	cfg *config.Config
	rnk ranker.Ranker
}

// New creates a new Converter. If rnk is nil, ranks are inferred by
// the scientific name parser.
func New(cfg *config.Config, rnk ranker.Ranker) checklist.Converter {
	if rnk == nil {
		rnk = ranker.New()
	}
	return &converter{cfg: cfg, rnk: rnk}
}

// Convert reads the source files, builds the checklist and writes it.
// Nothing is written if the checklist cannot be built.
func (c *converter) Convert(ctx context.Context) error {
	startTime := time.Now()
	slog.Info("Starting conversion",
		"input", c.cfg.Input.Dir,
		"output", c.cfg.Output.Dir,
	)

	gn.Info("(1/4) Loading vocabularies...")
	voc, err := c.vocabularies()
	if err != nil {
		return err
	}

	if err = checkCtx(ctx); err != nil {
		return err
	}
	gn.Info("(2/4) Reading source files from <em>%s</em>...", c.cfg.Input.Dir)
	in, err := ioinput.Read(c.cfg)
	if err != nil {
		return err
	}
	gn.Message("<em>Read %s taxa, %s synonyms, %s vernacular names, "+
		"%s references</em>",
		humanize.Comma(int64(len(in.Taxa))),
		humanize.Comma(int64(len(in.Synonyms))),
		humanize.Comma(int64(len(in.Vernaculars))),
		humanize.Comma(int64(len(in.References))),
	)

	if err = checkCtx(ctx); err != nil {
		return err
	}
	gn.Info("(3/4) Building checklist...")
	out, err := checklist.Build(c.cfg, c.rnk, voc, in)
	if err != nil {
		return err
	}
	gn.Message("<em>Created %s taxa and %s descriptions</em>",
		humanize.Comma(int64(len(out.Taxa))),
		humanize.Comma(int64(len(out.Descriptions))),
	)

	if err = checkCtx(ctx); err != nil {
		return err
	}
	gn.Info("(4/4) Writing files to <em>%s</em>...", c.cfg.Output.Dir)
	if err = iooutput.New(c.cfg).Write(out); err != nil {
		return err
	}

	summarize(&out.Report)

	if path := c.cfg.Output.MetricsFile; path != "" {
		if err = iometrics.Write(path, out, time.Since(startTime)); err != nil {
			return err
		}
		slog.Info("Saved metrics", "path", path)
	}

	dur := gnfmt.TimeString(time.Since(startTime).Seconds())
	slog.Info("Conversion complete",
		"taxa", len(out.Taxa),
		"anomalies", len(out.Report.Anomalies),
		"duration", dur,
	)
	gn.Info("Conversion complete. Elapsed time: <em>%s</em>", dur)
	return nil
}

// vocabularies returns built-in vocabularies or the ones from the file
// given in the config.
func (c *converter) vocabularies() (*vocab.Vocabularies, error) {
	path := c.cfg.VocabulariesFile
	if path == "" {
		return vocab.New()
	}
	data, err := iofs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Info("Using custom vocabularies", "path", path)
	return vocab.Load(data)
}

func summarize(r *report.Report) {
	if r.Empty() {
		return
	}
	counts := r.Counts()
	for _, k := range r.Kinds() {
		slog.Warn("Found data anomalies", "kind", k, "count", counts[k])
	}
	gn.Warn("Found <em>%s</em> data anomalies, see <em>%s</em>",
		humanize.Comma(int64(len(r.Anomalies))), iooutput.AnomaliesFile)
}

func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return CancelledError(ctx.Err())
	default:
		return nil
	}
}
