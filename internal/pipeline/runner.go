package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/sync/errgroup"

	"github.com/docforge/outliner/internal/layout"
	"github.com/docforge/outliner/internal/outline"
	"github.com/docforge/outliner/internal/profile"
)

// Runner processes every PDF in an input directory into a JSON outline in
// the output directory. Documents are independent, so the batch can run
// with bounded concurrency; Workers=1 gives strictly sequential processing.
type Runner struct {
	InputDir    string
	OutputDir   string
	Workers     int
	SamplePages int
	Log         *slog.Logger
	Stats       *RunStats
}

// Summary counts the outcome of one batch run.
type Summary struct {
	Processed int
	Skipped   int
}

// Run executes the batch. It returns an error only for configuration
// failures (absent input directory, unwritable output directory) or
// cancellation; individual undecodable documents are logged and skipped
// without producing an output file.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	files, err := Scan(r.InputDir)
	if err != nil {
		return Summary{}, err
	}
	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output directory: %w", err)
	}
	r.Log.Info("starting batch", "input", r.InputDir, "output", r.OutputDir, "files", len(files))

	workers := r.Workers
	if workers <= 0 {
		workers = 1
	}

	var processed, skipped atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := r.processFile(file); err != nil {
				r.Log.Error("skipping document", "file", file.Path, "error", err)
				skipped.Add(1)
				return nil
			}
			processed.Add(1)
			return nil
		})
	}

	err = g.Wait()
	sum := Summary{Processed: int(processed.Load()), Skipped: int(skipped.Load())}
	r.Log.Info("batch finished", "processed", sum.Processed, "skipped", sum.Skipped)
	return sum, err
}

func (r *Runner) processFile(file FileInfo) error {
	// Cheap structural preflight before full text decoding; catches
	// truncated and non-PDF files early.
	pageCount, err := api.PageCountFile(file.Path)
	if err != nil {
		return fmt.Errorf("preflight: %w", err)
	}

	doc, err := layout.Open(file.Path)
	if err != nil {
		return err
	}

	start := time.Now()
	prof := profile.Build(doc.Pages, r.SamplePages)
	res := outline.Extract(doc, prof)
	if r.Stats != nil {
		r.Stats.Record(time.Since(start).Milliseconds())
	}

	if err := outline.Validate(res, doc.PageCount()); err != nil {
		return fmt.Errorf("validate outline: %w", err)
	}

	path, err := WriteResult(r.OutputDir, file.Base, res)
	if err != nil {
		return err
	}
	r.Log.Info("outline written",
		"file", file.Path,
		"pages", pageCount,
		"headings", len(res.Outline),
		"output", path,
	)
	return nil
}
