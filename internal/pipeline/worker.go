package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/docoutline/internal/layout"
	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/render"
)

// Worker processes a single document job.
type Worker struct {
	layout layout.Options
	stats  *Stats
	log    *slog.Logger
}

func NewWorker(lopts layout.Options, stats *Stats, log *slog.Logger) *Worker {
	return &Worker{
		layout: lopts,
		stats:  stats,
		log:    log,
	}
}

// Process reads the job's document, builds its outline and, for file jobs,
// writes the rendered artifact. Any failure fails only this job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "file", job.Filename)
	start := time.Now()

	// Phase 1: Read layout
	job.SetStatus(StatusReading, "reading")
	var doc *layout.Document
	var err error
	if job.path != "" {
		doc, err = layout.Open(ctx, job.path, w.layout)
	} else {
		doc, err = layout.ReadBytes(ctx, job.FileData(), job.Filename, w.layout)
	}
	if err != nil {
		w.fail(log, job, "reading", err)
		return
	}
	if len(doc.Skipped) > 0 {
		log.Warn("skipped unparseable pages", "pages", doc.Skipped)
	}
	if doc.Bookmarks > 0 {
		log.Info("document embeds bookmarks, using layout heuristics anyway", "bookmarks", doc.Bookmarks)
	}

	// Phase 2: Build outline
	job.SetStatus(StatusExtracting, "extracting")
	out := outline.Build(doc.Lines(), job.opts)
	res := Result{
		Pages:        len(doc.Pages),
		Bookmarks:    doc.Bookmarks,
		SkippedPages: doc.Skipped,
	}
	log.Info("outline built", "pages", res.Pages, "headings", len(out.Outline))

	// Phase 3: Write artifact
	if job.outDir != "" {
		job.SetStatus(StatusWriting, "writing")
		path, err := writeArtifact(job.outDir, job.Filename, job.format, out)
		if err != nil {
			w.fail(log, job, "writing", err)
			return
		}
		res.Output = path
	}

	// Free the upload once the outline exists.
	job.SetFileData(nil)
	w.stats.Record(time.Since(start).Milliseconds(), res.Pages)
	job.Complete(out, res)
	log.Info("job completed", "title", out.Title, "duration_ms", time.Since(start).Milliseconds())
}

func (w *Worker) fail(log *slog.Logger, job *Job, phase string, err error) {
	log.Error("job failed", "phase", phase, "error", err)
	job.SetFileData(nil)
	w.stats.RecordFailure()
	job.Fail(phase, err)
}

// ArtifactName is the output filename for a document: its base name with
// the extension replaced by the format's.
func ArtifactName(filename string, format render.Format) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base)) + format.Ext()
}

// writeArtifact renders doc into a temp file in dir and renames it into
// place, so a failed write never leaves a partial artifact behind.
func writeArtifact(dir, filename string, format render.Format, doc outline.Document) (string, error) {
	final := filepath.Join(dir, ArtifactName(filename, format))

	tmp, err := os.CreateTemp(dir, "."+ArtifactName(filename, format)+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp artifact: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := render.Write(tmp, doc, format); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return "", fmt.Errorf("chmod temp artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp artifact: %w", err)
	}
	if err := os.Rename(tmpPath, final); err != nil {
		return "", fmt.Errorf("rename artifact: %w", err)
	}
	return final, nil
}
