package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgallion1/docoutline/internal/layout"
)

// BatchItem is the outcome of one document in a batch.
type BatchItem struct {
	File   string
	Output string
	Title  string
	Err    error
}

// RunBatch extracts an outline for every supported file directly inside
// inDir, in name order, writing one artifact per document into outDir. A
// failed document is reported in its BatchItem and does not stop the
// others. The returned error covers only problems with the directories
// themselves or ctx ending.
func (o *Orchestrator) RunBatch(ctx context.Context, inDir, outDir string) ([]BatchItem, error) {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	opts := o.cfg.Outline
	format := o.cfg.Format()

	var jobs []*Job
	for _, e := range entries {
		if e.IsDir() || !layout.IsSupportedExtension(e.Name()) {
			continue
		}
		job := NewFileJob(filepath.Join(inDir, e.Name()), outDir, opts, format)
		if err := o.SubmitWait(ctx, job); err != nil {
			return collect(ctx, jobs), err
		}
		jobs = append(jobs, job)
	}

	items := collect(ctx, jobs)
	return items, ctx.Err()
}

func collect(ctx context.Context, jobs []*Job) []BatchItem {
	items := make([]BatchItem, 0, len(jobs))
	for _, job := range jobs {
		select {
		case <-job.Done():
		case <-ctx.Done():
			job.Fail("canceled", ctx.Err())
		}
		snap := job.Snapshot()
		items = append(items, BatchItem{
			File:   job.path,
			Output: snap.Result.Output,
			Title:  snap.Result.Title,
			Err:    job.Err(),
		})
	}
	return items
}
