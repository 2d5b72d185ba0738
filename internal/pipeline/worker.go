package pipeline

import (
	"context"
	"log/slog"

	"github.com/dgallion1/docdiff/internal/compare"
)

// Worker processes comparison jobs.
type Worker struct {
	comparer *compare.Comparer
	log      *slog.Logger
}

func NewWorker(comparer *compare.Comparer, log *slog.Logger) *Worker {
	return &Worker{comparer: comparer, log: log}
}

// Process parses both documents of a job, diffs them and records the result.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename_a", job.FilenameA, "filename_b", job.FilenameB)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	a, b := job.Inputs()
	docA, docB, err := w.comparer.Parse(ctx, a, b)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.Fail("parsing", err)
		return
	}

	// Phase 2: Diff
	job.SetStatus(StatusDiffing, "diffing")
	res, err := w.comparer.Diff(docA.Text(), docB.Text())
	if err != nil {
		log.Error("diff failed", "error", err)
		job.Fail("diffing", err)
		return
	}
	res.TitleA, res.TitleB = docA.Title, docB.Title

	job.Complete(res)
	log.Info("comparison complete",
		"runs", res.Stats.Runs,
		"words_deleted", res.Stats.WordsDeleted,
		"words_inserted", res.Stats.WordsInserted,
	)
}
