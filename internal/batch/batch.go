// Package batch runs the board transform over many sources at once and
// hands the results back in input order.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/gammazero/deque"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minefield/internal/board"
	"github.com/vancomm/minefield/internal/input"
)

var Log = logrus.New()

type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic while processing source: %v", e.Value)
}

// Result is the outcome of one board. Exactly one of Lines and Err is set.
type Result struct {
	Board input.Board
	Lines []string
	Err   error
}

type Job struct {
	ID      uuid.UUID
	Source  Source
	Results []Result
	Err     error // the source could not be read at all
}

func (j *Job) Invalid() (n int) {
	for _, r := range j.Results {
		if r.Err != nil {
			n++
		}
	}
	return
}

func (j *Job) Failed() bool {
	return j.Err != nil || j.Invalid() > 0
}

type Runner struct {
	Workers     int
	Transformer board.Transformer
	Middleware  []Middleware
}

// Run processes every source and returns one job per source, in the order
// the sources were given. A cancelled ctx stops scheduling; jobs that never
// started carry ctx.Err().
func (r Runner) Run(ctx context.Context, sources []Source) ([]*Job, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	jobs := make([]*Job, len(sources))
	var pending deque.Deque[*Job]
	for i, src := range sources {
		jobs[i] = &Job{ID: uuid.New(), Source: src}
		pending.PushBack(jobs[i])
	}

	handle := Wrap(r.process, r.Middleware...)

	var g errgroup.Group
	g.SetLimit(workers)
	for pending.Len() > 0 {
		job := pending.PopFront()
		if err := ctx.Err(); err != nil {
			job.Err = err
			continue
		}
		g.Go(func() error {
			if err := handle(ctx, job); err != nil && job.Err == nil {
				job.Err = err
			}
			return nil
		})
	}
	g.Wait()

	return jobs, ctx.Err()
}

func (r Runner) process(ctx context.Context, job *Job) error {
	rc, err := job.Source.Open()
	if err != nil {
		return fmt.Errorf("unable to open source: %w", err)
	}
	defer rc.Close()

	boards, err := input.Read(rc)
	if err != nil {
		return fmt.Errorf("unable to read source: %w", err)
	}

	job.Results = make([]Result, len(boards))
	for i, b := range boards {
		lines, err := r.Transformer.Transform(b.Lines)
		job.Results[i] = Result{Board: b, Lines: lines, Err: err}

		var ve *board.ValidationError
		if errors.As(err, &ve) {
			Log.WithFields(logrus.Fields{
				"job":   job.ID.String(),
				"board": b.Index,
				"line":  b.Line,
			}).Debug("invalid board: ", err)
		}
	}
	return nil
}
