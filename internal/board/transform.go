package board

import (
	"errors"
	"log/slog"
)

var Log *slog.Logger = slog.Default()

// Transform validates raw, counts adjacent mines for every free cell and
// renders the annotated board. The only errors returned are
// [*ValidationError] values.
func Transform(raw []string) ([]string, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}
	return Format(Count(Parse(raw))), nil
}

// Transformer runs [Transform] and switches to [CountParallel] for boards
// of at least ParallelThreshold cells. The zero value never goes parallel.
type Transformer struct {
	Workers           int
	ParallelThreshold int
}

func (t Transformer) Transform(raw []string) (lines []string, err error) {
	defer recoverAssertion(&lines, &err)

	if err := Validate(raw); err != nil {
		return nil, err
	}

	grid := Parse(raw)
	if t.parallel(grid) {
		grid = CountParallel(grid, t.Workers)
	} else {
		grid = Count(grid)
	}
	return Format(grid), nil
}

// recoverAssertion must be deferred directly. It turns an [AssertionError]
// panic into an error return and re-panics anything else.
func recoverAssertion(lines *[]string, err *error) {
	r := recover()
	if r == nil {
		return
	}
	var ae AssertionError
	if e, ok := r.(error); ok && errors.As(e, &ae) {
		Log.Error("board invariant broken", slog.Any("error", ae))
		*lines, *err = nil, ae
		return
	}
	panic(r)
}

func (t Transformer) parallel(g Grid) bool {
	return t.ParallelThreshold > 0 && g.Len() >= t.ParallelThreshold
}
