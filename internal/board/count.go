package board

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

type offset struct{ dy, dx int }

var neighbours = [8]offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Count returns a new grid where every non-mine cell holds the number of
// mines around it. g is left untouched.
func Count(g Grid) Grid {
	out := newGrid(g.rows, g.cols)
	g.countRows(out, 0, g.rows)
	return out
}

// CountParallel is [Count] with rows split into bands counted concurrently.
// workers <= 0 means GOMAXPROCS.
func CountParallel(g Grid, workers int) Grid {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := newGrid(g.rows, g.cols)
	if g.rows == 0 || g.cols == 0 {
		return out
	}
	workers = min(workers, g.rows)

	band := (g.rows + workers - 1) / workers
	var eg errgroup.Group
	eg.SetLimit(workers)
	for from := 0; from < g.rows; from += band {
		to := min(from+band, g.rows)
		eg.Go(func() error {
			g.countRows(out, from, to)
			return nil
		})
	}
	eg.Wait()

	Log.Debug("counted grid in parallel",
		"rows", g.rows, "cols", g.cols, "workers", workers, "band", band)
	return out
}

/*
 * Each output cell depends on the input grid only, so disjoint row ranges
 * can be written by different goroutines without locking.
 */
func (g Grid) countRows(out Grid, from, to int) {
	for y := from; y < to; y++ {
		for x := range g.cols {
			i := y*g.cols + x
			if g.cells[i] == Mine {
				out.cells[i] = Mine
				continue
			}
			out.cells[i] = Counted(g.adjacentMines(y, x))
		}
	}
}

func (g Grid) adjacentMines(y, x int) (n int) {
	for _, o := range neighbours {
		yy, xx := y+o.dy, x+o.dx
		if g.InBounds(yy, xx) && g.cells[yy*g.cols+xx] == Mine {
			n++
		}
	}
	return
}
