// Package seam finds minimum-energy vertical seams.
//
// A seam is one pixel per row, top to bottom, where consecutive rows differ
// by at most one column. The solver fills a cost table from the bottom row
// up, then walks the recorded directions down from the cheapest top cell.
package seam

import (
	"fmt"
	"time"

	"seam-carver/internal/logger"
	"seam-carver/pkg/colorutil"

	"golang.org/x/sync/errgroup"
)

// Step is the column offset from a cell to its chosen cell in the row below.
type Step int64

const (
	DownLeft   Step = -1
	DownMiddle Step = 0
	DownRight  Step = 1
)

// Candidate order for the fill. The first strict minimum wins, so ties
// resolve left, then middle, then right.
var steps = [3]Step{DownLeft, DownMiddle, DownRight}

// minColsPerWorker keeps tiny rows on the calling goroutine.
const minColsPerWorker = 256

// MaxPathCost bounds the cost of any seam through an h×w image: no more than
// h*w cells, each at most colorutil.MaxDiff.
func MaxPathCost(h, w int) int64 {
	return int64(h) * int64(w) * colorutil.MaxDiff
}

// Unreachable is the candidate cost used for out-of-range neighbors.
// It exceeds every real path cost for an h×w image.
func Unreachable(h, w int) int64 {
	return MaxPathCost(h, w) + 1
}

// Options configures a Solver.
type Options struct {
	// Workers splits each row's columns across goroutines. Values <= 1 fill
	// serially. Rows are always processed bottom to top.
	Workers int

	Logger logger.Logger
}

// DefaultOptions returns serial options with logging disabled.
func DefaultOptions() Options {
	return Options{Workers: 1, Logger: logger.Nop()}
}

// WithWorkers returns a copy of o using n workers.
func (o Options) WithWorkers(n int) Options {
	if n < 1 {
		n = 1
	}
	o.Workers = n
	return o
}

// WithLogger returns a copy of o logging to l.
func (o Options) WithLogger(l logger.Logger) Options {
	o.Logger = l
	return o
}

// Solver computes seams. It holds no per-call state and is safe for
// concurrent use.
type Solver struct {
	opts Options
}

// NewSolver returns a Solver with the given options.
func NewSolver(opts Options) *Solver {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Solver{opts: opts}
}

// Result holds a seam and the tables it was derived from.
type Result struct {
	Seam       Seam
	Cost       int64 // total importance along Seam
	Importance *Grid
	CostGrid   *Grid
	Directions *Grid // Step values
}

// FindLowestCostSeam returns the minimum-energy vertical seam of img using
// default options.
func FindLowestCostSeam(img Image) (Seam, error) {
	res, err := NewSolver(DefaultOptions()).Solve(img)
	if err != nil {
		return nil, err
	}
	return res.Seam, nil
}

// Solve computes the importance of img and its lowest-cost seam.
func (s *Solver) Solve(img Image) (*Result, error) {
	start := time.Now()

	importance, err := ComputeImportance(img)
	if err != nil {
		return nil, err
	}
	energyTime := time.Since(start)

	res, err := s.SolveImportance(importance)
	if err != nil {
		return nil, err
	}

	s.opts.Logger.Debug("solver", "seam computed", logger.Fields{
		"width":     importance.Cols,
		"height":    importance.Rows,
		"workers":   s.opts.Workers,
		"cost":      res.Cost,
		"energy_ms": energyTime.Milliseconds(),
		"total_ms":  time.Since(start).Milliseconds(),
	})
	return res, nil
}

// SolveImportance finds the lowest-cost seam through a precomputed
// importance grid. Cells must lie in [0, colorutil.MaxDiff], the range
// ComputeImportance produces; the grid is not modified.
func (s *Solver) SolveImportance(importance *Grid) (*Result, error) {
	if importance == nil || importance.Empty() {
		return nil, fmt.Errorf("%w: empty importance grid", ErrInvalidInput)
	}
	for i, v := range importance.cells {
		if v < 0 || v > colorutil.MaxDiff {
			return nil, fmt.Errorf("%w: importance %d at (%d,%d) out of range",
				ErrInvalidInput, v, i/importance.Cols, i%importance.Cols)
		}
	}

	cost, dirs, err := s.fill(importance)
	if err != nil {
		return nil, err
	}

	sm := backtrace(cost, dirs)
	return &Result{
		Seam:       sm,
		Cost:       cost.At(0, sm[0]),
		Importance: importance,
		CostGrid:   cost,
		Directions: dirs,
	}, nil
}

// fill builds the cost and direction tables bottom-up.
func (s *Solver) fill(importance *Grid) (cost, dirs *Grid, err error) {
	h, w := importance.Rows, importance.Cols
	cost = NewGrid(h, w)
	dirs = NewGrid(h, w)
	copy(cost.Row(h-1), importance.Row(h-1))

	unreachable := Unreachable(h, w)
	workers := s.workersFor(w)

	for r := h - 2; r >= 0; r-- {
		if workers == 1 {
			fillRow(importance, cost, dirs, r, 0, w, unreachable)
			continue
		}

		var g errgroup.Group
		chunk := (w + workers - 1) / workers
		for lo := 0; lo < w; lo += chunk {
			lo, hi := lo, min(lo+chunk, w)
			g.Go(func() error {
				fillRow(importance, cost, dirs, r, lo, hi, unreachable)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, fmt.Errorf("fill row %d: %w", r, err)
		}
	}

	return cost, dirs, nil
}

func (s *Solver) workersFor(cols int) int {
	workers := min(s.opts.Workers, cols/minColsPerWorker)
	if workers < 1 {
		return 1
	}
	return workers
}

// fillRow computes cost and direction for columns [lo, hi) of row r from
// the already-filled row r+1.
func fillRow(importance, cost, dirs *Grid, r, lo, hi int, unreachable int64) {
	w := cost.Cols
	below := cost.Row(r + 1)
	energy := importance.Row(r)
	costRow := cost.Row(r)
	dirRow := dirs.Row(r)

	for c := lo; c < hi; c++ {
		best := unreachable + 1
		bestStep := DownMiddle
		for _, st := range steps {
			candidate := unreachable
			if nc := c + int(st); nc >= 0 && nc < w {
				candidate = below[nc]
			}
			if candidate < best {
				best = candidate
				bestStep = st
			}
		}
		costRow[c] = energy[c] + best
		dirRow[c] = int64(bestStep)
	}
}

// backtrace picks the cheapest top cell, lowest column on ties, and follows
// the recorded directions down.
func backtrace(cost, dirs *Grid) Seam {
	top := cost.Row(0)
	start := 0
	for c := 1; c < len(top); c++ {
		if top[c] < top[start] {
			start = c
		}
	}

	sm := make(Seam, cost.Rows)
	sm[0] = start
	for r := 0; r < cost.Rows-1; r++ {
		sm[r+1] = sm[r] + int(dirs.At(r, sm[r]))
	}
	return sm
}
