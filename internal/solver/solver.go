// Package solver implements optimal and near-optimal 3x3x3 solvers:
// Korf's IDA* over three pattern databases and Kociemba's two-phase
// search. Both share the heuristic-table builder and the permutation
// codec.
package solver

import (
	"github.com/pkg/errors"

	"github.com/ehrlich-b/cubik/internal/cube"
)

// Error kinds. Call sites wrap these with context; errors.Cause
// recovers the kind.
var (
	ErrTableLoad  = errors.New("pattern table load failed")
	ErrTableSave  = errors.New("pattern table save failed")
	ErrUnsolvable = errors.New("cube state is not solvable")
	ErrConfig     = errors.New("invalid solver configuration")
)

// Solver is the contract both algorithms satisfy. Init with an empty
// path builds the heuristic tables in memory; with a path it loads
// them from disk. Save persists them (a no-op for Kociemba, whose
// tables rebuild in seconds). Solve returns a move sequence with
// counterclockwise turns normalized to -1.
type Solver interface {
	Init(path string) error
	Save(path string) error
	Solve(c cube.Cube) ([]cube.Move, error)
}

// maxWorkers mirrors the original CLI's refusal of implausible thread
// counts.
const maxWorkers = 32

func checkWorkers(n int) error {
	if n < 1 || n > maxWorkers {
		return errors.Wrapf(ErrConfig, "worker budget %d outside 1..%d", n, maxWorkers)
	}
	return nil
}

// New returns a solver by algorithm name.
func New(name string, workers int) (Solver, error) {
	switch name {
	case "korf":
		return NewKorf(workers)
	case "kociemba":
		return NewKociemba(workers)
	default:
		return nil, errors.Wrapf(ErrConfig, "unknown algorithm %q", name)
	}
}

// disallowFaces canonicalizes move sequences: after a turn of face f,
// a turn of face i is pruned when i == f or disallowFaces[i] == f, so
// same-face pairs collapse and opposite-face pairs appear in one fixed
// order only. Index order is U, D, F, B, L, R.
var disallowFaces = [6]int8{-1, 0, -1, 2, -1, 4}

// noFace marks "no previous move" at the search root.
const noFace = 6
