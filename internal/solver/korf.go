package solver

import (
	"github.com/pkg/errors"

	"github.com/ehrlich-b/cubik/internal/cube"
)

// Table cardinalities. The three tables together are the byte-exact
// krof.dat layout: edges A, edges B, corners.
const (
	cornersTableSize = 88179840 // 8! * 3^7
	edgesTableSize   = 42577920 // 12!/6! * 2^6
)

// parallelDepth is the bound from which Korf fans the 18 first moves
// out to the worker pool. Shallower searches finish faster than the
// goroutine handoff costs.
const parallelDepth = 11

// Korf is the optimal solver: IDA* over the max of three pattern
// databases (all eight corners, and two halves of the edges).
type Korf struct {
	workers int
	corners []byte
	edgesA  []byte
	edgesB  []byte
}

// NewKorf returns a Korf solver with the given worker budget. The
// tables are empty until Init.
func NewKorf(workers int) (*Korf, error) {
	if err := checkWorkers(workers); err != nil {
		return nil, err
	}
	return &Korf{workers: workers}, nil
}

// Init builds the three pattern databases in memory, or loads them
// from path when one is given. Building walks the full corner space
// and both six-edge spaces breadth-first and takes several minutes.
func (k *Korf) Init(path string) error {
	k.edgesA = make([]byte, edgesTableSize)
	k.edgesB = make([]byte, edgesTableSize)
	k.corners = make([]byte, cornersTableSize)

	if path != "" {
		return loadTables(path, k.edgesA, k.edgesB, k.corners)
	}

	roots := []cube.Cube{cube.NewCube()}
	buildTable(k.edgesA, encodeEdgesA, roots, false, nil)
	buildTable(k.edgesB, encodeEdgesB, roots, false, nil)
	buildTable(k.corners, encodeCorners, roots, false, nil)
	return nil
}

// Save writes the tables to path in the fixed edges-A, edges-B,
// corners order.
func (k *Korf) Save(path string) error {
	if k.corners == nil {
		return errors.Wrap(ErrTableSave, "tables not initialized")
	}
	return saveTables(path, k.edgesA, k.edgesB, k.corners)
}

// encodeCorners indexes all eight corners: the full permutation rank
// times 3^7 orientation states (the eighth twist is implied by the
// sum-zero invariant).
func encodeCorners(c *cube.Cube) int {
	cp, co := c.Corners()
	v := 0
	for i := 6; i >= 0; i-- {
		v = v*3 + int(co[i])
	}
	return encodePerm(cp[:], 8, 7, coef8[:])*2187 + v
}

// encodeEdgesA indexes the positions and flips of the six edges whose
// home slots are 0..5. perm[t] is the slot currently holding tracked
// edge t; the six flip bits pack below the position rank.
func encodeEdgesA(c *cube.Cube) int {
	ep, eo := c.Edges()
	var perm [6]int8
	v := 0
	for i := int8(0); i < 12; i++ {
		if t := ep[i]; t < 6 {
			perm[t] = i
			v |= int(eo[i]) << t
		}
	}
	return encodePerm(perm[:], 12, 6, coef12[:])<<6 | v
}

// encodeEdgesB is the symmetric index for home slots 6..11.
func encodeEdgesB(c *cube.Cube) int {
	ep, eo := c.Edges()
	var perm [6]int8
	v := 0
	for i := int8(0); i < 12; i++ {
		if t := ep[i] - 6; t >= 0 {
			perm[t] = i
			v |= int(eo[i]) << t
		}
	}
	return encodePerm(perm[:], 12, 6, coef12[:])<<6 | v
}

// estimate is the admissible heuristic: the max of the three database
// distances never overestimates the true distance.
func (k *Korf) estimate(c *cube.Cube) int {
	h := k.corners[encodeCorners(c)]
	if e := k.edgesA[encodeEdgesA(c)]; e > h {
		h = e
	}
	if e := k.edgesB[encodeEdgesB(c)]; e > h {
		h = e
	}
	return int(h)
}

// korfSearch carries one depth-limited DFS. seq is owned by a single
// worker; cancel is the shared winner id, checked on every entry.
type korfSearch struct {
	cb     cube.Cube
	g      int
	face   int8
	depth  int
	seq    []cube.Move
	cancel *winnerFlag
}

// search runs the depth-bounded DFS of IDA*. Children are expanded in
// face order then quarter-turn order; each quarter turn reuses the
// working copy so the three turns of a face cost three rotates, not
// six.
func (k *Korf) search(s *korfSearch) bool {
	if s.cancel != nil && s.cancel.Claimed() {
		return false
	}

	for f := int8(0); f < 6; f++ {
		if f == s.face || disallowFaces[f] == s.face {
			continue
		}
		c := s.cb
		for j := 1; j <= 3; j++ {
			c.Rotate(cube.Face(f), 1)
			h := k.estimate(&c)
			if h+s.g+1 > s.depth {
				continue
			}
			s.seq[s.g] = cube.Move{Face: cube.Face(f), Turns: j}
			if h == 0 && c.IsSolved() {
				return true
			}
			t := *s
			t.cb = c
			t.g++
			t.face = f
			if k.search(&t) {
				return true
			}
		}
	}
	return false
}

// Solve returns an optimal solution for c. The outer loop deepens the
// bound one move at a time; depths of parallelDepth and beyond are
// split across the worker pool by first move.
func (k *Korf) Solve(c cube.Cube) ([]cube.Move, error) {
	if k.corners == nil {
		return nil, errors.Wrap(ErrConfig, "solver not initialized")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(ErrUnsolvable, err.Error())
	}
	if c.IsSolved() {
		return []cube.Move{}, nil
	}

	for depth := 1; ; depth++ {
		if depth >= parallelDepth && k.workers > 1 {
			if seq, ok := k.searchRootsParallel(c, depth); ok {
				return cube.Normalize(seq), nil
			}
			continue
		}
		s := korfSearch{
			cb:    c,
			face:  noFace,
			depth: depth,
			seq:   make([]cube.Move, depth),
		}
		if k.search(&s) {
			return cube.Normalize(s.seq), nil
		}
	}
}
