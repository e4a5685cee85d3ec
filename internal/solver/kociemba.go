package solver

import (
	"github.com/pkg/errors"

	"github.com/ehrlich-b/cubik/internal/cube"
)

// Phase-table cardinalities. Phase 1 drives the cube into the
// <U, D, L2, R2, F2, B2> subgroup; phase 2 solves inside it, where all
// orientations are zero and the slice edges stay in the slice.
const (
	phase1EdgesSize   = 190080 // 12*11*10*9 slice positions * 2^4 flips
	phase1TwistSize   = 2187   // 3^7
	phase1FlipSize    = 256    // 2^8, non-slice edges
	flipVectorSize    = 4096   // 2^12, scratch space for the flip build
	phase2CornersSize = 40320  // 8!
	phase2EdgesSize   = 40320  // 8!
	phase2SliceSize   = 24     // 4!
)

// Kociemba is the two-phase near-optimal solver. Each phase is its own
// IDA* with its own heuristic tables; the tables are small enough to
// rebuild on every Init, so nothing persists.
type Kociemba struct {
	phase1Edges []byte
	phase1Twist []byte
	phase1Flip  []byte

	phase2Corners []byte
	phase2Edges   []byte
	phase2Slice   []byte
}

// NewKociemba returns a Kociemba solver. The worker budget is accepted
// for interface parity with Korf and validated, but both phases search
// a tiny space and run single-threaded.
func NewKociemba(workers int) (*Kociemba, error) {
	if err := checkWorkers(workers); err != nil {
		return nil, err
	}
	return &Kociemba{}, nil
}

// Init builds all six tables. The phase-2 tables BFS the subgroup
// moves from identity; the slice-table build records every subgroup
// state it visits, and those states seed the phase-1 edge table so its
// zero cells are exactly the subgroup projections. path is ignored.
func (s *Kociemba) Init(path string) error {
	s.phase2Corners = make([]byte, phase2CornersSize)
	s.phase2Edges = make([]byte, phase2EdgesSize)
	s.phase2Slice = make([]byte, phase2SliceSize)
	s.phase1Edges = make([]byte, phase1EdgesSize)
	s.phase1Twist = make([]byte, phase1TwistSize)
	s.phase1Flip = make([]byte, phase1FlipSize)

	roots := []cube.Cube{cube.NewCube()}
	buildTable(s.phase2Corners, encodePhase2Corners, roots, true, nil)
	buildTable(s.phase2Edges, encodePhase2Edges, roots, true, nil)

	var subgroup []cube.Cube
	buildTable(s.phase2Slice, encodePhase2Slice, roots, true, &subgroup)

	buildTable(s.phase1Edges, encodePhase1Edges, subgroup, false, nil)
	buildTable(s.phase1Twist, encodePhase1Twist, roots, false, nil)
	s.buildFlipTable(roots)
	return nil
}

// buildFlipTable fills phase1Flip. The eight non-slice flip bits alone
// are not closed under moves (a turn can pull a slice edge, whose flip
// the index forgets, into a tracked slot), so a BFS deduplicating on
// the index directly could stop before covering it. The full twelve-bit
// flip vector is closed, so BFS that, then fold each vector's distance
// into the cell it projects to.
func (s *Kociemba) buildFlipTable(roots []cube.Cube) {
	vec := make([]byte, flipVectorSize)
	buildTable(vec, encodeFlipVector, roots, false, nil)

	for i := range s.phase1Flip {
		s.phase1Flip[i] = unreached
	}
	for code, d := range vec {
		if d == unreached {
			continue
		}
		if cell := code >> 4; d < s.phase1Flip[cell] {
			s.phase1Flip[cell] = d
		}
	}
}

// Save is a no-op: the tables rebuild faster than they would load.
func (s *Kociemba) Save(path string) error {
	return nil
}

// encodePhase1Edges indexes where the four slice edges sit among the
// twelve slots, with their flip bits packed below the position rank.
func encodePhase1Edges(c *cube.Cube) int {
	ep, eo := c.Edges()
	var perm [4]int8
	v := 0
	for i := int8(0); i < 12; i++ {
		if t := ep[i]; t < 4 {
			perm[t] = i
			v |= int(eo[i]) << t
		}
	}
	return encodePerm(perm[:], 12, 4, coef12[:])<<4 | v
}

// encodePhase1Twist packs the first seven corner orientations base 3.
func encodePhase1Twist(c *cube.Cube) int {
	_, co := c.Corners()
	v := 0
	for i := 6; i >= 0; i-- {
		v = v*3 + int(co[i])
	}
	return v
}

// encodePhase1Flip is the flip bitmap of the eight non-slice edges.
func encodePhase1Flip(c *cube.Cube) int {
	_, eo := c.Edges()
	v := 0
	for i := 0; i < 8; i++ {
		v |= int(eo[i+4]) << i
	}
	return v
}

// encodeFlipVector is the flip bitmap of all twelve edges, slice edges
// in the low four bits so the phase-1 cell is the high byte.
func encodeFlipVector(c *cube.Cube) int {
	_, eo := c.Edges()
	v := 0
	for i := 0; i < 12; i++ {
		v |= int(eo[i]) << i
	}
	return v
}

// encodePhase2Corners ranks the corner permutation; orientations are
// zero everywhere in the subgroup.
func encodePhase2Corners(c *cube.Cube) int {
	cp, _ := c.Corners()
	return encodePerm(cp[:], 8, 7, coef8[:])
}

// encodePhase2Edges ranks the permutation of the eight U/D-layer edges
// (slots 4..11, rebased to 0..7).
func encodePhase2Edges(c *cube.Cube) int {
	ep, _ := c.Edges()
	var perm [8]int8
	for i := 4; i < 12; i++ {
		perm[i-4] = ep[i] - 4
	}
	return encodePerm(perm[:], 8, 7, coef8[:])
}

// encodePhase2Slice ranks the permutation of the four slice edges.
func encodePhase2Slice(c *cube.Cube) int {
	ep, _ := c.Edges()
	return encodePerm(ep[:4], 4, 3, coef4[:])
}

// estimatePhase1 lower-bounds the moves to reach the subgroup. A zero
// means the cube is in it: slice edges in the slice (in any order) and
// unflipped, every orientation zero.
func (s *Kociemba) estimatePhase1(c *cube.Cube) int {
	h := s.phase1Edges[encodePhase1Edges(c)]
	if e := s.phase1Twist[encodePhase1Twist(c)]; e > h {
		h = e
	}
	if e := s.phase1Flip[encodePhase1Flip(c)]; e > h {
		h = e
	}
	return int(h)
}

// estimatePhase2 lower-bounds the subgroup-metric moves to solved.
func (s *Kociemba) estimatePhase2(c *cube.Cube) int {
	h := s.phase2Corners[encodePhase2Corners(c)]
	if e := s.phase2Edges[encodePhase2Edges(c)]; e > h {
		h = e
	}
	if e := s.phase2Slice[encodePhase2Slice(c)]; e > h {
		h = e
	}
	return int(h)
}

// phaseSearch is one depth-limited DFS; seq is shared down the
// recursion, each level writing its own index. found records how much
// of seq the successful branch filled.
type phaseSearch struct {
	seq   []cube.Move
	depth int
	found int
}

// searchPhase1 uses the full move set and stops when the heuristic
// hits zero, which for these tables means subgroup membership.
func (s *Kociemba) searchPhase1(ps *phaseSearch, cb *cube.Cube, g int, face int8) bool {
	for f := int8(0); f < 6; f++ {
		if f == face || disallowFaces[f] == face {
			continue
		}
		c := *cb
		for j := 1; j <= 3; j++ {
			c.Rotate(cube.Face(f), 1)
			h := s.estimatePhase1(&c)
			if h+g+1 > ps.depth {
				continue
			}
			ps.seq[g] = cube.Move{Face: cube.Face(f), Turns: j}
			if h == 0 {
				ps.found = g + 1
				return true
			}
			if s.searchPhase1(ps, &c, g+1, f) {
				return true
			}
		}
	}
	return false
}

// searchPhase2 restricts F, B, L, R to half turns so the cube never
// leaves the subgroup.
func (s *Kociemba) searchPhase2(ps *phaseSearch, cb *cube.Cube, g int, face int8) bool {
	for f := int8(0); f < 6; f++ {
		if f == face || disallowFaces[f] == face {
			continue
		}
		c := *cb
		for j := 1; j <= 3; j++ {
			if f >= 2 {
				if j != 2 {
					continue
				}
				c.Rotate(cube.Face(f), 2)
			} else {
				c.Rotate(cube.Face(f), 1)
			}
			h := s.estimatePhase2(&c)
			if h+g+1 > ps.depth {
				continue
			}
			ps.seq[g] = cube.Move{Face: cube.Face(f), Turns: j}
			if h == 0 {
				ps.found = g + 1
				return true
			}
			if s.searchPhase2(ps, &c, g+1, f) {
				return true
			}
		}
	}
	return false
}

// Solve runs the two phases and joins the sequences, merging a shared
// face at the boundary. Each phase is optimal for its own goal; the
// concatenation is near-optimal for the cube.
func (s *Kociemba) Solve(c cube.Cube) ([]cube.Move, error) {
	if s.phase1Edges == nil {
		return nil, errors.Wrap(ErrConfig, "solver not initialized")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(ErrUnsolvable, err.Error())
	}
	if c.IsSolved() {
		return []cube.Move{}, nil
	}

	var solution []cube.Move
	if s.estimatePhase1(&c) > 0 {
		for depth := 1; ; depth++ {
			ps := phaseSearch{seq: make([]cube.Move, depth), depth: depth}
			if s.searchPhase1(&ps, &c, 0, noFace) {
				solution = ps.seq[:ps.found]
				break
			}
		}
		c.Apply(solution)
	}

	if !c.IsSolved() {
		for depth := 1; ; depth++ {
			ps := phaseSearch{seq: make([]cube.Move, depth), depth: depth}
			if s.searchPhase2(&ps, &c, 0, noFace) {
				solution = mergePhases(solution, ps.seq[:ps.found])
				break
			}
		}
	}

	return cube.Normalize(solution), nil
}

// mergePhases joins the two phase sequences. A same-face pair at the
// boundary combines into (q1+q2) mod 4 quarter turns and disappears
// when the sum cancels; Simplify also catches the pair that a full
// cancellation newly exposes. Neither phase repeats faces internally,
// so nothing else changes.
func mergePhases(p1, p2 []cube.Move) []cube.Move {
	return cube.Simplify(append(p1, p2...))
}
