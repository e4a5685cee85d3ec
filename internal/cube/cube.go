package cube

// Cube is a 3x3x3 cube at the cubie level. cp[i] = j means corner slot
// i is occupied by the cubie whose home slot is j; co[i] counts
// clockwise twists of that cubie, 0..2. ep/eo are the edge analogues
// with eo in {0,1}. Centers are fixed and implicit.
//
// Slot numbering: corners 0-3 on the bottom layer (DBL, DBR, DFR, DFL)
// and 4-7 on top (UBL, UBR, UFR, UFL); edges 0-3 in the UD slice
// (BL, BR, FR, FL), 4-7 on top (UB, UR, UF, UL), 8-11 on the bottom
// (DB, DR, DF, DL).
type Cube struct {
	cp [8]int8
	co [8]int8
	ep [12]int8
	eo [12]int8
}

// NewCube returns a solved cube.
func NewCube() Cube {
	var c Cube
	for i := range c.cp {
		c.cp[i] = int8(i)
	}
	for i := range c.ep {
		c.ep[i] = int8(i)
	}
	return c
}

// NewCubeFromParts assembles a cube from raw permutation and
// orientation arrays, as produced by an external scanner or viewer.
// The state is taken as given; callers should Validate before solving.
func NewCubeFromParts(cp, co [8]int8, ep, eo [12]int8) Cube {
	return Cube{cp: cp, co: co, ep: ep, eo: eo}
}

// cornerCycle[f] lists the four corner slots touched by a clockwise
// quarter turn of face f, in the order the cubies travel: the cubie at
// slot [0] moves to slot [1], and so on. edgeCycle is the same for
// edges. These tables encode the cube group for the slot numbering
// above and must stay consistent with the solver encoders.
var cornerCycle = [6][4]int8{
	{4, 5, 6, 7}, // U
	{3, 2, 1, 0}, // D
	{7, 6, 2, 3}, // F
	{5, 4, 0, 1}, // B
	{4, 7, 3, 0}, // L
	{6, 5, 1, 2}, // R
}

var edgeCycle = [6][4]int8{
	{4, 5, 6, 7},   // U
	{11, 10, 9, 8}, // D
	{6, 2, 10, 3},  // F
	{4, 0, 8, 1},   // B
	{7, 3, 11, 0},  // L
	{5, 1, 9, 2},   // R
}

// cycle4 moves a[c[0]] -> a[c[1]] -> a[c[2]] -> a[c[3]] -> a[c[0]].
func cycle4(a []int8, c *[4]int8) {
	t := a[c[3]]
	a[c[3]] = a[c[2]]
	a[c[2]] = a[c[1]]
	a[c[1]] = a[c[0]]
	a[c[0]] = t
}

// Rotate turns face f by count clockwise quarter turns. count may be
// any integer; it is reduced mod 4 and 0 is a no-op. A half turn only
// permutes cubies; a quarter turn of F/B/L/R additionally twists the
// four corners alternately +1/-1, and a quarter turn of L/R flips the
// four edges. U/D never change orientation.
func (c *Cube) Rotate(f Face, count int) {
	count = (count%4 + 4) & 3
	if count == 0 {
		return
	}

	cc := cornerCycle[f]
	ec := edgeCycle[f]

	if count == 2 {
		c.cp[cc[0]], c.cp[cc[2]] = c.cp[cc[2]], c.cp[cc[0]]
		c.cp[cc[1]], c.cp[cc[3]] = c.cp[cc[3]], c.cp[cc[1]]
		c.co[cc[0]], c.co[cc[2]] = c.co[cc[2]], c.co[cc[0]]
		c.co[cc[1]], c.co[cc[3]] = c.co[cc[3]], c.co[cc[1]]

		c.ep[ec[0]], c.ep[ec[2]] = c.ep[ec[2]], c.ep[ec[0]]
		c.ep[ec[1]], c.ep[ec[3]] = c.ep[ec[3]], c.ep[ec[1]]
		c.eo[ec[0]], c.eo[ec[2]] = c.eo[ec[2]], c.eo[ec[0]]
		c.eo[ec[1]], c.eo[ec[3]] = c.eo[ec[3]], c.eo[ec[1]]
		return
	}

	if count == 3 {
		// Counterclockwise: walk the cycles backwards. Keeping the
		// first slot in place preserves the +/- twist phase below:
		// which corners twist +1 depends on the slot, not the turn
		// direction.
		cc = [4]int8{cc[0], cc[3], cc[2], cc[1]}
		ec = [4]int8{ec[0], ec[3], ec[2], ec[1]}
	}

	cycle4(c.cp[:], &cc)
	cycle4(c.co[:], &cc)

	if f >= Front {
		c.co[cc[0]]++
		if c.co[cc[0]] == 3 {
			c.co[cc[0]] = 0
		}
		c.co[cc[2]]++
		if c.co[cc[2]] == 3 {
			c.co[cc[2]] = 0
		}
		c.co[cc[1]]--
		if c.co[cc[1]] == -1 {
			c.co[cc[1]] = 2
		}
		c.co[cc[3]]--
		if c.co[cc[3]] == -1 {
			c.co[cc[3]] = 2
		}
	}

	if f >= Left {
		c.eo[ec[0]] ^= 1
		c.eo[ec[1]] ^= 1
		c.eo[ec[2]] ^= 1
		c.eo[ec[3]] ^= 1
	}

	cycle4(c.ep[:], &ec)
	cycle4(c.eo[:], &ec)
}

// Apply plays a move sequence onto the cube.
func (c *Cube) Apply(moves []Move) {
	for _, m := range moves {
		c.Rotate(m.Face, m.Turns)
	}
}

// IsSolved reports whether the cube is the identity state.
func (c *Cube) IsSolved() bool {
	return *c == NewCube()
}

// Corners returns the corner permutation and orientation arrays.
func (c *Cube) Corners() (cp, co [8]int8) {
	return c.cp, c.co
}

// Edges returns the edge permutation and orientation arrays.
func (c *Cube) Edges() (ep, eo [12]int8) {
	return c.ep, c.eo
}
