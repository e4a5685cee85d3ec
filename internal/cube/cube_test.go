package cube

import (
	"math/rand"
	"testing"
)

func TestNewCubeSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("NewCube() should be solved")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("NewCube() should validate: %v", err)
	}
}

func TestRotateFullTurnIsIdentity(t *testing.T) {
	for f := Up; f <= Right; f++ {
		t.Run(f.String(), func(t *testing.T) {
			c := NewCube()
			for i := 0; i < 4; i++ {
				c.Rotate(f, 1)
			}
			if !c.IsSolved() {
				t.Errorf("four quarter turns of %s should be identity", f)
			}

			c = NewCube()
			c.Rotate(f, 4)
			if !c.IsSolved() {
				t.Errorf("Rotate(%s, 4) should be identity", f)
			}
		})
	}
}

func TestRotateHalfTurnTwiceIsIdentity(t *testing.T) {
	for f := Up; f <= Right; f++ {
		c := NewCube()
		c.Rotate(f, 2)
		c.Rotate(f, 2)
		if !c.IsSolved() {
			t.Errorf("Rotate(%s, 2) twice should be identity", f)
		}
	}
}

func TestRotateCountAdditivity(t *testing.T) {
	counts := []struct{ a, b int }{
		{1, 1}, {1, 2}, {2, 1}, {3, 1}, {1, 3}, {2, 3},
		{-1, 1}, {3, -2}, {0, 2}, {5, 3},
	}
	for f := Up; f <= Right; f++ {
		for _, tt := range counts {
			c1 := NewCube()
			c1.Rotate(f, tt.a)
			c1.Rotate(f, tt.b)

			c2 := NewCube()
			c2.Rotate(f, tt.a+tt.b)

			if c1 != c2 {
				t.Errorf("Rotate(%s,%d)+Rotate(%s,%d) != Rotate(%s,%d)",
					f, tt.a, f, tt.b, f, tt.a+tt.b)
			}
		}
	}
}

// Pins the slot numbering convention: a U turn cycles the four top
// corners and top edges and touches nothing else.
func TestUpTurnFixture(t *testing.T) {
	c := NewCube()
	c.Rotate(Up, 1)

	cp, co := c.Corners()
	ep, eo := c.Edges()

	wantCP := [8]int8{0, 1, 2, 3, 7, 4, 5, 6}
	wantEP := [12]int8{0, 1, 2, 3, 7, 4, 5, 6, 8, 9, 10, 11}
	if cp != wantCP {
		t.Errorf("cp after U = %v, want %v", cp, wantCP)
	}
	if ep != wantEP {
		t.Errorf("ep after U = %v, want %v", ep, wantEP)
	}
	if co != [8]int8{} {
		t.Errorf("co after U = %v, want all zero", co)
	}
	if eo != [12]int8{} {
		t.Errorf("eo after U = %v, want all zero", eo)
	}
}

func TestSexyMoveOrderSix(t *testing.T) {
	sexy, err := ParseScramble("R U R' U'")
	if err != nil {
		t.Fatalf("ParseScramble: %v", err)
	}
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.Apply(sexy)
	}
	if !c.IsSolved() {
		t.Error("(R U R' U') applied six times should be identity")
	}
}

func TestInvariantsUnderRandomMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		c := NewCube()
		for i := 0; i < 40; i++ {
			c.Rotate(Face(rng.Intn(6)), 1+rng.Intn(3))
			if err := c.Validate(); err != nil {
				t.Fatalf("trial %d move %d: invariant broken: %v", trial, i, err)
			}
		}
	}
}

func TestApplyInverseRestoresIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 20; trial++ {
		moves := RandomScramble(25, rng)
		c := NewCube()
		c.Apply(moves)
		for i := len(moves) - 1; i >= 0; i-- {
			m := moves[i].Inverse()
			c.Rotate(m.Face, m.Turns)
		}
		if !c.IsSolved() {
			t.Fatalf("scramble %s followed by its inverse should be identity",
				FormatMoves(moves))
		}
	}
}

func TestValidateRejectsTamperedStates(t *testing.T) {
	twisted := NewCube()
	twisted.co[0] = 1
	if twisted.Validate() == nil {
		t.Error("single twisted corner should not validate")
	}

	flipped := NewCube()
	flipped.eo[0] = 1
	if flipped.Validate() == nil {
		t.Error("single flipped edge should not validate")
	}

	swapped := NewCube()
	swapped.cp[0], swapped.cp[1] = swapped.cp[1], swapped.cp[0]
	if swapped.Validate() == nil {
		t.Error("lone corner swap should not validate")
	}

	broken := NewCube()
	broken.ep[0] = 0
	broken.ep[1] = 0
	if broken.Validate() == nil {
		t.Error("duplicate edge should not validate")
	}
}
