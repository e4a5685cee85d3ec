package cube

import (
	"math/rand"
	"strings"
	"testing"
)

func TestFaceColorsIdentity(t *testing.T) {
	c := NewCube()
	for f := Up; f <= Right; f++ {
		grid := c.FaceColors(f)
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				if grid[r][col] != f {
					t.Errorf("solved cube: face %s sticker (%d,%d) = %s", f, r, col, grid[r][col])
				}
			}
		}
	}
}

// A U turn keeps the U and D faces solid and rotates the top rows of
// the side faces: F shows R's color, R shows B's, B shows L's, L F's.
func TestFaceColorsAfterUpTurn(t *testing.T) {
	c := NewCube()
	c.Rotate(Up, 1)

	for _, f := range []Face{Up, Down} {
		grid := c.FaceColors(f)
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				if grid[r][col] != f {
					t.Errorf("after U: face %s sticker (%d,%d) = %s", f, r, col, grid[r][col])
				}
			}
		}
	}

	topRowFrom := map[Face]Face{Front: Right, Right: Back, Back: Left, Left: Front}
	for f, want := range topRowFrom {
		grid := c.FaceColors(f)
		for col := 0; col < 3; col++ {
			if grid[0][col] != want {
				t.Errorf("after U: face %s top sticker %d = %s, want %s", f, col, grid[0][col], want)
			}
		}
		for r := 1; r < 3; r++ {
			for col := 0; col < 3; col++ {
				if grid[r][col] != f {
					t.Errorf("after U: face %s sticker (%d,%d) = %s, want %s", f, r, col, grid[r][col], f)
				}
			}
		}
	}
}

// Every sticker color appears exactly nine times whatever the state.
func TestFaceColorsCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 10; trial++ {
		c := NewCube()
		c.Apply(RandomScramble(30, rng))

		var counts [6]int
		for f := Up; f <= Right; f++ {
			grid := c.FaceColors(f)
			for r := 0; r < 3; r++ {
				for col := 0; col < 3; col++ {
					counts[grid[r][col]]++
				}
			}
		}
		for f, n := range counts {
			if n != 9 {
				t.Fatalf("trial %d: color %s appears %d times, want 9", trial, Face(f), n)
			}
		}
	}
}

func TestStringContainsFaceHeaders(t *testing.T) {
	c := NewCube()
	out := c.String()
	for _, header := range []string{"U face:", "D face:", "F face:", "B face:", "L face:", "R face:"} {
		if !strings.Contains(out, header) {
			t.Errorf("String() missing %q", header)
		}
	}
}
