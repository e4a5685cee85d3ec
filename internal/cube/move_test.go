package cube

import (
	"math/rand"
	"testing"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		notation string
		want     Move
		wantErr  bool
	}{
		{"U", Move{Face: Up, Turns: 1}, false},
		{"U'", Move{Face: Up, Turns: 3}, false},
		{"U2", Move{Face: Up, Turns: 2}, false},
		{"D", Move{Face: Down, Turns: 1}, false},
		{"F2", Move{Face: Front, Turns: 2}, false},
		{"B'", Move{Face: Back, Turns: 3}, false},
		{"L", Move{Face: Left, Turns: 1}, false},
		{"R'", Move{Face: Right, Turns: 3}, false},
		{"", Move{}, true},
		{"X", Move{}, true},
		{"R3", Move{}, true},
		{"U''", Move{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			got, err := ParseMove(tt.notation)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseMove(%q) error = %v, wantErr %v", tt.notation, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMove(%q) = %v, want %v", tt.notation, got, tt.want)
			}
		})
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{Face: Up, Turns: 1}, "U"},
		{Move{Face: Up, Turns: 2}, "U2"},
		{Move{Face: Up, Turns: 3}, "U'"},
		{Move{Face: Right, Turns: -1}, "R'"},
		{Move{Face: Front, Turns: 5}, "F"},
	}
	for _, tt := range tests {
		if got := tt.move.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.move, got, tt.want)
		}
	}
}

func TestParseScramble(t *testing.T) {
	tests := []struct {
		scramble string
		wantLen  int
		wantErr  bool
	}{
		{"", 0, false},
		{"R", 1, false},
		{"R U R' U'", 4, false},
		{"F B U2 D2", 4, false},
		{"R X", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.scramble, func(t *testing.T) {
			got, err := ParseScramble(tt.scramble)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseScramble(%q) error = %v, wantErr %v", tt.scramble, err, tt.wantErr)
				return
			}
			if !tt.wantErr && len(got) != tt.wantLen {
				t.Errorf("ParseScramble(%q) length = %d, want %d", tt.scramble, len(got), tt.wantLen)
			}
		})
	}
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R R", "R2"},
		{"R R'", ""},
		{"R2 R2", ""},
		{"U U U", "U'"},
		{"R2 R", "R'"},
		{"R F F' R", "R2"},
		{"R U R' U'", "R U R' U'"},
		{"F F F F R", "R"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			moves, err := ParseScramble(tt.in)
			if err != nil {
				t.Fatalf("ParseScramble(%q): %v", tt.in, err)
			}
			if got := FormatMoves(Simplify(moves)); got != tt.want {
				t.Errorf("Simplify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Simplify must preserve the state the sequence produces.
func TestSimplifyPreservesEffect(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 20; trial++ {
		moves := make([]Move, 30)
		for i := range moves {
			moves[i] = Move{Face: Face(rng.Intn(6)), Turns: 1 + rng.Intn(3)}
		}

		c1 := NewCube()
		c1.Apply(moves)
		c2 := NewCube()
		c2.Apply(Simplify(moves))

		if c1 != c2 {
			t.Fatalf("Simplify changed the effect of %s", FormatMoves(moves))
		}
	}
}

func TestNormalize(t *testing.T) {
	moves := []Move{{Face: Up, Turns: 3}, {Face: Right, Turns: 2}, {Face: Front, Turns: 1}}
	got := FormatMoves(Normalize(moves))
	if got != "U' R2 F" {
		t.Errorf("Normalize = %q, want %q", got, "U' R2 F")
	}
	if moves[0].Turns != -1 {
		t.Errorf("Normalize should rewrite 3 quarter turns as -1, got %d", moves[0].Turns)
	}
}

func TestRandomScramble(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	moves := RandomScramble(30, rng)
	if len(moves) != 30 {
		t.Fatalf("RandomScramble(30) length = %d", len(moves))
	}
	for i, m := range moves {
		if m.Face < Up || m.Face > Right {
			t.Errorf("move %d has invalid face %d", i, m.Face)
		}
		if m.Turns < 1 || m.Turns > 3 {
			t.Errorf("move %d has invalid turn count %d", i, m.Turns)
		}
		if i > 0 && m.Face == moves[i-1].Face {
			t.Errorf("moves %d and %d repeat face %s", i-1, i, m.Face)
		}
	}
}
