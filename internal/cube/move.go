package cube

import (
	"fmt"
	"strings"
)

// Face identifies a face of the cube. The numeric order matters: the
// solver's adjacency table and the rotation cycle tables index by it.
type Face int

const (
	Up Face = iota
	Down
	Front
	Back
	Left
	Right
)

func (f Face) String() string {
	return []string{"U", "D", "F", "B", "L", "R"}[f]
}

// Move is a face turn. Turns counts clockwise quarter turns; solvers
// work with 1..3 and emit solutions with 3 normalized to -1.
type Move struct {
	Face  Face
	Turns int
}

// String renders the move in standard notation: U, U2, U'.
func (m Move) String() string {
	switch (m.Turns%4 + 4) % 4 {
	case 2:
		return m.Face.String() + "2"
	case 3:
		return m.Face.String() + "'"
	default:
		return m.Face.String()
	}
}

// Inverse returns the move undoing m.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Turns: 4 - (m.Turns%4+4)%4}
}

// ParseMove parses a single move in standard notation (U, D', F2, ...).
func ParseMove(notation string) (Move, error) {
	notation = strings.TrimSpace(notation)
	if len(notation) == 0 {
		return Move{}, fmt.Errorf("empty move notation")
	}

	m := Move{Turns: 1}
	switch notation[0] {
	case 'U':
		m.Face = Up
	case 'D':
		m.Face = Down
	case 'F':
		m.Face = Front
	case 'B':
		m.Face = Back
	case 'L':
		m.Face = Left
	case 'R':
		m.Face = Right
	default:
		return Move{}, fmt.Errorf("unknown face %q", notation[0])
	}

	switch notation[1:] {
	case "":
	case "'":
		m.Turns = 3
	case "2":
		m.Turns = 2
	case "2'", "'2":
		m.Turns = 2
	default:
		return Move{}, fmt.Errorf("invalid move notation %q", notation)
	}

	return m, nil
}

// ParseScramble parses a whitespace-separated move sequence.
func ParseScramble(scramble string) ([]Move, error) {
	fields := strings.Fields(scramble)
	moves := make([]Move, 0, len(fields))
	for _, field := range fields {
		m, err := ParseMove(field)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves renders a move sequence as a space-separated string.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
