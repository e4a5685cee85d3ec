package cube

import (
	"fmt"
	"strings"
)

// Sticker colors follow the standard scheme, one per face.
var colorLetter = [6]string{"W", "Y", "G", "B", "O", "R"} // U D F B L R

// coloredLetter wraps the letter in a muted ANSI color.
var coloredLetter = [6]string{
	"\033[37mW\033[0m", // white
	"\033[33mY\033[0m", // yellow
	"\033[32mG\033[0m", // green
	"\033[34mB\033[0m", // blue
	"\033[35mO\033[0m", // magenta for orange
	"\033[31mR\033[0m", // red
}

// cornerFaces[i] lists the three faces a cubie in corner slot i shows,
// U/D sticker first, then clockwise viewed from outside the corner.
// edgeFaces[i] lists the two faces of edge slot i, the higher-priority
// axis (UD over LR over FB) first. Orientation is defined against
// these lists: the sticker at list position n shows the home cubie's
// face at position (n+co) mod 3, or n xor eo for edges.
var cornerFaces = [8][3]Face{
	{Down, Back, Left},   // DBL
	{Down, Right, Back},  // DBR
	{Down, Front, Right}, // DFR
	{Down, Left, Front},  // DFL
	{Up, Left, Back},     // UBL
	{Up, Back, Right},    // UBR
	{Up, Right, Front},   // UFR
	{Up, Front, Left},    // UFL
}

var edgeFaces = [12][2]Face{
	{Left, Back},   // BL
	{Right, Back},  // BR
	{Right, Front}, // FR
	{Left, Front},  // FL
	{Up, Back},     // UB
	{Up, Right},    // UR
	{Up, Front},    // UF
	{Up, Left},     // UL
	{Down, Back},   // DB
	{Down, Right},  // DR
	{Down, Front},  // DF
	{Down, Left},   // DL
}

// faceGrid maps each face's 3x3 stickers to the cubie slot underneath:
// -1 for the center, 0..7 a corner slot, 10+e an edge slot. Each face
// is viewed from outside; U is drawn with B at the top, D with F at
// the top, the side faces with U at the top.
var faceGrid = [6][3][3]int8{
	{{4, 14, 5}, {17, -1, 15}, {7, 16, 6}},    // U
	{{3, 20, 2}, {21, -1, 19}, {0, 18, 1}},    // D
	{{7, 16, 6}, {13, -1, 12}, {3, 20, 2}},    // F
	{{5, 14, 4}, {11, -1, 10}, {1, 18, 0}},    // B
	{{4, 17, 7}, {10, -1, 13}, {0, 21, 3}},    // L
	{{6, 15, 5}, {12, -1, 11}, {2, 19, 1}},    // R
}

// cornerSticker returns the face color shown on face f by the cubie
// sitting in corner slot i.
func (c *Cube) cornerSticker(i int8, f Face) Face {
	n := 0
	for ; cornerFaces[i][n] != f; n++ {
	}
	return cornerFaces[c.cp[i]][(n+int(c.co[i]))%3]
}

func (c *Cube) edgeSticker(i int8, f Face) Face {
	n := 0
	if edgeFaces[i][1] == f {
		n = 1
	}
	return edgeFaces[c.ep[i]][n^int(c.eo[i])]
}

// FaceColors projects the cubie state onto face f's stickers. Each
// entry names the face whose center color the sticker shows. This is
// a read-only view for rendering; the solvers never touch it.
func (c *Cube) FaceColors(f Face) [3][3]Face {
	var out [3][3]Face
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			switch slot := faceGrid[f][r][col]; {
			case slot < 0:
				out[r][col] = f
			case slot < 10:
				out[r][col] = c.cornerSticker(slot, f)
			default:
				out[r][col] = c.edgeSticker(slot-10, f)
			}
		}
	}
	return out
}

// String renders all six faces as color letters.
func (c *Cube) String() string {
	return c.StringWithColor(false)
}

// StringWithColor renders all six faces, optionally with ANSI colors.
func (c *Cube) StringWithColor(useColor bool) string {
	var sb strings.Builder
	for f := Up; f <= Right; f++ {
		sb.WriteString(fmt.Sprintf("%s face:\n", f))
		grid := c.FaceColors(f)
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				if useColor {
					sb.WriteString(coloredLetter[grid[r][col]])
				} else {
					sb.WriteString(colorLetter[grid[r][col]])
				}
				sb.WriteString(" ")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
