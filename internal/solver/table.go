package solver

import (
	"github.com/ehrlich-b/cubik/internal/cube"
)

// unreached marks a table cell BFS has not filled yet. A finished
// table has none: every pattern the encoder can produce is reachable.
const unreached = 0xff

// bfsNode is one queued state: the cube plus the face of the move that
// produced it, for adjacency pruning.
type bfsNode struct {
	cb   cube.Cube
	face int8
}

// buildTable runs a breadth-first closure over the cube group from
// roots, writing the first (minimal) move distance into buf at each
// state's encoder index. group1 restricts the move set to
// <U, D, L2, R2, F2, B2>, so distances come out in that metric.
// record, when non-nil, collects every state whose cell was newly
// filled, roots included; the Kociemba phase-1 edge table uses this to
// seed its BFS with the whole subgroup closure.
//
// The frontier is expanded level by level so the two live levels, not
// the whole visit history, bound peak memory.
func buildTable(buf []byte, enc func(*cube.Cube) int, roots []cube.Cube, group1 bool, record *[]cube.Cube) {
	for i := range buf {
		buf[i] = unreached
	}

	cur := make([]bfsNode, 0, len(roots))
	for _, c := range roots {
		code := enc(&c)
		if buf[code] == unreached {
			buf[code] = 0
		}
		cur = append(cur, bfsNode{cb: c, face: noFace})
		if record != nil {
			*record = append(*record, c)
		}
	}

	visit := func(next []bfsNode, c *cube.Cube, face int8, depth byte) []bfsNode {
		code := enc(c)
		if buf[code] != unreached {
			return next
		}
		buf[code] = depth
		if record != nil {
			*record = append(*record, *c)
		}
		return append(next, bfsNode{cb: *c, face: face})
	}

	for depth := byte(1); len(cur) > 0; depth++ {
		var next []bfsNode
		for i := range cur {
			u := &cur[i]
			for f := int8(0); f < 6; f++ {
				if f == u.face || disallowFaces[f] == u.face {
					continue
				}
				c := u.cb
				if group1 && f >= 2 {
					c.Rotate(cube.Face(f), 2)
					next = visit(next, &c, f, depth)
					continue
				}
				for j := 0; j < 3; j++ {
					c.Rotate(cube.Face(f), 1)
					next = visit(next, &c, f, depth)
				}
			}
		}
		cur = next
	}
}
