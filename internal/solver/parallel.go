package solver

import (
	"sync"
	"sync/atomic"

	"github.com/ehrlich-b/cubik/internal/cube"
)

// winnerFlag is the shared first-wins marker for a parallel root
// search: -1 until some task claims it with its id. Workers poll it on
// every DFS entry and bail out once set; a task past its last poll may
// finish extra work, which is benign because its result is discarded.
type winnerFlag struct {
	id atomic.Int32
}

func newWinnerFlag() *winnerFlag {
	w := &winnerFlag{}
	w.id.Store(-1)
	return w
}

func (w *winnerFlag) Claimed() bool { return w.id.Load() >= 0 }

// Claim records id as the winner; the first writer wins, later
// claimants are ignored. Any depth-D solution is equally optimal, so
// the tie-break is arbitrary but deterministic per run.
func (w *winnerFlag) Claim(id int32) { w.id.CompareAndSwap(-1, id) }

func (w *winnerFlag) Winner() int32 { return w.id.Load() }

// searchRootsParallel explores the 18 first moves concurrently at a
// fixed depth bound. Each root task owns its cube copy and seq buffer;
// admission to the pool is bounded by the worker budget through a
// semaphore channel. Returns the winning sequence, if any root found
// one.
func (k *Korf) searchRootsParallel(c cube.Cube, depth int) ([]cube.Move, bool) {
	winner := newWinnerFlag()
	sem := make(chan struct{}, k.workers)
	seqs := make([][]cube.Move, 0, 18)

	var wg sync.WaitGroup
	for f := int8(0); f < 6; f++ {
		cb := c
		for j := 1; j <= 3; j++ {
			cb.Rotate(cube.Face(f), 1)

			seq := make([]cube.Move, depth)
			seq[0] = cube.Move{Face: cube.Face(f), Turns: j}
			seqs = append(seqs, seq)

			id := int32(len(seqs) - 1)
			s := korfSearch{
				cb:     cb,
				g:      1,
				face:   f,
				depth:  depth,
				seq:    seq,
				cancel: winner,
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()
				if winner.Claimed() {
					return
				}
				if k.estimate(&s.cb)+s.g <= s.depth && k.search(&s) {
					winner.Claim(id)
				}
			}()
		}
	}
	wg.Wait()

	if id := winner.Winner(); id >= 0 {
		return seqs[id], true
	}
	return nil, false
}
