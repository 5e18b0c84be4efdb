package tictactoe

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the source used to break ties between equally ranked squares.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedRand returns a goroutine-safe source. A zero seed is replaced with
// the current time.
func NewLockedRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &lockedRand{
		rnd: rand.New(rand.NewSource(seed)), //nolint: gosec // tie-breaks only
	}
}

func (that *lockedRand) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Intn(n)
}

func pick(rnd Rand, cells []int) int {
	return cells[rnd.Intn(len(cells))]
}
