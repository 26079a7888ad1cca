package marketplace

import (
	"sync"
	"sync/atomic"
)

// callGuard serialises engine operations and rejects calls that arrive while
// control is outside the engine. Operations on the same store observe a total
// order; a callback from an external transfer re-entering the engine is
// rejected instead of blocked, so it can neither deadlock nor observe
// half-applied ledger state.
type callGuard struct {
	mu       sync.Mutex
	external int32
}

func (g *callGuard) lock() error {
	if atomic.LoadInt32(&g.external) == 1 {
		return ErrReentrantCall
	}

	g.mu.Lock()

	return nil
}

func (g *callGuard) unlock() {
	g.mu.Unlock()
}

// beginExternal marks the window where the engine hands control to an external
// party (asset transfer or payment). endExternal closes it.
func (g *callGuard) beginExternal() {
	atomic.StoreInt32(&g.external, 1)
}

func (g *callGuard) endExternal() {
	atomic.StoreInt32(&g.external, 0)
}
