package state

import (
	"errors"
	"sync"

	"github.com/AndreasHiropedi/Events-System-sub000/internal/clock"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

var ErrNoSuchSnapshot = errors.New("no snapshot at index")

// Operation is a unit of work executed against the live state. It may
// read and mutate any registry; no implicit snapshot is taken.
type Operation func(*State) error

// Engine owns the single live state and an append-only list of saved
// snapshots. All access goes through the mutex, so concurrent callers
// are safe.
type Engine struct {
	mu         sync.Mutex
	live       *State
	snapshots  []*State
	newGateway func() ports.PaymentGateway
	log        logger.Logger
}

func NewEngine(clk clock.Clock, newGateway func() ports.PaymentGateway, seed GovernmentSeed, log logger.Logger) *Engine {
	return &Engine{
		live:       New(clk, newGateway(), seed),
		newGateway: newGateway,
		log:        log,
	}
}

// Run executes op against the live state.
func (e *Engine) Run(op Operation) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return op(e.live)
}

// Snapshot appends an independent deep copy of the live state to the
// saved list and returns its index.
func (e *Engine) Snapshot() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.snapshots = append(e.snapshots, e.live.Copy(e.newGateway()))
	index := len(e.snapshots) - 1
	e.log.Debug("state snapshot saved", logger.Int("index", index))
	return index
}

// Restore replaces the live state with a copy of the snapshot at index,
// so the saved snapshot stays intact and can be restored again. The
// live state is untouched when the index is out of range.
func (e *Engine) Restore(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index < 0 || index >= len(e.snapshots) {
		return ErrNoSuchSnapshot
	}
	e.live = e.snapshots[index].Copy(e.newGateway())
	e.log.Info("state restored from snapshot", logger.Int("index", index))
	return nil
}

// Snapshots returns how many snapshots have been saved.
func (e *Engine) Snapshots() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.snapshots)
}
