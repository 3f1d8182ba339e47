package progress

import (
	"context"
	"sync"
	"time"

	"github.com/viant/fsm/internal/clock"
)

// Delta represents an incremental counter change emitted by the engine run
// loop. The fields are signed and can therefore be either positive
// (increment) or negative (decrement).
type Delta struct {
	SymbolsRead     int
	SymbolsAccepted int
	Transitions     int
}

// Snapshot is a lock-free, read-only copy of the tracker state.
type Snapshot struct {
	// Identification – informative only, filled when the run starts.
	RunID     string
	Machine   string
	StartedAt time.Time

	// Counters – accumulated via Progress.Update().
	SymbolsRead     int
	SymbolsAccepted int
	Transitions     int
}

// Progress keeps aggregated symbol counters for a single machine run. It is
// safe for concurrent use; reads go through Snapshot copies so the tracker
// itself is never passed around by value.
type Progress struct {
	mu       sync.Mutex
	current  Snapshot
	onChange func(Snapshot)
}

// Update applies the supplied delta to the tracker. If an onChange callback
// has been registered it is invoked with a copy of the updated counters
// outside the critical section so that the callback can perform slow
// operations (e.g. JSON encoding, I/O) without blocking the run loop.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.mu.Lock()

	p.current.SymbolsRead += d.SymbolsRead
	p.current.SymbolsAccepted += d.SymbolsAccepted
	p.current.Transitions += d.Transitions

	// Copy for the callback while the lock is still held to avoid seeing
	// partially updated counters.
	snapshot := p.current
	cb := p.onChange

	p.mu.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker state suitable for read-only
// inspection.
func (p *Progress) Snapshot() Snapshot {
	if p == nil {
		return Snapshot{}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// OnChange registers a callback that is invoked after every successful
// Update. Passing nil disables the callback. Only one callback can be
// active; subsequent calls overwrite the previous value.
func (p *Progress) OnChange(cb func(Snapshot)) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onChange = cb
}

// ----------------------------------------------------------------------------
// Context helpers
// ----------------------------------------------------------------------------

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new Progress tracker, embeds it in a derived
// context and returns both. The caller may optionally pass an onChange
// callback that will be invoked after every counter update.
func WithNewTracker(ctx context.Context, runID, machine string, onChange func(Snapshot)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		current: Snapshot{
			RunID:     runID,
			Machine:   machine,
			StartedAt: clock.Now(),
		},
		onChange: onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the Progress tracker from ctx. It returns (tracker,
// ok). The second return value is false when the context carries no
// tracker.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// GetSnapshot is a convenience wrapper that combines FromContext and
// Snapshot. The boolean return value is false when the context does not
// carry a tracker.
func GetSnapshot(ctx context.Context) (Snapshot, bool) {
	if tr, ok := FromContext(ctx); ok {
		return tr.Snapshot(), true
	}
	return Snapshot{}, false
}

// UpdateCtx is a helper that looks up the tracker in ctx (if any) and
// applies the supplied delta.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
