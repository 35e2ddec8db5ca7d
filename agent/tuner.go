package agent

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nstehr/splgeo/rules"
)

// Tuner pushes policy updates to every live engine. Updates are applied in
// the background so recompiling never stalls a connection mid-tick.
type Tuner struct {
	mu      sync.Mutex
	current rules.Policy
	engines map[string]*rules.Engine
	updates chan rules.Policy
}

func NewTuner(initial rules.Policy) *Tuner {
	return &Tuner{
		current: initial,
		engines: make(map[string]*rules.Engine),
		updates: make(chan rules.Policy, 1),
	}
}

// NewEngine builds an engine from the current policy and registers it for updates.
func (t *Tuner) NewEngine(session string) (*rules.Engine, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, err := rules.NewEngine(t.current)
	if err != nil {
		return nil, err
	}
	t.engines[session] = e
	return e, nil
}

// Release stops updating the session's engine.
func (t *Tuner) Release(session string) {
	t.mu.Lock()
	delete(t.engines, session)
	t.mu.Unlock()
}

// Current returns the policy new engines are built from.
func (t *Tuner) Current() rules.Policy {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Submit queues a policy update. Only the latest pending update is kept.
func (t *Tuner) Submit(p rules.Policy) {
	for {
		select {
		case t.updates <- p:
			return
		default:
		}
		select {
		case <-t.updates:
		default:
		}
	}
}

// Start applies updates until ctx is cancelled.
func (t *Tuner) Start(ctx context.Context) {
	slog.Info("tuner started")
	for {
		select {
		case <-ctx.Done():
			slog.Info("tuner stopped")
			return
		case p := <-t.updates:
			t.apply(p)
		}
	}
}

func (t *Tuner) apply(p rules.Policy) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for session, e := range t.engines {
		if err := e.Swap(p); err != nil {
			slog.Error("policy swap failed, keeping previous rules", "session", session, "error", err)
			return
		}
	}
	t.current = p
	slog.Info("policy applied", "engines", len(t.engines), "maxWorkers", p.MaxWorkers, "iterationsPerMinute", p.IterationsPerMinute)
}
