package authgate

import (
	"context"
	"log/slog"
	"sync"
)

// BackendFactory binds a Backend to one session context.
type BackendFactory func(sessionID string) Backend

// Registry hands out one gate per active admin session. Gates are
// independent and uncoordinated; the backend remains the source of truth.
type Registry struct {
	newBackend BackendFactory
	logger     *slog.Logger

	mu    sync.Mutex
	gates map[string]*Gate
}

// NewRegistry constructs a registry that builds gates from the given factory.
func NewRegistry(newBackend BackendFactory, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		newBackend: newBackend,
		logger:     logger,
		gates:      make(map[string]*Gate),
	}
}

// Acquire returns the gate for the given session id, creating and starting
// one on first use. The returned gate may still be loading; callers use
// WaitReady before reading its status.
func (r *Registry) Acquire(ctx context.Context, sessionID string) *Gate {
	r.mu.Lock()
	if g, ok := r.gates[sessionID]; ok {
		r.mu.Unlock()
		return g
	}
	g := New(r.newBackend(sessionID), r.logger)
	r.gates[sessionID] = g
	r.mu.Unlock()

	g.Start(ctx)
	return g
}

// Release tears down the gate for a session id, releasing its subscription.
func (r *Registry) Release(sessionID string) {
	r.mu.Lock()
	g, ok := r.gates[sessionID]
	if ok {
		delete(r.gates, sessionID)
	}
	r.mu.Unlock()
	if ok {
		g.Close()
	}
}

// Close tears down every gate. Called on application shutdown.
func (r *Registry) Close() {
	r.mu.Lock()
	gates := r.gates
	r.gates = make(map[string]*Gate)
	r.mu.Unlock()
	for _, g := range gates {
		g.Close()
	}
}

// Len returns the number of live gates. Used by tests and metrics.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.gates)
}
