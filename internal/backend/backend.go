// Package backend abstracts circuit execution targets behind a common
// interface. Only a local statevector simulator ships today; the interface
// leaves room for remote hardware targets without touching callers.
package backend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nvandessel/qverify/internal/circuit"
)

// Result is the outcome of one backend execution.
type Result struct {
	JobID   string         `json:"job_id"`
	Backend string         `json:"backend"`
	Counts  map[string]int `json:"counts"`
	Shots   int            `json:"shots"`
	Elapsed time.Duration  `json:"elapsed_ns"`
}

// Backend executes circuits. Run blocks until the result is available or the
// context is cancelled.
type Backend interface {
	Name() string
	Basis() []string
	MaxQubits() int
	IsSimulator() bool
	Run(ctx context.Context, c *circuit.Circuit, shots int) (*Result, error)
}

// Registry maps backend names to instances. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

// Register adds a backend under its own name, replacing any previous entry.
func (r *Registry) Register(b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[b.Name()] = b
}

// Get returns the backend registered under name.
func (r *Registry) Get(name string) (Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q", name)
	}
	return b, nil
}

// List returns the registered backend names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	return names
}
