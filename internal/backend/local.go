package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nvandessel/qverify/internal/circuit"
	"github.com/nvandessel/qverify/internal/sim"
	"github.com/nvandessel/qverify/internal/transpile"
)

// localMaxQubits caps the dense statevector size (2^24 amplitudes ≈ 256 MiB).
const localMaxQubits = 24

// LocalSimulator runs circuits on the in-process statevector simulator.
type LocalSimulator struct {
	seed int64
}

// NewLocalSimulator creates a local simulator backend. Seed 0 means a
// time-based seed per run.
func NewLocalSimulator(seed int64) *LocalSimulator {
	return &LocalSimulator{seed: seed}
}

func (b *LocalSimulator) Name() string      { return "local-statevector" }
func (b *LocalSimulator) MaxQubits() int    { return localMaxQubits }
func (b *LocalSimulator) IsSimulator() bool { return true }

// Basis returns the gate set the simulator applies natively.
func (b *LocalSimulator) Basis() []string {
	return []string{circuit.GateX, circuit.GateH, circuit.GateZ, circuit.GateCX}
}

// Run transpiles the circuit into the simulator basis, evolves it, and samples
// counts. Each run gets a fresh job ID.
func (b *LocalSimulator) Run(ctx context.Context, c *circuit.Circuit, shots int) (*Result, error) {
	if c.NumQubits > b.MaxQubits() {
		return nil, fmt.Errorf("circuit uses %d qubits, backend supports %d", c.NumQubits, b.MaxQubits())
	}

	transpiled, err := transpile.Transpile(c, b.Basis())
	if err != nil {
		return nil, fmt.Errorf("transpile for %s: %w", b.Name(), err)
	}

	start := time.Now()
	simulator := &sim.Simulator{Seed: b.seed}
	res, err := simulator.Run(ctx, transpiled, shots)
	if err != nil {
		return nil, fmt.Errorf("simulate on %s: %w", b.Name(), err)
	}

	return &Result{
		JobID:   uuid.NewString(),
		Backend: b.Name(),
		Counts:  res.Counts,
		Shots:   res.Shots,
		Elapsed: time.Since(start),
	}, nil
}
