package sim

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/nvandessel/qverify/internal/circuit"
)

// checkInterval is how many sampled shots pass between context checks.
const checkInterval = 4096

// Result aggregates sampled measurement outcomes. Counts keys are bitstrings
// over the classical register, most-significant clbit first (a single
// classical bit yields "0"/"1" keys).
type Result struct {
	Counts map[string]int `json:"counts"`
	Shots  int            `json:"shots"`
}

// Simulator evolves a circuit's final state once and samples the classical
// outcome distribution shots times. Seed 0 means a time-based seed.
type Simulator struct {
	Seed int64
}

// Run simulates the circuit and returns sampled counts. Measurements must be
// terminal per qubit: once a qubit is measured no further op may touch it.
func (sim *Simulator) Run(ctx context.Context, c *circuit.Circuit, shots int) (*Result, error) {
	if shots < 1 {
		return nil, fmt.Errorf("shots must be positive, got %d", shots)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid circuit: %w", err)
	}

	state := NewStateVector(c.NumQubits)
	measured := make(map[int]int) // qubit -> clbit
	for _, op := range c.Ops {
		if op.Name == circuit.OpMeasure {
			measured[op.Qubits[0]] = op.Clbit
			continue
		}
		for _, q := range op.Qubits {
			if _, done := measured[q]; done && op.Name != circuit.OpBarrier {
				return nil, fmt.Errorf("gate %q on qubit %d after measurement", op.Name, q)
			}
		}
		if err := state.ApplyOp(op); err != nil {
			return nil, err
		}
	}
	if len(measured) == 0 {
		return nil, fmt.Errorf("circuit has no measurements")
	}

	outcomes, cumulative := classicalDistribution(state, c.NumClbits, measured)

	seed := sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	counts := make(map[string]int)
	for shot := 0; shot < shots; shot++ {
		if shot%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		counts[sample(outcomes, cumulative, rng.Float64())]++
	}

	return &Result{Counts: counts, Shots: shots}, nil
}

// classicalDistribution projects the final state onto the measured classical
// bits, returning outcome bitstrings with their cumulative probabilities.
func classicalDistribution(state *StateVector, numClbits int, measured map[int]int) (outcomes []string, cumulative []float64) {
	probs := make(map[string]float64)
	for i := range state.Amplitudes {
		p := state.Probability(i)
		if p == 0 {
			continue
		}
		bits := make([]byte, numClbits)
		for j := range bits {
			bits[j] = '0'
		}
		for q, clbit := range measured {
			if i&(1<<q) != 0 {
				bits[numClbits-1-clbit] = '1'
			}
		}
		probs[string(bits)] += p
	}

	outcomes = make([]string, 0, len(probs))
	for key := range probs {
		outcomes = append(outcomes, key)
	}
	sort.Strings(outcomes)

	cumulative = make([]float64, len(outcomes))
	total := 0.0
	for i, key := range outcomes {
		total += probs[key]
		cumulative[i] = total
	}
	return outcomes, cumulative
}

// sample maps a uniform draw in [0,1) to an outcome via the cumulative table.
func sample(outcomes []string, cumulative []float64, r float64) string {
	idx := sort.SearchFloat64s(cumulative, r)
	if idx >= len(outcomes) {
		// Guard against accumulated rounding just below 1.0.
		idx = len(outcomes) - 1
	}
	return outcomes[idx]
}
