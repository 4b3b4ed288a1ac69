// Package estimate computes rough hardware execution-time estimates for a
// circuit from its depth, shot count, and per-operation timings.
package estimate

import (
	"fmt"
	"time"

	"github.com/nvandessel/qverify/internal/constants"
)

// Params are the inputs to a runtime estimate.
type Params struct {
	NumQubits   int           `json:"num_qubits"`
	Depth       int           `json:"depth"`
	Shots       int           `json:"shots"`
	GateTime    time.Duration `json:"gate_time_ns"`
	ReadoutTime time.Duration `json:"readout_time_ns"`
}

// DefaultParams returns the stabilizer-circuit estimate inputs.
func DefaultParams() Params {
	return Params{
		NumQubits:   constants.StabilizerQubits,
		Depth:       constants.StabilizerDepth,
		Shots:       constants.EstimateShots,
		GateTime:    constants.GateTime,
		ReadoutTime: constants.ReadoutTime,
	}
}

// Validate rejects non-positive inputs.
func (p Params) Validate() error {
	if p.Depth < 1 || p.Shots < 1 {
		return fmt.Errorf("depth and shots must be positive, got depth=%d shots=%d", p.Depth, p.Shots)
	}
	if p.GateTime <= 0 || p.ReadoutTime <= 0 {
		return fmt.Errorf("gate and readout times must be positive, got gate=%v readout=%v", p.GateTime, p.ReadoutTime)
	}
	return nil
}

// Estimate is a runtime breakdown. Total is exactly Gate + Readout.
type Estimate struct {
	Params  Params        `json:"params"`
	Gate    time.Duration `json:"gate_runtime_ns"`
	Readout time.Duration `json:"readout_runtime_ns"`
	Total   time.Duration `json:"total_runtime_ns"`
}

// Estimate computes the runtime breakdown: every shot pays depth gate layers
// plus one readout.
func (p Params) Estimate() Estimate {
	gate := time.Duration(p.Depth*p.Shots) * p.GateTime
	readout := time.Duration(p.Shots) * p.ReadoutTime
	return Estimate{
		Params:  p,
		Gate:    gate,
		Readout: readout,
		Total:   gate + readout,
	}
}

// WithinBudget reports whether the total runtime fits the given limit.
func (e Estimate) WithinBudget(limit time.Duration) bool {
	return e.Total <= limit
}
