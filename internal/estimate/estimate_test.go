package estimate

import (
	"testing"
	"time"

	"github.com/nvandessel/qverify/internal/constants"
)

func TestDefaultEstimateExactValues(t *testing.T) {
	e := DefaultParams().Estimate()

	// depth=5 × 100µs × 4096 shots
	wantGate := 2048 * time.Millisecond
	// 300µs × 4096 shots
	wantReadout := 1228800 * time.Microsecond

	if e.Gate != wantGate {
		t.Errorf("Gate = %v, want %v", e.Gate, wantGate)
	}
	if e.Readout != wantReadout {
		t.Errorf("Readout = %v, want %v", e.Readout, wantReadout)
	}
	if e.Total != e.Gate+e.Readout {
		t.Errorf("Total = %v, want Gate+Readout = %v", e.Total, e.Gate+e.Readout)
	}
	if e.Total != 3276800*time.Microsecond {
		t.Errorf("Total = %v, want 3.2768s", e.Total)
	}
}

func TestEstimateTotalIsSum(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"defaults", DefaultParams()},
		{"single shot", Params{Depth: 1, Shots: 1, GateTime: time.Microsecond, ReadoutTime: time.Microsecond}},
		{"deep circuit", Params{Depth: 300, Shots: 8192, GateTime: 50 * time.Microsecond, ReadoutTime: 400 * time.Microsecond}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.params.Estimate()
			if e.Total != e.Gate+e.Readout {
				t.Errorf("Total = %v, want %v", e.Total, e.Gate+e.Readout)
			}
		})
	}
}

func TestWithinBudget(t *testing.T) {
	e := DefaultParams().Estimate()

	if !e.WithinBudget(constants.HardwareBudget) {
		t.Errorf("default estimate %v exceeds hardware budget %v", e.Total, constants.HardwareBudget)
	}
	if e.WithinBudget(time.Second) {
		t.Errorf("estimate %v should exceed a 1s budget", e.Total)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"valid", DefaultParams(), false},
		{"zero depth", Params{Depth: 0, Shots: 1, GateTime: 1, ReadoutTime: 1}, true},
		{"zero shots", Params{Depth: 1, Shots: 0, GateTime: 1, ReadoutTime: 1}, true},
		{"zero gate time", Params{Depth: 1, Shots: 1, GateTime: 0, ReadoutTime: 1}, true},
		{"negative readout", Params{Depth: 1, Shots: 1, GateTime: 1, ReadoutTime: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
