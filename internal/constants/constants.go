// Package constants provides named constants used throughout the qverify codebase.
// This centralizes magic numbers for better maintainability and documentation.
package constants

import "time"

// Simulation constants
const (
	// DefaultShots is the number of shots used for verification runs.
	DefaultShots = 1024

	// DefaultPassThreshold is the minimum outcome percentage for a check to pass.
	// The margin below 100 tolerates simulator sampling noise.
	DefaultPassThreshold = 95.0
)

// Hardware estimate constants, modeled on typical superconducting-qubit timings.
const (
	// EstimateShots is the shot count assumed for hardware runtime estimates.
	EstimateShots = 4096

	// GateTime is the approximate duration of one gate layer.
	GateTime = 100 * time.Microsecond

	// ReadoutTime is the approximate duration of a measurement readout.
	ReadoutTime = 300 * time.Microsecond

	// StabilizerDepth is the approximate depth of the 2-qubit stabilizer
	// measurement circuit used for estimates.
	StabilizerDepth = 5

	// StabilizerQubits is the total qubit count of the stabilizer circuit:
	// two data qubits plus one ancilla.
	StabilizerQubits = 3

	// HardwareBudget is the recommended per-job execution limit on shared
	// quantum hardware.
	HardwareBudget = 5 * time.Minute
)
