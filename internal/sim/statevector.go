// Package sim provides a dense statevector simulator for small circuits.
// Amplitudes are complex128 and gates are applied in place by bitmask pairing,
// so memory and time are O(2^n) — fine for the handful of qubits this tool
// simulates.
package sim

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/nvandessel/qverify/internal/circuit"
)

// StateVector holds the amplitudes of an n-qubit register. Basis state i has
// qubit q set when bit q of i is set (little-endian).
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

// NewStateVector creates the |0...0⟩ state on numQubits qubits.
func NewStateVector(numQubits int) *StateVector {
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// ApplyX swaps the amplitude pairs that differ in qubit q.
func (s *StateVector) ApplyX(q int) {
	bit := 1 << q
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// ApplyH applies a Hadamard to qubit q.
func (s *StateVector) ApplyH(q int) {
	h := complex(1.0/math.Sqrt2, 0)
	bit := 1 << q
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			a, b := s.Amplitudes[i], s.Amplitudes[j]
			s.Amplitudes[i] = h * (a + b)
			s.Amplitudes[j] = h * (a - b)
		}
	}
}

// ApplyZ negates the amplitude of every basis state with qubit q set.
func (s *StateVector) ApplyZ(q int) {
	bit := 1 << q
	for i := range s.Amplitudes {
		if i&bit != 0 {
			s.Amplitudes[i] *= -1
		}
	}
}

// ApplyCX applies a controlled-X: target flips where the control bit is set.
func (s *StateVector) ApplyCX(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	for i := range s.Amplitudes {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// ApplyCZ negates the amplitude where both qubits are set.
func (s *StateVector) ApplyCZ(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	for i := range s.Amplitudes {
		if i&cBit != 0 && i&tBit != 0 {
			s.Amplitudes[i] *= -1
		}
	}
}

// ApplyOp applies a single circuit operation. Barriers are no-ops and
// measurements are rejected; the Simulator handles those.
func (s *StateVector) ApplyOp(op circuit.Op) error {
	switch op.Name {
	case circuit.GateX:
		s.ApplyX(op.Qubits[0])
	case circuit.GateH:
		s.ApplyH(op.Qubits[0])
	case circuit.GateZ:
		s.ApplyZ(op.Qubits[0])
	case circuit.GateCX:
		s.ApplyCX(op.Qubits[0], op.Qubits[1])
	case circuit.GateCZ:
		s.ApplyCZ(op.Qubits[0], op.Qubits[1])
	case circuit.OpBarrier:
		// no-op
	case circuit.OpMeasure:
		return fmt.Errorf("measurement is not a unitary op")
	default:
		return fmt.Errorf("unsupported gate %q", op.Name)
	}
	return nil
}

// Probability returns |amplitude|^2 of basis state i.
func (s *StateVector) Probability(i int) float64 {
	amp := s.Amplitudes[i]
	return real(amp * cmplx.Conj(amp))
}
