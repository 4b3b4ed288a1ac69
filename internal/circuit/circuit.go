// Package circuit provides a declarative quantum circuit model: qubit and
// classical registers, a small gate set, and derived properties (depth, text
// diagram, OpenQASM export).
package circuit

import "fmt"

// Gate names understood by the circuit model.
const (
	GateX     = "x"
	GateH     = "h"
	GateZ     = "z"
	GateCX    = "cx"
	GateCZ    = "cz"
	OpBarrier = "barrier"
	OpMeasure = "measure"
)

// Op is a single operation placed on the circuit. For two-qubit gates the
// control comes first in Qubits. Clbit is -1 unless the op is a measurement.
type Op struct {
	Name   string
	Qubits []int
	Clbit  int
}

// IsGate reports whether the op is a unitary gate (not a barrier or measurement).
func (o Op) IsGate() bool {
	return o.Name != OpBarrier && o.Name != OpMeasure
}

// Circuit holds an ordered list of operations over fixed-size quantum and
// classical registers. The zero value is not usable; use New.
type Circuit struct {
	NumQubits int
	NumClbits int
	Ops       []Op
}

// New creates an empty circuit with the given register sizes.
func New(numQubits, numClbits int) *Circuit {
	return &Circuit{NumQubits: numQubits, NumClbits: numClbits}
}

// Clone returns a deep copy of the circuit.
func (c *Circuit) Clone() *Circuit {
	out := &Circuit{NumQubits: c.NumQubits, NumClbits: c.NumClbits}
	out.Ops = make([]Op, len(c.Ops))
	for i, op := range c.Ops {
		qs := make([]int, len(op.Qubits))
		copy(qs, op.Qubits)
		out.Ops[i] = Op{Name: op.Name, Qubits: qs, Clbit: op.Clbit}
	}
	return out
}

func (c *Circuit) add(name string, clbit int, qubits ...int) *Circuit {
	c.Ops = append(c.Ops, Op{Name: name, Qubits: qubits, Clbit: clbit})
	return c
}

// X applies a Pauli-X (bit flip) to qubit q.
func (c *Circuit) X(q int) *Circuit { return c.add(GateX, -1, q) }

// H applies a Hadamard to qubit q.
func (c *Circuit) H(q int) *Circuit { return c.add(GateH, -1, q) }

// Z applies a Pauli-Z (phase flip) to qubit q.
func (c *Circuit) Z(q int) *Circuit { return c.add(GateZ, -1, q) }

// CX applies a controlled-X with the given control and target qubits.
func (c *Circuit) CX(control, target int) *Circuit { return c.add(GateCX, -1, control, target) }

// CZ applies a controlled-Z with the given control and target qubits.
func (c *Circuit) CZ(control, target int) *Circuit { return c.add(GateCZ, -1, control, target) }

// Barrier inserts a scheduling barrier across the given qubits.
// With no arguments it spans the whole quantum register.
func (c *Circuit) Barrier(qubits ...int) *Circuit {
	if len(qubits) == 0 {
		qubits = make([]int, c.NumQubits)
		for i := range qubits {
			qubits[i] = i
		}
	}
	return c.add(OpBarrier, -1, qubits...)
}

// Measure measures qubit q into classical bit clbit.
func (c *Circuit) Measure(q, clbit int) *Circuit { return c.add(OpMeasure, clbit, q) }

// Validate checks every operation for in-range operands and well-formed shape.
func (c *Circuit) Validate() error {
	if c.NumQubits < 1 {
		return fmt.Errorf("circuit needs at least one qubit, got %d", c.NumQubits)
	}
	for i, op := range c.Ops {
		switch op.Name {
		case GateX, GateH, GateZ:
			if len(op.Qubits) != 1 {
				return fmt.Errorf("op %d (%s): want 1 qubit, got %d", i, op.Name, len(op.Qubits))
			}
		case GateCX, GateCZ:
			if len(op.Qubits) != 2 {
				return fmt.Errorf("op %d (%s): want 2 qubits, got %d", i, op.Name, len(op.Qubits))
			}
			if op.Qubits[0] == op.Qubits[1] {
				return fmt.Errorf("op %d (%s): control and target must differ", i, op.Name)
			}
		case OpBarrier:
			if len(op.Qubits) == 0 {
				return fmt.Errorf("op %d (barrier): spans no qubits", i)
			}
		case OpMeasure:
			if len(op.Qubits) != 1 {
				return fmt.Errorf("op %d (measure): want 1 qubit, got %d", i, len(op.Qubits))
			}
			if op.Clbit < 0 || op.Clbit >= c.NumClbits {
				return fmt.Errorf("op %d (measure): classical bit %d out of range [0,%d)", i, op.Clbit, c.NumClbits)
			}
		default:
			return fmt.Errorf("op %d: unknown operation %q", i, op.Name)
		}
		for _, q := range op.Qubits {
			if q < 0 || q >= c.NumQubits {
				return fmt.Errorf("op %d (%s): qubit %d out of range [0,%d)", i, op.Name, q, c.NumQubits)
			}
		}
	}
	return nil
}

// Depth returns the longest qubit-wise chain of operations. Barriers do not
// contribute; measurements do.
func (c *Circuit) Depth() int {
	depth := make([]int, c.NumQubits)
	for _, op := range c.Ops {
		if op.Name == OpBarrier {
			continue
		}
		layer := 0
		for _, q := range op.Qubits {
			if depth[q] > layer {
				layer = depth[q]
			}
		}
		layer++
		for _, q := range op.Qubits {
			depth[q] = layer
		}
	}
	max := 0
	for _, d := range depth {
		if d > max {
			max = d
		}
	}
	return max
}
