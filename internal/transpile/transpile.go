// Package transpile rewrites circuits into a backend's basis gate set.
// The pipeline is deliberately small: drop barriers, decompose gates the
// backend lacks, then verify every remaining op is supported.
package transpile

import (
	"fmt"

	"github.com/nvandessel/qverify/internal/circuit"
)

// Pass transforms a circuit. Passes must not mutate their input.
type Pass interface {
	Name() string
	Apply(*circuit.Circuit) (*circuit.Circuit, error)
}

// DropBarriersPass removes scheduling barriers; they carry no semantics for
// a statevector backend.
type DropBarriersPass struct{}

func (DropBarriersPass) Name() string { return "drop-barriers" }

func (DropBarriersPass) Apply(c *circuit.Circuit) (*circuit.Circuit, error) {
	out := circuit.New(c.NumQubits, c.NumClbits)
	for _, op := range c.Ops {
		if op.Name == circuit.OpBarrier {
			continue
		}
		out.Ops = append(out.Ops, op)
	}
	return out, nil
}

// BasisPass decomposes gates outside the basis into basis-gate sequences.
// Known decompositions: cz -> h(t)·cx(c,t)·h(t).
type BasisPass struct {
	Basis map[string]bool
}

// NewBasisPass builds a BasisPass from a basis gate list. Measurements and
// barriers are always allowed through.
func NewBasisPass(basis []string) BasisPass {
	m := make(map[string]bool, len(basis)+2)
	for _, g := range basis {
		m[g] = true
	}
	m[circuit.OpMeasure] = true
	m[circuit.OpBarrier] = true
	return BasisPass{Basis: m}
}

func (BasisPass) Name() string { return "basis-decompose" }

func (p BasisPass) Apply(c *circuit.Circuit) (*circuit.Circuit, error) {
	out := circuit.New(c.NumQubits, c.NumClbits)
	for _, op := range c.Ops {
		if p.Basis[op.Name] {
			out.Ops = append(out.Ops, op)
			continue
		}
		switch op.Name {
		case circuit.GateCZ:
			if !p.Basis[circuit.GateH] || !p.Basis[circuit.GateCX] {
				return nil, fmt.Errorf("cannot decompose %q: basis lacks h and cx", op.Name)
			}
			out.H(op.Qubits[1]).CX(op.Qubits[0], op.Qubits[1]).H(op.Qubits[1])
		default:
			return nil, fmt.Errorf("gate %q not in basis and no decomposition known", op.Name)
		}
	}
	return out, nil
}

// Transpile runs the default pipeline against the given basis and validates
// the result.
func Transpile(c *circuit.Circuit, basis []string) (*circuit.Circuit, error) {
	passes := []Pass{
		DropBarriersPass{},
		NewBasisPass(basis),
	}

	out := c.Clone()
	for _, pass := range passes {
		next, err := pass.Apply(out)
		if err != nil {
			return nil, fmt.Errorf("pass %s: %w", pass.Name(), err)
		}
		out = next
	}

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("transpiled circuit invalid: %w", err)
	}
	return out, nil
}
