package circuit

import (
	"fmt"
	"strings"
)

// QASM emits the circuit as OpenQASM 2.0 using the standard qelib1 gate set.
func (c *Circuit) QASM() string {
	var b strings.Builder
	b.WriteString("OPENQASM 2.0;\n")
	b.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&b, "qreg q[%d];\n", c.NumQubits)
	if c.NumClbits > 0 {
		fmt.Fprintf(&b, "creg c[%d];\n", c.NumClbits)
	}
	b.WriteString("\n")

	for _, op := range c.Ops {
		switch op.Name {
		case OpMeasure:
			fmt.Fprintf(&b, "measure q[%d] -> c[%d];\n", op.Qubits[0], op.Clbit)
		case OpBarrier:
			refs := make([]string, len(op.Qubits))
			for i, q := range op.Qubits {
				refs[i] = fmt.Sprintf("q[%d]", q)
			}
			fmt.Fprintf(&b, "barrier %s;\n", strings.Join(refs, ","))
		default:
			refs := make([]string, len(op.Qubits))
			for i, q := range op.Qubits {
				refs[i] = fmt.Sprintf("q[%d]", q)
			}
			fmt.Fprintf(&b, "%s %s;\n", op.Name, strings.Join(refs, ","))
		}
	}
	return b.String()
}
