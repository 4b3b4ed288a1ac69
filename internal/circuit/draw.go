package circuit

import (
	"fmt"
	"strings"
)

const cellWidth = 5

// Draw renders a text timeline diagram: one row per qubit (wire '─') and one
// per classical bit (wire '═'). Gates are placed left to right in the same
// layers Depth uses; vertical connectors join multi-wire operations.
func (c *Circuit) Draw() string {
	numRows := c.NumQubits + c.NumClbits
	depth := make([]int, numRows)

	// cells[r] holds the symbol overrides for row r by column.
	type cell struct {
		col int
		s   string
	}
	cells := make([][]cell, numRows)
	maxCol := 0

	place := func(row, col int, s string) {
		cells[row] = append(cells[row], cell{col: col, s: s})
		if col+1 > maxCol {
			maxCol = col + 1
		}
	}

	for _, op := range c.Ops {
		rows := make([]int, 0, len(op.Qubits)+1)
		for _, q := range op.Qubits {
			rows = append(rows, q)
		}
		if op.Name == OpMeasure {
			rows = append(rows, c.NumQubits+op.Clbit)
		}

		// Reserve the whole vertical span so connectors never collide
		// with gates placed later on intermediate wires.
		lo, hi := rows[0], rows[0]
		for _, r := range rows {
			if r < lo {
				lo = r
			}
			if r > hi {
				hi = r
			}
		}
		col := 0
		for r := lo; r <= hi; r++ {
			if depth[r] > col {
				col = depth[r]
			}
		}
		for r := lo; r <= hi; r++ {
			depth[r] = col + 1
		}

		switch op.Name {
		case GateX, GateH, GateZ:
			place(op.Qubits[0], col, strings.ToUpper(op.Name))
		case GateCX:
			place(op.Qubits[0], col, "●")
			place(op.Qubits[1], col, "X")
			fillConnector(place, op.Qubits[0], op.Qubits[1], col, "│")
		case GateCZ:
			place(op.Qubits[0], col, "●")
			place(op.Qubits[1], col, "●")
			fillConnector(place, op.Qubits[0], op.Qubits[1], col, "│")
		case OpBarrier:
			for _, q := range op.Qubits {
				place(q, col, "░")
			}
		case OpMeasure:
			place(op.Qubits[0], col, "M")
			place(c.NumQubits+op.Clbit, col, "╩")
			fillConnector(place, op.Qubits[0], c.NumQubits+op.Clbit, col, "║")
		}
	}

	var b strings.Builder
	for r := 0; r < numRows; r++ {
		label, wire := rowLabel(r, c.NumQubits)
		b.WriteString(label)
		row := make([]string, maxCol)
		for i := range row {
			row[i] = strings.Repeat(wire, cellWidth)
		}
		for _, cl := range cells[r] {
			row[cl.col] = centerOnWire(cl.s, wire)
		}
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}
	return b.String()
}

func rowLabel(row, numQubits int) (label, wire string) {
	if row < numQubits {
		return fmt.Sprintf("q%d: ", row), "─"
	}
	return fmt.Sprintf("c%d: ", row-numQubits), "═"
}

// fillConnector draws a vertical connector on every row strictly between a and b.
func fillConnector(place func(row, col int, s string), a, b, col int, symbol string) {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	for r := lo + 1; r < hi; r++ {
		place(r, col, symbol)
	}
}

func centerOnWire(s, wire string) string {
	pad := cellWidth - 1 // symbols are single-width
	left := pad / 2
	return strings.Repeat(wire, left) + s + strings.Repeat(wire, pad-left)
}
