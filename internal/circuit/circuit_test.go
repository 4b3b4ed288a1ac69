package circuit

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Circuit
		wantErr bool
	}{
		{
			name: "valid stabilizer shape",
			build: func() *Circuit {
				return New(3, 1).CX(0, 2).CX(1, 2).Measure(2, 0)
			},
			wantErr: false,
		},
		{
			name: "qubit out of range",
			build: func() *Circuit {
				return New(2, 1).X(2)
			},
			wantErr: true,
		},
		{
			name: "negative qubit",
			build: func() *Circuit {
				return New(2, 1).H(-1)
			},
			wantErr: true,
		},
		{
			name: "control equals target",
			build: func() *Circuit {
				return New(2, 1).CX(1, 1)
			},
			wantErr: true,
		},
		{
			name: "clbit out of range",
			build: func() *Circuit {
				return New(2, 1).Measure(0, 1)
			},
			wantErr: true,
		},
		{
			name: "unknown op",
			build: func() *Circuit {
				c := New(1, 0)
				c.Ops = append(c.Ops, Op{Name: "ccx", Qubits: []int{0}, Clbit: -1})
				return c
			},
			wantErr: true,
		},
		{
			name: "no qubits",
			build: func() *Circuit {
				return New(0, 0)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDepth(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Circuit
		want  int
	}{
		{
			name:  "empty",
			build: func() *Circuit { return New(3, 1) },
			want:  0,
		},
		{
			name:  "parallel single-qubit gates",
			build: func() *Circuit { return New(2, 0).X(0).X(1) },
			want:  1,
		},
		{
			name:  "serial on one qubit",
			build: func() *Circuit { return New(2, 0).X(0).H(0).Z(0) },
			want:  3,
		},
		{
			name:  "stabilizer without error",
			build: func() *Circuit { return New(3, 1).CX(0, 2).CX(1, 2).Measure(2, 0) },
			want:  3,
		},
		{
			name:  "barrier does not add depth",
			build: func() *Circuit { return New(2, 0).X(0).Barrier().X(1) },
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build().Depth(); got != tt.want {
				t.Errorf("Depth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClone(t *testing.T) {
	c := New(3, 1).X(0).CX(0, 2).Measure(2, 0)
	clone := c.Clone()

	if len(clone.Ops) != len(c.Ops) {
		t.Fatalf("Clone() ops = %d, want %d", len(clone.Ops), len(c.Ops))
	}

	// Mutating the clone must not affect the original.
	clone.Ops[1].Qubits[0] = 1
	if c.Ops[1].Qubits[0] != 0 {
		t.Error("Clone() shares qubit slices with the original")
	}
}

func TestQASM(t *testing.T) {
	c := New(3, 1).X(0).CX(0, 2).CX(1, 2).Measure(2, 0)
	got := c.QASM()

	wantLines := []string{
		"OPENQASM 2.0;",
		"include \"qelib1.inc\";",
		"qreg q[3];",
		"creg c[1];",
		"x q[0];",
		"cx q[0],q[2];",
		"cx q[1],q[2];",
		"measure q[2] -> c[0];",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("QASM() missing line %q in:\n%s", line, got)
		}
	}
}

func TestDraw(t *testing.T) {
	c := New(3, 1).X(0).CX(0, 2).CX(1, 2).Measure(2, 0)
	got := c.Draw()

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Draw() rendered %d rows, want 4 (3 qubits + 1 clbit):\n%s", len(lines), got)
	}

	for _, sym := range []string{"q0: ", "q2: ", "c0: ", "X", "●", "M", "╩"} {
		if !strings.Contains(got, sym) {
			t.Errorf("Draw() missing %q in:\n%s", sym, got)
		}
	}

	// The ancilla measurement connects down to the classical wire.
	if !strings.Contains(lines[3], "╩") {
		t.Errorf("Draw() classical row missing measurement terminal:\n%s", got)
	}
}
