// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package simtest provides utility functions for testing circuits.
//
package simtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/logicsim"
)

// maxExhaustive is the maximum input count for which all input
// combinations are tested.
const maxExhaustive = 12

// GateCircuit wraps op into a single gate circuit with the given number of
// direct inputs and outputs.
//
func GateCircuit(op logicsim.Operation, inputs, outputs int) (*logicsim.Circuit, error) {
	g := logicsim.NewGraph()
	id, err := g.AddGate(outputs, logicsim.Direct(inputs), op)
	if err != nil {
		return nil, err
	}
	return logicsim.NewCircuit(g, []logicsim.GateID{id}, []logicsim.GateID{id})
}

func randBool() bool {
	return rand.Int63()&(1<<62) != 0
}

func inString(in []bool) string {
	var b strings.Builder
	for i, v := range in {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "in[%d]=%v", i, v)
	}
	return b.String()
}

// CompareCircuits takes two circuits and compares their outputs given the
// same inputs. Both circuits must have the same number of inputs and
// outputs.
//
// If the circuits have 12 inputs or less, all input combinations are
// tested. Otherwise the circuits are tested with all inputs false, all
// inputs true, and 4096 random input vectors.
//
func CompareCircuits(t testing.TB, c1, c2 *logicsim.Circuit) {
	t.Helper()

	if c1.DirectInputs() != c2.DirectInputs() {
		t.Fatalf("c1.DirectInputs() = %d != c2.DirectInputs() = %d", c1.DirectInputs(), c2.DirectInputs())
	}
	if c1.TotalOutputs() != c2.TotalOutputs() {
		t.Fatalf("c1.TotalOutputs() = %d != c2.TotalOutputs() = %d", c1.TotalOutputs(), c2.TotalOutputs())
	}

	n := c1.DirectInputs()
	inputs := make([]bool, n)

	check := func() {
		t.Helper()
		o1, err := c1.Pulse(inputs)
		if err != nil {
			t.Fatalf("c1: %s: %v", inString(inputs), err)
		}
		o2, err := c2.Pulse(inputs)
		if err != nil {
			t.Fatalf("c2: %s: %v", inString(inputs), err)
		}
		for o := range o1 {
			if o1[o] != o2[o] {
				t.Fatalf("\nExpected %s => out[%d]=%v\nGot %v", inString(inputs), o, o1[o], o2[o])
			}
		}
	}

	start := time.Now()
	count := 0
	if n <= maxExhaustive {
		tot := 1 << uint(n)
		for i := 0; i < tot; i++ {
			inputs = logicsim.InputVector(n, i)
			check()
		}
		count = tot
	} else {
		rand.Seed(time.Now().UnixNano())
		// try all 0
		check()
		// try all 1
		for i := range inputs {
			inputs[i] = true
		}
		check()
		iter := 1 << maxExhaustive
		for i := 0; i < iter; i++ {
			for in := range inputs {
				inputs[in] = randBool()
			}
			check()
		}
		count = iter + 2
	}
	t.Logf("%d gates vs. %d gates: %d input vectors in %v", c1.Graph().Len(), c2.Graph().Len(), count, time.Since(start))
}

// CompareOperation compares a circuit with a single gate built from op.
//
func CompareOperation(t testing.TB, op logicsim.Operation, c *logicsim.Circuit) {
	t.Helper()
	ref, err := GateCircuit(op, c.DirectInputs(), c.TotalOutputs())
	if err != nil {
		t.Fatal(err)
	}
	CompareCircuits(t, ref, c)
}

// CheckTruthTable checks the outputs of circuit c against the expected
// results. result[o][i] is the expected value of output o for the input
// vector InputVector(c.DirectInputs(), i).
//
func CheckTruthTable(t testing.TB, c *logicsim.Circuit, result [][]bool) {
	t.Helper()
	if len(result) != c.TotalOutputs() {
		t.Fatalf("got %d result rows for %d outputs", len(result), c.TotalOutputs())
	}
	tt, err := c.TruthTable()
	if err != nil {
		t.Fatal(err)
	}
	for i, row := range tt {
		for o, out := range row {
			if i >= len(result[o]) {
				t.Fatalf("out[%d]: missing expected result for row %d", o, i)
			}
			if exp := result[o][i]; exp != out {
				t.Errorf("%v => out[%d] = %v, got %v", logicsim.InputVector(c.DirectInputs(), i), o, exp, out)
			}
		}
	}
}
