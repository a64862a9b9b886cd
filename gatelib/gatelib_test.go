package gatelib_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
	gl "github.com/db47h/logicsim/gatelib"
)

// chip builds a circuit with a single input gate of n bits. parts adds the
// remaining gates and returns the output gates.
func chip(t *testing.T, n int, parts func(g *ls.Graph, in ls.GateID) []ls.GateID) *ls.Circuit {
	t.Helper()
	g := ls.NewGraph()
	in, err := g.AddGate(n, ls.Direct(n), gl.BufferN(n))
	if err != nil {
		t.Fatal(err)
	}
	outs := parts(g, in)
	if err = g.Validate(); err != nil {
		t.Fatal(err)
	}
	c, err := ls.NewCircuit(g, []ls.GateID{in}, outs)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// add adds a gate with indirect inputs only. It panics on error.
func add(g *ls.Graph, op *gl.Op, links ...ls.Link) ls.GateID {
	id, err := g.AddGate(op.Outputs(), ls.Indirect(op.Inputs()), op, links...)
	if err != nil {
		panic(err)
	}
	return id
}
