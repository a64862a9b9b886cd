// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/pkg/errors"
)

// MaxTruthTableInputs is the maximum number of inputs of a circuit for
// which TruthTable will enumerate all input combinations.
//
const MaxTruthTableInputs = 20

// Circuit drives a Graph through an ordered list of input gates and reads
// results from an ordered list of output gates.
//
// The flat input vector given to Pulse is split into consecutive windows,
// one per input gate, in order. Outputs are the concatenation of the
// cached outputs of all output gates, in order.
//
// Input gates are pulsed so that every input gate comes after the input
// gates it depends on, whatever their order in the list. This order is
// computed once by NewCircuit: changing the wiring of the graph afterwards
// requires a new Circuit.
//
type Circuit struct {
	g     *Graph
	in    []GateID
	out   []GateID
	order []window
	nIn   int
	nOut  int
}

// a window is an input gate and the start of its inputs in the flat input
// vector.
type window struct {
	id    GateID
	start int
}

// NewCircuit builds a new circuit over g.
//
func NewCircuit(g *Graph, inputs, outputs []GateID) (*Circuit, error) {
	if len(inputs) == 0 {
		return nil, errors.New("empty input gate list")
	}
	if len(outputs) == 0 {
		return nil, errors.New("empty output gate list")
	}
	c := &Circuit{
		g:   g,
		in:  append([]GateID(nil), inputs...),
		out: append([]GateID(nil), outputs...),
	}
	starts := make([]int, len(c.in))
	for i, id := range c.in {
		gt, err := g.gate(id)
		if err != nil {
			return nil, errors.Wrap(err, "input gate")
		}
		starts[i] = c.nIn
		c.nIn += gt.direct
	}
	for _, id := range c.out {
		gt, err := g.gate(id)
		if err != nil {
			return nil, errors.Wrap(err, "output gate")
		}
		c.nOut += gt.nOut
	}
	order, err := g.pulseOrder(c.in)
	if err != nil {
		return nil, err
	}
	c.order = make([]window, len(order))
	for i, pos := range order {
		c.order[i] = window{c.in[pos], starts[pos]}
	}
	return c, nil
}

// Graph returns the underlying graph.
//
func (c *Circuit) Graph() *Graph { return c.g }

// Inputs returns the input gates.
//
func (c *Circuit) Inputs() []GateID { return append([]GateID(nil), c.in...) }

// Outputs returns the output gates.
//
func (c *Circuit) Outputs() []GateID { return append([]GateID(nil), c.out...) }

// DirectInputs returns the length of the input vector expected by Pulse.
//
func (c *Circuit) DirectInputs() int { return c.nIn }

// TotalOutputs returns the length of the output vector returned by Pulse.
//
func (c *Circuit) TotalOutputs() int { return c.nOut }

// Pulse pulses each input gate with its window of inputs, then returns the
// outputs of all output gates.
//
// An input gate that is not ready is not an error: it may depend on gates
// that are not driven by this circuit. If an output gate still has no
// valid value once all input gates have been pulsed, Pulse returns an
// error wrapping ErrNotReady.
//
func (c *Circuit) Pulse(inputs []bool) ([]bool, error) {
	if len(inputs) != c.nIn {
		return nil, errors.Wrapf(ErrArityMismatch, "circuit: got %d inputs, expected %d", len(inputs), c.nIn)
	}
	for _, w := range c.order {
		st, _, err := c.g.PulseWindow(w.id, inputs, w.start)
		if err != nil {
			return nil, err
		}
		if st == OperationFailure {
			return nil, errors.Wrapf(ErrOperationFailure, "input gate %s", c.g.gates[w.id].label())
		}
	}
	out := make([]bool, 0, c.nOut)
	for _, id := range c.out {
		valid, v := c.g.CheckPulse(id)
		if !valid {
			return nil, errors.Wrapf(ErrNotReady, "output gate %s", c.g.gates[id].label())
		}
		out = append(out, v...)
	}
	return out, nil
}

// TruthTable pulses the circuit with every possible input vector and
// returns the outputs. Row i holds the outputs for the input vector whose
// bits, most significant first, are the binary representation of i.
//
func (c *Circuit) TruthTable() ([][]bool, error) {
	if c.nIn > MaxTruthTableInputs {
		return nil, errors.Errorf("circuit has %d inputs, truth table is limited to %d", c.nIn, MaxTruthTableInputs)
	}
	tot := 1 << uint(c.nIn)
	rows := make([][]bool, tot)
	for i := 0; i < tot; i++ {
		out, err := c.Pulse(InputVector(c.nIn, i))
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		rows[i] = out
	}
	return rows, nil
}

// InputVector returns the n bits of v, most significant first.
//
func InputVector(n, v int) []bool {
	in := make([]bool, n)
	for bit := range in {
		in[n-bit-1] = v&(1<<uint(bit)) != 0
	}
	return in
}

// Operation returns an Operation that evaluates the whole circuit. This
// allows a circuit to be used as a single gate in another graph. The
// operation returns nil, and the gate using it fails, if the circuit
// cannot be evaluated.
//
// The circuit must not be pulsed by anything else while used this way.
//
func (c *Circuit) Operation(name string) Operation {
	return WithName(name, OperationFunc(func(in []bool) []bool {
		out, err := c.Pulse(in)
		if err != nil {
			c.g.log.Debug("circuit evaluation failed", "circuit", name, "err", err)
			return nil
		}
		return out
	}))
}
