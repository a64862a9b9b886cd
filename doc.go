/*
Package logicsim provides a simulator for combinational boolean circuits.

A circuit is a directed acyclic graph of gates. Each gate computes an
arbitrary boolean function with a fixed number of inputs and outputs. Some
input slots of a gate are direct inputs, supplied by the caller when the
gate is pulsed; the others are indirect inputs, wired through Links to
specific outputs of other gates.

Pulsing a gate collects its inputs, evaluates its Operation and caches the
result. On success, every dependent gate that has no direct inputs is
pulsed in turn. Values are never pushed: a dependent pulls the cached
outputs of its sources, and a dependent whose sources are not all ready yet
simply reports NotReady. This allows a large graph to be primed
incrementally, one input gate at a time:

	g := logicsim.NewGraph()
	and := logicsim.OperationFunc(func(in []bool) []bool { return []bool{in[0] && in[1]} })
	a, _ := g.AddGate(1, logicsim.Direct(2), and)
	b, _ := g.AddGate(1, logicsim.MustSlots("di"), and, logicsim.Link{Source: a, Outputs: []int{0}})
	g.Pulse(a, []bool{true, true})
	g.Pulse(b, []bool{true})
	_, out := g.CheckPulse(b) // out == []bool{true}

Evaluation is synchronous and single-threaded. A Graph is not safe for
concurrent use and provides no timing or clock model.

A Circuit wraps a Graph with an ordered list of input and output gates and
drives it from a single flat input vector.
*/
package logicsim
