// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"
)

// A GateID identifies a gate within the Graph that created it. IDs are
// dense and stable: the first gate added to a graph has ID 0, the next 1,
// and so on.
//
type GateID int

// A Link wires some outputs of a source gate to consecutive indirect input
// slots of the gate that owns the link. Outputs selects, in order, which
// outputs of Source fill these slots.
//
type Link struct {
	Source  GateID
	Outputs []int
}

// From returns a Link from the given outputs of gate src.
//
func From(src GateID, outputs ...int) Link {
	return Link{Source: src, Outputs: outputs}
}

// A GateSpec wraps a gate specification.
//
type GateSpec struct {
	// Gate name. Only used in error messages and debug output.
	Name string
	// Number of outputs. Must be at least 1.
	Outputs int
	// Slots flags each input slot as direct (true) or indirect (false).
	// Direct slots are filled from the inputs given to Pulse, indirect
	// slots from the Sources, in order. See Slots() for a short way of
	// writing this.
	Slots []bool
	// Op computes the gate outputs.
	Op Operation
	// Sources are the initial links. Required if there are indirect slots.
	Sources []Link
}

// Gate is a node in a Graph. It computes a fixed arity boolean function
// and caches its last output.
//
// Gates are created by Graph.Add or Graph.AddGate. All mutations go through
// the Graph.
//
type Gate struct {
	id     GateID
	name   string
	slots  []bool
	direct int
	nOut   int
	op     Operation

	links []Link   // inbound, in slot order
	outs  []GateID // dependents, no duplicates, in insertion order

	valid bool
	cache []bool
}

// ID returns the gate ID.
//
func (g *Gate) ID() GateID { return g.id }

// Name returns the gate name, which may be empty.
//
func (g *Gate) Name() string { return g.name }

// TotalInputs returns the number of input slots.
//
func (g *Gate) TotalInputs() int { return len(g.slots) }

// DirectInputs returns the number of direct input slots.
//
func (g *Gate) DirectInputs() int { return g.direct }

// TotalOutputs returns the number of outputs.
//
func (g *Gate) TotalOutputs() int { return g.nOut }

// Slots returns a copy of the slot pattern.
//
func (g *Gate) Slots() []bool { return append([]bool(nil), g.slots...) }

// Links returns a copy of the inbound links.
//
func (g *Gate) Links() []Link {
	ls := make([]Link, len(g.links))
	for i, l := range g.links {
		ls[i] = Link{l.Source, append([]int(nil), l.Outputs...)}
	}
	return ls
}

// Outbound returns the IDs of the gates fed by g.
//
func (g *Gate) Outbound() []GateID { return append([]GateID(nil), g.outs...) }

func (g *Gate) label() string {
	if g.name != "" {
		return g.name
	}
	return "#" + strconv.Itoa(int(g.id))
}

func (g *Gate) indirect() int { return len(g.slots) - g.direct }

// wired returns the number of indirect slots covered by links.
func (g *Gate) wired() int {
	n := 0
	for _, l := range g.links {
		n += len(l.Outputs)
	}
	return n
}

func (g *Gate) invalidate() {
	g.valid = false
	g.cache = g.cache[:0]
}

func (g *Gate) addOut(id GateID) {
	for _, o := range g.outs {
		if o == id {
			return
		}
	}
	g.outs = append(g.outs, id)
}

func (g *Gate) removeOut(id GateID) {
	for i, o := range g.outs {
		if o == id {
			g.outs = append(g.outs[:i], g.outs[i+1:]...)
			return
		}
	}
}

func (g *Gate) removeLinksFrom(id GateID) {
	ls := g.links[:0]
	for _, l := range g.links {
		if l.Source != id {
			ls = append(ls, l)
		}
	}
	g.links = ls
}

// Graph owns a set of gates and their wiring.
//
// A Graph is not safe for concurrent use: all pulses and wiring changes on
// a graph must be serialized by the caller.
//
type Graph struct {
	gates []*Gate
	log   *slog.Logger
}

// NewGraph returns a new empty graph.
//
func NewGraph() *Graph {
	return &Graph{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// SetLogger sets the logger used for debug messages. A nil logger disables
// logging.
//
func (gr *Graph) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	gr.log = l
}

// Len returns the number of gates in the graph.
//
func (gr *Graph) Len() int { return len(gr.gates) }

// Gate returns the gate with the given ID.
//
func (gr *Graph) Gate(id GateID) (*Gate, error) {
	return gr.gate(id)
}

func (gr *Graph) gate(id GateID) (*Gate, error) {
	if id < 0 || int(id) >= len(gr.gates) {
		return nil, errors.Wrapf(ErrUnknownGate, "gate #%d", id)
	}
	return gr.gates[id], nil
}

// AddGate adds a new gate to the graph. See GateSpec for a description of
// the arguments.
//
func (gr *Graph) AddGate(totalOutputs int, slots []bool, op Operation, sources ...Link) (GateID, error) {
	return gr.Add(GateSpec{Outputs: totalOutputs, Slots: slots, Op: op, Sources: sources})
}

// Add adds a new gate built from the given spec to the graph and returns its ID.
//
func (gr *Graph) Add(spec GateSpec) (GateID, error) {
	name := spec.Name
	if name == "" {
		name = "#" + strconv.Itoa(len(gr.gates))
	}
	if len(spec.Slots) == 0 {
		return -1, errors.Wrapf(ErrConstructionInvalid, "gate %s: no input slots", name)
	}
	if spec.Outputs < 1 {
		return -1, errors.Wrapf(ErrConstructionInvalid, "gate %s: %d outputs", name, spec.Outputs)
	}
	if spec.Op == nil {
		return -1, errors.Wrapf(ErrConstructionInvalid, "gate %s: nil operation", name)
	}
	g := &Gate{
		id:    GateID(len(gr.gates)),
		name:  spec.Name,
		slots: append([]bool(nil), spec.Slots...),
		nOut:  spec.Outputs,
		op:    spec.Op,
		cache: make([]bool, 0, spec.Outputs),
	}
	for _, d := range g.slots {
		if d {
			g.direct++
		}
	}
	if g.indirect() > 0 && len(spec.Sources) == 0 {
		return -1, errors.Wrapf(ErrConstructionInvalid, "gate %s: %d indirect slots but no sources", name, g.indirect())
	}

	gr.gates = append(gr.gates, g)
	if err := gr.Connect(g.id, spec.Sources...); err != nil {
		// Connect has no side effects on error and nothing else refers to g yet.
		gr.gates = gr.gates[:len(gr.gates)-1]
		return -1, err
	}
	gr.log.Debug("gate added", "gate", g.label(), "id", int(g.id), "inputs", len(g.slots), "direct", g.direct, "outputs", g.nOut)
	return g.id, nil
}

// Connect appends the given links to the inbound links of gate id, and
// registers id as a dependent of each link source.
//
// All links are checked before any change is made: if Connect returns an
// error, the wiring of the graph is unchanged. Output indexes are checked
// first: an out of range index in any link always yields
// ErrLinkIndexOutOfRange, then come unknown sources (ErrUnknownGate),
// empty links and overfilled slots (ErrConstructionInvalid).
//
func (gr *Graph) Connect(id GateID, links ...Link) error {
	g, err := gr.gate(id)
	if err != nil {
		return err
	}
	for i, l := range links {
		src, err := gr.gate(l.Source)
		if err != nil {
			continue
		}
		for _, o := range l.Outputs {
			if o < 0 || o >= src.nOut {
				return errors.Wrapf(ErrLinkIndexOutOfRange, "gate %s: link %d: output %d of %s (%d outputs)", g.label(), i, o, src.label(), src.nOut)
			}
		}
	}
	need := 0
	for i, l := range links {
		src, err := gr.gate(l.Source)
		if err != nil {
			return errors.Wrapf(err, "gate %s: link %d", g.label(), i)
		}
		if len(l.Outputs) == 0 {
			return errors.Wrapf(ErrConstructionInvalid, "gate %s: link %d from %s selects no outputs", g.label(), i, src.label())
		}
		need += len(l.Outputs)
	}
	if w := g.wired() + need; w > g.indirect() {
		return errors.Wrapf(ErrConstructionInvalid, "gate %s: %d linked outputs for %d indirect slots", g.label(), w, g.indirect())
	}

	for _, l := range links {
		g.links = append(g.links, Link{l.Source, append([]int(nil), l.Outputs...)})
		gr.gates[l.Source].addOut(id)
		gr.log.Debug("connect", "from", gr.gates[l.Source].label(), "to", g.label(), "outputs", l.Outputs)
	}
	return nil
}

// ClearInputConnections removes all inbound links of gate id. The gate is
// also removed from the dependents of its former sources.
//
func (gr *Graph) ClearInputConnections(id GateID) error {
	g, err := gr.gate(id)
	if err != nil {
		return err
	}
	for _, l := range g.links {
		gr.gates[l.Source].removeOut(id)
	}
	g.links = nil
	gr.log.Debug("inputs cleared", "gate", g.label())
	return nil
}

// ClearOutputConnections removes all dependents of gate id. Links sourced
// from id are removed from the former dependents, which are left with
// unwired indirect slots until connected again.
//
func (gr *Graph) ClearOutputConnections(id GateID) error {
	g, err := gr.gate(id)
	if err != nil {
		return err
	}
	for _, o := range g.outs {
		gr.gates[o].removeLinksFrom(id)
	}
	g.outs = nil
	gr.log.Debug("outputs cleared", "gate", g.label())
	return nil
}
