// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"log/slog"
	"strings"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/gatelib"
	"github.com/pkg/errors"
)

// An op is a gate operation with known arity.
type op interface {
	logicsim.Operation
	Inputs() int
	Outputs() int
}

// chipOp wraps a built chip.
type chipOp struct {
	logicsim.Operation
	name    string
	in, out int
}

func (c *chipOp) Name() string { return c.name }
func (c *chipOp) Inputs() int  { return c.in }
func (c *chipOp) Outputs() int { return c.out }

// Design is a built netlist.
//
type Design struct {
	Name    string
	Circuit *logicsim.Circuit
	gates   map[string]logicsim.GateID
}

// Graph returns the design's graph.
//
func (d *Design) Graph() *logicsim.Graph { return d.Circuit.Graph() }

// Gate returns the ID of the named gate.
//
func (d *Design) Gate(name string) (logicsim.GateID, bool) {
	id, ok := d.gates[name]
	return id, ok
}

// Build builds the netlist into a new graph.
//
// Gates can be listed in any order: they are added to the graph after all
// the gates they depend on. Build fails if a gate references itself
// directly or indirectly.
//
func (n *Netlist) Build() (*Design, error) {
	return n.build(nil, nil)
}

// BuildWithLogger is like Build but the graph of the design and the graphs
// of its chips log debug messages to l.
//
func (n *Netlist) BuildWithLogger(l *slog.Logger) (*Design, error) {
	return n.build(nil, l)
}

func (n *Netlist) build(parent map[string]op, l *slog.Logger) (*Design, error) {
	// chip scope: parent chips, then ours in order.
	chips := make(map[string]op, len(parent)+len(n.Chips))
	for k, v := range parent {
		chips[k] = v
	}
	for i, c := range n.Chips {
		if c.Name == "" {
			return nil, errors.Errorf("chip %d has no name", i)
		}
		d, err := c.build(chips, l)
		if err != nil {
			return nil, errors.Wrapf(err, "chip %q", c.Name)
		}
		cc := d.Circuit
		chips[strings.ToLower(c.Name)] = &chipOp{cc.Operation(c.Name), c.Name, cc.DirectInputs(), cc.TotalOutputs()}
	}

	defs := make(map[string]*GateDef, len(n.Gates))
	ops := make(map[string]op, len(n.Gates))
	refs := make(map[string][]ref, len(n.Gates))
	for i := range n.Gates {
		gd := &n.Gates[i]
		if gd.Name == "" {
			return nil, errors.Errorf("gate %d has no name", i)
		}
		if _, ok := defs[gd.Name]; ok {
			return nil, errors.Errorf("duplicate gate name %q", gd.Name)
		}
		defs[gd.Name] = gd
		o, err := lookup(chips, gd.Op)
		if err != nil {
			return nil, errors.Wrapf(err, "gate %q", gd.Name)
		}
		ops[gd.Name] = o
		for _, s := range gd.From {
			r, err := parseRef(s)
			if err != nil {
				return nil, errors.Wrapf(err, "gate %q", gd.Name)
			}
			refs[gd.Name] = append(refs[gd.Name], r)
		}
	}

	order, err := sortGates(n.Gates, defs, refs)
	if err != nil {
		return nil, err
	}

	g := logicsim.NewGraph()
	g.SetLogger(l)
	ids := make(map[string]logicsim.GateID, len(order))
	for _, gd := range order {
		o := ops[gd.Name]
		var slots []bool
		switch {
		case gd.Slots != "":
			if slots, err = logicsim.Slots(gd.Slots); err != nil {
				return nil, errors.Wrapf(err, "gate %q", gd.Name)
			}
		case len(gd.From) == 0:
			slots = logicsim.Direct(o.Inputs())
		default:
			slots = logicsim.Indirect(o.Inputs())
		}
		if len(slots) != o.Inputs() {
			return nil, errors.Wrapf(logicsim.ErrConstructionInvalid, "gate %q: %d slots for %d inputs of %s", gd.Name, len(slots), o.Inputs(), gd.Op)
		}
		var links []logicsim.Link
		for _, r := range refs[gd.Name] {
			outs, err := r.outputs(ops[r.gate].Outputs())
			if err != nil {
				return nil, errors.Wrapf(err, "gate %q", gd.Name)
			}
			links = append(links, logicsim.From(ids[r.gate], outs...))
		}
		id, err := g.Add(logicsim.GateSpec{
			Name:    gd.Name,
			Outputs: o.Outputs(),
			Slots:   slots,
			Op:      o,
			Sources: links,
		})
		if err != nil {
			return nil, err
		}
		ids[gd.Name] = id
	}
	if err = g.Validate(); err != nil {
		return nil, err
	}

	in, err := gateList(ids, n.Inputs)
	if err != nil {
		return nil, errors.Wrap(err, "inputs")
	}
	out, err := gateList(ids, n.Outputs)
	if err != nil {
		return nil, errors.Wrap(err, "outputs")
	}
	c, err := logicsim.NewCircuit(g, in, out)
	if err != nil {
		return nil, err
	}
	return &Design{Name: n.Name, Circuit: c, gates: ids}, nil
}

func lookup(chips map[string]op, name string) (op, error) {
	if o, ok := chips[strings.ToLower(strings.TrimSpace(name))]; ok {
		return o, nil
	}
	if o, ok := gatelib.Lookup(name); ok {
		return o, nil
	}
	return nil, errors.Errorf("unknown operation %q", name)
}

func gateList(ids map[string]logicsim.GateID, names []string) ([]logicsim.GateID, error) {
	l := make([]logicsim.GateID, 0, len(names))
	for _, name := range names {
		id, ok := ids[name]
		if !ok {
			return nil, errors.Errorf("unknown gate %q", name)
		}
		l = append(l, id)
	}
	return l, nil
}

const (
	visiting = iota + 1
	done
)

// sortGates returns the gate definitions ordered so that every gate comes
// after the gates it references.
//
func sortGates(gates []GateDef, defs map[string]*GateDef, refs map[string][]ref) ([]*GateDef, error) {
	state := make(map[string]int, len(gates))
	order := make([]*GateDef, 0, len(gates))
	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visiting:
			return errors.Wrapf(logicsim.ErrCycle, "gate %q", name)
		case done:
			return nil
		}
		state[name] = visiting
		for _, r := range refs[name] {
			if _, ok := defs[r.gate]; !ok {
				return errors.Errorf("gate %q: unknown source gate %q", name, r.gate)
			}
			if err := visit(r.gate); err != nil {
				return err
			}
		}
		state[name] = done
		order = append(order, defs[name])
		return nil
	}
	for i := range gates {
		if err := visit(gates[i].Name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
