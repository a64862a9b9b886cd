// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "github.com/pkg/errors"

// Validate checks the wiring of every gate in the graph. It returns an
// error if:
//
//	- a gate's indirect slots are not all covered by its links
//	  (ErrConstructionInvalid),
//	- a link selects an output that does not exist (ErrLinkIndexOutOfRange),
//	- a link source does not list the gate as a dependent or vice versa
//	  (ErrConstructionInvalid),
//	- the wiring contains a cycle (ErrCycle).
//
// A graph that passes Validate can be driven to a state where every gate
// has a valid output.
//
func (gr *Graph) Validate() error {
	for _, g := range gr.gates {
		if w := g.wired(); w != g.indirect() {
			return errors.Wrapf(ErrConstructionInvalid, "gate %s: %d linked outputs for %d indirect slots", g.label(), w, g.indirect())
		}
		for i, l := range g.links {
			src, err := gr.gate(l.Source)
			if err != nil {
				return errors.Wrapf(err, "gate %s: link %d", g.label(), i)
			}
			for _, o := range l.Outputs {
				if o < 0 || o >= src.nOut {
					return errors.Wrapf(ErrLinkIndexOutOfRange, "gate %s: link %d: output %d of %s (%d outputs)", g.label(), i, o, src.label(), src.nOut)
				}
			}
			if !contains(src.outs, g.id) {
				return errors.Wrapf(ErrConstructionInvalid, "gate %s: source %s does not list it as dependent", g.label(), src.label())
			}
		}
		for _, o := range g.outs {
			d, err := gr.gate(o)
			if err != nil {
				return errors.Wrapf(err, "gate %s: dependent", g.label())
			}
			if !d.hasSource(g.id) {
				return errors.Wrapf(ErrConstructionInvalid, "gate %s: dependent %s has no link from it", g.label(), d.label())
			}
		}
	}
	return gr.checkCycles()
}

func contains(ids []GateID, id GateID) bool {
	for _, i := range ids {
		if i == id {
			return true
		}
	}
	return false
}

func (g *Gate) hasSource(id GateID) bool {
	for _, l := range g.links {
		if l.Source == id {
			return true
		}
	}
	return false
}

const (
	unvisited = iota
	visiting
	done
)

// checkCycles runs a depth first search along dependents.
func (gr *Graph) checkCycles() error {
	state := make([]int, len(gr.gates))
	var visit func(g *Gate) error
	visit = func(g *Gate) error {
		switch state[g.id] {
		case visiting:
			return errors.Wrapf(ErrCycle, "gate %s", g.label())
		case done:
			return nil
		}
		state[g.id] = visiting
		for _, o := range g.outs {
			if err := visit(gr.gates[o]); err != nil {
				return err
			}
		}
		state[g.id] = done
		return nil
	}
	for _, g := range gr.gates {
		if err := visit(g); err != nil {
			return err
		}
	}
	return nil
}

// reachable returns the set of gates reachable from id along dependents.
func (gr *Graph) reachable(id GateID) map[GateID]bool {
	seen := make(map[GateID]bool)
	stack := append([]GateID(nil), gr.gates[id].outs...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			continue
		}
		seen[n] = true
		stack = append(stack, gr.gates[n].outs...)
	}
	return seen
}

// pulseOrder returns the positions in ids ordered so that every gate comes
// after the gates of ids it depends on, directly or through other gates.
// Independent gates keep their relative order. All ids must be valid.
//
func (gr *Graph) pulseOrder(ids []GateID) ([]int, error) {
	reach := make([]map[GateID]bool, len(ids))
	for i, id := range ids {
		reach[i] = gr.reachable(id)
	}
	state := make([]int, len(ids))
	order := make([]int, 0, len(ids))
	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case visiting:
			return errors.Wrapf(ErrCycle, "input gate %s", gr.gates[ids[i]].label())
		case done:
			return nil
		}
		state[i] = visiting
		for j := range ids {
			if j != i && ids[j] != ids[i] && reach[j][ids[i]] {
				if err := visit(j); err != nil {
					return err
				}
			}
		}
		state[i] = done
		order = append(order, i)
		return nil
	}
	for i := range ids {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return order, nil
}
