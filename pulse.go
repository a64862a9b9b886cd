// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "github.com/pkg/errors"

// Pulse drives gate id with the given direct inputs.
//
// The gate collects its indirect inputs from the cached outputs of its
// sources. If any source has no valid output, Pulse invalidates the gate
// cache and returns NotReady. Otherwise the gate operation is evaluated
// and on success, its result is cached and every dependent of the gate
// that has no direct inputs is pulsed in turn. Dependents that are not
// ready yet are ignored. Dependents with direct inputs of their own are
// never pulsed by this mechanism.
//
// If len(direct) != DirectInputs(), Pulse returns Fatal and an error that
// wraps ErrArityMismatch. If a dependent's operation fails during forward
// chaining, Pulse returns Fatal and an error that wraps ErrInternal.
//
// The graph must not contain any cycle reachable from id.
//
func (gr *Graph) Pulse(id GateID, direct []bool) (Status, error) {
	g, err := gr.gate(id)
	if err != nil {
		return Fatal, err
	}
	if len(direct) != g.direct {
		return Fatal, errors.Wrapf(ErrArityMismatch, "gate %s: got %d direct inputs, expected %d", g.label(), len(direct), g.direct)
	}
	return gr.pulse(g, direct)
}

// PulseWindow drives gate id with direct inputs taken from
// flat[start:start+DirectInputs()]. It returns the pulse status and the
// start index for the next gate. If the window does not fit in flat,
// PulseWindow returns Fatal, start and an error wrapping ErrArityMismatch.
//
func (gr *Graph) PulseWindow(id GateID, flat []bool, start int) (Status, int, error) {
	g, err := gr.gate(id)
	if err != nil {
		return Fatal, start, err
	}
	end := start + g.direct
	if start < 0 || end > len(flat) {
		return Fatal, start, errors.Wrapf(ErrArityMismatch, "gate %s: input window [%d:%d] out of range for %d inputs", g.label(), start, end, len(flat))
	}
	st, err := gr.pulse(g, flat[start:end])
	return st, end, err
}

// CheckPulse returns the outputs cached by the last successful pulse of
// gate id. If valid is false, outputs is nil. The returned slice is a copy.
//
func (gr *Graph) CheckPulse(id GateID) (valid bool, outputs []bool) {
	g, err := gr.gate(id)
	if err != nil || !g.valid {
		return false, nil
	}
	return true, append([]bool(nil), g.cache...)
}

func (gr *Graph) pulse(g *Gate, direct []bool) (Status, error) {
	args, ok := gr.collect(g, direct)
	if !ok {
		g.invalidate()
		return NotReady, nil
	}
	out := g.op.Eval(args)
	if len(out) != g.nOut {
		g.invalidate()
		return OperationFailure, nil
	}
	g.cache = append(g.cache[:0], out...)
	g.valid = true

	for _, id := range g.outs {
		d := gr.gates[id]
		if d.direct > 0 {
			continue
		}
		st, err := gr.pulse(d, nil)
		if err != nil {
			return Fatal, err
		}
		switch st {
		case NotReady:
			gr.log.Debug("dependent not ready", "from", g.label(), "gate", d.label())
		case OperationFailure:
			return Fatal, errors.Wrapf(ErrInternal, "forward pulse from %s: operation of gate %s returned the wrong number of outputs", g.label(), d.label())
		}
	}
	return Success, nil
}

// collect builds the argument list for g. It stops at the first indirect
// slot whose source is not ready, or that is not wired at all.
//
func (gr *Graph) collect(g *Gate, direct []bool) ([]bool, bool) {
	args := make([]bool, 0, len(g.slots))
	di, li, oi := 0, 0, 0
	var src []bool // cached outputs of links[li].Source
	for _, isDirect := range g.slots {
		if isDirect {
			args = append(args, direct[di])
			di++
			continue
		}
		for li < len(g.links) && oi >= len(g.links[li].Outputs) {
			li++
			oi = 0
			src = nil
		}
		if li >= len(g.links) {
			return nil, false
		}
		l := g.links[li]
		if src == nil {
			s := gr.gates[l.Source]
			if !s.valid {
				return nil, false
			}
			src = s.cache
		}
		args = append(args, src[l.Outputs[oi]])
		oi++
	}
	return args, true
}
