// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"

	"github.com/pkg/errors"
)

// Status is the outcome of a pulse.
//
type Status int

// Pulse outcomes.
//
const (
	// Success means the gate evaluated and its cache is valid.
	Success Status = iota
	// NotReady means an upstream gate has no valid output yet. This is
	// expected while a graph is being primed and is never an error.
	NotReady
	// OperationFailure means the gate operation returned the wrong number
	// of outputs.
	OperationFailure
	// Fatal is always returned together with a non-nil error.
	Fatal
)

func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case NotReady:
		return "NotReady"
	case OperationFailure:
		return "OperationFailure"
	case Fatal:
		return "Fatal"
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// Errors returned by the simulator. They are always wrapped with some
// context; use errors.Is or errors.Cause to test for them.
//
var (
	// ErrConstructionInvalid is returned when a gate's arities or slot
	// pattern are inconsistent.
	ErrConstructionInvalid = errors.New("invalid gate construction")
	// ErrArityMismatch is returned when a gate or circuit is pulsed with
	// the wrong number of direct inputs.
	ErrArityMismatch = errors.New("direct input count mismatch")
	// ErrLinkIndexOutOfRange is returned by Connect when an output index is
	// not valid for the source gate.
	ErrLinkIndexOutOfRange = errors.New("link output index out of range")
	// ErrUnknownGate is returned when a GateID does not belong to the graph.
	ErrUnknownGate = errors.New("unknown gate")
	// ErrInternal signals a consistency violation detected while forward
	// chaining: an operation that worked before returned the wrong number
	// of outputs.
	ErrInternal = errors.New("internal consistency error")
	// ErrCycle is returned by Validate when the wiring contains a loop.
	ErrCycle = errors.New("cyclic wiring")
	// ErrOperationFailure is returned by a Circuit when the operation of
	// one of its input gates returned the wrong number of outputs.
	ErrOperationFailure = errors.New("operation failure")
	// ErrNotReady is returned by a Circuit when an output gate has no
	// valid value after all its inputs have been driven.
	ErrNotReady = errors.New("output not ready")
)
