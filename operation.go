// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// An Operation is the boolean function computed by a gate.
//
// Eval receives exactly TotalInputs values, in slot order, and must return
// TotalOutputs values. Implementations must not retain or modify the input
// slice and must be free of side effects: the simulator may call Eval any
// number of times with the same inputs.
//
// For example, a 2 input AND gate can be defined like this:
//
//	and := logicsim.OperationFunc(func(in []bool) []bool {
//		return []bool{in[0] && in[1]}
//	})
//
type Operation interface {
	Eval(in []bool) []bool
}

// OperationFunc adapts an ordinary function to the Operation interface.
//
type OperationFunc func(in []bool) []bool

// Eval returns f(in).
//
func (f OperationFunc) Eval(in []bool) []bool { return f(in) }

// Named is implemented by operations that have a name. The name is only
// used for debug output.
//
type Named interface {
	Name() string
}

type namedOp struct {
	Operation
	name string
}

func (n *namedOp) Name() string { return n.name }

// WithName returns an Operation that behaves like op and implements Named.
//
func WithName(name string, op Operation) Operation {
	return &namedOp{op, name}
}

func opName(op Operation) string {
	if n, ok := op.(Named); ok {
		return n.Name()
	}
	return ""
}
