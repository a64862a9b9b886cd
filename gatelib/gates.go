// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gatelib provides a library of standard gate operations for
// logicsim.
//
// Bit vectors are little endian: index 0 is the least significant bit.
//
package gatelib

import (
	"strconv"
)

// An Op is a gate operation with a fixed number of inputs and outputs. It
// implements logicsim.Operation and logicsim.Named.
//
// Eval returns nil if called with the wrong number of inputs, which the
// simulator reports as an operation failure.
//
type Op struct {
	name string
	in   int
	out  int
	fn   func(in, out []bool)
}

// New returns a new Op. fn receives the inputs and a zeroed output slice
// to fill.
//
func New(name string, inputs, outputs int, fn func(in, out []bool)) *Op {
	return &Op{name, inputs, outputs, fn}
}

// Name returns the operation name.
//
func (o *Op) Name() string { return o.name }

// Inputs returns the number of inputs.
//
func (o *Op) Inputs() int { return o.in }

// Outputs returns the number of outputs.
//
func (o *Op) Outputs() int { return o.out }

// Eval implements logicsim.Operation.
//
func (o *Op) Eval(in []bool) []bool {
	if len(in) != o.in {
		return nil
	}
	out := make([]bool, o.out)
	o.fn(in, out)
	return out
}

func gate(name string, fn func(a, b bool) bool) *Op {
	return New(name, 2, 1, func(in, out []bool) { out[0] = fn(in[0], in[1]) })
}

var (
	// Buffer copies its input.
	//
	//	Inputs: in
	//	Outputs: out
	//	Function: out = in
	//
	Buffer = New("BUFFER", 1, 1, func(in, out []bool) { out[0] = in[0] })

	// Not is a NOT gate.
	//
	//	Inputs: in
	//	Outputs: out
	//	Function: out = !in
	//
	Not = New("NOT", 1, 1, func(in, out []bool) { out[0] = !in[0] })

	// And is a AND gate.
	//
	//	Inputs: a, b
	//	Outputs: out
	//	Function: out = a && b
	//
	And = gate("AND", func(a, b bool) bool { return a && b })

	// Nand is a NAND gate.
	//
	//	Inputs: a, b
	//	Outputs: out
	//	Function: out = !(a && b)
	//
	Nand = gate("NAND", func(a, b bool) bool { return !(a && b) })

	// Or is a OR gate.
	//
	//	Inputs: a, b
	//	Outputs: out
	//	Function: out = a || b
	//
	Or = gate("OR", func(a, b bool) bool { return a || b })

	// Nor is a NOR gate.
	//
	//	Inputs: a, b
	//	Outputs: out
	//	Function: out = !(a || b)
	//
	Nor = gate("NOR", func(a, b bool) bool { return !(a || b) })

	// Xor is a XOR gate.
	//
	//	Inputs: a, b
	//	Outputs: out
	//	Function: out = (a && !b) || (!a && b)
	//
	Xor = gate("XOR", func(a, b bool) bool { return a && !b || !a && b })

	// Xnor is a XNOR gate.
	//
	//	Inputs: a, b
	//	Outputs: out
	//	Function: out = a && b || !a && !b
	//
	Xnor = gate("XNOR", func(a, b bool) bool { return a && b || !a && !b })
)

// BufferN returns a N-bits buffer.
//
//	Inputs: in[bits]
//	Outputs: out[bits]
//	Function: out = in
//
func BufferN(bits int) *Op {
	return New("BUFFER"+strconv.Itoa(bits), bits, bits, func(in, out []bool) { copy(out, in) })
}

// NotN returns a N-bits NOT gate.
//
//	Inputs: in[bits]
//	Outputs: out[bits]
//	Function: for i := range out { out[i] = !in[i] }
//
func NotN(bits int) *Op {
	return New("NOT"+strconv.Itoa(bits), bits, bits, func(in, out []bool) {
		for i, v := range in {
			out[i] = !v
		}
	})
}

// GateN returns a N-bits logic gate.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: for i := range out { out[i] = f(a[i], b[i]) }
//
func GateN(name string, bits int, f func(a, b bool) bool) *Op {
	return New(name+strconv.Itoa(bits), 2*bits, bits, func(in, out []bool) {
		a, b := in[:bits], in[bits:]
		for i := range out {
			out[i] = f(a[i], b[i])
		}
	})
}

// AndNWay returns a N-Way AND gate.
//
//	Inputs: in[n]
//	Outputs: out
//	Function: out = in[0] && in[1] && in[2] && ... && in[n-1]
//
func AndNWay(ways int) *Op {
	return New("AND"+strconv.Itoa(ways)+"Way", ways, 1, func(in, out []bool) {
		for _, v := range in {
			if !v {
				return
			}
		}
		out[0] = true
	})
}

// NandNWay returns a N-Way NAND gate.
//
func NandNWay(ways int) *Op {
	and := AndNWay(ways)
	return New("NAND"+strconv.Itoa(ways)+"Way", ways, 1, func(in, out []bool) {
		and.fn(in, out)
		out[0] = !out[0]
	})
}

// OrNWay returns a N-Way OR gate.
//
//	Inputs: in[n]
//	Outputs: out
//	Function: out = in[0] || in[1] || in[2] || ... || in[n-1]
//
func OrNWay(ways int) *Op {
	return New("OR"+strconv.Itoa(ways)+"Way", ways, 1, func(in, out []bool) {
		for _, v := range in {
			if v {
				out[0] = true
				return
			}
		}
	})
}

// NorNWay returns a N-Way NOR gate.
//
func NorNWay(ways int) *Op {
	or := OrNWay(ways)
	return New("NOR"+strconv.Itoa(ways)+"Way", ways, 1, func(in, out []bool) {
		or.fn(in, out)
		out[0] = !out[0]
	})
}

// XorNWay returns a N-Way XOR gate, a parity generator.
//
//	Inputs: in[n]
//	Outputs: out
//	Function: out is true if an odd number of inputs are true
//
func XorNWay(ways int) *Op {
	return New("XOR"+strconv.Itoa(ways)+"Way", ways, 1, func(in, out []bool) {
		for _, v := range in {
			out[0] = out[0] != v
		}
	})
}
