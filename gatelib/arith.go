// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import (
	"strconv"
)

// HalfAdder is a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
var HalfAdder = New("HalfAdder", 2, 2, func(in, out []bool) {
	a, b := in[0], in[1]
	out[0] = a && !b || !a && b
	out[1] = a && b
})

// FullAdder is a full adder.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
var FullAdder = New("FullAdder", 3, 2, func(in, out []bool) {
	a, b, cin := in[0], in[1], in[2]
	s := a && !b || !a && b
	out[0] = s && !cin || !s && cin
	out[1] = s && cin || a && b
})

// AdderN returns a N-bits adder.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits], c
//
func AdderN(bits int) *Op {
	return New("Adder"+strconv.Itoa(bits), 2*bits, bits+1, func(in, out []bool) {
		a, b := in[:bits], in[bits:]
		cc := false
		for i := 0; i < bits; i++ {
			va, vb := a[i], b[i]
			s0 := va && !vb || !va && vb
			out[i] = !s0 && cc || s0 && !cc
			cc = va && vb || s0 && cc
		}
		out[bits] = cc
	})
}
