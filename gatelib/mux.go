// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import (
	"strconv"
)

// Mux is a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
var Mux = New("MUX", 3, 1, func(in, out []bool) {
	if in[2] {
		out[0] = in[1]
	} else {
		out[0] = in[0]
	}
})

// DMux is a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
var DMux = New("DMUX", 2, 2, func(in, out []bool) {
	if in[1] {
		out[1] = in[0]
	} else {
		out[0] = in[0]
	}
})

// MuxN returns a N-bits multiplexer.
//
//	Inputs: a[bits], b[bits], sel
//	Outputs: out[bits]
//	Function: if sel == 0 { out = a } else { out = b }
//
func MuxN(bits int) *Op {
	return New("MUX"+strconv.Itoa(bits), 2*bits+1, bits, func(in, out []bool) {
		if in[2*bits] {
			copy(out, in[bits:2*bits])
		} else {
			copy(out, in[:bits])
		}
	})
}

// DMuxN returns a N-bits demultiplexer.
//
//	Inputs: in[bits], sel
//	Outputs: a[bits], b[bits]
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMuxN(bits int) *Op {
	return New("DMUX"+strconv.Itoa(bits), bits+1, 2*bits, func(in, out []bool) {
		if in[bits] {
			copy(out[bits:], in[:bits])
		} else {
			copy(out[:bits], in[:bits])
		}
	})
}
