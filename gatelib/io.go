// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

// Uint64 returns the bits as an uint64. Bit 0 is lsb.
//
func Uint64(bits []bool) uint64 {
	var out uint64
	for bit, v := range bits {
		if v {
			out |= 1 << uint(bit)
		}
	}
	return out
}

// Bits returns the n low order bits of v. Bit 0 is lsb.
//
func Bits(v uint64, n int) []bool {
	out := make([]bool, n)
	for bit := range out {
		out[bit] = v&(1<<uint(bit)) != 0
	}
	return out
}
