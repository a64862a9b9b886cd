// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import (
	"sort"
	"strconv"
	"strings"
)

var fixed = map[string]*Op{
	"buffer":    Buffer,
	"not":       Not,
	"and":       And,
	"nand":      Nand,
	"or":        Or,
	"nor":       Nor,
	"xor":       Xor,
	"xnor":      Xnor,
	"halfadder": HalfAdder,
	"fulladder": FullAdder,
	"mux":       Mux,
	"dmux":      DMux,
}

var sized = map[string]func(n int) *Op{
	"buffer": BufferN,
	"and":    AndNWay,
	"nand":   NandNWay,
	"or":     OrNWay,
	"nor":    NorNWay,
	"xor":    XorNWay,
	"not":    NotN,
	"adder":  AdderN,
	"mux":    MuxN,
	"dmux":   DMuxN,
}

// maxSize bounds the numeric suffix accepted by Lookup.
const maxSize = 64

// Lookup returns the operation with the given case insensitive name.
//
// Names are the base names of the operations in this package ("and", "xor",
// "halfadder", "mux", ...). A numeric suffix selects the N-way variant of a
// basic gate ("and3" is AndNWay(3)), a N-bits buffer ("buffer8") or NOT
// gate ("not16"), adder ("adder4") or (de)multiplexer ("mux8").
//
func Lookup(name string) (*Op, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if op, ok := fixed[name]; ok {
		return op, true
	}
	i := len(name)
	for i > 0 && '0' <= name[i-1] && name[i-1] <= '9' {
		i--
	}
	if i == 0 || i == len(name) {
		return nil, false
	}
	n, err := strconv.Atoi(name[i:])
	if err != nil || n < 1 || n > maxSize {
		return nil, false
	}
	f, ok := sized[name[:i]]
	if !ok {
		return nil, false
	}
	return f(n), true
}

// Names returns the base names known to Lookup.
//
func Names() []string {
	var ns []string
	for k := range fixed {
		ns = append(ns, k)
	}
	for k := range sized {
		ns = append(ns, k+"N")
	}
	sort.Strings(ns)
	return ns
}
