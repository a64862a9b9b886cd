// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"unicode"

	"github.com/pkg/errors"
)

// Slots parses a slot pattern and returns the corresponding slot flags for
// a GateSpec. Each 'd' (or 'D') stands for a direct slot, each 'i' (or 'I')
// for an indirect slot. White space is ignored. For example:
//
//	Slots("d i i") // returns []bool{true, false, false}
//
func Slots(pattern string) ([]bool, error) {
	var out []bool
	for pos, r := range pattern {
		switch {
		case r == 'd' || r == 'D':
			out = append(out, true)
		case r == 'i' || r == 'I':
			out = append(out, false)
		case unicode.IsSpace(r):
		default:
			return nil, errors.Errorf("in %q at pos %d: expected 'd' or 'i'", pattern, pos+1)
		}
	}
	if len(out) == 0 {
		return nil, errors.Errorf("empty slot pattern %q", pattern)
	}
	return out, nil
}

// MustSlots is like Slots but panics on error.
//
func MustSlots(pattern string) []bool {
	s, err := Slots(pattern)
	if err != nil {
		panic(err)
	}
	return s
}

// Direct returns n direct slots.
//
func Direct(n int) []bool {
	s := make([]bool, n)
	for i := range s {
		s[i] = true
	}
	return s
}

// Indirect returns n indirect slots.
//
func Indirect(n int) []bool {
	return make([]bool, n)
}
