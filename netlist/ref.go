// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"strconv"
	"strings"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// a ref is a reference to outputs first through last of a named gate.
// all selects every output.
type ref struct {
	gate        string
	first, last int
	all         bool
}

// outputs expands r for a source gate with n outputs.
func (r ref) outputs(n int) ([]int, error) {
	first, last := r.first, r.last
	if r.all {
		first, last = 0, n-1
	}
	if first < 0 || last >= n {
		return nil, errors.Wrapf(logicsim.ErrLinkIndexOutOfRange, "outputs %d..%d of %q (%d outputs)", first, last, r.gate, n)
	}
	outs := make([]int, 0, last-first+1)
	for i := first; i <= last; i++ {
		outs = append(outs, i)
	}
	return outs, nil
}

// parseRef parses source references like "g", "g[1]" or "g[0..3]".
//
func parseRef(s string) (ref, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexRune(s, '[')
	if i < 0 {
		if s == "" {
			return ref{}, errors.New("empty source reference")
		}
		return ref{gate: s, all: true}, nil
	}
	name := strings.TrimSpace(s[:i])
	if name == "" {
		return ref{}, errors.Errorf("empty gate name in %q", s)
	}
	n := s[i+1:]
	j := strings.IndexRune(n, ']')
	if j < 0 {
		return ref{}, errors.Errorf("no terminating ] in %q", s)
	}
	if strings.TrimSpace(n[j+1:]) != "" {
		return ref{}, errors.Errorf("unexpected %q after ] in %q", n[j+1:], s)
	}
	n = n[:j]
	k := strings.Index(n, "..")
	if k < 0 {
		idx, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return ref{}, errors.Wrapf(err, "bad output index in %q", s)
		}
		return ref{gate: name, first: idx, last: idx}, nil
	}
	first, err := strconv.Atoi(strings.TrimSpace(n[:k]))
	if err != nil {
		return ref{}, errors.Wrapf(err, "bad range start in %q", s)
	}
	last, err := strconv.Atoi(strings.TrimSpace(n[k+2:]))
	if err != nil {
		return ref{}, errors.Wrapf(err, "bad range end in %q", s)
	}
	if last < first {
		return ref{}, errors.Errorf("empty range in %q", s)
	}
	return ref{gate: name, first: first, last: last}, nil
}
