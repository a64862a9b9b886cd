package netlist

import (
	"testing"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRef(t *testing.T) {
	td := []struct {
		in   string
		want ref
		ok   bool
	}{
		{"a", ref{gate: "a", all: true}, true},
		{" a ", ref{gate: "a", all: true}, true},
		{"a[2]", ref{gate: "a", first: 2, last: 2}, true},
		{"a[ 1 .. 3 ]", ref{gate: "a", first: 1, last: 3}, true},
		{"a[0..0]", ref{gate: "a"}, true},
		{"a[0..2147483647]", ref{gate: "a", last: 2147483647}, true},
		{"", ref{}, false},
		{"[1]", ref{}, false},
		{"a[1", ref{}, false},
		{"a[x]", ref{}, false},
		{"a[1]b", ref{}, false},
		{"a[3..1]", ref{}, false},
		{"a[..1]", ref{}, false},
		{"a[1..]", ref{}, false},
	}
	for _, tc := range td {
		r, err := parseRef(tc.in)
		if !tc.ok {
			assert.Error(t, err, "%q", tc.in)
			continue
		}
		if assert.NoError(t, err, "%q", tc.in) {
			assert.Equal(t, tc.want, r, "%q", tc.in)
		}
	}
}

func TestRef_outputs(t *testing.T) {
	td := []struct {
		in   string
		n    int
		want []int
	}{
		{"a", 3, []int{0, 1, 2}},
		{"a[1]", 3, []int{1}},
		{"a[1..2]", 3, []int{1, 2}},
		{"a[3]", 3, nil},
		{"a[-1]", 3, nil},
		{"a[0..50000000]", 3, nil},
		{"a[0..2147483647]", 64, nil},
	}
	for _, tc := range td {
		r, err := parseRef(tc.in)
		require.NoError(t, err, "%q", tc.in)
		outs, err := r.outputs(tc.n)
		if tc.want == nil {
			assert.True(t, errors.Is(err, logicsim.ErrLinkIndexOutOfRange), "%q: got %v", tc.in, err)
			assert.Nil(t, outs)
			continue
		}
		require.NoError(t, err, "%q", tc.in)
		assert.Equal(t, tc.want, outs, "%q", tc.in)
	}
}
