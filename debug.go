// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String returns a short description of the gate for debugging.
//
func (g *Gate) String() string {
	var b strings.Builder
	b.WriteString("G(")
	b.WriteString(g.label())
	if n := opName(g.op); n != "" {
		b.WriteByte(' ')
		b.WriteString(n)
	}
	fmt.Fprintf(&b, ": %d totalInputs, %d directInputs, %d totalOutputs, %d links, %d outbound, valid=%v)",
		len(g.slots), g.direct, g.nOut, len(g.links), len(g.outs), g.valid)
	return b.String()
}

// WriteDot writes a Graphviz dot description of the graph to w. Gates with a
// valid cache are filled; edges are labelled with the source output
// indices.
//
//	dot -Tpng g.dot > g.png
//
func (gr *Graph) WriteDot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph G {\n")
	fmt.Fprintf(bw, "  graph [ordering=out,rankdir=LR]\n  node [shape=\"record\" style=\"rounded\"]\n")
	for _, g := range gr.gates {
		label := g.label()
		if n := opName(g.op); n != "" {
			label += "|" + n
		}
		if g.valid {
			label += "|" + bits(g.cache)
		}
		style := ""
		if g.valid {
			style = `,style="rounded,filled",fillcolor="#d0f0d0"`
		}
		fmt.Fprintf(bw, "  n%d [label=%q%s]\n", g.id, "{"+label+"}", style)
	}
	for _, g := range gr.gates {
		for _, l := range g.links {
			idx := make([]string, len(l.Outputs))
			for i, o := range l.Outputs {
				idx[i] = strconv.Itoa(o)
			}
			fmt.Fprintf(bw, "  n%d -> n%d [label=%q]\n", l.Source, g.id, strings.Join(idx, ","))
		}
	}
	fmt.Fprintf(bw, "}\n")
	return bw.Flush()
}

func bits(v []bool) string {
	var b strings.Builder
	for _, x := range v {
		if x {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
