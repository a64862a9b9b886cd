// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command logicsim loads a YAML netlist and simulates it.
//
// Usage:
//
//	logicsim -f adder.yaml -in 0110
//	logicsim -f adder.yaml -table
//	logicsim -f adder.yaml -dot | dot -Tsvg > adder.svg
//
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/gatelib"
	"github.com/db47h/logicsim/netlist"
	"github.com/pkg/errors"
)

func main() {
	var (
		file    = flag.String("f", "", "netlist file")
		inputs  = flag.String("in", "", "input vector, e.g. 0110")
		table   = flag.Bool("table", false, "print the truth table")
		dot     = flag.Bool("dot", false, "write the graph in Graphviz DOT format, after pulsing -in if set")
		verbose = flag.Bool("v", false, "log propagation to stderr")
		ops     = flag.Bool("ops", false, "list available gate operations")
	)
	flag.Parse()

	if *ops {
		for _, n := range gatelib.Names() {
			fmt.Println(n)
		}
		return
	}
	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}
	var log *slog.Logger
	if *verbose {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if err := run(os.Stdout, log, *file, *inputs, *table, *dot); err != nil {
		fmt.Fprintf(os.Stderr, "logicsim: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, log *slog.Logger, file, inputs string, table, dot bool) error {
	n, err := netlist.Load(file)
	if err != nil {
		return err
	}
	d, err := n.BuildWithLogger(log)
	if err != nil {
		return errors.Wrap(err, file)
	}
	c := d.Circuit

	if inputs != "" {
		in, err := parseBits(inputs)
		if err != nil {
			return err
		}
		out, err := c.Pulse(in)
		if err != nil {
			return err
		}
		if !dot {
			fmt.Fprintln(w, bitString(out))
		}
	}
	switch {
	case dot:
		return d.Graph().WriteDot(w)
	case table:
		tt, err := c.TruthTable()
		if err != nil {
			return err
		}
		for i, row := range tt {
			fmt.Fprintf(w, "%s | %s\n", bitString(logicsim.InputVector(c.DirectInputs(), i)), bitString(row))
		}
	case inputs == "":
		fmt.Fprintf(w, "%s: %d inputs, %d outputs, %d gates\n", d.Name, c.DirectInputs(), c.TotalOutputs(), d.Graph().Len())
	}
	return nil
}

func parseBits(s string) ([]bool, error) {
	s = strings.Map(func(r rune) rune {
		if r == '_' || r == ' ' {
			return -1
		}
		return r
	}, s)
	bits := make([]bool, len(s))
	for i, r := range s {
		switch r {
		case '0':
		case '1':
			bits[i] = true
		default:
			return nil, errors.Errorf("invalid bit %q in input vector", r)
		}
	}
	return bits, nil
}

func bitString(bits []bool) string {
	var b strings.Builder
	for _, v := range bits {
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
