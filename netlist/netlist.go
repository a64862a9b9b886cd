// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netlist loads circuit descriptions written in YAML and builds
// them into logicsim graphs.
//
// A netlist lists named gates, each with an operation from the gatelib
// package (or a chip defined in the same file), a slot pattern and, for
// indirect slots, the outputs of other gates that feed them:
//
//	name: xor
//	gates:
//	  - {name: in, op: buffer2}
//	  - {name: nand, op: nand, from: ["in[0..1]"]}
//	  - {name: w0, op: nand, from: ["in[0]", nand]}
//	  - {name: w1, op: nand, from: ["in[1]", nand]}
//	  - {name: out, op: nand, from: [w0, w1]}
//	inputs: [in]
//	outputs: [out]
//
// A source reference is a gate name, optionally followed by an output index
// "g[2]" or an inclusive range "g[0..3]". A bare name selects all outputs of
// the gate, in order.
//
// Slots default to all direct when a gate has no sources, all indirect
// otherwise. Mixed patterns use the logicsim.Slots syntax ("did").
//
package netlist

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Netlist is a circuit description.
//
type Netlist struct {
	Name    string    `yaml:"name"`
	Gates   []GateDef `yaml:"gates"`
	Inputs  []string  `yaml:"inputs"`
	Outputs []string  `yaml:"outputs"`
	// Chips are sub-circuits that can be used as gate operations by name.
	Chips []*Netlist `yaml:"chips,omitempty"`
}

// GateDef describes a single gate.
//
type GateDef struct {
	Name string `yaml:"name"`
	// Op is the operation name. See gatelib.Lookup.
	Op string `yaml:"op"`
	// Slots is the slot pattern. Optional.
	Slots string `yaml:"slots,omitempty"`
	// From lists source references for indirect slots, in order.
	From []string `yaml:"from,omitempty"`
}

// Parse parses a YAML netlist. Unknown fields are errors.
//
func Parse(data []byte) (*Netlist, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a YAML netlist from r.
//
func Decode(r io.Reader) (*Netlist, error) {
	var n Netlist
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&n); err != nil {
		return nil, errors.Wrap(err, "parse netlist")
	}
	return &n, nil
}

// Load reads the netlist in the named file.
//
func Load(path string) (*Netlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load netlist")
	}
	n, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return n, nil
}

// Encode writes n as YAML to w.
//
func (n *Netlist) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return errors.Wrap(err, "encode netlist")
	}
	return enc.Close()
}
