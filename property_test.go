package logicsim_test

import (
	"reflect"
	"testing"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/gatelib"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var identity = logicsim.OperationFunc(func(in []bool) []bool { return append([]bool(nil), in...) })

// rippleAdder builds a bits wide ripple carry adder from a half adder and
// full adders. Inputs are a[bits], b[bits]; outputs are out[bits], carry.
func rippleAdder(t *testing.T, bits int) *logicsim.Circuit {
	t.Helper()
	g := logicsim.NewGraph()
	a := mustAdd(t, g, bits, logicsim.Direct(bits), identity)
	b := mustAdd(t, g, bits, logicsim.Direct(bits), identity)
	adders := make([]logicsim.GateID, bits)
	adders[0] = mustAdd(t, g, 2, logicsim.Indirect(2), gatelib.HalfAdder, logicsim.From(a, 0), logicsim.From(b, 0))
	for i := 1; i < bits; i++ {
		adders[i] = mustAdd(t, g, 2, logicsim.Indirect(3), gatelib.FullAdder,
			logicsim.From(a, i), logicsim.From(b, i), logicsim.From(adders[i-1], 1))
	}
	var links []logicsim.Link
	for _, ad := range adders {
		links = append(links, logicsim.From(ad, 0))
	}
	links = append(links, logicsim.From(adders[bits-1], 1))
	out := mustAdd(t, g, bits+1, logicsim.Indirect(bits+1), identity, links...)
	if err := g.Validate(); err != nil {
		t.Fatal(err)
	}
	c, err := logicsim.NewCircuit(g, []logicsim.GateID{a, b}, []logicsim.GateID{out})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRippleAdder_property(t *testing.T) {
	const bits = 8
	c := rippleAdder(t, bits)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("circuit output equals a + b", prop.ForAll(
		func(a, b uint64) bool {
			in := append(gatelib.Bits(a, bits), gatelib.Bits(b, bits)...)
			out, err := c.Pulse(in)
			if err != nil {
				return false
			}
			return gatelib.Uint64(out) == a+b
		},
		gen.UInt64Range(0, 1<<bits-1),
		gen.UInt64Range(0, 1<<bits-1),
	))

	properties.TestingRun(t)
}

func TestTwoLayerAnd_property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("B = AND(AND(a0, a1), d)", prop.ForAll(
		func(a0, a1, d bool) bool {
			g := logicsim.NewGraph()
			a, err := g.AddGate(1, logicsim.Direct(2), and)
			if err != nil {
				return false
			}
			b, err := g.AddGate(1, logicsim.MustSlots("di"), and, logicsim.From(a, 0))
			if err != nil {
				return false
			}
			// not ready before a is pulsed
			if st, err := g.Pulse(b, []bool{d}); err != nil || st != logicsim.NotReady {
				return false
			}
			if st, err := g.Pulse(a, []bool{a0, a1}); err != nil || st != logicsim.Success {
				return false
			}
			if st, err := g.Pulse(b, []bool{d}); err != nil || st != logicsim.Success {
				return false
			}
			valid, out := g.CheckPulse(b)
			return valid && reflect.DeepEqual(out, []bool{a0 && a1 && d})
		},
		gen.Bool(), gen.Bool(), gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestCheckPulse_property(t *testing.T) {
	c := rippleAdder(t, 4)
	g := c.Graph()

	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("CheckPulse is idempotent and caches stay valid", prop.ForAll(
		func(in []bool) bool {
			if _, err := c.Pulse(in); err != nil {
				return false
			}
			for id := logicsim.GateID(0); int(id) < g.Len(); id++ {
				v1, o1 := g.CheckPulse(id)
				v2, o2 := g.CheckPulse(id)
				if !v1 || v1 != v2 || !reflect.DeepEqual(o1, o2) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(8, gen.Bool()),
	))

	properties.TestingRun(t)
}
