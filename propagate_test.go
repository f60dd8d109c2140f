// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blocksim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bs "github.com/db47h/blocksim"
	"github.com/db47h/blocksim/circuit"
	"github.com/db47h/blocksim/signal"
)

func value(t *testing.T, g *bs.Graph, root bs.BlockRef, role bs.Role, id int) signal.Value {
	t.Helper()
	c, ok := g.Lookup(root, role, id)
	require.True(t, ok, "%s %d", role, id)
	v, _ := g.Value(c)
	return v
}

func Test_Tick_passthrough(t *testing.T) {
	g := bs.NewGraph()
	r := g.Load(readDef(t, "passthrough.json"))
	assert.Equal(t, "0000", value(t, g, r.Root, bs.Output, 1).String())
	g.Tick()
	assert.Equal(t, "0101", value(t, g, r.Root, bs.Output, 1).String())
	assert.Equal(t, signal.NewHalfByte(true, false, true, false), value(t, g, r.Root, bs.Output, 1))
	// inputs are never written
	assert.Equal(t, signal.NewHalfByte(true, false, true, false), value(t, g, r.Root, bs.Input, 0))
}

func Test_Tick_merge(t *testing.T) {
	td := []struct {
		name   string
		inputs []signal.Value
		out    signal.Value
	}{
		{"none", nil, signal.NewSingle(false)},
		{"single", []signal.Value{signal.NewSingle(true)}, signal.NewSingle(true)},
		{"or", []signal.Value{signal.NewByte(0x0f), signal.NewByte(0x30)}, signal.NewByte(0x3f)},
		{"widest", []signal.Value{signal.NewSingle(true), signal.NewX16(0x8000), signal.NewByte(2)}, signal.NewX16(0x8003)},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			def := &circuit.Definition{ID: 1, Outputs: []circuit.Connection{{ID: 100, Value: signal.NewX64(42)}}}
			var eps []circuit.Endpoint
			for i, v := range d.inputs {
				def.Inputs = append(def.Inputs, circuit.Connection{ID: i, Value: v})
				eps = append(eps, circuit.Endpoint{ParentBlock: 1, ID: i})
			}
			eps = append(eps, circuit.Endpoint{ParentBlock: 1, ID: 100})
			def.Wires = []circuit.Wire{{Connections: eps}}

			g := bs.NewGraph()
			r := g.Load(def)
			require.Empty(t, r.Warnings)
			g.Tick()
			assert.Equal(t, d.out, value(t, g, r.Root, bs.Output, 100))
		})
	}
}

func Test_Tick_fanout(t *testing.T) {
	def := &circuit.Definition{
		ID:     1,
		Inputs: []circuit.Connection{{ID: 0, Value: signal.NewX32(0xdeadbeef)}},
		Outputs: []circuit.Connection{
			{ID: 1, Value: signal.NewSingle(true)},
			{ID: 2, Value: signal.Zero(signal.X256)},
		},
		Wires: []circuit.Wire{{Connections: []circuit.Endpoint{{ParentBlock: 1, ID: 1}, {ParentBlock: 1, ID: 0}, {ParentBlock: 1, ID: 2}}}},
	}
	g := bs.NewGraph()
	r := g.Load(def)
	g.Tick()
	for _, id := range []int{1, 2} {
		assert.Equal(t, signal.NewX32(0xdeadbeef), value(t, g, r.Root, bs.Output, id))
	}
}

// a connection driven by two wires ends with the value of one of them.
func Test_Tick_conflict(t *testing.T) {
	def := &circuit.Definition{
		ID: 1,
		Inputs: []circuit.Connection{
			{ID: 0, Value: signal.NewByte(1)},
			{ID: 1, Value: signal.NewByte(2)},
		},
		Outputs: []circuit.Connection{{ID: 2}},
		Wires: []circuit.Wire{
			{Connections: []circuit.Endpoint{{ParentBlock: 1, ID: 0}, {ParentBlock: 1, ID: 2}}},
			{Connections: []circuit.Endpoint{{ParentBlock: 1, ID: 1}, {ParentBlock: 1, ID: 2}}},
		},
	}
	g := bs.NewGraph()
	r := g.Load(def)
	for i := 0; i < 3; i++ {
		g.Tick()
		assert.Contains(t, []signal.Value{signal.NewByte(1), signal.NewByte(2)}, value(t, g, r.Root, bs.Output, 2))
	}
}

func Test_Tick_nested(t *testing.T) {
	g := bs.NewGraph()
	r := g.Load(readDef(t, "nested.toml"))
	top, _ := g.Block(r.Root)
	child := top.Children[0]

	g.Tick()
	// the second wire lost its only input at instantiation. Depending on
	// which wire runs last, the output holds 0x85 | 1 or the merge seed.
	out := value(t, g, r.Root, bs.Output, 2)
	assert.Contains(t, []signal.Value{signal.NewByte(0x85), signal.NewSingle(false)}, out)

	// the inner block has no wire: its values never change
	assert.Equal(t, signal.NewSingle(false), value(t, g, child, bs.Output, 1))
	assert.Equal(t, signal.NewSingle(true), value(t, g, child, bs.Output, 2))
}

func Benchmark_Tick(b *testing.B) {
	def := &circuit.Definition{ID: 1}
	for i := 0; i < 256; i++ {
		def.Inputs = append(def.Inputs, circuit.Connection{ID: 2 * i, Value: signal.NewX64(uint64(i))})
		def.Outputs = append(def.Outputs, circuit.Connection{ID: 2*i + 1})
		def.Wires = append(def.Wires, circuit.Wire{Connections: []circuit.Endpoint{{ParentBlock: 1, ID: 2 * i}, {ParentBlock: 1, ID: 2*i + 1}}})
	}
	g := bs.NewGraph()
	g.Load(def)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Tick()
	}
}
