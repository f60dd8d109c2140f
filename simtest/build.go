// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package simtest

import (
	"github.com/db47h/blocksim/circuit"
	"github.com/db47h/blocksim/signal"
)

// Builder builds circuit definitions in tests:
//
//	def := simtest.NewBuilder(1, "PASS").
//		In(0, signal.NewByte(5)).
//		Out(1, signal.Zero(signal.Byte)).
//		Wire(0, 1).
//		Def()
//
type Builder struct {
	d circuit.Definition
}

// NewBuilder returns a builder for block id.
//
func NewBuilder(id int, name string) *Builder {
	return &Builder{circuit.Definition{ID: id, Name: name}}
}

// In declares an input.
func (b *Builder) In(id int, v signal.Value) *Builder {
	b.d.Inputs = append(b.d.Inputs, circuit.Connection{ID: id, Value: v})
	return b
}

// Out declares an output.
func (b *Builder) Out(id int, v signal.Value) *Builder {
	b.d.Outputs = append(b.d.Outputs, circuit.Connection{ID: id, Value: v})
	return b
}

// Wire declares a wire joining connections of the block being built.
func (b *Builder) Wire(ids ...int) *Builder {
	w := circuit.Wire{Connections: make([]circuit.Endpoint, len(ids))}
	for i, id := range ids {
		w.Connections[i] = circuit.Endpoint{ParentBlock: b.d.ID, ID: id}
	}
	b.d.Wires = append(b.d.Wires, w)
	return b
}

// WireTo declares a wire with explicit endpoints, possibly outside of the
// block being built.
func (b *Builder) WireTo(eps ...circuit.Endpoint) *Builder {
	b.d.Wires = append(b.d.Wires, circuit.Wire{Connections: eps})
	return b
}

// Inner adds a copy of def as a nested block.
func (b *Builder) Inner(def *circuit.Definition) *Builder {
	b.d.InnerBlocks = append(b.d.InnerBlocks, *def)
	return b
}

// Def returns the definition built so far. Later calls to the builder do not
// affect it.
//
func (b *Builder) Def() *circuit.Definition {
	d := b.d
	d.Inputs = append([]circuit.Connection(nil), d.Inputs...)
	d.Outputs = append([]circuit.Connection(nil), d.Outputs...)
	d.Wires = append([]circuit.Wire(nil), d.Wires...)
	d.InnerBlocks = append([]circuit.Definition(nil), d.InnerBlocks...)
	return &d
}
