// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package blocklib provides ready-made circuit definitions for blocksim.
//
// Connection ids follow a common pattern: inputs are numbered from 0, outputs
// follow the last input.
//
package blocklib

import (
	"strconv"

	"github.com/db47h/blocksim/circuit"
	"github.com/db47h/blocksim/signal"
)

var (
	red   = circuit.Color{1, 0, 0, 1}
	green = circuit.Color{0, 1, 0, 1}
	blue  = circuit.Color{0, 0, 1, 1}
)

// default block size
var size = [2]float64{50, 40}

func conns(first int, vs ...signal.Value) []circuit.Connection {
	cs := make([]circuit.Connection, len(vs))
	for i, v := range vs {
		cs[i] = circuit.Connection{ID: first + i, Value: v}
	}
	return cs
}

// wire joins connections ids of block id.
func wire(id int, ids ...int) circuit.Wire {
	eps := make([]circuit.Endpoint, len(ids))
	for i, c := range ids {
		eps[i] = circuit.Endpoint{ParentBlock: id, ID: c}
	}
	return circuit.Wire{Connections: eps}
}

func zeros(k signal.Kind, n int) []signal.Value {
	vs := make([]signal.Value, n)
	for i := range vs {
		vs[i] = signal.Zero(k)
	}
	return vs
}

// And returns the demo block: a red 50x40 box labelled AND, with a single two
// bit input carried by a HalfByte, and two Single outputs. It has no wires:
// its outputs keep their initial values.
//
//	Inputs: 0 = 0100
//	Outputs: 1 = 0, 2 = 1
//
func And(id int) *circuit.Definition {
	return &circuit.Definition{
		ID:      id,
		Name:    "AND",
		Size:    size,
		Color:   red,
		Inputs:  conns(0, signal.NewHalfByte(false, true, false, false)),
		Outputs: conns(1, signal.NewSingle(false), signal.NewSingle(true)),
	}
}

// Passthrough returns a block copying its input to its output.
//
//	Inputs: 0
//	Outputs: 1
//	Function: 1 = 0
//
func Passthrough(id int, k signal.Kind) *circuit.Definition {
	return &circuit.Definition{
		ID:      id,
		Name:    "PASS" + strconv.Itoa(k.Width()),
		Size:    size,
		Color:   green,
		Inputs:  conns(0, signal.Zero(k)),
		Outputs: conns(1, signal.Zero(k)),
		Wires:   []circuit.Wire{wire(id, 0, 1)},
	}
}

// Fanout returns a block copying its input to n outputs through a single
// wire.
//
//	Inputs: 0
//	Outputs: 1..n
//	Function: i = 0
//
func Fanout(id int, k signal.Kind, n int) *circuit.Definition {
	ids := make([]int, n+1)
	for i := range ids {
		ids[i] = i
	}
	return &circuit.Definition{
		ID:      id,
		Name:    "FANOUT" + strconv.Itoa(n),
		Size:    size,
		Color:   blue,
		Inputs:  conns(0, signal.Zero(k)),
		Outputs: conns(1, zeros(k, n)...),
		Wires:   []circuit.Wire{wire(id, ids...)},
	}
}

// Or returns a block merging n inputs into one output.
//
//	Inputs: 0..n-1
//	Outputs: n
//	Function: n = 0 | 1 | ... | n-1
//
func Or(id int, k signal.Kind, n int) *circuit.Definition {
	ids := make([]int, n+1)
	for i := range ids {
		ids[i] = i
	}
	return &circuit.Definition{
		ID:      id,
		Name:    "OR" + strconv.Itoa(n),
		Size:    size,
		Color:   red,
		Inputs:  conns(0, zeros(k, n)...),
		Outputs: conns(n, signal.Zero(k)),
		Wires:   []circuit.Wire{wire(id, ids...)},
	}
}

// Group returns a block with no connection of its own, containing copies of
// the given definitions.
//
func Group(id int, name string, blocks ...*circuit.Definition) *circuit.Definition {
	d := &circuit.Definition{ID: id, Name: name, Color: circuit.Color{1, 1, 1, 1}}
	for _, b := range blocks {
		d.InnerBlocks = append(d.InnerBlocks, *b)
	}
	return d
}
