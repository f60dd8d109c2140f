// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package circuit provides the declarative description of a circuit block as
found in circuit files, and decoders for the JSON, TOML and CBOR encodings of
these files.

A Definition describes a block: its input and output connections with their
initial values, nested blocks, and the wires declared at its own level. Wires
reference connections by (parent_block, id) pairs; nothing is resolved here.
A JSON definition looks like this:

	{
	  "id": 1, "name": "AND", "pos": [0, 0], "size": [50, 40],
	  "color": [1, 0, 0],
	  "inputs":  [{"id": 0, "value": {"HalfByte": [true, false, true, false]}}],
	  "outputs": [{"id": 1, "value": {"HalfByte": [false, false, false, false]}}],
	  "wires":   [{"connections": [{"parent_block": 1, "id": 0}, {"parent_block": 1, "id": 1}]}],
	  "inner_blocks": []
	}
*/
package circuit

import (
	"github.com/db47h/blocksim/signal"
)

// Definition is the description of a block.
//
type Definition struct {
	ID          int          `json:"id" toml:"id" cbor:"id"`
	Name        string       `json:"name" toml:"name" cbor:"name"`
	Pos         [2]float64   `json:"pos" toml:"pos" cbor:"pos"`
	Size        [2]float64   `json:"size" toml:"size" cbor:"size"`
	Color       Color        `json:"color" toml:"color" cbor:"color"`
	InnerBlocks []Definition `json:"inner_blocks" toml:"inner_blocks" cbor:"inner_blocks"`
	Wires       []Wire       `json:"wires" toml:"wires" cbor:"wires"`
	Inputs      []Connection `json:"inputs" toml:"inputs" cbor:"inputs"`
	Outputs     []Connection `json:"outputs" toml:"outputs" cbor:"outputs"`
}

// Connection declares a connection and its initial value. ID is local to the
// declaring block.
//
type Connection struct {
	ID    int          `json:"id" toml:"id" cbor:"id"`
	Value signal.Value `json:"value" toml:"value" cbor:"value"`
}

// Wire lists the connections joined by a wire.
//
type Wire struct {
	Connections []Endpoint `json:"connections" toml:"connections" cbor:"connections"`
}

// Endpoint references connection ID of block ParentBlock.
//
type Endpoint struct {
	ParentBlock int `json:"parent_block" toml:"parent_block" cbor:"parent_block"`
	ID          int `json:"id" toml:"id" cbor:"id"`
}

// Walk calls fn for d and every nested definition, depth first, parents
// before children. Walk stops early if fn returns false.
//
func (d *Definition) Walk(fn func(d *Definition, depth int) bool) {
	d.walk(fn, 0)
}

func (d *Definition) walk(fn func(*Definition, int) bool, depth int) bool {
	if !fn(d, depth) {
		return false
	}
	for i := range d.InnerBlocks {
		if !d.InnerBlocks[i].walk(fn, depth+1) {
			return false
		}
	}
	return true
}

// Counts returns the number of blocks, connections and wires that
// instantiating d would create.
//
func (d *Definition) Counts() (blocks, connections, wires int) {
	d.Walk(func(d *Definition, _ int) bool {
		blocks++
		connections += len(d.Inputs) + len(d.Outputs)
		wires += len(d.Wires)
		return true
	})
	return
}
