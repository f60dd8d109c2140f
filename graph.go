// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blocksim

import (
	"strconv"

	"github.com/db47h/blocksim/circuit"
	"github.com/db47h/blocksim/signal"
)

// Role tells whether a connection is read or driven by the wires it belongs
// to.
//
type Role uint8

// Connection roles.
//
const (
	Input  Role = iota // read by wires
	Output             // driven by wires
)

func (r Role) String() string {
	switch r {
	case Input:
		return "input"
	case Output:
		return "output"
	}
	return "Role(" + strconv.Itoa(int(r)) + ")"
}

// BlockRef, ConnID and WireID address records in a Graph. They remain valid
// until the block owning the record is removed.
type (
	BlockRef int
	ConnID   int
	WireID   int
)

// Connection is a signal endpoint owned by a block.
//
type Connection struct {
	Role    Role
	Value   signal.Value
	Owner   BlockRef
	LocalID int // id declared in the circuit definition
}

// Wire joins connections of a single block. It references connections, it
// does not own them.
//
type Wire struct {
	Owner   BlockRef
	Members []ConnID
}

// Placement holds the visual attributes of a block. They are passed through
// as found in the circuit definition.
//
type Placement struct {
	Pos   [2]float64
	Size  [2]float64
	Color circuit.Color
}

// Block is a live instance of a circuit definition.
//
type Block struct {
	ID        int
	Name      string
	Placement Placement
	Inputs    []ConnID
	Outputs   []ConnID
	Children  []BlockRef
	Wires     []WireID
}

// Graph is the runtime graph of blocks, connections and wires.
//
// A Graph is not safe for concurrent use. Within a simulation tick, Load
// calls, if any, must complete before Tick is called.
//
type Graph struct {
	blocks arena[Block]
	conns  arena[Connection]
	wires  arena[Wire]
	roots  []BlockRef
}

// NewGraph returns an empty graph.
//
func NewGraph() *Graph {
	return new(Graph)
}

// Roots returns the top level blocks in load order.
//
func (g *Graph) Roots() []BlockRef {
	return append([]BlockRef(nil), g.roots...)
}

// Root returns the top level block with the given id.
//
func (g *Graph) Root(id int) (BlockRef, bool) {
	i := g.rootIndex(id)
	if i < 0 {
		return 0, false
	}
	return g.roots[i], true
}

func (g *Graph) rootIndex(id int) int {
	for i, r := range g.roots {
		if g.blocks.items[r].ID == id {
			return i
		}
	}
	return -1
}

// Block returns a copy of the block ref. The slices of the returned Block
// must not be modified.
//
func (g *Graph) Block(ref BlockRef) (Block, bool) {
	b, ok := g.blocks.get(int(ref))
	if !ok {
		return Block{}, false
	}
	return *b, true
}

// Connection returns a copy of connection id.
//
func (g *Graph) Connection(id ConnID) (Connection, bool) {
	c, ok := g.conns.get(int(id))
	if !ok {
		return Connection{}, false
	}
	return *c, true
}

// Wire returns a copy of wire id. The Members slice must not be modified.
//
func (g *Graph) Wire(id WireID) (Wire, bool) {
	w, ok := g.wires.get(int(id))
	if !ok {
		return Wire{}, false
	}
	return *w, true
}

// Value returns the current value of connection id.
//
func (g *Graph) Value(id ConnID) (signal.Value, bool) {
	c, ok := g.conns.get(int(id))
	if !ok {
		return signal.Value{}, false
	}
	return c.Value, true
}

// SetValue replaces the value of connection id. It is meant for collaborators
// driving block inputs, like a user toggling a switch. It returns false if id
// does not exist. A value of another kind than the current one replaces it
// all the same, with a warning.
//
func (g *Graph) SetValue(id ConnID, v signal.Value) bool {
	c, ok := g.conns.get(int(id))
	if !ok {
		return false
	}
	if c.Value.Kind() != v.Kind() {
		log.Warning("connection kind changed",
			"connection", int(id),
			"block", g.blocks.items[c.Owner].ID,
			"id", c.LocalID,
			"from", c.Value.Kind().String(),
			"to", v.Kind().String())
	}
	c.Value = v
	return true
}

// Lookup returns the connection of block ref with the given role and declared
// id.
//
func (g *Graph) Lookup(ref BlockRef, role Role, localID int) (ConnID, bool) {
	b, ok := g.blocks.get(int(ref))
	if !ok {
		return 0, false
	}
	ids := b.Inputs
	if role == Output {
		ids = b.Outputs
	}
	for _, id := range ids {
		if g.conns.items[id].LocalID == localID {
			return id, true
		}
	}
	return 0, false
}

// Walk calls fn for every block, depth first, parents before children,
// starting from the top level blocks in load order. Walk stops if fn returns
// false. fn must not modify the graph.
//
func (g *Graph) Walk(fn func(ref BlockRef, b *Block, depth int) bool) {
	for _, r := range g.roots {
		if !g.walk(r, fn, 0) {
			return
		}
	}
}

func (g *Graph) walk(ref BlockRef, fn func(BlockRef, *Block, int) bool, depth int) bool {
	b := &g.blocks.items[ref]
	if !fn(ref, b, depth) {
		return false
	}
	for _, c := range b.Children {
		if !g.walk(c, fn, depth+1) {
			return false
		}
	}
	return true
}

// NumBlocks returns the number of live blocks.
//
func (g *Graph) NumBlocks() int { return g.blocks.len() }

// NumConnections returns the number of live connections.
//
func (g *Graph) NumConnections() int { return g.conns.len() }

// NumWires returns the number of live wires.
//
func (g *Graph) NumWires() int { return g.wires.len() }
