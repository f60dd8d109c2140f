// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blocksim

import (
	"github.com/pkg/errors"

	"github.com/db47h/blocksim/circuit"
)

// Load instantiates def as a top level block.
//
// If a top level block with the same id already exists, it is removed
// together with all its descendants, connections and wires, and the new block
// takes its place in Roots. Nothing is carried over from the old block.
//
// Wire endpoints that cannot be resolved are dropped and reported in the
// returned Report. A wire may only join connections declared by the block
// declaring the wire.
//
func (g *Graph) Load(def *circuit.Definition) *Report {
	r := new(Report)
	r.Root = g.build(def, r)

	if i := g.rootIndex(def.ID); i >= 0 {
		g.remove(g.roots[i])
		g.roots[i] = r.Root
		r.Replaced = true
	} else {
		g.roots = append(g.roots, r.Root)
	}

	log.Info("circuit loaded",
		"id", def.ID,
		"name", def.Name,
		"replaced", r.Replaced,
		"warnings", len(r.Warnings))
	return r
}

func (g *Graph) build(def *circuit.Definition, r *Report) BlockRef {
	// allocate the block first so that connections can refer to it. Its
	// content is set last since building children may grow the arena.
	ref := BlockRef(g.blocks.alloc(Block{}))
	b := Block{
		ID:   def.ID,
		Name: def.Name,
		Placement: Placement{
			Pos:   def.Pos,
			Size:  def.Size,
			Color: def.Color,
		},
	}

	s := newSocket(def.ID, len(def.Inputs)+len(def.Outputs))
	b.Inputs = g.connect(def, ref, s, Input, def.Inputs, r)
	b.Outputs = g.connect(def, ref, s, Output, def.Outputs, r)

	for i := range def.InnerBlocks {
		b.Children = append(b.Children, g.build(&def.InnerBlocks[i], r))
	}

	for i := range def.Wires {
		b.Wires = append(b.Wires, g.link(def, ref, s, i, r))
	}

	g.blocks.items[ref] = b
	return ref
}

func (g *Graph) connect(def *circuit.Definition, ref BlockRef, s *socket, role Role, cs []circuit.Connection, r *Report) []ConnID {
	if len(cs) == 0 {
		return nil
	}
	ids := make([]ConnID, 0, len(cs))
	for _, c := range cs {
		id := ConnID(g.conns.alloc(Connection{Role: role, Value: c.Value, Owner: ref, LocalID: c.ID}))
		if !s.bind(c.ID, id) {
			r.warn(errors.Wrapf(ErrDuplicateConnection, "block %d (%s): %s %d", def.ID, def.Name, role, c.ID))
		}
		ids = append(ids, id)
	}
	return ids
}

func (g *Graph) link(def *circuit.Definition, ref BlockRef, s *socket, n int, r *Report) WireID {
	w := Wire{Owner: ref}
	for _, ep := range def.Wires[n].Connections {
		if ep.ParentBlock != s.block {
			// TODO: resolve endpoints of nested blocks once wires can cross
			// block boundaries.
			r.warn(errors.Wrapf(ErrOutOfScope, "block %d (%s): wire %d: endpoint %d.%d", def.ID, def.Name, n, ep.ParentBlock, ep.ID))
			continue
		}
		id, ok := s.conn(ep.ID)
		if !ok {
			r.warn(errors.Wrapf(ErrUnknownConnection, "block %d (%s): wire %d: endpoint %d.%d", def.ID, def.Name, n, ep.ParentBlock, ep.ID))
			continue
		}
		w.Members = append(w.Members, id)
	}
	return WireID(g.wires.alloc(w))
}

// remove releases block ref and everything it owns.
func (g *Graph) remove(ref BlockRef) {
	b := g.blocks.items[ref]
	for _, c := range b.Children {
		g.remove(c)
	}
	for _, w := range b.Wires {
		g.wires.release(int(w))
	}
	for _, id := range b.Inputs {
		g.conns.release(int(id))
	}
	for _, id := range b.Outputs {
		g.conns.release(int(id))
	}
	g.blocks.release(int(ref))
}

// Unload removes the top level block with the given id and all its
// descendants. It returns false if there is no such block.
//
func (g *Graph) Unload(id int) bool {
	i := g.rootIndex(id)
	if i < 0 {
		return false
	}
	g.remove(g.roots[i])
	g.roots = append(g.roots[:i], g.roots[i+1:]...)
	log.Info("circuit unloaded", "id", id)
	return true
}
