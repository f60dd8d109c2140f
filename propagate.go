// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blocksim

import "github.com/db47h/blocksim/signal"

// Tick runs one propagation pass over all wires.
//
// For each wire, the values of its input members are merged, starting from a
// Single set to false, and the result is written to all its output members.
// Wires are processed one after the other in no particular order: a
// connection driven by several wires ends up with the value of the last one
// processed. Since there is a single pass, a change takes one tick per wire
// to travel through a circuit.
//
func (g *Graph) Tick() {
	g.wires.each(func(_ int, w *Wire) {
		g.drive(w)
	})
}

func (g *Graph) drive(w *Wire) {
	var v signal.Value
	for _, id := range w.Members {
		if c := &g.conns.items[id]; c.Role == Input {
			v = signal.Merge(v, c.Value)
		}
	}
	for _, id := range w.Members {
		if c := &g.conns.items[id]; c.Role == Output {
			c.Value = v
		}
	}
}
