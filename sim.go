// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blocksim

import (
	"sync"

	"github.com/db47h/blocksim/circuit"
)

// Simulator runs a Graph tick after tick.
//
// Each step runs the same sequence: circuit definitions queued since the
// previous step are loaded, in queue order, then wires are propagated once.
//
type Simulator struct {
	g     *Graph
	steps uint

	mu      sync.Mutex
	pending []*circuit.Definition
}

// NewSimulator returns a simulator for g. If g is nil, a new empty graph is
// used.
//
func NewSimulator(g *Graph) *Simulator {
	if g == nil {
		g = NewGraph()
	}
	return &Simulator{g: g}
}

// Graph returns the simulated graph. It must not be modified while Step is
// running.
//
func (s *Simulator) Graph() *Graph { return s.g }

// Queue schedules definitions to be loaded at the beginning of the next step.
// Unlike the other methods, Queue can be called from any goroutine, for
// instance by a file watcher.
//
func (s *Simulator) Queue(defs ...*circuit.Definition) {
	s.mu.Lock()
	s.pending = append(s.pending, defs...)
	s.mu.Unlock()
}

// Pending returns the number of queued definitions.
//
func (s *Simulator) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Flush loads the queued definitions, in queue order, without running a tick.
// It returns their load reports.
//
func (s *Simulator) Flush() []*Report {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	var rs []*Report
	for _, def := range pending {
		rs = append(rs, s.g.Load(def))
	}
	return rs
}

// Step advances the simulation by one tick. It returns the reports of the
// definitions loaded during this step, if any.
//
func (s *Simulator) Step() []*Report {
	rs := s.Flush()
	s.g.Tick()
	s.steps++
	return rs
}

// Run runs n steps and returns all load reports.
//
func (s *Simulator) Run(n int) []*Report {
	var rs []*Report
	for i := 0; i < n; i++ {
		rs = append(rs, s.Step()...)
	}
	return rs
}

// Steps returns the value of the step counter.
//
func (s *Simulator) Steps() uint {
	return s.steps
}
