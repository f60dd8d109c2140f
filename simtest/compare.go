// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package simtest provides utility functions for testing circuits.
//
package simtest

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	bs "github.com/db47h/blocksim"
	"github.com/db47h/blocksim/circuit"
	"github.com/db47h/blocksim/signal"
)

// RandValue returns a Value of kind k with random bits.
//
func RandValue(r *rand.Rand, k signal.Kind) signal.Value {
	var w [4]uint64
	for i := range w {
		w[i] = r.Uint64()
	}
	return signal.FromWords(k, w)
}

// Instance is a definition loaded in its own graph.
//
type Instance struct {
	G    *bs.Graph
	Root bs.BlockRef
}

// Load loads def into a new graph. It fails the test if loading reports
// warnings.
//
func Load(t testing.TB, def *circuit.Definition) Instance {
	t.Helper()
	g := bs.NewGraph()
	r := g.Load(def)
	for _, w := range r.Warnings {
		t.Errorf("%s: %v", def.Name, w)
	}
	if len(r.Warnings) > 0 {
		t.FailNow()
	}
	return Instance{g, r.Root}
}

// Set sets the value of input id of the top level block.
//
func (i Instance) Set(t testing.TB, id int, v signal.Value) {
	t.Helper()
	c, ok := i.G.Lookup(i.Root, bs.Input, id)
	if !ok {
		t.Fatalf("no input %d", id)
	}
	i.G.SetValue(c, v)
}

// Get returns the value of output id of the top level block.
//
func (i Instance) Get(t testing.TB, id int) signal.Value {
	t.Helper()
	c, ok := i.G.Lookup(i.Root, bs.Output, id)
	if !ok {
		t.Fatalf("no output %d", id)
	}
	v, _ := i.G.Value(c)
	return v
}

// checkInterface verifies that a and b declare the same top level
// connections, with the same kinds.
func checkInterface(t testing.TB, a, b *circuit.Definition) {
	t.Helper()
	cmp := func(role string, ca, cb []circuit.Connection) {
		if len(ca) != len(cb) {
			t.Fatalf("len(%s) = %d != %d", role, len(ca), len(cb))
		}
		for i := range ca {
			if ca[i].ID != cb[i].ID || ca[i].Value.Kind() != cb[i].Value.Kind() {
				t.Fatalf("%s[%d] = %d (%s) != %d (%s)", role, i,
					ca[i].ID, ca[i].Value.Kind(), cb[i].ID, cb[i].Value.Kind())
			}
		}
	}
	cmp("inputs", a.Inputs, b.Inputs)
	cmp("outputs", a.Outputs, b.Outputs)
}

// CompareDefinitions takes two definitions and compares their outputs given
// the same inputs. Both must declare the same top level inputs and outputs.
//
// Inputs are set to all zeros, then all ones, then to random values for iter
// rounds. Each round runs tpr ticks before comparing outputs.
//
func CompareDefinitions(t *testing.T, tpr, iter int, a, b *circuit.Definition) {
	t.Helper()
	checkInterface(t, a, b)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	ia, ib := Load(t, a), Load(t, b)
	inputs := make([]signal.Value, len(a.Inputs))

	errString := func(id int, ex, got signal.Value) string {
		var sb strings.Builder
		for i, c := range a.Inputs {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(c.Value.Kind().String())
			sb.WriteRune('=')
			sb.WriteString(inputs[i].String())
		}
		return "\nExpected " + sb.String() + " => " + ex.String() + "\nGot " + got.String() + " on output " + strconv.Itoa(id)
	}

	round := func() {
		for i, c := range a.Inputs {
			ia.Set(t, c.ID, inputs[i])
			ib.Set(t, c.ID, inputs[i])
		}
		for n := 0; n < tpr; n++ {
			ia.G.Tick()
			ib.G.Tick()
		}
		for _, c := range a.Outputs {
			if va, vb := ia.Get(t, c.ID), ib.Get(t, c.ID); va != vb {
				t.Fatal(errString(c.ID, va, vb))
			}
		}
	}

	start := time.Now()

	// try all 0
	for i, c := range a.Inputs {
		inputs[i] = signal.Zero(c.Value.Kind())
	}
	round()

	// try all 1
	for i, c := range a.Inputs {
		inputs[i] = signal.FromWords(c.Value.Kind(), [4]uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)})
	}
	round()

	for n := 0; n < iter; n++ {
		for i, c := range a.Inputs {
			inputs[i] = RandValue(r, c.Value.Kind())
		}
		round()
	}

	t.Logf("%d blocks. %d rounds in %v", ia.G.NumBlocks()+ib.G.NumBlocks(), iter+2, time.Since(start))
}
