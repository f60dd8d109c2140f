// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blocksim

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"

	"github.com/db47h/blocksim/signal"
)

// Snapshot is a serializable copy of the connection values of a graph.
//
type Snapshot struct {
	Step   uint            `json:"step" cbor:"step"`
	Blocks []BlockSnapshot `json:"blocks" cbor:"blocks"`
}

// BlockSnapshot holds the connection values of a block. Path lists the
// declared ids of the block's ancestors, top level first, followed by the
// block's own id.
//
type BlockSnapshot struct {
	Path    []int          `json:"path" cbor:"path"`
	Name    string         `json:"name" cbor:"name"`
	Inputs  []ConnSnapshot `json:"inputs,omitempty" cbor:"inputs,omitempty"`
	Outputs []ConnSnapshot `json:"outputs,omitempty" cbor:"outputs,omitempty"`
}

// ConnSnapshot is the value of a connection, identified by its declared id.
//
type ConnSnapshot struct {
	ID    int          `json:"id" cbor:"id"`
	Value signal.Value `json:"value" cbor:"value"`
}

// Snapshot returns the current connection values of all blocks, in Walk
// order.
//
func (g *Graph) Snapshot() Snapshot {
	var s Snapshot
	var path []int
	g.Walk(func(_ BlockRef, b *Block, depth int) bool {
		path = append(path[:depth], b.ID)
		s.Blocks = append(s.Blocks, BlockSnapshot{
			Path:    append([]int(nil), path...),
			Name:    b.Name,
			Inputs:  g.snapConns(b.Inputs),
			Outputs: g.snapConns(b.Outputs),
		})
		return true
	})
	return s
}

func (g *Graph) snapConns(ids []ConnID) []ConnSnapshot {
	if len(ids) == 0 {
		return nil
	}
	cs := make([]ConnSnapshot, len(ids))
	for i, id := range ids {
		c := &g.conns.items[id]
		cs[i] = ConnSnapshot{ID: c.LocalID, Value: c.Value}
	}
	return cs
}

// Snapshot returns a snapshot of the simulated graph stamped with the current
// step count.
//
func (s *Simulator) Snapshot() Snapshot {
	sn := s.g.Snapshot()
	sn.Step = s.steps
	return sn
}

var snapshotEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic("blocksim: failed to create CBOR enc mode: " + err.Error())
	}
	snapshotEncMode = em
}

// MarshalSnapshot encodes s in canonical CBOR.
//
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	b, err := snapshotEncMode.Marshal(s)
	return b, errors.Wrap(err, "encode snapshot")
}

// UnmarshalSnapshot decodes a snapshot encoded by MarshalSnapshot.
//
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return Snapshot{}, errors.Wrap(err, "decode snapshot")
	}
	return s, nil
}
