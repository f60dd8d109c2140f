// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blocklib

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/db47h/blocksim/circuit"
	"github.com/db47h/blocksim/signal"
)

// Params are the parameters of a library block. Blocks ignore the parameters
// they do not use.
//
type Params struct {
	ID   int
	Kind signal.Kind
	N    int // number of outputs of Fanout, or of inputs of Or.
}

// NewFn builds a library block.
//
type NewFn func(p Params) (*circuit.Definition, error)

var registry = map[string]NewFn{
	"and": func(p Params) (*circuit.Definition, error) {
		return And(p.ID), nil
	},
	"passthrough": func(p Params) (*circuit.Definition, error) {
		return Passthrough(p.ID, p.Kind), nil
	},
	"fanout": func(p Params) (*circuit.Definition, error) {
		if p.N < 1 {
			return nil, errors.Errorf("fanout: invalid number of outputs %d", p.N)
		}
		return Fanout(p.ID, p.Kind, p.N), nil
	},
	"or": func(p Params) (*circuit.Definition, error) {
		if p.N < 1 {
			return nil, errors.Errorf("or: invalid number of inputs %d", p.N)
		}
		return Or(p.ID, p.Kind, p.N), nil
	},
}

// New returns a new instance of the named library block. Names are case
// insensitive.
//
func New(name string, p Params) (*circuit.Definition, error) {
	fn, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("unknown library block %q", name)
	}
	if !p.Kind.Valid() {
		return nil, errors.Errorf("%s: invalid kind %d", name, p.Kind)
	}
	return fn(p)
}

// Names returns the names of the library blocks in sorted order.
//
func Names() []string {
	ns := make([]string, 0, len(registry))
	for n := range registry {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}
