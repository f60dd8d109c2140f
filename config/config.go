// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config handles blocksim.toml simulation files.
//
// A simulation file lists the circuits to load, the inputs to drive before
// each tick and the outputs to print after each tick:
//
//	[sim]
//	ticks = 16
//
//	[log]
//	verbosity = 1
//	file = ""              # empty for stderr
//
//	[[circuit]]
//	path = "adder.json"    # relative to the simulation file
//
//	[[circuit]]
//	builtin = "fanout"     # see blocklib.Names
//	id = 2
//	kind = "Byte"
//	n = 4
//
//	[[drive]]
//	block = 1
//	input = 0
//	value = { Byte = 5 }
//
//	[[probe]]
//	block = 1
//	output = 2
//
package config

import (
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/db47h/blocksim/blocklib"
	"github.com/db47h/blocksim/circuit"
	"github.com/db47h/blocksim/signal"
)

// Defaults for missing keys.
//
const (
	DefaultTicks     = 16
	DefaultVerbosity = 1
)

// Config is the content of a simulation file.
//
type Config struct {
	Sim      Sim       `toml:"sim"`
	Log      Log       `toml:"log"`
	Circuits []Circuit `toml:"circuit"`
	Drives   []Drive   `toml:"drive"`
	Probes   []Probe   `toml:"probe"`

	// Dir is the directory containing the simulation file (set at load time).
	Dir string `toml:"-"`
}

// Sim configures the simulation loop.
type Sim struct {
	Ticks int `toml:"ticks"`
}

// Log configures logging.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Circuit is either a circuit file or a library block.
//
type Circuit struct {
	Path string `toml:"path"`

	Builtin string      `toml:"builtin"`
	ID      int         `toml:"id"`
	Kind    signal.Kind `toml:"kind"`
	N       int         `toml:"n"`
}

// Drive sets input Input of top level block Block to Value before each tick.
//
type Drive struct {
	Block int          `toml:"block"`
	Input int          `toml:"input"`
	Value signal.Value `toml:"value"`
}

// Probe prints output Output of top level block Block after each tick.
//
type Probe struct {
	Block  int `toml:"block"`
	Output int `toml:"output"`
}

// Load reads the simulation file name. Unknown keys are an error.
//
func Load(name string) (*Config, error) {
	var c Config
	md, err := toml.DecodeFile(name, &c)
	if err != nil {
		return nil, errors.Wrapf(err, "parse error in %s", name)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errors.Errorf("%s: unknown key %q", name, keys[0].String())
	}

	// Defaults
	if !md.IsDefined("sim", "ticks") {
		c.Sim.Ticks = DefaultTicks
	}
	if !md.IsDefined("log", "verbosity") {
		c.Log.Verbosity = DefaultVerbosity
	}

	c.Dir, err = filepath.Abs(filepath.Dir(name))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot resolve path %s", name)
	}
	if err = c.validate(); err != nil {
		return nil, errors.Wrap(err, name)
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.Sim.Ticks < 0 {
		return errors.Errorf("sim: invalid number of ticks %d", c.Sim.Ticks)
	}
	for i := range c.Circuits {
		cc := &c.Circuits[i]
		if (cc.Path == "") == (cc.Builtin == "") {
			return errors.Errorf("circuit %d: exactly one of path or builtin must be set", i)
		}
	}
	return nil
}

// Definitions returns the definitions of all circuits, in declaration order.
//
func (c *Config) Definitions() ([]*circuit.Definition, error) {
	defs := make([]*circuit.Definition, 0, len(c.Circuits))
	for i := range c.Circuits {
		d, err := c.Circuits[i].Definition(c.Dir)
		if err != nil {
			return nil, errors.Wrapf(err, "circuit %d", i)
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// Definition reads the circuit file or builds the library block. Relative
// paths are resolved from dir.
//
func (cc *Circuit) Definition(dir string) (*circuit.Definition, error) {
	if cc.Builtin != "" {
		return blocklib.New(cc.Builtin, blocklib.Params{ID: cc.ID, Kind: cc.Kind, N: cc.N})
	}
	p := cc.Path
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	return circuit.ReadFile(p)
}
