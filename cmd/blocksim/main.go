// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command blocksim runs a circuit simulation described by a blocksim.toml
// file and prints probed outputs after each tick.
//
// Usage:
//
//	blocksim [flags] [circuit files...]
//
// Circuit files given on the command line are loaded after the ones listed in
// the simulation file.
//
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/tliron/commonlog"

	"github.com/db47h/blocksim"
	"github.com/db47h/blocksim/circuit"
	"github.com/db47h/blocksim/config"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("blocksim.cmd")

type options struct {
	config    string
	ticks     int
	verbosity int
	dump      string
	json      bool
	circuits  []string
}

func main() {
	var o options
	flag.StringVar(&o.config, "config", "", "Simulation file (default: blocksim.toml if present)")
	flag.IntVar(&o.ticks, "ticks", -1, "Number of ticks to run, overrides the simulation file")
	flag.IntVar(&o.verbosity, "v", -1, "Log verbosity, overrides the simulation file")
	flag.StringVar(&o.dump, "dump", "", "Write a CBOR snapshot of the final state to this file")
	flag.BoolVar(&o.json, "json", false, "Print the final state as JSON")
	flag.Parse()
	o.circuits = flag.Args()

	if err := run(o, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "blocksim: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(o *options) (*config.Config, error) {
	name := o.config
	if name == "" {
		if _, err := os.Stat("blocksim.toml"); err != nil {
			return &config.Config{
				Sim: config.Sim{Ticks: config.DefaultTicks},
				Log: config.Log{Verbosity: config.DefaultVerbosity},
				Dir: ".",
			}, nil
		}
		name = "blocksim.toml"
	}
	return config.Load(name)
}

func run(o options, w io.Writer) error {
	c, err := loadConfig(&o)
	if err != nil {
		return err
	}
	if o.ticks >= 0 {
		c.Sim.Ticks = o.ticks
	}
	if o.verbosity >= 0 {
		c.Log.Verbosity = o.verbosity
	}
	var logFile *string
	if c.Log.File != "" {
		logFile = &c.Log.File
	}
	commonlog.Configure(c.Log.Verbosity, logFile)

	defs, err := c.Definitions()
	if err != nil {
		return err
	}
	for _, name := range o.circuits {
		d, err := circuit.ReadFile(name)
		if err != nil {
			return err
		}
		defs = append(defs, d)
	}
	if len(defs) == 0 {
		return errors.New("no circuit to simulate")
	}

	sim := blocksim.NewSimulator(nil)
	sim.Queue(defs...)
	for _, r := range sim.Flush() {
		for _, err := range r.Warnings {
			log.Warningf("%v", err)
		}
	}

	g := sim.Graph()
	drives := make([]blocksim.ConnID, len(c.Drives))
	for i, d := range c.Drives {
		id, err := lookup(g, d.Block, blocksim.Input, d.Input)
		if err != nil {
			return errors.Wrapf(err, "drive %d", i)
		}
		if v, _ := g.Value(id); v.Kind() != d.Value.Kind() {
			return errors.Errorf("drive %d: %s value for %s input %d.%d", i, d.Value.Kind(), v.Kind(), d.Block, d.Input)
		}
		drives[i] = id
	}
	probes := make([]blocksim.ConnID, len(c.Probes))
	for i, p := range c.Probes {
		id, err := lookup(g, p.Block, blocksim.Output, p.Output)
		if err != nil {
			return errors.Wrapf(err, "probe %d", i)
		}
		probes[i] = id
	}

	for t := 0; t < c.Sim.Ticks; t++ {
		for i, id := range drives {
			g.SetValue(id, c.Drives[i].Value)
		}
		sim.Step()
		for i, id := range probes {
			v, _ := g.Value(id)
			p := c.Probes[i]
			fmt.Fprintf(w, "%d\t%d.%d\t%s\n", sim.Steps(), p.Block, p.Output, v)
		}
	}
	log.Infof("simulation done: %d steps, %d blocks, %d connections, %d wires",
		sim.Steps(), g.NumBlocks(), g.NumConnections(), g.NumWires())

	sn := sim.Snapshot()
	if o.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err = enc.Encode(sn); err != nil {
			return errors.Wrap(err, "encode snapshot")
		}
	}
	if o.dump != "" {
		data, err := blocksim.MarshalSnapshot(sn)
		if err != nil {
			return err
		}
		if err = os.WriteFile(o.dump, data, 0644); err != nil {
			return errors.Wrap(err, "write snapshot")
		}
	}
	return nil
}

func lookup(g *blocksim.Graph, block int, role blocksim.Role, id int) (blocksim.ConnID, error) {
	ref, ok := g.Root(block)
	if !ok {
		return 0, errors.Errorf("no top level block %d", block)
	}
	c, ok := g.Lookup(ref, role, id)
	if !ok {
		return 0, errors.Errorf("block %d: no %s %d", block, role, id)
	}
	return c, nil
}
