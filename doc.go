/*
Package blocksim simulates digital logic circuits made of blocks, connections
and wires.

A circuit is described by a circuit.Definition, usually decoded from a file.
Loading a definition into a Graph instantiates it: every declared input and
output becomes a Connection holding a signal.Value, every nested definition a
child Block, and every declared wire a Wire joining connections of the block
declaring it.

Each call to Graph.Tick propagates values once through all wires: the inputs
of a wire are merged (bitwise OR, see signal.Merge) and the result is written
to the wire's outputs. A Simulator wraps a Graph and applies pending reloads
before each tick:

	sim := blocksim.NewSimulator(nil)
	def, err := circuit.ReadFile("adder.json")
	if err != nil {
		// ...
	}
	sim.Queue(def)
	sim.Run(8)
	fmt.Println(sim.Snapshot())

Loading a definition whose id matches a top level block replaces that block
entirely.
*/
package blocksim
