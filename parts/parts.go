// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package parts provides a library of reusable stimulus and combinational
// parts for wavedump simulations. Each part declares its output signal in
// the given module and registers a process that drives it.
//
package parts

import (
	"wavedump"
)

// Toggle returns a 1-bit signal that flips on every step.
//
//	Function: out(t) = !out(t-1)
//
func Toggle(sim *wavedump.Simulator, m *wavedump.Module, name string) *wavedump.Signal {
	out := m.Signal(name, 1)
	sim.AddProcess(func(s *wavedump.Simulator) {
		out.SetBool(!out.Bool())
	})
	return out
}

// Counter returns a width-bit signal incremented on every step, wrapping
// at 2^width.
//
func Counter(sim *wavedump.Simulator, m *wavedump.Module, name string, width int) *wavedump.Signal {
	out := m.Signal(name, width)
	sim.AddProcess(func(s *wavedump.Simulator) {
		out.SetUint64(out.Uint64() + 1)
	})
	return out
}

// Register returns a signal that follows d with a one step delay.
//
//	Function: out(t) = d(t-1)
//
func Register(sim *wavedump.Simulator, m *wavedump.Module, name string, d *wavedump.Signal) *wavedump.Signal {
	out := m.Signal(name, d.Width())
	cur := make([]bool, d.Width())
	sim.AddProcess(func(s *wavedump.Simulator) {
		out.Set(cur)
		copy(cur, d.Bits())
	})
	return out
}
