// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package parts

import (
	"wavedump"
)

type gate func(a, b bool) bool

func newGate(sim *wavedump.Simulator, m *wavedump.Module, name string, a, b *wavedump.Signal, g gate) *wavedump.Signal {
	out := m.Signal(name, 1)
	sim.AddProcess(func(s *wavedump.Simulator) {
		out.SetBool(g(a.Bool(), b.Bool()))
	})
	return out
}

// Not returns a 1-bit signal driven with the negation of in.
//
//	Function: out = !in
//
func Not(sim *wavedump.Simulator, m *wavedump.Module, name string, in *wavedump.Signal) *wavedump.Signal {
	out := m.Signal(name, 1)
	sim.AddProcess(func(s *wavedump.Simulator) {
		out.SetBool(!in.Bool())
	})
	return out
}

// And returns a 1-bit signal driven with a AND b.
//
func And(sim *wavedump.Simulator, m *wavedump.Module, name string, a, b *wavedump.Signal) *wavedump.Signal {
	return newGate(sim, m, name, a, b, func(a, b bool) bool { return a && b })
}

// Or returns a 1-bit signal driven with a OR b.
//
func Or(sim *wavedump.Simulator, m *wavedump.Module, name string, a, b *wavedump.Signal) *wavedump.Signal {
	return newGate(sim, m, name, a, b, func(a, b bool) bool { return a || b })
}

// Xor returns a 1-bit signal driven with a XOR b.
//
func Xor(sim *wavedump.Simulator, m *wavedump.Module, name string, a, b *wavedump.Signal) *wavedump.Signal {
	return newGate(sim, m, name, a, b, func(a, b bool) bool { return a != b })
}
