// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package wavedump

// A Signal is a named value holder owned by a Module. Signal identity is
// pointer identity: two signals are the same signal only if they are the
// same *Signal.
//
// A signal's value is an ordered sequence of bits stored least-significant
// bit first. Width is fixed at creation time and is always at least 1.
//
type Signal struct {
	name string
	bits []bool // least-significant bit first
	mod  *Module
	port bool
	cst  bool
	subs []func(*Signal)
}

// Name returns the signal's declared name.
//
func (s *Signal) Name() string { return s.name }

// Width returns the signal's bit width.
//
func (s *Signal) Width() int { return len(s.bits) }

// Module returns the module that owns the signal.
//
func (s *Signal) Module() *Module { return s.mod }

// IsPort reports whether the signal is a port of its owning module.
//
func (s *Signal) IsPort() bool { return s.port }

// IsConst reports whether the signal holds a constant value.
//
func (s *Signal) IsConst() bool { return s.cst }

// Bits returns the signal's current value, least-significant bit first.
// The returned slice is the signal's backing store and must not be modified
// by the caller; use Set or SetUint64 instead.
//
func (s *Signal) Bits() []bool { return s.bits }

// Bit returns bit i of the signal's current value.
//
func (s *Signal) Bit(i int) bool { return s.bits[i] }

// Uint64 returns the signal's current value as an unsigned integer.
// Bits beyond the 64th are ignored.
//
func (s *Signal) Uint64() uint64 {
	var v uint64
	for i, b := range s.bits {
		if i >= 64 {
			break
		}
		if b {
			v |= 1 << uint(i)
		}
	}
	return v
}

// OnChange registers f to be called synchronously whenever the signal's
// value changes. Listeners run in registration order. Setting a signal to
// its current value does not notify.
//
func (s *Signal) OnChange(f func(*Signal)) {
	s.subs = append(s.subs, f)
}

// Set assigns a new value to the signal. The bits slice must have exactly
// Width() elements, least-significant bit first; Set panics otherwise.
// Set panics if the signal is constant.
//
func (s *Signal) Set(bits []bool) {
	if s.cst {
		panic("cannot set constant signal " + s.name)
	}
	if len(bits) != len(s.bits) {
		panic("width mismatch setting signal " + s.name)
	}
	changed := false
	for i, b := range bits {
		if s.bits[i] != b {
			s.bits[i] = b
			changed = true
		}
	}
	if changed {
		s.notify()
	}
}

// SetUint64 assigns v to the signal, truncated to the signal's width.
//
func (s *Signal) SetUint64(v uint64) {
	if s.cst {
		panic("cannot set constant signal " + s.name)
	}
	changed := false
	for i := range s.bits {
		var b bool
		if i < 64 {
			b = v&(1<<uint(i)) != 0
		}
		if s.bits[i] != b {
			s.bits[i] = b
			changed = true
		}
	}
	if changed {
		s.notify()
	}
}

// SetBool assigns b to a 1-bit signal. It panics if the signal is wider
// than one bit.
//
func (s *Signal) SetBool(b bool) {
	if len(s.bits) != 1 {
		panic("SetBool on signal " + s.name + " of width > 1")
	}
	if b {
		s.SetUint64(1)
	} else {
		s.SetUint64(0)
	}
}

// Bool returns the value of a 1-bit signal.
//
func (s *Signal) Bool() bool { return s.bits[0] }

func (s *Signal) notify() {
	for _, f := range s.subs {
		f(s)
	}
}
