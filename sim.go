// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package wavedump

import (
	"github.com/pkg/errors"
)

// A Process is a unit of behavior run once per simulation step, after the
// step's scheduled events. Processes typically close over the signals they
// drive.
//
type Process func(s *Simulator)

// A Simulator advances logical time over a module hierarchy. It is strictly
// single-threaded: events, processes and hooks all run synchronously inside
// Step, in a fixed order, so no locking is needed anywhere in the model.
//
// Each step at time t runs:
//
//	1. tick hooks, with t (observers see the new instant before any change)
//	2. events scheduled for t, in scheduling order
//	3. processes, in registration order
//
// then time advances to t+1.
//
type Simulator struct {
	root   *Module
	now    uint64
	procs  []Process
	events map[uint64][]func()
	ticks  []func(now uint64) error
	finish []func(final uint64) error
	done   bool
}

// NewSimulator returns a simulator over the hierarchy rooted at root, with
// logical time starting at 0.
//
func NewSimulator(root *Module) *Simulator {
	if root == nil {
		panic("nil root module")
	}
	return &Simulator{
		root:   root,
		events: make(map[uint64][]func()),
	}
}

// Root returns the root of the simulated hierarchy.
//
func (s *Simulator) Root() *Module { return s.root }

// Now returns the current logical time.
//
func (s *Simulator) Now() uint64 { return s.now }

// AddProcess registers p to run once per step.
//
func (s *Simulator) AddProcess(p Process) {
	s.procs = append(s.procs, p)
}

// At schedules fn to run during the step at time t.
//
func (s *Simulator) At(t uint64, fn func()) error {
	if t < s.now {
		return errors.Errorf("cannot schedule event at past time %d (now %d)", t, s.now)
	}
	s.events[t] = append(s.events[t], fn)
	return nil
}

// AtTick registers h to run at the beginning of every step, before any
// event or process executes, with the step's time. A non-nil error aborts
// the step and is returned by Step.
//
func (s *Simulator) AtTick(h func(now uint64) error) {
	s.ticks = append(s.ticks, h)
}

// AtFinish registers h to run when the simulation finishes, with the final
// time.
//
func (s *Simulator) AtFinish(h func(final uint64) error) {
	s.finish = append(s.finish, h)
}

// Step runs one simulation step at the current time, then advances time by
// one.
//
func (s *Simulator) Step() error {
	if s.done {
		return errors.New("simulation already finished")
	}
	for _, h := range s.ticks {
		if err := h(s.now); err != nil {
			return err
		}
	}
	if evs, ok := s.events[s.now]; ok {
		delete(s.events, s.now)
		for _, fn := range evs {
			fn()
		}
	}
	for _, p := range s.procs {
		p(s)
	}
	s.now++
	return nil
}

// Run executes n steps.
//
func (s *Simulator) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunUntil executes steps until the current time reaches t.
//
func (s *Simulator) RunUntil(t uint64) error {
	for s.now < t {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Finish ends the simulation, firing finish hooks with the final time.
// After Finish, no further steps can run.
//
func (s *Simulator) Finish() error {
	if s.done {
		return errors.New("simulation already finished")
	}
	s.done = true
	for _, h := range s.finish {
		if err := h(s.now); err != nil {
			return err
		}
	}
	return nil
}
