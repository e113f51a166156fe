// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package wavedump

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Version is the tool version written to trace headers.
const Version = "0.1.0"

// DefaultPath is the trace file created when Config.Path is empty.
const DefaultPath = "dump.vcd"

// Config holds dumper options. The zero value selects defaults for every
// field.
//
type Config struct {
	// Path of the trace file, created or truncated at attach time.
	// Defaults to DefaultPath.
	Path string
	// Timescale declaration written in the header. Defaults to "1ps".
	Timescale string
	// Tool and ToolVersion identify the generator in the header.
	Tool        string
	ToolVersion string
	// Date overrides the header date line; defaults to the current time.
	Date string
	// Out, if non-nil, receives the trace instead of a file at Path.
	Out io.Writer
}

func (c *Config) setDefaults() {
	if c.Path == "" {
		c.Path = DefaultPath
	}
	if c.Timescale == "" {
		c.Timescale = "1ps"
	}
	if c.Tool == "" {
		c.Tool = "wavedump"
	}
	if c.ToolVersion == "" {
		c.ToolVersion = Version
	}
	if c.Date == "" {
		c.Date = time.Now().Format(time.ANSIC)
	}
}

// A Dumper observes a simulation and appends value changes to a VCD trace.
//
// At attach time it walks the built hierarchy once, assigns every
// observable signal a marker, writes the header, scope declarations and
// initial values, and hooks itself onto the simulator's tick and finish
// notifications. Thereafter it accumulates change notifications and writes
// exactly one timestamp block per instant that changed something; the
// end-of-simulation flush is forced. The trace file stays open until
// process exit.
//
type Dumper struct {
	sim *Simulator
	reg *registry
	tr  *changeTracker
	sc  *scheduler
	tw  *traceWriter
	f   *os.File
}

// New attaches a dumper to sim's hierarchy. The hierarchy must be built;
// attaching to an unbuilt hierarchy is a usage error and no partial dumper
// is produced. A port name collision within a module scope is reported the
// same way: ports cannot be silently renamed.
//
func New(sim *Simulator, cfg Config) (*Dumper, error) {
	root := sim.Root()
	if !root.Built() {
		return nil, errors.New("cannot attach dumper: hierarchy is not built")
	}
	cfg.setDefaults()

	tr := newChangeTracker()
	reg, err := newRegistry(root, tr.add)
	if err != nil {
		return nil, errors.Wrap(err, "cannot attach dumper")
	}

	d := &Dumper{sim: sim, reg: reg, tr: tr}
	w := cfg.Out
	if w == nil {
		f, err := os.Create(cfg.Path)
		if err != nil {
			return nil, errors.Wrap(err, "cannot create trace file")
		}
		d.f = f
		w = f
	}
	d.tw = &traceWriter{w: w, reg: reg}

	if err := d.tw.writeHeader(cfg.Date, cfg.Tool, cfg.ToolVersion, cfg.Timescale); err != nil {
		return nil, err
	}
	if err := d.tw.writeScope(root); err != nil {
		return nil, err
	}
	if err := d.tw.writeInitialValues(); err != nil {
		return nil, err
	}

	d.sc = &scheduler{t: sim.Now(), tr: tr, tw: d.tw}
	sim.AtTick(d.sc.tick)
	sim.AtFinish(d.sc.finish)
	return d, nil
}

// Tracked returns the number of signals the dumper observes.
//
func (d *Dumper) Tracked() int { return len(d.reg.entries) }
