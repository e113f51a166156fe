package wavedump

import (
	"github.com/pkg/errors"
)

// A Module is a node in the design hierarchy. It owns an ordered list of
// signals and an ordered list of child modules; insertion order is
// declaration order and is preserved in the trace output.
//
// An opaque module is a black box: its internals are never expanded or
// observed by a dumper.
//
type Module struct {
	name     string
	parent   *Module
	children []*Module
	signals  []*Signal
	opaque   bool
	built    bool
}

// NewModule returns a new root module with the given name.
//
func NewModule(name string) *Module {
	return &Module{name: name}
}

// NewChild creates a child module and appends it to m's children.
//
func (m *Module) NewChild(name string) *Module {
	if m.built {
		panic("cannot add child " + name + " to built module " + m.name)
	}
	c := &Module{name: name, parent: m}
	m.children = append(m.children, c)
	return c
}

// Name returns the module's name.
//
func (m *Module) Name() string { return m.name }

// Parent returns the module's parent, or nil for the root.
//
func (m *Module) Parent() *Module { return m.parent }

// Children returns the module's child modules in declaration order.
//
func (m *Module) Children() []*Module { return m.children }

// Signals returns the module's signals in declaration order.
//
func (m *Module) Signals() []*Signal { return m.signals }

// SetOpaque marks the module as a black box whose internals must not be
// expanded.
//
func (m *Module) SetOpaque(o bool) { m.opaque = o }

// Opaque reports whether the module is a black box.
//
func (m *Module) Opaque() bool { return m.opaque }

// Signal declares a new internal signal of the given width and appends it
// to the module. Signal panics if width < 1 or if the module is already
// built.
//
func (m *Module) Signal(name string, width int) *Signal {
	return m.newSignal(name, width, false, false)
}

// Port declares a new port signal. Port names are reserved: the dumper must
// emit them verbatim and will refuse to disambiguate them.
//
func (m *Module) Port(name string, width int) *Signal {
	return m.newSignal(name, width, true, false)
}

// Const declares a constant signal holding the given value. Constants never
// change and are never tracked by a dumper.
//
func (m *Module) Const(name string, width int, value uint64) *Signal {
	s := m.newSignal(name, width, false, false)
	s.SetUint64(value)
	s.cst = true
	return s
}

func (m *Module) newSignal(name string, width int, port, cst bool) *Signal {
	if m.built {
		panic("cannot add signal " + name + " to built module " + m.name)
	}
	if width < 1 {
		panic("signal " + name + " must have width >= 1")
	}
	s := &Signal{
		name: name,
		bits: make([]bool, width),
		mod:  m,
		port: port,
		cst:  cst,
	}
	m.signals = append(m.signals, s)
	return s
}

// Build validates the module tree rooted at m and marks it built. A dumper
// can only attach to a built hierarchy. Build must be called on the root
// module.
//
func (m *Module) Build() error {
	if m.parent != nil {
		return errors.New("Build must be called on the root module, not " + m.name)
	}
	return m.build()
}

func (m *Module) build() error {
	if m.name == "" {
		return errors.New("module with empty name")
	}
	seen := make(map[string]*Signal, len(m.signals))
	for _, s := range m.signals {
		if s.name == "" {
			return errors.New("empty signal name in module " + m.name)
		}
		if _, ok := seen[s.name]; ok {
			return errors.New("duplicate signal " + s.name + " in module " + m.name)
		}
		seen[s.name] = s
	}
	names := make(map[string]bool, len(m.children))
	for _, c := range m.children {
		if names[c.name] {
			return errors.New("duplicate child module " + c.name + " in module " + m.name)
		}
		names[c.name] = true
		if err := c.build(); err != nil {
			return errors.Wrap(err, "in module "+m.name)
		}
	}
	m.built = true
	return nil
}

// Built reports whether the hierarchy rooted at m has been built.
//
func (m *Module) Built() bool { return m.built }
