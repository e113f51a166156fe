package wavedump

import (
	"strconv"

	"wavedump/internal/names"

	"github.com/pkg/errors"
)

// An entry binds one tracked signal to its marker and its uniquified output
// name. Entries are created in one deterministic pass over the hierarchy;
// the same order is reused verbatim for scope declarations and for the
// initial value dump.
type entry struct {
	sig    *Signal
	marker string
	name   string
}

// A registry is the dumper's marker table: a bijection from tracked signal
// identity to a short marker (s0, s1, ...), plus the per-module declaration
// order needed to mirror the hierarchy in the scope block.
//
// Constants and anything inside an opaque module are excluded and never
// receive a marker.
type registry struct {
	entries []*entry           // marker assignment order
	index   map[*Signal]*entry // signal identity -> entry
	scopes  map[*Module][]*entry
}

// newRegistry walks the hierarchy rooted at root in depth-first preorder,
// assigns markers, and installs onChange on every tracked signal.
func newRegistry(root *Module, onChange func(*Signal)) (*registry, error) {
	r := &registry{
		index:  make(map[*Signal]*entry),
		scopes: make(map[*Module][]*entry),
	}
	if err := r.walk(root, onChange); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *registry) walk(m *Module, onChange func(*Signal)) error {
	u := newUniquifier()
	for _, sig := range m.Signals() {
		if sig.IsConst() {
			continue
		}
		name, err := u.resolve(names.Sanitize(sig.Name()), sig.IsPort())
		if err != nil {
			return errors.Wrap(err, "module "+m.Name())
		}
		e := &entry{
			sig:    sig,
			marker: "s" + strconv.Itoa(len(r.entries)),
			name:   name,
		}
		r.entries = append(r.entries, e)
		r.index[sig] = e
		r.scopes[m] = append(r.scopes[m], e)
		sig.OnChange(onChange)
	}
	for _, c := range m.Children() {
		if c.Opaque() {
			continue
		}
		if err := r.walk(c, onChange); err != nil {
			return err
		}
	}
	return nil
}

// trackable reports whether m or any of its descendants contributes at
// least one tracked signal. Scopes that do not are omitted from the trace
// entirely.
func (r *registry) trackable(m *Module) bool {
	if len(r.scopes[m]) > 0 {
		return true
	}
	if m.Opaque() {
		return false
	}
	for _, c := range m.Children() {
		if r.trackable(c) {
			return true
		}
	}
	return false
}

// A uniquifier resolves sanitized signal names to collision-free output
// names within one module scope. Each module gets a fresh uniquifier.
type uniquifier struct {
	taken    map[string]bool
	reserved map[string]bool
}

func newUniquifier() *uniquifier {
	return &uniquifier{
		taken:    make(map[string]bool),
		reserved: make(map[string]bool),
	}
}

// resolve claims an output name for the given sanitized name. Reserved
// (port) names are granted verbatim or not at all: a port colliding with
// any previously claimed name is an error, never silently renamed. Other
// names get a numeric suffix until unique.
func (u *uniquifier) resolve(name string, reserved bool) (string, error) {
	if reserved {
		if u.reserved[name] {
			return "", errors.Errorf("port name %q conflicts with another port", name)
		}
		if u.taken[name] {
			return "", errors.Errorf("port name %q already claimed by an internal signal", name)
		}
		u.taken[name] = true
		u.reserved[name] = true
		return name, nil
	}
	out := name
	for i := 1; u.taken[out]; i++ {
		out = name + "_" + strconv.Itoa(i)
	}
	u.taken[out] = true
	return out, nil
}
