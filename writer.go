// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package wavedump

import (
	"fmt"
	"io"
	"strings"

	"wavedump/internal/names"
)

// A traceWriter renders VCD text to the output sink. All writes are
// synchronous; the first write error is retained and every later call
// becomes a no-op returning that error.
type traceWriter struct {
	w   io.Writer
	reg *registry
	err error
}

func (tw *traceWriter) printf(format string, args ...interface{}) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

// writeHeader emits the one-shot header block.
func (tw *traceWriter) writeHeader(date, tool, version, timescale string) error {
	tw.printf("$date\n\t%s\n$end\n", date)
	tw.printf("$version\n\t%s %s\n$end\n", tool, version)
	tw.printf("$comment\n\tgenerated by %s\n$end\n", tool)
	tw.printf("$timescale %s $end\n", timescale)
	return tw.err
}

// writeScope recursively renders the scope/var declarations mirroring the
// module hierarchy, then the end-of-definitions marker. A module with no
// tracked signals and no non-empty child scope renders nothing at all.
func (tw *traceWriter) writeScope(root *Module) error {
	tw.scope(root)
	tw.printf("$enddefinitions $end\n")
	return tw.err
}

func (tw *traceWriter) scope(m *Module) {
	if !tw.reg.trackable(m) {
		return
	}
	tw.printf("$scope module %s $end\n", names.Sanitize(m.Name()))
	for _, e := range tw.reg.scopes[m] {
		tw.printf("$var wire %d %s %s $end\n", e.sig.Width(), e.marker, e.name)
	}
	for _, c := range m.Children() {
		tw.scope(c)
	}
	tw.printf("$upscope $end\n")
}

// writeInitialValues emits every tracked signal's current value exactly
// once, in marker assignment order.
func (tw *traceWriter) writeInitialValues() error {
	tw.printf("$dumpvars\n")
	for _, e := range tw.reg.entries {
		tw.printf("%s\n", valueText(e.sig, e.marker))
	}
	tw.printf("$end\n")
	return tw.err
}

// writeTimestampBlock emits the time marker for t followed by one value
// line per changed signal.
func (tw *traceWriter) writeTimestampBlock(t uint64, changed []*Signal) error {
	tw.printf("#%d\n", t)
	for _, sig := range changed {
		e := tw.reg.index[sig]
		if e == nil {
			continue
		}
		tw.printf("%s\n", valueText(sig, e.marker))
	}
	return tw.err
}

// valueText renders a signal value in VCD encoding. A 1-bit value is the
// bit character glued to the marker. A vector is a 'b' prefix, the bits
// rendered most-significant first (the stored order is least-significant
// first, hence the reversal), a space, then the marker.
func valueText(s *Signal, marker string) string {
	bits := s.Bits()
	if len(bits) == 1 {
		if bits[0] {
			return "1" + marker
		}
		return "0" + marker
	}
	var b strings.Builder
	b.Grow(len(bits) + len(marker) + 2)
	b.WriteByte('b')
	for i := len(bits) - 1; i >= 0; i-- {
		if bits[i] {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(' ')
	b.WriteString(marker)
	return b.String()
}
