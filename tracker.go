package wavedump

// A changeTracker accumulates the set of signals that changed within the
// currently open timestamp. Insertion is idempotent and iteration order is
// insertion order.
type changeTracker struct {
	pending []*Signal
	seen    map[*Signal]struct{}
}

func newChangeTracker() *changeTracker {
	return &changeTracker{seen: make(map[*Signal]struct{})}
}

func (t *changeTracker) add(s *Signal) {
	if _, ok := t.seen[s]; ok {
		return
	}
	t.seen[s] = struct{}{}
	t.pending = append(t.pending, s)
}

// drain returns the pending set and clears it in one step. In the
// single-threaded model no listener can fire between the two, so no change
// is ever lost or double-counted.
func (t *changeTracker) drain() []*Signal {
	p := t.pending
	t.pending = nil
	t.seen = make(map[*Signal]struct{})
	return p
}

func (t *changeTracker) empty() bool { return len(t.pending) == 0 }

// A scheduler decides when accumulated changes are flushed to the trace.
// It holds the currently accumulating timestamp and, on each tick carrying
// a new time, flushes the previous one if anything changed. Deferring the
// decision to the tick boundary coalesces the many micro-updates a
// simulator makes within one instant into a single block.
type scheduler struct {
	t  uint64
	tr *changeTracker
	tw *traceWriter
}

// tick handles a clock-boundary notification carrying the current time.
func (sc *scheduler) tick(now uint64) error {
	if now == sc.t {
		return nil
	}
	if !sc.tr.empty() {
		if err := sc.tw.writeTimestampBlock(sc.t, sc.tr.drain()); err != nil {
			return err
		}
	}
	sc.t = now
	return nil
}

// finish handles the end-of-simulation notification. The final flush is
// forced: it fires even with an empty pending set, so an all-quiet final
// instant still emits its time marker.
func (sc *scheduler) finish(final uint64) error {
	return sc.tw.writeTimestampBlock(sc.t, sc.tr.drain())
}
