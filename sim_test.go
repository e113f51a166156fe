package wavedump_test

import (
	"testing"

	"wavedump"

	"github.com/pkg/errors"
)

func TestSimulator_stepOrder(t *testing.T) {
	top := wavedump.NewModule("top")
	sim := wavedump.NewSimulator(top)
	var order []string
	sim.AtTick(func(now uint64) error {
		order = append(order, "tick")
		return nil
	})
	if err := sim.At(0, func() { order = append(order, "event") }); err != nil {
		t.Fatal(err)
	}
	sim.AddProcess(func(s *wavedump.Simulator) { order = append(order, "proc") })
	if err := sim.Step(); err != nil {
		t.Fatal(err)
	}
	want := []string{"tick", "event", "proc"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if sim.Now() != 1 {
		t.Fatalf("Now() = %d, want 1", sim.Now())
	}
}

func TestSimulator_eventTiming(t *testing.T) {
	top := wavedump.NewModule("top")
	sim := wavedump.NewSimulator(top)
	var fired uint64
	if err := sim.At(3, func() { fired = sim.Now() }); err != nil {
		t.Fatal(err)
	}
	if err := sim.RunUntil(5); err != nil {
		t.Fatal(err)
	}
	if fired != 3 {
		t.Fatalf("event fired at %d, want 3", fired)
	}
}

func TestSimulator_pastEvent(t *testing.T) {
	top := wavedump.NewModule("top")
	sim := wavedump.NewSimulator(top)
	if err := sim.Run(2); err != nil {
		t.Fatal(err)
	}
	if err := sim.At(1, func() {}); err == nil {
		t.Fatal("expected error scheduling past event")
	}
}

func TestSimulator_tickErrorAbortsStep(t *testing.T) {
	top := wavedump.NewModule("top")
	sim := wavedump.NewSimulator(top)
	boom := errors.New("boom")
	sim.AtTick(func(now uint64) error { return boom })
	ran := false
	sim.AddProcess(func(s *wavedump.Simulator) { ran = true })
	if err := sim.Step(); err != boom {
		t.Fatalf("Step() = %v, want boom", err)
	}
	if ran {
		t.Fatal("process ran after tick error")
	}
	if sim.Now() != 0 {
		t.Fatalf("time advanced after aborted step: %d", sim.Now())
	}
}

func TestSimulator_finish(t *testing.T) {
	top := wavedump.NewModule("top")
	sim := wavedump.NewSimulator(top)
	var final uint64
	sim.AtFinish(func(f uint64) error {
		final = f
		return nil
	})
	if err := sim.Run(4); err != nil {
		t.Fatal(err)
	}
	if err := sim.Finish(); err != nil {
		t.Fatal(err)
	}
	if final != 4 {
		t.Fatalf("final time = %d, want 4", final)
	}
	if err := sim.Step(); err == nil {
		t.Fatal("expected error stepping after Finish")
	}
	if err := sim.Finish(); err == nil {
		t.Fatal("expected error finishing twice")
	}
}
