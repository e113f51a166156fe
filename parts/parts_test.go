package parts_test

import (
	"testing"

	"wavedump"
	"wavedump/parts"
)

func TestToggle(t *testing.T) {
	top := wavedump.NewModule("top")
	sim := wavedump.NewSimulator(top)
	clk := parts.Toggle(sim, top, "clk")
	if err := top.Build(); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 4; i++ {
		if err := sim.Step(); err != nil {
			t.Fatal(err)
		}
		if want := i%2 == 1; clk.Bool() != want {
			t.Fatalf("after %d steps clk = %v, want %v", i, clk.Bool(), want)
		}
	}
}

func TestCounter(t *testing.T) {
	top := wavedump.NewModule("top")
	sim := wavedump.NewSimulator(top)
	cnt := parts.Counter(sim, top, "cnt", 3)
	if err := top.Build(); err != nil {
		t.Fatal(err)
	}
	if err := sim.Run(10); err != nil {
		t.Fatal(err)
	}
	// 3-bit counter wraps at 8
	if cnt.Uint64() != 2 {
		t.Fatalf("cnt = %d, want 2", cnt.Uint64())
	}
}

func TestRegister(t *testing.T) {
	top := wavedump.NewModule("top")
	sim := wavedump.NewSimulator(top)
	clk := parts.Toggle(sim, top, "clk")
	q := parts.Register(sim, top, "q", clk)
	if err := top.Build(); err != nil {
		t.Fatal(err)
	}
	prev := clk.Bool()
	for i := 0; i < 6; i++ {
		if err := sim.Step(); err != nil {
			t.Fatal(err)
		}
		if q.Bool() != prev {
			t.Fatalf("step %d: q = %v, want %v", i, q.Bool(), prev)
		}
		prev = clk.Bool()
	}
}

func TestGates(t *testing.T) {
	top := wavedump.NewModule("top")
	sim := wavedump.NewSimulator(top)
	a := top.Signal("a", 1)
	b := top.Signal("b", 1)
	and := parts.And(sim, top, "and", a, b)
	or := parts.Or(sim, top, "or", a, b)
	xor := parts.Xor(sim, top, "xor", a, b)
	not := parts.Not(sim, top, "not", a)
	if err := top.Build(); err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		a, b, and, or, xor, not bool
	}{
		{false, false, false, false, false, true},
		{true, false, false, true, true, false},
		{false, true, false, true, true, true},
		{true, true, true, true, false, false},
	} {
		a.SetBool(tc.a)
		b.SetBool(tc.b)
		if err := sim.Step(); err != nil {
			t.Fatal(err)
		}
		if and.Bool() != tc.and || or.Bool() != tc.or || xor.Bool() != tc.xor || not.Bool() != tc.not {
			t.Fatalf("a=%v b=%v: and=%v or=%v xor=%v not=%v",
				tc.a, tc.b, and.Bool(), or.Bool(), xor.Bool(), not.Bool())
		}
	}
}
