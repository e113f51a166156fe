package names_test

import (
	"testing"

	"wavedump/internal/names"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"clk", "clk"},
		{"data_bus", "data_bus"},
		{"a b", "a_b"},
		{"a-b", "a_b"},
		{"bus[3]", "bus_3_"},
		{"2nd", "_2nd"},
		{"", "_"},
		{"éclair", "_clair"},
		{"_x9", "_x9"},
	}
	for _, tc := range tests {
		if got := names.Sanitize(tc.in); got != tc.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitize_pure(t *testing.T) {
	for _, n := range []string{"a b", "x", ""} {
		if names.Sanitize(n) != names.Sanitize(n) {
			t.Fatalf("Sanitize(%q) not deterministic", n)
		}
	}
}
