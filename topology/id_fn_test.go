package topology_test

import (
	"testing"

	"github.com/compactroute/engine/topology"
)

// TestIDFns verifies each IDFn implementation both for correct outputs on valid inputs
// and for panics on invalid inputs. Uses table-driven subtests for clarity and completeness.
func TestIDFns(t *testing.T) {
	t.Parallel() // allow this test to run in parallel with other tests

	// define a table of test cases for all IDFn implementations
	tests := []struct {
		name        string       // subtest name
		fn          topology.IDFn // the ID function under test
		input       int          // input index to pass to the IDFn
		want        string       // expected output string (if no panic)
		shouldPanic bool         // whether the call should panic
	}{
		// DefaultIDFn: decimal conversion, never panics
		{"DefaultIDFn_zero", topology.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", topology.DefaultIDFn, 123, "123", false},

		// SymbolIDFn: uppercase letters Aâ€“Z, panics out of range
		{"SymbolIDFn_min", topology.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", topology.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_neg", topology.SymbolIDFn, -1, "", true},
		{"SymbolIDFn_tooHigh", topology.SymbolIDFn, 26, "", true},

		// AlphanumericIDFn: base-36 encoding, panics on negative
		{"AlphanumericIDFn_zero", topology.AlphanumericIDFn, 0, "0", false},
		{"AlphanumericIDFn_low", topology.AlphanumericIDFn, 10, "a", false},
		{"AlphanumericIDFn_high", topology.AlphanumericIDFn, 35, "z", false},
		{"AlphanumericIDFn_neg", topology.AlphanumericIDFn, -5, "", true},

		// ExcelColumnIDFn: Excel-style columns, panics on negative
		{"ExcelColumnIDFn_zero", topology.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_endSingle", topology.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_startDouble", topology.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_ZZ", topology.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumnIDFn_AAA", topology.ExcelColumnIDFn, 702, "AAA", false},
		{"ExcelColumnIDFn_neg", topology.ExcelColumnIDFn, -1, "", true},

		// HexIDFn: hexadecimal encoding, panics on negative
		{"HexIDFn_zero", topology.HexIDFn, 0, "0", false},
		{"HexIDFn_ten", topology.HexIDFn, 10, "a", false},
		{"HexIDFn_neg", topology.HexIDFn, -2, "", true},
	}

	// iterate over each test case in the table
	var got string
	for _, tc := range tests {
		tc := tc // capture the current value for the parallel subtest
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel() // allow subtests to run in parallel
			if tc.shouldPanic {
				// verify that the function panics for invalid input
				topology.AssertPanics(t, func() { tc.fn(tc.input) }, "")
			} else {
				// call the IDFn and compare its output to the expected string
				got = tc.fn(tc.input)
				if got != tc.want {
					t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
				}
			}
		})
	}
}
