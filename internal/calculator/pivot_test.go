package calculator

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculatePivots_Example(t *testing.T) {
	pv := CalculatePivots(110, 90, 100)

	if !almostEqual(pv.P, 100) {
		t.Errorf("P: expected 100, got %v", pv.P)
	}
	if !almostEqual(pv.S1, 90) {
		t.Errorf("S1: expected 90, got %v", pv.S1)
	}
	if !almostEqual(pv.S2, 80) {
		t.Errorf("S2: expected 80, got %v", pv.S2)
	}
	if !almostEqual(pv.R1, 110) {
		t.Errorf("R1: expected 110, got %v", pv.R1)
	}
	if !almostEqual(pv.R2, 120) {
		t.Errorf("R2: expected 120, got %v", pv.R2)
	}
}

func TestCalculatePivots_AlgebraicIdentities(t *testing.T) {
	cases := []struct {
		h, l, c float64
	}{
		{110, 90, 100},
		{5823.52, 5791.13, 5815.03},
		{1.2345, 1.2001, 1.2222},
		{100, 100, 100}, // flat bar
		{0.03, 0.01, 0.02},
	}
	for _, tt := range cases {
		pv := CalculatePivots(tt.h, tt.l, tt.c)

		if !almostEqual(pv.P, (tt.h+tt.l+tt.c)/3) {
			t.Errorf("(%v,%v,%v): P mismatch: %v", tt.h, tt.l, tt.c, pv.P)
		}
		// S1 + R1 == 4P - h - l
		if !almostEqual(pv.S1+pv.R1, 4*pv.P-tt.h-tt.l) {
			t.Errorf("(%v,%v,%v): S1+R1 identity violated", tt.h, tt.l, tt.c)
		}
		// R2 - S2 == 2*(h-l)
		if !almostEqual(pv.R2-pv.S2, 2*(tt.h-tt.l)) {
			t.Errorf("(%v,%v,%v): R2-S2 identity violated", tt.h, tt.l, tt.c)
		}
	}
}

func TestCalculateChangePct(t *testing.T) {
	tests := []struct {
		name        string
		close, prev float64
		want        float64
	}{
		{"five percent up", 100, 95, (100.0 - 95.0) / 95.0 * 100},
		{"down", 95, 100, -5},
		{"flat", 100, 100, 0},
		{"zero prev close", 100, 0, 0},
		{"near-zero prev close", 100, 1e-13, 0},
		{"negative prev close", 95, -100, -1.95},
	}
	for _, tt := range tests {
		got := CalculateChangePct(tt.close, tt.prev)
		if !almostEqual(got, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestCalculateChangePct_ExampleRounding(t *testing.T) {
	got := Round2(CalculateChangePct(100, 95))
	if got != 5.26 {
		t.Errorf("expected 5.26, got %v", got)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.014, 1.01},
		{99.999, 100},
		{5.2631578, 5.26},
		{-2.346, -2.35},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
