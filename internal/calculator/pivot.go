package calculator

import (
	"math"

	"PivotPeers/internal/model"
)

// epsilon guards the percent-change division for zero or near-zero previous
// closes (newly listed or data-anomalous symbols).
const epsilon = 1e-12

// CalculatePivots computes the standard floor-trader pivot levels from a
// bar's high, low and close:
//
//	P  = (H + L + C) / 3
//	S1 = 2P - H    R1 = 2P - L
//	S2 = P - (H-L) R2 = P + (H-L)
func CalculatePivots(high, low, close float64) model.PivotLevels {
	p := (high + low + close) / 3

	return model.PivotLevels{
		P:  p,
		S1: 2*p - high,
		R1: 2*p - low,
		S2: p - (high - low),
		R2: p + (high - low),
	}
}

// CalculateChangePct returns the percent change from prevClose to close.
// Returns 0 when prevClose is zero within epsilon.
func CalculateChangePct(close, prevClose float64) float64 {
	if math.Abs(prevClose) <= epsilon {
		return 0
	}
	return (close - prevClose) / prevClose * 100
}

// Round2 rounds a value to 2 decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
