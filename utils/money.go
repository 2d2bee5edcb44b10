package utils

import "math"

// Round2 rounds to 2 decimal places. Applied at presentation time only;
// internal pricing math stays unrounded to avoid compounding error.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
