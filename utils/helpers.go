package utils

import "math"

// FloatEquals is an approximate comparison; the optional argument overrides the default variance of 0.001.
func FloatEquals(a float64, b float64, inputVariance ...float64) bool {
	variance := 0.001
	if len(inputVariance) >= 1 {
		variance = inputVariance[0]
	}
	return math.Abs(a-b) < variance
}

// CountTrue returns how many entries of the mask are set.
func CountTrue(mask []bool) (n int) {
	for _, b := range mask {
		if b {
			n++
		}
	}
	return n
}
