package report

import (
	"math"
	"strconv"
	"strings"
)

// formatAverage renders f as the shortest decimal that round-trips. Whole
// numbers keep a ".0" suffix; magnitudes of 1e16 and above, or below 1e-4,
// switch to exponent notation.
func formatAverage(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if f != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatInt(i int) string {
	return strconv.Itoa(i)
}
