package utils

import (
	"regexp"
	"strconv"
)

var (
	rawIdRegex    = regexp.MustCompile(`^[0-9]+$`)
	digitRunRegex = regexp.MustCompile(`[0-9]+`)
)

// ParseRawId returns the number when the whole input is a bare numeric ID.
func ParseRawId(input string) (int, bool) {
	if !rawIdRegex.MatchString(input) {
		return 0, false
	}
	id, err := strconv.Atoi(input)
	if err != nil {
		return 0, false
	}
	return id, true
}

// FirstNumber returns the first run of digits in s, or 0.
func FirstNumber(s string) int {
	match := digitRunRegex.FindString(s)
	id, _ := strconv.Atoi(match)
	return id
}

// LastNumber returns the last run of digits in s, or 0.
func LastNumber(s string) int {
	matches := digitRunRegex.FindAllString(s, -1)
	if len(matches) == 0 {
		return 0
	}
	id, _ := strconv.Atoi(matches[len(matches)-1])
	return id
}

// NormalizeAccuracy turns a percentage into a 0-1 fraction.
// Fractions are returned unchanged.
func NormalizeAccuracy(accuracy float64) float64 {
	for accuracy > 1 {
		accuracy /= 100
	}
	return accuracy
}
