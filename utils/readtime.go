package utils

import (
	"math"
	"strings"
)

// readingSpeed is the assumed words-per-minute of an average reader.
const readingSpeed = 200

// EstimateReadTime returns the estimated reading time of the body in whole
// minutes: 0 when the body contains no words, otherwise at least 1.
func EstimateReadTime(body string) int {
	words := len(strings.Fields(body))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / readingSpeed))
}

// NormalizePrice rounds a price to two decimal places.
func NormalizePrice(price float64) float64 {
	return math.Round(price*100) / 100
}
