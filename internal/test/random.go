package test

import (
	"math"
	"math/rand"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomASCIIString returns a pseudo-random ASCII string within the provided bounds.
// When maxLen equals minLen the resulting string always has that exact length.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen + rand.Intn(maxLen-minLen+1)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = asciiLetters[rand.Intn(len(asciiLetters))]
	}
	return string(buf)
}

// RandomPrice returns a non-negative price in [0, max] rounded to cents.
func RandomPrice(max float64) float64 {
	return math.Round(rand.Float64()*max*100) / 100
}
