// Package core provides fundamental types and utilities for riverrun.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Mod returns a mod n with a non-negative result for any a and positive n.
// Used for ring-buffer row indexing where raw % misbehaves on negatives.
func Mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
