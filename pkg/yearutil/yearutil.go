// Package yearutil converts between absolute calendar years and the engine's
// relative year offsets. The engine itself never performs this conversion;
// every boundary does it here with an explicit current-year reference.
package yearutil

// Offset returns the relative year offset of an absolute calendar year
// (0 = current year). Negative offsets denote past years.
func Offset(currentYear, absoluteYear int) int {
	return absoluteYear - currentYear
}

// Absolute converts a relative offset back to a calendar year.
func Absolute(currentYear, offset int) int {
	return currentYear + offset
}

// InPast reports whether an absolute calendar year lies before the reference.
func InPast(currentYear, absoluteYear int) bool {
	return absoluteYear < currentYear
}
