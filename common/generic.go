package common

// There's no standard library package to deal with slices [grumble grumble]

// Contains returns whether `v` is in `slice`.
func Contains[T comparable](slice []T, v T) bool {
	for i := range slice {
		if slice[i] == v {
			return true
		}
	}
	return false
}

// Remove returns a new slice with every occurrence of `v` removed.
// The input slice is not modified.
func Remove[T comparable](slice []T, v T) []T {
	out := make([]T, 0, len(slice))
	for i := range slice {
		if slice[i] != v {
			out = append(out, slice[i])
		}
	}
	return out
}

// Prepend inserts `v` at the front of `slice`, dropping elements from the back so the result is at most `max` long.
// The input slice is not modified.
func Prepend[T any](slice []T, v T, max int) []T {
	n := len(slice) + 1
	if n > max {
		n = max
	}

	out := make([]T, 0, n)
	out = append(out, v)
	for i := 0; len(out) < n; i++ {
		out = append(out, slice[i])
	}
	return out
}
