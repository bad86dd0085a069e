package utils

// FindIndex returns the index of item in slice, or -1 if absent.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Rotate returns a copy of slice with the first element moved to the end,
// e.g. [O X Y] -> [X Y O].
func Rotate[T any](slice []T) []T {
	if len(slice) < 2 {
		return append([]T(nil), slice...)
	}
	rotated := append([]T(nil), slice[1:]...)
	return append(rotated, slice[0])
}
