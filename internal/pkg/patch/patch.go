package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Of returns a pointer to a copy of v, for optional request fields.
func Of[T any](v T) *T {
	return &v
}
