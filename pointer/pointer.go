package pointer

func FromAny[T any](v T) *T {
	return &v
}

// Or dereferences p, falling back to def when p is nil. Used by the API
// boundary to apply the documented defaults for omitted profile fields.
func Or[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
