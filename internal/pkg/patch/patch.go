package patch

// Coalesce dereferences p when it is set, otherwise returns def.
// Used to layer per-station overrides on top of configured defaults.
func Coalesce[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
