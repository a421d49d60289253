package grid

// Resolve collapses a responsive value to the concrete scalar for the given
// current breakpoint under cfg.Strategy. A uniform value short-circuits
// before any breakpoint scan. ErrNoValue is returned only when the mapping
// is completely empty and the configured fallback carries no entry; callers
// should substitute the field's own default (see ResolveOr) rather than
// propagating it.
func Resolve[T any](v Value[T], current Breakpoint, cfg AdaptationConfig) (T, error) {
	var zero T
	if v.IsUniform() {
		val, _ := v.At(current)
		return val, nil
	}
	if !current.Valid() {
		return zero, ErrInvalidBreakpoint
	}

	switch cfg.Strategy {
	case DesktopFirst:
		// Scan upward from current; smaller breakpoints never leak in.
		for b := current; b <= Desktop; b++ {
			if val, ok := v.At(b); ok {
				return val, nil
			}
		}
	case Closest:
		// Nearest defined breakpoint by ordinal distance. The ascending
		// scan with a strict improvement test makes the smaller
		// breakpoint win a distance tie, deterministically.
		found := false
		var best T
		bestDist := numBreakpoints
		for _, b := range Order() {
			val, ok := v.At(b)
			if !ok {
				continue
			}
			dist := int(b - current)
			if dist < 0 {
				dist = -dist
			}
			if dist < bestDist {
				found, best, bestDist = true, val, dist
			}
		}
		if found {
			return best, nil
		}
	default: // MobileFirst
		// Scan downward toward the base.
		for b := current; b >= Mobile; b-- {
			if val, ok := v.At(b); ok {
				return val, nil
			}
		}
	}

	// Strategy scan found nothing: configured fallback breakpoint first.
	if cfg.Fallback.Valid() {
		if val, ok := v.At(cfg.Fallback); ok {
			return val, nil
		}
	}

	// Last resort: first defined value in the strategy's natural order.
	order := Order()
	if cfg.Strategy == DesktopFirst {
		order = []Breakpoint{Desktop, Tablet, Mobile}
	}
	for _, b := range order {
		if val, ok := v.At(b); ok {
			return val, nil
		}
	}
	return zero, ErrNoValue
}

// ResolveOr is Resolve with a caller-supplied default for the unset and
// empty-mapping cases. This is the form most call sites want.
func ResolveOr[T any](v Value[T], current Breakpoint, cfg AdaptationConfig, def T) T {
	if !v.IsSet() {
		return def
	}
	val, err := Resolve(v, current, cfg)
	if err != nil {
		return def
	}
	return val
}
