package grid

import "fmt"

// Issue is one validation finding, attributed to a field and, for
// per-breakpoint values, the breakpoint it occurred at.
type Issue struct {
	Field      string `json:"field"`
	Breakpoint string `json:"breakpoint,omitempty"`
	Message    string `json:"message"`
}

func (i Issue) String() string {
	if i.Breakpoint != "" {
		return i.Field + "[" + i.Breakpoint + "]: " + i.Message
	}
	return i.Field + ": " + i.Message
}

// Report aggregates every finding for a property bag. Range violations are
// collected rather than failed fast so a property panel can surface all
// problems at once. Warnings never affect Valid.
type Report struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
}

// ValidateGridProps checks every defined span and offset entry against the
// grid bounds and flags span+offset overflow as a warning. The engine still
// renders invalid props (clamped); this report exists for editor surfaces.
func ValidateGridProps(props GridSpanProps, total int) Report {
	if total <= 0 {
		total = DefaultColumns
	}
	r := Report{Valid: true}

	checkInt(&r, "span", props.Span, func(v int) string {
		if !IsValidSpan(v, total) {
			return fmt.Sprintf("span %d outside 1..%d", v, total)
		}
		return ""
	})
	checkInt(&r, "offset", props.Offset, func(v int) string {
		if !IsValidOffset(v, total) {
			return fmt.Sprintf("offset %d outside 0..%d", v, total-1)
		}
		return ""
	})

	// Overflow is warning-level: transient drag states routinely break
	// span+offset <= total and the render path clamps anyway.
	if props.Span.IsUniform() && props.Offset.IsUniform() {
		span, _ := props.Span.At(Mobile)
		offset, _ := props.Offset.At(Mobile)
		if span+offset > total {
			r.Warnings = append(r.Warnings, Issue{
				Field:   "span",
				Message: fmt.Sprintf("span %d + offset %d exceeds %d columns", span, offset, total),
			})
		}
	} else if props.Span.IsSet() && props.Offset.IsSet() {
		for _, b := range Order() {
			span, okS := props.Span.At(b)
			offset, okO := props.Offset.At(b)
			if okS && okO && span+offset > total {
				r.Warnings = append(r.Warnings, Issue{
					Field:      "span",
					Breakpoint: b.String(),
					Message:    fmt.Sprintf("span %d + offset %d exceeds %d columns", span, offset, total),
				})
			}
		}
	}

	r.Valid = len(r.Errors) == 0
	return r
}

// checkInt runs a bounds predicate over every defined entry of an int value.
func checkInt(r *Report, field string, v Value[int], check func(int) string) {
	if !v.IsSet() {
		return
	}
	if v.IsUniform() {
		val, _ := v.At(Mobile)
		if msg := check(val); msg != "" {
			r.Errors = append(r.Errors, Issue{Field: field, Message: msg})
		}
		return
	}
	for _, b := range v.Breakpoints() {
		val, _ := v.At(b)
		if msg := check(val); msg != "" {
			r.Errors = append(r.Errors, Issue{Field: field, Breakpoint: b.String(), Message: msg})
		}
	}
}
