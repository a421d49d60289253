package grid

import (
	"strconv"
	"strings"
)

// Class-list output mode. Unlike ItemStyle, this mode never resolves a
// current breakpoint: it emits classes for every breakpoint present in the
// props and lets the CSS framework's media queries pick at paint time. The
// mobile (default) breakpoint emits an unprefixed class, larger breakpoints
// emit "{breakpoint}:{class}". Arbitrary values use the bracket syntax with
// spaces folded to underscores.

// ItemClasses emits utility classes for a grid item, deterministically
// ordered by property then ascending breakpoint.
func ItemClasses(props GridSpanProps, total int) []string {
	if total <= 0 {
		total = DefaultColumns
	}
	var out []string

	emit(&out, props.Span, func(span int) string {
		return "col-span-" + strconv.Itoa(ClampSpan(span, total))
	})
	emit(&out, props.Offset, func(offset int) string {
		return "col-offset-" + strconv.Itoa(ClampOffset(offset, total))
	})
	emit(&out, props.Order, func(order int) string {
		return "order-" + strconv.Itoa(order)
	})
	emitHidden(&out, props.Hidden)
	emit(&out, props.Flex, func(flex string) string {
		if flex == "" {
			return ""
		}
		return "flex-" + arbitrary(flex)
	})
	emit(&out, props.FlexGrow, growClass)
	emit(&out, props.FlexShrink, shrinkClass)
	emit(&out, props.FlexBasis, func(basis string) string {
		if basis == "" {
			return ""
		}
		return "basis-" + arbitrary(basis)
	})
	emit(&out, props.AlignSelf, func(a AlignSelf) string {
		return "self-" + string(a.Normalize())
	})

	return out
}

// Classes is ItemClasses joined with spaces, ready for a class attribute.
func Classes(props GridSpanProps, total int) string {
	return strings.Join(ItemClasses(props, total), " ")
}

// ContainerClasses emits utility classes for a row or container element.
func ContainerClasses(props ContainerProps) []string {
	out := []string{"flex"}

	emit(&out, props.Direction, func(dir string) string {
		switch dir {
		case "column":
			return "flex-col"
		case "row-reverse":
			return "flex-row-reverse"
		case "column-reverse":
			return "flex-col-reverse"
		case "row":
			return "flex-row"
		default:
			return ""
		}
	})
	emit(&out, props.Justify, func(j string) string {
		if j == "" {
			return ""
		}
		return "justify-" + j
	})
	emit(&out, props.Align, func(a string) string {
		if a == "" {
			return ""
		}
		return "items-" + a
	})
	emit(&out, props.Wrap, func(wrap bool) string {
		if wrap {
			return "flex-wrap"
		}
		return "flex-nowrap"
	})
	emit(&out, props.Gutter, func(g int) string {
		if g <= 0 {
			return ""
		}
		return "gap-[" + strconv.Itoa(g) + "px]"
	})
	emit(&out, props.Padding, func(s Spacing) string {
		if !s.IsSet() {
			return ""
		}
		return "p-" + arbitrary(s.CSS())
	})
	emit(&out, props.Margin, func(s Spacing) string {
		if !s.IsSet() {
			return ""
		}
		return "m-" + arbitrary(s.CSS())
	})

	return out
}

// emit appends one class per defined breakpoint. A uniform value produces a
// single unprefixed class; cls may return "" to skip.
func emit[T any](out *[]string, v Value[T], cls func(T) string) {
	if !v.IsSet() {
		return
	}
	if v.IsUniform() {
		val, _ := v.At(Mobile)
		if c := cls(val); c != "" {
			*out = append(*out, c)
		}
		return
	}
	for _, b := range v.Breakpoints() {
		val, _ := v.At(b)
		c := cls(val)
		if c == "" {
			continue
		}
		*out = append(*out, prefix(b)+c)
	}
}

// emitHidden handles visibility. A uniform hidden=false emits nothing, but
// in a per-breakpoint mapping false must emit "block" so a larger
// breakpoint can re-show an element hidden at a smaller one.
func emitHidden(out *[]string, v Value[bool]) {
	if !v.IsSet() {
		return
	}
	if v.IsUniform() {
		if hidden, _ := v.At(Mobile); hidden {
			*out = append(*out, "hidden")
		}
		return
	}
	for _, b := range v.Breakpoints() {
		hidden, _ := v.At(b)
		if hidden {
			*out = append(*out, prefix(b)+"hidden")
		} else {
			*out = append(*out, prefix(b)+"block")
		}
	}
}

func prefix(b Breakpoint) string {
	if b == Mobile {
		return ""
	}
	return b.String() + ":"
}

func growClass(g float64) string {
	switch g {
	case 1:
		return "grow"
	case 0:
		return "grow-0"
	default:
		return "grow-[" + formatNumber(g) + "]"
	}
}

func shrinkClass(s float64) string {
	switch s {
	case 1:
		return "shrink"
	case 0:
		return "shrink-0"
	default:
		return "shrink-[" + formatNumber(s) + "]"
	}
}

// arbitrary wraps a raw CSS value in the arbitrary-value bracket syntax.
func arbitrary(v string) string {
	return "[" + strings.ReplaceAll(v, " ", "_") + "]"
}
