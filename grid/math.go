package grid

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// DefaultColumns is the grid width used across the designer.
const DefaultColumns = 24

// IsValidSpan reports whether span is an acceptable column count for a
// grid of total columns.
func IsValidSpan(span, total int) bool {
	return span >= 1 && span <= total
}

// IsValidOffset reports whether offset is an acceptable leading-column
// count for a grid of total columns.
func IsValidOffset(offset, total int) bool {
	return offset >= 0 && offset < total
}

// ClampSpan forces span into 1..total. Out-of-range input clamps to full
// width: layout code runs inside a live editor where transient invalid
// states occur mid-drag, so rendering something always beats failing.
func ClampSpan(span, total int) int {
	if IsValidSpan(span, total) {
		return span
	}
	logger().Warn("span out of range, clamping to full width",
		zap.Int("span", span), zap.Int("totalColumns", total), zap.Error(ErrInvalidSpan))
	return total
}

// ClampOffset forces offset into 0..total-1, clamping violations to zero.
func ClampOffset(offset, total int) int {
	if IsValidOffset(offset, total) {
		return offset
	}
	logger().Warn("offset out of range, clamping to zero",
		zap.Int("offset", offset), zap.Int("totalColumns", total), zap.Error(ErrInvalidOffset))
	return 0
}

// ColumnWidthPercent converts a span into a percentage of the grid width.
func ColumnWidthPercent(span, total int) float64 {
	span = ClampSpan(span, total)
	return float64(span) / float64(total) * 100
}

// ColumnOffsetPercent converts an offset into a percentage of the grid width.
func ColumnOffsetPercent(offset, total int) float64 {
	offset = ClampOffset(offset, total)
	return float64(offset) / float64(total) * 100
}

// ColumnStyles derives the width fragment for a grid item: flex-basis and
// max-width from the span, plus margin-left only when the offset is nonzero.
func ColumnStyles(span, offset, total int) Style {
	width := Percent(ColumnWidthPercent(span, total))
	s := Style{
		FlexBasis: width,
		MaxWidth:  width,
	}
	if p := ColumnOffsetPercent(offset, total); p > 0 {
		s.MarginLeft = Percent(p)
	}
	return s
}

// Percent formats a percentage for CSS output, trimming insignificant
// trailing zeros: 50 -> "50%", 100/24*1 -> "4.166667%".
func Percent(p float64) string {
	s := strconv.FormatFloat(p, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s + "%"
}
