package grid

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// The page builder stores layout props as JSON/YAML documents where each
// field is either a scalar or a per-breakpoint mapping. A mapping is
// treated as per-breakpoint only when at least one key names a breakpoint;
// anything else decodes as a uniform value of T (which may itself be an
// object, e.g. Spacing). Unknown breakpoint keys inside a responsive
// mapping are skipped with a warning, never fatal.

// UnmarshalYAML decodes a scalar-or-mapping node into the tagged variant.
func (v *Value[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode && yamlHasBreakpointKey(node) {
		m := make(map[Breakpoint]T)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			b, err := ParseBreakpoint(keyNode.Value)
			if err != nil {
				logger().Warn("ignoring unknown breakpoint key",
					zap.String("key", keyNode.Value))
				continue
			}
			var t T
			if err := valNode.Decode(&t); err != nil {
				return fmt.Errorf("breakpoint %s: %w", b, err)
			}
			m[b] = t
		}
		*v = Value[T]{perBP: m}
		return nil
	}

	var t T
	if err := node.Decode(&t); err != nil {
		return err
	}
	*v = Uniform(t)
	return nil
}

// MarshalYAML emits the scalar for uniform values and a name-keyed mapping
// for per-breakpoint ones.
func (v Value[T]) MarshalYAML() (any, error) {
	if v.uniform != nil {
		return *v.uniform, nil
	}
	if len(v.perBP) == 0 {
		return nil, nil
	}
	m := make(map[string]T, len(v.perBP))
	for b, val := range v.perBP {
		m[b.String()] = val
	}
	return m, nil
}

// UnmarshalJSON mirrors the YAML rule for JSON documents.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err == nil && jsonHasBreakpointKey(raw) {
			m := make(map[Breakpoint]T)
			for k, rv := range raw {
				b, err := ParseBreakpoint(k)
				if err != nil {
					logger().Warn("ignoring unknown breakpoint key",
						zap.String("key", k))
					continue
				}
				var t T
				if err := json.Unmarshal(rv, &t); err != nil {
					return fmt.Errorf("breakpoint %s: %w", b, err)
				}
				m[b] = t
			}
			*v = Value[T]{perBP: m}
			return nil
		}
	}

	var t T
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	*v = Uniform(t)
	return nil
}

// MarshalJSON emits the scalar, a name-keyed object, or null when unset.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if v.uniform != nil {
		return json.Marshal(*v.uniform)
	}
	if len(v.perBP) == 0 {
		return []byte("null"), nil
	}
	m := make(map[string]T, len(v.perBP))
	for b, val := range v.perBP {
		m[b.String()] = val
	}
	return json.Marshal(m)
}

// IsZero lets encoding/json's omitzero drop unset values.
func (v Value[T]) IsZero() bool {
	return !v.IsSet()
}

func yamlHasBreakpointKey(node *yaml.Node) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if _, err := ParseBreakpoint(node.Content[i].Value); err == nil {
			return true
		}
	}
	return false
}

func jsonHasBreakpointKey(raw map[string]json.RawMessage) bool {
	for k := range raw {
		if _, err := ParseBreakpoint(k); err == nil {
			return true
		}
	}
	return false
}

type spacingDoc struct {
	X      *float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y      *float64 `yaml:"y,omitempty" json:"y,omitempty"`
	Top    *float64 `yaml:"top,omitempty" json:"top,omitempty"`
	Right  *float64 `yaml:"right,omitempty" json:"right,omitempty"`
	Bottom *float64 `yaml:"bottom,omitempty" json:"bottom,omitempty"`
	Left   *float64 `yaml:"left,omitempty" json:"left,omitempty"`
}

func (s *Spacing) fromDoc(d spacingDoc) error {
	if d.Top != nil || d.Right != nil || d.Bottom != nil || d.Left != nil {
		*s = Edges(deref(d.Top), deref(d.Right), deref(d.Bottom), deref(d.Left))
		return nil
	}
	if d.X != nil || d.Y != nil {
		*s = Axes(deref(d.X), deref(d.Y))
		return nil
	}
	return fmt.Errorf("grid: spacing object needs x/y or top/right/bottom/left keys")
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// UnmarshalYAML decodes a number, an {x, y} pair, or explicit edges.
func (s *Spacing) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var n float64
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("grid: invalid spacing: %w", err)
		}
		*s = Px(n)
		return nil
	}
	var d spacingDoc
	if err := node.Decode(&d); err != nil {
		return fmt.Errorf("grid: invalid spacing: %w", err)
	}
	return s.fromDoc(d)
}

// MarshalYAML is the inverse of UnmarshalYAML.
func (s Spacing) MarshalYAML() (any, error) {
	return s.doc(), nil
}

// UnmarshalJSON mirrors the YAML rule.
func (s *Spacing) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] != '{' {
		var n float64
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return fmt.Errorf("grid: invalid spacing: %w", err)
		}
		*s = Px(n)
		return nil
	}
	var d spacingDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("grid: invalid spacing: %w", err)
	}
	return s.fromDoc(d)
}

// MarshalJSON is the inverse of UnmarshalJSON.
func (s Spacing) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.doc())
}

func (s Spacing) doc() any {
	switch s.kind {
	case spacingAll:
		return s.all
	case spacingAxes:
		return spacingDoc{X: &s.x, Y: &s.y}
	case spacingEdges:
		return spacingDoc{Top: &s.top, Right: &s.right, Bottom: &s.bottom, Left: &s.left}
	default:
		return nil
	}
}
