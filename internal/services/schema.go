package services

import "strings"

// Kind is the expected value kind of a schema field.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindStringList
	KindObject
	KindObjectList
)

// Field declares one required field of a task schema: its expected kind, the
// deterministic default substituted when the model omitted or mistyped it, and
// optional bounds or nested schemas.
//
// Default may be a literal, a []string (copied per use), a func() any, or a
// func(index int) any — the index form produces numbered defaults for list
// elements ("Question 3 about ...").
type Field struct {
	Kind    Kind
	Default any
	// Bounded numeric fields outside [Min, Max] are replaced by Default, not
	// clamped: a wildly wrong value must not be laundered into a plausible
	// boundary number.
	Bounded  bool
	Min, Max float64
	// MinLen applies to KindStringList: shorter lists are replaced wholesale
	// by Default.
	MinLen int
	// Elem is the per-element schema for KindObjectList.
	Elem Schema
	// Nested is the schema for KindObject.
	Nested Schema
}

// Schema is a declarative required-field table for one task. Normalize walks a
// parsed model response against it and back-fills every missing or ill-typed
// field, so the result is always schema-complete. It is total: no input can
// make it fail, and it never calls the generation service.
type Schema map[string]Field

// Normalize returns a schema-complete map built from v, which may be anything
// the parser produced, including nil.
func (s Schema) Normalize(v any) map[string]any {
	m, ok := v.(map[string]any)
	if !ok {
		m = map[string]any{}
	}
	return s.normalizeMap(m, 0)
}

func (s Schema) normalizeMap(m map[string]any, index int) map[string]any {
	for name, field := range s {
		m[name] = field.normalizeValue(m[name], index)
	}
	return m
}

func (f Field) normalizeValue(v any, index int) any {
	switch f.Kind {
	case KindString:
		if str, ok := v.(string); ok && strings.TrimSpace(str) != "" {
			return str
		}
		return f.resolveDefault(index)

	case KindNumber:
		n, ok := toFloat(v)
		if !ok {
			return f.resolveDefault(index)
		}
		if f.Bounded && (n < f.Min || n > f.Max) {
			return f.resolveDefault(index)
		}
		return n

	case KindBool:
		if b, ok := v.(bool); ok {
			return b
		}
		// Models often quote booleans; keep the stated value instead of
		// falling back to the default.
		if str, ok := v.(string); ok {
			switch strings.ToLower(strings.TrimSpace(str)) {
			case "true":
				return true
			case "false":
				return false
			}
		}
		return f.resolveDefault(index)

	case KindStringList:
		list, ok := v.([]any)
		if !ok {
			return f.resolveDefault(index)
		}
		out := make([]any, 0, len(list))
		for _, el := range list {
			if str, isStr := el.(string); isStr && strings.TrimSpace(str) != "" {
				out = append(out, str)
			}
		}
		if len(out) < f.MinLen {
			return f.resolveDefault(index)
		}
		return out

	case KindObject:
		return f.Nested.Normalize(v)

	case KindObjectList:
		list, ok := v.([]any)
		if !ok {
			return f.resolveDefault(index)
		}
		out := make([]any, 0, len(list))
		for i, el := range list {
			elMap, isMap := el.(map[string]any)
			if !isMap {
				elMap = map[string]any{}
			}
			out = append(out, f.Elem.normalizeMap(elMap, i))
		}
		return out
	}
	return v
}

func (f Field) resolveDefault(index int) any {
	switch d := f.Default.(type) {
	case nil:
		return f.zero()
	case func(int) any:
		return d(index)
	case func() any:
		return d()
	case []string:
		out := make([]any, 0, len(d))
		for _, s := range d {
			out = append(out, s)
		}
		return out
	default:
		return d
	}
}

// zero is the kind's empty value, used when a field declares no default.
func (f Field) zero() any {
	switch f.Kind {
	case KindString:
		return ""
	case KindNumber:
		return float64(0)
	case KindBool:
		return false
	case KindStringList, KindObjectList:
		return []any{}
	case KindObject:
		return f.Nested.Normalize(nil)
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
