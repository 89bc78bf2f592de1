package serialize

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrCyclic is returned when a document refers to itself.
	ErrCyclic = errors.New("serialize: cyclic structure")
	// ErrUnsupportedType is returned for Go values with no Value counterpart.
	ErrUnsupportedType = errors.New("serialize: unsupported type")
)

// Serialize renders v. Each entry of a Structure is written as an optional
// `"key":` prefix followed by the rendered value and a separator: ':' when
// useColonSeparator is set, ',' otherwise. The separator after the last entry
// is dropped.
//
// A Structure reached again while it is still being rendered, i.e. one that
// contains itself, is written as "" so rendering always terminates.
func Serialize(v Value, useColonSeparator bool) string {
	w := &writer{sep: ',', visiting: make(map[*Structure]bool)}
	if useColonSeparator {
		w.sep = ':'
	}
	w.value(v)
	return w.String()
}

type writer struct {
	strings.Builder
	sep      byte
	visiting map[*Structure]bool
}

func (w *writer) value(v Value) {
	switch val := v.(type) {
	case *Structure:
		w.structure(val)
	case Bool:
		w.WriteString(strconv.FormatBool(bool(val)))
	case Number:
		w.WriteString(formatNumber(float64(val)))
	case String:
		w.WriteString(strconv.Quote(string(val)))
	case nil:
		w.WriteString(`""`)
	}
}

func (w *writer) structure(s *Structure) {
	if w.visiting[s] {
		w.WriteString(`""`)
		return
	}
	if s != nil {
		w.visiting[s] = true
		defer delete(w.visiting, s)
	}
	w.WriteByte('{')
	if s != nil {
		for i, entry := range s.entries {
			if i > 0 {
				w.WriteByte(w.sep)
			}
			if entry.HasKey {
				w.WriteString(strconv.Quote(entry.Key))
				w.WriteByte(':')
			}
			w.value(entry.Value)
		}
	}
	w.WriteByte('}')
}

func formatNumber(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FromAny converts a decoded Go document into a Value. Maps with string keys
// become keyed Structures with keys in sorted order; slices and arrays become
// positional Structures. Integers, floats, bools and strings map to scalars.
// nil becomes an empty String.
func FromAny(v any) (Value, error) {
	return fromAny(reflect.ValueOf(v), make(map[uintptr]bool))
}

func fromAny(rv reflect.Value, visiting map[uintptr]bool) (Value, error) {
	if !rv.IsValid() {
		return String(""), nil
	}
	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return String(""), nil
		}
		return fromAny(rv.Elem(), visiting)
	case reflect.Pointer:
		if rv.IsNil() {
			return String(""), nil
		}
		return enter(rv, visiting, func() (Value, error) {
			return fromAny(rv.Elem(), visiting)
		})
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Number(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key %s", ErrUnsupportedType, rv.Type().Key())
		}
		return enter(rv, visiting, func() (Value, error) {
			keys := rv.MapKeys()
			sort.Slice(keys, func(i, j int) bool {
				return keys[i].String() < keys[j].String()
			})
			s := NewStructure()
			for _, k := range keys {
				child, err := fromAny(rv.MapIndex(k), visiting)
				if err != nil {
					return nil, err
				}
				s.Set(k.String(), child)
			}
			return s, nil
		})
	case reflect.Slice, reflect.Array:
		return enter(rv, visiting, func() (Value, error) {
			s := NewStructure()
			for i := 0; i < rv.Len(); i++ {
				child, err := fromAny(rv.Index(i), visiting)
				if err != nil {
					return nil, err
				}
				s.Append(child)
			}
			return s, nil
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
	}
}

// enter guards recursion into reference containers against cycles.
func enter(rv reflect.Value, visiting map[uintptr]bool, build func() (Value, error)) (Value, error) {
	if rv.Kind() == reflect.Array || (rv.Kind() == reflect.Slice && rv.Len() == 0) {
		return build()
	}
	ptr := rv.Pointer()
	if visiting[ptr] {
		return nil, ErrCyclic
	}
	visiting[ptr] = true
	defer delete(visiting, ptr)
	return build()
}

// FromYAML decodes a YAML (or JSON) document into a Value, keeping mapping
// keys in document order. Aliases are expanded; recursive aliases are
// rejected with ErrCyclic.
func FromYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if doc.Kind == 0 {
		return NewStructure(), nil
	}
	return fromNode(&doc, make(map[*yaml.Node]bool))
}

func fromNode(node *yaml.Node, visiting map[*yaml.Node]bool) (Value, error) {
	if visiting[node] {
		return nil, ErrCyclic
	}
	visiting[node] = true
	defer delete(visiting, node)

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return NewStructure(), nil
		}
		return fromNode(node.Content[0], visiting)
	case yaml.AliasNode:
		return fromNode(node.Alias, visiting)
	case yaml.MappingNode:
		s := NewStructure()
		for i := 0; i+1 < len(node.Content); i += 2 {
			child, err := fromNode(node.Content[i+1], visiting)
			if err != nil {
				return nil, err
			}
			s.Set(node.Content[i].Value, child)
		}
		return s, nil
	case yaml.SequenceNode:
		s := NewStructure()
		for _, item := range node.Content {
			child, err := fromNode(item, visiting)
			if err != nil {
				return nil, err
			}
			s.Append(child)
		}
		return s, nil
	case yaml.ScalarNode:
		return fromScalar(node)
	default:
		return nil, fmt.Errorf("%w: yaml node kind %d", ErrUnsupportedType, node.Kind)
	}
}

func fromScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		return Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, err
		}
		return Number(f), nil
	case "!!null":
		return String(""), nil
	default:
		return String(node.Value), nil
	}
}
