package serialize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	nested := NewStructure().
		Set("name", String("req")).
		Set("ok", Bool(false)).
		Set("tags", NewStructure().Append(String("a")).Append(Number(2)))

	tests := []struct {
		name  string
		value Value
		colon bool
		want  string
	}{
		{"flat comma", NewStructure().Set("a", Number(1)).Set("b", Bool(true)), false, `{"a":1,"b":true}`},
		{"flat colon", NewStructure().Set("a", Number(1)).Set("b", Bool(true)), true, `{"a":1:"b":true}`},
		{"positional entries have no key", NewStructure().Append(String("x")).Append(Number(1.5)), false, `{"x",1.5}`},
		{"nested", nested, false, `{"name":"req","ok":false,"tags":{"a",2}}`},
		{"empty structure", NewStructure(), false, `{}`},
		{"scalar string", String("hi"), false, `"hi"`},
		{"negative number", Number(-3), false, `-3`},
		{"mixed keys", NewStructure().Append(String("p")).Set("k", String("v")), true, `{"p":"k":"v"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Serialize(tt.value, tt.colon))
		})
	}
}

func TestStructure_SetKeepsPosition(t *testing.T) {
	s := NewStructure().Set("a", Number(1)).Set("b", Number(2)).Set("a", Number(3))

	require.Equal(t, 2, s.Len())
	require.Equal(t, `{"a":3,"b":2}`, Serialize(s, false))

	v, ok := s.Get("a")
	require.True(t, ok)
	require.Equal(t, Number(3), v)
	_, ok = s.Get("missing")
	require.False(t, ok)
}

func TestStructure_ZeroValueUsable(t *testing.T) {
	var s Structure
	s.Set("k", String("v"))
	require.Equal(t, `{"k":"v"}`, Serialize(&s, false))
}

func TestFromAny(t *testing.T) {
	v, err := FromAny(map[string]any{
		"b":    true,
		"a":    1,
		"list": []any{"x", 2.25, nil},
		"obj":  map[string]string{"z": "last", "y": "first"},
	})
	require.NoError(t, err)
	require.Equal(t, `{"a":1,"b":true,"list":{"x",2.25,""},"obj":{"y":"first","z":"last"}}`, Serialize(v, false))
}

func TestFromAny_Errors(t *testing.T) {
	_, err := FromAny(map[int]string{1: "a"})
	require.ErrorIs(t, err, ErrUnsupportedType)

	_, err = FromAny(struct{}{})
	require.ErrorIs(t, err, ErrUnsupportedType)

	cyclic := map[string]any{}
	cyclic["self"] = cyclic
	_, err = FromAny(cyclic)
	require.ErrorIs(t, err, ErrCyclic)
}

func TestFromAny_SharedChildIsNotACycle(t *testing.T) {
	shared := map[string]any{"k": "v"}
	v, err := FromAny(map[string]any{"a": shared, "b": shared})
	require.NoError(t, err)
	require.Equal(t, `{"a":{"k":"v"},"b":{"k":"v"}}`, Serialize(v, false))
}

func TestFromYAML_KeepsDocumentOrder(t *testing.T) {
	v, err := FromYAML([]byte("zeta: 1\nalpha: true\nitems:\n  - one\n  - 2.5\nnothing: null\n"))
	require.NoError(t, err)
	require.Equal(t, `{"zeta":1,"alpha":true,"items":{"one",2.5},"nothing":""}`, Serialize(v, false))
}

func TestFromYAML_JSONInput(t *testing.T) {
	v, err := FromYAML([]byte(`{"b": "x", "a": [1, false]}`))
	require.NoError(t, err)
	require.Equal(t, `{"b":"x":"a":{1:false}}`, Serialize(v, true))
}

func TestFromYAML_Aliases(t *testing.T) {
	v, err := FromYAML([]byte("base: &b\n  k: v\ncopy: *b\n"))
	require.NoError(t, err)
	require.Equal(t, `{"base":{"k":"v"},"copy":{"k":"v"}}`, Serialize(v, false))
}

func TestFromYAML_Empty(t *testing.T) {
	v, err := FromYAML(nil)
	require.NoError(t, err)
	require.Equal(t, `{}`, Serialize(v, false))
}

func TestFromYAML_Invalid(t *testing.T) {
	_, err := FromYAML([]byte("a: [unclosed"))
	require.Error(t, err)
}

func TestSerialize_SelfReferenceTerminates(t *testing.T) {
	s := NewStructure().Set("name", String("loop"))
	s.Set("self", s)
	require.Equal(t, `{"name":"loop","self":""}`, Serialize(s, false))

	outer := NewStructure()
	inner := NewStructure().Append(outer)
	outer.Set("inner", inner)
	require.Equal(t, `{"inner":{""}}`, Serialize(outer, true))
}

func TestSerialize_SharedChildRenderedTwice(t *testing.T) {
	shared := NewStructure().Set("k", String("v"))
	s := NewStructure().Set("a", shared).Set("b", shared)
	require.Equal(t, `{"a":{"k":"v"},"b":{"k":"v"}}`, Serialize(s, false))
}

func TestFromAny_PointerCycle(t *testing.T) {
	p := new(any)
	*p = p
	_, err := FromAny(p)
	require.ErrorIs(t, err, ErrCyclic)

	n := 5
	v, err := FromAny(map[string]any{"a": &n, "b": &n})
	require.NoError(t, err)
	require.Equal(t, `{"a":5,"b":5}`, Serialize(v, false))
}
