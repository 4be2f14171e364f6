package state

import (
	"testing"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null()},
		{"string", "abc", String("abc")},
		{"int", 12, Int(12)},
		{"int64", int64(-4), Int(-4)},
		{"float", 1.5, Float(1.5)},
		{"bool", true, Bool(true)},
		{"strings", []string{"a", "b"}, List(String("a"), String("b"))},
		{"ints", []int{1, 2}, List(Int(1), Int(2))},
		{"mixed", []any{"a", 1, false}, List(String("a"), Int(1), Bool(false))},
		{"nested", map[string]any{"pos": map[string]any{"x": 1}}, Map(map[string]Value{
			"pos": Map(map[string]Value{"x": Int(1)}),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Of(tt.in)
			if err != nil {
				t.Fatalf("Of(%v) failed: %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestOf_Unsupported(t *testing.T) {
	if _, err := Of(struct{}{}); err == nil {
		t.Error("Expected error for struct value")
	}
	if _, err := Of([]any{1, make(chan int)}); err == nil {
		t.Error("Expected error for nested channel")
	}
}

func TestClone_DeepCopy(t *testing.T) {
	src := []Value{Int(1)}
	v := List(src...)
	src[0] = Int(99)
	if items, _ := v.AsList(); !items[0].Equal(Int(1)) {
		t.Errorf("Expected List to copy its input, got %v", items[0])
	}

	nested := MustOf(map[string]any{"bag": []any{"gem"}})
	c := nested.Clone()

	m, _ := c.AsMap()
	m["bag"] = List()
	if !nested.Equal(MustOf(map[string]any{"bag": []any{"gem"}})) {
		t.Errorf("Expected original untouched, got %v", nested)
	}
	if !c.Equal(nested) {
		t.Errorf("Expected clone equal to original, got %v vs %v", c, nested)
	}
}

func TestAccessors_KindMismatch(t *testing.T) {
	v := String("7")
	if _, ok := v.AsInt(); ok {
		t.Error("Expected AsInt to fail on string")
	}
	if _, ok := v.AsList(); ok {
		t.Error("Expected AsList to fail on string")
	}
	if f, ok := Int(3).AsFloat(); !ok || f != 3 {
		t.Errorf("Expected int widened to 3.0, got %v %v", f, ok)
	}
	if Int(1).Equal(Float(1)) {
		t.Error("Expected int and float to differ")
	}
}

func TestString(t *testing.T) {
	v := MustOf(map[string]any{"b": []any{1, "x"}, "a": nil, "c": 2.5})
	want := `{a: null, b: [1, "x"], c: 2.5}`
	if got := v.String(); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
	if KindMap.String() != "map" {
		t.Errorf("Expected kind name map, got %s", KindMap.String())
	}
}
