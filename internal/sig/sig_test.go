package sig

import "testing"

type exampleClass struct{}

func (exampleClass) ClassName() string { return "com/example/Example" }

func TestDescriptor(t *testing.T) {
	tests := []struct {
		ret      Type
		args     []Type
		expected string
	}{
		{Int(), nil, "()I"},
		{Int(), []Type{Int(), Int()}, "(II)I"},
		{Void(), []Type{Object(StringClass)}, "(Ljava/lang/String;)V"},
		{Object("com/example/Example"), []Type{Double()}, "(D)Lcom/example/Example;"},
		{Boolean(), []Type{Long(), Float()}, "(JF)Z"},
		{Double(), []Type{Boolean()}, "(Z)D"},
		{Object(""), nil, "()Ljava/lang/Object;"},
	}

	for _, tt := range tests {
		got := Descriptor(tt.ret, tt.args)
		if got != tt.expected {
			t.Errorf("Descriptor(%v, %v) = %q, want %q", tt.ret, tt.args, got, tt.expected)
		}
	}
}

func TestDescriptorDeterministic(t *testing.T) {
	ret := Object("com/example/Example")
	args := []Type{Int(), Object(StringClass), Long()}

	first := Descriptor(ret, args)
	for i := 0; i < 100; i++ {
		if got := Descriptor(ret, args); got != first {
			t.Fatalf("descriptor changed between calls: %q vs %q", first, got)
		}
	}
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		value    any
		expected Type
	}{
		{true, Boolean()},
		{int(7), Int()},
		{int32(7), Int()},
		{int64(7), Long()},
		{float32(1.5), Float()},
		{float64(1.5), Double()},
		{"hi", Object(StringClass)},
		{exampleClass{}, Object("com/example/Example")},
		// Anything outside the closed set falls back to the generic object tag.
		{struct{ X int }{}, Object(ObjectClass)},
		{nil, Object(ObjectClass)},
	}

	for _, tt := range tests {
		if got := TypeOf(tt.value); got != tt.expected {
			t.Errorf("TypeOf(%#v) = %v, want %v", tt.value, got, tt.expected)
		}
	}
}

func TestNamed(t *testing.T) {
	for name, expected := range map[string]Type{
		"void":                Void(),
		"boolean":             Boolean(),
		"int":                 Int(),
		"long":                Long(),
		"float":               Float(),
		"double":              Double(),
		"string":              Object(StringClass),
		"object":              Object(ObjectClass),
		"com/example/Example": Object("com/example/Example"),
	} {
		got, err := Named(name)
		if err != nil {
			t.Fatalf("Named(%q): %s", name, err)
		}
		if got != expected {
			t.Errorf("Named(%q) = %v, want %v", name, got, expected)
		}
	}

	if _, err := Named("NotAClass"); err == nil {
		t.Error("expected error for unqualified unknown type name")
	}
}

func TestParseDescriptor(t *testing.T) {
	ret, args, err := ParseDescriptor("(ILjava/lang/String;D)Lcom/example/Example;")
	if err != nil {
		t.Fatalf("parse: %s", err)
	}
	if ret != Object("com/example/Example") {
		t.Errorf("ret = %v", ret)
	}
	expected := []Type{Int(), Object(StringClass), Double()}
	if len(args) != len(expected) {
		t.Fatalf("got %d args, want %d", len(args), len(expected))
	}
	for i, a := range args {
		if a != expected[i] {
			t.Errorf("arg %d = %v, want %v", i, a, expected[i])
		}
	}
}

func TestParseDescriptorRejectsMalformed(t *testing.T) {
	for _, desc := range []string{
		"", "I", "()", "(", "(I", "(Q)I", "()Lcom/example/Example", "(V)I", "()II",
	} {
		if _, _, err := ParseDescriptor(desc); err == nil {
			t.Errorf("ParseDescriptor(%q): expected error", desc)
		}
	}
}
