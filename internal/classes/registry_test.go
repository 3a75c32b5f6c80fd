package classes

import "testing"

func sumImpl(args []Value) Value {
	return IntVal(args[0].AsInt() + args[1].AsInt())
}

func TestRegistryDefineLookupUnload(t *testing.T) {
	reg := NewRegistry()

	if _, ok := reg.Lookup("com/example/Calculator"); ok {
		t.Fatal("lookup succeeded on empty registry")
	}

	reg.Define(NewClass("com/example/Calculator").
		Static("sum", "(II)I", 2, sumImpl))

	cls, ok := reg.Lookup("com/example/Calculator")
	if !ok {
		t.Fatal("class not found after Define")
	}
	if cls.Name != "com/example/Calculator" {
		t.Errorf("class name = %q", cls.Name)
	}

	if !reg.Unload("com/example/Calculator") {
		t.Error("Unload reported missing class")
	}
	if _, ok := reg.Lookup("com/example/Calculator"); ok {
		t.Error("class still resolvable after Unload")
	}
	if reg.Unload("com/example/Calculator") {
		t.Error("second Unload reported success")
	}
}

func TestStaticMethodResolution(t *testing.T) {
	cls := NewClass("com/example/Calculator").
		Static("sum", "(II)I", 2, sumImpl).
		Static("sum", "(JJ)J", 2, func(args []Value) Value {
			return LongVal(args[0].AsLong() + args[1].AsLong())
		})

	m, ok := cls.StaticMethod("sum", "(II)I")
	if !ok {
		t.Fatal("int overload not found")
	}
	if got := m.Impl([]Value{IntVal(4), IntVal(5)}); got.AsInt() != 9 {
		t.Errorf("sum(4, 5) = %s", got.Inspect())
	}

	m, ok = cls.StaticMethod("sum", "(JJ)J")
	if !ok {
		t.Fatal("long overload not found")
	}
	if got := m.Impl([]Value{LongVal(40), LongVal(2)}); got.AsLong() != 42 {
		t.Errorf("sum(40, 2) = %s", got.Inspect())
	}

	// Overloads are keyed by the full name+descriptor pair.
	if _, ok := cls.StaticMethod("sum", "(I)I"); ok {
		t.Error("resolved a descriptor that was never registered")
	}
	if _, ok := cls.StaticMethod("mul", "(II)I"); ok {
		t.Error("resolved a name that was never registered")
	}
}

func TestFindStatic(t *testing.T) {
	cls := NewClass("com/example/Calculator").
		Static("sum", "(II)I", 2, sumImpl).
		Static("sum", "(JJ)J", 2, sumImpl).
		Static("neg", "(I)I", 1, func(args []Value) Value {
			return IntVal(-args[0].AsInt())
		})

	if m, ok := cls.FindStatic("neg", 1); !ok || m.Descriptor != "(I)I" {
		t.Errorf("FindStatic(neg, 1) = %v, %t", m, ok)
	}
	// Ambiguous: two sum overloads with the same arity.
	if _, ok := cls.FindStatic("sum", 2); ok {
		t.Error("FindStatic resolved an ambiguous overload")
	}
	if _, ok := cls.FindStatic("neg", 2); ok {
		t.Error("FindStatic ignored arity")
	}
}

func TestValueScalars(t *testing.T) {
	if v := IntVal(-7); v.AsInt() != -7 {
		t.Errorf("int round trip: %d", v.AsInt())
	}
	if v := LongVal(-1 << 40); v.AsLong() != -1<<40 {
		t.Errorf("long round trip: %d", v.AsLong())
	}
	if v := FloatVal(1.5); v.AsFloat() != 1.5 {
		t.Errorf("float round trip: %g", v.AsFloat())
	}
	if v := DoubleVal(3.14159); v.AsDouble() != 3.14159 {
		t.Errorf("double round trip: %g", v.AsDouble())
	}
	if v := BoolVal(true); !v.AsBool() {
		t.Error("bool round trip")
	}
	if v := StrVal("hello"); v.AsString() != "hello" {
		t.Errorf("string round trip: %q", v.AsString())
	}
	if !NilVal().IsNil() {
		t.Error("NilVal is not nil")
	}
}

func TestObjectRefIdentity(t *testing.T) {
	a := NewObject("com/example/Example", nil)
	b := NewObject("com/example/Example", nil)

	if !a.Same(a) {
		t.Error("ref not identical to itself")
	}
	if a.Same(b) {
		t.Error("distinct instances compare equal")
	}
	if !RefVal(a).Equals(RefVal(a)) {
		t.Error("Value wrapping broke identity")
	}
	if RefVal(a).Equals(RefVal(b)) {
		t.Error("Value equality ignores identity")
	}
	if RefVal(nil).Kind != ValNil {
		t.Error("nil ref did not collapse to the null value")
	}
}
