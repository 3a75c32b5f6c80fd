package jcall

import (
	"testing"

	"github.com/funvibe/jbridge/internal/classes"
	"github.com/funvibe/jbridge/internal/env"
	"github.com/funvibe/jbridge/internal/sig"
)

// resolve builds handles against a single-method class so dispatch can be
// exercised directly.
func resolve(t *testing.T, descriptor string, impl classes.MethodImpl) (*env.Env, env.ClassHandle, env.MethodHandle) {
	t.Helper()
	reg := classes.NewRegistry()
	reg.Define(classes.NewClass("probe/Probe").Static("m", descriptor, 0, impl))

	e := env.Attach(reg)
	t.Cleanup(env.Detach)

	cls := e.FindClass("probe/Probe")
	m := e.GetStaticMethodID(cls, "m", descriptor)
	if !cls.IsValid() || !m.IsValid() {
		t.Fatal("fixture resolution failed")
	}
	return e, cls, m
}

func TestDispatchCoversEveryKind(t *testing.T) {
	tests := []struct {
		kind       sig.Kind
		descriptor string
		result     classes.Value
	}{
		{sig.KindBoolean, "()Z", classes.BoolVal(true)},
		{sig.KindInt, "()I", classes.IntVal(-3)},
		{sig.KindLong, "()J", classes.LongVal(1 << 50)},
		{sig.KindFloat, "()F", classes.FloatVal(0.5)},
		{sig.KindDouble, "()D", classes.DoubleVal(2.25)},
		{sig.KindObject, "()Ljava/lang/Object;", classes.RefVal(classes.NewObject("", nil))},
	}

	for _, tt := range tests {
		e, cls, m := resolve(t, tt.descriptor, func(_ []classes.Value) classes.Value {
			return tt.result
		})
		got := dispatch(e, tt.kind, cls, m, nil)
		if !got.Equals(tt.result) {
			t.Errorf("kind %s: dispatch returned %s, want %s", tt.kind, got.Inspect(), tt.result.Inspect())
		}
	}
}

func TestDispatchVoidDiscardsResult(t *testing.T) {
	e, cls, m := resolve(t, "()V", func(_ []classes.Value) classes.Value {
		return classes.IntVal(99)
	})
	if got := dispatch(e, sig.KindVoid, cls, m, nil); !got.IsNil() {
		t.Errorf("void dispatch returned %s", got.Inspect())
	}
}

// Kinds outside the closed scalar set route through the object primitive,
// never a smaller one. Pinned deliberately: the fallback covers
// user-declared class types.
func TestDispatchFallbackIsObject(t *testing.T) {
	ref := classes.RefVal(classes.NewObject("com/example/Example", nil))
	e, cls, m := resolve(t, "()Ljava/lang/Object;", func(_ []classes.Value) classes.Value {
		return ref
	})
	if got := dispatch(e, sig.Kind(42), cls, m, nil); !got.Equals(ref) {
		t.Errorf("fallback dispatch returned %s", got.Inspect())
	}
}

func TestReturnTypeTagging(t *testing.T) {
	tests := []struct {
		got      sig.Type
		expected sig.Type
	}{
		{returnTypeOf[Void](), sig.Void()},
		{returnTypeOf[bool](), sig.Boolean()},
		{returnTypeOf[int](), sig.Int()},
		{returnTypeOf[int32](), sig.Int()},
		{returnTypeOf[int64](), sig.Long()},
		{returnTypeOf[float32](), sig.Float()},
		{returnTypeOf[float64](), sig.Double()},
		{returnTypeOf[string](), sig.Object(sig.StringClass)},
		{returnTypeOf[*ObjectRef](), sig.Object(sig.ObjectClass)},
		{returnTypeOf[Ref[Example]](), sig.Object("com/example/Example")},
		// Undeclared types take the generic object tag.
		{returnTypeOf[struct{ X int }](), sig.Object(sig.ObjectClass)},
	}

	for i, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("case %d: tag = %v, want %v", i, tt.got, tt.expected)
		}
	}
}
