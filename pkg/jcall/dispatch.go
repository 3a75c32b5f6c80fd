package jcall

import (
	"github.com/funvibe/jbridge/internal/classes"
	"github.com/funvibe/jbridge/internal/env"
	"github.com/funvibe/jbridge/internal/sig"
)

// dispatch routes a resolved call to the primitive matching the return
// kind. The table is closed and exhaustive over the scalar kinds; every
// other kind takes the object primitive, the generic fallback for
// user-declared class types. Pure forwarding, no validation.
func dispatch(e *env.Env, kind sig.Kind, cls env.ClassHandle, m env.MethodHandle, args []classes.Value) classes.Value {
	switch kind {
	case sig.KindVoid:
		e.CallStaticVoidMethod(cls, m, args...)
		return classes.NilVal()
	case sig.KindBoolean:
		return e.CallStaticBooleanMethod(cls, m, args...)
	case sig.KindInt:
		return e.CallStaticIntMethod(cls, m, args...)
	case sig.KindLong:
		return e.CallStaticLongMethod(cls, m, args...)
	case sig.KindFloat:
		return e.CallStaticFloatMethod(cls, m, args...)
	case sig.KindDouble:
		return e.CallStaticDoubleMethod(cls, m, args...)
	default:
		return e.CallStaticObjectMethod(cls, m, args...)
	}
}
