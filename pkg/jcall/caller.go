// Package jcall is the static call bridge: a typed entry point for invoking
// static methods on classes hosted in the managed class runtime, through the
// goroutine's environment handle.
//
// The return type is declared as a type parameter and selects the call
// primitive; arguments carry their own type tags. Resolution failures are
// fail-soft: the call reports an internal error and returns the declared
// return type's zero value, it never panics and never returns an error.
// Callers that need hard failures should install a report capture and
// inspect it.
//
//	// int static method with two arguments:
//	sum := jcall.Call[int32]("com/example/Calculator", "sum", int32(4), int32(5))
//
//	// void static method without arguments:
//	jcall.Call[jcall.Void]("com/example/Lifecycle", "warmup")
//
//	// static factory method returning a custom class:
//	obj := jcall.Call[jcall.Ref[Example]]("com/example/Example", "create", 3.1415)
//
// Class and method handles are resolved from scratch on every call; the
// bridge holds no state between calls. Hosts needing repeated calls to one
// method add their own caching in front of it.
package jcall

import (
	"github.com/funvibe/jbridge/internal/classes"
	"github.com/funvibe/jbridge/internal/env"
	"github.com/funvibe/jbridge/internal/report"
	"github.com/funvibe/jbridge/internal/sig"
)

// Void is the return tag for void methods. Its zero value is the default
// value of the void kind.
type Void struct{}

// ClassNamed is implemented by class descriptor types.
type ClassNamed = sig.ClassNamed

// ObjectRef is an opaque reference into the class runtime.
type ObjectRef = classes.ObjectRef

// Ref is a typed reference: an object reference bound to the class named by
// the descriptor type C. Using Ref[C] as the return type makes the computed
// signature resolve methods returning C instead of the generic object class.
type Ref[C ClassNamed] struct {
	Obj *ObjectRef
}

// ClassName reports C's class name, so Ref[C] doubles as an argument tag.
func (Ref[C]) ClassName() string {
	var c C
	return c.ClassName()
}

func (r *Ref[C]) setRef(o *ObjectRef) { r.Obj = o }

func (r Ref[C]) refValue() *ObjectRef { return r.Obj }

// Call invokes the static method methodName on the class named className,
// with a slash-separated class name per the runtime's convention. The
// method is resolved by name plus the signature computed from R and the
// argument types; a mismatch on either resolves nothing.
//
// On resolution failure the call reports exactly one internal error and
// returns R's zero value.
func Call[R any](className, methodName string, args ...any) R {
	return convert[R](orchestrate(returnTypeOf[R](), className, methodName, args))
}

// CallOn is the class-descriptor overload of Call: C supplies the class
// name, everything else is identical.
func CallOn[C ClassNamed, R any](methodName string, args ...any) R {
	var c C
	return Call[R](c.ClassName(), methodName, args...)
}

// CallObject is the runtime-typed counterpart of Call[Ref[C]], for callers
// that only learn the return class at runtime (e.g. from a manifest). The
// computed signature uses returnClass; the result is the raw reference, nil
// on resolution failure.
func CallObject(className, methodName, returnClass string, args ...any) *ObjectRef {
	return orchestrate(sig.Object(returnClass), className, methodName, args).Ref
}

// orchestrate is the single-shot call protocol: fetch the environment,
// compute the signature, resolve class then method, dispatch on the return
// kind. Either resolution miss short-circuits with one report and the null
// value.
func orchestrate(retType sig.Type, className, methodName string, args []any) classes.Value {
	e := env.Current()
	if e == nil {
		report.Internal("no environment attached to the calling goroutine")
		return classes.NilVal()
	}

	argTypes := make([]sig.Type, len(args))
	vals := make([]classes.Value, len(args))
	for i, a := range args {
		argTypes[i] = argTypeOf(a)
		vals[i] = toValue(a)
	}
	descriptor := sig.Descriptor(retType, argTypes)

	cls := e.FindClass(className)
	if !cls.IsValid() {
		report.Internal("class not found [" + className + "]")
		return classes.NilVal()
	}

	m := e.GetStaticMethodID(cls, methodName, descriptor)
	if !m.IsValid() {
		report.Internal("method [" + methodName + "] for class [" + className + "] not found, tried signature [" + descriptor + "]")
		return classes.NilVal()
	}

	return dispatch(e, retType.Kind, cls, m, vals)
}
