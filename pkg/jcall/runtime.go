package jcall

import (
	"github.com/funvibe/jbridge/internal/classes"
	"github.com/funvibe/jbridge/internal/env"
)

// Aliases lifting the class runtime into the public API, so hosts can
// populate a registry and attach without reaching into internal packages.

type (
	Registry   = classes.Registry
	Class      = classes.Class
	Method     = classes.Method
	MethodImpl = classes.MethodImpl
	Value      = classes.Value
)

// NewRegistry creates an empty class registry.
func NewRegistry() *Registry { return classes.NewRegistry() }

// NewClass creates an empty class; register methods with Static, then load
// with Registry.Define.
func NewClass(name string) *Class { return classes.NewClass(name) }

// LoadManifest loads a YAML classpath manifest into the registry.
func LoadManifest(path string, reg *Registry) error {
	return classes.LoadManifest(path, reg)
}

// Attach binds an environment over reg to the calling goroutine. Every
// goroutine that calls into the bridge attaches its own environment;
// environments are never shared.
func Attach(reg *Registry) {
	env.Attach(reg)
}

// Detach unbinds the calling goroutine's environment.
func Detach() {
	env.Detach()
}

// Runtime value constructors, for native method implementations.

func NilVal() Value             { return classes.NilVal() }
func BoolVal(v bool) Value      { return classes.BoolVal(v) }
func IntVal(v int32) Value      { return classes.IntVal(v) }
func LongVal(v int64) Value     { return classes.LongVal(v) }
func FloatVal(v float32) Value  { return classes.FloatVal(v) }
func DoubleVal(v float64) Value { return classes.DoubleVal(v) }
func StrVal(s string) Value     { return classes.StrVal(s) }
func RefVal(r *ObjectRef) Value { return classes.RefVal(r) }

// NewObject allocates a fresh object reference of the given class.
func NewObject(class string, payload any) *ObjectRef {
	return classes.NewObject(class, payload)
}
