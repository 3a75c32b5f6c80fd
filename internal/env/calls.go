package env

import "github.com/funvibe/jbridge/internal/classes"

// ClassHandle is an opaque resolved class. Valid only for the call that
// resolved it; a zero handle means resolution failed.
type ClassHandle struct {
	cls *classes.Class
}

// IsValid reports whether resolution succeeded.
func (h ClassHandle) IsValid() bool { return h.cls != nil }

// Name returns the resolved class name, or "" for the zero handle.
func (h ClassHandle) Name() string {
	if h.cls == nil {
		return ""
	}
	return h.cls.Name
}

// MethodHandle is an opaque resolved static method.
type MethodHandle struct {
	m *classes.Method
}

func (h MethodHandle) IsValid() bool { return h.m != nil }

// Descriptor returns the resolved method's signature, or "" for the zero
// handle.
func (h MethodHandle) Descriptor() string {
	if h.m == nil {
		return ""
	}
	return h.m.Descriptor
}

// FindClass resolves a class by its slash-separated name. The zero handle
// signals "class not found".
func (e *Env) FindClass(name string) ClassHandle {
	cls, ok := e.reg.Lookup(name)
	if !ok {
		return ClassHandle{}
	}
	return ClassHandle{cls: cls}
}

// GetStaticMethodID resolves a static method by name and exact signature.
// The zero handle signals "method not found".
func (e *Env) GetStaticMethodID(cls ClassHandle, name, descriptor string) MethodHandle {
	if !cls.IsValid() {
		return MethodHandle{}
	}
	m, ok := cls.cls.StaticMethod(name, descriptor)
	if !ok {
		return MethodHandle{}
	}
	return MethodHandle{m: m}
}

// The call primitives below are pure forwarders: no validation, no
// conversion. The typing lives in the primitive's name, the way a C foreign
// interface spells one entry point per return type. Invoking a primitive
// with a zero method handle is undefined, as in the interface they mirror;
// the orchestrator never does.

func (e *Env) invoke(m MethodHandle, args []classes.Value) classes.Value {
	return m.m.Impl(args)
}

func (e *Env) CallStaticObjectMethod(cls ClassHandle, m MethodHandle, args ...classes.Value) classes.Value {
	return e.invoke(m, args)
}

func (e *Env) CallStaticVoidMethod(cls ClassHandle, m MethodHandle, args ...classes.Value) {
	e.invoke(m, args)
}

func (e *Env) CallStaticBooleanMethod(cls ClassHandle, m MethodHandle, args ...classes.Value) classes.Value {
	return e.invoke(m, args)
}

func (e *Env) CallStaticIntMethod(cls ClassHandle, m MethodHandle, args ...classes.Value) classes.Value {
	return e.invoke(m, args)
}

func (e *Env) CallStaticLongMethod(cls ClassHandle, m MethodHandle, args ...classes.Value) classes.Value {
	return e.invoke(m, args)
}

func (e *Env) CallStaticFloatMethod(cls ClassHandle, m MethodHandle, args ...classes.Value) classes.Value {
	return e.invoke(m, args)
}

func (e *Env) CallStaticDoubleMethod(cls ClassHandle, m MethodHandle, args ...classes.Value) classes.Value {
	return e.invoke(m, args)
}
