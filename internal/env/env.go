// Package env provides goroutine-affine environment handles over the class
// runtime. An Env is the narrow C-style interface through which the bridge
// resolves classes and methods and invokes the untyped call primitives.
//
// Handles are bound to the goroutine that attached them and must not be
// shared: callers re-fetch with Current on every call, never cache across
// goroutines.
package env

import (
	"sync"

	"github.com/petermattis/goid"

	"github.com/funvibe/jbridge/internal/classes"
)

// Env is the per-goroutine handle into a class runtime.
type Env struct {
	reg *classes.Registry
	gid int64
}

var attached sync.Map // goroutine id -> *Env

// Attach binds an environment over the given registry to the calling
// goroutine, replacing any previous attachment, and returns it.
func Attach(reg *classes.Registry) *Env {
	e := &Env{reg: reg, gid: goid.Get()}
	attached.Store(e.gid, e)
	return e
}

// Detach unbinds the calling goroutine's environment, if any.
func Detach() {
	attached.Delete(goid.Get())
}

// Current returns the calling goroutine's environment, or nil when the
// goroutine never attached. The caller's lifecycle management is expected
// to guarantee attachment before any call.
func Current() *Env {
	v, ok := attached.Load(goid.Get())
	if !ok {
		return nil
	}
	return v.(*Env)
}

// Registry exposes the backing registry, for hosts that populate classes
// after attaching.
func (e *Env) Registry() *classes.Registry {
	return e.reg
}
