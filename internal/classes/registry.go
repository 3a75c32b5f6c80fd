// Package classes implements the managed class runtime the bridge calls
// into: a registry of named classes, each holding a table of static methods
// keyed by name and signature. Method resolution mirrors a symbol-table
// lookup: the full (name, descriptor) pair disambiguates overloads.
package classes

import "sync"

// MethodImpl is the native implementation behind a static method. Arguments
// arrive already converted to runtime values, in declaration order.
type MethodImpl func(args []Value) Value

// Method is a resolved static method.
type Method struct {
	Name       string
	Descriptor string
	Arity      int
	Impl       MethodImpl
}

// Class is a loaded class: a name plus its static method table.
type Class struct {
	Name    string
	statics map[string]*Method
}

// NewClass creates an empty class.
func NewClass(name string) *Class {
	return &Class{
		Name:    name,
		statics: make(map[string]*Method),
	}
}

func methodKey(name, descriptor string) string {
	return name + descriptor
}

// Static registers a static method under name+descriptor and returns the
// class for chaining. Re-registering the same name+descriptor replaces the
// previous implementation.
func (c *Class) Static(name, descriptor string, arity int, impl MethodImpl) *Class {
	c.statics[methodKey(name, descriptor)] = &Method{
		Name:       name,
		Descriptor: descriptor,
		Arity:      arity,
		Impl:       impl,
	}
	return c
}

// StaticMethod resolves a static method by name and exact descriptor.
func (c *Class) StaticMethod(name, descriptor string) (*Method, bool) {
	m, ok := c.statics[methodKey(name, descriptor)]
	return m, ok
}

// FindStatic resolves a static method by name and arity alone, for callers
// that discover signatures at runtime (e.g. the CLI). Returns false when no
// method or more than one overload matches.
func (c *Class) FindStatic(name string, arity int) (*Method, bool) {
	var found *Method
	for _, m := range c.statics {
		if m.Name != name || m.Arity != arity {
			continue
		}
		if found != nil {
			return nil, false
		}
		found = m
	}
	return found, found != nil
}

// Statics returns the method table in unspecified order.
func (c *Class) Statics() []*Method {
	out := make([]*Method, 0, len(c.statics))
	for _, m := range c.statics {
		out = append(out, m)
	}
	return out
}

// Registry holds the loaded classes. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]*Class
}

func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*Class)}
}

// Define loads a class, replacing any previous definition under its name.
func (r *Registry) Define(c *Class) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes[c.Name] = c
}

// Lookup resolves a class by its slash-separated name.
func (r *Registry) Lookup(name string) (*Class, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.classes[name]
	return c, ok
}

// Unload removes a class. Subsequent lookups fail; handles already resolved
// against the class keep working for the call that resolved them.
func (r *Registry) Unload(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.classes[name]
	delete(r.classes, name)
	return ok
}
