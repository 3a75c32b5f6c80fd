package classes

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/funvibe/jbridge/internal/sig"
)

// ObjectRef is an opaque reference to a runtime object. References carry a
// uuid identity so two refs to the same object compare equal while distinct
// instances of the same class do not. Payload holds the host-side value
// backing the object, when there is one (strings, boxed host data).
type ObjectRef struct {
	Class   string
	ID      uuid.UUID
	Payload any
}

// NewObject allocates a fresh reference of the given class.
func NewObject(class string, payload any) *ObjectRef {
	if class == "" {
		class = sig.ObjectClass
	}
	return &ObjectRef{Class: class, ID: uuid.New(), Payload: payload}
}

// NewString allocates a string object.
func NewString(s string) *ObjectRef {
	return NewObject(sig.StringClass, s)
}

// ClassName reports the reference's class, so refs double as class
// descriptors. A nil ref is a null of the generic object class.
func (r *ObjectRef) ClassName() string {
	if r == nil {
		return sig.ObjectClass
	}
	return r.Class
}

// Same reports reference identity.
func (r *ObjectRef) Same(other *ObjectRef) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.ID == other.ID
}

func (r *ObjectRef) Inspect() string {
	if r == nil {
		return "null"
	}
	if s, ok := r.Payload.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("<%s@%s>", r.Class, r.ID)
}
