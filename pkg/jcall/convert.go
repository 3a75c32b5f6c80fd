package jcall

import (
	"github.com/funvibe/jbridge/internal/classes"
	"github.com/funvibe/jbridge/internal/sig"
)

// refSetter receives the untyped object result of a fallback dispatch.
type refSetter interface {
	setRef(*ObjectRef)
}

// refCarrier yields the underlying reference of a typed argument.
type refCarrier interface {
	refValue() *ObjectRef
}

// returnTypeOf computes the return type tag for the declared R. Everything
// outside the closed scalar set maps to an object tag; descriptor-typed
// returns contribute their class name to the signature.
func returnTypeOf[R any]() sig.Type {
	var zero R
	switch v := any(zero).(type) {
	case Void:
		return sig.Void()
	case bool:
		return sig.Boolean()
	case int, int32:
		return sig.Int()
	case int64:
		return sig.Long()
	case float32:
		return sig.Float()
	case float64:
		return sig.Double()
	case string:
		return sig.Object(sig.StringClass)
	case ClassNamed:
		return sig.Object(v.ClassName())
	default:
		return sig.Object(sig.ObjectClass)
	}
}

// argTypeOf tags a call argument. Runtime values keep the kind they carry;
// everything else goes through the host type-tag mapping.
func argTypeOf(a any) sig.Type {
	if v, ok := a.(classes.Value); ok {
		switch v.Kind {
		case classes.ValBool:
			return sig.Boolean()
		case classes.ValInt:
			return sig.Int()
		case classes.ValLong:
			return sig.Long()
		case classes.ValFloat:
			return sig.Float()
		case classes.ValDouble:
			return sig.Double()
		default:
			return sig.Object(v.Ref.ClassName())
		}
	}
	return sig.TypeOf(a)
}

// toValue converts a host argument to its runtime value. The mapping
// matches argTypeOf so the forwarded value always agrees with the computed
// signature.
func toValue(a any) classes.Value {
	switch x := a.(type) {
	case classes.Value:
		return x
	case bool:
		return classes.BoolVal(x)
	case int:
		return classes.IntVal(int32(x))
	case int32:
		return classes.IntVal(x)
	case int64:
		return classes.LongVal(x)
	case float32:
		return classes.FloatVal(x)
	case float64:
		return classes.DoubleVal(x)
	case string:
		return classes.StrVal(x)
	case *ObjectRef:
		return classes.RefVal(x)
	case refCarrier:
		return classes.RefVal(x.refValue())
	default:
		return classes.NilVal()
	}
}

// convert maps the primitive's raw result to the declared R: identity for
// scalars, reference reinterpretation for object kinds, zero value when the
// result cannot represent R.
func convert[R any](v classes.Value) (out R) {
	switch p := any(&out).(type) {
	case *Void:
	case *bool:
		*p = v.AsBool()
	case *int:
		*p = int(v.AsInt())
	case *int32:
		*p = v.AsInt()
	case *int64:
		*p = v.AsLong()
	case *float32:
		*p = v.AsFloat()
	case *float64:
		*p = v.AsDouble()
	case *string:
		*p = v.AsString()
	case **ObjectRef:
		*p = v.Ref
	case refSetter:
		p.setRef(v.Ref)
	default:
		if r, ok := any(v.Ref).(R); ok {
			out = r
		}
	}
	return out
}
