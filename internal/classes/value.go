package classes

import (
	"fmt"
	"math"
)

// ValueKind identifies the variant stored in a Value.
type ValueKind uint8

const (
	ValNil ValueKind = iota
	ValBool
	ValInt // 32-bit
	ValLong
	ValFloat // 32-bit
	ValDouble
	ValRef
)

// Value is a stack-allocated tagged union for everything that crosses the
// call boundary. Scalars live in Data as raw bits; Ref holds reference
// values and keeps them alive for GC.
type Value struct {
	Kind ValueKind
	Data uint64
	Ref  *ObjectRef
}

// Constructors

func NilVal() Value {
	return Value{Kind: ValNil}
}

func BoolVal(v bool) Value {
	var data uint64
	if v {
		data = 1
	}
	return Value{Kind: ValBool, Data: data}
}

func IntVal(v int32) Value {
	return Value{Kind: ValInt, Data: uint64(uint32(v))}
}

func LongVal(v int64) Value {
	return Value{Kind: ValLong, Data: uint64(v)}
}

func FloatVal(v float32) Value {
	return Value{Kind: ValFloat, Data: uint64(math.Float32bits(v))}
}

func DoubleVal(v float64) Value {
	return Value{Kind: ValDouble, Data: math.Float64bits(v)}
}

func RefVal(r *ObjectRef) Value {
	if r == nil {
		return NilVal()
	}
	return Value{Kind: ValRef, Ref: r}
}

// StrVal wraps a host string as a reference of the runtime string class.
func StrVal(s string) Value {
	return RefVal(NewString(s))
}

// Accessors

func (v Value) AsBool() bool {
	return v.Data == 1
}

func (v Value) AsInt() int32 {
	return int32(uint32(v.Data))
}

func (v Value) AsLong() int64 {
	return int64(v.Data)
}

func (v Value) AsFloat() float32 {
	return math.Float32frombits(uint32(v.Data))
}

func (v Value) AsDouble() float64 {
	return math.Float64frombits(v.Data)
}

// AsString unwraps a string reference; non-strings yield "".
func (v Value) AsString() string {
	if v.Kind != ValRef || v.Ref == nil {
		return ""
	}
	s, _ := v.Ref.Payload.(string)
	return s
}

func (v Value) IsNil() bool { return v.Kind == ValNil }
func (v Value) IsRef() bool { return v.Kind == ValRef }

// Equals compares values of the same kind; references compare by identity.
func (v Value) Equals(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case ValNil:
		return true
	case ValRef:
		return v.Ref.Same(other.Ref)
	default:
		return v.Data == other.Data
	}
}

// Inspect returns a printable representation.
func (v Value) Inspect() string {
	switch v.Kind {
	case ValNil:
		return "null"
	case ValBool:
		return fmt.Sprintf("%t", v.Data == 1)
	case ValInt:
		return fmt.Sprintf("%d", v.AsInt())
	case ValLong:
		return fmt.Sprintf("%d", v.AsLong())
	case ValFloat:
		return fmt.Sprintf("%g", v.AsFloat())
	case ValDouble:
		return fmt.Sprintf("%g", v.AsDouble())
	case ValRef:
		return v.Ref.Inspect()
	default:
		return "<?>"
	}
}
