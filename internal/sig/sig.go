// Package sig implements the type-tag mapping and the textual method
// signature encoding used by the class runtime's symbol table.
//
// Signatures follow the JVM descriptor convention: a parenthesized list of
// argument type tokens followed by the return type token, e.g. "(II)I" for
// a method taking two ints and returning an int. Class names are
// slash-separated and wrapped as "Lpkg/path/Name;".
//
// Building is deterministic and pure: identical (return, arguments) tuples
// always yield identical strings.
package sig

import (
	"fmt"
	"strings"
)

// Kind identifies the dispatch variant a type belongs to.
type Kind uint8

const (
	KindVoid Kind = iota
	KindBoolean
	KindInt // 32-bit
	KindLong
	KindFloat // 32-bit
	KindDouble
	KindObject
)

// ObjectClass is the class every otherwise-unmapped type falls back to.
const ObjectClass = "java/lang/Object"

// StringClass is the runtime class backing host strings.
const StringClass = "java/lang/String"

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindBoolean:
		return "boolean"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindObject:
		return "object"
	default:
		return "<?>"
	}
}

// Type is a resolved type tag. Class is meaningful only for KindObject.
type Type struct {
	Kind  Kind
	Class string
}

// Tag constructors.

func Void() Type    { return Type{Kind: KindVoid} }
func Boolean() Type { return Type{Kind: KindBoolean} }
func Int() Type     { return Type{Kind: KindInt} }
func Long() Type    { return Type{Kind: KindLong} }
func Float() Type   { return Type{Kind: KindFloat} }
func Double() Type  { return Type{Kind: KindDouble} }

func Object(class string) Type {
	if class == "" {
		class = ObjectClass
	}
	return Type{Kind: KindObject, Class: class}
}

// ClassNamed is implemented by class descriptor types: compile-time stand-ins
// for a runtime class that expose its fully-qualified, slash-separated name.
type ClassNamed interface {
	ClassName() string
}

// TypeOf maps a host value to its type tag. The mapping is closed: bool,
// int/int32, int64, float32, float64, string, and ClassNamed values have
// dedicated tags; everything else is treated as a generic object reference.
func TypeOf(v any) Type {
	switch x := v.(type) {
	case bool:
		return Boolean()
	case int, int32:
		return Int()
	case int64:
		return Long()
	case float32:
		return Float()
	case float64:
		return Double()
	case string:
		return Object(StringClass)
	case ClassNamed:
		return Object(x.ClassName())
	default:
		return Object(ObjectClass)
	}
}

// token returns the descriptor token for a single type.
func (t Type) token() string {
	switch t.Kind {
	case KindVoid:
		return "V"
	case KindBoolean:
		return "Z"
	case KindInt:
		return "I"
	case KindLong:
		return "J"
	case KindFloat:
		return "F"
	case KindDouble:
		return "D"
	default:
		class := t.Class
		if class == "" {
			class = ObjectClass
		}
		return "L" + class + ";"
	}
}

// Descriptor builds the full method signature for a return type and an
// ordered argument list.
func Descriptor(ret Type, args []Type) string {
	var b strings.Builder
	b.WriteByte('(')
	for _, a := range args {
		b.WriteString(a.token())
	}
	b.WriteByte(')')
	b.WriteString(ret.token())
	return b.String()
}

// Named resolves a manifest-level type name ("int", "boolean", "string", or
// a slash-qualified class name) to its tag.
func Named(name string) (Type, error) {
	switch name {
	case "void":
		return Void(), nil
	case "boolean", "bool":
		return Boolean(), nil
	case "int":
		return Int(), nil
	case "long":
		return Long(), nil
	case "float":
		return Float(), nil
	case "double":
		return Double(), nil
	case "string":
		return Object(StringClass), nil
	case "object":
		return Object(ObjectClass), nil
	}
	if strings.Contains(name, "/") {
		return Object(name), nil
	}
	return Type{}, fmt.Errorf("unknown type name %q", name)
}

// ParseDescriptor is the inverse of Descriptor. It rejects malformed input
// instead of guessing.
func ParseDescriptor(desc string) (ret Type, args []Type, err error) {
	if len(desc) < 3 || desc[0] != '(' {
		return Type{}, nil, fmt.Errorf("malformed descriptor %q", desc)
	}
	rest := desc[1:]
	for len(rest) > 0 && rest[0] != ')' {
		var t Type
		t, rest, err = parseToken(rest, desc)
		if err != nil {
			return Type{}, nil, err
		}
		if t.Kind == KindVoid {
			return Type{}, nil, fmt.Errorf("void argument in descriptor %q", desc)
		}
		args = append(args, t)
	}
	if len(rest) == 0 {
		return Type{}, nil, fmt.Errorf("unterminated argument list in descriptor %q", desc)
	}
	rest = rest[1:] // ')'
	ret, rest, err = parseToken(rest, desc)
	if err != nil {
		return Type{}, nil, err
	}
	if rest != "" {
		return Type{}, nil, fmt.Errorf("trailing characters in descriptor %q", desc)
	}
	return ret, args, nil
}

func parseToken(s, whole string) (Type, string, error) {
	if s == "" {
		return Type{}, "", fmt.Errorf("truncated descriptor %q", whole)
	}
	switch s[0] {
	case 'V':
		return Void(), s[1:], nil
	case 'Z':
		return Boolean(), s[1:], nil
	case 'I':
		return Int(), s[1:], nil
	case 'J':
		return Long(), s[1:], nil
	case 'F':
		return Float(), s[1:], nil
	case 'D':
		return Double(), s[1:], nil
	case 'L':
		end := strings.IndexByte(s, ';')
		if end < 0 {
			return Type{}, "", fmt.Errorf("unterminated class token in descriptor %q", whole)
		}
		return Object(s[1:end]), s[end+1:], nil
	default:
		return Type{}, "", fmt.Errorf("unknown token %q in descriptor %q", s[0], whole)
	}
}
