package classes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/jbridge/internal/sig"
)

// Manifest is the top-level classpath manifest: a declarative way to load
// fixture classes whose static methods return constants. Behavioral methods
// are registered programmatically via Class.Static.
type Manifest struct {
	// Classes lists the classes to load.
	Classes []ManifestClass `yaml:"classes"`
}

// ManifestClass declares one class.
type ManifestClass struct {
	// Name is the fully-qualified, slash-separated class name
	// (e.g. "com/example/Answer").
	Name string `yaml:"name"`

	// Statics lists the class's static methods.
	Statics []ManifestMethod `yaml:"statics"`
}

// ManifestMethod declares a constant-returning static method.
type ManifestMethod struct {
	// Name is the method name.
	Name string `yaml:"name"`

	// Returns is the return type name: "void", "boolean", "int", "long",
	// "float", "double", "string", "object", or a slash-qualified class name.
	Returns string `yaml:"returns"`

	// Args lists argument type names, in order. Arguments are accepted and
	// ignored; the method returns Value regardless.
	Args []string `yaml:"args,omitempty"`

	// Value is the constant the method returns. Ignored for "void".
	Value any `yaml:"value,omitempty"`
}

// ParseManifest decodes and validates manifest bytes.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	for i, c := range m.Classes {
		if c.Name == "" {
			return nil, fmt.Errorf("manifest class %d: missing name", i)
		}
		for _, meth := range c.Statics {
			if meth.Name == "" {
				return nil, fmt.Errorf("manifest class %s: method with no name", c.Name)
			}
			if _, err := sig.Named(meth.Returns); err != nil {
				return nil, fmt.Errorf("manifest method %s.%s: %w", c.Name, meth.Name, err)
			}
			for _, a := range meth.Args {
				if _, err := sig.Named(a); err != nil {
					return nil, fmt.Errorf("manifest method %s.%s: %w", c.Name, meth.Name, err)
				}
			}
		}
	}
	return &m, nil
}

// LoadManifest reads a manifest file and loads its classes into the registry.
func LoadManifest(path string, reg *Registry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	m, err := ParseManifest(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return m.Load(reg)
}

// Load defines every declared class in the registry.
func (m *Manifest) Load(reg *Registry) error {
	for _, mc := range m.Classes {
		cls := NewClass(mc.Name)
		for _, mm := range mc.Statics {
			ret, _ := sig.Named(mm.Returns)
			args := make([]sig.Type, len(mm.Args))
			for i, a := range mm.Args {
				args[i], _ = sig.Named(a)
			}
			result, err := constValue(ret, mm.Value)
			if err != nil {
				return fmt.Errorf("method %s.%s: %w", mc.Name, mm.Name, err)
			}
			desc := sig.Descriptor(ret, args)
			cls.Static(mm.Name, desc, len(args), func(_ []Value) Value {
				return result
			})
		}
		reg.Define(cls)
	}
	return nil
}

// constValue converts a YAML scalar to the runtime value a constant method
// returns. YAML decodes integers as int/int64 and floats as float64.
func constValue(ret sig.Type, raw any) (Value, error) {
	if ret.Kind == sig.KindVoid {
		return NilVal(), nil
	}
	if raw == nil {
		return NilVal(), nil
	}
	switch ret.Kind {
	case sig.KindBoolean:
		b, ok := raw.(bool)
		if !ok {
			return NilVal(), fmt.Errorf("boolean method declares non-boolean value %v", raw)
		}
		return BoolVal(b), nil
	case sig.KindInt:
		n, ok := yamlInt(raw)
		if !ok {
			return NilVal(), fmt.Errorf("int method declares non-integer value %v", raw)
		}
		return IntVal(int32(n)), nil
	case sig.KindLong:
		n, ok := yamlInt(raw)
		if !ok {
			return NilVal(), fmt.Errorf("long method declares non-integer value %v", raw)
		}
		return LongVal(n), nil
	case sig.KindFloat:
		f, ok := yamlFloat(raw)
		if !ok {
			return NilVal(), fmt.Errorf("float method declares non-numeric value %v", raw)
		}
		return FloatVal(float32(f)), nil
	case sig.KindDouble:
		f, ok := yamlFloat(raw)
		if !ok {
			return NilVal(), fmt.Errorf("double method declares non-numeric value %v", raw)
		}
		return DoubleVal(f), nil
	default:
		if s, ok := raw.(string); ok {
			if ret.Class == sig.StringClass {
				return StrVal(s), nil
			}
			return RefVal(NewObject(ret.Class, s)), nil
		}
		return RefVal(NewObject(ret.Class, raw)), nil
	}
}

func yamlInt(raw any) (int64, bool) {
	switch n := raw.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

func yamlFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
