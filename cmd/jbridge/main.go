package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/jbridge/internal/classes"
	"github.com/funvibe/jbridge/internal/report"
	"github.com/funvibe/jbridge/internal/sig"
	"github.com/funvibe/jbridge/pkg/jcall"
)

const usage = `usage: jbridge -manifest classes.yaml CLASS METHOD [ARGS...]

Loads the classpath manifest, invokes the static method, prints the result.
Arguments are parsed according to the method's declared parameter types.`

func fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		msg = "\x1b[31m" + msg + "\x1b[0m"
	}
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func main() {
	manifestPath := flag.String("manifest", "", "path to the classpath manifest")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *manifestPath == "" || flag.NArg() < 2 {
		flag.Usage()
		os.Exit(2)
	}
	className := flag.Arg(0)
	methodName := flag.Arg(1)
	rawArgs := flag.Args()[2:]

	reg := classes.NewRegistry()
	if err := classes.LoadManifest(*manifestPath, reg); err != nil {
		fatalf("loading manifest: %s", err)
	}
	jcall.Attach(reg)

	cls, ok := reg.Lookup(className)
	if !ok {
		fatalf("class not found [%s]", className)
	}
	method, ok := cls.FindStatic(methodName, len(rawArgs))
	if !ok {
		fatalf("no static method [%s] with %d parameter(s) on [%s]", methodName, len(rawArgs), className)
	}

	ret, argTypes, err := sig.ParseDescriptor(method.Descriptor)
	if err != nil {
		fatalf("bad descriptor %q: %s", method.Descriptor, err)
	}
	args, err := parseArgs(rawArgs, argTypes)
	if err != nil {
		fatalf("%s", err)
	}

	// The bridge itself is fail-soft; capture its reports so the CLI can
	// fail hard.
	capture := report.NewCapture()
	defer report.Swap(capture)()

	out := invoke(ret, className, methodName, args)
	if msgs := capture.Messages(); len(msgs) > 0 {
		fatalf("%s", msgs[0])
	}
	if ret.Kind != sig.KindVoid {
		fmt.Println(out)
	}
}

// parseArgs converts command-line strings to typed call arguments.
func parseArgs(raw []string, types []sig.Type) ([]any, error) {
	args := make([]any, len(raw))
	for i, s := range raw {
		switch types[i].Kind {
		case sig.KindBoolean:
			b, err := strconv.ParseBool(s)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %q is not a boolean", i+1, s)
			}
			args[i] = b
		case sig.KindInt:
			n, err := strconv.ParseInt(s, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %q is not an int", i+1, s)
			}
			args[i] = int32(n)
		case sig.KindLong:
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %q is not a long", i+1, s)
			}
			args[i] = n
		case sig.KindFloat:
			f, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %q is not a float", i+1, s)
			}
			args[i] = float32(f)
		case sig.KindDouble:
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %q is not a double", i+1, s)
			}
			args[i] = f
		case sig.KindObject:
			if types[i].Class != sig.StringClass {
				return nil, fmt.Errorf("argument %d: cannot build %s from the command line", i+1, types[i].Class)
			}
			args[i] = s
		default:
			return nil, fmt.Errorf("argument %d: unsupported parameter kind", i+1)
		}
	}
	return args, nil
}

// invoke instantiates the bridge call for the declared return kind and
// renders the result.
func invoke(ret sig.Type, className, methodName string, args []any) string {
	switch ret.Kind {
	case sig.KindVoid:
		jcall.Call[jcall.Void](className, methodName, args...)
		return ""
	case sig.KindBoolean:
		return strconv.FormatBool(jcall.Call[bool](className, methodName, args...))
	case sig.KindInt:
		return strconv.FormatInt(int64(jcall.Call[int32](className, methodName, args...)), 10)
	case sig.KindLong:
		return strconv.FormatInt(jcall.Call[int64](className, methodName, args...), 10)
	case sig.KindFloat:
		return strconv.FormatFloat(float64(jcall.Call[float32](className, methodName, args...)), 'g', -1, 32)
	case sig.KindDouble:
		return strconv.FormatFloat(jcall.Call[float64](className, methodName, args...), 'g', -1, 64)
	default:
		if ret.Class == sig.StringClass {
			return jcall.Call[string](className, methodName, args...)
		}
		ref := jcall.CallObject(className, methodName, ret.Class, args...)
		return ref.Inspect()
	}
}
