// Package catalog is the data-driven table of scripting commands: each
// entry describes a command's parameters, kinds, defaults, and bounds, and
// can render a validated command line from caller arguments.
package catalog

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/rbright/audpipe/internal/macro"
)

// Kind is the wire type of one parameter.
type Kind int

const (
	String Kind = iota
	Int
	Float
	Bool
	Enum
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Enum:
		return "enum"
	}
	return "unknown"
}

// Param describes one parameter of a command schema. A parameter with no
// default and Required unset is optional: it is omitted from the wire
// unless the caller provides it, which the application reads as "leave
// unchanged".
type Param struct {
	Key      string
	Kind     Kind
	Required bool
	Default  any
	Enum     []string // canonical wire spellings when Kind == Enum
	Min, Max float64
	Bounded  bool
}

// Spec describes one command the application understands.
type Spec struct {
	Name        string
	Params      []Param
	Interactive bool // pops a dialog that stalls scripting until dismissed
}

var byName = make(map[string]Spec)

func init() {
	for _, name := range plain {
		byName[name] = Spec{Name: name}
	}
	for _, name := range dialogs {
		byName[name] = Spec{Name: name, Interactive: true}
	}
	for _, spec := range parameterized {
		byName[spec.Name] = spec
	}
}

// Lookup returns the schema for name.
func Lookup(name string) (Spec, bool) {
	spec, ok := byName[name]
	return spec, ok
}

// Names returns every known command name in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build validates args against the schema and renders the command line.
// Unknown keys are rejected, required parameters must be present, defaults
// fill in for absent optional parameters, and parameters render in schema
// order. Values may be Go-typed or strings needing coercion, so the same
// path serves both the typed client and command-line input.
func (s Spec) Build(args map[string]any) (string, error) {
	known := make(map[string]bool, len(s.Params))
	for _, param := range s.Params {
		known[param.Key] = true
	}
	for key := range args {
		if !known[key] {
			return "", fmt.Errorf("%s: unknown parameter %q", s.Name, key)
		}
	}

	pairs := make([]macro.Pair, 0, len(s.Params))
	for _, param := range s.Params {
		value, provided := args[param.Key]
		if !provided {
			if param.Default == nil {
				if param.Required {
					return "", fmt.Errorf("%s: missing required parameter %q", s.Name, param.Key)
				}
				continue
			}
			value = param.Default
		}
		rendered, err := param.render(value)
		if err != nil {
			return "", fmt.Errorf("%s: %w", s.Name, err)
		}
		pairs = append(pairs, macro.Pair{Key: param.Key, Value: rendered})
	}
	return macro.Format(s.Name, pairs), nil
}

func (p Param) render(value any) (string, error) {
	switch p.Kind {
	case String:
		s, ok := stringValue(value)
		if !ok {
			return "", fmt.Errorf("parameter %q wants a string, got %T", p.Key, value)
		}
		return macro.FormatValue(s)
	case Bool:
		b, err := boolValue(value)
		if err != nil {
			return "", fmt.Errorf("parameter %q wants a bool: %w", p.Key, err)
		}
		return macro.FormatValue(b)
	case Int:
		n, err := intValue(value)
		if err != nil {
			return "", fmt.Errorf("parameter %q wants an integer: %w", p.Key, err)
		}
		if err := p.checkBounds(float64(n)); err != nil {
			return "", err
		}
		return macro.FormatValue(n)
	case Float:
		f, err := floatValue(value)
		if err != nil {
			return "", fmt.Errorf("parameter %q wants a number: %w", p.Key, err)
		}
		if err := p.checkBounds(f); err != nil {
			return "", err
		}
		return macro.FormatValue(f)
	case Enum:
		s, ok := stringValue(value)
		if !ok {
			return "", fmt.Errorf("parameter %q wants one of %s, got %T", p.Key, strings.Join(p.Enum, ", "), value)
		}
		canonical, ok := canonicalEnum(p.Enum, s)
		if !ok {
			return "", fmt.Errorf("parameter %q wants one of %s, got %q", p.Key, strings.Join(p.Enum, ", "), s)
		}
		return macro.FormatValue(canonical)
	}
	return "", fmt.Errorf("parameter %q has unknown kind", p.Key)
}

func (p Param) checkBounds(v float64) error {
	if !p.Bounded || (v >= p.Min && v <= p.Max) {
		return nil
	}
	switch {
	case math.IsInf(p.Min, -1):
		return fmt.Errorf("parameter %q must be at most %v, got %v", p.Key, p.Max, v)
	case math.IsInf(p.Max, 1):
		return fmt.Errorf("parameter %q must be at least %v, got %v", p.Key, p.Min, v)
	default:
		return fmt.Errorf("parameter %q must be between %v and %v, got %v", p.Key, p.Min, p.Max, v)
	}
}

// canonicalEnum matches candidate case-insensitively against the closed
// value set and returns the canonical wire spelling.
func canonicalEnum(values []string, candidate string) (string, bool) {
	for _, value := range values {
		if strings.EqualFold(value, candidate) {
			return value, true
		}
	}
	return "", false
}

// stringValue accepts plain strings and string-kinded named types, so
// typed enum values pass through without conversion at every call site.
func stringValue(value any) (string, bool) {
	if s, ok := value.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(value)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func boolValue(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("got %q", v)
		}
		return b, nil
	}
	return false, fmt.Errorf("got %T", value)
}

func intValue(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("got non-integer %v", v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("got %q", v)
		}
		return n, nil
	}
	return 0, fmt.Errorf("got %T", value)
}

func floatValue(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("got %q", v)
		}
		return f, nil
	}
	return 0, fmt.Errorf("got %T", value)
}
