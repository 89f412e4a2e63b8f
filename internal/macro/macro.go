// Package macro renders commands in the application's scripting syntax: a
// command name, optionally followed by a colon and space-separated
// Key="Value" pairs.
package macro

import (
	"fmt"
	"strconv"
	"strings"
)

// Pair is one rendered parameter.
type Pair struct {
	Key   string
	Value string
}

// Format renders one command line: the bare name when no parameters are
// given, otherwise `Name: Key="Value" Key2="Value2"`.
func Format(name string, pairs []Pair) string {
	if len(pairs) == 0 {
		return name
	}
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(":")
	for _, pair := range pairs {
		b.WriteString(" ")
		b.WriteString(pair.Key)
		b.WriteString(`="`)
		b.WriteString(pair.Value)
		b.WriteString(`"`)
	}
	return b.String()
}

// FormatValue renders a parameter value: strings pass through verbatim,
// bools use the True/False spellings the application accepts, numbers use
// their shortest decimal form. String values containing a quote, line
// break, or NUL are rejected because the value syntax has no escaping and
// such bytes would corrupt framing.
func FormatValue(v any) (string, error) {
	switch value := v.(type) {
	case string:
		if strings.ContainsAny(value, "\"\r\n\x00") {
			return "", fmt.Errorf("value %q contains characters the pipe syntax cannot frame", value)
		}
		return value, nil
	case bool:
		if value {
			return "True", nil
		}
		return "False", nil
	case int:
		return strconv.Itoa(value), nil
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported parameter value type %T", v)
	}
}
