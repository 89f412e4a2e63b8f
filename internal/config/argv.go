package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	errUnterminatedQuote  = errors.New("unterminated quote")
	errUnterminatedEscape = errors.New("unterminated escape sequence")
)

// parseArgv splits a command string into argv with shell-like quoting, so
// audacity_cmd can carry flags and spaced paths. A leading # comments out
// the whole string.
func parseArgv(input string) ([]string, error) {
	rest := strings.TrimSpace(input)
	if rest == "" || rest[0] == '#' {
		return nil, nil
	}

	var argv []string
	for {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" {
			return argv, nil
		}
		word, remaining, err := nextWord(rest)
		if err != nil {
			return nil, fmt.Errorf("%w in command: %q", err, input)
		}
		argv = append(argv, word)
		rest = remaining
	}
}

// nextWord consumes one argument from the front of s. Backslash escapes the
// following rune anywhere; quotes group without being part of the word.
func nextWord(s string) (string, string, error) {
	var (
		word  strings.Builder
		quote rune
	)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		switch {
		case r == '\\':
			if i >= len(s) {
				return "", "", errUnterminatedEscape
			}
			escaped, escapedSize := utf8.DecodeRuneInString(s[i:])
			word.WriteRune(escaped)
			i += escapedSize
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				word.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
		case unicode.IsSpace(r):
			return word.String(), s[i:], nil
		default:
			word.WriteRune(r)
		}
	}

	if quote != 0 {
		return "", "", errUnterminatedQuote
	}
	return word.String(), "", nil
}

func mustParseArgv(input string) []string {
	argv, err := parseArgv(input)
	if err != nil {
		panic(err)
	}
	return argv
}
