package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

type jsoncConfig struct {
	Pipe             *jsoncPipe  `json:"pipe"`
	AllowInteractive *bool       `json:"allow_interactive"`
	AudacityCmd      *string     `json:"audacity_cmd"`
	Debug            *jsoncDebug `json:"debug"`
}

type jsoncPipe struct {
	To               *string `json:"to"`
	From             *string `json:"from"`
	ReceiveTimeoutMS *int    `json:"receive_timeout_ms"`
}

type jsoncDebug struct {
	WireDump *bool `json:"wire_dump"`
}

func parseJSONC(content string, base Config) (Config, []Warning, error) {
	normalized, err := normalizeJSONC(content)
	if err != nil {
		return Config{}, nil, err
	}

	decoder := json.NewDecoder(strings.NewReader(normalized))
	decoder.DisallowUnknownFields()

	var payload jsoncConfig
	if err := decoder.Decode(&payload); err != nil {
		return Config{}, nil, wrapJSONDecodeError(normalized, err)
	}
	if err := ensureSingleJSONValue(decoder); err != nil {
		return Config{}, nil, wrapJSONDecodeError(normalized, err)
	}

	cfg := base
	if err := payload.applyTo(&cfg); err != nil {
		return Config{}, nil, err
	}

	warnings, err := Validate(cfg)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, warnings, nil
}

func (payload jsoncConfig) applyTo(cfg *Config) error {
	if payload.Pipe != nil {
		if payload.Pipe.To != nil {
			cfg.Pipe.To = strings.TrimSpace(*payload.Pipe.To)
		}
		if payload.Pipe.From != nil {
			cfg.Pipe.From = strings.TrimSpace(*payload.Pipe.From)
		}
		if payload.Pipe.ReceiveTimeoutMS != nil {
			cfg.Pipe.ReceiveTimeoutMS = *payload.Pipe.ReceiveTimeoutMS
		}
	}

	if payload.AllowInteractive != nil {
		cfg.AllowInteractive = *payload.AllowInteractive
	}

	if payload.AudacityCmd != nil {
		raw := *payload.AudacityCmd
		argv, err := parseArgv(raw)
		if err != nil {
			return fmt.Errorf("invalid audacity_cmd: %w", err)
		}
		cfg.Audacity = CommandConfig{Raw: raw, Argv: argv}
	}

	if payload.Debug != nil && payload.Debug.WireDump != nil {
		cfg.Debug.WireDump = *payload.Debug.WireDump
	}

	return nil
}

type jsoncState int

const (
	jsoncCode jsoncState = iota
	jsoncString
	jsoncStringEscape
	jsoncLineComment
	jsoncBlockComment
)

// normalizeJSONC rewrites JSONC to plain JSON in one pass. Comment bytes
// become spaces (newlines, CRs, and tabs survive) so decoder errors still
// point at the right line and column of the original text. A comma is held
// back until the next significant character: if that character closes an
// object or array the comma is dropped, otherwise it is emitted just before
// it.
func normalizeJSONC(content string) (string, error) {
	var out strings.Builder
	out.Grow(len(content))

	state := jsoncCode
	pendingComma := false
	flushComma := func() {
		if pendingComma {
			out.WriteByte(',')
			pendingComma = false
		}
	}

	for i := 0; i < len(content); i++ {
		ch := content[i]

		switch state {
		case jsoncLineComment:
			if ch == '\n' || ch == '\r' {
				state = jsoncCode
				out.WriteByte(ch)
			} else {
				out.WriteByte(' ')
			}

		case jsoncBlockComment:
			switch {
			case ch == '*' && i+1 < len(content) && content[i+1] == '/':
				state = jsoncCode
				out.WriteString("  ")
				i++
			case ch == '\n' || ch == '\r' || ch == '\t':
				out.WriteByte(ch)
			default:
				out.WriteByte(' ')
			}

		case jsoncString:
			out.WriteByte(ch)
			switch ch {
			case '\\':
				state = jsoncStringEscape
			case '"':
				state = jsoncCode
			}

		case jsoncStringEscape:
			out.WriteByte(ch)
			state = jsoncString

		default:
			switch {
			case ch == '/' && i+1 < len(content) && content[i+1] == '/':
				state = jsoncLineComment
				out.WriteString("  ")
				i++
			case ch == '/' && i+1 < len(content) && content[i+1] == '*':
				state = jsoncBlockComment
				out.WriteString("  ")
				i++
			case ch == ',':
				flushComma()
				pendingComma = true
			case ch == ' ' || ch == '\n' || ch == '\r' || ch == '\t':
				out.WriteByte(ch)
			case ch == '}' || ch == ']':
				pendingComma = false
				out.WriteByte(ch)
			default:
				flushComma()
				if ch == '"' {
					state = jsoncString
				}
				out.WriteByte(ch)
			}
		}
	}

	// An unterminated string falls through to the JSON decoder, which
	// reports it with position information.
	if state == jsoncBlockComment {
		return "", errors.New("unterminated block comment in JSONC")
	}
	flushComma()

	return out.String(), nil
}

func ensureSingleJSONValue(decoder *json.Decoder) error {
	var extra struct{}
	err := decoder.Decode(&extra)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil {
		return fmt.Errorf("config must be a single JSON value")
	}
	return err
}

func wrapJSONDecodeError(content string, err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := offsetToLineCol(content, syntaxErr.Offset)
		return fmt.Errorf("line %d column %d: %w", line, col, err)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		line, col := offsetToLineCol(content, typeErr.Offset)
		return fmt.Errorf("line %d column %d: %w", line, col, err)
	}

	return err
}

// offsetToLineCol maps a decoder byte offset (1-based, pointing past the
// offending byte) to line and column in the normalized text.
func offsetToLineCol(content string, offset int64) (int, int) {
	if offset <= 0 {
		return 1, 1
	}

	prefix := content[:min(int(offset), len(content))-1]
	line := 1 + strings.Count(prefix, "\n")
	col := len(prefix) + 1
	if nl := strings.LastIndexByte(prefix, '\n'); nl >= 0 {
		col = len(prefix) - nl
	}
	return line, col
}
