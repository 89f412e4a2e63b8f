// Package app wires config, logging, the pipe channel, and the typed
// client together behind the command-line surface.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/rbright/audpipe/internal/audacity"
	"github.com/rbright/audpipe/internal/catalog"
	"github.com/rbright/audpipe/internal/cli"
	"github.com/rbright/audpipe/internal/config"
	"github.com/rbright/audpipe/internal/doctor"
	"github.com/rbright/audpipe/internal/logging"
	"github.com/rbright/audpipe/internal/pipe"
	"github.com/rbright/audpipe/internal/version"
)

type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

func (r Runner) Execute(ctx context.Context, args []string) int {
	parsed, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n\n", err)
		fmt.Fprint(r.Stderr, cli.HelpText("audpipe"))
		return 2
	}

	if parsed.ShowHelp {
		fmt.Fprint(r.Stdout, cli.HelpText("audpipe"))
		return 0
	}

	if parsed.Command == cli.CommandVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return 0
	}

	if parsed.Command == cli.CommandCommands {
		return r.commandCommands(parsed.Args)
	}

	cfgLoaded, err := config.Load(parsed.ConfigPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	logRuntime, err := logging.New(cfgLoaded.Config.Debug.WireDump)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: setup logging: %v\n", err)
		return 1
	}
	defer func() { _ = logRuntime.Close() }()

	logger := r.Logger
	if logger == nil {
		logger = logRuntime.Logger
	}

	for _, w := range cfgLoaded.Warnings {
		msg := w.Message
		if w.Line > 0 {
			msg = fmt.Sprintf("line %d: %s", w.Line, w.Message)
		}
		fmt.Fprintf(r.Stderr, "warning: %s\n", msg)
		logger.Warn("config warning", "line", w.Line, "message", w.Message)
	}

	logger.Info("command start",
		"command", parsed.Command,
		"config", cfgLoaded.Path,
		"log", logRuntime.Path,
	)

	switch parsed.Command {
	case cli.CommandDoctor:
		report := doctor.Run(ctx, cfgLoaded)
		fmt.Fprintln(r.Stdout, report.String())
		if report.OK() {
			return 0
		}
		return 1
	case cli.CommandSend:
		return r.commandSend(ctx, r.newChannel(cfgLoaded.Config, parsed), parsed.Args)
	case cli.CommandDo:
		return r.commandDo(ctx, r.newClient(cfgLoaded.Config, parsed, logger), parsed.Args)
	case cli.CommandInfo:
		return r.commandInfo(ctx, r.newClient(cfgLoaded.Config, parsed, logger), parsed.Args)
	case cli.CommandMessage:
		return r.commandMessage(ctx, r.newClient(cfgLoaded.Config, parsed, logger), parsed.Args)
	default:
		fmt.Fprintf(r.Stderr, "error: unsupported command %q\n", parsed.Command)
		return 2
	}
}

// newChannel builds the pipe channel, letting --timeout override the
// configured receive timeout. An explicit --timeout 0 means wait forever.
func (r Runner) newChannel(cfg config.Config, parsed cli.Parsed) *pipe.Channel {
	timeout := cfg.Pipe.ReceiveTimeout()
	if parsed.TimeoutSet {
		timeout = parsed.Timeout
	}
	return pipe.New(pipe.Options{
		ToPath:         cfg.Pipe.To,
		FromPath:       cfg.Pipe.From,
		ReceiveTimeout: timeout,
	})
}

func (r Runner) newClient(cfg config.Config, parsed cli.Parsed, logger *slog.Logger) *audacity.Client {
	channel := r.newChannel(cfg, parsed)
	return audacity.NewClient(channel, audacity.Config{AllowInteractive: cfg.AllowInteractive}, logger)
}

// commandSend passes one raw command through unvalidated and prints the
// response verbatim, trailer included.
func (r Runner) commandSend(ctx context.Context, channel *pipe.Channel, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(r.Stderr, "error: send needs a command, e.g. audpipe send 'GetInfo: Type=Tracks'")
		return 2
	}
	command := strings.Join(args, " ")

	response, err := channel.Execute(ctx, command)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprint(r.Stdout, response)
	return 0
}

// commandDo runs one catalog command with KEY=VALUE arguments and prints
// the response payload without the status trailer.
func (r Runner) commandDo(ctx context.Context, client *audacity.Client, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(r.Stderr, "error: do needs a command name; run 'audpipe commands' to list them")
		return 2
	}
	name := args[0]

	params := make(map[string]any, len(args)-1)
	for _, token := range args[1:] {
		key, value, ok := strings.Cut(token, "=")
		if !ok || key == "" {
			fmt.Fprintf(r.Stderr, "error: expected KEY=VALUE, got %q\n", token)
			return 2
		}
		params[key] = value
	}

	raw, err := client.Do(ctx, name, params)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	res := audacity.ParseResult(raw)
	if res.Payload != "" {
		fmt.Fprintln(r.Stdout, res.Payload)
	}
	return 0
}

func (r Runner) commandInfo(ctx context.Context, client *audacity.Client, args []string) int {
	flags := flag.NewFlagSet("info", flag.ContinueOnError)
	flags.SortFlags = false
	flags.Usage = func() {}
	infoType := flags.String("type", "Commands", "subject: Commands, Menus, Preferences, Tracks, Clips, Envelopes, Labels, Boxes")
	format := flags.String("format", "JSON", "output format: JSON, LISP, Brief")

	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 2
	}
	if rest := flags.Args(); len(rest) > 0 {
		fmt.Fprintf(r.Stderr, "error: info takes no positional arguments, got %q\n", rest[0])
		return 2
	}

	payload, err := client.Info(ctx, audacity.InfoType(*infoType), audacity.InfoFormat(*format))
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintln(r.Stdout, payload)
	return 0
}

func (r Runner) commandMessage(ctx context.Context, client *audacity.Client, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(r.Stderr, "error: message needs text to send")
		return 2
	}
	text := strings.Join(args, " ")

	echo, err := client.Message(ctx, text)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintln(r.Stdout, echo)
	return 0
}

// commandCommands lists the catalog or describes one command's schema. It
// never touches the pipe, so it works without a running application.
func (r Runner) commandCommands(args []string) int {
	if len(args) == 0 {
		for _, name := range catalog.Names() {
			fmt.Fprintln(r.Stdout, name)
		}
		return 0
	}
	if len(args) > 1 {
		fmt.Fprintf(r.Stderr, "error: commands takes at most one name, got %d\n", len(args))
		return 2
	}

	spec, ok := catalog.Lookup(args[0])
	if !ok {
		fmt.Fprintf(r.Stderr, "error: unknown command %q\n", args[0])
		return 1
	}
	r.describeSpec(spec)
	return 0
}

func (r Runner) describeSpec(spec catalog.Spec) {
	fmt.Fprintln(r.Stdout, spec.Name)
	if spec.Interactive {
		fmt.Fprintln(r.Stdout, "  opens a dialog; blocked unless allow_interactive is set")
	}
	if len(spec.Params) == 0 {
		if !spec.Interactive {
			fmt.Fprintln(r.Stdout, "  no parameters")
		}
		return
	}
	for _, p := range spec.Params {
		fmt.Fprintf(r.Stdout, "  %-20s %s%s\n", p.Key, p.Kind, paramDetails(p))
	}
}

func paramDetails(p catalog.Param) string {
	details := []string{}
	if p.Required {
		details = append(details, "required")
	}
	if p.Default != nil {
		details = append(details, fmt.Sprintf("default %v", p.Default))
	}
	if len(p.Enum) > 0 {
		details = append(details, "one of "+strings.Join(p.Enum, ", "))
	}
	if text := rangeText(p); text != "" {
		details = append(details, text)
	}
	if len(details) == 0 {
		return ""
	}
	return "  (" + strings.Join(details, "; ") + ")"
}

func rangeText(p catalog.Param) string {
	if !p.Bounded {
		return ""
	}
	switch {
	case math.IsInf(p.Min, -1) && math.IsInf(p.Max, 1):
		return ""
	case math.IsInf(p.Min, -1):
		return fmt.Sprintf("at most %v", p.Max)
	case math.IsInf(p.Max, 1):
		return fmt.Sprintf("at least %v", p.Min)
	default:
		return fmt.Sprintf("%v to %v", p.Min, p.Max)
	}
}
