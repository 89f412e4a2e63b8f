// Package cli parses audpipe's command line into a command selector and
// global options. Subcommand flags stay unparsed so each subcommand can own
// its flag set.
package cli

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"
)

type Command string

const (
	CommandSend     Command = "send"
	CommandDo       Command = "do"
	CommandInfo     Command = "info"
	CommandMessage  Command = "message"
	CommandCommands Command = "commands"
	CommandDoctor   Command = "doctor"
	CommandVersion  Command = "version"
	CommandHelp     Command = "help"
)

var validCommands = map[Command]struct{}{
	CommandSend:     {},
	CommandDo:       {},
	CommandInfo:     {},
	CommandMessage:  {},
	CommandCommands: {},
	CommandDoctor:   {},
	CommandVersion:  {},
	CommandHelp:     {},
}

type Parsed struct {
	Command    Command
	ConfigPath string
	Timeout    time.Duration
	TimeoutSet bool
	Args       []string
	ShowHelp   bool
}

func Parse(args []string) (Parsed, error) {
	flags := flag.NewFlagSet("audpipe", flag.ContinueOnError)
	flags.SetInterspersed(false)
	flags.SortFlags = false
	flags.Usage = func() {}

	configPath := flags.String("config", "", "config file path")
	timeout := flags.Duration("timeout", 0, "receive timeout override")
	showHelp := flags.BoolP("help", "h", false, "show help")
	showVersion := flags.Bool("version", false, "show version")

	if err := flags.Parse(args); err != nil {
		return Parsed{}, err
	}

	parsed := Parsed{
		Command:    CommandHelp,
		ConfigPath: *configPath,
		Timeout:    *timeout,
		TimeoutSet: flags.Changed("timeout"),
		ShowHelp:   true,
	}

	if *showVersion {
		parsed.Command = CommandVersion
		parsed.ShowHelp = false
		return parsed, nil
	}
	if *showHelp {
		return parsed, nil
	}

	rest := flags.Args()
	if len(rest) == 0 {
		return parsed, nil
	}

	cmd := Command(rest[0])
	if _, ok := validCommands[cmd]; !ok {
		return Parsed{}, fmt.Errorf("unknown command: %s", rest[0])
	}

	parsed.Command = cmd
	parsed.ShowHelp = cmd == CommandHelp
	parsed.Args = rest[1:]
	return parsed, nil
}

func HelpText(binaryName string) string {
	return fmt.Sprintf(`Usage:
  %[1]s [--config PATH] [--timeout DURATION] <command> [args]

Commands:
  send COMMAND      Send a raw scripting command and print the response
  do NAME [K=V...]  Run a known command with validated parameters
  info              Print project information (see info --help)
  message TEXT      Round-trip a message through the application
  commands [NAME]   List known commands or describe one
  doctor            Run configuration and environment checks
  version           Print version information
  help              Show this help

Flags:
  --config PATH       Config file path (default: $XDG_CONFIG_HOME/audpipe/config.jsonc)
  --timeout DURATION  Wait at most this long for each reply, e.g. 2s (0 waits forever)
  -h, --help          Show help
  --version           Show version

Audacity must be running with mod-script-pipe enabled
(Preferences > Modules) for any command to reach it.
`, binaryName)
}
