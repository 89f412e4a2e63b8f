// Package doctor runs runtime readiness diagnostics for config, pipe
// endpoints, and the scripting channel itself.
package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rbright/audpipe/internal/audacity"
	"github.com/rbright/audpipe/internal/config"
	"github.com/rbright/audpipe/internal/pipe"
)

const (
	probeTimeout = 2 * time.Second
	probeText    = "audpipe doctor ping"
)

// Check is the outcome of one readiness probe.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report collects every check the doctor ran.
type Report struct {
	Checks []Check
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders one "[OK|FAIL] name: message" line per check.
func (r Report) String() string {
	lines := make([]string, 0, len(r.Checks))
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		lines = append(lines, fmt.Sprintf("[%s] %s: %s", status, check.Name, check.Message))
	}
	return strings.Join(lines, "\n")
}

// Prober sends the liveness message. *audacity.Client satisfies it.
type Prober interface {
	Message(ctx context.Context, text string) (string, error)
}

// Run checks the loaded config, both pipe endpoints, the configured launch
// command, and finally the live channel itself.
func Run(ctx context.Context, loaded config.Loaded) Report {
	checks := []Check{}

	configMessage := fmt.Sprintf("loaded %q", loaded.Path)
	if !loaded.Exists {
		configMessage = fmt.Sprintf("%q not found; using defaults", loaded.Path)
	}
	checks = append(checks, Check{Name: "config", Pass: true, Message: configMessage})

	channel := pipe.New(pipe.Options{
		ToPath:         loaded.Config.Pipe.To,
		FromPath:       loaded.Config.Pipe.From,
		ReceiveTimeout: probeTimeout,
	})
	endpoints := channel.Endpoints()

	checks = append(checks, checkEndpoint("pipe.to", endpoints.To))
	checks = append(checks, checkEndpoint("pipe.from", endpoints.From))
	checks = append(checks, checkLaunchCommand(loaded.Config.Audacity.Argv))

	client := audacity.NewClient(channel, audacity.Config{}, nil)
	checks = append(checks, checkRoundTrip(ctx, client))

	return Report{Checks: checks}
}

// checkEndpoint validates that a scripting pipe endpoint exists and is a
// named pipe.
func checkEndpoint(name, path string) Check {
	info, err := os.Stat(path)
	if err != nil {
		return Check{
			Name:    name,
			Pass:    false,
			Message: fmt.Sprintf("%s not found; enable mod-script-pipe in the application and restart it", path),
		}
	}
	if info.Mode()&os.ModeNamedPipe == 0 {
		return Check{Name: name, Pass: false, Message: fmt.Sprintf("%s exists but is not a named pipe", path)}
	}
	return Check{Name: name, Pass: true, Message: fmt.Sprintf("found %s", path)}
}

// checkLaunchCommand reports whether the configured audacity_cmd resolves
// to an executable.
func checkLaunchCommand(argv []string) Check {
	if len(argv) == 0 {
		return Check{Name: "audacity_cmd", Pass: false, Message: "launch command is empty"}
	}
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return Check{Name: "audacity_cmd", Pass: false, Message: fmt.Sprintf("%s is not on PATH", argv[0])}
	}
	return Check{Name: "audacity_cmd", Pass: true, Message: fmt.Sprintf("launch command resolves to %s", path)}
}

// checkRoundTrip sends a message through the live channel and expects it
// echoed back. The goroutine shields the caller from a stale pipe whose
// open never returns; it is abandoned on timeout.
func checkRoundTrip(ctx context.Context, client Prober) Check {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	type outcome struct {
		echo string
		err  error
	}
	results := make(chan outcome, 1)
	go func() {
		echo, err := client.Message(ctx, probeText)
		results <- outcome{echo: echo, err: err}
	}()

	select {
	case res := <-results:
		if res.err != nil {
			return Check{Name: "pipe.roundtrip", Pass: false, Message: res.err.Error()}
		}
		if !strings.Contains(res.echo, probeText) {
			return Check{
				Name:    "pipe.roundtrip",
				Pass:    false,
				Message: fmt.Sprintf("unexpected echo %q", res.echo),
			}
		}
		return Check{Name: "pipe.roundtrip", Pass: true, Message: "application answered the probe"}
	case <-ctx.Done():
		return Check{
			Name:    "pipe.roundtrip",
			Pass:    false,
			Message: fmt.Sprintf("no reply within %s; the application may be stuck or the pipe stale", probeTimeout),
		}
	}
}
