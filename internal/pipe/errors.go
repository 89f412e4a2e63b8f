package pipe

import (
	"errors"
	"fmt"
	"strings"
)

// failureMarker is the substring the application embeds in a response when
// a command did not succeed.
const failureMarker = "BatchCommand finished: Failed!"

// UnavailableError reports a scripting pipe endpoint missing from the
// filesystem, meaning the application is not running or mod-script-pipe is
// not enabled.
type UnavailableError struct {
	Path string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s does not exist; ensure Audacity is running with mod-script-pipe enabled", e.Path)
}

// CommandError reports a command the application received and rejected.
// Response holds the full raw response text, failure marker included.
type CommandError struct {
	Response string
}

func (e *CommandError) Error() string {
	return "command failed: " + strings.TrimSpace(e.Response)
}

// IsUnavailable reports whether err means a missing pipe endpoint.
func IsUnavailable(err error) bool {
	var unavailable *UnavailableError
	return errors.As(err, &unavailable)
}

// IsCommandFailed reports whether err carries a failure response from the
// application.
func IsCommandFailed(err error) bool {
	var failed *CommandError
	return errors.As(err, &failed)
}
