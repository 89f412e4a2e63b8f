package version

import (
	"fmt"
	"runtime"
)

// Populated at build time via -ldflags -X.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the single line printed by the version command.
func String() string {
	return fmt.Sprintf("audpipe %s (commit %s, built %s, %s)", Version, Commit, Date, runtime.Version())
}
