package pipe

import (
	"fmt"
	"time"
)

// Endpoints names the two scripting pipe paths and the framing rules the
// application expects on one platform.
type Endpoints struct {
	To         string        // carries command text to the application
	From       string        // carries response text back
	Terminator string        // appended to every outbound command
	Settle     time.Duration // post-check and post-close pause, zero outside Windows
}

// DefaultEndpoints returns the endpoint table entry for goos. POSIX builds
// of the application suffix both FIFO names with the owning user id; the
// Windows build uses fixed named-pipe identifiers. The Windows entry also
// carries a short settle pause between the existence check and the open,
// which the named-pipe transport needs before it reports ready.
func DefaultEndpoints(goos string, uid int) Endpoints {
	if goos == "windows" {
		return Endpoints{
			To:         `\\.\pipe\ToSrvPipe`,
			From:       `\\.\pipe\FromSrvPipe`,
			Terminator: "\r\n\x00",
			Settle:     100 * time.Microsecond,
		}
	}
	return Endpoints{
		To:         fmt.Sprintf("/tmp/audacity_script_pipe.to.%d", uid),
		From:       fmt.Sprintf("/tmp/audacity_script_pipe.from.%d", uid),
		Terminator: "\n",
	}
}
