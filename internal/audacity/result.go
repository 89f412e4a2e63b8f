package audacity

import "strings"

const trailerPrefix = "BatchCommand finished: "

// Result is a response split into its payload and the status trailer the
// application appends to every reply.
type Result struct {
	Payload string
	Status  string // usually "OK"; empty when no trailer was present
}

// ParseResult splits the raw response into payload and status. The trailer
// is the last line when present; responses from older builds or partial
// reads may lack one, in which case the whole text is payload.
func ParseResult(raw string) Result {
	trimmed := strings.TrimRight(raw, "\r\n")
	idx := strings.LastIndex(trimmed, trailerPrefix)
	if idx < 0 || (idx > 0 && trimmed[idx-1] != '\n') {
		return Result{Payload: trimmed}
	}
	return Result{
		Payload: strings.TrimRight(trimmed[:idx], "\r\n"),
		Status:  strings.TrimSpace(trimmed[idx+len(trailerPrefix):]),
	}
}
