package stratalint

// Issue is a single lint finding in a file. Err wraps one of the sentinel
// errors so callers can classify findings with errors.Is.
type Issue struct {
	File string
	Pos  Position
	Err  error
}

// Message returns the human-readable description of the finding.
func (i Issue) Message() string {
	if i.Err == nil {
		return ""
	}
	return i.Err.Error()
}
