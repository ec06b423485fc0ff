package stratalint

import "errors"

// Common errors used throughout the stratalint package
var (
	// ErrUnmatchedClosing indicates a closing bracket with no opener left on the stack.
	// Balance errors
	ErrUnmatchedClosing = errors.New("unmatched closing bracket")
	// ErrMismatchedClosing indicates a closing bracket that does not pair with the most recent opener.
	ErrMismatchedClosing = errors.New("mismatched closing bracket")
	// ErrUnclosedBracket indicates an opening bracket still open at end of input.
	ErrUnclosedBracket = errors.New("unclosed bracket")

	// ErrDuplicateEntry indicates an item text repeating within a section or subsection scope.
	// Validation errors
	ErrDuplicateEntry = errors.New("duplicate entry")
	// ErrUnknownPrefix indicates a dotted reference token whose prefix names no section.
	ErrUnknownPrefix = errors.New("unknown prefix")
	// ErrUnresolvedToken indicates a reference token matching no section, subsection or item.
	ErrUnresolvedToken = errors.New("unresolved token")

	// ErrFileNotFound indicates a lint target path that does not exist.
	// CLI errors
	ErrFileNotFound = errors.New("file not found")
	// ErrNoInputFiles indicates the CLI was invoked without file arguments.
	ErrNoInputFiles = errors.New("no input files")
	// ErrUnsupportedFormat indicates an unknown report output format.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
