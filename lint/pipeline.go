// Package lint runs the per-file check pipeline: balance gate, structural
// parse, then duplicate detection and token resolution over the parsed
// structure.
package lint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	stratalint "github.com/stratalint/stratalint"
	"github.com/stratalint/stratalint/balance"
	"github.com/stratalint/stratalint/structparser"
)

// FileResult is the outcome of linting one file. Err is set for file-level
// failures (missing file, read error); Issues holds lint findings.
type FileResult struct {
	Path   string
	Issues []stratalint.Issue
	Err    error
}

// Failed reports whether the file should mark the run as failed.
func (r FileResult) Failed() bool {
	return r.Err != nil || len(r.Issues) > 0
}

// CheckFile lints a single file. A balance error is fatal for the file and
// reported alone; duplicate and token issues are accumulated and reported
// together.
func CheckFile(path string) FileResult {
	resolved := resolvePath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileResult{Path: resolved, Err: fmt.Errorf("%w: %s", stratalint.ErrFileNotFound, path)}
		}

		return FileResult{Path: resolved, Err: fmt.Errorf("failed to read %s: %w", path, err)}
	}

	src := string(data)

	if issue := balance.Check(resolved, src); issue != nil {
		return FileResult{Path: resolved, Issues: []stratalint.Issue{*issue}}
	}

	parsed := structparser.Parse(resolved, src)

	issues := Duplicates(resolved, parsed)
	issues = append(issues, ResolveTokens(parsed)...)

	return FileResult{Path: resolved, Issues: issues}
}

// resolvePath returns the absolute form of path, or path itself if it
// cannot be resolved.
func resolvePath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}

	return path
}
