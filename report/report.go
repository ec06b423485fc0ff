// Package report renders lint results as human-readable text or as a
// machine-readable JSON/YAML document.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	stratalint "github.com/stratalint/stratalint"
	"github.com/stratalint/stratalint/lint"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Printer renders a run's results. Text mode prints OK lines to Stdout and
// error blocks to Stderr; json and yaml write a single document to Stdout.
type Printer struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Format  string
	Quiet   bool
	NoColor bool
}

// Print renders all file results in input order.
func (p *Printer) Print(results []lint.FileResult) error {
	switch p.Format {
	case FormatText, "":
		p.printText(results)
		return nil
	case FormatJSON:
		encoder := json.NewEncoder(p.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(buildReport(results))
	case FormatYAML:
		data, err := yaml.Marshal(buildReport(results))
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}

		_, err = p.Stdout.Write(data)

		return err
	default:
		return fmt.Errorf("%w: %s", stratalint.ErrUnsupportedFormat, p.Format)
	}
}

func (p *Printer) printText(results []lint.FileResult) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	if p.NoColor {
		green.DisableColor()
		red.DisableColor()
	}

	for _, result := range results {
		switch {
		case result.Err != nil:
			red.Fprintf(p.Stderr, "%v\n", result.Err)
		case len(result.Issues) > 0:
			red.Fprintf(p.Stderr, "Errors in %s:\n", result.Path)

			for _, issue := range result.Issues {
				fmt.Fprintf(p.Stderr, "  %s\n", issue.Message())
			}
		default:
			if !p.Quiet {
				green.Fprintf(p.Stdout, "OK: %s\n", result.Path)
			}
		}
	}
}

// Report is the machine-readable form of a whole run.
type Report struct {
	Files  []FileReport `json:"files" yaml:"files"`
	Failed bool         `json:"failed" yaml:"failed"`
}

// FileReport is the machine-readable form of one file's results.
type FileReport struct {
	Path   string        `json:"path" yaml:"path"`
	OK     bool          `json:"ok" yaml:"ok"`
	Error  string        `json:"error,omitempty" yaml:"error,omitempty"`
	Issues []IssueReport `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// IssueReport is the machine-readable form of a single finding.
type IssueReport struct {
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Message string `json:"message" yaml:"message"`
}

func buildReport(results []lint.FileResult) Report {
	report := Report{Files: make([]FileReport, 0, len(results))}

	for _, result := range results {
		fileReport := FileReport{
			Path: result.Path,
			OK:   !result.Failed(),
		}

		if result.Err != nil {
			fileReport.Error = result.Err.Error()
		}

		for _, issue := range result.Issues {
			fileReport.Issues = append(fileReport.Issues, IssueReport{
				Line:    issue.Pos.Line,
				Column:  issue.Pos.Column,
				Message: issue.Message(),
			})
		}

		if !fileReport.OK {
			report.Failed = true
		}

		report.Files = append(report.Files, fileReport)
	}

	return report
}
