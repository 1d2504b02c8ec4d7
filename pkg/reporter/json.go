package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidydown/tidydown/pkg/runner"
)

const severityWarning = "warning"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	RuleErrors  map[string]string `json:"ruleErrors,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// JSONPoint is a resolved source location.
type JSONPoint struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// JSONPosition is a start/end location pair.
type JSONPosition struct {
	Start JSONPoint `json:"start"`
	End   JSONPoint `json:"end"`
}

// JSONDiagnostic represents a single diagnostic. The shape is stable and
// treated as a public contract for downstream tooling.
type JSONDiagnostic struct {
	RuleID     string       `json:"ruleId"`
	RuleName   string       `json:"ruleName"`
	Severity   string       `json:"severity"`
	Message    string       `json:"message"`
	Position   JSONPosition `json:"position"`
	Suggestion string       `json:"suggestion,omitempty"`
	Fatal      bool         `json:"fatal,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesErrored    int            `json:"filesErrored"`
	TotalIssues     int            `json:"totalIssues"`
	RuleFailures    int            `json:"ruleFailures"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:        file.Path,
			Diagnostics: make([]JSONDiagnostic, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if file.Result != nil {
			for id, ruleErr := range file.Result.RuleErrors {
				if fileResult.RuleErrors == nil {
					fileResult.RuleErrors = make(map[string]string)
				}
				fileResult.RuleErrors[id] = ruleErr.Error()
				output.Summary.RuleFailures++
			}

			for _, diag := range file.Result.Diagnostics {
				jsonDiag := JSONDiagnostic{
					RuleID:   diag.RuleID,
					RuleName: diag.RuleName,
					Severity: string(diag.Severity),
					Message:  diag.Message,
					Position: JSONPosition{
						Start: JSONPoint{Line: diag.StartLine, Column: diag.StartColumn, Offset: diag.StartOffset},
						End:   JSONPoint{Line: diag.EndLine, Column: diag.EndColumn, Offset: diag.EndOffset},
					},
					Suggestion: diag.Suggestion,
					Fatal:      diag.Fatal,
				}

				fileResult.Diagnostics = append(fileResult.Diagnostics, jsonDiag)
				output.Summary.TotalIssues++

				severity := string(diag.Severity)
				if severity == "" {
					severity = severityWarning
				}
				output.Summary.BySeverity[severity]++
			}
		}

		if len(fileResult.Diagnostics) > 0 {
			output.Summary.FilesWithIssues++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}
