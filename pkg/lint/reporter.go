package lint

import (
	"github.com/tidydown/tidydown/pkg/config"
	"github.com/tidydown/tidydown/pkg/mdast"
)

// Reporter accumulates diagnostics for a single rule invocation on a
// single file. Diagnostics appear in the order they were reported, which
// matches ascending source position when the rule visits nodes in
// document order. A Reporter is exclusively owned by the invocation that
// created it and is not safe for concurrent use.
type Reporter struct {
	ruleID   string
	ruleName string
	filePath string
	severity config.Severity
	diags    []Diagnostic
	failed   bool
}

// NewReporter creates a Reporter bound to one rule and one file.
func NewReporter(ruleID, ruleName, filePath string, severity config.Severity) *Reporter {
	return &Reporter{
		ruleID:   ruleID,
		ruleName: ruleName,
		filePath: filePath,
		severity: severity,
	}
}

// ReportOption customizes a diagnostic under construction.
type ReportOption func(*Diagnostic)

// WithSuggestion attaches a human-readable resolution hint.
func WithSuggestion(s string) ReportOption {
	return func(d *Diagnostic) {
		d.Suggestion = s
	}
}

// WithSeverity overrides the reporter's default severity.
func WithSeverity(s config.Severity) ReportOption {
	return func(d *Diagnostic) {
		d.Severity = s
	}
}

// Report appends a diagnostic positioned at the given node.
// Generated nodes are silently dropped: a node with no reliable source
// location can never be the subject of a diagnostic.
func (r *Reporter) Report(node *mdast.Node, message string, opts ...ReportOption) {
	if node == nil || node.IsGenerated() {
		return
	}
	r.ReportAt(node.Position(), message, opts...)
}

// ReportAt appends a diagnostic at an explicit position.
func (r *Reporter) ReportAt(pos mdast.Position, message string, opts ...ReportOption) {
	d := Diagnostic{
		RuleID:      r.ruleID,
		RuleName:    r.ruleName,
		Message:     message,
		Severity:    r.severity,
		FilePath:    r.filePath,
		StartLine:   pos.Start.Line,
		StartColumn: pos.Start.Column,
		StartOffset: pos.Start.Offset,
		EndLine:     pos.End.Line,
		EndColumn:   pos.End.Column,
		EndOffset:   pos.End.Offset,
	}
	for _, opt := range opts {
		opt(&d)
	}
	r.diags = append(r.diags, d)
}

// Fail appends a fatal diagnostic and marks the invocation as failed.
// Used when option validation rejects a configured value; the rule must
// stop further processing after calling Fail.
func (r *Reporter) Fail(message string) {
	r.failed = true
	r.diags = append(r.diags, Diagnostic{
		RuleID:      r.ruleID,
		RuleName:    r.ruleName,
		Message:     message,
		Severity:    config.SeverityError,
		FilePath:    r.filePath,
		StartLine:   1,
		StartColumn: 1,
		EndLine:     1,
		EndColumn:   1,
		Fatal:       true,
	})
}

// Failed returns true if Fail was called.
func (r *Reporter) Failed() bool {
	return r.failed
}

// Diagnostics returns the accumulated diagnostics in emission order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diags
}

// Count returns the number of accumulated diagnostics.
func (r *Reporter) Count() int {
	return len(r.diags)
}
