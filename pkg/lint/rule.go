// Package lint provides the rule engine, diagnostics, and registry for tidydown.
package lint

import (
	"github.com/tidydown/tidydown/pkg/config"
	"github.com/tidydown/tidydown/pkg/mdast"
)

// Diagnostic represents a single lint issue found in a file.
// Diagnostics are immutable once created and are surfaced to the caller in
// the order they were emitted.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "code-block-style").
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// StartLine/StartColumn are 1-based; StartOffset is the 0-based byte offset.
	StartLine   int
	StartColumn int
	StartOffset int

	// EndLine/EndColumn are 1-based; EndOffset is the 0-based byte offset.
	EndLine   int
	EndColumn int
	EndOffset int

	// Suggestion is an optional human-readable hint for resolving the issue.
	Suggestion string

	// Fatal marks a configuration failure that aborted the rule invocation.
	Fatal bool
}

// Position returns the diagnostic position as an mdast.Position.
func (d *Diagnostic) Position() mdast.Position {
	return mdast.Position{
		Start: mdast.Point{Line: d.StartLine, Column: d.StartColumn, Offset: d.StartOffset},
		End:   mdast.Point{Line: d.EndLine, Column: d.EndColumn, Offset: d.EndOffset},
	}
}

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "TD001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g., ["style", "code"]).
	Tags() []string

	// Apply executes the rule against the given context.
	//
	// Rules must:
	//   - Emit diagnostics solely through ctx.Reporter.
	//   - Validate options eagerly, before any traversal, and return the
	//     *ConfigError (after ctx.Reporter.Fail) when validation fails.
	//   - Never mutate the tree or the file snapshot.
	//   - Respect context cancellation.
	Apply(ctx *RuleContext) error
}
