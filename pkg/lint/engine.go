package lint

import (
	"context"
	"errors"
	"fmt"

	"github.com/tidydown/tidydown/pkg/config"
	"github.com/tidydown/tidydown/pkg/mdast"
)

// FileResult contains the results of linting a single file.
type FileResult struct {
	// Snapshot is the parsed file.
	Snapshot *mdast.FileSnapshot

	// Diagnostics contains all issues found, grouped by rule in rule ID
	// order; within each rule, in the rule's emission order.
	Diagnostics []Diagnostic

	// RuleErrors contains any errors from rule execution, keyed by rule ID.
	// A configuration error here is fatal to that rule alone; other rules
	// ran normally.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// ConfigErrors returns the subset of rule errors that are configuration
// errors, keyed by rule ID.
func (fr *FileResult) ConfigErrors() map[string]*ConfigError {
	var out map[string]*ConfigError
	for id, err := range fr.RuleErrors {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			if out == nil {
				out = make(map[string]*ConfigError)
			}
			out[id] = cfgErr
		}
	}
	return out
}

// Engine coordinates parsing and rule execution for linting.
type Engine struct {
	// Parser parses Markdown files into FileSnapshots.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// LintFile parses and lints a single file.
//
// Each enabled rule runs against the same immutable snapshot with a fresh
// Reporter. A rule that returns an error, including a *ConfigError from
// option validation, is recorded in RuleErrors and contributes whatever
// diagnostics it had emitted before failing; execution then continues with
// the next rule.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	snapshot, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	resolved := ResolveRules(e.Registry, cfg)

	result := &FileResult{
		Snapshot:   snapshot,
		RuleErrors: make(map[string]error),
	}

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		reporter := NewReporter(rr.Rule.ID(), rr.Rule.Name(), path, rr.Severity)
		ruleCtx := NewRuleContext(ctx, snapshot, cfg, rr.Config, reporter)

		if err := rr.Rule.Apply(ruleCtx); err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
		}

		result.Diagnostics = append(result.Diagnostics, reporter.Diagnostics()...)
	}

	return result, nil
}
