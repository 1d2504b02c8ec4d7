package lint

import (
	"context"

	"github.com/tidydown/tidydown/pkg/config"
	"github.com/tidydown/tidydown/pkg/mdast"
)

// RuleContext provides all context needed by a rule to perform linting.
//
// Design note: RuleContext stores context.Context as a field (Ctx) rather
// than passing it as a method parameter. This is acceptable because
// RuleContext is a short-lived parameter object created per rule
// invocation, not a long-lived struct. It keeps the Rule interface to a
// single Apply method while still providing cancellation support via the
// Cancelled() helper.
type RuleContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// File is the parsed FileSnapshot.
	File *mdast.FileSnapshot

	// Root is the AST root node (convenience alias for File.Root).
	Root *mdast.Node

	// Config is the resolved configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig

	// Reporter accumulates this invocation's diagnostics.
	Reporter *Reporter
}

// NewRuleContext creates a RuleContext for the given file and configuration.
func NewRuleContext(
	ctx context.Context,
	file *mdast.FileSnapshot,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
	reporter *Reporter,
) *RuleContext {
	var root *mdast.Node
	var path string
	if file != nil {
		root = file.Root
		path = file.Path
	}

	if reporter == nil {
		reporter = NewReporter("", "", path, config.SeverityWarning)
	}

	return &RuleContext{
		Ctx:        ctx,
		File:       file,
		Root:       root,
		Config:     cfg,
		RuleConfig: ruleCfg,
		Reporter:   reporter,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Option returns the tagged option value for the given key.
// An absent rule config or key yields an unset option.
func (rc *RuleContext) Option(key string) Option {
	if rc.RuleConfig == nil || rc.RuleConfig.Options == nil {
		return Option{Kind: OptionUnset}
	}
	raw, ok := rc.RuleConfig.Options[key]
	if !ok {
		return Option{Kind: OptionUnset}
	}
	return ParseOption(raw)
}

// Fail reports a configuration failure through the Reporter and returns
// the error for the engine to record. Rules call this when eager option
// validation rejects a value and must return immediately afterwards.
func (rc *RuleContext) Fail(err error) error {
	rc.Reporter.Fail(err.Error())
	return err
}

// Headings returns all heading nodes in the document.
func (rc *RuleContext) Headings() []*mdast.Node {
	return mdast.FindByKind(rc.Root, mdast.NodeHeading)
}

// CodeBlocks returns all code block nodes in the document.
func (rc *RuleContext) CodeBlocks() []*mdast.Node {
	return mdast.FindByKind(rc.Root, mdast.NodeCodeBlock)
}

// Blockquotes returns all blockquote nodes in the document.
func (rc *RuleContext) Blockquotes() []*mdast.Node {
	return mdast.FindByKind(rc.Root, mdast.NodeBlockquote)
}
