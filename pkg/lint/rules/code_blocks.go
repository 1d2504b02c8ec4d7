package rules

import (
	"fmt"
	"strings"

	"github.com/tidydown/tidydown/pkg/langdetect"
	"github.com/tidydown/tidydown/pkg/lint"
	"github.com/tidydown/tidydown/pkg/mdast"
)

// Code block style names.
const (
	styleFenced   = "fenced"
	styleIndented = "indented"
	styleBacktick = "backtick"
	styleTilde    = "tilde"
)

// CodeBlockStyleRule enforces a single code block style (fenced vs indented)
// across the document.
type CodeBlockStyleRule struct {
	lint.BaseRule
}

// NewCodeBlockStyleRule creates a new code block style rule.
func NewCodeBlockStyleRule() *CodeBlockStyleRule {
	return &CodeBlockStyleRule{
		BaseRule: lint.NewBaseRule(
			"TD001",
			"code-block-style",
			"Code block style should be consistent",
			[]string{"code", "style"},
		),
	}
}

// Apply checks that code blocks use a consistent style.
func (r *CodeBlockStyleRule) Apply(ctx *lint.RuleContext) error {
	style, err := ctx.Option("style").StringEnum(r.ID(), "style",
		lint.ConsistentSentinel, styleFenced, styleIndented)
	if err != nil {
		return ctx.Fail(err)
	}

	if ctx.Root == nil {
		return nil
	}

	tracker := lint.InferredStyle[string]()
	if style != lint.ConsistentSentinel {
		tracker = lint.FixedStyle(style)
	}

	verdicts := lint.InferStyles(ctx.CodeBlocks(), tracker,
		func(n *mdast.Node) (string, bool) {
			if lint.IsIndentedCodeBlock(n) {
				return styleIndented, true
			}
			return styleFenced, true
		})

	for _, v := range verdicts {
		if ctx.Cancelled() {
			return fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		ctx.Reporter.Report(v.Node,
			fmt.Sprintf("Code blocks should be %s", v.Want),
			lint.WithSuggestion(fmt.Sprintf("Rewrite this block using %s style", v.Want)))
	}

	return nil
}

// CodeFenceStyleRule enforces a single fence character (backtick vs tilde)
// across the document's fenced code blocks.
type CodeFenceStyleRule struct {
	lint.BaseRule
}

// NewCodeFenceStyleRule creates a new code fence style rule.
func NewCodeFenceStyleRule() *CodeFenceStyleRule {
	return &CodeFenceStyleRule{
		BaseRule: lint.NewBaseRule(
			"TD002",
			"code-fence-style",
			"Code fence style should be consistent",
			[]string{"code", "style"},
		),
	}
}

// Apply checks that fenced code blocks use a consistent fence character.
// Indented code blocks have no fence and neither pin nor violate the style.
func (r *CodeFenceStyleRule) Apply(ctx *lint.RuleContext) error {
	style, err := ctx.Option("style").StringEnum(r.ID(), "style",
		lint.ConsistentSentinel, styleBacktick, styleTilde)
	if err != nil {
		return ctx.Fail(err)
	}

	if ctx.Root == nil {
		return nil
	}

	tracker := lint.InferredStyle[string]()
	if style != lint.ConsistentSentinel {
		tracker = lint.FixedStyle(style)
	}

	verdicts := lint.InferStyles(ctx.CodeBlocks(), tracker,
		func(n *mdast.Node) (string, bool) {
			switch lint.CodeFenceChar(n) {
			case '`':
				return styleBacktick, true
			case '~':
				return styleTilde, true
			default:
				return "", false
			}
		})

	for _, v := range verdicts {
		if ctx.Cancelled() {
			return fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		ctx.Reporter.Report(v.Node,
			fmt.Sprintf("Code fence style should be %s", v.Want),
			lint.WithSuggestion(fmt.Sprintf("Use %s fences for this block", v.Want)))
	}

	return nil
}

// CodeBlockLanguageRule checks that fenced code blocks carry an info string.
type CodeBlockLanguageRule struct {
	lint.BaseRule
}

// NewCodeBlockLanguageRule creates a new fenced code language rule.
func NewCodeBlockLanguageRule() *CodeBlockLanguageRule {
	return &CodeBlockLanguageRule{
		BaseRule: lint.NewBaseRule(
			"TD008",
			"fenced-code-language",
			"Fenced code blocks should have a language specified",
			[]string{"code"},
		),
	}
}

// Apply checks that fenced code blocks have an info string. When the block
// content identifies a language with confidence, the suggestion names it.
func (r *CodeBlockLanguageRule) Apply(ctx *lint.RuleContext) error {
	if ctx.Root == nil {
		return nil
	}

	for _, cb := range ctx.CodeBlocks() {
		if ctx.Cancelled() {
			return fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if lint.IsIndentedCodeBlock(cb) || cb.IsGenerated() {
			continue
		}

		info := strings.TrimSpace(lint.CodeBlockInfo(cb))
		if info != "" {
			continue
		}

		suggestion := "Add a language identifier after the opening fence"
		if lang := langdetect.Detect(cb.Text()); lang != langdetect.Unknown {
			suggestion = fmt.Sprintf("Add a language identifier after the opening fence, e.g. %q", lang)
		}

		ctx.Reporter.Report(cb,
			"Fenced code block has no language specified",
			lint.WithSuggestion(suggestion))
	}

	return nil
}
