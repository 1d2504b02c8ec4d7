package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/tidydown/tidydown/pkg/lint"
	"github.com/tidydown/tidydown/pkg/mdast"
)

// Heading style names.
const (
	styleATX    = "atx"
	styleSetext = "setext"
)

// HeadingStyleRule enforces a single heading syntax (ATX vs setext) across
// the document.
type HeadingStyleRule struct {
	lint.BaseRule
}

// NewHeadingStyleRule creates a new heading style rule.
func NewHeadingStyleRule() *HeadingStyleRule {
	return &HeadingStyleRule{
		BaseRule: lint.NewBaseRule(
			"TD003",
			"heading-style",
			"Heading style should be consistent",
			[]string{"headings", "style"},
		),
	}
}

// Apply checks that headings use a consistent syntax. Setext only supports
// levels 1 and 2, so deeper headings are exempt when setext is preferred.
func (r *HeadingStyleRule) Apply(ctx *lint.RuleContext) error {
	style, err := ctx.Option("style").StringEnum(r.ID(), "style",
		lint.ConsistentSentinel, styleATX, styleSetext)
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

	verdicts := lint.InferStyles(ctx.Headings(), tracker,
		func(n *mdast.Node) (string, bool) {
			if lint.IsSetextHeading(n) {
				return styleSetext, true
			}
			return styleATX, true
		})

	for _, v := range verdicts {
		if ctx.Cancelled() {
			return fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		if v.Want == styleSetext && lint.HeadingLevel(v.Node) > 2 {
			continue
		}
		ctx.Reporter.Report(v.Node,
			fmt.Sprintf("Heading style should be %s", v.Want),
			lint.WithSuggestion(fmt.Sprintf("Rewrite this heading in %s style", v.Want)))
	}

	return nil
}

// DuplicateHeadingRule flags headings whose text repeats earlier heading
// text in the same document.
type DuplicateHeadingRule struct {
	lint.BaseRule
}

// NewDuplicateHeadingRule creates a new duplicate heading rule.
func NewDuplicateHeadingRule() *DuplicateHeadingRule {
	return &DuplicateHeadingRule{
		BaseRule: lint.NewBaseRule(
			"TD004",
			"no-duplicate-heading",
			"Multiple headings should not have the same content",
			[]string{"headings"},
		),
	}
}

// Apply checks for duplicate heading text. Comparison is case insensitive
// with whitespace runs collapsed. The diagnostic for a repeat names the
// line of the first occurrence.
func (r *DuplicateHeadingRule) Apply(ctx *lint.RuleContext) error {
	if ctx.Root == nil {
		return nil
	}

	firstSeen := make(map[string]int)

	for _, h := range ctx.Headings() {
		if ctx.Cancelled() {
			return fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if h.IsGenerated() {
			continue
		}

		text := lint.HeadingText(h)
		key := lint.NormalizeHeadingText(text)
		if key == "" {
			continue
		}

		line := h.Position().Start.Line
		if prev, ok := firstSeen[key]; ok {
			ctx.Reporter.Report(h,
				fmt.Sprintf("Heading %q duplicates the heading on line %d", text, prev),
				lint.WithSuggestion("Reword this heading or merge the sections"))
			continue
		}
		firstSeen[key] = line
	}

	return nil
}

// HeadingLengthRule flags headings whose rendered text exceeds a maximum
// length.
type HeadingLengthRule struct {
	lint.BaseRule
}

// defaultHeadingLength is the maximum heading length when the "length"
// option is not configured.
const defaultHeadingLength = 60

// NewHeadingLengthRule creates a new maximum heading length rule.
func NewHeadingLengthRule() *HeadingLengthRule {
	return &HeadingLengthRule{
		BaseRule: lint.NewBaseRule(
			"TD005",
			"maximum-heading-length",
			"Heading text should not exceed the configured length",
			[]string{"headings"},
		),
	}
}

// Apply checks heading text length against the configured maximum.
// Length is measured in runes of the rendered text, so heading markers and
// inline markup delimiters do not count.
func (r *HeadingLengthRule) Apply(ctx *lint.RuleContext) error {
	maxLength, err := ctx.Option("length").IntValue(r.ID(), "length", defaultHeadingLength)
	if err != nil {
		return ctx.Fail(err)
	}

	if ctx.Root == nil {
		return nil
	}

	for _, h := range ctx.Headings() {
		if ctx.Cancelled() {
			return fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if h.IsGenerated() {
			continue
		}

		length := utf8.RuneCountInString(lint.HeadingText(h))
		if length <= maxLength {
			continue
		}

		ctx.Reporter.Report(h,
			fmt.Sprintf("Heading is %d characters long, maximum is %d", length, maxLength),
			lint.WithSuggestion("Shorten the heading text"))
	}

	return nil
}
