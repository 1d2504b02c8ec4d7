package rules

import (
	"fmt"

	"github.com/tidydown/tidydown/pkg/lint"
	"github.com/tidydown/tidydown/pkg/mdast"
)

// BlockquoteIndentRule flags blockquote lines with more than one space
// between the marker and the content.
type BlockquoteIndentRule struct {
	lint.BaseRule
}

// NewBlockquoteIndentRule creates a new blockquote indentation rule.
func NewBlockquoteIndentRule() *BlockquoteIndentRule {
	return &BlockquoteIndentRule{
		BaseRule: lint.NewBaseRule(
			"TD006",
			"blockquote-indentation",
			"Blockquote markers should be followed by a single space",
			[]string{"blockquote", "whitespace"},
		),
	}
}

// Apply scans the source lines of each blockquote for a marker followed by
// two or more spaces. Nested blockquotes share lines with their ancestors,
// so each line is checked at most once per invocation.
func (r *BlockquoteIndentRule) Apply(ctx *lint.RuleContext) error {
	if ctx.Root == nil || ctx.File == nil {
		return nil
	}

	seen := make(map[int]bool)

	for _, bq := range ctx.Blockquotes() {
		if ctx.Cancelled() {
			return fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if bq.IsGenerated() {
			continue
		}

		pos := bq.Position()
		for line := pos.Start.Line; line <= pos.End.Line; line++ {
			if seen[line] {
				continue
			}
			seen[line] = true
			r.checkLine(ctx, line)
		}
	}

	return nil
}

// checkLine reports the given 1-based line if any blockquote marker on it
// is followed by more than one space before content.
func (r *BlockquoteIndentRule) checkLine(ctx *lint.RuleContext, lineNum int) {
	content := lint.LineContent(ctx.File, lineNum)
	if len(content) == 0 {
		return
	}

	// Walk the marker prefix: optional indent, then one or more ">"
	// markers each optionally followed by spaces. A run of two or more
	// spaces before further content is a violation.
	i := 0
	for i < len(content) && (content[i] == ' ' || content[i] == '\t') {
		i++
	}

	for i < len(content) && content[i] == '>' {
		i++
		spaces := 0
		for i+spaces < len(content) && content[i+spaces] == ' ' {
			spaces++
		}
		rest := i + spaces
		if spaces > 1 && rest < len(content) && content[rest] != '>' {
			r.reportAt(ctx, lineNum, i, rest)
			return
		}
		i = rest
	}
}

func (r *BlockquoteIndentRule) reportAt(ctx *lint.RuleContext, lineNum, fromCol, toCol int) {
	lineStart, ok := ctx.File.OffsetAt(lineNum, 1)
	if !ok {
		return
	}
	pos := mdast.Position{
		Start: ctx.File.PointAt(lineStart + fromCol),
		End:   ctx.File.PointAt(lineStart + toCol),
	}
	ctx.Reporter.ReportAt(pos,
		"Multiple spaces after blockquote symbol",
		lint.WithSuggestion("Use a single space after the > marker"))
}
