package rules

import (
	"fmt"

	"github.com/tidydown/tidydown/pkg/lint"
	"github.com/tidydown/tidydown/pkg/mdast"
)

// checkboxMarkerLen is the byte length of the "[x]" marker itself; the
// remainder of a checkbox node's span is the space run the parser
// consumed after the closing bracket.
const checkboxMarkerLen = 3

// CheckboxIndentRule flags task list checkboxes followed by more than one
// space before the item content.
type CheckboxIndentRule struct {
	lint.BaseRule
}

// NewCheckboxIndentRule creates a new checkbox content indentation rule.
func NewCheckboxIndentRule() *CheckboxIndentRule {
	return &CheckboxIndentRule{
		BaseRule: lint.NewBaseRule(
			"TD007",
			"checkbox-content-indent",
			"Checkboxes should be followed by a single space",
			[]string{"lists", "whitespace"},
		),
	}
}

// Apply measures the space run inside each task checkbox span. The parser
// decides what is a checkbox and extends the node's span over the
// whitespace after the closing bracket, so the source line is never
// re-parsed here.
func (r *CheckboxIndentRule) Apply(ctx *lint.RuleContext) error {
	if ctx.Root == nil || ctx.File == nil {
		return nil
	}

	checkboxes := mdast.FindAll(ctx.Root, func(n *mdast.Node) bool {
		_, ok := n.TaskCheckbox()
		return ok
	})

	for _, cb := range checkboxes {
		if ctx.Cancelled() {
			return fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if cb.IsGenerated() {
			continue
		}

		span := cb.Span
		if span.End-span.Start-checkboxMarkerLen <= 1 {
			continue
		}

		// A space run with nothing after it on the line is trailing
		// whitespace, not content indentation.
		content := ctx.File.Content
		if span.End >= len(content) || content[span.End] == '\n' || content[span.End] == '\r' {
			continue
		}

		pos := mdast.Position{
			Start: ctx.File.PointAt(span.Start + checkboxMarkerLen),
			End:   ctx.File.PointAt(span.End),
		}
		ctx.Reporter.ReportAt(pos,
			"Checkbox should be followed by a single space",
			lint.WithSuggestion("Remove the extra spaces after the checkbox"))
	}

	return nil
}
