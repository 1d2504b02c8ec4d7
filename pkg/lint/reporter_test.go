package lint_test

import (
	"testing"

	"github.com/tidydown/tidydown/pkg/config"
	"github.com/tidydown/tidydown/pkg/lint"
	"github.com/tidydown/tidydown/pkg/mdast"
)

func TestReporter_Report(t *testing.T) {
	t.Parallel()

	file := mdast.NewFileSnapshot("test.md", []byte("# Hello\n\ntext\n"))
	node := &mdast.Node{Kind: mdast.NodeHeading, File: file, Span: mdast.Span{Start: 0, End: 7}}

	reporter := lint.NewReporter("TD001", "code-block-style", "test.md", config.SeverityWarning)
	reporter.Report(node, "something is off")

	diags := reporter.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}

	d := diags[0]
	if d.RuleID != "TD001" || d.RuleName != "code-block-style" {
		t.Errorf("rule identity = %q/%q", d.RuleID, d.RuleName)
	}
	if d.FilePath != "test.md" {
		t.Errorf("FilePath = %q", d.FilePath)
	}
	if d.Severity != config.SeverityWarning {
		t.Errorf("Severity = %q", d.Severity)
	}
	if d.StartLine != 1 || d.StartColumn != 1 || d.EndLine != 1 || d.EndColumn != 8 {
		t.Errorf("position = %d:%d-%d:%d", d.StartLine, d.StartColumn, d.EndLine, d.EndColumn)
	}
	if d.Fatal {
		t.Error("plain diagnostic marked fatal")
	}
}

func TestReporter_DropsGeneratedNodes(t *testing.T) {
	t.Parallel()

	reporter := lint.NewReporter("TD001", "code-block-style", "test.md", config.SeverityWarning)

	reporter.Report(nil, "nil node")
	reporter.Report(mdast.NewNode(mdast.NodeHeading), "generated node")

	if reporter.Count() != 0 {
		t.Errorf("got %d diagnostics for generated nodes, want 0", reporter.Count())
	}
}

func TestReporter_EmissionOrder(t *testing.T) {
	t.Parallel()

	file := mdast.NewFileSnapshot("test.md", []byte("aaa\nbbb\nccc\n"))
	first := &mdast.Node{Kind: mdast.NodeParagraph, File: file, Span: mdast.Span{Start: 0, End: 3}}
	second := &mdast.Node{Kind: mdast.NodeParagraph, File: file, Span: mdast.Span{Start: 4, End: 7}}
	third := &mdast.Node{Kind: mdast.NodeParagraph, File: file, Span: mdast.Span{Start: 8, End: 11}}

	reporter := lint.NewReporter("TD004", "no-duplicate-heading", "test.md", config.SeverityWarning)
	reporter.Report(first, "one")
	reporter.Report(second, "two")
	reporter.Report(third, "three")

	diags := reporter.Diagnostics()
	if len(diags) != 3 {
		t.Fatalf("got %d diagnostics, want 3", len(diags))
	}
	for i, msg := range []string{"one", "two", "three"} {
		if diags[i].Message != msg {
			t.Errorf("diagnostic %d message = %q, want %q", i, diags[i].Message, msg)
		}
	}
	// Emission order matches ascending source position here.
	for i := 1; i < len(diags); i++ {
		if diags[i].StartOffset < diags[i-1].StartOffset {
			t.Errorf("diagnostic %d out of position order", i)
		}
	}
}

func TestReporter_Options(t *testing.T) {
	t.Parallel()

	file := mdast.NewFileSnapshot("test.md", []byte("text\n"))
	node := &mdast.Node{Kind: mdast.NodeParagraph, File: file, Span: mdast.Span{Start: 0, End: 4}}

	reporter := lint.NewReporter("TD008", "fenced-code-language", "test.md", config.SeverityWarning)
	reporter.Report(node, "msg",
		lint.WithSuggestion("try this"),
		lint.WithSeverity(config.SeverityInfo))

	d := reporter.Diagnostics()[0]
	if d.Suggestion != "try this" {
		t.Errorf("Suggestion = %q", d.Suggestion)
	}
	if d.Severity != config.SeverityInfo {
		t.Errorf("Severity = %q, want info", d.Severity)
	}
}

func TestReporter_Fail(t *testing.T) {
	t.Parallel()

	reporter := lint.NewReporter("TD001", "code-block-style", "test.md", config.SeverityWarning)

	if reporter.Failed() {
		t.Error("fresh reporter reports Failed")
	}

	reporter.Fail("bad option value")

	if !reporter.Failed() {
		t.Error("Failed() = false after Fail")
	}

	diags := reporter.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}

	d := diags[0]
	if !d.Fatal {
		t.Error("Fail diagnostic not marked fatal")
	}
	if d.Severity != config.SeverityError {
		t.Errorf("Fail severity = %q, want error", d.Severity)
	}
	if d.StartLine != 1 || d.StartColumn != 1 {
		t.Errorf("Fail position = %d:%d, want 1:1", d.StartLine, d.StartColumn)
	}
	if d.Message != "bad option value" {
		t.Errorf("Message = %q", d.Message)
	}
}

func TestReporter_ReportAt(t *testing.T) {
	t.Parallel()

	reporter := lint.NewReporter("TD006", "blockquote-indentation", "test.md", config.SeverityWarning)
	pos := mdast.Position{
		Start: mdast.Point{Line: 2, Column: 3, Offset: 10},
		End:   mdast.Point{Line: 2, Column: 5, Offset: 12},
	}
	reporter.ReportAt(pos, "explicit position")

	d := reporter.Diagnostics()[0]
	if d.StartLine != 2 || d.StartColumn != 3 || d.StartOffset != 10 {
		t.Errorf("start = %d:%d@%d", d.StartLine, d.StartColumn, d.StartOffset)
	}
	if d.EndLine != 2 || d.EndColumn != 5 || d.EndOffset != 12 {
		t.Errorf("end = %d:%d@%d", d.EndLine, d.EndColumn, d.EndOffset)
	}
	if got := d.Position(); got != pos {
		t.Errorf("Position() = %+v, want %+v", got, pos)
	}
}
