package lint_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tidydown/tidydown/pkg/config"
	"github.com/tidydown/tidydown/pkg/lint"
	"github.com/tidydown/tidydown/pkg/mdast"
)

func TestNewRuleContext(t *testing.T) {
	t.Parallel()

	file := mdast.NewFileSnapshot("test.md", []byte("# Hello\n"))
	file.Root = mdast.NewDocument()

	cfg := config.NewConfig()
	reporter := lint.NewReporter("TD001", "code-block-style", "test.md", config.SeverityWarning)
	ruleCtx := lint.NewRuleContext(context.Background(), file, cfg, nil, reporter)

	if ruleCtx.File != file {
		t.Error("File not set")
	}
	if ruleCtx.Root != file.Root {
		t.Error("Root not aliased from File.Root")
	}
	if ruleCtx.Config != cfg {
		t.Error("Config not set")
	}
	if ruleCtx.Reporter != reporter {
		t.Error("Reporter not set")
	}
}

func TestNewRuleContext_NilReporter(t *testing.T) {
	t.Parallel()

	file := mdast.NewFileSnapshot("test.md", []byte("x"))
	ruleCtx := lint.NewRuleContext(context.Background(), file, config.NewConfig(), nil, nil)

	if ruleCtx.Reporter == nil {
		t.Fatal("expected a fallback reporter")
	}
}

func TestRuleContext_Cancelled(t *testing.T) {
	t.Parallel()

	file := mdast.NewFileSnapshot("test.md", []byte("x"))

	ruleCtx := lint.NewRuleContext(context.Background(), file, nil, nil, nil)
	if ruleCtx.Cancelled() {
		t.Error("live context reported cancelled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ruleCtx = lint.NewRuleContext(ctx, file, nil, nil, nil)
	if !ruleCtx.Cancelled() {
		t.Error("cancelled context not detected")
	}
}

func TestRuleContext_Option(t *testing.T) {
	t.Parallel()

	file := mdast.NewFileSnapshot("test.md", []byte("x"))

	tests := []struct {
		name     string
		ruleCfg  *config.RuleConfig
		key      string
		expected lint.OptionKind
	}{
		{"nil rule config", nil, "style", lint.OptionUnset},
		{"nil options map", &config.RuleConfig{}, "style", lint.OptionUnset},
		{
			"missing key",
			&config.RuleConfig{Options: map[string]any{"other": "x"}},
			"style",
			lint.OptionUnset,
		},
		{
			"string value",
			&config.RuleConfig{Options: map[string]any{"style": "fenced"}},
			"style",
			lint.OptionString,
		},
		{
			"consistent value",
			&config.RuleConfig{Options: map[string]any{"style": "consistent"}},
			"style",
			lint.OptionConsistent,
		},
		{
			"numeric value",
			&config.RuleConfig{Options: map[string]any{"length": 40}},
			"length",
			lint.OptionNumber,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			ruleCtx := lint.NewRuleContext(context.Background(), file, nil, testCase.ruleCfg, nil)
			opt := ruleCtx.Option(testCase.key)
			if opt.Kind != testCase.expected {
				t.Errorf("Option(%q).Kind = %v, want %v", testCase.key, opt.Kind, testCase.expected)
			}
		})
	}
}

func TestRuleContext_Fail(t *testing.T) {
	t.Parallel()

	file := mdast.NewFileSnapshot("test.md", []byte("x"))
	reporter := lint.NewReporter("TD001", "code-block-style", "test.md", config.SeverityWarning)
	ruleCtx := lint.NewRuleContext(context.Background(), file, nil, nil, reporter)

	cfgErr := &lint.ConfigError{RuleID: "TD001", Option: "style", Value: "bogus", Expected: "one of: consistent, fenced, indented"}
	err := ruleCtx.Fail(cfgErr)

	if !errors.Is(err, error(cfgErr)) {
		t.Errorf("Fail returned %v, want the original error", err)
	}
	if !reporter.Failed() {
		t.Error("reporter not marked failed")
	}
	diags := reporter.Diagnostics()
	if len(diags) != 1 || !diags[0].Fatal {
		t.Fatalf("diagnostics = %+v", diags)
	}
	if diags[0].Message != cfgErr.Error() {
		t.Errorf("Message = %q, want %q", diags[0].Message, cfgErr.Error())
	}
}

func TestRuleContext_NodeQueries(t *testing.T) {
	t.Parallel()

	file := mdast.NewFileSnapshot("test.md", []byte("irrelevant"))
	doc := mdast.NewDocument()
	heading := mdast.NewNode(mdast.NodeHeading)
	code := mdast.NewNode(mdast.NodeCodeBlock)
	quote := mdast.NewNode(mdast.NodeBlockquote)
	mdast.AppendChild(doc, heading)
	mdast.AppendChild(doc, code)
	mdast.AppendChild(doc, quote)
	file.Root = doc

	ruleCtx := lint.NewRuleContext(context.Background(), file, nil, nil, nil)

	if got := ruleCtx.Headings(); len(got) != 1 || got[0] != heading {
		t.Errorf("Headings() = %v", got)
	}
	if got := ruleCtx.CodeBlocks(); len(got) != 1 || got[0] != code {
		t.Errorf("CodeBlocks() = %v", got)
	}
	if got := ruleCtx.Blockquotes(); len(got) != 1 || got[0] != quote {
		t.Errorf("Blockquotes() = %v", got)
	}
}
