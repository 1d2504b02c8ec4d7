package lint_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tidydown/tidydown/pkg/config"
	"github.com/tidydown/tidydown/pkg/lint"
	"github.com/tidydown/tidydown/pkg/mdast"
)

// mockParser implements lint.Parser for testing.
type mockParser struct {
	parseFunc func(ctx context.Context, path string, content []byte) (*mdast.FileSnapshot, error)
}

func (p *mockParser) Parse(ctx context.Context, path string, content []byte) (*mdast.FileSnapshot, error) {
	if p.parseFunc != nil {
		return p.parseFunc(ctx, path, content)
	}
	// Default: return a minimal snapshot.
	snapshot := &mdast.FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   mdast.BuildLines(content),
		Root:    mdast.NewNode(mdast.NodeDocument),
	}
	snapshot.Root.Span = mdast.Span{Start: 0, End: len(content)}
	snapshot.Root.File = snapshot
	return snapshot, nil
}

// reportingRule emits a fixed set of messages through the Reporter.
type reportingRule struct {
	lint.BaseRule
	messages []string
	err      error
}

func (r *reportingRule) Apply(ctx *lint.RuleContext) error {
	for _, msg := range r.messages {
		ctx.Reporter.Report(ctx.Root, msg)
	}
	return r.err
}

// misconfiguredRule always fails option validation.
type misconfiguredRule struct {
	lint.BaseRule
}

func (r *misconfiguredRule) Apply(ctx *lint.RuleContext) error {
	_, err := lint.ParseOption("bogus").StringEnum(r.ID(), "style", lint.ConsistentSentinel, "fenced")
	return ctx.Fail(err)
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	parser := &mockParser{}
	registry := lint.NewRegistry()

	engine := lint.NewEngine(parser, registry)

	if engine.Parser != lint.Parser(parser) {
		t.Error("Parser mismatch")
	}
	if engine.Registry != registry {
		t.Error("Registry mismatch")
	}
}

func TestEngine_LintFile_Basic(t *testing.T) {
	t.Parallel()

	engine := lint.NewEngine(&mockParser{}, lint.NewRegistry())

	cfg := config.NewConfig()
	result, err := engine.LintFile(context.Background(), "test.md", []byte("# Hello"), cfg)
	if err != nil {
		t.Fatalf("LintFile error: %v", err)
	}

	if result.Snapshot == nil || result.Snapshot.Path != "test.md" {
		t.Errorf("Snapshot = %+v", result.Snapshot)
	}
	if result.HasIssues() {
		t.Error("expected no issues")
	}
}

func TestEngine_LintFile_ParseError(t *testing.T) {
	t.Parallel()

	parseErr := errors.New("parse failed")
	parser := &mockParser{
		parseFunc: func(_ context.Context, _ string, _ []byte) (*mdast.FileSnapshot, error) {
			return nil, parseErr
		},
	}
	engine := lint.NewEngine(parser, lint.NewRegistry())

	_, err := engine.LintFile(context.Background(), "test.md", []byte("# Hello"), config.NewConfig())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, parseErr) {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestEngine_LintFile_CollectsDiagnostics(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(&reportingRule{
		BaseRule: lint.NewBaseRule("TEST001", "test-rule", "", nil),
		messages: []string{"first", "second"},
	})

	engine := lint.NewEngine(&mockParser{}, registry)
	result, err := engine.LintFile(context.Background(), "test.md", []byte("# Hello"), config.NewConfig())
	if err != nil {
		t.Fatalf("LintFile error: %v", err)
	}

	if result.IssueCount() != 2 {
		t.Fatalf("IssueCount = %d, want 2", result.IssueCount())
	}
	if result.Diagnostics[0].Message != "first" || result.Diagnostics[1].Message != "second" {
		t.Errorf("messages out of order: %+v", result.Diagnostics)
	}
	if result.Diagnostics[0].RuleID != "TEST001" {
		t.Errorf("RuleID = %q", result.Diagnostics[0].RuleID)
	}
}

// A rule that fails option validation must not prevent other rules from
// running, and its fatal diagnostic must still surface.
func TestEngine_LintFile_ConfigErrorIsolation(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(&misconfiguredRule{
		BaseRule: lint.NewBaseRule("TEST001", "broken-rule", "", nil),
	})
	registry.Register(&reportingRule{
		BaseRule: lint.NewBaseRule("TEST002", "healthy-rule", "", nil),
		messages: []string{"healthy"},
	})

	engine := lint.NewEngine(&mockParser{}, registry)
	result, err := engine.LintFile(context.Background(), "test.md", []byte("# Hello"), config.NewConfig())
	if err != nil {
		t.Fatalf("LintFile error: %v", err)
	}

	if _, ok := result.RuleErrors["TEST001"]; !ok {
		t.Error("missing rule error for misconfigured rule")
	}

	cfgErrs := result.ConfigErrors()
	if len(cfgErrs) != 1 {
		t.Fatalf("ConfigErrors = %d entries, want 1", len(cfgErrs))
	}
	if cfgErrs["TEST001"].Option != "style" {
		t.Errorf("ConfigError = %+v", cfgErrs["TEST001"])
	}

	var fatal, healthy int
	for _, d := range result.Diagnostics {
		switch {
		case d.Fatal:
			fatal++
		case d.Message == "healthy":
			healthy++
		}
	}
	if fatal != 1 {
		t.Errorf("fatal diagnostics = %d, want 1", fatal)
	}
	if healthy != 1 {
		t.Errorf("healthy rule diagnostics = %d, want 1", healthy)
	}
}

func TestEngine_LintFile_RuleErrorContinues(t *testing.T) {
	t.Parallel()

	ruleErr := errors.New("rule exploded")
	registry := lint.NewRegistry()
	registry.Register(&reportingRule{
		BaseRule: lint.NewBaseRule("TEST001", "failing-rule", "", nil),
		messages: []string{"partial"},
		err:      ruleErr,
	})
	registry.Register(&reportingRule{
		BaseRule: lint.NewBaseRule("TEST002", "ok-rule", "", nil),
		messages: []string{"ok"},
	})

	engine := lint.NewEngine(&mockParser{}, registry)
	result, err := engine.LintFile(context.Background(), "test.md", []byte("x"), config.NewConfig())
	if err != nil {
		t.Fatalf("LintFile error: %v", err)
	}

	if !errors.Is(result.RuleErrors["TEST001"], ruleErr) {
		t.Errorf("RuleErrors[TEST001] = %v", result.RuleErrors["TEST001"])
	}
	// Diagnostics emitted before the failure are kept, and the next rule ran.
	if result.IssueCount() != 2 {
		t.Errorf("IssueCount = %d, want 2", result.IssueCount())
	}
}

func TestEngine_LintFile_Cancellation(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(&reportingRule{
		BaseRule: lint.NewBaseRule("TEST001", "any-rule", "", nil),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	parser := &mockParser{
		parseFunc: func(_ context.Context, path string, content []byte) (*mdast.FileSnapshot, error) {
			// Parse ignores cancellation here so the engine loop sees it.
			return mdast.NewFileSnapshot(path, content), nil
		},
	}

	engine := lint.NewEngine(parser, registry)
	_, err := engine.LintFile(ctx, "test.md", []byte("x"), config.NewConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestEngine_LintFile_DisabledRuleSkipped(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(&reportingRule{
		BaseRule: lint.NewBaseRule("TEST001", "noisy-rule", "", nil),
		messages: []string{"noise"},
	})

	cfg := config.NewConfig()
	disabled := false
	cfg.Rules["TEST001"] = config.RuleConfig{Enabled: &disabled}

	engine := lint.NewEngine(&mockParser{}, registry)
	result, err := engine.LintFile(context.Background(), "test.md", []byte("x"), cfg)
	if err != nil {
		t.Fatalf("LintFile error: %v", err)
	}
	if result.HasIssues() {
		t.Errorf("disabled rule still produced %d diagnostics", result.IssueCount())
	}
}

func TestEngine_LintFile_SeverityOverride(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(&reportingRule{
		BaseRule: lint.NewBaseRule("TEST001", "some-rule", "", nil),
		messages: []string{"msg"},
	})

	cfg := config.NewConfig()
	sev := string(config.SeverityError)
	cfg.Rules["TEST001"] = config.RuleConfig{Severity: &sev}

	engine := lint.NewEngine(&mockParser{}, registry)
	result, err := engine.LintFile(context.Background(), "test.md", []byte("x"), cfg)
	if err != nil {
		t.Fatalf("LintFile error: %v", err)
	}
	if result.Diagnostics[0].Severity != config.SeverityError {
		t.Errorf("Severity = %q, want error", result.Diagnostics[0].Severity)
	}
}
