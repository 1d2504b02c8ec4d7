package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidydown/tidydown/internal/cli"
	"github.com/tidydown/tidydown/pkg/runner"
)

func testBuildInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
}

func TestNewRootCommand_Subcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	assert.Equal(t, "tidydown", cmd.Use)

	for _, name := range []string{"lint", "rules", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "subcommand %s not found", name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestNewRootCommand_PersistentFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	debug := cmd.PersistentFlags().Lookup("debug")
	require.NotNil(t, debug)
	assert.Equal(t, "false", debug.DefValue)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "", configFlag.DefValue)

	color := cmd.PersistentFlags().Lookup("color")
	require.NotNil(t, color)
	assert.Equal(t, "auto", color.DefValue)
}

func TestLintCommand_Flags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	lintCmd, _, err := cmd.Find([]string{"lint"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		defValue string
	}{
		{"format", "text"},
		{"jobs", "0"},
		{"flavor", "gfm"},
		{"strict", "false"},
		{"no-context", "false"},
		{"compact", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := lintCmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag, "flag %s should exist", tt.name)
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}

	for _, name := range []string{"ignore", "enable", "disable"} {
		assert.NotNil(t, lintCmd.Flags().Lookup(name), "flag %s should exist", name)
	}
}

func TestRulesCommand_FormatFlag(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	rulesCmd, _, err := cmd.Find([]string{"rules"})
	require.NoError(t, err)

	flag := rulesCmd.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "text", flag.DefValue)
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runner.Result
		strict bool
		want   int
	}{
		{
			name:   "nil result",
			result: nil,
			want:   cli.ExitSuccess,
		},
		{
			name: "clean run",
			result: &runner.Result{
				Stats: runner.Stats{DiagnosticsBySeverity: map[string]int{}},
			},
			want: cli.ExitSuccess,
		},
		{
			name: "warnings without strict",
			result: &runner.Result{
				Stats: runner.Stats{
					DiagnosticsBySeverity: map[string]int{"warning": 3},
				},
			},
			want: cli.ExitSuccess,
		},
		{
			name: "warnings with strict",
			result: &runner.Result{
				Stats: runner.Stats{
					DiagnosticsBySeverity: map[string]int{"warning": 3},
				},
			},
			strict: true,
			want:   cli.ExitLintWarnings,
		},
		{
			name: "errors",
			result: &runner.Result{
				Stats: runner.Stats{
					DiagnosticsBySeverity: map[string]int{"error": 1, "warning": 3},
				},
			},
			want: cli.ExitLintErrors,
		},
		{
			name: "rule failures count as errors",
			result: &runner.Result{
				Stats: runner.Stats{
					DiagnosticsBySeverity: map[string]int{},
					RuleFailures:          1,
				},
			},
			want: cli.ExitLintErrors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := cli.ExitCodeFromResult(tt.result, tt.strict)
			assert.Equal(t, tt.want, got)
		})
	}
}
