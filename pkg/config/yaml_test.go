package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidydown/tidydown/pkg/config"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	assert.Equal(t, config.FlavorGFM, cfg.Flavor)
	assert.Equal(t, string(config.SeverityWarning), cfg.SeverityDefault)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.NotNil(t, cfg.Rules)
	assert.Zero(t, cfg.Jobs)
}

func TestSeverity_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.SeverityError.IsValid())
	assert.True(t, config.SeverityWarning.IsValid())
	assert.True(t, config.SeverityInfo.IsValid())
	assert.False(t, config.Severity("critical").IsValid())
	assert.False(t, config.Severity("").IsValid())
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	t.Parallel()

	enabled := false
	severity := "error"
	cfg := config.NewConfig()
	cfg.Flavor = config.FlavorCommonMark
	cfg.SeverityDefault = "info"
	cfg.Ignore = []string{"vendor/**", "CHANGELOG.md"}
	cfg.Rules["TD001"] = config.RuleConfig{
		Enabled:  &enabled,
		Severity: &severity,
		Options:  map[string]any{"style": "fenced"},
	}
	cfg.Rules["TD005"] = config.RuleConfig{
		Options: map[string]any{"length": 40},
	}

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	loaded, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, cfg.Flavor, loaded.Flavor)
	assert.Equal(t, cfg.SeverityDefault, loaded.SeverityDefault)
	assert.Equal(t, cfg.Ignore, loaded.Ignore)

	td001 := loaded.Rules["TD001"]
	require.NotNil(t, td001.Enabled)
	assert.False(t, *td001.Enabled)
	require.NotNil(t, td001.Severity)
	assert.Equal(t, "error", *td001.Severity)
	assert.Equal(t, "fenced", td001.Options["style"])

	td005 := loaded.Rules["TD005"]
	assert.EqualValues(t, 40, td005.Options["length"])
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
flavor: commonmark
severity_default: error
rules:
  TD003:
    options:
      style: atx
  TD004:
    enabled: false
ignore:
  - "node_modules/**"
`)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, config.FlavorCommonMark, cfg.Flavor)
	assert.Equal(t, "error", cfg.SeverityDefault)
	assert.Equal(t, "atx", cfg.Rules["TD003"].Options["style"])
	require.NotNil(t, cfg.Rules["TD004"].Enabled)
	assert.False(t, *cfg.Rules["TD004"].Enabled)
	assert.Equal(t, []string{"node_modules/**"}, cfg.Ignore)
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("flavor: [not: valid"))
	require.Error(t, err)
}

func TestFromYAML_EmptyInitializesRules(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte(""))
	require.NoError(t, err)
	assert.NotNil(t, cfg.Rules)
}

func TestConfig_Clone(t *testing.T) {
	t.Parallel()

	enabled := true
	cfg := config.NewConfig()
	cfg.Ignore = []string{"a"}
	cfg.EnableRules = []string{"TD001"}
	cfg.DisableRules = []string{"TD002"}
	cfg.Rules["TD001"] = config.RuleConfig{
		Enabled: &enabled,
		Options: map[string]any{"style": "fenced"},
	}

	clone := cfg.Clone()

	// Mutating the clone must not leak back.
	clone.Ignore[0] = "b"
	clone.EnableRules[0] = "TD009"
	*clone.Rules["TD001"].Enabled = false
	clone.Rules["TD001"].Options["style"] = "indented"

	assert.Equal(t, "a", cfg.Ignore[0])
	assert.Equal(t, "TD001", cfg.EnableRules[0])
	assert.True(t, *cfg.Rules["TD001"].Enabled)
	assert.Equal(t, "fenced", cfg.Rules["TD001"].Options["style"])
}

func TestConfig_Clone_Nil(t *testing.T) {
	t.Parallel()

	var cfg *config.Config
	assert.Nil(t, cfg.Clone())
}
