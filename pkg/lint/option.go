package lint

import (
	"fmt"
	"strings"
)

// OptionKind discriminates the variants of a rule option value.
type OptionKind uint8

// Option variants. An absent option and the literal "consistent" sentinel
// both mean "infer the preferred style from the first occurrence".
const (
	OptionUnset OptionKind = iota
	OptionConsistent
	OptionString
	OptionNumber
)

// Option is a rule-specific configuration value: absent, the "consistent"
// sentinel, a rule-defined literal, or a number. It is parsed and validated
// once per rule invocation, before any traversal.
type Option struct {
	Kind OptionKind
	Str  string
	Num  int
}

// ConsistentSentinel is the literal option value selecting inferred style.
const ConsistentSentinel = "consistent"

// ParseOption converts a raw config value into a tagged Option.
// Unrecognized dynamic types surface as OptionString so that validation
// can name them in the failure message.
func ParseOption(raw any) Option {
	switch v := raw.(type) {
	case nil:
		return Option{Kind: OptionUnset}
	case string:
		if v == ConsistentSentinel {
			return Option{Kind: OptionConsistent}
		}
		return Option{Kind: OptionString, Str: v}
	case int:
		return Option{Kind: OptionNumber, Num: v}
	case int64:
		return Option{Kind: OptionNumber, Num: int(v)}
	case float64:
		return Option{Kind: OptionNumber, Num: int(v)}
	default:
		return Option{Kind: OptionString, Str: fmt.Sprintf("%v", v)}
	}
}

// IsSet returns true unless the option was absent.
func (o Option) IsSet() bool {
	return o.Kind != OptionUnset
}

// StringEnum validates the option against a closed set of style names.
// An absent option or the sentinel resolves to "consistent", which must
// itself appear in the allowed set; a rule without an inference mode gets
// a *ConfigError rather than a silent out-of-set default. On mismatch it
// returns a *ConfigError enumerating the legal values.
func (o Option) StringEnum(ruleID, name string, allowed ...string) (string, error) {
	switch o.Kind {
	case OptionUnset, OptionConsistent:
		for _, a := range allowed {
			if a == ConsistentSentinel {
				return ConsistentSentinel, nil
			}
		}
		return "", newConfigError(ruleID, name, ConsistentSentinel, allowed)
	case OptionString:
		for _, a := range allowed {
			if o.Str == a {
				return o.Str, nil
			}
		}
		return "", newConfigError(ruleID, name, o.Str, allowed)
	default:
		return "", newConfigError(ruleID, name, o.Num, allowed)
	}
}

// IntValue validates the option as a number, with def used when absent.
// Any non-numeric value returns a *ConfigError.
func (o Option) IntValue(ruleID, name string, def int) (int, error) {
	switch o.Kind {
	case OptionUnset:
		return def, nil
	case OptionNumber:
		return o.Num, nil
	case OptionConsistent:
		return 0, &ConfigError{RuleID: ruleID, Option: name, Value: ConsistentSentinel, Expected: "a number"}
	default:
		return 0, &ConfigError{RuleID: ruleID, Option: name, Value: o.Str, Expected: "a number"}
	}
}

// ConfigError reports a rule option value outside the rule's accepted set.
// It is fatal to the single misconfigured rule invocation; other rules
// continue unaffected.
type ConfigError struct {
	// RuleID identifies the misconfigured rule.
	RuleID string

	// Option is the option name.
	Option string

	// Value is the rejected value.
	Value any

	// Expected describes the legal set, e.g. "one of: consistent, fenced, indented".
	Expected string
}

func newConfigError(ruleID, option string, value any, allowed []string) *ConfigError {
	return &ConfigError{
		RuleID:   ruleID,
		Option:   option,
		Value:    value,
		Expected: "one of: " + strings.Join(allowed, ", "),
	}
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("rule %s: invalid value %q for option %q: expected %s",
		e.RuleID, fmt.Sprintf("%v", e.Value), e.Option, e.Expected)
}
