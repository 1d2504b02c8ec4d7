package rules

import "github.com/tidydown/tidydown/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Code block rules
	registry.Register(NewCodeBlockStyleRule())    // TD001
	registry.Register(NewCodeFenceStyleRule())    // TD002
	registry.Register(NewCodeBlockLanguageRule()) // TD008

	// Heading rules
	registry.Register(NewHeadingStyleRule())     // TD003
	registry.Register(NewDuplicateHeadingRule()) // TD004
	registry.Register(NewHeadingLengthRule())    // TD005

	// Blockquote rules
	registry.Register(NewBlockquoteIndentRule()) // TD006

	// List rules
	registry.Register(NewCheckboxIndentRule()) // TD007

	// markdownlint compatibility aliases.
	registry.RegisterAlias("MD046", "TD001")
	registry.RegisterAlias("MD048", "TD002")
	registry.RegisterAlias("MD003", "TD003")
	registry.RegisterAlias("MD024", "TD004")
	registry.RegisterAlias("MD040", "TD008")
}

func init() {
	RegisterAll(lint.DefaultRegistry)
}
