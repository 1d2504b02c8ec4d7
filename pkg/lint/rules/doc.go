// Package rules provides the built-in lint rules for tidydown.
//
// # Rules
//
//   - TD001: code-block-style - Code block style should be consistent
//   - TD002: code-fence-style - Code fence style should be consistent
//   - TD003: heading-style - Heading style should be consistent
//   - TD004: no-duplicate-heading - Multiple headings with same content
//   - TD005: maximum-heading-length - Heading text should not exceed the configured length
//   - TD006: blockquote-indentation - Multiple spaces after blockquote symbol
//   - TD007: checkbox-content-indent - Multiple spaces after a task checkbox
//   - TD008: fenced-code-language - Fenced code blocks should have language info
//
// # Style rules
//
// TD001, TD002, and TD003 accept a "style" option. The default value
// "consistent" infers the preferred style from the first matching element
// in the document; an explicit value pins it up front and checks every
// element, including the first.
//
// # Registration
//
// Rules are registered with the default registry via RegisterAll. Each
// rule follows the lint.Rule interface, validates its options before
// traversal, and emits diagnostics through the per-invocation Reporter.
// Aliases map the corresponding markdownlint IDs to their tidydown
// counterparts.
package rules
