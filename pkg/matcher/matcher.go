// Package matcher finds function declarations in Solidity-like source text.
//
// Matching is lexical: a declaration inside a comment or a string literal is
// reported like any other.
package matcher

import (
	"regexp"
)

// DeclarationKeyword introduces a function declaration.
const DeclarationKeyword = "function"

var functionPattern = regexp.MustCompile(`\b` + DeclarationKeyword + `\s+([a-zA-Z0-9_]+)\s*\(`)

// ExtractFunctions returns the declared function names of content in source order.
// A name declared several times appears several times.
func ExtractFunctions(content string) []string {
	matches := functionPattern.FindAllStringSubmatch(content, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// DeclarationPattern returns the pattern matching the declaration of name up to
// its opening parenthesis. The name must match as a whole word.
func DeclarationPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + DeclarationKeyword + `\s+` + regexp.QuoteMeta(name) + `\s*\(`)
}
