// Package casing converts identifiers between the usual programming case
// conventions: snake_case, SCREAMING_SNAKE, camelCase, PascalCase,
// kebab-case, and arbitrary delimiters.
//
// The conversion engine is github.com/iancoleman/strcase; this package pins
// the toolbox's conventions (acronym handling, delimiter set) in one place so
// callers do not depend on that module directly.
package casing

import (
	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Snake converts s to snake_case.
func Snake(s string) string { return strcase.ToSnake(s) }

// ScreamingSnake converts s to SCREAMING_SNAKE_CASE.
func ScreamingSnake(s string) string { return strcase.ToScreamingSnake(s) }

// Camel converts s to camelCase (first word lower).
func Camel(s string) string { return strcase.ToLowerCamel(s) }

// Pascal converts s to PascalCase (every word capitalized).
func Pascal(s string) string { return strcase.ToCamel(s) }

// Kebab converts s to kebab-case.
func Kebab(s string) string { return strcase.ToKebab(s) }

// ScreamingKebab converts s to SCREAMING-KEBAB-CASE.
func ScreamingKebab(s string) string { return strcase.ToScreamingKebab(s) }

// Delimited converts s to lower case words joined by sep.
func Delimited(s string, sep byte) string { return strcase.ToDelimited(s, sep) }

// Title converts s to language-neutral title case, one capital per word. It
// uses Unicode casing rules rather than naive ASCII upcasing, so "ǳungla"
// becomes "ǲungla", not "Ǳungla".
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}
