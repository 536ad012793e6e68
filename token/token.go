// Package token defines the lexical unit passed between all normalization
// stages.
//
// A Token carries two text fields: Text is the current, mutable display form
// that modules rewrite, and Original is the immutable source slice kept for
// diagnostics and local error recovery. WhitespaceAfter holds the verbatim
// trailing whitespace from the source, so that concatenating Text +
// WhitespaceAfter over an unmodified token sequence reproduces the input
// exactly (the round-trip law the tokenizer package tests).
//
// Tokens are created once by the tokenizer, mutated in place by modules, and
// never persist past one normalize call. A module consumes a token by
// blanking its Text; blanked tokens are tombstones that the pipeline drops
// at compaction points between passes.
package token

import "fmt"

// Type classifies a token.
type Type int

const (
	Word        Type = iota // Maximal script-agnostic letter run
	Number                  // Integer, decimal, or scientific-notation literal
	Symbol                  // Single non-alphanumeric, non-space rune
	URL                     // http(s):// or www. prefixed sequence
	Email                   // user@domain.tld sequence
	Phone                   // Internationally or locally formatted phone number
	Date                    // digit/separator/digit/separator/digit
	Time                    // digit:digit, optionally with an inline am/pm marker
	Technical               // #tag or @mention
	Subscript               // Run of Unicode subscript digits
	Superscript             // Run of Unicode superscript digits
	Unknown                 // Anything the scanner could not classify
)

// typeNames maps Type values to their string names.
var typeNames = [...]string{
	Word:        "Word",
	Number:      "Number",
	Symbol:      "Symbol",
	URL:         "URL",
	Email:       "Email",
	Phone:       "Phone",
	Date:        "Date",
	Time:        "Time",
	Technical:   "Technical",
	Subscript:   "Subscript",
	Superscript: "Superscript",
	Unknown:     "Unknown",
}

// String returns the name of the token type.
func (t Type) String() string {
	if int(t) >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Semantic tags attached by taggers and consumed by later modules.
const (
	TagIsUnit        = "IS_UNIT"        // word is a measurement unit in this context
	TagUnitProcessed = "UNIT_PROCESSED" // unit module already rewrote this token
	TagMathTerm      = "MATH_TERM"      // token is part of an active math expression
	TagMathFunction  = "MATH_FUNCTION"  // known function name or Greek letter
	TagFraction      = "FRACTION"       // token holds a rendered fraction
	TagSpelledOut    = "IS_SPELLED_OUT" // spelled character-by-character
	TagScriptLatin   = "SCRIPT_LATIN"   // script-family markers set by the script tagger
	TagScriptKurdish = "SCRIPT_KURDISH"
	TagScriptOther   = "SCRIPT_OTHER"
	TagDate          = "DATE" // rewritten by the date/time module
	TagTime          = "TIME"
)

// Tags is the set of semantic labels attached to a token.
type Tags map[string]struct{}

// Add inserts a tag into the set.
func (t Tags) Add(tag string) {
	t[tag] = struct{}{}
}

// Has reports whether the tag is present.
func (t Tags) Has(tag string) bool {
	_, ok := t[tag]
	return ok
}

// Token is the atomic unit passed between all pipeline stages.
type Token struct {
	Text            string // current display form, mutated by modules
	Original        string // immutable source slice
	Type            Type
	Tags            Tags
	WhitespaceAfter string // verbatim trailing whitespace, possibly empty
	Converted       bool   // true once Text has been semantically rewritten
}

// New returns a token whose Text and Original both hold text.
func New(text string, typ Type) Token {
	return Token{Text: text, Original: text, Type: typ, Tags: Tags{}}
}

// Rewrite replaces the display text and marks the token converted.
func (t *Token) Rewrite(text string, typ Type) {
	t.Text = text
	t.Type = typ
	t.Converted = true
}

// Consume blanks the token, marking it a tombstone for the next compaction.
func (t *Token) Consume() {
	t.Text = ""
}

// Empty reports whether the token has been consumed.
func (t *Token) Empty() bool {
	return t.Text == ""
}

// String returns a debug representation, e.g. Number("123").
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Type, t.Text)
}
