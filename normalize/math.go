package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/RazwanSiktany/ckb-textify/numtext"
	"github.com/RazwanSiktany/ckb-textify/token"
	"github.com/RazwanSiktany/ckb-textify/translit"
)

// Spoken forms of the operator glyphs. Binary operators convert only
// when both sides look like operands; see isMathContext.
var mathSymbols = map[string]string{
	"+": "کۆ",
	"-": "کەم",
	"−": "کەم",
	"*": "کەڕەتی",
	"×": "کەڕەتی",
	"/": "دابەش",
	"÷": "دابەش",
	"=": "یەکسانە بە",
	"^": "توان",
	"%": "لە سەدا",
	"±": "کەم کۆ",
	"√": "ڕەگی دووجای",
	"≈": "نزیکەی",
}

var mathFunctions = map[string]string{
	"sin":  "ساین",
	"cos":  "کۆساین",
	"tan":  "تانجێنت",
	"log":  "لۆگ",
	"ln":   "لۆگی سروشتی",
	"sqrt": "ڕەگی دووجای",
}

// Vulgar fraction glyphs, numerator and denominator.
var vulgarFractions = map[string][2]string{
	"½": {"1", "2"}, "⅓": {"1", "3"}, "⅔": {"2", "3"},
	"¼": {"1", "4"}, "¾": {"3", "4"}, "⅕": {"1", "5"},
	"⅖": {"2", "5"}, "⅗": {"3", "5"}, "⅘": {"4", "5"},
	"⅙": {"1", "6"}, "⅚": {"5", "6"}, "⅛": {"1", "8"},
	"⅜": {"3", "8"}, "⅝": {"5", "8"}, "⅞": {"7", "8"},
}

var greekLetterNames = map[rune]string{
	'π': "پای", 'α': "ئەلفا", 'β': "بێتا", 'γ': "گاما",
	'θ': "سێتا", 'λ': "لامدا", 'μ': "میو", 'Δ': "دێلتا",
	'Σ': "سیگما", 'Ω': "ئۆمەگا",
}

const (
	wordRange      = "بۆ"
	wordHalfAlone  = "نیوە"
	wordQuarter    = "چارەک"
	wordOver       = "لەسەر"
	wordBaseSub    = "بنچینە"
	wordPower      = "توان"
	openBracketKu  = "کەوانەی کراوە"
	closeBracketKu = "کەوانەی داخراو"
)

// MathNormalizer converts operators, fractions, ranges, powers, and math
// function names into spoken Kurdish. Operands are left for the number
// pass; converted operator tokens are tagged so later checks can still
// see the expression shape.
type MathNormalizer struct{}

func NewMathNormalizer() *MathNormalizer { return &MathNormalizer{} }

func (m *MathNormalizer) Name() string  { return "math" }
func (m *MathNormalizer) Priority() int { return PriorityMath }

func (m *MathNormalizer) Process(tokens []token.Token) []token.Token {
	for i := range tokens {
		t := &tokens[i]
		if t.Empty() || t.Converted {
			continue
		}
		switch t.Type {
		case token.Symbol:
			m.convertSymbol(tokens, i)
		case token.Word:
			m.convertWord(tokens, i)
		case token.Subscript:
			t.Rewrite(wordBaseSub+" "+numtext.Digits(subscriptDigits(t.Text)), token.Word)
			t.Tags.Add(token.TagMathTerm)
		case token.Superscript:
			if p := prevIndex(tokens, i); p >= 0 && tokens[p].Tags.Has(token.TagIsUnit) {
				continue
			}
			t.Rewrite(wordPower+" "+numtext.Digits(superscriptDigits(t.Text)), token.Word)
			t.Tags.Add(token.TagMathTerm)
		}
	}
	return tokens
}

func (m *MathNormalizer) convertSymbol(tokens []token.Token, i int) {
	t := &tokens[i]
	p := prevIndex(tokens, i)
	nx := nextIndex(tokens, i)

	if nd, ok := vulgarFractions[t.Text]; ok {
		m.convertGlyphFraction(tokens, i, p, nd)
		return
	}

	switch t.Text {
	case "/":
		m.convertSlash(tokens, i, p, nx)
	case "-", "−":
		m.convertMinus(tokens, i, p, nx)
	case "+", "±":
		word := mathSymbols[t.Text]
		switch {
		case isBinaryContext(tokens, p, nx):
			rewriteOperator(t, word)
		case isUnaryContext(tokens, p, nx):
			if t.Text == "+" {
				word = wordPositive
			}
			rewriteOperator(t, word)
		}
	case "*", "×", "÷":
		if isBinaryContext(tokens, p, nx) {
			rewriteOperator(t, mathSymbols[t.Text])
		}
	case "=":
		if (p >= 0 && isOperand(&tokens[p])) || (nx >= 0 && isOperand(&tokens[nx])) {
			rewriteOperator(t, mathSymbols["="])
		}
	case "^":
		if p >= 0 && tokens[p].Tags.Has(token.TagIsUnit) {
			return
		}
		if p >= 0 && nx >= 0 && isOperand(&tokens[p]) && tokens[nx].Type == token.Number {
			rewriteOperator(t, wordPower)
		}
	case "%":
		m.convertPercent(tokens, i, p, nx)
	case "√", "≈":
		if nx >= 0 && isOperand(&tokens[nx]) {
			rewriteOperator(t, mathSymbols[t.Text])
		}
	case "(", "[", "{":
		if nx >= 0 && isOperand(&tokens[nx]) && isOperatorAt(tokens, nextIndex(tokens, nx)) {
			rewriteOperator(t, openBracketKu)
		}
	case ")", "]", "}":
		if p >= 0 && isOperand(&tokens[p]) && isOperatorAt(tokens, prevIndex(tokens, p)) {
			rewriteOperator(t, closeBracketKu)
		}
	}
}

// convertSlash handles fractions and division. Two numbers joined by a
// slash with nothing else of the expression around them merge into a
// spoken fraction; inside an active operator chain the slash reads as
// division instead.
func (m *MathNormalizer) convertSlash(tokens []token.Token, i, p, nx int) {
	t := &tokens[i]
	if p >= 0 && tokens[p].Tags.Has(token.TagIsUnit) {
		return
	}
	if nx >= 0 && tokens[nx].Tags.Has(token.TagIsUnit) {
		return
	}
	if p >= 0 && nx >= 0 &&
		tokens[p].Type == token.Number && !tokens[p].Converted &&
		tokens[nx].Type == token.Number && !tokens[nx].Converted &&
		isIsolated(tokens, p, nx) {
		m.convertFraction(tokens, i, p, nx)
		return
	}
	if isBinaryContext(tokens, p, nx) {
		rewriteOperator(t, mathSymbols["/"])
	}
}

func (m *MathNormalizer) convertFraction(tokens []token.Token, i, p, nx int) {
	alone, part, ok := fractionWords(tokens[p].Text, tokens[nx].Text)
	if !ok {
		return
	}

	// A whole number just before makes this a mixed fraction.
	if w := prevIndex(tokens, p); w >= 0 && tokens[w].Type == token.Number &&
		!tokens[w].Converted && tokens[w].WhitespaceAfter != "" {
		whole, ok := readNumber(tokens[w].Text)
		if ok {
			tokens[w].Rewrite(whole+" و "+part, token.Word)
			tokens[w].Tags.Add(token.TagFraction)
			tokens[w].WhitespaceAfter = tokens[nx].WhitespaceAfter
			tokens[p].Consume()
			tokens[i].Consume()
			tokens[nx].Consume()
			return
		}
	}

	tokens[p].Rewrite(alone, token.Word)
	tokens[p].Tags.Add(token.TagFraction)
	tokens[p].WhitespaceAfter = tokens[nx].WhitespaceAfter
	tokens[i].Consume()
	tokens[nx].Consume()
}

// convertGlyphFraction reads a vulgar fraction glyph, merging a whole
// number written just before it into a mixed fraction ("2½").
func (m *MathNormalizer) convertGlyphFraction(tokens []token.Token, i, p int, nd [2]string) {
	t := &tokens[i]
	alone, part, ok := fractionWords(nd[0], nd[1])
	if !ok {
		return
	}

	if p >= 0 && tokens[p].Type == token.Number && !tokens[p].Converted {
		if whole, ok := readNumber(tokens[p].Text); ok {
			tokens[p].Rewrite(whole+" و "+part, token.Word)
			tokens[p].Tags.Add(token.TagFraction)
			tokens[p].WhitespaceAfter = t.WhitespaceAfter
			t.Consume()
			return
		}
	}

	t.Rewrite(alone, token.Word)
	t.Tags.Add(token.TagFraction)
}

// fractionWords gives the standalone and the after-a-whole readings of a
// numeric fraction. Halves and quarters have idiomatic forms.
func fractionWords(num, den string) (alone, part string, ok bool) {
	switch {
	case num == "1" && den == "2":
		return wordHalfAlone, wordHalf, true
	case num == "1" && den == "4":
		return wordQuarter, wordQuarter, true
	}
	nw, ok1 := numtext.Cardinal(num)
	dw, ok2 := numtext.Cardinal(den)
	if !ok1 || !ok2 {
		return "", "", false
	}
	return nw + " " + mathSymbols["/"] + " " + dw,
		nw + " " + wordOver + " " + dw, true
}

// convertMinus distinguishes ranges, binary subtraction, and the unary
// sign. A minus between two numbers reads as a range only when the pair
// stands alone; any further operator, bracket, or function beyond either
// neighbor makes it subtraction. The unary sign is left for the number
// pass, which merges it into its literal.
func (m *MathNormalizer) convertMinus(tokens []token.Token, i, p, nx int) {
	t := &tokens[i]
	if p >= 0 && nx >= 0 && isNumeric(&tokens[p]) && isNumeric(&tokens[nx]) &&
		isIsolated(tokens, p, nx) {
		rewriteOperator(t, wordRange)
		return
	}
	if isBinaryContext(tokens, p, nx) {
		rewriteOperator(t, mathSymbols["-"])
	}
}

// isIsolated reports whether the pair around an operator has no active
// math on its far sides: nothing operator-like beyond the left neighbor
// at p or the right neighbor at nx.
func isIsolated(tokens []token.Token, p, nx int) bool {
	return !isActiveMath(tokens, prevIndex(tokens, p)) &&
		!isActiveMath(tokens, nextIndex(tokens, nx))
}

// isActiveMath reports whether the token at j keeps a surrounding
// expression alive: an operator glyph or its converted word, a bracket,
// or a function name.
func isActiveMath(tokens []token.Token, j int) bool {
	if j < 0 {
		return false
	}
	t := &tokens[j]
	if t.Tags.Has(token.TagMathTerm) || t.Tags.Has(token.TagMathFunction) {
		return true
	}
	if _, ok := mathSymbols[t.Text]; ok {
		return true
	}
	if isOpenBracket(t.Text) || isCloseBracket(t.Text) {
		return true
	}
	if _, ok := mathFunctions[strings.ToLower(t.Text)]; ok {
		return true
	}
	return false
}

// convertPercent reorders the percent phrase in front of its number:
// 50% and %50 both read لە سەدا پەنجا.
func (m *MathNormalizer) convertPercent(tokens []token.Token, i, p, nx int) {
	if p >= 0 && tokens[p].Type == token.Number && !tokens[p].Converted {
		if words, ok := readNumber(tokens[p].Text); ok {
			tokens[p].Rewrite(mathSymbols["%"]+" "+words, token.Word)
			tokens[p].Tags.Add(token.TagMathTerm)
			tokens[p].WhitespaceAfter = tokens[i].WhitespaceAfter
			tokens[i].Consume()
		}
		return
	}
	if nx >= 0 && tokens[nx].Type == token.Number && !tokens[nx].Converted {
		if words, ok := readNumber(tokens[nx].Text); ok {
			tokens[nx].Rewrite(mathSymbols["%"]+" "+words, token.Word)
			tokens[nx].Tags.Add(token.TagMathTerm)
			tokens[i].Consume()
		}
	}
}

func (m *MathNormalizer) convertWord(tokens []token.Token, i int) {
	t := &tokens[i]
	if t.Tags.Has(token.TagIsUnit) {
		return
	}
	nx := nextIndex(tokens, i)
	p := prevIndex(tokens, i)

	if name, ok := mathFunctions[strings.ToLower(t.Text)]; ok {
		if nx >= 0 && (isOperand(&tokens[nx]) || isOpenBracket(tokens[nx].Text)) {
			t.Rewrite(name, token.Word)
			t.Tags.Add(token.TagMathFunction)
			t.Tags.Add(token.TagMathTerm)
		}
		return
	}

	r, size := utf8.DecodeRuneInString(t.Text)
	if size != len(t.Text) {
		return
	}
	if name, ok := greekLetterNames[r]; ok {
		if isOperatorNeighbor(tokens, p) || isOperatorNeighbor(tokens, nx) {
			t.Rewrite(name, token.Word)
			t.Tags.Add(token.TagMathTerm)
		}
		return
	}
	// A lone Latin letter next to an operator is a variable.
	if r < utf8.RuneSelf && unicode.IsLetter(r) {
		if isOperatorNeighbor(tokens, p) || isOperatorNeighbor(tokens, nx) {
			if name, ok := translit.LetterName(unicode.ToLower(r)); ok {
				t.Rewrite(name, token.Word)
				t.Tags.Add(token.TagMathTerm)
			}
		}
	}
}

// isOperatorNeighbor reports whether tokens[j] is an operator glyph, a
// converted operator, or a power mark.
func isOperatorNeighbor(tokens []token.Token, j int) bool {
	if j < 0 || j >= len(tokens) {
		return false
	}
	switch tokens[j].Type {
	case token.Superscript, token.Subscript:
		return true
	}
	return isOperatorAt(tokens, j)
}

func rewriteOperator(t *token.Token, word string) {
	t.Rewrite(word, token.Word)
	t.Tags.Add(token.TagMathTerm)
}

// isOperand reports whether t can sit on one side of a binary operator.
func isOperand(t *token.Token) bool {
	if t.Tags.Has(token.TagMathTerm) || t.Tags.Has(token.TagFraction) {
		return true
	}
	if isNumeric(t) {
		return true
	}
	if t.Type == token.Word && len(t.Text) == 1 && isASCIILetter(t.Text[0]) {
		return true
	}
	return false
}

// isBinaryContext accepts brackets next to the operator: the operand
// inside converts on its own later in the pass.
func isBinaryContext(tokens []token.Token, p, nx int) bool {
	if p < 0 || nx < 0 {
		return false
	}
	left := isOperand(&tokens[p]) || isCloseBracket(tokens[p].Text)
	right := isOperand(&tokens[nx]) || isOpenBracket(tokens[nx].Text)
	return left && right
}

// isUnaryContext holds when the sign starts an expression or follows
// another operator and a number comes right after.
func isUnaryContext(tokens []token.Token, p, nx int) bool {
	if nx < 0 || !isOperand(&tokens[nx]) {
		return false
	}
	return p < 0 || isOperatorAt(tokens, p)
}

// isOperatorAt reports whether tokens[j] is an operator glyph or an
// operator this pass already converted.
func isOperatorAt(tokens []token.Token, j int) bool {
	if j < 0 || j >= len(tokens) {
		return false
	}
	t := &tokens[j]
	if t.Tags.Has(token.TagMathTerm) && t.Converted {
		return true
	}
	_, ok := mathSymbols[t.Text]
	return ok && t.Type == token.Symbol
}

func isOpenBracket(s string) bool {
	return s == "(" || s == "[" || s == "{"
}

func isCloseBracket(s string) bool {
	return s == ")" || s == "]" || s == "}"
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

var subscriptMap = map[rune]byte{
	'₀': '0', '₁': '1', '₂': '2', '₃': '3', '₄': '4',
	'₅': '5', '₆': '6', '₇': '7', '₈': '8', '₉': '9',
}

var superscriptMap = map[rune]byte{
	'⁰': '0', '¹': '1', '²': '2', '³': '3', '⁴': '4',
	'⁵': '5', '⁶': '6', '⁷': '7', '⁸': '8', '⁹': '9',
}

func subscriptDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if d, ok := subscriptMap[r]; ok {
			b.WriteByte(d)
		}
	}
	return b.String()
}

func superscriptDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if d, ok := superscriptMap[r]; ok {
			b.WriteByte(d)
		}
	}
	return b.String()
}
