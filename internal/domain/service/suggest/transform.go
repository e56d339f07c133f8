package suggest

import (
	"strings"
	"unicode"
)

const (
	padAlphabet    = "abcdefghijklmnopqrstuvwxyz0123456789"
	symbolAlphabet = "!@#$%^&*()-_+="

	upperThreshold      = 0.7
	substituteThreshold = 0.6
)

var leetMap = map[rune]rune{ //nolint:gochecknoglobals
	'a': '@',
	's': '$',
	'o': '0',
	'i': '1',
	'e': '3',
	't': '7',
}

func (g *Generator) randomChars(n int) string {
	return g.random.String(n, padAlphabet)
}

// randomizeCase uppercases each rune whose draw exceeds 0.7.
func (g *Generator) randomizeCase(s string) string {
	return strings.Map(func(r rune) rune {
		if g.random.Float64() > upperThreshold {
			return unicode.ToUpper(r)
		}

		return r
	}, s)
}

// substitute draws for every rune, eligible or not, and replaces those whose
// lowercase form is in leetMap when the draw exceeds 0.6.
func (g *Generator) substitute(s string) string {
	return strings.Map(func(r rune) rune {
		if g.random.Float64() <= substituteThreshold {
			return r
		}

		if sub, ok := leetMap[unicode.ToLower(r)]; ok {
			return sub
		}

		return r
	}, s)
}

// insertSymbol puts one symbol at a uniform position in [0, len].
func (g *Generator) insertSymbol(s string) string {
	runes := []rune(s)
	pos := g.random.IntN(len(runes) + 1)
	sym := g.random.Pick(symbolAlphabet)

	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:pos]...)
	out = append(out, sym)
	out = append(out, runes[pos:]...)

	return string(out)
}

func hasDigit(s string) bool {
	return strings.ContainsFunc(s, isDigit)
}

// hasSymbol matches [^A-Za-z0-9].
func hasSymbol(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return !isASCIILetter(r) && !isDigit(r)
	})
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
