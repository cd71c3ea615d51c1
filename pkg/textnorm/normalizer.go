package textnorm

import (
	"strconv"
	"strings"
	"unicode"
)

// currencyRunes are kept during normalization so amount recognizers can see them.
var currencyRunes = map[rune]bool{
	'$': true,
	'£': true,
	'€': true,
}

// Normalize lower-cases text and replaces punctuation with spaces, keeping
// currency symbols and the separators that occur inside numeric tokens
// ("5,500" and "3.5" survive, a trailing comma does not).
func Normalize(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	runes := []rune(lower)

	var b strings.Builder
	b.Grow(len(lower))

	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case currencyRunes[r]:
			b.WriteRune(r)
		case r == ',' || r == '.':
			// Separator only counts as part of a number when surrounded by digits.
			if i > 0 && i < len(runes)-1 && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
				b.WriteRune(r)
			} else {
				b.WriteRune(' ')
			}
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize normalizes text and splits it into tokens with byte spans into the
// normalized string.
func Tokenize(text string) []Token {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	tokens := make([]Token, 0, 8)
	offset := 0
	for i, field := range strings.Split(normalized, " ") {
		tokens = append(tokens, Token{
			Text:  field,
			Index: i,
			Start: offset,
			End:   offset + len(field),
		})
		offset += len(field) + 1
	}
	return tokens
}

// Words returns the normalized token texts only.
func Words(text string) []string {
	tokens := Tokenize(text)
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = tok.Text
	}
	return words
}

// ParseAmount converts a numeric or currency token to an integer amount.
// Accepts optional currency symbols, thousands separators, and a trailing "k"
// multiplier: "$5500", "5,500", "£5k" and "5.5k" all parse.
func ParseAmount(raw string) (int64, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	for symbol := range currencyRunes {
		s = strings.ReplaceAll(s, string(symbol), "")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	multiplier := int64(1)
	if strings.HasSuffix(s, "k") {
		multiplier = 1000
		s = strings.TrimSuffix(s, "k")
	}
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}

	if multiplier > 1 {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return int64(f * float64(multiplier)), true
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n * multiplier, true
}

// IsNumeric reports whether a normalized token is a bare or currency number.
func IsNumeric(token string) bool {
	_, ok := ParseAmount(token)
	return ok
}
