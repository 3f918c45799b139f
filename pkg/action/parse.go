package action

import (
	"math/big"
	"strings"
)

// ParseValue converts form text into an arbitrary-precision integer.
//
// Surrounding whitespace is ignored and empty text is zero. Decimal input may
// carry a leading sign; 0x, 0o, and 0b prefixes select hexadecimal, octal, and
// binary and take no sign. Fractions, exponents, and digit separators are
// rejected with a *ParseError.
func ParseValue(raw string) (*big.Int, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return new(big.Int), nil
	}

	digits, base := text, 10
	if len(text) > 2 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X':
			digits, base = text[2:], 16
		case 'o', 'O':
			digits, base = text[2:], 8
		case 'b', 'B':
			digits, base = text[2:], 2
		}
	}

	if base == 10 {
		unsigned := strings.TrimLeft(digits, "+-")
		if len(digits)-len(unsigned) > 1 || unsigned == "" {
			return nil, &ParseError{Input: raw}
		}
	}
	if !validDigits(strings.TrimLeft(digits, "+-"), base) || (base != 10 && digits != strings.TrimLeft(digits, "+-")) {
		return nil, &ParseError{Input: raw}
	}

	value, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, &ParseError{Input: raw}
	}
	return value, nil
}

func validDigits(digits string, base int) bool {
	if digits == "" {
		return false
	}
	for _, character := range digits {
		var digit int
		switch {
		case character >= '0' && character <= '9':
			digit = int(character - '0')
		case character >= 'a' && character <= 'f':
			digit = int(character-'a') + 10
		case character >= 'A' && character <= 'F':
			digit = int(character-'A') + 10
		default:
			return false
		}
		if digit >= base {
			return false
		}
	}
	return true
}
