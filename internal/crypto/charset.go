package crypto

import (
	"errors"
	"strings"
)

// Category identifies one of the fixed character classes a password can
// draw from.
type Category int

const (
	Lowercase Category = iota
	Uppercase
	Digits
	Symbols
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()-_=+[]{}<>?/"
)

// AmbiguousChars lists glyphs that are easily confused with one another in
// common fonts: 0/O, 1/l/I and a few quote and punctuation marks.
const AmbiguousChars = "Il1O0`'\".,;:"

var (
	ErrNoCharacterTypes = errors.New("at least one character type must be selected")
	ErrCharsetExhausted = errors.New("excluding ambiguous characters removed every selected character")
)

// referenceAlphabets holds the full alphabet of every category, indexed by
// Category in declaration order.
var referenceAlphabets = [...]string{
	Lowercase: lowercaseChars,
	Uppercase: uppercaseChars,
	Digits:    digitChars,
	Symbols:   symbolChars,
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	return []Category{Lowercase, Uppercase, Digits, Symbols}
}

// Alphabet returns the full reference alphabet of a category, for display
// use such as help text. Generation applies ambiguous-character exclusion
// separately.
func Alphabet(c Category) string {
	if c < Lowercase || c > Symbols {
		return ""
	}
	return referenceAlphabets[c]
}

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	}
	return "unknown"
}

// pool is the usable character set of one enabled category.
type pool struct {
	category Category
	chars    string
}

// buildPools materializes one pool per enabled category in declaration
// order, stripping ambiguous characters when requested and dropping pools
// that end up empty.
func buildPools(opts Options) ([]pool, error) {
	return buildPoolsFrom(referenceAlphabets, opts)
}

func buildPoolsFrom(alphabets [4]string, opts Options) ([]pool, error) {
	enabled := [...]bool{
		Lowercase: opts.Lowercase,
		Uppercase: opts.Uppercase,
		Digits:    opts.Digits,
		Symbols:   opts.Symbols,
	}

	pools := make([]pool, 0, len(alphabets))
	selected := false
	for _, c := range Categories() {
		if !enabled[c] {
			continue
		}
		selected = true

		chars := alphabets[c]
		if opts.ExcludeAmbiguous {
			chars = stripAmbiguous(chars)
		}
		if chars == "" {
			continue
		}
		pools = append(pools, pool{category: c, chars: chars})
	}

	if !selected {
		return nil, ErrNoCharacterTypes
	}
	if len(pools) == 0 {
		return nil, ErrCharsetExhausted
	}
	return pools, nil
}

// stripAmbiguous removes ambiguous characters, keeping the relative order
// of the remaining ones.
func stripAmbiguous(chars string) string {
	var b strings.Builder
	b.Grow(len(chars))
	for i := 0; i < len(chars); i++ {
		if strings.IndexByte(AmbiguousChars, chars[i]) < 0 {
			b.WriteByte(chars[i])
		}
	}
	return b.String()
}
