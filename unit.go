package emojis

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmojiRune checks a single code-point for being an emoji, i.e. for
// being of Unicode general category So ("Symbol, other").
func IsEmojiRune(r rune) bool {
	return unicode.Is(unicode.So, r)
}

// HasVariationMarker returns true if VS16 occurs anywhere in unit.
//
// VS16 requests an emoji-style presentation of the preceding character.
// Standing alone it has no visible representation.
func HasVariationMarker(unit string) bool {
	return strings.ContainsRune(unit, VS16)
}

// IsEmojiUnit classifies an emoji unit. A unit of one code-point is an emoji
// if it is of general category So. A unit of more than one code-point is an
// emoji if it carries a variation marker; the base code-point is not checked
// any further.
//
// An empty unit cannot be classified and results in ErrInvalidInput.
func IsEmojiUnit(unit string) (bool, error) {
	switch utf8.RuneCountInString(unit) {
	case 0:
		return false, fmt.Errorf("cannot classify empty emoji unit: %w", ErrInvalidInput)
	case 1:
		r, _ := utf8.DecodeRuneInString(unit)
		return IsEmojiRune(r), nil
	}
	return HasVariationMarker(unit), nil
}

// Base returns the first code-point of unit which is not a variation
// selector. If there is none, Base returns utf8.RuneError and false.
func Base(unit string) (rune, bool) {
	for _, r := range unit {
		if r != VS16 {
			return r, true
		}
	}
	return utf8.RuneError, false
}

// CodePoints returns the code-points of unit in U+ notation,
// e.g. "☯️" → [ "U+262F", "U+FE0F" ].
func CodePoints(unit string) []string {
	cps := make([]string, 0, len(unit)/2+1)
	for _, r := range unit {
		cps = append(cps, fmt.Sprintf("U+%04X", r))
	}
	return cps
}

// FromCodePoints is the inverse of CodePoints. Each argument may be given
// with or without the "U+" prefix, case does not matter.
// Arguments which are not hexadecimal code-points result in ErrMalformedName.
func FromCodePoints(cps ...string) (string, error) {
	var sb strings.Builder
	for _, cp := range cps {
		hex := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(cp)), "U+")
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || hex == "" {
			return "", fmt.Errorf("code-point %q: %w", cp, ErrMalformedName)
		}
		r := rune(n)
		if !utf8.ValidRune(r) {
			return "", fmt.Errorf("code-point %q is not a valid rune: %w", cp, ErrMalformedName)
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}
