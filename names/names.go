/*
Package names maps emoji units to Unicode character names and back.

Names are taken from the Unicode Character Database as shipped with
golang.org/x/text/unicode/runenames. The demojized form of an emoji is a
lower-case, underscored variant of its name, enclosed in ":_" and "_:":

    Demojize("☕")                  // => ":_hot_beverage_:"
    Emojize(":_grinning_face_:")    // => "😀"

For units carrying a variation selector only the name of the base is
encoded, the selector is lost. Demojize/Emojize therefore round-trip only for
single code-point units.
*/
package names

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/emojis"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/runenames"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Delimiters of the demojized form.
const (
	Prefix = ":_"
	Suffix = "_:"
)

// NameOf returns the Unicode name of an emoji unit, e.g. "GRINNING FACE".
// For units with a variation selector it is the name of the base code-point.
// If unit is not an emoji unit, ErrNotFound is returned.
func NameOf(unit string) (string, error) {
	ok, err := emojis.IsEmojiUnit(unit)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%q is not an emoji: %w", unit, emojis.ErrNotFound)
	}
	base, ok := emojis.Base(unit)
	if !ok {
		return "", fmt.Errorf("%q has no base code-point: %w", unit, emojis.ErrNotFound)
	}
	name := runenames.Name(base)
	if name == "" || strings.HasPrefix(name, "<") {
		return "", fmt.Errorf("no name for %U: %w", base, emojis.ErrNotFound)
	}
	return name, nil
}

// ByName finds the character with Unicode name name. Matching is exact,
// names are expected in upper case, as listed by the Unicode standard.
// If no character carries name, ErrMalformedName is returned.
func ByName(name string) (string, error) {
	if r, ok := nameIndex()[name]; ok {
		return string(r), nil
	}
	return "", fmt.Errorf("no character named %q: %w", name, emojis.ErrMalformedName)
}

// Demojize encodes an emoji unit by its name, e.g. "☕" → ":_hot_beverage_:".
// If unit is not an emoji unit, ErrNotFound is returned.
func Demojize(unit string) (string, error) {
	name, err := NameOf(unit)
	if err != nil {
		return "", err
	}
	return Prefix + strings.ToLower(strings.ReplaceAll(name, " ", "_")) + Suffix, nil
}

// Emojize decodes the demojized form of an emoji, i.e. it is the inverse
// of Demojize. Delimiters are optional. If the name does not resolve to a
// character, ErrMalformedName is returned.
func Emojize(s string) (string, error) {
	name := strings.TrimSuffix(strings.TrimPrefix(s, Prefix), Suffix)
	name = strings.ToUpper(strings.ReplaceAll(name, "_", " "))
	if name == "" {
		return "", fmt.Errorf("empty name in %q: %w", s, emojis.ErrMalformedName)
	}
	return ByName(name)
}

// --- Name index ------------------------------------------------------------

var names struct {
	once  sync.Once
	index map[string]rune
}

// nameIndex maps the names of all assigned code-points to their runes.
// Control characters, surrogates and private use code-points have no
// proper name and are not indexed.
func nameIndex() map[string]rune {
	names.once.Do(func() {
		index := make(map[string]rune, 1<<15)
		for r := rune(0); r <= unicode.MaxRune; r++ {
			if !utf8.ValidRune(r) {
				continue
			}
			if name := runenames.Name(r); name != "" && !strings.HasPrefix(name, "<") {
				if _, dup := index[name]; !dup {
					index[name] = r
				}
			}
		}
		tracer().Debugf("character name index holds %d names", len(index))
		names.index = index
	})
	return names.index
}
