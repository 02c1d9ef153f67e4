package scan

import (
	"sort"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/emojis"
)

const vs16 = string(emojis.VS16)

// FindAll returns every emoji unit of text, in order of appearance.
// A unit carrying a variation selector is returned as a single string.
//
// A variation selector which does not directly follow an emoji is appended
// to the unit collected last, e.g. "☕ \uFE0F" results in [ "☕\uFE0F" ].
// Selectors in front of the first emoji of text are dropped.
func FindAll(text string) []string {
	return toStrings(collect(text).Values())
}

// FindDistinct returns the emoji units of text without duplicates, in order
// of first appearance. Units are collected as with FindAll and compared by
// value, i.e. a glyph with and without variation selector counts as two
// different units.
func FindDistinct(text string) []string {
	units := linkedhashset.New(collect(text).Values()...)
	return toStrings(units.Values())
}

// Count counts the emoji units of text. If unique is true, every distinct
// unit is counted once.
func Count(text string, unique bool) int {
	if unique {
		return len(FindDistinct(text))
	}
	return collect(text).Size()
}

// collect gathers the emoji units of text, attaching detached variation
// selectors to the previous unit.
func collect(text string) *arraylist.List {
	s := borrowScanner(text, true)
	defer s.release()
	units := arraylist.New()
	for s.Next() {
		occ := s.Occurrence()
		switch {
		case occ.Emoji:
			units.Add(occ.Unit)
		case occ.Unit != vs16:
			// other text
		case units.Empty():
			tracer().Debugf("variation selector at %v precedes any emoji, dropped", occ.Pos)
		default:
			last, _ := units.Get(units.Size() - 1)
			units.Set(units.Size()-1, last.(string)+vs16)
		}
	}
	return units
}

// Analyze returns a fresh scanner over text. With includeNonEmoji set, it
// reports every code-point of text, not only emoji units.
func Analyze(text string, includeNonEmoji bool) *Scanner {
	s := NewScanner(IncludeNonEmoji(includeNonEmoji))
	s.InitString(text)
	return s
}

// Positions returns a fresh cursor over the positions of the emoji units
// of text.
func Positions(text string) *PositionCursor {
	return &PositionCursor{scanner: Analyze(text, false)}
}

// Replace replaces every emoji unit in text by replacement.
//
// Units are replaced where they stand in text: a base with an adjacent
// variation selector is replaced as a whole, detached selectors are left
// in place.
// Replacement is done in a single pass over text, therefore emoji contained
// in replacement will not be replaced again.
func Replace(text, replacement string) string {
	s := borrowScanner(text, false)
	found := linkedhashset.New()
	for s.Next() {
		found.Add(s.Unit())
	}
	s.release()
	if found.Empty() {
		return text
	}
	units := toStrings(found.Values())
	// longer units first, so that a base with variation selector wins over
	// the plain base
	sort.SliceStable(units, func(i, j int) bool {
		return len(units[i]) > len(units[j])
	})
	pairs := make([]string, 0, 2*len(units))
	for _, unit := range units {
		pairs = append(pairs, unit, replacement)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// HasReplacementMarker is true if text contains the Unicode REPLACEMENT
// CHARACTER U+FFFD, which is a sign of broken encodings. Invalid UTF-8 bytes
// in text are not reported.
func HasReplacementMarker(text string) bool {
	return strings.Contains(text, string(emojis.ReplacementChar))
}

func toStrings(values []interface{}) []string {
	units := make([]string, len(values))
	for i, v := range values {
		units[i] = v.(string)
	}
	return units
}
