/*
Package registry ties taxonomy, scanner and name codec together.

A Registry is a taxonomy of emoji glyphs with added operations for
classification, scanning and naming. Most clients will use the process-wide
default registry:

	reg := registry.Default()
	c := reg.CategoryOf("😀")
	if c.Found() {
		fmt.Printf("%s / %s\n", c.Top, c.Sub)   // => smileys / smiling_and_affectionate
	}

A Registry is immutable and safe for concurrent use.
*/
package registry

import (
	"errors"
	"sync"

	"github.com/npillmayer/emojis"
	"github.com/npillmayer/emojis/names"
	"github.com/npillmayer/emojis/scan"
	"github.com/npillmayer/emojis/taxonomy"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Registry is the entry point for emoji classification. It embeds the
// taxonomy it classifies against, thus all taxonomy operations are
// available on a registry.
type Registry struct {
	*taxonomy.Taxonomy
}

// New creates a registry for a taxonomy.
func New(tax *taxonomy.Taxonomy) (*Registry, error) {
	if tax == nil {
		return nil, errors.New("registry needs a taxonomy")
	}
	return &Registry{Taxonomy: tax}, nil
}

var defaultRegistry struct {
	once sync.Once
	reg  *Registry
}

// Default returns the registry for the embedded taxonomy.
func Default() *Registry {
	defaultRegistry.once.Do(func() {
		defaultRegistry.reg = &Registry{Taxonomy: taxonomy.Default()}
	})
	return defaultRegistry.reg
}

// --- Classification --------------------------------------------------------

// Status is the outcome of a classification.
type Status int8

// Classification outcomes.
const (
	NotAnEmoji   Status = iota // unit is not an emoji unit
	NotCataloged               // unit is an emoji unit, but not part of the taxonomy
	Found                      // unit has been found in the taxonomy
	InvalidInput               // unit cannot be classified, e.g. because it is empty
)

func (s Status) String() string {
	switch s {
	case NotCataloged:
		return "not cataloged"
	case Found:
		return "found"
	case InvalidInput:
		return "invalid input"
	}
	return "not an emoji"
}

// Classification is the result of CategoryOf. Top and Sub are set only for
// status Found, Err only for status InvalidInput.
type Classification struct {
	Status Status
	Top    string
	Sub    string
	Err    error
}

// Found is true if the unit has been found in the taxonomy.
func (c Classification) Found() bool {
	return c.Status == Found
}

// CategoryOf classifies an emoji unit. An empty unit is reported with
// status InvalidInput and an error wrapping emojis.ErrInvalidInput.
func (reg *Registry) CategoryOf(unit string) Classification {
	ok, err := emojis.IsEmojiUnit(unit)
	if err != nil {
		return Classification{Status: InvalidInput, Err: err}
	}
	if !ok {
		return Classification{Status: NotAnEmoji}
	}
	top, sub, found := reg.Lookup(unit)
	if !found {
		tracer().P("unit", unit).Debugf("emoji not cataloged")
		return Classification{Status: NotCataloged}
	}
	return Classification{Status: Found, Top: top, Sub: sub}
}

// Category returns the category pair of an emoji unit. Unlike CategoryOf it
// does not tell if a unit is not an emoji at all, just not cataloged or
// not classifiable.
func (reg *Registry) Category(unit string) (top, sub string, ok bool) {
	c := reg.CategoryOf(unit)
	return c.Top, c.Sub, c.Found()
}

// IsEmoji checks if unit is an emoji unit.
func (reg *Registry) IsEmoji(unit string) (bool, error) {
	return emojis.IsEmojiUnit(unit)
}

// HasVariationMarker checks if unit carries VARIATION SELECTOR-16.
func (reg *Registry) HasVariationMarker(unit string) bool {
	return emojis.HasVariationMarker(unit)
}

// --- Naming ----------------------------------------------------------------

// NameOf returns the Unicode name of an emoji unit.
func (reg *Registry) NameOf(unit string) (string, error) {
	return names.NameOf(unit)
}

// ByName returns the character with the given Unicode name.
func (reg *Registry) ByName(name string) (string, error) {
	return names.ByName(name)
}

// Demojize encodes an emoji unit by its name.
func (reg *Registry) Demojize(unit string) (string, error) {
	return names.Demojize(unit)
}

// Emojize decodes the demojized form of an emoji.
func (reg *Registry) Emojize(s string) (string, error) {
	return names.Emojize(s)
}

// --- Scanning --------------------------------------------------------------

// FindAll returns every emoji unit of text.
func (reg *Registry) FindAll(text string) []string {
	return scan.FindAll(text)
}

// FindDistinct returns the emoji units of text without duplicates.
func (reg *Registry) FindDistinct(text string) []string {
	return scan.FindDistinct(text)
}

// Count counts the (unique) emoji units of text.
func (reg *Registry) Count(text string, unique bool) int {
	return scan.Count(text, unique)
}

// Analyze returns a fresh scanner over text.
func (reg *Registry) Analyze(text string, includeNonEmoji bool) *scan.Scanner {
	return scan.Analyze(text, includeNonEmoji)
}

// Positions returns a fresh cursor over the emoji positions of text.
func (reg *Registry) Positions(text string) *scan.PositionCursor {
	return scan.Positions(text)
}

// Replace replaces every emoji unit in text by replacement.
func (reg *Registry) Replace(text, replacement string) string {
	return scan.Replace(text, replacement)
}

// HasReplacementMarker checks text for signs of broken encodings.
func (reg *Registry) HasReplacementMarker(text string) bool {
	return scan.HasReplacementMarker(text)
}

// Categorize counts the cataloged emoji units of text per top-level
// category. Units which are not cataloged are counted under the empty key.
func (reg *Registry) Categorize(text string) map[string]int {
	counts := make(map[string]int)
	for _, unit := range scan.FindAll(text) {
		top, _, _ := reg.Lookup(unit)
		counts[top]++
	}
	return counts
}
