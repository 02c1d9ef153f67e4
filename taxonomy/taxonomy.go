package taxonomy

import (
	"fmt"
	"unicode"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/emojis"
)

// Tier is the level of a category within the taxonomy.
type Tier int8

// Tiers of a two-level taxonomy.
const (
	Unknown  Tier = iota // not a category name
	TopLevel             // top-level category, e.g. "smileys"
	SubLevel             // subcategory, e.g. "smiling_and_affectionate"
)

func (t Tier) String() string {
	switch t {
	case TopLevel:
		return "top-level"
	case SubLevel:
		return "sub-level"
	}
	return "unknown"
}

// Taxonomy is an immutable two-level category tree of emoji glyphs.
// Create one with New or use Default.
type Taxonomy struct {
	tops      *linkedhashmap.Map  // name → *topCategory, in declaration order
	subs      *linkedhashmap.Map  // name → *subCategory, in declaration order
	glyphs    map[string]location // emoji unit → category pair
	cataloged *unicode.RangeTable // base code-points of all glyphs
}

type topCategory struct {
	name     string
	children []string
}

type subCategory struct {
	name   string
	parent string
	glyphs []string
}

type location struct {
	top, sub string
}

func (tax *Taxonomy) top(name string) (*topCategory, bool) {
	if c, found := tax.tops.Get(name); found {
		return c.(*topCategory), true
	}
	return nil, false
}

func (tax *Taxonomy) sub(name string) (*subCategory, bool) {
	if c, found := tax.subs.Get(name); found {
		return c.(*subCategory), true
	}
	return nil, false
}

// CategoryExists is true if name is either a top-level category or a
// subcategory.
func (tax *Taxonomy) CategoryExists(name string) bool {
	return tax.TierOf(name) != Unknown
}

// TierOf returns the tier of a category name, or Unknown.
func (tax *Taxonomy) TierOf(name string) Tier {
	if _, ok := tax.top(name); ok {
		return TopLevel
	}
	if _, ok := tax.sub(name); ok {
		return SubLevel
	}
	return Unknown
}

// IsTopLevel checks if name is a top-level category.
// If name is not a category at all, ErrNotFound is returned.
func (tax *Taxonomy) IsTopLevel(name string) (bool, error) {
	switch tax.TierOf(name) {
	case TopLevel:
		return true, nil
	case SubLevel:
		return false, nil
	}
	return false, notFound(name)
}

// AllCategories returns every top-level category, each immediately followed
// by its subcategories, in declaration order.
func (tax *Taxonomy) AllCategories() []string {
	all := make([]string, 0, tax.tops.Size()+tax.subs.Size())
	for _, c := range tax.tops.Values() {
		top := c.(*topCategory)
		all = append(all, top.name)
		all = append(all, top.children...)
	}
	return all
}

// TopLevelCategories returns the top-level categories in declaration order.
func (tax *Taxonomy) TopLevelCategories() []string {
	return keys(tax.tops)
}

// SubLevelCategories returns all subcategories in declaration order,
// flattened across top-level categories.
func (tax *Taxonomy) SubLevelCategories() []string {
	return keys(tax.subs)
}

// ParentOf returns the top-level category owning subcategory sub.
// If sub names a top-level category, ErrWrongTier is returned, for unknown
// names ErrNotFound.
func (tax *Taxonomy) ParentOf(sub string) (string, error) {
	switch tax.TierOf(sub) {
	case SubLevel:
		c, _ := tax.sub(sub)
		return c.parent, nil
	case TopLevel:
		return "", wrongTier(sub, SubLevel)
	}
	return "", notFound(sub)
}

// ChildrenOf returns the subcategories of top-level category top, in
// declaration order. Calling it for a subcategory results in ErrWrongTier,
// for unknown names in ErrNotFound.
func (tax *Taxonomy) ChildrenOf(top string) ([]string, error) {
	switch tax.TierOf(top) {
	case TopLevel:
		c, _ := tax.top(top)
		return append([]string(nil), c.children...), nil
	case SubLevel:
		return nil, wrongTier(top, TopLevel)
	}
	return nil, notFound(top)
}

// Lookup finds the category pair for an emoji unit. Units have to match a
// glyph of the taxonomy exactly, including a possible variation selector.
func (tax *Taxonomy) Lookup(unit string) (top, sub string, ok bool) {
	loc, ok := tax.glyphs[unit]
	return loc.top, loc.sub, ok
}

// IsCataloged is a fast check if code-point r is the base of any glyph of
// the taxonomy.
func (tax *Taxonomy) IsCataloged(r rune) bool {
	return unicode.Is(tax.cataloged, r)
}

// Len returns the number of glyphs in the taxonomy.
func (tax *Taxonomy) Len() int {
	return len(tax.glyphs)
}

// --- Helpers ---------------------------------------------------------------

func keys(m *linkedhashmap.Map) []string {
	names := make([]string, 0, m.Size())
	for _, k := range m.Keys() {
		names = append(names, k.(string))
	}
	return names
}

func notFound(name string) error {
	return fmt.Errorf("category %q: %w", name, emojis.ErrNotFound)
}

func wrongTier(name string, expected Tier) error {
	return fmt.Errorf("category %q is not %s: %w", name, expected, emojis.ErrWrongTier)
}
