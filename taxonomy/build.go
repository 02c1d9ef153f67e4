package taxonomy

import (
	"errors"
	"fmt"
	"io"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/emojis"
	"github.com/npillmayer/emojis/internal/ucdparse"
	"golang.org/x/text/unicode/rangetable"
)

// ErrConfiguration is returned by New for inconsistent taxonomy data.
var ErrConfiguration = errors.New("taxonomy configuration error")

// New creates a taxonomy from data in the format of taxonomy.txt.
//
// The data is checked for consistency: category names must be unique
// across tiers, a subcategory must not be declared under two top-level
// categories, glyphs must be emoji units and may occur only once, and every
// glyph has to refer to a declared subcategory of the right parent.
// Violations result in ErrConfiguration.
func New(r io.Reader) (*Taxonomy, error) {
	b := &builder{
		tax: &Taxonomy{
			tops:   linkedhashmap.New(),
			subs:   linkedhashmap.New(),
			glyphs: make(map[string]location),
		},
	}
	if err := ucdparse.Parse(r, b.add); err != nil {
		return nil, err
	}
	if b.tax.tops.Empty() {
		return nil, fmt.Errorf("no categories declared: %w", ErrConfiguration)
	}
	b.tax.cataloged = rangetable.New(b.bases...)
	tracer().P("glyphs", len(b.tax.glyphs)).Debugf("taxonomy with %d categories",
		b.tax.tops.Size()+b.tax.subs.Size())
	return b.tax, nil
}

type builder struct {
	tax   *Taxonomy
	bases []rune
}

func (b *builder) add(token *ucdparse.Token) error {
	if token.IsDirective() {
		if token.Directive != "category" {
			return configError(token, "unknown directive @%s", token.Directive)
		}
		return b.declare(token, token.Field(1), token.Field(2))
	}
	return b.assign(token, token.Text(), token.Field(1), token.Field(2))
}

func (b *builder) declare(token *ucdparse.Token, top, sub string) error {
	if top == "" || sub == "" {
		return configError(token, "category directive needs top-level and subcategory")
	}
	if top == sub {
		return configError(token, "%q cannot be its own subcategory", top)
	}
	if _, ok := b.tax.sub(top); ok {
		return configError(token, "%q is already a subcategory", top)
	}
	if _, ok := b.tax.top(sub); ok {
		return configError(token, "%q is already a top-level category", sub)
	}
	if c, ok := b.tax.sub(sub); ok {
		if c.parent != top {
			return configError(token, "subcategory %q already declared under %q", sub, c.parent)
		}
		return nil
	}
	t, ok := b.tax.top(top)
	if !ok {
		t = &topCategory{name: top}
		b.tax.tops.Put(top, t)
	}
	t.children = append(t.children, sub)
	b.tax.subs.Put(sub, &subCategory{name: sub, parent: top})
	return nil
}

func (b *builder) assign(token *ucdparse.Token, glyph, top, sub string) error {
	if ok, _ := emojis.IsEmojiUnit(glyph); !ok {
		return configError(token, "%U is not an emoji unit", token.CodePoints)
	}
	if loc, dup := b.tax.glyphs[glyph]; dup {
		return configError(token, "glyph %q already listed in %s/%s", glyph, loc.top, loc.sub)
	}
	c, ok := b.tax.sub(sub)
	if !ok {
		return configError(token, "subcategory %q not declared", sub)
	}
	if c.parent != top {
		return configError(token, "subcategory %q belongs to %q, not %q", sub, c.parent, top)
	}
	c.glyphs = append(c.glyphs, glyph)
	b.tax.glyphs[glyph] = location{top: top, sub: sub}
	if base, ok := emojis.Base(glyph); ok {
		b.bases = append(b.bases, base)
	}
	return nil
}

func configError(token *ucdparse.Token, format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s: %w", token.LineNo, fmt.Sprintf(format, args...), ErrConfiguration)
}
