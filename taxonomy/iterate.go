package taxonomy

// Group is the glyph list of a single subcategory.
type Group struct {
	Category string
	Glyphs   []string
}

// Listing is the result of EmojisIn. For a top-level category it holds one
// group per subcategory, in declaration order. For a subcategory it holds
// the flat list of glyphs.
type Listing struct {
	Category string
	Tier     Tier
	Groups   []Group  // set for top-level categories
	Glyphs   []string // set for subcategories
}

// All returns every glyph of the listing, flattening groups.
func (l Listing) All() []string {
	if l.Tier == SubLevel {
		return l.Glyphs
	}
	var all []string
	for _, g := range l.Groups {
		all = append(all, g.Glyphs...)
	}
	return all
}

// EmojisIn lists the glyphs of a category. Top-level categories list their
// glyphs grouped by subcategory, subcategories list them flat.
// Unknown names result in ErrNotFound.
func (tax *Taxonomy) EmojisIn(name string) (Listing, error) {
	listing := Listing{Category: name, Tier: tax.TierOf(name)}
	switch listing.Tier {
	case TopLevel:
		t, _ := tax.top(name)
		listing.Groups = make([]Group, 0, len(t.children))
		for _, child := range t.children {
			c, _ := tax.sub(child)
			listing.Groups = append(listing.Groups, Group{
				Category: child,
				Glyphs:   append([]string(nil), c.glyphs...),
			})
		}
	case SubLevel:
		c, _ := tax.sub(name)
		listing.Glyphs = append([]string(nil), c.glyphs...)
	default:
		return listing, notFound(name)
	}
	return listing, nil
}

// Visitor is called for every item of an iteration.
type Visitor func(item string)

// Iterate calls visitor for each subcategory name of a top-level category,
// or for each glyph of a subcategory. Unknown names result in ErrNotFound.
//
// Clients who know the tier of name should prefer IterateChildren or
// IterateGlyphs.
func (tax *Taxonomy) Iterate(name string, visitor Visitor) error {
	items, err := tax.items(name)
	if err != nil {
		return err
	}
	for _, item := range items {
		visitor(item)
	}
	return nil
}

// IterateChildren calls visitor for each subcategory name of top-level
// category top.
func (tax *Taxonomy) IterateChildren(top string, visitor Visitor) error {
	children, err := tax.ChildrenOf(top)
	if err != nil {
		return err
	}
	for _, child := range children {
		visitor(child)
	}
	return nil
}

// IterateGlyphs calls visitor for each glyph of subcategory sub.
// Calling it for a top-level category results in ErrWrongTier.
func (tax *Taxonomy) IterateGlyphs(sub string, visitor Visitor) error {
	switch tax.TierOf(sub) {
	case SubLevel:
		c, _ := tax.sub(sub)
		for _, glyph := range c.glyphs {
			visitor(glyph)
		}
		return nil
	case TopLevel:
		return wrongTier(sub, SubLevel)
	}
	return notFound(sub)
}

// items returns the child names of a top-level category or the glyphs of a
// subcategory.
func (tax *Taxonomy) items(name string) ([]string, error) {
	switch tax.TierOf(name) {
	case TopLevel:
		t, _ := tax.top(name)
		return t.children, nil
	case SubLevel:
		c, _ := tax.sub(name)
		return c.glyphs, nil
	}
	return nil, notFound(name)
}

// --- Cursor ----------------------------------------------------------------

// Cursor is a finite sequence over the items of a category, as produced by
// Sequence. Usage:
//
//	seq, err := tax.Sequence("smileys")
//	for seq.Next() {
//	    fmt.Println(seq.Text())
//	}
type Cursor struct {
	items []string
	pos   int
}

// Sequence starts a fresh traversal over the same items Iterate would visit.
// Every call returns a new cursor, positioned before the first item.
func (tax *Taxonomy) Sequence(name string) (*Cursor, error) {
	items, err := tax.items(name)
	if err != nil {
		return nil, err
	}
	return &Cursor{items: items, pos: -1}, nil
}

// Next advances the cursor. It returns false after the last item.
func (c *Cursor) Next() bool {
	if c.pos < len(c.items) {
		c.pos++
	}
	return c.pos < len(c.items)
}

// Text returns the current item.
func (c *Cursor) Text() string {
	if c.pos < 0 || c.pos >= len(c.items) {
		return ""
	}
	return c.items[c.pos]
}
