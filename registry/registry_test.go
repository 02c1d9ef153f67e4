package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/emojis"
	"github.com/npillmayer/emojis/taxonomy"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestCategoryOf(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	reg := Default()
	c := reg.CategoryOf("\U0001F600")
	if !c.Found() || c.Top != "smileys" || c.Sub != "smiling_and_affectionate" {
		t.Errorf("expected grinning face in smileys/smiling_and_affectionate, have %+v", c)
	}
	// U+2602 UMBRELLA is So, but only the emoji variant is cataloged
	if c = reg.CategoryOf("☂"); c.Status != NotCataloged {
		t.Errorf("expected plain umbrella to be not cataloged, is %v", c.Status)
	}
	if c = reg.CategoryOf("A"); c.Status != NotAnEmoji {
		t.Errorf("expected letter A not to be an emoji, is %v", c.Status)
	}
	if c = reg.CategoryOf(""); c.Status != InvalidInput || !errors.Is(c.Err, emojis.ErrInvalidInput) {
		t.Errorf("expected empty unit to be reported as invalid input, is %v (%v)", c.Status, c.Err)
	}
	if c.Found() {
		t.Errorf("expected empty unit not to be found")
	}
	if _, _, ok := reg.Category(""); ok {
		t.Errorf("expected two-state category of empty unit to fail")
	}
	if _, _, ok := reg.Category("A"); ok {
		t.Errorf("expected two-state category of letter A to fail")
	}
	if _, _, ok := reg.Category("☂"); ok {
		t.Errorf("expected two-state category of plain umbrella to fail")
	}
}

func TestEveryGlyphClassifies(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	reg := Default()
	for _, top := range reg.TopLevelCategories() {
		listing, err := reg.EmojisIn(top)
		if err != nil {
			t.Fatal(err)
		}
		for _, group := range listing.Groups {
			for _, glyph := range group.Glyphs {
				if ok, _ := reg.IsEmoji(glyph); !ok {
					t.Errorf("glyph %q is not an emoji unit", glyph)
				}
				c := reg.CategoryOf(glyph)
				if !c.Found() || c.Top != top || c.Sub != group.Category {
					t.Errorf("glyph %q: expected %s/%s, have %+v", glyph, top, group.Category, c)
				}
			}
		}
	}
}

func TestNewRegistry(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if _, err := New(nil); err == nil {
		t.Errorf("expected registry without taxonomy to fail")
	}
	tax, err := taxonomy.New(strings.NewReader("@category drinks ; hot\n2615 ; drinks ; hot\n"))
	if err != nil {
		t.Fatal(err)
	}
	reg, err := New(tax)
	if err != nil {
		t.Fatal(err)
	}
	if c := reg.CategoryOf("☕"); !c.Found() || c.Top != "drinks" {
		t.Errorf("expected coffee in drinks, have %+v", c)
	}
	if c := reg.CategoryOf("\U0001F600"); c.Status != NotCataloged {
		t.Errorf("expected grinning face not to be cataloged, is %v", c.Status)
	}
	if Default() != Default() {
		t.Errorf("expected default registry to be a singleton")
	}
}

func TestRegistryDelegates(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	reg := Default()
	text := "I ☕ love coffee ☕ and \U0001F600"
	if reg.Count(text, false) != 3 || reg.Count(text, true) != 2 {
		t.Errorf("unexpected counts for %q", text)
	}
	if len(reg.FindAll(text)) != 3 || len(reg.FindDistinct(text)) != 2 {
		t.Errorf("unexpected units for %q", text)
	}
	if r := reg.Replace("Hi ☕!", "<emoji>"); r != "Hi <emoji>!" {
		t.Errorf("unexpected replacement %q", r)
	}
	counts := reg.Categorize(text)
	if counts["food_and_drink"] != 2 || counts["smileys"] != 1 {
		t.Errorf("unexpected category counts %v", counts)
	}
	d, err := reg.Demojize("☕")
	if err != nil {
		t.Fatal(err)
	}
	if e, err := reg.Emojize(d); err != nil || e != "☕" {
		t.Errorf("expected round trip of coffee, have %q, %v", e, err)
	}
	if _, err := reg.Emojize(":_xyz_:"); !errors.Is(err, emojis.ErrMalformedName) {
		t.Errorf("expected unknown name to be malformed, have %v", err)
	}
	if !reg.HasVariationMarker("☯\uFE0F") || reg.HasReplacementMarker(text) {
		t.Errorf("unexpected marker detection")
	}
	n := 0
	for pc := reg.Positions(text); pc.Next(); n++ {
	}
	if n != 3 {
		t.Errorf("expected 3 positions, have %d", n)
	}
}
