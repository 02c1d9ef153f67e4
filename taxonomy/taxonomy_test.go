package taxonomy

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/emojis"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

var topLevel = []string{
	"smileys", "people", "animals_and_nature", "food_and_drink", "activity",
	"travel_and_places", "objects", "symbols", "flags",
}

func TestDefaultTopLevel(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tax := Default()
	if diff := cmp.Diff(topLevel, tax.TopLevelCategories()); diff != "" {
		t.Errorf("top-level categories mismatch (-want +got):\n%s", diff)
	}
	if Default() != tax {
		t.Errorf("expected default taxonomy to be built only once")
	}
	if tax.Len() < 1000 {
		t.Errorf("expected default taxonomy to hold more than 1000 glyphs, has %d", tax.Len())
	}
}

func TestAllCategoriesPreorder(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tax := Default()
	var preorder []string
	for _, top := range tax.TopLevelCategories() {
		preorder = append(preorder, top)
		children, err := tax.ChildrenOf(top)
		if err != nil {
			t.Fatal(err)
		}
		if len(children) == 0 {
			t.Errorf("top-level category %q has no subcategories", top)
		}
		preorder = append(preorder, children...)
	}
	if diff := cmp.Diff(preorder, tax.AllCategories()); diff != "" {
		t.Errorf("all categories mismatch (-want +got):\n%s", diff)
	}
	all := len(tax.TopLevelCategories()) + len(tax.SubLevelCategories())
	if all != len(tax.AllCategories()) {
		t.Errorf("expected %d categories, have %d", all, len(tax.AllCategories()))
	}
}

func TestThreeWayLookups(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tax := Default()
	children, err := tax.ChildrenOf("smileys")
	if err != nil || children[0] != "smiling_and_affectionate" {
		t.Errorf("expected smileys to start with smiling_and_affectionate, have %v, %v", children, err)
	}
	if _, err = tax.ChildrenOf("smiling_and_affectionate"); !errors.Is(err, emojis.ErrWrongTier) {
		t.Errorf("expected children of subcategory to be wrong tier, have %v", err)
	}
	if _, err = tax.ChildrenOf("no_such_category"); !errors.Is(err, emojis.ErrNotFound) {
		t.Errorf("expected children of unknown category to be not found, have %v", err)
	}
	parent, err := tax.ParentOf("drinks_and_dishware")
	if err != nil || parent != "food_and_drink" {
		t.Errorf("expected parent food_and_drink, have %q, %v", parent, err)
	}
	if _, err = tax.ParentOf("smileys"); !errors.Is(err, emojis.ErrWrongTier) {
		t.Errorf("expected parent of top-level category to be wrong tier, have %v", err)
	}
	if _, err = tax.ParentOf(""); !errors.Is(err, emojis.ErrNotFound) {
		t.Errorf("expected parent of empty name to be not found, have %v", err)
	}
	if is, err := tax.IsTopLevel("flags"); !is || err != nil {
		t.Errorf("expected flags to be top-level")
	}
	if is, err := tax.IsTopLevel("europe"); is || err != nil {
		t.Errorf("expected europe to be a subcategory")
	}
	if _, err := tax.IsTopLevel("Flags"); !errors.Is(err, emojis.ErrNotFound) {
		t.Errorf("expected category names to be case sensitive")
	}
	if tax.TierOf("birds") != SubLevel || tax.TierOf("people") != TopLevel || tax.TierOf("x") != Unknown {
		t.Errorf("unexpected tiers")
	}
}

func TestEveryGlyphIsEmojiUnit(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tax := Default()
	n := 0
	for _, sub := range tax.SubLevelCategories() {
		parent, _ := tax.ParentOf(sub)
		err := tax.IterateGlyphs(sub, func(glyph string) {
			n++
			if ok, err := emojis.IsEmojiUnit(glyph); !ok || err != nil {
				t.Errorf("glyph %q in %s is not an emoji unit", glyph, sub)
			}
			top, s, ok := tax.Lookup(glyph)
			if !ok || top != parent || s != sub {
				t.Errorf("glyph %q: expected %s/%s, have %s/%s", glyph, parent, sub, top, s)
			}
			base, _ := emojis.Base(glyph)
			if !tax.IsCataloged(base) {
				t.Errorf("glyph %q: base %U not cataloged", glyph, base)
			}
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	if n != tax.Len() {
		t.Errorf("expected to visit %d glyphs, visited %d", tax.Len(), n)
	}
	if tax.IsCataloged('A') {
		t.Errorf("expected letter A not to be cataloged")
	}
}

func TestLookup(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tax := Default()
	top, sub, ok := tax.Lookup("\U0001F600")
	if !ok || top != "smileys" || sub != "smiling_and_affectionate" {
		t.Errorf("expected grinning face in smileys/smiling_and_affectionate, have %s/%s", top, sub)
	}
	top, sub, ok = tax.Lookup("☕")
	if !ok || top != "food_and_drink" || sub != "drinks_and_dishware" {
		t.Errorf("expected hot beverage in food_and_drink/drinks_and_dishware, have %s/%s", top, sub)
	}
	if _, _, ok = tax.Lookup("☯\uFE0F"); !ok {
		t.Errorf("expected yin yang with VS16 to be cataloged")
	}
	if _, _, ok = tax.Lookup("A"); ok {
		t.Errorf("expected letter A not to be cataloged")
	}
}

func TestEmojisIn(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tax := Default()
	listing, err := tax.EmojisIn("smileys")
	if err != nil {
		t.Fatal(err)
	}
	children, _ := tax.ChildrenOf("smileys")
	if len(listing.Groups) != len(children) || listing.Glyphs != nil {
		t.Fatalf("expected %d groups for smileys, have %d", len(children), len(listing.Groups))
	}
	for i, g := range listing.Groups {
		if g.Category != children[i] {
			t.Errorf("expected group #%d to be %s, is %s", i, children[i], g.Category)
		}
	}
	sub, err := tax.EmojisIn("smiling_and_affectionate")
	if err != nil {
		t.Fatal(err)
	}
	if sub.Tier != SubLevel || sub.Glyphs[0] != "\U0001F600" {
		t.Errorf("expected flat listing starting with grinning face, have %v", sub.Glyphs)
	}
	if diff := cmp.Diff(listing.Groups[0].Glyphs, sub.Glyphs); diff != "" {
		t.Errorf("group and flat listing differ (-group +flat):\n%s", diff)
	}
	if len(listing.All()) <= len(sub.All()) {
		t.Errorf("expected smileys to hold more glyphs than one of its subcategories")
	}
	if _, err = tax.EmojisIn("nothing"); !errors.Is(err, emojis.ErrNotFound) {
		t.Errorf("expected unknown category to be not found, have %v", err)
	}
}

func TestIterateDualMeaning(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tax := Default()
	var visited []string
	collect := func(item string) { visited = append(visited, item) }
	// Iterate visits subcategory names for top-level categories …
	if err := tax.Iterate("flags", collect); err != nil {
		t.Fatal(err)
	}
	children, _ := tax.ChildrenOf("flags")
	if diff := cmp.Diff(children, visited); diff != "" {
		t.Errorf("iteration of flags mismatch (-want +got):\n%s", diff)
	}
	// … but glyphs for subcategories.
	visited = nil
	if err := tax.Iterate("color_and_identity", collect); err != nil {
		t.Fatal(err)
	}
	if len(visited) == 0 || visited[0] != "\U0001F3C1" {
		t.Errorf("expected glyphs of color_and_identity to start with chequered flag, have %v", visited)
	}
	if err := tax.Iterate("unknown", collect); !errors.Is(err, emojis.ErrNotFound) {
		t.Errorf("expected unknown category to be not found, have %v", err)
	}
	if err := tax.IterateGlyphs("flags", collect); !errors.Is(err, emojis.ErrWrongTier) {
		t.Errorf("expected glyph iteration of top-level category to be wrong tier, have %v", err)
	}
	if err := tax.IterateChildren("europe", collect); !errors.Is(err, emojis.ErrWrongTier) {
		t.Errorf("expected child iteration of subcategory to be wrong tier, have %v", err)
	}
}

func TestSequenceRestartsPerCall(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tax := Default()
	count := func() int {
		seq, err := tax.Sequence("animals_and_nature")
		if err != nil {
			t.Fatal(err)
		}
		n := 0
		for seq.Next() {
			if seq.Text() == "" {
				t.Errorf("empty item in sequence")
			}
			n++
		}
		if seq.Next() || seq.Text() != "" {
			t.Errorf("expected exhausted sequence to stay exhausted")
		}
		return n
	}
	first, second := count(), count()
	children, _ := tax.ChildrenOf("animals_and_nature")
	if first != len(children) || second != first {
		t.Errorf("expected two full traversals of %d items, have %d and %d", len(children), first, second)
	}
	if _, err := tax.Sequence("?"); !errors.Is(err, emojis.ErrNotFound) {
		t.Errorf("expected unknown category to be not found, have %v", err)
	}
}

func TestNewRejectsInconsistentData(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for i, data := range []string{
		"",
		"# only a comment",
		"@category a ; a",
		"@category a ; b\n@category b ; c",
		"@category a ; b\n@category c ; b",
		"@category a ; b\n@section a ; b",
		"@category a ; b\n2615 ; a ; c",
		"@category a ; b\n@category c ; d\n2615 ; c ; b",
		"@category a ; b\n2615 ; a ; b\n2615 ; a ; b",
		"@category a ; b\n0041 ; a ; b",
	} {
		if _, err := New(strings.NewReader(data)); !errors.Is(err, ErrConfiguration) {
			t.Errorf("test #%d: expected configuration error, have %v", i, err)
		}
	}
}

func TestNewCustomTaxonomy(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	data := `
@category drinks ; hot
@category drinks ; cold
@category drinks ; hot
2615      ; drinks ; hot   # ☕
1F9CB     ; drinks ; cold  # 🧋
262F FE0F ; drinks ; hot   # ☯️
`
	tax, err := New(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"drinks", "hot", "cold"}, tax.AllCategories()); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
	listing, _ := tax.EmojisIn("hot")
	if diff := cmp.Diff([]string{"☕", "☯\uFE0F"}, listing.Glyphs); diff != "" {
		t.Errorf("glyphs mismatch (-want +got):\n%s", diff)
	}
	if tax.Len() != 3 || !tax.IsCataloged(0x262F) {
		t.Errorf("expected 3 glyphs including yin yang, have %d", tax.Len())
	}
}

func TestTitle(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tax := Default()
	title, err := tax.Title("smiling_and_affectionate", language.AmericanEnglish)
	if err != nil {
		t.Fatal(err)
	}
	if title != "Smiling And Affectionate" {
		t.Errorf("unexpected title %q", title)
	}
	if _, err = tax.Title("smiling", language.AmericanEnglish); !errors.Is(err, emojis.ErrNotFound) {
		t.Errorf("expected unknown category to be not found, have %v", err)
	}
	lang := LanguageFromEnvironment()
	t.Logf("user language is %v", lang)
}
