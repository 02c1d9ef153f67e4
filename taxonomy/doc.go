/*
Package taxonomy holds a curated two-level category tree of emoji glyphs.

Top-level categories (smileys, people, animals_and_nature, …) each own an
ordered list of subcategories, and every subcategory owns an ordered list of
emoji units (glyphs). A glyph belongs to exactly one subcategory.
Category names are unique across both tiers.

A Taxonomy is immutable after construction and safe for concurrent use by
multiple goroutines. Clients will usually use the table embedded into this
package:

    tax := taxonomy.Default()
    subs, err := tax.ChildrenOf("smileys")  // => smiling_and_affectionate, …
    top, sub, ok := tax.Lookup("😀")        // => smileys, smiling_and_affectionate

Custom tables may be loaded with New, from data in the format of file
taxonomy.txt:

    @category smileys ; smiling_and_affectionate
    1F600     ; smileys ; smiling_and_affectionate # 😀 GRINNING FACE

Directive lines declare a subcategory under a top-level category and fix the
iteration order. Data lines assign an emoji unit, given as code-points, to a
declared subcategory.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package taxonomy

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
