/*
Package emojis is about finding and classifying emoji in Unicode text.

Description

Emoji are hard to pin down. The Unicode Technical Standard #51 describes
emoji properties, presentation sequences, modifier sequences, ZWJ sequences
and flag sequences, and a complete implementation needs the full set of
emoji data files. This module takes a much narrower view, which is good
enough for scanning chat messages, video titles and comments:

An emoji unit is either

  - a single code-point of Unicode general category So ("Symbol, other"), or
  - a base code-point immediately followed by VARIATION SELECTOR-16 (U+FE0F),
    which requests emoji presentation of the base.

Everything else, including ZWJ sequences, skin-tone modifiers, keycaps and
regional-indicator flags, is not decomposed. Please note that the So rule
both misses some emoji (e.g., some letter-like symbols) and catches some
symbols which are not emoji. This is a known limitation.

Contents

Base package emojis provides the emoji-unit classifier, the position type
used by scanners and the error values shared by all sub-packages.

   taxonomy   a curated, immutable two-level category tree of emoji glyphs
   names      Unicode names of emoji and the demojize/emojize codec
   scan       left-to-right scanning of text for emoji units
   registry   a facade tying everything together, usable as a singleton

Positions

Scanners count positions in code-points (runes), zero-based, not in bytes
and not in user perceived characters. An emoji unit carrying a variation
selector spans two code-points and is reported with a two-element position
(see type Position).

BSD License

Copyright (c) 2023–24, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package emojis

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Code-points with a special role for emoji scanning.
const (
	VS16            rune = '\uFE0F' // VARIATION SELECTOR-16, requests emoji presentation
	ReplacementChar rune = '\uFFFD' // REPLACEMENT CHARACTER, signals broken encodings
)
