/*
Package scan finds emoji units in text.

Scanning is done left to right, one code-point at a time. A code-point of
Unicode general category So is an emoji unit of its own, unless it is
immediately followed by VARIATION SELECTOR-16 (U+FE0F), in which case both
form a unit. Scanners skip a variation selector not directly following an
emoji (an "orphan"). FindAll, FindDistinct and Count append an orphan to the
emoji unit collected last, or drop it if there is none yet.

Typical Usage with a Scanner

	scanner := scan.NewScanner()
	scanner.InitString("I ☕ love coffee")
	for scanner.Next() {
		fmt.Printf("%s at %v\n", scanner.Unit(), scanner.Position())
	}

Positions are zero-based code-point indices, see type emojis.Position.
Scanners are not safe for concurrent use, but the convenience functions of
this package (FindAll, Count, Replace, …) may be called concurrently, as each
call uses a scanner of its own.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scan

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
