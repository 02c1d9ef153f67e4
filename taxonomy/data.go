package taxonomy

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed taxonomy.txt
var taxonomyData []byte

var defaultTaxonomy struct {
	once sync.Once
	tax  *Taxonomy
}

// Default returns the taxonomy embedded into this package. It is built on
// first use.
//
// Default panics if the embedded data is corrupt.
func Default() *Taxonomy {
	defaultTaxonomy.once.Do(func() {
		tax, err := New(bytes.NewReader(taxonomyData))
		if err != nil {
			panic("embedded emoji taxonomy: " + err.Error())
		}
		tracer().Infof("emoji taxonomy initialized with %d glyphs", tax.Len())
		defaultTaxonomy.tax = tax
	})
	return defaultTaxonomy.tax
}
