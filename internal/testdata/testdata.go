/*
Package testdata locates data files for tests.

ScanTest.txt holds scanner test cases, one per line:

	<code-points> ; <count> ; <distinct> ; <positions> # comment

Positions are separated by spaces; a variation-marked unit is given as
"base,marker".
*/
package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Reader returns a reader for the given test data file.
func Reader(file string) (io.Reader, error) {
	data, err := os.ReadFile(Path(file))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// Path returns the path for the given test data file.
func Path(file string) string {
	_, pkgfile, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgfile), file)
}
