package emojis

import "errors"

// Errors shared by all sub-packages. Operations wrap them with context,
// clients should test with errors.Is.
//
// ErrNotFound is returned if a category, subcategory, name or glyph lookup
// found nothing.
// ErrWrongTier flags a category name which exists, but on the other tier of
// the taxonomy than the operation requires.
// ErrInvalidInput is returned for input the classifier cannot judge, e.g.
// an empty emoji unit.
// ErrMalformedName is returned if a string does not resolve to a Unicode
// character name or code-point notation.
var (
	ErrNotFound      = errors.New("not found")
	ErrWrongTier     = errors.New("category is on the wrong tier")
	ErrInvalidInput  = errors.New("invalid input")
	ErrMalformedName = errors.New("malformed name")
)
