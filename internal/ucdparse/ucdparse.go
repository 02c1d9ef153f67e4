/* Package ucdparse provides a parser for UCD-style data files.

The format follows the Unicode Character Database files
(see http://www.unicode.org/reports/tr44/), with small extensions for the
emoji data files of this module:

   # comment
   @directive arg1 ; arg2
   262F FE0F ; field1 ; field2   # trailing comment

A data line starts with one or more hexadecimal code-points, separated by
spaces, followed by fields separated by ';'. A directive line starts with
'@', immediately followed by the directive name and fields.
Empty lines and comment lines are skipped.
*/
package ucdparse

import "fmt"

// Token is a type for communicating between the line-level scanner and
// clients. Every token subsumes the properties of a line of input.
type Token struct {
	LineNo     int      // line number within the input source, starting at 1
	Directive  string   // name of a directive, empty for data lines
	CodePoints []rune   // code-points of a data line
	Fields     []string // fields after the code-points (or after the directive name)
	Comment    string   // rest-of-line comment
}

func (token *Token) String() string {
	if token.IsDirective() {
		return fmt.Sprintf("token[line %d @%s %#v]", token.LineNo, token.Directive, token.Fields)
	}
	return fmt.Sprintf("token[line %d %U %#v]", token.LineNo, token.CodePoints, token.Fields)
}

// IsDirective is true for directive lines.
func (token *Token) IsDirective() bool {
	return token.Directive != ""
}

// Field gets field #i (1…n) from the current item.
// Returns an empty string if there is no such field.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Text returns the code-points of a data line as a string.
func (token *Token) Text() string {
	return string(token.CodePoints)
}
