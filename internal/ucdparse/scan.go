package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// --- Line level scanner ----------------------------------------------------

// Parser is a line-level scanner for UCD-style files.
//
// Lines are processed by calling scanning steps in a chain. Each step
// function works on the remainder of the current line and possibly
// branches out to a subsequent step function.
type Parser struct {
	lines  *bufio.Scanner
	lineNo int
	rest   string // unprocessed remainder of the current line
	token  *Token // last token produced
	err    error  // first error encountered
}

// A parser step will return the next step in the chain, or nil to stop/accept.
type parserStep func(*Parser, *Token) (parserStep, error)

// ErrSyntax is wrapped by all errors for malformed input lines.
var ErrSyntax = errors.New("ucd syntax error")

// New creates a parser for an input reader.
func New(inputReader io.Reader) (*Parser, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	return &Parser{lines: bufio.NewScanner(inputReader)}, nil
}

// Parse iterates over each data or directive line and calls callback f on it.
// Parse stops at the first error, either from the parser or from f.
func Parse(r io.Reader, f func(token *Token) error) error {
	p, err := New(r)
	if err != nil {
		return err
	}
	for p.Next() {
		if err = f(p.Token()); err != nil {
			return err
		}
	}
	return p.Err()
}

// Next advances the parser to the next non-empty, non-comment line.
// It returns false at the end of input or at the first error.
// After Next returns false, Err will return the error, if any.
func (p *Parser) Next() bool {
	if p.err != nil {
		return false
	}
	for p.lines.Scan() {
		p.lineNo++
		p.rest = strings.TrimSpace(p.lines.Text())
		if p.rest == "" || p.rest[0] == '#' {
			continue
		}
		token := &Token{LineNo: p.lineNo}
		step := scanLineStart
		for step != nil {
			var err error
			if step, err = step(p, token); err != nil {
				p.err = fmt.Errorf("line %d: %w", p.lineNo, err)
				p.token = nil
				return false
			}
		}
		p.token = token
		return true
	}
	p.err = p.lines.Err()
	return false
}

// Token returns the token produced by the most recent call to Next.
func (p *Parser) Token() *Token {
	return p.token
}

// Err returns the first error encountered by the parser.
func (p *Parser) Err() error {
	return p.err
}

// scanLineStart strips a trailing comment and decides between directives
// and data lines.
//
//	line start:
//	  -> '@':   directive
//	  -> other: code-points
func scanLineStart(p *Parser, token *Token) (parserStep, error) {
	if i := strings.IndexByte(p.rest, '#'); i >= 0 {
		token.Comment = strings.TrimSpace(p.rest[i+1:])
		p.rest = strings.TrimSpace(p.rest[:i])
	}
	if strings.HasPrefix(p.rest, "@") {
		return scanDirective, nil
	}
	return scanCodePoints, nil
}

func scanDirective(p *Parser, token *Token) (parserStep, error) {
	line := p.rest[1:]
	end := strings.IndexAny(line, " \t;")
	if end < 0 {
		end = len(line)
	}
	token.Directive = line[:end]
	if token.Directive == "" {
		return nil, fmt.Errorf("directive without name: %w", ErrSyntax)
	}
	p.rest = line[end:]
	return scanFields, nil
}

// scanCodePoints matches a sequence of hex words up to the first field
// separator.
func scanCodePoints(p *Parser, token *Token) (parserStep, error) {
	cps := p.rest
	if i := strings.IndexByte(cps, ';'); i >= 0 {
		cps, p.rest = cps[:i], cps[i:]
	} else {
		p.rest = ""
	}
	for _, hex := range strings.Fields(cps) {
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("hex decoding of %q: %v: %w", hex, err, ErrSyntax)
		}
		token.CodePoints = append(token.CodePoints, rune(n))
	}
	if len(token.CodePoints) == 0 {
		return nil, fmt.Errorf("data line without code-points: %w", ErrSyntax)
	}
	return scanFields, nil
}

func scanFields(p *Parser, token *Token) (parserStep, error) {
	rest := strings.TrimSpace(p.rest)
	p.rest = ""
	if rest == "" {
		return nil, nil
	}
	rest = strings.TrimPrefix(rest, ";")
	for _, f := range strings.Split(rest, ";") {
		token.Fields = append(token.Fields, strings.TrimSpace(f))
	}
	return nil, nil
}
