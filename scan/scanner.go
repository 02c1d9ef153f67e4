package scan

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/emojis"
)

// Occurrence is an emoji unit found in a text, together with its position.
// If a scanner reports non-emoji code-points, Emoji is false for them.
type Occurrence struct {
	Unit  string
	Pos   emojis.Position
	Emoji bool
}

// Scanner is a cursor over the emoji units of a text.
//
// Clients call Next to advance the scanner and Unit/Position/Occurrence to
// inspect the unit just found. Scanning stops at the end of input or at the
// first read error, which is reported by Err.
type Scanner struct {
	reader    io.RuneReader
	nonEmoji  bool       // report non-emoji code-points, too
	lookahead rune       // code-point read ahead, if hasLook
	hasLook   bool       // is lookahead valid?
	index     int        // code-point index of the next rune to read
	occ       Occurrence // current occurrence
	err       error
	done      bool
}

// Option configures a scanner.
type Option func(*Scanner)

// IncludeNonEmoji lets a scanner report every code-point of the text.
// Code-points which do not belong to an emoji unit, including orphan
// variation selectors, are reported with Occurrence.Emoji = false.
func IncludeNonEmoji(include bool) Option {
	return func(s *Scanner) {
		s.nonEmoji = include
	}
}

// NewScanner creates a new scanner. Before use it has to be initialized
// with Init or InitString.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init sets the input for the scanner and resets its state.
func (s *Scanner) Init(reader io.RuneReader) {
	s.reader = reader
	s.lookahead, s.hasLook = 0, false
	s.index = 0
	s.occ = Occurrence{}
	s.err = nil
	s.done = reader == nil
}

// InitString sets a string as the input for the scanner.
func (s *Scanner) InitString(text string) {
	s.Init(strings.NewReader(text))
}

// Next advances the scanner to the next emoji unit (or to the next
// code-point, if non-emoji code-points are included).
// It returns false at the end of input or after a read error.
func (s *Scanner) Next() bool {
	for {
		r, ok := s.readRune()
		if !ok {
			s.occ = Occurrence{}
			return false
		}
		i := s.index
		s.index++
		if emojis.IsEmojiRune(r) {
			if next, ok := s.peekRune(); ok && next == emojis.VS16 {
				s.hasLook = false
				s.index++
				s.occ = Occurrence{
					Unit:  string([]rune{r, next}),
					Pos:   emojis.Span(i, i+1),
					Emoji: true,
				}
			} else {
				s.occ = Occurrence{Unit: string(r), Pos: emojis.Simple(i), Emoji: true}
			}
			return true
		}
		if r == emojis.VS16 {
			tracer().Debugf("orphan variation selector at position %d", i)
		}
		if s.nonEmoji {
			s.occ = Occurrence{Unit: string(r), Pos: emojis.Simple(i)}
			return true
		}
	}
}

// Unit returns the emoji unit found by the most recent call to Next.
func (s *Scanner) Unit() string {
	return s.occ.Unit
}

// Position returns the position of the current unit.
func (s *Scanner) Position() emojis.Position {
	return s.occ.Pos
}

// Occurrence returns the current unit together with its position.
func (s *Scanner) Occurrence() Occurrence {
	return s.occ
}

// Err returns the first non-EOF error encountered by the scanner.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) readRune() (rune, bool) {
	if s.hasLook {
		s.hasLook = false
		return s.lookahead, true
	}
	if s.done || s.reader == nil {
		return 0, false
	}
	r, _, err := s.reader.ReadRune()
	if err != nil {
		s.done = true
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		return 0, false
	}
	return r, true
}

func (s *Scanner) peekRune() (rune, bool) {
	if !s.hasLook {
		r, ok := s.readRune()
		if !ok {
			return 0, false
		}
		s.lookahead, s.hasLook = r, true
	}
	return s.lookahead, true
}

// --- Positions -------------------------------------------------------------

// PositionCursor iterates over the positions of the emoji units of a text.
type PositionCursor struct {
	scanner *Scanner
}

// Next advances the cursor to the position of the next emoji unit.
func (pc *PositionCursor) Next() bool {
	return pc.scanner.Next()
}

// Position returns the current position.
func (pc *PositionCursor) Position() emojis.Position {
	return pc.scanner.Position()
}
