package emojis

import "testing"

func TestPositionShapes(t *testing.T) {
	p := Simple(3)
	if p.IsSpan() || p.Index() != 3 || p.Marker() != 3 || p.End() != 4 {
		t.Errorf("unexpected simple position %v", p)
	}
	if p.String() != "3" {
		t.Errorf("expected simple position to print as 3, is %s", p)
	}
	s := Span(3, 4)
	if !s.IsSpan() || s.Index() != 3 || s.Marker() != 4 || s.End() != 5 {
		t.Errorf("unexpected span position %v", s)
	}
	if s.String() != "(3,4)" {
		t.Errorf("expected span position to print as (3,4), is %s", s)
	}
	if s == Simple(3) {
		t.Errorf("expected span and simple positions to differ")
	}
	var zero Position
	if zero != Simple(0) {
		t.Errorf("expected zero position to equal Simple(0)")
	}
}
