package content

import (
	"strings"
	"testing"
)

func TestSectionsAreNonEmptyAndOrdered(t *testing.T) {
	sections := Sections()
	if len(sections) == 0 {
		t.Fatalf("the menu table must not be empty")
	}
	for i, s := range sections {
		if strings.TrimSpace(s.Label) == "" {
			t.Fatalf("section %d has an empty label", i)
		}
		if strings.TrimSpace(s.Body) == "" {
			t.Fatalf("section %q has an empty body", s.Label)
		}
	}
}

func TestLinesRoundTripsBody(t *testing.T) {
	s := Section{Body: "one\ntwo\nthree"}
	lines := s.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if strings.Join(lines, "\n") != s.Body {
		t.Fatalf("lines must partition the body")
	}
}

func TestBannersAreMultiLine(t *testing.T) {
	for name, banner := range map[string]string{
		"banner1":      Banner1,
		"banner2":      Banner2,
		"banner3":      Banner3,
		"press-any-key": PressAnyKey,
	} {
		if !strings.Contains(banner, "\n") {
			t.Fatalf("%s should span multiple lines", name)
		}
	}
}

func TestTitlesCycleHasEntries(t *testing.T) {
	if len(Titles()) < 2 {
		t.Fatalf("the title cycle needs at least two entries")
	}
}
