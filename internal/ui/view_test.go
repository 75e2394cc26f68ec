package ui

import (
	"strings"
	"testing"

	"github.com/tarbetu/portfolio/internal/content"
	"github.com/tarbetu/portfolio/internal/theme"
	uistate "github.com/tarbetu/portfolio/internal/ui/state"
)

func TestViewEmptyBeforeFirstResize(t *testing.T) {
	m := NewModel(Options{})
	if got := m.View(); got != "" {
		t.Fatalf("expected empty view before sizing, got %q", got)
	}
}

func TestIntroArtMapping(t *testing.T) {
	cases := []struct {
		phase  uistate.Phase
		banner string
		color  string
	}{
		{uistate.IntroStart(), content.Banner1, string(theme.ColorCyan)},
		{uistate.IntroStep(0), content.Banner1, string(theme.ColorLightCyan)},
		{uistate.IntroStep(1), content.Banner2, string(theme.ColorYellow)},
		{uistate.IntroStep(2), content.Banner2, string(theme.ColorLightYellow)},
		{uistate.IntroStep(3), content.Banner3, string(theme.ColorRed)},
		{uistate.IntroStep(4), content.Banner3, string(theme.ColorLightRed)},
		{uistate.IntroStep(5), content.PressAnyKey, string(theme.ColorLightGreen)},
		{uistate.IntroStep(6), content.PressAnyKey, string(theme.ColorGreen)},
		{uistate.IntroIdle(), content.PressAnyKey, string(theme.ColorLightGreen)},
	}
	for _, tc := range cases {
		banner, color := introArt(tc.phase)
		if banner != tc.banner {
			t.Fatalf("%s: wrong banner", tc.phase)
		}
		if string(color) != tc.color {
			t.Fatalf("%s: expected color %s, got %s", tc.phase, tc.color, color)
		}
	}
}

func TestIntroViewContainsBanner(t *testing.T) {
	m := testModel()
	view := m.View()
	if !strings.Contains(view, "|_   _|") {
		t.Fatalf("intro view missing the opening banner:\n%s", view)
	}
}

func TestActiveViewShowsMenuAndMarker(t *testing.T) {
	m := activeModel()
	view := m.View()
	if !strings.Contains(view, theme.SelectedMarker+"About") {
		t.Fatalf("expected the marker on the first entry:\n%s", view)
	}
	for _, section := range m.sections {
		if !strings.Contains(view, truncatedLabel(section.Label)) {
			t.Fatalf("menu missing label %q", section.Label)
		}
	}
}

// truncatedLabel mirrors the menu column truncation for long labels.
func truncatedLabel(label string) string {
	limit := menuPanelWidth - 2 - len(theme.SelectedMarker)
	runes := []rune(label)
	if len(runes) <= limit {
		return label
	}
	return string(runes[:limit-1])
}

func TestFooterFollowsLockedState(t *testing.T) {
	m := NewModel(Options{Width: 80, Height: 24, ShowFooter: true})
	m.machine.Skip()
	if view := m.View(); !strings.Contains(view, "Enter to lock in") {
		t.Fatalf("list-mode footer missing:\n%s", view)
	}
	m.selection.LockIn()
	if view := m.View(); !strings.Contains(view, "Esc to return") {
		t.Fatalf("locked-in footer missing:\n%s", view)
	}
}

func TestContentPanelFollowsScroll(t *testing.T) {
	m := activeModel()
	m.selection.Index = 1 // Portfolio: several lines, first one distinctive
	firstLine := m.selected().Lines()[0]
	if !strings.Contains(m.View(), firstLine) {
		t.Fatalf("expected first body line %q visible", firstLine)
	}
	m.selection.LockedIn = true
	m.selection.Scroll = 2
	if strings.Contains(m.View(), firstLine) {
		t.Fatalf("scrolled view must not show line above the offset")
	}
}

func TestIsLink(t *testing.T) {
	if !isLink("https://github.com/tarbetu/portfolio") {
		t.Fatalf("https line must be a link")
	}
	if isLink("see https://github.com inline") {
		t.Fatalf("only lines beginning with a scheme are links")
	}
	if isLink("plain text") {
		t.Fatalf("plain text is not a link")
	}
}

func TestScrollbarThumbTracksOffset(t *testing.T) {
	col := scrollbarColumn(10, 0, 5)
	if len(col) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(col))
	}
	if !strings.Contains(col[0], "█") {
		t.Fatalf("thumb must start at the top")
	}
	col = scrollbarColumn(10, 9, 5)
	if !strings.Contains(col[4], "█") {
		t.Fatalf("thumb must reach the bottom at max offset")
	}
	mid := scrollbarColumn(10, 4, 5)
	if !strings.Contains(mid[1], "█") {
		t.Fatalf("thumb must sit proportionally between the ends")
	}
}

func TestPadRowExactWidth(t *testing.T) {
	if got := padRow("ab", 5); got != "ab   " {
		t.Fatalf("expected padding to width 5, got %q", got)
	}
	if got := padRow("abcdef", 3); len([]rune(got)) != 3 {
		t.Fatalf("expected truncation to 3 columns, got %q", got)
	}
}

func TestMosaicRowRotatesWithStep(t *testing.T) {
	m := activeModel()
	before := m.mosaicRow(0, 6)
	m.mosaicStep = 1
	after := m.mosaicRow(0, 6)
	if before == after {
		t.Skip("color profile strips backgrounds in this environment")
	}
}
