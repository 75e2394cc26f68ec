package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/tarbetu/portfolio/internal/content"
	"github.com/tarbetu/portfolio/internal/theme"
	uistate "github.com/tarbetu/portfolio/internal/ui/state"
)

const (
	headerRows      = 2
	footerRows      = 1
	menuPanelWidth  = 30
	mosaicCellWidth = 2
)

// linkSchemes mark content lines that render in the link style.
var linkSchemes = []string{"http://", "https://", "mailto:", "gemini://"}

// View implements tea.Model. It is a pure function of the model state;
// every animation effect lives in the state mutated by the tick handler.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.machine.Phase.IsActive() {
		return m.viewActive()
	}
	return m.viewIntro()
}

// introArt maps a phase to its banner and color. Odd steps repeat the
// previous banner in a brighter tone, producing the pulse.
func introArt(p uistate.Phase) (string, lipgloss.Color) {
	if step, ok := p.Step(); ok {
		var banner string
		switch {
		case step <= 0:
			banner = content.Banner1
		case step <= 2:
			banner = content.Banner2
		case step <= 4:
			banner = content.Banner3
		default:
			banner = content.PressAnyKey
		}
		return banner, theme.IntroPalette(step)
	}
	if p.IsIntroIdle() {
		return content.PressAnyKey, theme.ColorLightGreen
	}
	return content.Banner1, theme.ColorCyan
}

func (m *Model) viewIntro() string {
	art, color := introArt(m.machine.Phase)
	block := lipgloss.NewStyle().Foreground(color).Render(art)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}

func (m *Model) viewActive() string {
	mainRows := m.height - headerRows
	if m.showFooter {
		mainRows -= footerRows
	}
	if mainRows < 3 {
		mainRows = 3
	}

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderMenu(mainRows),
		m.renderContent(mainRows),
	)
	parts := []string{m.renderHeader(), main}
	if m.showFooter {
		parts = append(parts, m.renderFooter())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderHeader() string {
	return styles.Header.Copy().
		Width(m.width).
		Height(headerRows).
		Render(m.title())
}

func (m *Model) renderFooter() string {
	return styles.Footer.Copy().
		Width(m.width).
		Render(m.keys.helpFor(m.selection.LockedIn))
}

// renderMenu draws the fixed-width list panel. Focus styling follows the
// locked-in flag: the list loses its border and brightness while the
// content panel owns the input.
func (m *Model) renderMenu(rows int) string {
	innerW := menuPanelWidth - 2
	innerH := rows - 2
	if innerH < 1 {
		innerH = 1
	}

	lines := make([]string, 0, len(m.sections))
	for i, section := range m.sections {
		marker := strings.Repeat(" ", len(theme.SelectedMarker))
		style := styles.Item
		if i == m.selection.Index {
			marker = theme.SelectedMarker
			style = styles.SelectedItem
		}
		row := truncate.StringWithTail(marker+section.Label, uint(innerW), "…")
		lines = append(lines, style.Render(padRow(row, innerW)))
	}

	panel := styles.MenuBlurred
	if !m.selection.LockedIn {
		panel = styles.MenuFocused
	}
	return panel.Copy().
		Width(innerW).
		Height(innerH).
		Render(strings.Join(lines, "\n"))
}

// renderContent draws the flexible-width text panel with its scrollbar and
// the mosaic backdrop filling rows the body does not cover.
func (m *Model) renderContent(rows int) string {
	panelW := m.width - menuPanelWidth
	if panelW < 12 {
		panelW = 12
	}
	innerW := panelW - 2
	innerH := rows - 2
	if innerH < 1 {
		innerH = 1
	}
	textW := innerW - 2 // scrollbar column plus a gutter space
	if textW < 1 {
		textW = 1
	}

	lines := m.selected().Lines()
	offset := m.selection.Scroll
	if offset > len(lines)-1 {
		offset = len(lines) - 1
	}
	if offset < 0 {
		offset = 0
	}
	visible := lines[offset:]
	if len(visible) > innerH {
		visible = visible[:innerH]
	}

	bar := scrollbarColumn(len(lines), offset, innerH)
	out := make([]string, 0, innerH)
	for r := 0; r < innerH; r++ {
		var row string
		if r < len(visible) {
			line := visible[r]
			style := styles.ContentText
			if isLink(line) {
				style = styles.Link
			}
			row = style.Render(truncate.StringWithTail(line, uint(textW), "…"))
		} else {
			row = m.mosaicRow(r, textW)
		}
		out = append(out, padRow(row, textW)+" "+bar[r])
	}

	panel := styles.ContentBlurred
	if m.selection.LockedIn {
		panel = styles.ContentFocused
	}
	return panel.Copy().
		Width(innerW).
		Height(innerH).
		Render(strings.Join(out, "\n"))
}

// scrollbarColumn builds a vertical bar whose track represents the full
// line count and whose thumb sits at the scroll offset, mapped onto the
// visible height.
func scrollbarColumn(total, offset, height int) []string {
	if height < 1 {
		height = 1
	}
	thumb := 0
	if total > 1 && height > 1 {
		max := total - 1
		if offset > max {
			offset = max
		}
		thumb = offset * (height - 1) / max
	}
	col := make([]string, height)
	for i := range col {
		if i == thumb {
			col[i] = styles.ScrollThumb.Render("█")
		} else {
			col[i] = styles.ScrollTrack.Render("│")
		}
	}
	return col
}

// mosaicRow tiles one backdrop row out of two-column cells. Cell colors
// follow (row+col+step) mod 3, so each tick rotates the three tones one
// position — the 3×3 permutation cycle extended across the panel.
func (m *Model) mosaicRow(row, width int) string {
	var b strings.Builder
	remaining := width
	for c := 0; remaining > 0; c++ {
		cw := mosaicCellWidth
		if cw > remaining {
			cw = remaining
		}
		color := theme.MosaicColors[(row+c+m.mosaicStep)%3]
		b.WriteString(lipgloss.NewStyle().Background(color).Render(strings.Repeat(" ", cw)))
		remaining -= cw
	}
	return b.String()
}

func isLink(line string) bool {
	for _, scheme := range linkSchemes {
		if strings.HasPrefix(line, scheme) {
			return true
		}
	}
	return false
}

// padRow pads or truncates a possibly styled row to exactly width visible
// columns. Uses lipgloss.Width (ANSI-aware measurement) and reflow/truncate
// (ANSI-safe truncation) so styled and plain rows line up.
func padRow(row string, width int) string {
	w := lipgloss.Width(row)
	switch {
	case w > width:
		return truncate.String(row, uint(width))
	case w < width:
		return row + strings.Repeat(" ", width-w)
	default:
		return row
	}
}
