// Terminal color preview built on lipgloss. The color map already encodes
// the full display precedence (ruin > settlement > water > river > biome),
// so rendering is a straight translation of its rows.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/talgya/region-forge/internal/region"
)

// ANSI renders the document's color map as two-character background cells.
// Styles are cached per hex color; a typical map uses about a dozen.
func ANSI(doc *region.Document) string {
	styles := make(map[string]lipgloss.Style)
	cell := func(hex string) string {
		st, ok := styles[hex]
		if !ok {
			st = lipgloss.NewStyle().Background(lipgloss.Color(hex))
			styles[hex] = st
		}
		return st.Render("  ")
	}

	var b strings.Builder
	for _, row := range doc.ColorMap.Rows {
		for _, hex := range row {
			b.WriteString(cell(hex))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
