// Package render draws terminal previews of a finished region document.
// Renderers are read-only consumers: they never touch generation state.
package render

import (
	"strings"

	"github.com/talgya/region-forge/internal/region"
	"github.com/talgya/region-forge/internal/sites"
)

// ASCII renders the region as plain glyph rows: ~ water, . land,
// C/t/F for city/town/fort, x for ruins.
func ASCII(doc *region.Document) string {
	settlementAt := make(map[[2]int]*sites.Settlement, len(doc.Settlements))
	for _, s := range doc.Settlements {
		settlementAt[s.Tile] = s
	}
	ruinAt := make(map[[2]int]bool, len(doc.Ruins))
	for _, r := range doc.Ruins {
		ruinAt[r.Tile] = true
	}

	var b strings.Builder
	b.Grow((doc.Width + 1) * doc.Height)

	for y := 0; y < doc.Height; y++ {
		for x := 0; x < doc.Width; x++ {
			pos := [2]int{x, y}
			t := doc.Tiles[y*doc.Width+x]

			switch {
			case ruinAt[pos]:
				b.WriteByte('x')
			case settlementAt[pos] != nil:
				switch settlementAt[pos].Type {
				case sites.TypeCity:
					b.WriteByte('C')
				case sites.TypeFort:
					b.WriteByte('F')
				default:
					b.WriteByte('t')
				}
			case t.Water:
				b.WriteByte('~')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
