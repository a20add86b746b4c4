// Color map construction. Per-tile display color resolves by precedence:
// ruin > settlement > water > river > biome.
package region

import (
	"github.com/talgya/region-forge/internal/sites"
	"github.com/talgya/region-forge/internal/world"
)

// Display palette. Hex values are part of the document contract; renderers
// key off the legend labels.
const (
	colorDeepOcean    = "#1b3b6f"
	colorShallowOcean = "#3465a4"
	colorRiver        = "#3f8dd9"
	colorCity         = "#ffcc00"
	colorTown         = "#ffd966"
	colorFort         = "#ff9900"
	colorRuin         = "#cc6666"
)

var biomeColors = map[world.Biome]string{
	world.BiomeMountain:        "#888888",
	world.BiomeHighland:        "#aa8c5f",
	world.BiomeGrassland:       "#7fbf3f",
	world.BiomeTemperateForest: "#2e8b57",
	world.BiomeWetlands:        "#3b6b6b",
	world.BiomeDesert:          "#d9c27f",
}

// BuildColorMap resolves the final display color for every tile. Deep
// versus shallow ocean splits at 60% of sea level.
func BuildColorMap(g *world.Grid, seaLevel float64, settlements []*sites.Settlement, ruins []*sites.Ruin) ColorMap {
	ruinAt := make(map[[2]int]bool, len(ruins))
	for _, r := range ruins {
		ruinAt[r.Tile] = true
	}
	settlementAt := make(map[[2]int]*sites.Settlement, len(settlements))
	for _, s := range settlements {
		settlementAt[s.Tile] = s
	}

	rows := make([][]string, 0, g.Height)
	for y := 0; y < g.Height; y++ {
		row := make([]string, 0, g.Width)
		for x := 0; x < g.Width; x++ {
			t := g.At(x, y)
			pos := [2]int{x, y}

			var color string
			switch {
			case ruinAt[pos]:
				color = colorRuin
			case settlementAt[pos] != nil:
				switch settlementAt[pos].Type {
				case sites.TypeCity:
					color = colorCity
				case sites.TypeFort:
					color = colorFort
				default:
					color = colorTown
				}
			case t.Water:
				if t.Elevation < seaLevel*0.6 {
					color = colorDeepOcean
				} else {
					color = colorShallowOcean
				}
			case t.River:
				color = colorRiver
			default:
				c, ok := biomeColors[t.Biome]
				if !ok {
					c = "#000000"
				}
				color = c
			}
			row = append(row, color)
		}
		rows = append(rows, row)
	}

	legend := map[string]string{
		colorDeepOcean:    "deep_ocean",
		colorShallowOcean: "shallow_ocean",
		colorRiver:        "river",
		colorCity:         "city",
		colorTown:         "town",
		colorFort:         "fort",
		colorRuin:         "ruin",
	}
	for biome, hex := range biomeColors {
		legend[hex] = string(biome)
	}

	return ColorMap{Rows: rows, Legend: legend}
}
