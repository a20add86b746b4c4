// River carving — downhill walks from high tiles toward the sea.
package world

import "math/rand"

// maxRiverSteps bounds each river walk.
const maxRiverSteps = 80

// CarveRivers picks up to count high land tiles and traces downhill-ish
// paths from each. A walk marks every visited tile as river and ends when
// the chosen next tile is water, or when the only way on is uphill (a
// local minimum). River status never reverts.
func CarveRivers(g *Grid, count int, rng *rand.Rand) {
	var sources []*Tile
	for _, t := range g.Tiles {
		if !t.Water && t.Elevation > 0.6 {
			sources = append(sources, t)
		}
	}
	if len(sources) == 0 {
		return
	}

	rng.Shuffle(len(sources), func(i, j int) {
		sources[i], sources[j] = sources[j], sources[i]
	})
	if count > len(sources) {
		count = len(sources)
	}

	for _, start := range sources[:count] {
		traceRiver(g, start, rng)
	}
}

func traceRiver(g *Grid, start *Tile, rng *rand.Rand) {
	x, y := start.X, start.Y

	for step := 0; step < maxRiverSteps; step++ {
		tile := g.At(x, y)
		tile.River = true

		neighbors := g.Neighbors(x, y)
		if len(neighbors) == 0 {
			break
		}

		// Steepest descent with a little jitter on land so parallel
		// rivers do not merge into identical channels. The jitter draw
		// happens per non-water neighbor, in neighbor order.
		var next *Tile
		best := 0.0
		for _, n := range neighbors {
			key := n.Elevation
			if !n.Water {
				key += 0.05 * rng.Float64()
			}
			if next == nil || key < best {
				next = n
				best = key
			}
		}

		if next.Water {
			break
		}
		if next.Elevation > tile.Elevation && !tile.Water {
			break
		}
		x, y = next.X, next.Y
	}
}
