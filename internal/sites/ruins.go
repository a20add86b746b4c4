// Ruin derivation — abandoned sites scattered on contested borders.
package sites

import (
	"fmt"
	"math/rand"

	"github.com/talgya/region-forge/internal/names"
	"github.com/talgya/region-forge/internal/world"
)

var ruinCauses = []Cause{CauseCivilWar, CauseRaid, CausePlague, CauseArcaneDisaster}

// DeriveRuins scatters up to min(5, candidates/30) ruins on unsettled
// border tiles. Each ruin draws name, destruction year, and cause in that
// order from the shared stream.
func DeriveRuins(g *world.Grid, namer *names.Generator, years int, rng *rand.Rand) ([]*Ruin, error) {
	var candidates []*world.Tile
	for _, t := range g.Tiles {
		if !t.Water && t.SettlementID == "" && g.IsBorderTile(t) {
			candidates = append(candidates, t)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	target := len(candidates) / 30
	if target > 5 {
		target = 5
	}

	ruins := []*Ruin{}
	for i := 0; i < target; i++ {
		t := candidates[i]
		name, err := namer.Generate(names.KindRuin, rng)
		if err != nil {
			return nil, fmt.Errorf("ruin name: %w", err)
		}

		// Destruction falls in the last three quarters of history, with
		// the lower bound clamped so short histories stay well-formed.
		lo := years / 4
		if lo < 5 {
			lo = 5
		}
		if lo > years {
			lo = years
		}
		destroyed := lo + rng.Intn(years-lo+1)

		ruins = append(ruins, &Ruin{
			ID:            fmt.Sprintf("ruin_%d", i+1),
			Name:          name,
			Tile:          [2]int{t.X, t.Y},
			DestroyedYear: destroyed,
			Cause:         ruinCauses[rng.Intn(len(ruinCauses))],
			Tags:          []string{"haunted", "contested_border"},
			Notes:         []string{"Legends speak of lost crowns and unquiet dead."},
		})
	}
	return ruins, nil
}
