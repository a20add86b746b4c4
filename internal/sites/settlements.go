// Settlement derivation — one capital per surviving realm plus a handful
// of scored secondary settlements.
package sites

import (
	"fmt"
	"math/rand"

	"github.com/talgya/region-forge/internal/names"
	"github.com/talgya/region-forge/internal/realms"
	"github.com/talgya/region-forge/internal/world"
)

// Population ranges per settlement type (inclusive).
const (
	cityPopMin, cityPopMax = 8000, 25000
	townPopMin, townPopMax = 1500, 6000
	fortPopMin, fortPopMax = 400, 1800
)

// DeriveSettlements places capitals and secondary settlements for every
// realm that still owns territory. The capital sits on the tile closest to
// the centroid of the realm's fertile tiles (all owned tiles when none are
// fertile); secondaries are scored for rivers and fertile biomes.
func DeriveSettlements(g *world.Grid, st *realms.State, namer *names.Generator, years int, rng *rand.Rand) ([]*Settlement, error) {
	groups := make(map[string][]*world.Tile)
	var order []string
	for _, t := range g.Tiles {
		if t.RealmID == "" {
			continue
		}
		if _, ok := groups[t.RealmID]; !ok {
			order = append(order, t.RealmID)
		}
		groups[t.RealmID] = append(groups[t.RealmID], t)
	}

	var settlements []*Settlement
	sid := 1

	for _, rid := range order {
		realmTiles := groups[rid]
		realm := st.Realms[rid]

		var fertile []*world.Tile
		for _, t := range realmTiles {
			if !t.Water && t.Fertile() {
				fertile = append(fertile, t)
			}
		}
		candidates := fertile
		if len(candidates) == 0 {
			candidates = realmTiles
		}
		capTile := mostCentralTile(candidates)

		capName, err := namer.Generate(names.KindCapital, rng)
		if err != nil {
			return nil, fmt.Errorf("capital name: %w", err)
		}
		capital := &Settlement{
			ID:          fmt.Sprintf("settlement_%d", sid),
			Name:        capName,
			Type:        TypeCity,
			Tile:        [2]int{capTile.X, capTile.Y},
			RealmID:     rid,
			FoundedYear: 0,
			Population:  randInt(rng, cityPopMin, cityPopMax),
			Tags:        []string{"capital"},
			History: []string{
				fmt.Sprintf("Founded as the seat of %s.", realm.Name),
			},
		}
		sid++

		settlements = append(settlements, capital)
		realm.CapitalSettlementID = capital.ID
		capTile.SettlementID = capital.ID

		extra := len(realmTiles) / 80
		if extra < 1 {
			extra = 1
		}
		if extra > 3 {
			extra = 3
		}
		placed := 0

		rng.Shuffle(len(realmTiles), func(i, j int) {
			realmTiles[i], realmTiles[j] = realmTiles[j], realmTiles[i]
		})
		for _, t := range realmTiles {
			if placed >= extra {
				break
			}
			if t.SettlementID != "" || t.Water {
				continue
			}

			score := 0
			if t.River {
				score += 2
			}
			if t.Fertile() {
				score++
			}
			if score == 0 {
				continue
			}

			stype := TypeTown
			if rng.Float64() >= 0.7 {
				stype = TypeFort
			}
			name, err := namer.Generate(string(stype), rng)
			if err != nil {
				return nil, fmt.Errorf("%s name: %w", stype, err)
			}

			tags := []string{}
			if stype == TypeFort {
				tags = append(tags, "fortress")
			}
			if t.River {
				tags = append(tags, "river_trade")
			}
			if t.Biome == world.BiomeWetlands {
				tags = append(tags, "marsh_edge")
			}

			foundedMax := years / 2
			if foundedMax < 20 {
				foundedMax = 20
			}
			founded := randInt(rng, 10, foundedMax)
			var pop int
			if stype == TypeFort {
				pop = randInt(rng, fortPopMin, fortPopMax)
			} else {
				pop = randInt(rng, townPopMin, townPopMax)
			}

			s := &Settlement{
				ID:          fmt.Sprintf("settlement_%d", sid),
				Name:        name,
				Type:        stype,
				Tile:        [2]int{t.X, t.Y},
				RealmID:     rid,
				FoundedYear: founded,
				Population:  pop,
				Tags:        tags,
				History:     []string{},
			}
			sid++

			t.SettlementID = s.ID
			settlements = append(settlements, s)
			placed++
		}
	}

	return settlements, nil
}

// mostCentralTile returns the tile minimizing squared distance to the
// centroid of the given tiles. Ties keep the earliest tile in list order.
func mostCentralTile(tiles []*world.Tile) *world.Tile {
	sumX, sumY := 0.0, 0.0
	for _, t := range tiles {
		sumX += float64(t.X)
		sumY += float64(t.Y)
	}
	avgX := sumX / float64(len(tiles))
	avgY := sumY / float64(len(tiles))

	best := tiles[0]
	bestDist := sqDist(best, avgX, avgY)
	for _, t := range tiles[1:] {
		if d := sqDist(t, avgX, avgY); d < bestDist {
			best = t
			bestDist = d
		}
	}
	return best
}

func sqDist(t *world.Tile, ax, ay float64) float64 {
	dx := float64(t.X) - ax
	dy := float64(t.Y) - ay
	return dx*dx + dy*dy
}

// randInt draws an integer in [lo, hi] inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
