// Tick-based history simulation: territorial expansion plus stochastic
// crises. All randomness comes from the single shared stream, and the draw
// order within a tick is fixed — expansion first, then the crisis roll.
package realms

import (
	"fmt"
	"math/rand"

	"github.com/talgya/region-forge/internal/world"
)

const (
	// crisisChance is rolled once per tick.
	crisisChance = 0.35
	// empirePeakShare of total grid area a realm must exceed to peak.
	empirePeakShare = 0.18
	// civilWarMaxRealms and civilWarMinTiles gate splinter creation.
	civilWarMaxRealms = 8
	civilWarMinTiles  = 12
)

// Simulate advances history in steps of max(10, years/30) until the target
// year is reached. With years=0 no tick runs and no event is recorded.
func Simulate(g *world.Grid, st *State, years int, rng *rand.Rand) {
	if len(st.Realms) == 0 {
		return
	}

	step := years / 30
	if step < 10 {
		step = 10
	}

	for _, id := range st.Order {
		st.Realms[id].Strength = 1.0
	}

	year := 0
	for year < years {
		year += step
		expansionTick(g, st, year, rng)
		if rng.Float64() < crisisChance {
			randomCrisis(g, st, year, rng)
		}
	}

	for _, id := range st.Order {
		st.Realms[id].Strength = 0
	}
}

// groupTiles buckets owned tiles by realm, keyed in row-major first-seen
// order. The buckets are a tick-start snapshot: annexation during the tick
// mutates tile ownership but not the buckets.
func groupTiles(g *world.Grid) (map[string][]*world.Tile, []string) {
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
	return groups, order
}

func expansionTick(g *world.Grid, st *State, year int, rng *rand.Rand) {
	groups, order := groupTiles(g)

	for _, rid := range order {
		realmTiles := groups[rid]
		size := len(realmTiles)
		realm := st.Realms[rid]
		if realm == nil {
			continue
		}

		desired := size / 12
		if desired < 1 {
			desired = 1
		}

		rng.Shuffle(len(realmTiles), func(i, j int) {
			realmTiles[i], realmTiles[j] = realmTiles[j], realmTiles[i]
		})

		grown := 0
		attempts := 0
		for _, t := range realmTiles {
			if grown >= desired {
				break
			}
			for _, n := range g.Neighbors(t.X, t.Y) {
				if n.Water || n.Biome == world.BiomeMountain {
					continue
				}
				if n.RealmID == "" {
					n.RealmID = rid
					grown++
				} else if n.RealmID != rid {
					otherSize := len(groups[n.RealmID])
					if otherSize == 0 {
						otherSize = 1
					}
					chance := 0.4 * float64(size) / float64(size+otherSize)
					if rng.Float64() < chance {
						n.RealmID = rid
						grown++
					}
				}
			}
			attempts++
			if attempts > desired*6 {
				break
			}
		}

		if float64(size) > float64(g.Area())*empirePeakShare && !hasEmpirePeak(st, rid) {
			realm.Notes = append(realm.Notes,
				fmt.Sprintf("Once ruled as a dominant realm around year %d.", year))
			st.Events = append(st.Events, &Event{
				ID:       fmt.Sprintf("event_empire_%s_%d", rid, year),
				Year:     year,
				Type:     EventEmpirePeak,
				RealmIDs: []string{rid},
				Summary:  fmt.Sprintf("%s reached its greatest extent.", realm.Name),
			})
		}
	}
}

func hasEmpirePeak(st *State, rid string) bool {
	for _, e := range st.Events {
		if e.Type != EventEmpirePeak {
			continue
		}
		for _, id := range e.RealmIDs {
			if id == rid {
				return true
			}
		}
	}
	return false
}

func randomCrisis(g *world.Grid, st *State, year int, rng *rand.Rand) {
	var candidates []string
	for _, rid := range st.Order {
		if tileCount(g, rid) > 0 {
			candidates = append(candidates, rid)
		}
	}
	if len(candidates) == 0 {
		return
	}

	rid := candidates[rng.Intn(len(candidates))]
	realm := st.Realms[rid]

	var tiles []*world.Tile
	for _, t := range g.Tiles {
		if t.RealmID == rid {
			tiles = append(tiles, t)
		}
	}
	if len(tiles) == 0 {
		return
	}

	crisisTypes := []EventType{EventPlague, EventCivilWar, EventSuccession}
	crisis := crisisTypes[rng.Intn(len(crisisTypes))]

	var summary string
	switch crisis {
	case EventPlague, EventSuccession:
		var borders []*world.Tile
		for _, t := range tiles {
			if g.IsBorderTile(t) {
				borders = append(borders, t)
			}
		}
		if len(borders) == 0 {
			return
		}
		rng.Shuffle(len(borders), func(i, j int) {
			borders[i], borders[j] = borders[j], borders[i]
		})

		cut := len(tiles) / (6 + rng.Intn(5))
		if cut < 1 {
			cut = 1
		}
		if cut > len(borders) {
			cut = len(borders)
		}
		for _, t := range borders[:cut] {
			t.RealmID = ""
		}
		summary = fmt.Sprintf("%s lost territory to internal crisis.", realm.Name)

	case EventCivilWar:
		if len(st.Realms) > civilWarMaxRealms || len(tiles) < civilWarMinTiles {
			return
		}
		splinter := newRealm(st.NextID(), year, realm.Culture, rng)
		splinter.Notes = append(splinter.Notes,
			fmt.Sprintf("Splintered from %s in civil war.", realm.Name))
		st.Add(splinter)

		rng.Shuffle(len(tiles), func(i, j int) {
			tiles[i], tiles[j] = tiles[j], tiles[i]
		})
		for _, t := range tiles[:len(tiles)/2] {
			t.RealmID = splinter.ID
		}
		summary = fmt.Sprintf("Civil war split %s, creating %s.", realm.Name, splinter.Name)
	}

	st.Events = append(st.Events, &Event{
		ID:       fmt.Sprintf("event_%s_%s_%d", crisis, rid, year),
		Year:     year,
		Type:     crisis,
		RealmIDs: []string{rid},
		Summary:  summary,
	})
}

func tileCount(g *world.Grid, rid string) int {
	n := 0
	for _, t := range g.Tiles {
		if t.RealmID == rid {
			n++
		}
	}
	return n
}
