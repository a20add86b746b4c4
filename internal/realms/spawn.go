// Initial realm placement on fertile land.
package realms

import (
	"fmt"
	"math/rand"

	"github.com/talgya/region-forge/internal/world"
)

// minSeedSpacing is the Manhattan distance two realm seeds must keep.
const minSeedSpacing = 6

var realmNamePrefixes = []string{
	"Ashen", "Grey", "Varn", "Eld", "Kor", "Thorn", "Mar", "Sel", "Drak",
}
var realmNameSuffixes = []string{
	"hold", "reach", "marches", "realm", "clan", "throne", "dominion",
}

// Spawn seeds initial realms on fertile tiles. The target count scales with
// grid area, clamped to [2, 6]; seeds keep a minimum Manhattan spacing. If
// spacing rejects every candidate but fertile land exists, one realm is
// forced onto the first fertile tile so the world is never empty.
func Spawn(g *world.Grid, rng *rand.Rand) *State {
	st := NewState()

	var fertile []*world.Tile
	for _, t := range g.Tiles {
		if !t.Water && t.Fertile() {
			fertile = append(fertile, t)
		}
	}
	rng.Shuffle(len(fertile), func(i, j int) {
		fertile[i], fertile[j] = fertile[j], fertile[i]
	})

	target := g.Area() / 1200
	if target < 2 {
		target = 2
	}
	if target > 6 {
		target = 6
	}

	type point struct{ x, y int }
	var used []point

	for i := 0; i < target*2 && i < len(fertile); i++ {
		if len(st.Realms) >= target {
			break
		}
		tile := fertile[i]

		tooClose := false
		for _, u := range used {
			if abs(tile.X-u.x)+abs(tile.Y-u.y) < minSeedSpacing {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}

		r := newRealm(st.NextID(), 0, "lowland", rng)
		st.Add(r)
		used = append(used, point{tile.X, tile.Y})
		tile.RealmID = r.ID
	}

	if len(st.Realms) == 0 && len(fertile) > 0 {
		tile := fertile[0]
		r := newRealm("realm_1", 0, "lowland", rng)
		st.Add(r)
		tile.RealmID = r.ID
	}

	return st
}

func newRealm(id string, founded int, culture string, rng *rand.Rand) *Realm {
	return &Realm{
		ID:          id,
		Name:        realmName(rng),
		Color:       randomColor(rng),
		FoundedYear: founded,
		Culture:     culture,
		Notes:       []string{},
		Strength:    1.0,
	}
}

func realmName(rng *rand.Rand) string {
	return realmNamePrefixes[rng.Intn(len(realmNamePrefixes))] +
		realmNameSuffixes[rng.Intn(len(realmNameSuffixes))]
}

// randomColor draws a mid-brightness display color so realm territories
// stay readable against both ocean and biome tones.
func randomColor(rng *rand.Rand) string {
	r := 80 + rng.Intn(141)
	g := 80 + rng.Intn(141)
	b := 80 + rng.Intn(141)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
