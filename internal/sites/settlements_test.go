package sites

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/region-forge/internal/names"
	"github.com/talgya/region-forge/internal/realms"
	"github.com/talgya/region-forge/internal/world"
)

func flatGrid(w, h int, biome world.Biome) *world.Grid {
	g := world.NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Tiles = append(g.Tiles, &world.Tile{
				X: x, Y: y, Elevation: 0.5, Moisture: 0.5,
				Biome: biome, Water: biome == world.BiomeOcean,
			})
		}
	}
	return g
}

// ownBlock claims a rectangle of tiles for the given realm id.
func ownBlock(g *world.Grid, rid string, x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.At(x, y).RealmID = rid
		}
	}
}

func singleRealmState(name string) *realms.State {
	st := realms.NewState()
	st.Add(&realms.Realm{
		ID: "realm_1", Name: name, Color: "#808080",
		Culture: "lowland", Notes: []string{},
	})
	return st
}

func mustNamer(t *testing.T) *names.Generator {
	t.Helper()
	namer, err := names.LoadDefault()
	require.NoError(t, err)
	return namer
}

func TestDeriveSettlements_CapitalOnCentroid(t *testing.T) {
	g := flatGrid(20, 20, world.BiomeGrassland)
	ownBlock(g, "realm_1", 4, 4, 12, 12)
	st := singleRealmState("Testhold")

	settlements, err := DeriveSettlements(g, st, mustNamer(t), 400, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	require.NotEmpty(t, settlements)

	capital := settlements[0]
	assert.Equal(t, "settlement_1", capital.ID)
	assert.Equal(t, TypeCity, capital.Type)
	assert.Equal(t, [2]int{8, 8}, capital.Tile, "capital belongs on the territory centroid")
	assert.Equal(t, 0, capital.FoundedYear)
	assert.Contains(t, capital.Tags, "capital")
	assert.Equal(t, capital.ID, st.Realms["realm_1"].CapitalSettlementID)
	assert.Equal(t, capital.ID, g.At(8, 8).SettlementID)
	require.Len(t, capital.History, 1)
	assert.Contains(t, capital.History[0], "Testhold")
}

func TestDeriveSettlements_PopulationAndFoundingBounds(t *testing.T) {
	g := flatGrid(20, 20, world.BiomeGrassland)
	ownBlock(g, "realm_1", 2, 2, 17, 17)
	st := singleRealmState("Testhold")
	years := 400

	settlements, err := DeriveSettlements(g, st, mustNamer(t), years, rand.New(rand.NewSource(14)))
	require.NoError(t, err)

	for _, s := range settlements {
		switch s.Type {
		case TypeCity:
			assert.GreaterOrEqual(t, s.Population, cityPopMin)
			assert.LessOrEqual(t, s.Population, cityPopMax)
			assert.Equal(t, 0, s.FoundedYear)
		case TypeTown:
			assert.GreaterOrEqual(t, s.Population, townPopMin)
			assert.LessOrEqual(t, s.Population, townPopMax)
		case TypeFort:
			assert.GreaterOrEqual(t, s.Population, fortPopMin)
			assert.LessOrEqual(t, s.Population, fortPopMax)
			assert.Contains(t, s.Tags, "fortress")
		}
		if s.Type != TypeCity {
			assert.GreaterOrEqual(t, s.FoundedYear, 10)
			assert.LessOrEqual(t, s.FoundedYear, years/2)
		}
		assert.NotEmpty(t, s.Name)
		assert.Equal(t, "realm_1", s.RealmID)
	}
}

func TestDeriveSettlements_SecondaryCountScalesWithTerritory(t *testing.T) {
	g := flatGrid(30, 30, world.BiomeGrassland)
	ownBlock(g, "realm_1", 0, 0, 29, 29) // 900 tiles, extra capped at 3
	st := singleRealmState("Testhold")

	settlements, err := DeriveSettlements(g, st, mustNamer(t), 400, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	assert.Len(t, settlements, 4, "capital plus the maximum of three secondaries")
	seen := make(map[[2]int]bool)
	for _, s := range settlements {
		assert.False(t, seen[s.Tile], "two settlements share tile %v", s.Tile)
		seen[s.Tile] = true
		assert.Equal(t, s.ID, g.At(s.Tile[0], s.Tile[1]).SettlementID)
	}
}

func TestDeriveSettlements_LandlessRealmGetsNothing(t *testing.T) {
	g := flatGrid(10, 10, world.BiomeGrassland)
	st := singleRealmState("Ghosthold")

	settlements, err := DeriveSettlements(g, st, mustNamer(t), 400, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Empty(t, settlements)
	assert.Empty(t, st.Realms["realm_1"].CapitalSettlementID)
}

func TestMostCentralTile_TieKeepsFirst(t *testing.T) {
	a := &world.Tile{X: 0, Y: 0}
	b := &world.Tile{X: 1, Y: 0}

	// Centroid (0.5, 0) is equidistant from both; list order decides.
	assert.Same(t, a, mostCentralTile([]*world.Tile{a, b}))
	assert.Same(t, b, mostCentralTile([]*world.Tile{b, a}))
}
