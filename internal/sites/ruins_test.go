package sites

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/region-forge/internal/world"
)

// checkerGrid claims every other tile so that all owned tiles sit on a
// contested border.
func checkerGrid(w, h int) *world.Grid {
	g := flatGrid(w, h, world.BiomeGrassland)
	for _, tile := range g.Tiles {
		if (tile.X+tile.Y)%2 == 0 {
			tile.RealmID = "realm_1"
		}
	}
	return g
}

func TestDeriveRuins_CapAndYearBounds(t *testing.T) {
	g := checkerGrid(20, 20)
	years := 400

	ruins, err := DeriveRuins(g, mustNamer(t), years, rand.New(rand.NewSource(6)))
	require.NoError(t, err)

	require.Len(t, ruins, 5, "plenty of border candidates should hit the cap")
	for i, r := range ruins {
		assert.Equal(t, fmt.Sprintf("ruin_%d", i+1), r.ID)
		assert.NotEmpty(t, r.Name)
		assert.GreaterOrEqual(t, r.DestroyedYear, years/4)
		assert.LessOrEqual(t, r.DestroyedYear, years)
		assert.Contains(t, ruinCauses, r.Cause)
		assert.Contains(t, r.Tags, "contested_border")

		tile := g.At(r.Tile[0], r.Tile[1])
		assert.False(t, tile.Water)
		assert.NotEmpty(t, tile.RealmID, "ruins only rise on owned border tiles")
	}
}

func TestDeriveRuins_ShortHistoryClampsYears(t *testing.T) {
	g := checkerGrid(20, 20)

	ruins, err := DeriveRuins(g, mustNamer(t), 3, rand.New(rand.NewSource(6)))
	require.NoError(t, err)

	require.NotEmpty(t, ruins)
	for _, r := range ruins {
		assert.LessOrEqual(t, r.DestroyedYear, 3)
	}
}

func TestDeriveRuins_NoBordersMeansNoRuins(t *testing.T) {
	// Fully owned map: no tile touches a differently-owned neighbor.
	g := flatGrid(10, 10, world.BiomeGrassland)
	for _, tile := range g.Tiles {
		tile.RealmID = "realm_1"
	}

	ruins, err := DeriveRuins(g, mustNamer(t), 400, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.NotNil(t, ruins)
	assert.Empty(t, ruins)
}

func TestDeriveRuins_Deterministic(t *testing.T) {
	run := func() []*Ruin {
		g := checkerGrid(20, 20)
		ruins, err := DeriveRuins(g, mustNamer(t), 400, rand.New(rand.NewSource(77)))
		require.NoError(t, err)
		return ruins
	}

	a, b := run(), run()
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, *a[i], *b[i])
	}
}
