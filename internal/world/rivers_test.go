package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarveRivers_DownhillWalkReachesSea(t *testing.T) {
	// A monotone slope ending in ocean. Wherever the source lands after the
	// shuffle, the walk must descend through the last land tile and stop
	// there: the water tile itself never becomes river.
	g := stripGrid([]float64{0.9, 0.8, 0.7, 0.5, -1})

	CarveRivers(g, 1, rand.New(rand.NewSource(1)))

	assert.True(t, g.At(3, 0).River, "walk should end on the coastal tile")
	assert.False(t, g.At(4, 0).River, "ocean tiles never carry river status")
}

func TestCarveRivers_StopsAtLocalMinimum(t *testing.T) {
	// No water anywhere and a dip in the middle: every walk must terminate
	// on its own instead of bouncing in the basin.
	g := stripGrid([]float64{0.9, 0.65, 0.7})

	CarveRivers(g, 3, rand.New(rand.NewSource(1)))

	assert.True(t, g.At(1, 0).River, "the basin tile is reachable from every source")
}

func TestCarveRivers_NoSources(t *testing.T) {
	g := stripGrid([]float64{0.3, 0.4, -1})

	CarveRivers(g, 5, rand.New(rand.NewSource(1)))

	for _, tile := range g.Tiles {
		assert.False(t, tile.River)
	}
}

func TestCarveRivers_OnGeneratedTerrain(t *testing.T) {
	g := BuildTerrain(GenConfig{
		Width: 50, Height: 40, SeaLevel: 0.35, Mode: ModeContinent, Seed: 42,
	}, rand.New(rand.NewSource(42)))
	EnforceConnectivity(g)

	CarveRivers(g, 6, rand.New(rand.NewSource(42)))

	for _, tile := range g.Tiles {
		if tile.River {
			assert.False(t, tile.Water, "river at (%d,%d) sits on water", tile.X, tile.Y)
		}
	}
}

func TestCarveRivers_Deterministic(t *testing.T) {
	build := func() *Grid {
		g := BuildTerrain(GenConfig{
			Width: 30, Height: 30, SeaLevel: 0.35, Mode: ModeContinent, Seed: 11,
		}, rand.New(rand.NewSource(11)))
		CarveRivers(g, 4, rand.New(rand.NewSource(99)))
		return g
	}

	a, b := build(), build()
	for i := range a.Tiles {
		assert.Equal(t, a.Tiles[i].River, b.Tiles[i].River, "tile %d diverged", i)
	}
}
