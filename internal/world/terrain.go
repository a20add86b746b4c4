// Terrain synthesis — elevation, moisture, biome, and water per tile.
// Continent mode carves one radial landmass; archipelago mode unions
// random island blobs. All per-tile draws come from the shared stream in
// strict row-major order.
package world

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Mode selects the landmass style.
type Mode string

const (
	ModeContinent   Mode = "continent"
	ModeArchipelago Mode = "archipelago"
)

// ParseMode normalizes a mode string. Unrecognized values fall back to
// continent; the second return distinguishes a fallback so callers can warn.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeContinent, ModeArchipelago:
		return Mode(s), true
	}
	return ModeContinent, false
}

// GenConfig holds terrain generation parameters.
type GenConfig struct {
	Width    int
	Height   int
	SeaLevel float64 // Elevation threshold for ocean (default 0.35)
	Mode     Mode
	Seed     int64 // Seeds the coherent detail noise only, not the stream
}

// detailFreq is the sampling frequency of the moisture detail field.
const detailFreq = 0.08

// BuildTerrain generates the base tile grid. Rivers and connectivity
// enforcement are separate passes run by the orchestrator.
func BuildTerrain(cfg GenConfig, rng *rand.Rand) *Grid {
	g := NewGrid(cfg.Width, cfg.Height)

	// Coherent noise adds spatial texture to moisture without consuming
	// draws from the shared stream.
	detail := opensimplex.NewNormalized(cfg.Seed)

	if cfg.Mode == ModeArchipelago {
		buildArchipelago(g, cfg, rng, detail)
	} else {
		buildContinent(g, cfg, rng, detail)
	}
	return g
}

func buildContinent(g *Grid, cfg GenConfig, rng *rand.Rand, detail opensimplex.Noise) {
	cx := float64(cfg.Width-1) / 2.0
	cy := float64(cfg.Height-1) / 2.0
	maxR := math.Max(float64(cfg.Width), float64(cfg.Height)) / 2.2

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			dist := math.Sqrt(dx*dx + dy*dy)

			// Closer to center, higher base elevation.
			base := clamp01(1.0 - dist/maxR)

			// Two noisy bumps so coastlines wiggle; the second scales
			// with elevation to roughen the interior more than the sea.
			bump1 := (rng.Float64() - 0.5) * 0.25
			bump2 := (rng.Float64() - 0.5) * 0.15 * (base + 0.3)
			e := clamp01(base + bump1 + bump2)

			g.Tiles = append(g.Tiles, newTile(g, cfg, rng, detail, x, y, e))
		}
	}
}

func buildArchipelago(g *Grid, cfg GenConfig, rng *rand.Rand, detail opensimplex.Noise) {
	type blob struct {
		cx, cy float64
		radius float64
	}

	numMasses := cfg.Width * cfg.Height / 800
	if numMasses < 2 {
		numMasses = 2
	}
	blobs := make([]blob, numMasses)
	for i := range blobs {
		blobs[i] = blob{
			cx:     float64(rng.Intn(cfg.Width)),
			cy:     float64(rng.Intn(cfg.Height)),
			radius: 8 + rng.Float64()*8,
		}
	}

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			e := 0.0
			for _, b := range blobs {
				dx := float64(x) - b.cx
				dy := float64(y) - b.cy
				d := math.Sqrt(dx*dx + dy*dy)
				if contrib := 1.0 - d/b.radius; contrib > e {
					e = contrib
				}
			}
			e = clamp01(e + (rng.Float64()-0.5)*0.15)

			g.Tiles = append(g.Tiles, newTile(g, cfg, rng, detail, x, y, e))
		}
	}
}

// newTile draws moisture, derives the biome, and builds the tile record.
// Water is decided on the unrounded elevation; stored values are rounded
// to three decimals for a stable, human-editable document.
func newTile(g *Grid, cfg GenConfig, rng *rand.Rand, detail opensimplex.Noise, x, y int, e float64) *Tile {
	lat := 1.0
	if cfg.Height > 1 {
		lat = 1.0 - math.Abs(float64(y)/float64(cfg.Height-1)-0.5)*1.6
	}
	m := lat + (rng.Float64()-0.5)*0.3
	m += (detail.Eval2(float64(x)*detailFreq, float64(y)*detailFreq) - 0.5) * 0.1
	m = clamp01(m)

	water := e < cfg.SeaLevel
	return &Tile{
		X:         x,
		Y:         y,
		Elevation: round3(e),
		Moisture:  round3(m),
		Biome:     ChooseBiome(e, m, water),
		Water:     water,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
