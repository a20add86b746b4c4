// Package world provides the tile grid, terrain synthesis, landmass
// connectivity enforcement, and river carving.
// Uses row-major (x, y) square coordinates with 4-neighbor adjacency.
package world

// Biome categorizes terrain derived from elevation and moisture.
type Biome string

const (
	BiomeOcean           Biome = "ocean"
	BiomeMountain        Biome = "mountain"
	BiomeHighland        Biome = "highland"
	BiomeGrassland       Biome = "grassland"
	BiomeTemperateForest Biome = "temperate_forest"
	BiomeDesert          Biome = "desert"
	BiomeWetlands        Biome = "wetlands"
)

// Tile is a single cell on the region map. Terrain fields are fixed after
// generation; river, realm, and settlement state mutate in later stages.
type Tile struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Elevation float64 `json:"elevation"` // 0.0 (sea floor) to 1.0 (peak)
	Moisture  float64 `json:"moisture"`  // 0.0 (arid) to 1.0 (saturated)
	Biome     Biome   `json:"biome"`
	Water     bool    `json:"water"`
	River     bool    `json:"river"`

	// Political state, empty until a realm claims or settles the tile.
	RealmID      string `json:"realm_id,omitempty"`
	SettlementID string `json:"settlement_id,omitempty"`
}

// Fertile reports whether the tile's biome can support realm seeds and
// secondary settlements.
func (t *Tile) Fertile() bool {
	switch t.Biome {
	case BiomeGrassland, BiomeTemperateForest, BiomeWetlands:
		return true
	}
	return false
}

// ChooseBiome derives a biome from elevation and moisture. Thresholds are
// checked in order; water always wins.
func ChooseBiome(elev, moist float64, water bool) Biome {
	if water {
		return BiomeOcean
	}
	if elev > 0.85 {
		return BiomeMountain
	}
	if elev > 0.7 {
		return BiomeHighland
	}
	if moist < 0.2 {
		return BiomeDesert
	}
	if moist < 0.45 {
		return BiomeGrassland
	}
	if moist < 0.75 {
		return BiomeTemperateForest
	}
	return BiomeWetlands
}
