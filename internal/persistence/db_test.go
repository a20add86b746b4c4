package persistence

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/region-forge/internal/realms"
	"github.com/talgya/region-forge/internal/region"
	"github.com/talgya/region-forge/internal/sites"
	"github.com/talgya/region-forge/internal/world"
)

func testDocument() *region.Document {
	return &region.Document{
		Schema: region.SchemaVersion,
		Seed:   42,
		Width:  2,
		Height: 1,
		Years:  100,
		Mode:   world.ModeContinent,
		Tiles: []*world.Tile{
			{X: 0, Y: 0, Elevation: 0.5, Moisture: 0.4, Biome: world.BiomeGrassland, RealmID: "realm_1", SettlementID: "settlement_1"},
			{X: 1, Y: 0, Elevation: 0.1, Moisture: 0.8, Biome: world.BiomeOcean, Water: true},
		},
		Realms: []*realms.Realm{
			{ID: "realm_1", Name: "Korhold", Color: "#aabbcc", CapitalSettlementID: "settlement_1",
				Culture: "lowland", Notes: []string{"note"}},
		},
		Settlements: []*sites.Settlement{
			{ID: "settlement_1", Name: "Korgate", Type: sites.TypeCity, Tile: [2]int{0, 0},
				RealmID: "realm_1", Population: 9000, Tags: []string{"capital"}, History: []string{}},
		},
		Roads: []*sites.Road{
			{From: "settlement_1", To: "settlement_2", Tiles: [][2]int{{0, 0}, {1, 0}}, Type: "road"},
		},
		Ruins: []*sites.Ruin{
			{ID: "ruin_1", Name: "Fallen Spire", Tile: [2]int{1, 0}, DestroyedYear: 80,
				Cause: sites.CauseRaid, Tags: []string{"haunted"}, Notes: []string{}},
		},
		Events: []*realms.Event{
			{ID: "event_PLAGUE_realm_1_40", Year: 40, Type: realms.EventPlague,
				RealmIDs: []string{"realm_1"}, Summary: "Korhold lost territory to internal crisis."},
		},
		ColorMap: region.ColorMap{
			Rows:   [][]string{{"#7fbf3f", "#1b3b6f"}},
			Legend: map[string]string{"#7fbf3f": "grassland", "#1b3b6f": "deep_ocean"},
		},
	}
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "region.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSave_RowCountsMatchDocument(t *testing.T) {
	db := openTestDB(t)
	doc := testDocument()

	require.NoError(t, db.Save(doc))

	for table, want := range map[string]int{
		"region_meta": 1,
		"realms":      len(doc.Realms),
		"settlements": len(doc.Settlements),
		"roads":       len(doc.Roads),
		"ruins":       len(doc.Ruins),
		"events":      len(doc.Events),
	} {
		n, err := db.Count(table)
		require.NoError(t, err, table)
		assert.Equal(t, want, n, table)
	}
}

func TestSave_ReplacesPreviousSnapshot(t *testing.T) {
	db := openTestDB(t)
	doc := testDocument()

	require.NoError(t, db.Save(doc))
	require.NoError(t, db.Save(doc))

	n, err := db.Count("realms")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "saving twice must not duplicate rows")
}

func TestEventSummaries(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Save(testDocument()))

	summaries, err := db.EventSummaries()
	require.NoError(t, err)
	assert.Equal(t, []string{"Korhold lost territory to internal crisis."}, summaries)
}
