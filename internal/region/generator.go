package region

import (
	"log/slog"
	"math/rand"

	"github.com/talgya/region-forge/internal/names"
	"github.com/talgya/region-forge/internal/realms"
	"github.com/talgya/region-forge/internal/sites"
	"github.com/talgya/region-forge/internal/world"
)

// Generator runs the pipeline stages in fixed order against one seeded
// random stream. Every collaborator draws from the same stream, in stage
// order — reordering any draw changes every downstream value.
type Generator struct {
	cfg   Config
	mode  world.Mode
	seed  int64
	rng   *rand.Rand
	namer *names.Generator
}

// New validates the configuration and prepares a generator. A missing seed
// is resolved here so the output can report the effective value.
func New(cfg Config, namer *names.Generator) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mode, ok := world.ParseMode(cfg.Mode)
	if !ok {
		slog.Warn("unrecognized mode, falling back to continent", "mode", cfg.Mode)
	}

	var seed int64
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		seed = rand.Int63n(1_000_000)
		slog.Info("no seed given, generated one", "seed", seed)
	}

	return &Generator{
		cfg:   cfg,
		mode:  mode,
		seed:  seed,
		rng:   rand.New(rand.NewSource(seed)),
		namer: namer,
	}, nil
}

// Seed returns the effective seed for this run.
func (g *Generator) Seed() int64 { return g.seed }

// Mode returns the effective (normalized) mode for this run.
func (g *Generator) Mode() world.Mode { return g.mode }

// Generate runs all stages and assembles the immutable output document.
func (g *Generator) Generate() (*Document, error) {
	grid := world.BuildTerrain(world.GenConfig{
		Width:    g.cfg.Width,
		Height:   g.cfg.Height,
		SeaLevel: g.cfg.SeaLevel,
		Mode:     g.mode,
		Seed:     g.seed,
	}, g.rng)

	// Continent mode guarantees a single landmass before anything is
	// derived on top of it; archipelago keeps its islands.
	if g.mode == world.ModeContinent {
		world.EnforceConnectivity(grid)
	}

	riverCount := grid.Area() / 700
	if riverCount < 4 {
		riverCount = 4
	}
	world.CarveRivers(grid, riverCount, g.rng)

	st := realms.Spawn(grid, g.rng)
	realms.Simulate(grid, st, g.cfg.Years, g.rng)
	slog.Debug("history simulated", "realms", len(st.Realms), "events", len(st.Events))

	settlements, err := sites.DeriveSettlements(grid, st, g.namer, g.cfg.Years, g.rng)
	if err != nil {
		return nil, err
	}
	roads := sites.DeriveRoads(st, settlements)
	ruins, err := sites.DeriveRuins(grid, g.namer, g.cfg.Years, g.rng)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Schema:      SchemaVersion,
		Seed:        g.seed,
		Width:       g.cfg.Width,
		Height:      g.cfg.Height,
		Years:       g.cfg.Years,
		Mode:        g.mode,
		Tiles:       grid.Tiles,
		Realms:      st.InOrder(),
		Settlements: settlements,
		Roads:       roads,
		Ruins:       ruins,
		Events:      st.Events,
		ColorMap:    BuildColorMap(grid, g.cfg.SeaLevel, settlements, ruins),
	}
	if doc.Realms == nil {
		doc.Realms = []*realms.Realm{}
	}
	if doc.Settlements == nil {
		doc.Settlements = []*sites.Settlement{}
	}
	if doc.Events == nil {
		doc.Events = []*realms.Event{}
	}
	return doc, nil
}
