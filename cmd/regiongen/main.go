// Command regiongen generates a deterministic fantasy region snapshot:
// terrain, realms with simulated history, settlements, roads, ruins, and a
// renderable color map, all reproducible from a single seed.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/region-forge/internal/names"
	"github.com/talgya/region-forge/internal/persistence"
	"github.com/talgya/region-forge/internal/region"
	"github.com/talgya/region-forge/internal/render"
)

var (
	flagWidth    int
	flagHeight   int
	flagYears    int
	flagSeed     int64
	flagSeaLevel float64
	flagMode     string
	flagOutput   string
	flagPreset   string
	flagNameData string
	flagDBPath   string
	flagASCII    bool
	flagANSI     bool
	flagVerbose  bool

	rootCmd = &cobra.Command{
		Use:   "regiongen",
		Short: "Procedural region generator (library-first)",
		Long: `regiongen builds a complete fantasy region from one seed: terrain,
political realms with simulated history, settlements, roads, ruins, and a
color map, written as a flat region.v1 JSON document.`,
		RunE: runGenerate,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.Flags()
	f.IntVar(&flagWidth, "width", 60, "map width in tiles")
	f.IntVar(&flagHeight, "height", 40, "map height in tiles")
	f.IntVar(&flagYears, "years", 400, "length of simulated history")
	f.Int64Var(&flagSeed, "seed", 0, "random seed (omit for a generated one)")
	f.Float64Var(&flagSeaLevel, "sea-level", 0.35, "elevation threshold for ocean")
	f.StringVar(&flagMode, "mode", "continent",
		"landmass style: 'continent' (one main landmass) or 'archipelago' (many islands)")
	f.StringVar(&flagOutput, "output", "region.json", "output JSON file path")
	f.StringVar(&flagPreset, "preset", "", "YAML preset file with base parameters")
	f.StringVar(&flagNameData, "name-data", "", "settlement name data file (default: embedded)")
	f.StringVar(&flagDBPath, "db", "", "also save the snapshot to a SQLite database at this path")
	f.BoolVar(&flagASCII, "ascii", false,
		"print simple ASCII (~ water, . land, C/t/F/x for settlements/ruins)")
	f.BoolVar(&flagANSI, "ansi", false, "print colorized map using ANSI background colors")
	f.BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Name data is load-bearing: generation cannot proceed without it.
	var namer *names.Generator
	if flagNameData != "" {
		namer, err = names.Load(flagNameData)
	} else {
		namer, err = names.LoadDefault()
	}
	if err != nil {
		return err
	}

	gen, err := region.New(cfg, namer)
	if err != nil {
		return err
	}

	doc, err := gen.Generate()
	if err != nil {
		return err
	}

	data, err := doc.MarshalIndent()
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := region.ValidateDocument(data); err != nil {
		return err
	}
	if err := os.WriteFile(flagOutput, data, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if flagDBPath != "" {
		db, err := persistence.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Save(doc); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
	}

	if flagASCII {
		fmt.Print(render.ASCII(doc))
	}
	if flagANSI {
		fmt.Print(render.ANSI(doc))
	}

	fmt.Printf("Region generated with seed=%d in %s mode (%s tiles) -> %s\n",
		doc.Seed, doc.Mode, humanize.Comma(int64(len(doc.Tiles))), flagOutput)
	return nil
}

// buildConfig layers defaults, the optional preset file, then explicit
// flags, in that order.
func buildConfig(cmd *cobra.Command) (region.Config, error) {
	cfg := region.DefaultConfig()
	if flagPreset != "" {
		var err error
		cfg, err = region.LoadPreset(flagPreset)
		if err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Width = flagWidth
	}
	if f.Changed("height") {
		cfg.Height = flagHeight
	}
	if f.Changed("years") {
		cfg.Years = flagYears
	}
	if f.Changed("sea-level") {
		cfg.SeaLevel = flagSeaLevel
	}
	if f.Changed("mode") {
		cfg.Mode = flagMode
	}
	if f.Changed("seed") {
		seed := flagSeed
		cfg.Seed = &seed
	}
	return cfg, nil
}
