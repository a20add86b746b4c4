// Package names generates settlement and ruin names from syllable data.
// The generator is a collaborator of the region pipeline: it must consume
// only the random stream handed to it, never its own source, or run
// determinism breaks.
package names

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
)

// Name kinds the region pipeline requests.
const (
	KindCapital = "capital"
	KindTown    = "town"
	KindFort    = "fort"
	KindRuin    = "ruin"
)

var requiredKinds = []string{KindCapital, KindTown, KindFort, KindRuin}

//go:embed settlement_name_data.json
var defaultData []byte

type kindData struct {
	Prefixes []string `json:"prefixes"`
	Suffixes []string `json:"suffixes"`
}

// Generator combines prefix and suffix syllables per kind.
type Generator struct {
	kinds map[string]kindData
}

// Load reads syllable data from the given JSON file. Generation cannot
// proceed without names, so any load or validation failure is returned as
// a hard error.
func Load(path string) (*Generator, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read name data: %w", err)
	}
	return parse(raw)
}

// LoadDefault builds a generator from the embedded syllable data.
func LoadDefault() (*Generator, error) {
	return parse(defaultData)
}

func parse(raw []byte) (*Generator, error) {
	var kinds map[string]kindData
	if err := json.Unmarshal(raw, &kinds); err != nil {
		return nil, fmt.Errorf("parse name data: %w", err)
	}
	for _, k := range requiredKinds {
		d, ok := kinds[k]
		if !ok {
			return nil, fmt.Errorf("name data missing kind %q", k)
		}
		if len(d.Prefixes) == 0 || len(d.Suffixes) == 0 {
			return nil, fmt.Errorf("name data kind %q has empty syllable lists", k)
		}
	}
	return &Generator{kinds: kinds}, nil
}

// Generate produces one name for the given kind, drawing exactly two
// choices (prefix, suffix) from rng.
func (g *Generator) Generate(kind string, rng *rand.Rand) (string, error) {
	d, ok := g.kinds[kind]
	if !ok {
		return "", fmt.Errorf("unknown name kind %q", kind)
	}
	prefix := d.Prefixes[rng.Intn(len(d.Prefixes))]
	suffix := d.Suffixes[rng.Intn(len(d.Suffixes))]
	return prefix + suffix, nil
}
