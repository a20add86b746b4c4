package region

import (
	"encoding/json"

	"github.com/talgya/region-forge/internal/realms"
	"github.com/talgya/region-forge/internal/sites"
	"github.com/talgya/region-forge/internal/world"
)

// SchemaVersion identifies the output document format.
const SchemaVersion = "region.v1"

// Document is the complete, immutable output of one generation run.
// Tiles are row-major; realms and settlements appear in creation order.
type Document struct {
	Schema      string              `json:"schema"`
	Seed        int64               `json:"seed"`
	Width       int                 `json:"width"`
	Height      int                 `json:"height"`
	Years       int                 `json:"years"`
	Mode        world.Mode          `json:"mode"`
	Tiles       []*world.Tile       `json:"tiles"`
	Realms      []*realms.Realm     `json:"realms"`
	Settlements []*sites.Settlement `json:"settlements"`
	Roads       []*sites.Road       `json:"roads"`
	Ruins       []*sites.Ruin       `json:"ruins"`
	Events      []*realms.Event     `json:"events"`
	ColorMap    ColorMap            `json:"color_map"`
}

// ColorMap is the renderable per-tile color grid plus its legend.
type ColorMap struct {
	Rows   [][]string        `json:"rows"`
	Legend map[string]string `json:"legend"`
}

// MarshalIndent serializes the document as two-space-indented JSON, the
// boring human-editable shape downstream tools expect.
func (d *Document) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
