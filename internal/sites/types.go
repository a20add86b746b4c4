// Package sites derives the human overlays of a finished history:
// settlements, the roads between them, and the ruins left behind.
package sites

// SettlementType categorizes settlement scale and role.
type SettlementType string

const (
	TypeCity SettlementType = "city"
	TypeTown SettlementType = "town"
	TypeFort SettlementType = "fort"
)

// Settlement is a capital, town, or fort placed in a realm's territory.
// Immutable once derived.
type Settlement struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        SettlementType `json:"type"`
	Tile        [2]int         `json:"tile"`
	RealmID     string         `json:"realm_id"`
	FoundedYear int            `json:"founded_year"`
	Population  int            `json:"population"`
	Tags        []string       `json:"tags"`
	History     []string       `json:"history"`
}

// Road is a rasterized capital-to-settlement connection. The tile sequence
// is inclusive, ordered from capital to destination.
type Road struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Tiles [][2]int `json:"tiles"`
	Type  string   `json:"type"`
}

// Cause classifies what destroyed a ruin's original site.
type Cause string

const (
	CauseCivilWar       Cause = "CIVIL_WAR"
	CauseRaid           Cause = "RAID"
	CausePlague         Cause = "PLAGUE"
	CauseArcaneDisaster Cause = "ARCANE_DISASTER"
)

// Ruin marks an abandoned site on a contested border.
type Ruin struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Tile               [2]int   `json:"tile"`
	OriginSettlementID string   `json:"origin_settlement_id,omitempty"`
	DestroyedYear      int      `json:"destroyed_year"`
	Cause              Cause    `json:"cause"`
	Tags               []string `json:"tags"`
	Notes              []string `json:"notes"`
}
