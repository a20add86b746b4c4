// Package realms provides political entities, their spawn placement, and
// the tick-based history simulation that grows and fractures them.
package realms

import "fmt"

// Realm is a political entity owning a territory of tiles. Realms are never
// deleted: one that loses every tile persists as a historical entity.
type Realm struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Color               string   `json:"color"`
	CapitalSettlementID string   `json:"capital_settlement_id,omitempty"`
	FoundedYear         int      `json:"founded_year"`
	DissolvedYear       *int     `json:"dissolved_year"`
	Culture             string   `json:"culture"`
	Notes               []string `json:"notes"`

	// Transient simulation scalar, stripped before output.
	Strength float64 `json:"-"`
}

// EventType classifies a historical event.
type EventType string

const (
	EventEmpirePeak EventType = "EMPIRE_PEAK"
	EventPlague     EventType = "PLAGUE"
	EventCivilWar   EventType = "CIVIL_WAR"
	EventSuccession EventType = "SUCCESSION"
)

// Event is one entry in the append-only history log.
type Event struct {
	ID           string    `json:"id"`
	Year         int       `json:"year"`
	Type         EventType `json:"type"`
	RealmIDs     []string  `json:"realm_ids"`
	SettlementID string    `json:"settlement_id,omitempty"`
	Summary      string    `json:"summary"`
}

// State holds all realms plus the event log. Realms live in an id-keyed map
// with a separate creation-order list so serialization and iteration stay
// deterministic.
type State struct {
	Realms map[string]*Realm
	Order  []string
	Events []*Event
}

// NewState returns an empty realm state.
func NewState() *State {
	return &State{Realms: make(map[string]*Realm)}
}

// Add registers a realm, tracking creation order.
func (s *State) Add(r *Realm) {
	s.Realms[r.ID] = r
	s.Order = append(s.Order, r.ID)
}

// NextID returns the id the next realm will take.
func (s *State) NextID() string {
	return fmt.Sprintf("realm_%d", len(s.Realms)+1)
}

// InOrder returns all realms in creation order.
func (s *State) InOrder() []*Realm {
	out := make([]*Realm, 0, len(s.Order))
	for _, id := range s.Order {
		out = append(out, s.Realms[id])
	}
	return out
}
