// Road derivation — Bresenham lines from each capital to its realm's other
// settlements.
package sites

import "github.com/talgya/region-forge/internal/realms"

// DeriveRoads connects every capital to every other settlement of its
// realm. Realms are visited in creation order, settlements likewise, so
// the road list is deterministic. No randomness is drawn here.
func DeriveRoads(st *realms.State, settlements []*Settlement) []*Road {
	byID := make(map[string]*Settlement, len(settlements))
	for _, s := range settlements {
		byID[s.ID] = s
	}

	roads := []*Road{}
	for _, realm := range st.InOrder() {
		cap, ok := byID[realm.CapitalSettlementID]
		if !ok {
			continue
		}
		for _, s := range settlements {
			if s.RealmID != realm.ID || s.ID == cap.ID {
				continue
			}
			roads = append(roads, &Road{
				From:  cap.ID,
				To:    s.ID,
				Tiles: lineBetween(cap.Tile[0], cap.Tile[1], s.Tile[0], s.Tile[1]),
				Type:  "road",
			})
		}
	}
	return roads
}

// lineBetween rasterizes an inclusive integer line from (x0,y0) to (x1,y1)
// using the classic error-accumulator walk.
func lineBetween(x0, y0, x1, y1 int) [][2]int {
	points := [][2]int{}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		points = append(points, [2]int{x, y})
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
