// Landmass connectivity enforcement for continent mode.
package world

import "sort"

// EnforceConnectivity collapses all land into a single dominant landmass.
// Connected components of non-water tiles are found by flood fill over the
// 4-neighbor graph; every component except the largest is converted back to
// ocean. Components are discovered in row-major order and the sort is
// stable, so an exact size tie keeps the component discovered first.
func EnforceConnectivity(g *Grid) {
	visited := make([]bool, len(g.Tiles))
	var components [][]int

	for start, t := range g.Tiles {
		if t.Water || visited[start] {
			continue
		}
		comp := []int{}
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, idx)
			cur := g.Tiles[idx]
			for _, n := range g.Neighbors(cur.X, cur.Y) {
				ni := g.Idx(n.X, n.Y)
				if !visited[ni] && !n.Water {
					visited[ni] = true
					stack = append(stack, ni)
				}
			}
		}
		components = append(components, comp)
	}

	if len(components) <= 1 {
		return
	}

	sort.SliceStable(components, func(i, j int) bool {
		return len(components[i]) > len(components[j])
	})

	// Everything outside the main landmass drowns.
	for _, comp := range components[1:] {
		for _, idx := range comp {
			t := g.Tiles[idx]
			t.Water = true
			t.Biome = BiomeOcean
			t.River = false
			t.RealmID = ""
			t.SettlementID = ""
		}
	}
}

// LandComponents returns the sizes of all 4-connected non-water components,
// in row-major discovery order.
func LandComponents(g *Grid) []int {
	visited := make([]bool, len(g.Tiles))
	var sizes []int

	for start, t := range g.Tiles {
		if t.Water || visited[start] {
			continue
		}
		size := 0
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			cur := g.Tiles[idx]
			for _, n := range g.Neighbors(cur.X, cur.Y) {
				ni := g.Idx(n.X, n.Y)
				if !visited[ni] && !n.Water {
					visited[ni] = true
					stack = append(stack, ni)
				}
			}
		}
		sizes = append(sizes, size)
	}
	return sizes
}
