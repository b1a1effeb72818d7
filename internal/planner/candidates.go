package planner

import (
	"sort"

	"delivery-game-service/internal/domain"
)

// candidate is one proposed ordering of the required locations, tagged with
// the strategy that produced it.
type candidate struct {
	strategy string
	order    []domain.Location
}

// generator produces candidate orderings using independent heuristics.
// Every strategy shares the same signature and is individually optional: a
// strategy that cannot produce an ordering under current closures is skipped,
// and orderings that violate constraints are discarded, not repaired.
type generator struct {
	graph       *Graph
	resolver    *Resolver
	constraints *ConstraintSet
	opts        Options
}

type strategyFunc func(start domain.Location, required []domain.Location) ([]domain.Location, bool)

func (g *generator) generate(start domain.Location, required []domain.Location) []candidate {
	strategies := []struct {
		name  string
		build strategyFunc
	}{
		{"nearest-neighbor", g.nearestNeighbor},
		{"cheapest-insertion", g.cheapestInsertion},
		{"mst-preorder", g.mstPreorder},
		{"constraint-seeded", g.constraintSeeded},
		{"exhaustive", g.exhaustive},
	}

	seen := make(map[string]bool)
	out := make([]candidate, 0, len(strategies))
	for _, s := range strategies {
		order, ok := s.build(start, required)
		if !ok || len(order) != len(required) {
			continue
		}
		if !g.constraints.Respects(order) {
			continue
		}
		key := orderKey(order)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, candidate{strategy: s.name, order: order})
	}
	return out
}

func orderKey(order []domain.Location) string {
	key := ""
	for _, loc := range order {
		key += string(loc) + "|"
	}
	return key
}

// nearestNeighbor repeatedly appends the closest not-yet-visited location,
// pricing closed direct edges through the detour resolver. Ties break on
// location name so the ordering is deterministic.
func (g *generator) nearestNeighbor(start domain.Location, required []domain.Location) ([]domain.Location, bool) {
	remaining := make(map[domain.Location]bool, len(required))
	for _, loc := range required {
		if loc != start {
			remaining[loc] = true
		}
	}

	order := []domain.Location{start}
	current := start
	for len(remaining) > 0 {
		pending := make([]domain.Location, 0, len(remaining))
		for loc := range remaining {
			pending = append(pending, loc)
		}
		sortLocations(pending)

		var (
			best     domain.Location
			bestDist float64
			found    bool
		)
		for _, loc := range pending {
			d, ok := g.resolver.Distance(current, loc)
			if !ok {
				continue
			}
			if !found || d < bestDist {
				best = loc
				bestDist = d
				found = true
			}
		}
		if !found {
			return nil, false
		}

		order = append(order, best)
		delete(remaining, best)
		current = best
	}
	return order, true
}

// cheapestInsertion seeds a two-stop tour with the farthest reachable
// location, then repeatedly inserts the remaining location whose insertion
// increases the tour length least, at the cheapest position.
func (g *generator) cheapestInsertion(start domain.Location, required []domain.Location) ([]domain.Location, bool) {
	rest := make([]domain.Location, 0, len(required))
	for _, loc := range required {
		if loc != start {
			rest = append(rest, loc)
		}
	}
	sortLocations(rest)
	if len(rest) == 0 {
		return []domain.Location{start}, true
	}

	var (
		seed     domain.Location
		seedDist float64
		found    bool
	)
	for _, loc := range rest {
		d, ok := g.resolver.Distance(start, loc)
		if !ok {
			continue
		}
		if !found || d > seedDist {
			seed = loc
			seedDist = d
			found = true
		}
	}
	if !found {
		return nil, false
	}

	tour := []domain.Location{start, seed}
	pending := make([]domain.Location, 0, len(rest)-1)
	for _, loc := range rest {
		if loc != seed {
			pending = append(pending, loc)
		}
	}

	for len(pending) > 0 {
		bestIdx := -1
		bestPos := -1
		bestCost := 0.0
		for pi, loc := range pending {
			for pos := 1; pos <= len(tour); pos++ {
				cost, ok := g.insertionCost(tour, pos, loc)
				if !ok {
					continue
				}
				if bestIdx < 0 || cost < bestCost {
					bestIdx = pi
					bestPos = pos
					bestCost = cost
				}
			}
		}
		if bestIdx < 0 {
			return nil, false
		}

		loc := pending[bestIdx]
		tour = append(tour[:bestPos], append([]domain.Location{loc}, tour[bestPos:]...)...)
		pending = append(pending[:bestIdx], pending[bestIdx+1:]...)
	}
	return tour, true
}

// insertionCost prices inserting loc at position pos of an open tour.
func (g *generator) insertionCost(tour []domain.Location, pos int, loc domain.Location) (float64, bool) {
	prev := tour[pos-1]
	dPrev, ok := g.resolver.Distance(prev, loc)
	if !ok {
		return 0, false
	}
	if pos == len(tour) {
		return dPrev, true
	}
	next := tour[pos]
	dNext, ok := g.resolver.Distance(loc, next)
	if !ok {
		return 0, false
	}
	dOld, ok := g.resolver.Distance(prev, next)
	if !ok {
		return 0, false
	}
	return dPrev + dNext - dOld, true
}

// mstPreorder builds a minimum spanning tree over the required locations
// (resolved distances as weights, Prim with an edge min-heap) and walks it
// depth-first from the start. Discarded when closures leave the tree short of
// spanning every required location.
func (g *generator) mstPreorder(start domain.Location, required []domain.Location) ([]domain.Location, bool) {
	nodes := append([]domain.Location(nil), required...)
	sortLocations(nodes)

	adjacency := make(map[domain.Location]map[domain.Location]float64, len(nodes))
	for _, loc := range nodes {
		adjacency[loc] = make(map[domain.Location]float64)
	}
	for i, a := range nodes {
		for _, b := range nodes[i+1:] {
			if d, ok := g.resolver.Distance(a, b); ok {
				adjacency[a][b] = d
				adjacency[b][a] = d
			}
		}
	}

	type mstEdge struct {
		from, to domain.Location
		weight   float64
	}
	visited := map[domain.Location]bool{start: true}
	children := make(map[domain.Location][]domain.Location, len(nodes))

	frontier := make([]mstEdge, 0, len(nodes))
	push := func(from domain.Location) {
		for to, w := range adjacency[from] {
			if !visited[to] {
				frontier = append(frontier, mstEdge{from: from, to: to, weight: w})
			}
		}
	}
	push(start)

	for len(visited) < len(nodes) && len(frontier) > 0 {
		sort.Slice(frontier, func(i, j int) bool {
			if frontier[i].weight != frontier[j].weight {
				return frontier[i].weight < frontier[j].weight
			}
			return frontier[i].to < frontier[j].to
		})
		var next mstEdge
		picked := false
		for len(frontier) > 0 {
			next = frontier[0]
			frontier = frontier[1:]
			if !visited[next.to] {
				picked = true
				break
			}
		}
		if !picked {
			break
		}
		visited[next.to] = true
		children[next.from] = append(children[next.from], next.to)
		push(next.to)
	}

	if len(visited) < len(nodes) {
		return nil, false
	}

	order := make([]domain.Location, 0, len(nodes))
	var walk func(domain.Location)
	walk = func(loc domain.Location) {
		order = append(order, loc)
		kids := children[loc]
		sortLocations(kids)
		for _, kid := range kids {
			walk(kid)
		}
	}
	walk(start)
	return order, true
}

// constraintSeeded orders locations by the constraint graph, so the result
// satisfies the constraints by construction whenever the start location is
// itself unconstrained.
func (g *generator) constraintSeeded(start domain.Location, required []domain.Location) ([]domain.Location, bool) {
	return g.constraints.topologicalOrder(start, required), true
}

// exhaustive enumerates permutations with the start fixed first, bounded by
// the permutation budget, and keeps the constraint-respecting ordering with
// the lowest resolved distance. Only runs on small location counts.
func (g *generator) exhaustive(start domain.Location, required []domain.Location) ([]domain.Location, bool) {
	if len(required) > g.opts.MaxExhaustiveLocations {
		return nil, false
	}

	rest := make([]domain.Location, 0, len(required))
	for _, loc := range required {
		if loc != start {
			rest = append(rest, loc)
		}
	}
	sortLocations(rest)

	var (
		best     []domain.Location
		bestDist float64
		budget   = g.opts.PermutationBudget
	)
	perm := append([]domain.Location(nil), rest...)
	var visit func(k int) bool
	visit = func(k int) bool {
		if budget <= 0 {
			return false
		}
		if k == len(perm) {
			budget--
			order := append([]domain.Location{start}, perm...)
			if !g.constraints.Respects(order) {
				return true
			}
			d, ok := g.pathDistance(order)
			if !ok {
				return true
			}
			if best == nil || d < bestDist {
				best = append([]domain.Location(nil), order...)
				bestDist = d
			}
			return true
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			cont := visit(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
			if !cont {
				return false
			}
		}
		return true
	}
	visit(0)

	if best == nil {
		return nil, false
	}
	return best, true
}

// pathDistance sums resolved leg distances along an ordering.
func (g *generator) pathDistance(order []domain.Location) (float64, bool) {
	total := 0.0
	for i := 0; i+1 < len(order); i++ {
		d, ok := g.resolver.Distance(order[i], order[i+1])
		if !ok {
			return 0, false
		}
		total += d
	}
	return total, true
}
