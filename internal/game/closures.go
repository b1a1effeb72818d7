package game

import (
	"math/rand"

	"delivery-game-service/internal/domain"
	"delivery-game-service/internal/netmap"
)

// GenerateClosures picks up to count road closures at random while keeping
// the open subgraph connected. Roads touching the hub are never closed so
// every location keeps its hub spoke, matching the playability guarantee the
// planner is told to expect (but not trust).
func GenerateClosures(n *netmap.Network, count int, rng *rand.Rand) []domain.Edge {
	candidates := make([]domain.Edge, 0, len(n.Distances))
	for _, e := range n.Segments() {
		if e.A == n.Hub || e.B == n.Hub {
			continue
		}
		candidates = append(candidates, e)
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	closed := make(map[domain.Edge]bool, count)
	out := make([]domain.Edge, 0, count)
	for _, e := range candidates {
		if len(out) >= count {
			break
		}
		closed[e] = true
		if connected(n, closed) {
			out = append(out, e)
		} else {
			delete(closed, e) // revert a closure that splits the network
		}
	}
	return out
}

// addClosure tries to close one more random road mid-game, keeping the open
// subgraph connected and every constrained pair still mutually reachable.
func addClosure(n *netmap.Network, current []domain.Edge, mustConnect [][2]domain.Location, rng *rand.Rand) (domain.Edge, bool) {
	closed := make(map[domain.Edge]bool, len(current)+1)
	for _, e := range current {
		closed[e] = true
	}

	candidates := make([]domain.Edge, 0, len(n.Distances))
	for _, e := range n.Segments() {
		if e.A == n.Hub || e.B == n.Hub || closed[e] {
			continue
		}
		candidates = append(candidates, e)
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, e := range candidates {
		closed[e] = true
		if connected(n, closed) && pairsReachable(n, closed, mustConnect) {
			return e, true
		}
		delete(closed, e)
	}
	return domain.Edge{}, false
}

// connected runs BFS over the open subgraph from an arbitrary location.
func connected(n *netmap.Network, closed map[domain.Edge]bool) bool {
	locs := n.Locations()
	if len(locs) == 0 {
		return true
	}

	visited := map[domain.Location]bool{locs[0]: true}
	queue := []domain.Location{locs[0]}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for e := range n.Distances {
			if closed[e] {
				continue
			}
			var next domain.Location
			switch cur {
			case e.A:
				next = e.B
			case e.B:
				next = e.A
			default:
				continue
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return len(visited) == len(locs)
}

func pairsReachable(n *netmap.Network, closed map[domain.Edge]bool, pairs [][2]domain.Location) bool {
	// Connectivity of the whole open subgraph implies every pair is
	// reachable, but closures are checked pairwise anyway in case a
	// future network carries isolated optional locations.
	if !connected(n, closed) {
		return false
	}
	for _, p := range pairs {
		if _, ok := n.Positions[p[0]]; !ok {
			return false
		}
		if _, ok := n.Positions[p[1]]; !ok {
			return false
		}
	}
	return true
}
