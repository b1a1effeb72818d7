package planner

import (
	"container/heap"
	"math"

	"delivery-game-service/internal/domain"
)

// Resolver answers "how do I get from a to b right now": directly when the
// edge is open, via the cheapest single intermediate hop when it is not, and
// by a full shortest-path search over the open subgraph as a last resort.
// The single-hop tier is tried first because on this network a one-stop
// detour almost always exists and is cheap to find.
type Resolver struct {
	graph *Graph
}

// NewResolver builds a detour resolver over the given graph snapshot.
func NewResolver(g *Graph) *Resolver {
	return &Resolver{graph: g}
}

// Resolve returns the walkable path from a to b and its total distance.
// ok=false means the two locations are disconnected under current closures.
func (r *Resolver) Resolve(a, b domain.Location) ([]domain.Location, float64, bool) {
	if a == b {
		return []domain.Location{a}, 0, true
	}

	if d, ok := r.graph.Distance(a, b); ok {
		return []domain.Location{a, b}, d, true
	}

	if path, dist, ok := r.singleHop(a, b); ok {
		return path, dist, ok
	}

	return r.shortestPath(a, b)
}

// Distance is Resolve without the path, for callers that only price a leg.
func (r *Resolver) Distance(a, b domain.Location) (float64, bool) {
	_, d, ok := r.Resolve(a, b)
	return d, ok
}

// singleHop finds the cheapest via location with open edges to both ends.
func (r *Resolver) singleHop(a, b domain.Location) ([]domain.Location, float64, bool) {
	var (
		bestVia  domain.Location
		bestDist float64
		found    bool
	)
	for _, via := range r.graph.nodes {
		if via == a || via == b {
			continue
		}
		da, ok := r.graph.Distance(a, via)
		if !ok {
			continue
		}
		db, ok := r.graph.Distance(via, b)
		if !ok {
			continue
		}
		if !found || da+db < bestDist {
			bestVia = via
			bestDist = da + db
			found = true
		}
	}
	if !found {
		return nil, 0, false
	}
	return []domain.Location{a, bestVia, b}, bestDist, true
}

// shortestPath runs Dijkstra over the open-edge subgraph. All weights are
// non-negative base distances.
func (r *Resolver) shortestPath(a, b domain.Location) ([]domain.Location, float64, bool) {
	dist := make(map[domain.Location]float64, len(r.graph.nodes))
	parent := make(map[domain.Location]domain.Location, len(r.graph.nodes))
	visited := make(map[domain.Location]bool, len(r.graph.nodes))
	for _, loc := range r.graph.nodes {
		dist[loc] = math.Inf(1)
	}
	if _, ok := dist[a]; !ok {
		return nil, 0, false
	}
	if _, ok := dist[b]; !ok {
		return nil, 0, false
	}
	dist[a] = 0

	pq := &locationPQ{}
	heap.Init(pq)
	heap.Push(pq, locationItem{loc: a, dist: 0})

	for pq.Len() > 0 {
		u := heap.Pop(pq).(locationItem)
		if visited[u.loc] {
			continue
		}
		visited[u.loc] = true
		if u.loc == b {
			break
		}

		for _, v := range r.graph.nodes {
			if visited[v] {
				continue
			}
			w, ok := r.graph.Distance(u.loc, v)
			if !ok || u.loc == v {
				continue
			}
			if nd := dist[u.loc] + w; nd < dist[v] {
				dist[v] = nd
				parent[v] = u.loc
				heap.Push(pq, locationItem{loc: v, dist: nd})
			}
		}
	}

	if !visited[b] {
		return nil, 0, false
	}

	path := []domain.Location{b}
	for cur := b; cur != a; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[b], true
}

type locationItem struct {
	loc  domain.Location
	dist float64
}

// locationPQ implements heap.Interface as a min-heap on distance.
type locationPQ []locationItem

func (pq locationPQ) Len() int            { return len(pq) }
func (pq locationPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq locationPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *locationPQ) Push(x interface{}) { *pq = append(*pq, x.(locationItem)) }
func (pq *locationPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
