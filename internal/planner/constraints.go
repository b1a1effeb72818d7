package planner

import (
	"sort"

	"delivery-game-service/internal/domain"
)

// Constraint requires Before to appear earlier than After in any route that
// contains both locations.
type Constraint struct {
	Before domain.Location
	After  domain.Location
}

// ConstraintSet is a fixed set of ordering constraints. Cyclicity is computed
// once at construction; a cyclic set makes every planning call infeasible.
type ConstraintSet struct {
	pairs  []Constraint
	cyclic bool
}

// NewConstraintSet builds a constraint set and runs the topological
// feasibility check over the constraint graph.
func NewConstraintSet(pairs []Constraint) *ConstraintSet {
	s := &ConstraintSet{pairs: append([]Constraint(nil), pairs...)}
	s.cyclic = detectCycle(s.pairs)
	return s
}

// HasCycle reports whether the constraint graph contains a cycle.
func (s *ConstraintSet) HasCycle() bool { return s.cyclic }

// Pairs returns the configured constraints.
func (s *ConstraintSet) Pairs() []Constraint {
	return append([]Constraint(nil), s.pairs...)
}

// Respects checks every constraint whose both endpoints appear in the path:
// the first occurrence of Before must come earlier than the first occurrence
// of After.
func (s *ConstraintSet) Respects(path []domain.Location) bool {
	for _, c := range s.pairs {
		bi := indexOf(path, c.Before)
		ai := indexOf(path, c.After)
		if bi < 0 || ai < 0 {
			continue
		}
		if bi > ai {
			return false
		}
	}
	return true
}

func indexOf(path []domain.Location, loc domain.Location) int {
	for i, l := range path {
		if l == loc {
			return i
		}
	}
	return -1
}

// detectCycle runs Kahn's algorithm over the constraint graph.
func detectCycle(pairs []Constraint) bool {
	inDegree := make(map[domain.Location]int)
	successors := make(map[domain.Location][]domain.Location)
	for _, c := range pairs {
		if _, ok := inDegree[c.Before]; !ok {
			inDegree[c.Before] = 0
		}
		inDegree[c.After]++
		successors[c.Before] = append(successors[c.Before], c.After)
	}

	queue := make([]domain.Location, 0, len(inDegree))
	for loc, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, loc)
		}
	}

	processed := 0
	for len(queue) > 0 {
		loc := queue[0]
		queue = queue[1:]
		processed++
		for _, next := range successors[loc] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	return processed < len(inDegree)
}

// topologicalOrder produces an ordering of the required locations that
// satisfies the constraints by construction: constrained locations come out
// in topological order, unconstrained ones are appended sorted. The start
// location is always moved to the front.
func (s *ConstraintSet) topologicalOrder(start domain.Location, required []domain.Location) []domain.Location {
	inSet := make(map[domain.Location]bool, len(required))
	for _, loc := range required {
		inSet[loc] = true
	}

	inDegree := make(map[domain.Location]int)
	successors := make(map[domain.Location][]domain.Location)
	for _, c := range s.pairs {
		if !inSet[c.Before] || !inSet[c.After] {
			continue
		}
		if _, ok := inDegree[c.Before]; !ok {
			inDegree[c.Before] = 0
		}
		inDegree[c.After]++
		successors[c.Before] = append(successors[c.Before], c.After)
	}

	ready := make([]domain.Location, 0, len(inDegree))
	for loc, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, loc)
		}
	}
	sortLocations(ready)

	ordered := make([]domain.Location, 0, len(required))
	for len(ready) > 0 {
		loc := ready[0]
		ready = ready[1:]
		ordered = append(ordered, loc)
		for _, next := range successors[loc] {
			inDegree[next]--
			if inDegree[next] == 0 {
				ready = append(ready, next)
			}
		}
		sortLocations(ready)
	}

	placed := make(map[domain.Location]bool, len(ordered))
	for _, loc := range ordered {
		placed[loc] = true
	}
	rest := make([]domain.Location, 0, len(required))
	for _, loc := range required {
		if !placed[loc] {
			rest = append(rest, loc)
		}
	}
	sortLocations(rest)
	ordered = append(ordered, rest...)

	// Pull the start location to the front, keeping relative order otherwise.
	out := make([]domain.Location, 0, len(ordered))
	out = append(out, start)
	for _, loc := range ordered {
		if loc != start {
			out = append(out, loc)
		}
	}
	return out
}

func sortLocations(locs []domain.Location) {
	sort.Slice(locs, func(i, j int) bool { return locs[i] < locs[j] })
}
