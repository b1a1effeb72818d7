package planner

import "delivery-game-service/internal/domain"

// fallbackBuilder is the deterministic last resort: a constraint-seeded
// ordering with every unreachable leg repaired by resolved detour paths.
// A leg that cannot be repaired surfaces as a DisconnectedError; the builder
// never substitutes a placeholder distance for a missing road.
type fallbackBuilder struct {
	resolver    *Resolver
	constraints *ConstraintSet
}

// build returns a walkable ordering covering every required location.
func (f *fallbackBuilder) build(start domain.Location, required []domain.Location) ([]domain.Location, error) {
	seed := f.constraints.topologicalOrder(start, required)

	out := make([]domain.Location, 0, len(seed)*2)
	out = append(out, seed[0])
	for i := 0; i+1 < len(seed); i++ {
		path, _, ok := f.resolver.Resolve(seed[i], seed[i+1])
		if !ok {
			return nil, &DisconnectedError{From: seed[i], To: seed[i+1]}
		}
		out = append(out, path[1:]...)
	}
	return out, nil
}
