package planner

import "delivery-game-service/internal/domain"

// validator checks a finished action sequence and prices it. Checks run in a
// fixed order and the first failure short-circuits; on success the total
// resolved distance is returned. Validation is deterministic, so re-validating
// an accepted route yields the same distance.
type validator struct {
	resolver    *Resolver
	constraints *ConstraintSet
	required    []domain.Location
}

func (v *validator) validate(actions []domain.Action) (float64, error) {
	path := domain.ProjectLocations(actions)

	visited := make(map[domain.Location]bool, len(path))
	for _, loc := range path {
		visited[loc] = true
	}
	for _, loc := range v.required {
		if !visited[loc] {
			return 0, &ValidationError{Reason: ReasonUnvisitedLocation, Location: loc}
		}
	}

	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		_, d, ok := v.resolver.Resolve(path[i], path[i+1])
		if !ok {
			return 0, &ValidationError{Reason: ReasonUnreachableLeg, From: path[i], To: path[i+1]}
		}
		total += d
	}

	carried := 0
	carrying := false // explicit flag: package ids carry no reserved value
	for _, a := range actions {
		switch a.Kind {
		case domain.ActionPickup:
			if carrying {
				return 0, &ValidationError{Reason: ReasonCapacityExceeded, Location: a.Location, PackageID: a.PackageID}
			}
			carried = a.PackageID
			carrying = true
		case domain.ActionDeliver:
			if !carrying || carried != a.PackageID {
				return 0, &ValidationError{Reason: ReasonMismatchedDelivery, Location: a.Location, PackageID: a.PackageID}
			}
			carrying = false
		}
	}
	if carrying {
		return 0, &ValidationError{Reason: ReasonUndeliveredPackage, PackageID: carried}
	}

	if !v.constraints.Respects(path) {
		return 0, &ValidationError{Reason: ReasonConstraintViolated}
	}

	return total, nil
}
