package planner

import (
	"sort"

	"delivery-game-service/internal/domain"
)

// sequencer turns a bare location ordering into a full action sequence that
// handles every package under the capacity-1 rule.
type sequencer struct {
	resolver *Resolver
}

// sequence walks the ordering, delivering the carried package and picking up
// a waiting one at each stop. Packages the walk leaves unhandled are appended
// at the tail via resolved detours, so every package is always sequenced (at
// the cost of extra distance). The input packages are not mutated.
func (s *sequencer) sequence(order []domain.Location, packages []domain.Package) ([]domain.Action, error) {
	status := make(map[int]domain.PackageStatus, len(packages))
	byID := make(map[int]domain.Package, len(packages))
	ids := make([]int, 0, len(packages))
	carried := 0
	carrying := false // explicit flag: package ids carry no reserved value
	for _, p := range packages {
		st := p.Status
		if st == "" {
			st = domain.StatusWaiting
		}
		status[p.ID] = st
		byID[p.ID] = p
		ids = append(ids, p.ID)
		if st == domain.StatusCarried {
			carried = p.ID
			carrying = true
		}
	}
	sort.Ints(ids)

	actions := make([]domain.Action, 0, len(order)+2*len(packages))
	for _, loc := range order {
		actions = append(actions, domain.Visit(loc))

		if carrying && byID[carried].Delivery == loc {
			actions = append(actions, domain.Deliver(loc, carried))
			status[carried] = domain.StatusDelivered
			carrying = false
		}

		if !carrying {
			// Deterministic tie-break: lowest package id waiting here.
			for _, id := range ids {
				if status[id] == domain.StatusWaiting && byID[id].Pickup == loc {
					actions = append(actions, domain.Pickup(loc, id))
					status[id] = domain.StatusCarried
					carried = id
					carrying = true
					break
				}
			}
		}
	}

	// Tail repair: finish whatever the walk could not schedule.
	current := order[len(order)-1]
	if carrying {
		next, err := s.appendLeg(actions, current, byID[carried].Delivery, carried)
		if err != nil {
			return nil, err
		}
		actions = next
		current = byID[carried].Delivery
		actions = append(actions, domain.Deliver(current, carried))
		status[carried] = domain.StatusDelivered
		carrying = false
	}

	for _, id := range ids {
		if status[id] != domain.StatusWaiting {
			continue
		}
		pkg := byID[id]

		next, err := s.appendLeg(actions, current, pkg.Pickup, id)
		if err != nil {
			return nil, err
		}
		actions = next
		current = pkg.Pickup
		actions = append(actions, domain.Pickup(current, id))

		next, err = s.appendLeg(actions, current, pkg.Delivery, id)
		if err != nil {
			return nil, err
		}
		actions = next
		current = pkg.Delivery
		actions = append(actions, domain.Deliver(current, id))
		status[id] = domain.StatusDelivered
	}

	return actions, nil
}

// appendLeg extends the action tail with resolved visits from a to b,
// including b itself when movement is needed.
func (s *sequencer) appendLeg(actions []domain.Action, a, b domain.Location, packageID int) ([]domain.Action, error) {
	if a == b {
		return actions, nil
	}
	path, _, ok := s.resolver.Resolve(a, b)
	if !ok {
		return nil, &UndeliverableError{PackageID: packageID}
	}
	for _, hop := range path[1:] {
		actions = append(actions, domain.Visit(hop))
	}
	return actions, nil
}
