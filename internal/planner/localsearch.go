package planner

import "delivery-game-service/internal/domain"

const improvementEpsilon = 1e-9

// optimizer refines a feasible ordering with greedy edge-exchange moves.
// Moves that violate constraints or fail to resolve are rejected outright, so
// the result is never worse and never less feasible than the input.
type optimizer struct {
	resolver    *Resolver
	constraints *ConstraintSet
	opts        Options
}

// improve runs 2-opt to convergence, then a bounded 3-opt pass on orderings
// long enough to benefit from it.
func (o *optimizer) improve(order []domain.Location) []domain.Location {
	best := o.twoOpt(order)
	if len(best) >= 3 {
		best = o.threeOpt(best)
	}
	return best
}

// twoOpt reverses contiguous sub-segments while that shortens the resolved
// path, keeping the start location fixed. Hill-climbing with an iteration cap.
func (o *optimizer) twoOpt(order []domain.Location) []domain.Location {
	best := append([]domain.Location(nil), order...)
	bestDist, ok := o.pathDistance(best)
	if !ok {
		return best
	}

	n := len(best)
	for iter := 0; iter < o.opts.TwoOptMaxIterations; iter++ {
		improved := false
		for i := 1; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				trial := reverseSegment(best, i, j)
				if !o.constraints.Respects(trial) {
					continue
				}
				d, ok := o.pathDistance(trial)
				if !ok {
					continue
				}
				if d+improvementEpsilon < bestDist {
					best = trial
					bestDist = d
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}
	return best
}

// threeOpt tries a small systematic set of three-segment reconnections.
// Only worthwhile on longer orderings; bounds follow the same sweep and
// pattern limits the 2-opt pass converged under.
func (o *optimizer) threeOpt(order []domain.Location) []domain.Location {
	best := append([]domain.Location(nil), order...)
	if len(best) < 6 {
		return best
	}
	bestDist, ok := o.pathDistance(best)
	if !ok {
		return best
	}

	n := len(best)
	for sweep := 0; sweep < o.opts.ThreeOptMaxSweeps; sweep++ {
		improved := false
		for i := 1; i < n-3; i++ {
			for j := i + 1; j < n-2; j++ {
				for k := j + 1; k < n-1; k++ {
					for pattern := 0; pattern < 4; pattern++ {
						trial := threeOptMove(best, i, j, k, pattern)
						if trial == nil {
							continue
						}
						if !o.constraints.Respects(trial) {
							continue
						}
						d, ok := o.pathDistance(trial)
						if !ok {
							continue
						}
						if d+improvementEpsilon < bestDist {
							best = trial
							bestDist = d
							improved = true
						}
					}
				}
			}
		}
		if !improved {
			break
		}
	}
	return best
}

// reverseSegment returns a copy of the ordering with positions i..j reversed.
func reverseSegment(order []domain.Location, i, j int) []domain.Location {
	out := append([]domain.Location(nil), order...)
	for a, b := i, j; a < b; a, b = a+1, b-1 {
		out[a], out[b] = out[b], out[a]
	}
	return out
}

// threeOptMove applies one of four reconnection patterns to segments split at
// i, j and k.
func threeOptMove(order []domain.Location, i, j, k, pattern int) []domain.Location {
	switch pattern {
	case 0:
		return reverseSegment(order, i, j)
	case 1:
		return reverseSegment(order, j, k)
	case 2:
		return reverseSegment(order, i, k)
	case 3:
		// Rotate: move segment j..k ahead of segment i..j-1.
		out := make([]domain.Location, 0, len(order))
		out = append(out, order[:i]...)
		out = append(out, order[j:k+1]...)
		out = append(out, order[i:j]...)
		out = append(out, order[k+1:]...)
		return out
	default:
		return nil
	}
}

func (o *optimizer) pathDistance(order []domain.Location) (float64, bool) {
	total := 0.0
	for i := 0; i+1 < len(order); i++ {
		d, ok := o.resolver.Distance(order[i], order[i+1])
		if !ok {
			return 0, false
		}
		total += d
	}
	return total, true
}
