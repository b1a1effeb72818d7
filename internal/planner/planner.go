package planner

import (
	"errors"
	"fmt"

	"delivery-game-service/internal/domain"
)

// Options bound the search effort so a planning call stays sub-second on the
// interactive network sizes this game uses.
type Options struct {
	// PermutationBudget caps how many permutations the exhaustive strategy
	// evaluates before giving up on the remainder.
	PermutationBudget int
	// MaxExhaustiveLocations disables the exhaustive strategy above this
	// location count.
	MaxExhaustiveLocations int
	// TwoOptMaxIterations caps full 2-opt improvement sweeps.
	TwoOptMaxIterations int
	// ThreeOptMaxSweeps caps 3-opt improvement sweeps.
	ThreeOptMaxSweeps int
}

// DefaultOptions returns the search caps tuned for the five-location network.
func DefaultOptions() Options {
	return Options{
		PermutationBudget:      1000,
		MaxExhaustiveLocations: 8,
		TwoOptMaxIterations:    100,
		ThreeOptMaxSweeps:      5,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.PermutationBudget <= 0 {
		o.PermutationBudget = def.PermutationBudget
	}
	if o.MaxExhaustiveLocations <= 0 {
		o.MaxExhaustiveLocations = def.MaxExhaustiveLocations
	}
	if o.TwoOptMaxIterations <= 0 {
		o.TwoOptMaxIterations = def.TwoOptMaxIterations
	}
	if o.ThreeOptMaxSweeps <= 0 {
		o.ThreeOptMaxSweeps = def.ThreeOptMaxSweeps
	}
	return o
}

// Request is the immutable input of one planning call. Closures and packages
// are snapshots; the planner never mutates them and keeps no state across
// calls.
type Request struct {
	Start       domain.Location
	Required    []domain.Location
	Constraints []Constraint
	ClosedEdges []domain.Edge
	Packages    []domain.Package
}

// Planner computes routes over a static base distance table. It is pure and
// safe for concurrent use: each Plan call works on its own snapshot.
type Planner struct {
	base map[domain.Edge]float64
	opts Options
}

// New builds a planner over the network's base distance table.
func New(base map[domain.Edge]float64, opts Options) *Planner {
	normalized := make(map[domain.Edge]float64, len(base))
	for e, d := range base {
		normalized[domain.NewEdge(e.A, e.B)] = d
	}
	return &Planner{base: normalized, opts: opts.withDefaults()}
}

// Plan runs the full pipeline: generate candidates, optimize each, sequence
// packages, validate, and return the lowest-distance valid route. When every
// candidate fails, a deterministic fallback construction is tried before
// reporting a typed failure. Plan never panics on infeasible input.
func (p *Planner) Plan(req Request) (domain.Route, error) {
	constraints := NewConstraintSet(req.Constraints)
	if constraints.HasCycle() {
		return domain.Route{}, ErrInfeasibleConstraints
	}

	graph := NewGraph(p.base, req.ClosedEdges)
	resolver := NewResolver(graph)
	required := requiredWithStart(req.Start, req.Required)

	gen := &generator{graph: graph, resolver: resolver, constraints: constraints, opts: p.opts}
	opt := &optimizer{resolver: resolver, constraints: constraints, opts: p.opts}
	seq := &sequencer{resolver: resolver}
	val := &validator{resolver: resolver, constraints: constraints, required: required}

	var (
		best          []domain.Action
		bestDist      float64
		haveBest      bool
		undeliverable *UndeliverableError
	)
	for _, cand := range gen.generate(req.Start, required) {
		order := opt.improve(cand.order)

		actions, err := seq.sequence(order, req.Packages)
		if err != nil {
			var ue *UndeliverableError
			if errors.As(err, &ue) && undeliverable == nil {
				undeliverable = ue
			}
			continue
		}

		dist, err := val.validate(actions)
		if err != nil {
			// Candidate-level rejection only; the call as a whole goes on.
			continue
		}
		if !haveBest || dist < bestDist {
			best = actions
			bestDist = dist
			haveBest = true
		}
	}

	if haveBest {
		return domain.Route{Actions: best, Distance: bestDist}, nil
	}

	fb := &fallbackBuilder{resolver: resolver, constraints: constraints}
	order, err := fb.build(req.Start, required)
	if err != nil {
		return domain.Route{}, err
	}

	actions, err := seq.sequence(order, req.Packages)
	if err != nil {
		return domain.Route{}, err
	}

	dist, err := val.validate(actions)
	if err != nil {
		return domain.Route{}, asPlanningFailure(err, undeliverable)
	}
	return domain.Route{Actions: actions, Distance: dist}, nil
}

// asPlanningFailure maps a fallback validation error onto the failure
// taxonomy, preferring a package failure already seen on the candidate path.
func asPlanningFailure(err error, undeliverable *UndeliverableError) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		switch ve.Reason {
		case ReasonUnreachableLeg:
			return &DisconnectedError{From: ve.From, To: ve.To}
		case ReasonUndeliveredPackage, ReasonCapacityExceeded, ReasonMismatchedDelivery:
			return &UndeliverableError{PackageID: ve.PackageID}
		}
	}
	if undeliverable != nil {
		return undeliverable
	}
	if ve != nil {
		return fmt.Errorf("planner: fallback route rejected: %s: %w", ve.Reason, ErrInfeasibleConstraints)
	}
	return fmt.Errorf("planner: fallback route rejected: %w", ErrInfeasibleConstraints)
}

func requiredWithStart(start domain.Location, required []domain.Location) []domain.Location {
	out := make([]domain.Location, 0, len(required)+1)
	seen := map[domain.Location]bool{start: true}
	out = append(out, start)
	for _, loc := range required {
		if !seen[loc] {
			seen[loc] = true
			out = append(out, loc)
		}
	}
	return out
}
