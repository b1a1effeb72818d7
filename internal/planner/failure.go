package planner

import (
	"errors"
	"fmt"

	"delivery-game-service/internal/domain"
)

// ErrInfeasibleConstraints means no route can satisfy the configured
// constraints: the set is cyclic (fatal before any candidate generation), or
// acyclic yet unsatisfiable from the requested start, so every candidate and
// the fallback construction were rejected.
var ErrInfeasibleConstraints = errors.New("planner: constraints cannot be satisfied")

// DisconnectedError means no path exists between two required locations under
// the current closures, even via full shortest-path search. Recoverable by
// the caller regenerating closures, not by the planner.
type DisconnectedError struct {
	From domain.Location
	To   domain.Location
}

func (e *DisconnectedError) Error() string {
	return fmt.Sprintf("planner: no open path between %q and %q", e.From, e.To)
}

// UndeliverableError means a package's pickup or delivery location could not
// be reached even with detours.
type UndeliverableError struct {
	PackageID int
}

func (e *UndeliverableError) Error() string {
	return fmt.Sprintf("planner: package %d cannot be picked up and delivered", e.PackageID)
}

// ValidationError reports the first check a candidate route failed. These are
// filtered inside Plan; only the failure types above propagate to callers.
type ValidationError struct {
	Reason    string
	Location  domain.Location
	From      domain.Location
	To        domain.Location
	PackageID int
}

const (
	ReasonUnvisitedLocation  = "required location not visited"
	ReasonUnreachableLeg     = "leg not reachable under current closures"
	ReasonCapacityExceeded   = "second pickup while carrying a package"
	ReasonMismatchedDelivery = "delivery without a matching carried package"
	ReasonUndeliveredPackage = "package picked up but never delivered"
	ReasonConstraintViolated = "ordering constraint violated"
)

func (e *ValidationError) Error() string {
	return "planner: invalid route: " + e.Reason
}
