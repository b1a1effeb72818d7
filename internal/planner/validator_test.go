package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delivery-game-service/internal/domain"
)

func newTestValidator(constraints []Constraint, required []domain.Location, closed ...domain.Edge) *validator {
	return &validator{
		resolver:    newTestResolver(testBase(), closed...),
		constraints: NewConstraintSet(constraints),
		required:    required,
	}
}

func TestValidateAcceptsAndPricesRoute(t *testing.T) {
	v := newTestValidator(
		[]Constraint{{Before: "A", After: "C"}},
		[]domain.Location{"A", "B", "C", "D"},
	)

	actions := []domain.Action{
		domain.Visit("A"),
		domain.Visit("D"),
		domain.Visit("C"),
		domain.Visit("B"),
	}
	dist, err := v.validate(actions)
	require.NoError(t, err)
	assert.Equal(t, 7.0, dist)
}

func TestValidateRejectsMissingLocation(t *testing.T) {
	v := newTestValidator(nil, []domain.Location{"A", "B", "C"})

	_, err := v.validate([]domain.Action{domain.Visit("A"), domain.Visit("B")})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, ReasonUnvisitedLocation, ve.Reason)
	assert.Equal(t, domain.Location("C"), ve.Location)
}

func TestValidateRejectsUnreachableLeg(t *testing.T) {
	v := newTestValidator(nil, []domain.Location{"A", "D"},
		domain.NewEdge("A", "D"),
		domain.NewEdge("B", "D"),
		domain.NewEdge("C", "D"),
	)

	_, err := v.validate([]domain.Action{domain.Visit("A"), domain.Visit("D")})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, ReasonUnreachableLeg, ve.Reason)
	assert.Equal(t, domain.Location("A"), ve.From)
	assert.Equal(t, domain.Location("D"), ve.To)
}

func TestValidateRejectsSecondPickup(t *testing.T) {
	v := newTestValidator(nil, []domain.Location{"A", "B"})

	_, err := v.validate([]domain.Action{
		domain.Visit("A"),
		domain.Pickup("A", 1),
		domain.Visit("B"),
		domain.Pickup("B", 2),
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, ReasonCapacityExceeded, ve.Reason)
	assert.Equal(t, 2, ve.PackageID)
}

func TestValidateRejectsMismatchedDelivery(t *testing.T) {
	v := newTestValidator(nil, []domain.Location{"A", "B"})

	_, err := v.validate([]domain.Action{
		domain.Visit("A"),
		domain.Pickup("A", 1),
		domain.Visit("B"),
		domain.Deliver("B", 2),
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, ReasonMismatchedDelivery, ve.Reason)
}

func TestValidateRejectsUndeliveredPackage(t *testing.T) {
	v := newTestValidator(nil, []domain.Location{"A", "B"})

	_, err := v.validate([]domain.Action{
		domain.Visit("A"),
		domain.Pickup("A", 1),
		domain.Visit("B"),
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, ReasonUndeliveredPackage, ve.Reason)
	assert.Equal(t, 1, ve.PackageID)
}

func TestValidateTracksZeroIDPackage(t *testing.T) {
	v := newTestValidator(nil, []domain.Location{"A", "B"})

	// Undelivered package 0 must not pass as "nothing carried".
	_, err := v.validate([]domain.Action{
		domain.Visit("A"),
		domain.Pickup("A", 0),
		domain.Visit("B"),
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, ReasonUndeliveredPackage, ve.Reason)
	assert.Equal(t, 0, ve.PackageID)

	// Carrying package 0 still blocks a second pickup.
	_, err = v.validate([]domain.Action{
		domain.Visit("A"),
		domain.Pickup("A", 0),
		domain.Visit("B"),
		domain.Pickup("B", 1),
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, ReasonCapacityExceeded, ve.Reason)

	// A valid zero-id round trip still passes.
	dist, err := v.validate([]domain.Action{
		domain.Visit("A"),
		domain.Pickup("A", 0),
		domain.Visit("B"),
		domain.Deliver("B", 0),
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, dist)
}

func TestValidateRejectsConstraintViolation(t *testing.T) {
	v := newTestValidator(
		[]Constraint{{Before: "B", After: "A"}},
		[]domain.Location{"A", "B"},
	)

	_, err := v.validate([]domain.Action{domain.Visit("A"), domain.Visit("B")})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, ReasonConstraintViolated, ve.Reason)
}

func TestValidateResolvesClosedLegsAsDetours(t *testing.T) {
	v := newTestValidator(nil, []domain.Location{"B", "C"}, domain.NewEdge("B", "C"))

	dist, err := v.validate([]domain.Action{domain.Visit("B"), domain.Visit("C")})
	require.NoError(t, err)
	assert.Equal(t, 7.5, dist)
}
