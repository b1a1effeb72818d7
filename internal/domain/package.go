package domain

// PackageStatus tracks a package through its pickup/delivery lifecycle.
type PackageStatus string

const (
	StatusWaiting   PackageStatus = "waiting"
	StatusCarried   PackageStatus = "carried"
	StatusDelivered PackageStatus = "delivered"
)

// Represents a single delivery unit handled by the game.
// A Package has a unique identifier, a pickup location and a delivery
// location. At most one package may be in StatusCarried at any time
// (single-capacity rule); the game loop owns persistent package state.
type Package struct {
	ID       int
	Pickup   Location
	Delivery Location
	Status   PackageStatus
}
