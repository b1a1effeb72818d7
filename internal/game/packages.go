package game

import (
	"math/rand"

	"delivery-game-service/internal/domain"
	"delivery-game-service/internal/netmap"
)

// GeneratePackages creates count random packages between the main locations.
// Pickup and delivery are always distinct; the hub handles no packages.
func GeneratePackages(n *netmap.Network, count int, rng *rand.Rand) []domain.Package {
	locations := n.MainLocations()
	if len(locations) < 2 {
		return nil
	}

	packages := make([]domain.Package, 0, count)
	for i := 0; i < count; i++ {
		pickup := locations[rng.Intn(len(locations))]
		delivery := pickup
		for delivery == pickup {
			delivery = locations[rng.Intn(len(locations))]
		}
		packages = append(packages, domain.Package{
			ID:       i + 1,
			Pickup:   pickup,
			Delivery: delivery,
			Status:   domain.StatusWaiting,
		})
	}
	return packages
}
