package game

import (
	"math/rand"
	"testing"

	"delivery-game-service/internal/domain"
	"delivery-game-service/internal/netmap"
)

func TestGeneratePackages(t *testing.T) {
	n := netmap.Default()

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		packages := GeneratePackages(n, 3, rng)

		if len(packages) != 3 {
			t.Fatalf("seed %d: packages = %v, want 3", seed, packages)
		}
		for i, p := range packages {
			if p.ID != i+1 {
				t.Fatalf("seed %d: package id = %d, want %d", seed, p.ID, i+1)
			}
			if p.Pickup == p.Delivery {
				t.Fatalf("seed %d: package %d picks up and delivers at %q", seed, p.ID, p.Pickup)
			}
			if p.Pickup == n.Hub || p.Delivery == n.Hub {
				t.Fatalf("seed %d: package %d uses the hub", seed, p.ID)
			}
			if p.Status != domain.StatusWaiting {
				t.Fatalf("seed %d: package %d status = %q, want waiting", seed, p.ID, p.Status)
			}
		}
	}
}

func TestGeneratePackagesNeedsTwoLocations(t *testing.T) {
	n := &netmap.Network{
		Hub: "Hub",
		Positions: map[domain.Location]netmap.Position{
			"Hub":  {},
			"Only": {},
		},
	}

	if packages := GeneratePackages(n, 3, rand.New(rand.NewSource(1))); packages != nil {
		t.Fatalf("packages = %v, want none on a single-location network", packages)
	}
}
