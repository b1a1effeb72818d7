package netmap

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"delivery-game-service/internal/domain"
)

// Position is a 2D canvas coordinate used by the rendering layer.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Network is the static road network: locations with draw positions, road
// segments with base distances, and the central hub. Loaded once at startup
// and never mutated afterwards; closures live in per-game snapshots.
type Network struct {
	Hub       domain.Location
	Positions map[domain.Location]Position
	Distances map[domain.Edge]float64
}

// Default returns the built-in five-location demo network.
func Default() *Network {
	return &Network{
		Hub: "Central Hub",
		Positions: map[domain.Location]Position{
			"Factory":     {X: 100, Y: 100},
			"DHL Hub":     {X: 700, Y: 100},
			"Shop":        {X: 700, Y: 300},
			"Residence":   {X: 100, Y: 300},
			"Central Hub": {X: 400, Y: 200},
		},
		Distances: map[domain.Edge]float64{
			domain.NewEdge("Factory", "DHL Hub"):       3.0,
			domain.NewEdge("Factory", "Shop"):          4.5,
			domain.NewEdge("Factory", "Residence"):     2.0,
			domain.NewEdge("Factory", "Central Hub"):   2.0,
			domain.NewEdge("DHL Hub", "Shop"):          2.0,
			domain.NewEdge("DHL Hub", "Residence"):     4.5,
			domain.NewEdge("DHL Hub", "Central Hub"):   2.0,
			domain.NewEdge("Shop", "Residence"):        3.0,
			domain.NewEdge("Shop", "Central Hub"):      2.0,
			domain.NewEdge("Residence", "Central Hub"): 2.0,
		},
	}
}

type fileLocation struct {
	Name string `yaml:"name"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

type fileRoad struct {
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	Distance float64 `yaml:"distance"`
}

type fileNetwork struct {
	Hub       string         `yaml:"hub"`
	Locations []fileLocation `yaml:"locations"`
	Roads     []fileRoad     `yaml:"roads"`
}

// LoadFile reads a network definition from a YAML file.
func LoadFile(path string) (*Network, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load network: read %q: %w", path, err)
	}

	var spec fileNetwork
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("load network: parse %q: %w", path, err)
	}

	n := &Network{
		Hub:       domain.Location(spec.Hub),
		Positions: make(map[domain.Location]Position, len(spec.Locations)),
		Distances: make(map[domain.Edge]float64, len(spec.Roads)),
	}
	for _, loc := range spec.Locations {
		n.Positions[domain.Location(loc.Name)] = Position{X: loc.X, Y: loc.Y}
	}
	for _, road := range spec.Roads {
		if road.Distance < 0 {
			return nil, fmt.Errorf("load network: road %s-%s has negative distance", road.From, road.To)
		}
		n.Distances[domain.NewEdge(domain.Location(road.From), domain.Location(road.To))] = road.Distance
	}

	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}
	return n, nil
}

// Validate checks that every road endpoint is a known location and the hub
// exists.
func (n *Network) Validate() error {
	if _, ok := n.Positions[n.Hub]; !ok {
		return fmt.Errorf("network: hub %q is not a configured location", n.Hub)
	}
	for e := range n.Distances {
		if _, ok := n.Positions[e.A]; !ok {
			return fmt.Errorf("network: road endpoint %q is not a configured location", e.A)
		}
		if _, ok := n.Positions[e.B]; !ok {
			return fmt.Errorf("network: road endpoint %q is not a configured location", e.B)
		}
	}
	return nil
}

// Locations returns every configured location, sorted.
func (n *Network) Locations() []domain.Location {
	out := make([]domain.Location, 0, len(n.Positions))
	for loc := range n.Positions {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MainLocations returns every location except the hub, sorted. These are the
// stops a game requires the player to visit.
func (n *Network) MainLocations() []domain.Location {
	out := make([]domain.Location, 0, len(n.Positions)-1)
	for loc := range n.Positions {
		if loc != n.Hub {
			out = append(out, loc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Segments returns every road segment, sorted for determinism.
func (n *Network) Segments() []domain.Edge {
	out := make([]domain.Edge, 0, len(n.Distances))
	for e := range n.Distances {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}
