package domain

// Location names a node in the road network.
// The set of locations is fixed when the network is configured.
type Location string

// Edge is an unordered pair of locations carrying a road segment.
// The pair is normalized (A <= B) so that lookups are symmetric.
type Edge struct {
	A Location
	B Location
}

// NewEdge builds a normalized edge regardless of argument order.
func NewEdge(a, b Location) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Touches reports whether the edge connects the two given locations.
func (e Edge) Touches(a, b Location) bool {
	return e == NewEdge(a, b)
}
