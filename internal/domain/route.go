package domain

// ActionKind discriminates the steps of a computed route.
type ActionKind string

const (
	ActionVisit   ActionKind = "visit"
	ActionPickup  ActionKind = "pickup"
	ActionDeliver ActionKind = "deliver"
)

// Action is one step of a route: arrive at a location, optionally picking up
// or delivering a package there. PackageID is zero for plain visits.
type Action struct {
	Kind      ActionKind
	Location  Location
	PackageID int
}

// Visit builds a plain visit action.
func Visit(loc Location) Action {
	return Action{Kind: ActionVisit, Location: loc}
}

// Pickup builds a pickup action for the given package.
func Pickup(loc Location, packageID int) Action {
	return Action{Kind: ActionPickup, Location: loc, PackageID: packageID}
}

// Deliver builds a delivery action for the given package.
func Deliver(loc Location, packageID int) Action {
	return Action{Kind: ActionDeliver, Location: loc, PackageID: packageID}
}

// Represents the planned route for a single game instance.
// A Route is the output of the planner and describes the ordered sequence of
// actions along with the total resolved travel distance. It is immutable
// planning data and is replaced wholesale on the next planning call.
type Route struct {
	Actions  []Action
	Distance float64
}

// Locations returns the walked path: the location projection of the actions
// with consecutive duplicates collapsed (a pickup or delivery at the current
// location does not move the player).
func (r Route) Locations() []Location {
	return ProjectLocations(r.Actions)
}

// ProjectLocations collapses an action sequence to the walked path.
func ProjectLocations(actions []Action) []Location {
	path := make([]Location, 0, len(actions))
	for _, a := range actions {
		if n := len(path); n > 0 && path[n-1] == a.Location {
			continue
		}
		path = append(path, a.Location)
	}
	return path
}
