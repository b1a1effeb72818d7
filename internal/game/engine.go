package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"delivery-game-service/internal/domain"
	"delivery-game-service/internal/netmap"
	"delivery-game-service/internal/planner"
	"delivery-game-service/internal/ports"
)

// Session is the state of one game instance. Mutated only through Engine
// methods between planner calls; the planner itself receives snapshots.
type Session struct {
	ID          string
	Player      string
	Mode        Mode
	Start       domain.Location
	Route       []domain.Location
	Constraints []planner.Constraint
	ClosedRoads []domain.Edge
	Packages    []domain.Package
	CarriedID   int
	Delivered   []int
	Planned     domain.Route
	PlanFailure string
	StartedAt   time.Time
	Active      bool
	Results     *Results
}

var (
	ErrSessionNotFound = errors.New("game: session not found")
	ErrGameOver        = errors.New("game: game is not active")
)

// MoveError rejects an illegal check-in (closed road, missing road, or a
// constraint the player has not satisfied yet).
type MoveError struct{ Reason string }

func (e *MoveError) Error() string { return "game: " + e.Reason }

// Engine drives game sessions: it owns session state, mutates closures and
// packages between planner calls, and invokes the planner at the points the
// game defines (new game, explicit replan).
type Engine struct {
	network *netmap.Network
	planner *planner.Planner
	board   ports.LeaderboardRepository

	mu       sync.Mutex
	sessions map[string]*Session
	rng      *rand.Rand
	now      func() time.Time
}

// NewEngine wires the engine. board may be nil when no persistence is
// configured (results are then only returned, not ranked).
func NewEngine(network *netmap.Network, pl *planner.Planner, board ports.LeaderboardRepository, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		network:  network,
		planner:  pl,
		board:    board,
		sessions: make(map[string]*Session),
		rng:      rng,
		now:      time.Now,
	}
}

// StartNewGame sets up a session for the given mode: start location,
// constraints, closures and packages per the mode's rules, then one planning
// call for the reference route.
func (e *Engine) StartNewGame(player string, mode Mode) (*Session, error) {
	if !ValidMode(mode) {
		return nil, fmt.Errorf("game: unknown mode %q", mode)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	main := e.network.MainLocations()
	if len(main) == 0 {
		return nil, errors.New("game: network has no locations to visit")
	}

	s := &Session{
		ID:        uuid.NewString(),
		Player:    player,
		Mode:      mode,
		StartedAt: e.now(),
		Active:    true,
	}

	if mode == ModeComplexSupplyChain {
		s.Start = "Factory"
		if _, ok := e.network.Positions[s.Start]; !ok {
			s.Start = main[0]
		}
		s.Constraints = []planner.Constraint{
			{Before: "Factory", After: "Shop"},
			{Before: "DHL Hub", After: "Residence"},
		}
	} else {
		s.Start = main[e.rng.Intn(len(main))]
	}

	if mode == ModeRoadClosureChallenge {
		s.ClosedRoads = GenerateClosures(e.network, 2, e.rng)
	}
	if mode == ModePackageDelivery {
		s.Packages = GeneratePackages(e.network, 3, e.rng)
	}

	e.plan(s)

	s.Route = []domain.Location{s.Start}
	e.sessions[s.ID] = s
	log.Printf("game started id=%s mode=%q start=%q closures=%d packages=%d", s.ID, mode, s.Start, len(s.ClosedRoads), len(s.Packages))
	return copySession(s), nil
}

// plan refreshes the session's reference route from the planner. A planning
// failure is recorded on the session, not raised: the game stays playable and
// the UI can ask for different closures.
func (e *Engine) plan(s *Session) {
	route, err := e.planner.Plan(planner.Request{
		Start:       s.Start,
		Required:    e.network.MainLocations(),
		Constraints: s.Constraints,
		ClosedEdges: s.ClosedRoads,
		Packages:    s.Packages,
	})
	if err != nil {
		s.Planned = domain.Route{}
		s.PlanFailure = err.Error()
		log.Printf("plan failed id=%s err=%v", s.ID, err)
		return
	}
	s.Planned = route
	s.PlanFailure = ""
}

// Session returns a copy of the session state.
func (e *Engine) Session(id string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return copySession(s), nil
}

// CheckIn processes the player arriving at a location: move legality,
// constraint checks, automatic delivery of a carried package, and the win
// condition. Returns the updated session; Results is set when the game ended.
func (e *Engine) CheckIn(ctx context.Context, id string, loc domain.Location) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !s.Active {
		return nil, ErrGameOver
	}
	if _, ok := e.network.Positions[loc]; !ok {
		return nil, &MoveError{Reason: fmt.Sprintf("unknown location %q", loc)}
	}

	current := s.Route[len(s.Route)-1]
	if current != loc {
		if _, ok := e.network.Distances[domain.NewEdge(current, loc)]; !ok {
			return nil, &MoveError{Reason: fmt.Sprintf("no road between %q and %q", current, loc)}
		}
		if e.isClosed(s, current, loc) {
			return nil, &MoveError{Reason: fmt.Sprintf("road from %q to %q is closed", current, loc)}
		}
	}

	for _, c := range s.Constraints {
		if loc == c.After && !contains(s.Route, c.Before) {
			return nil, &MoveError{Reason: fmt.Sprintf("must visit %q before %q", c.Before, c.After)}
		}
	}

	if current != loc {
		s.Route = append(s.Route, loc)
	}

	// A carried package is dropped off automatically on arrival.
	if s.CarriedID != 0 {
		if pkg := s.packageByID(s.CarriedID); pkg != nil && pkg.Delivery == loc {
			pkg.Status = domain.StatusDelivered
			s.Delivered = append(s.Delivered, pkg.ID)
			s.CarriedID = 0
		}
	}

	if e.won(s) {
		e.finish(ctx, s)
	}
	return copySession(s), nil
}

// PickupPackage picks up a waiting package at the player's location.
func (e *Engine) PickupPackage(id string, packageID int) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !s.Active {
		return nil, ErrGameOver
	}
	if s.CarriedID != 0 {
		return nil, &MoveError{Reason: "already carrying a package"}
	}

	current := s.Route[len(s.Route)-1]
	pkg := s.packageByID(packageID)
	if pkg == nil || pkg.Status != domain.StatusWaiting || pkg.Pickup != current {
		return nil, &MoveError{Reason: fmt.Sprintf("package %d is not waiting at %q", packageID, current)}
	}

	pkg.Status = domain.StatusCarried
	s.CarriedID = pkg.ID
	return copySession(s), nil
}

// DeliverPackage drops the carried package at the player's location when it
// matches the package's delivery stop. Check-in already does this on arrival;
// the explicit action exists for players who picked up after arriving.
func (e *Engine) DeliverPackage(ctx context.Context, id string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !s.Active {
		return nil, ErrGameOver
	}
	if s.CarriedID == 0 {
		return nil, &MoveError{Reason: "not carrying a package"}
	}

	current := s.Route[len(s.Route)-1]
	pkg := s.packageByID(s.CarriedID)
	if pkg == nil || pkg.Delivery != current {
		return nil, &MoveError{Reason: fmt.Sprintf("package %d is not deliverable at %q", s.CarriedID, current)}
	}

	pkg.Status = domain.StatusDelivered
	s.Delivered = append(s.Delivered, pkg.ID)
	s.CarriedID = 0

	if e.won(s) {
		e.finish(ctx, s)
	}
	return copySession(s), nil
}

// CloseRandomRoad closes one more road mid-game when that keeps the game
// playable, and replans the reference route.
func (e *Engine) CloseRandomRoad(id string) (*Session, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[id]
	if !ok {
		return nil, false, ErrSessionNotFound
	}
	if !s.Active {
		return nil, false, ErrGameOver
	}

	mustConnect := make([][2]domain.Location, 0, len(s.Constraints))
	for _, c := range s.Constraints {
		mustConnect = append(mustConnect, [2]domain.Location{c.Before, c.After})
	}

	edge, ok := addClosure(e.network, s.ClosedRoads, mustConnect, e.rng)
	if !ok {
		return copySession(s), false, nil
	}
	s.ClosedRoads = append(s.ClosedRoads, edge)
	e.plan(s)
	log.Printf("road closed id=%s road=%q-%q", s.ID, edge.A, edge.B)
	return copySession(s), true, nil
}

// ReopenRandomRoad removes one random closure and replans.
func (e *Engine) ReopenRandomRoad(id string) (*Session, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[id]
	if !ok {
		return nil, false, ErrSessionNotFound
	}
	if !s.Active {
		return nil, false, ErrGameOver
	}
	if len(s.ClosedRoads) == 0 {
		return copySession(s), false, nil
	}

	i := e.rng.Intn(len(s.ClosedRoads))
	edge := s.ClosedRoads[i]
	s.ClosedRoads = append(s.ClosedRoads[:i], s.ClosedRoads[i+1:]...)
	e.plan(s)
	log.Printf("road reopened id=%s road=%q-%q", s.ID, edge.A, edge.B)
	return copySession(s), true, nil
}

func (e *Engine) isClosed(s *Session, a, b domain.Location) bool {
	for _, edge := range s.ClosedRoads {
		if edge.Touches(a, b) {
			return true
		}
	}
	return false
}

// won checks the mode's win condition.
func (e *Engine) won(s *Session) bool {
	if s.Mode == ModePackageDelivery {
		return len(s.Delivered) == len(s.Packages) && len(s.Packages) > 0
	}
	for _, loc := range e.network.MainLocations() {
		if !contains(s.Route, loc) {
			return false
		}
	}
	return true
}

// finish closes the session, scores it, and persists the leaderboard entry.
func (e *Engine) finish(ctx context.Context, s *Session) {
	// Close the loop back to the start when that road is open.
	last := s.Route[len(s.Route)-1]
	if s.Mode != ModePackageDelivery && last != s.Route[0] {
		if _, ok := e.network.Distances[domain.NewEdge(last, s.Route[0])]; ok && !e.isClosed(s, last, s.Route[0]) {
			s.Route = append(s.Route, s.Route[0])
		}
	}

	playerDistance := 0.0
	for i := 0; i+1 < len(s.Route); i++ {
		if d, ok := e.network.Distances[domain.NewEdge(s.Route[i], s.Route[i+1])]; ok {
			playerDistance += d
		}
	}

	seconds := e.now().Sub(s.StartedAt).Seconds()
	constraintsKept := true
	for _, c := range s.Constraints {
		bi := indexOfLocation(s.Route, c.Before)
		ai := indexOfLocation(s.Route, c.After)
		if bi >= 0 && ai >= 0 && bi > ai {
			constraintsKept = false
		}
	}

	results := computeScore(s.Mode, s.Planned.Distance, playerDistance, seconds, constraintsKept, len(s.Delivered), len(s.Packages))
	s.Results = &results
	s.Active = false
	log.Printf("game finished id=%s score=%d efficiency=%d dur=%.1fs", s.ID, results.Score, results.Efficiency, seconds)

	if e.board == nil {
		return
	}
	entry := ports.LeaderboardEntry{
		Player:          s.Player,
		Mode:            string(s.Mode),
		Score:           results.Score,
		Efficiency:      results.Efficiency,
		PlayerDistance:  results.PlayerDistance,
		DurationSeconds: results.DurationSeconds,
		CreatedAt:       e.now(),
	}
	if err := e.board.SaveResult(ctx, entry); err != nil {
		log.Printf("save result failed id=%s err=%v", s.ID, err)
	}
}

func (s *Session) packageByID(id int) *domain.Package {
	for i := range s.Packages {
		if s.Packages[i].ID == id {
			return &s.Packages[i]
		}
	}
	return nil
}

func contains(path []domain.Location, loc domain.Location) bool {
	return indexOfLocation(path, loc) >= 0
}

func indexOfLocation(path []domain.Location, loc domain.Location) int {
	for i, l := range path {
		if l == loc {
			return i
		}
	}
	return -1
}

func copySession(s *Session) *Session {
	out := *s
	out.Route = append([]domain.Location(nil), s.Route...)
	out.Constraints = append([]planner.Constraint(nil), s.Constraints...)
	out.ClosedRoads = append([]domain.Edge(nil), s.ClosedRoads...)
	out.Packages = append([]domain.Package(nil), s.Packages...)
	out.Delivered = append([]int(nil), s.Delivered...)
	if s.Results != nil {
		r := *s.Results
		out.Results = &r
	}
	return &out
}
