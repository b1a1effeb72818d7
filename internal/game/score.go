package game

// Mode selects the rules and scoring weights of one game instance.
type Mode string

const (
	ModeSpeedRun             Mode = "Speed Run"
	ModeEfficiencyChallenge  Mode = "Efficiency Challenge"
	ModeComplexSupplyChain   Mode = "Complex Supply Chain"
	ModeRoadClosureChallenge Mode = "Road Closure Challenge"
	ModePackageDelivery      Mode = "Package Delivery"
)

// Weights splits the final score across the factors a mode rewards.
// The factors of each mode sum to 1.
type Weights struct {
	Efficiency  float64
	Time        float64
	Constraints float64
	Delivery    float64
}

var scoringWeights = map[Mode]Weights{
	ModeSpeedRun:             {Efficiency: 0.3, Time: 0.7},
	ModeEfficiencyChallenge:  {Efficiency: 0.8, Time: 0.2},
	ModeComplexSupplyChain:   {Efficiency: 0.4, Constraints: 0.4, Time: 0.2},
	ModeRoadClosureChallenge: {Efficiency: 0.5, Time: 0.5},
	ModePackageDelivery:      {Efficiency: 0.4, Delivery: 0.4, Time: 0.2},
}

// ValidMode reports whether the mode is one of the configured game modes.
func ValidMode(m Mode) bool {
	_, ok := scoringWeights[m]
	return ok
}

// Results summarizes one finished game.
type Results struct {
	DurationSeconds  float64
	Efficiency       int
	Score            int
	OptimalDistance  float64
	PlayerDistance   float64
	ScoreComponents  map[string]float64
	DeliveredCount   int
	ConstraintsKept  bool
	PlannedLocations int
}

// computeScore prices a finished game: efficiency is the planner's distance
// over the player's, capped at 100; the time factor decays at half a point per
// second.
func computeScore(mode Mode, optimalDistance, playerDistance, seconds float64, constraintsKept bool, delivered, totalPackages int) Results {
	efficiency := 0
	if playerDistance > 0 && optimalDistance > 0 {
		efficiency = int(optimalDistance / playerDistance * 100)
		if efficiency > 100 {
			efficiency = 100
		}
	}

	timeFactor := 100 - seconds/2
	if timeFactor < 0 {
		timeFactor = 0
	}

	w := scoringWeights[mode]
	components := map[string]float64{
		"efficiency": float64(efficiency) * w.Efficiency,
		"time":       timeFactor * w.Time,
	}

	if mode == ModeComplexSupplyChain {
		constraintFactor := 0.0
		if constraintsKept {
			constraintFactor = 100
		}
		components["constraints"] = constraintFactor * w.Constraints
	}
	if mode == ModePackageDelivery {
		deliveryPercent := 0.0
		if totalPackages > 0 {
			deliveryPercent = float64(delivered) / float64(totalPackages) * 100
			if deliveryPercent > 100 {
				deliveryPercent = 100
			}
		}
		components["delivery"] = deliveryPercent * w.Delivery
	}

	score := 0.0
	for _, v := range components {
		score += v
	}
	final := int(score)
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}

	return Results{
		DurationSeconds: seconds,
		Efficiency:      efficiency,
		Score:           final,
		OptimalDistance: optimalDistance,
		PlayerDistance:  playerDistance,
		ScoreComponents: components,
		DeliveredCount:  delivered,
		ConstraintsKept: constraintsKept,
	}
}
