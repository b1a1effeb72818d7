package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScorePerfectSpeedRun(t *testing.T) {
	r := computeScore(ModeSpeedRun, 10, 10, 0, true, 0, 0)

	assert.Equal(t, 100, r.Efficiency)
	assert.Equal(t, 100, r.Score)
	assert.Equal(t, 10.0, r.PlayerDistance)
}

func TestComputeScoreTimeDecay(t *testing.T) {
	// 60 seconds costs 30 points of time factor.
	r := computeScore(ModeSpeedRun, 10, 20, 60, true, 0, 0)

	assert.Equal(t, 50, r.Efficiency)
	// 50*0.3 efficiency + 70*0.7 time.
	assert.Equal(t, 64, r.Score)
}

func TestComputeScoreCapsEfficiency(t *testing.T) {
	// Walking less than the planner's route never scores above 100.
	r := computeScore(ModeEfficiencyChallenge, 20, 10, 0, true, 0, 0)
	assert.Equal(t, 100, r.Efficiency)
}

func TestComputeScoreZeroDistanceMeansZeroEfficiency(t *testing.T) {
	r := computeScore(ModeSpeedRun, 10, 0, 0, true, 0, 0)
	assert.Equal(t, 0, r.Efficiency)
}

func TestComputeScoreTimeFactorFloorsAtZero(t *testing.T) {
	r := computeScore(ModeSpeedRun, 10, 10, 1000, true, 0, 0)
	// Only the efficiency component survives a very slow game.
	assert.Equal(t, 30, r.Score)
}

func TestComputeScoreConstraintComponent(t *testing.T) {
	kept := computeScore(ModeComplexSupplyChain, 10, 10, 0, true, 0, 0)
	broken := computeScore(ModeComplexSupplyChain, 10, 10, 0, false, 0, 0)

	assert.Equal(t, 100, kept.Score)
	assert.Equal(t, 60, broken.Score)
	assert.False(t, broken.ConstraintsKept)
}

func TestComputeScoreDeliveryComponent(t *testing.T) {
	r := computeScore(ModePackageDelivery, 8, 8, 0, true, 2, 3)

	// 100*0.4 efficiency + 100*0.2 time + 66.7*0.4 delivery.
	assert.Equal(t, 86, r.Score)
	assert.Equal(t, 2, r.DeliveredCount)
}

func TestValidMode(t *testing.T) {
	for _, m := range []Mode{ModeSpeedRun, ModeEfficiencyChallenge, ModeComplexSupplyChain, ModeRoadClosureChallenge, ModePackageDelivery} {
		assert.True(t, ValidMode(m), "mode %q", m)
	}
	assert.False(t, ValidMode(Mode("Timed Trial")))
}
