package triage

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalpoint/callhub-api/schema"
)

func TestSamplerTraineeAlwaysSampled(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(1)))

	for i := 0; i < 1000; i++ {
		assert.True(t, s.RequiresSampling([]string{schema.RoleTrainee}))
	}
}

func TestSamplerTraineeWinsOverJourneyman(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(1)))

	for i := 0; i < 100; i++ {
		assert.True(t, s.RequiresSampling([]string{schema.RoleJourneyman, schema.RoleTrainee}))
	}
}

func TestSamplerJourneymanRate(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(42)))

	const trials = 100000
	sampled := 0
	for i := 0; i < trials; i++ {
		if s.RequiresSampling([]string{schema.RoleJourneyman}) {
			sampled++
		}
	}

	rate := float64(sampled) / trials
	assert.InDelta(t, journeymanSampleRate, rate, 0.01)
}

func TestSamplerOtherRolesNeverSampled(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(7)))

	for i := 0; i < 1000; i++ {
		assert.False(t, s.RequiresSampling([]string{"Captain"}))
		assert.False(t, s.RequiresSampling(nil))
	}
}
