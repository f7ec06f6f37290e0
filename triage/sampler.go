package triage

import (
	"math/rand"
	"time"

	"github.com/vitalpoint/callhub-api/schema"
)

const journeymanSampleRate = 0.15

// Sampler decides whether a report gets pulled into QA review based on
// the caller's experience tier. The random source is injectable so the
// probabilistic draw is reproducible in tests.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{rng: rng}
}

// RequiresSampling returns true when the caller's roles force the report
// into the QA queue: trainees are sampled on every submission, journeymen
// on a 15% independent draw per call. Other roles are never auto-sampled.
func (s *Sampler) RequiresSampling(roles []string) bool {
	for _, role := range roles {
		if role == schema.RoleTrainee {
			return true
		}
	}
	for _, role := range roles {
		if role == schema.RoleJourneyman {
			return s.rng.Float64() < journeymanSampleRate
		}
	}
	return false
}
