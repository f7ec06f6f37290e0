package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalpoint/callhub-api/schema"
)

func TestClassifyCleanReport(t *testing.T) {
	verdict := Classify(schema.Report{
		Availability: []string{"Yes: appointment required"},
		Notes:        "no contact info here",
	})

	assert.Empty(t, verdict.BlockingIssues)
	assert.Empty(t, verdict.WarningIssues)
	assert.Empty(t, verdict.ReviewReasons)
	assert.False(t, verdict.RequiresReview())
	assert.False(t, verdict.Blocked())
}

func TestClassifyPlannedClosureFormat(t *testing.T) {
	verdict := Classify(schema.Report{PlannedClosure: "June 1st"})
	assert.Len(t, verdict.BlockingIssues, 1)

	verdict = Classify(schema.Report{PlannedClosure: "2021-06-01"})
	assert.Empty(t, verdict.BlockingIssues)
}

func TestClassifyContactInfoInNotes(t *testing.T) {
	verdict := Classify(schema.Report{Notes: "call me at 555-123-4567"})
	assert.Len(t, verdict.WarningIssues, 1)
	assert.Len(t, verdict.ReviewReasons, 1)
	assert.True(t, verdict.RequiresReview())
	assert.False(t, verdict.Blocked())

	for _, notes := range []string{
		"reach out to bob@example.com please",
		"(555) 123 4567 is the scheduler",
		"+1 555.123.4567",
	} {
		verdict = Classify(schema.Report{Notes: notes})
		assert.Len(t, verdict.WarningIssues, 1, notes)
	}

	verdict = Classify(schema.Report{Notes: "no contact info here"})
	assert.Empty(t, verdict.WarningIssues)
	assert.Empty(t, verdict.ReviewReasons)
}

func TestClassifyExplanationRequiredTags(t *testing.T) {
	verdict := Classify(schema.Report{
		Availability:           []string{schema.AvailNeverASite},
		InternalNotesUnchanged: true,
	})
	assert.Len(t, verdict.BlockingIssues, 1)
	assert.Empty(t, verdict.WarningIssues)

	// edited internal notes satisfy the explanation requirement
	verdict = Classify(schema.Report{
		Availability:           []string{schema.AvailNeverASite},
		InternalNotesUnchanged: false,
	})
	assert.Empty(t, verdict.BlockingIssues)
}

func TestClassifyWalkInAlwaysReviewed(t *testing.T) {
	// walk-ins sits in both sets: blocking when unexplained, and
	// review-listed either way
	verdict := Classify(schema.Report{
		Availability:           []string{schema.AvailWalkInsAccepted},
		InternalNotesUnchanged: true,
	})
	assert.Len(t, verdict.BlockingIssues, 1)
	assert.Contains(t, verdict.ReviewReasons, reasonWalkIn)

	verdict = Classify(schema.Report{
		Availability: []string{schema.AvailWalkInsAccepted},
	})
	assert.Empty(t, verdict.BlockingIssues)
	assert.Contains(t, verdict.ReviewReasons, reasonWalkIn)
}

func TestClassifyOtherVaccine(t *testing.T) {
	verdict := Classify(schema.Report{
		VaccinesOffered: []string{"Pfizer", schema.VaccineOther},
	})
	assert.Contains(t, verdict.ReviewReasons, reasonOtherVaccine)
	assert.Empty(t, verdict.BlockingIssues)

	verdict = Classify(schema.Report{
		VaccinesOffered:        []string{schema.VaccineOther},
		InternalNotesUnchanged: true,
	})
	assert.Contains(t, verdict.ReviewReasons, reasonOtherVaccine)
	assert.Len(t, verdict.BlockingIssues, 1)
}

func TestClassifyMultipleRulesFire(t *testing.T) {
	verdict := Classify(schema.Report{
		Availability:           []string{schema.AvailPermanentlyClosed, schema.AvailWrongNumber},
		Notes:                  "try 555-123-4567",
		PlannedClosure:         "soon",
		InternalNotesUnchanged: true,
	})

	assert.Len(t, verdict.BlockingIssues, 3)
	assert.Len(t, verdict.WarningIssues, 1)
	assert.True(t, verdict.Blocked())
}

func TestClassifyWebBankedClearsReviewReasonsOnly(t *testing.T) {
	verdict := Classify(schema.Report{
		Availability:           []string{schema.AvailWalkInsAccepted},
		Notes:                  "call 555-123-4567",
		PlannedClosure:         "bad date",
		VaccinesOffered:        []string{schema.VaccineOther},
		InternalNotesUnchanged: true,
		WebBanked:              true,
	})

	assert.Empty(t, verdict.ReviewReasons)
	assert.NotEmpty(t, verdict.BlockingIssues)
	assert.NotEmpty(t, verdict.WarningIssues)
}
