package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Caller experience tiers. Trainee reports are always QA sampled,
// Journeyman reports probabilistically.
const (
	RoleTrainee    = "Trainee"
	RoleJourneyman = "Journeyman"
)

// Availability tags a caller can report for a location.
const (
	AvailSkip              = "Skip: call back later"
	AvailWrongNumber       = "No: incorrect contact information"
	AvailNeverASite        = "No: will never be a vaccination site"
	AvailPermanentlyClosed = "No: location permanently closed"
	AvailNotOpenToPublic   = "No: not open to the public"
	AvailWalkInsAccepted   = "Yes: walk-ins accepted"
)

// VaccineOther is the free-form vaccine tag that always needs review.
const VaccineOther = "Other"

// Report is a single call outcome submitted by a caller. LocationIDs is
// a list because the backing store links records that way; a report
// references exactly one location in practice.
type Report struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LocationIDs            []string           `bson:"location_id" json:"Location"`
	Availability           []string           `bson:"availability" json:"Availability"`
	Notes                  string             `bson:"notes,omitempty" json:"Notes,omitempty"`
	InternalNotes          string             `bson:"internal_notes,omitempty" json:"Internal Notes,omitempty"`
	InternalNotesUnchanged bool               `bson:"-" json:"internal_notes_unchanged"`
	UnexpectedMinAge       bool               `bson:"unexpected_min_age,omitempty" json:"unexpected_min_age,omitempty"`
	VaccinesOffered        []string           `bson:"vaccines_offered,omitempty" json:"vaccines_offered,omitempty"`
	PlannedClosure         string             `bson:"planned_closure,omitempty" json:"planned_closure,omitempty"`
	WebBanked              bool               `bson:"web_banked" json:"web_banked"`

	// Set server side before commit.
	PendingReview bool     `bson:"is_pending_review" json:"is_pending_review"`
	ReportedBy    string   `bson:"reported_by" json:"reported_by"`
	ReporterRoles []string `bson:"reporter_roles,omitempty" json:"-"`
	Timestamp     int64    `bson:"ts" json:"ts"`
}

// HasAvailability reports whether the given tag was selected.
func (r Report) HasAvailability(tag string) bool {
	for _, t := range r.Availability {
		if t == tag {
			return true
		}
	}
	return false
}

// OffersVaccine reports whether the given vaccine tag was selected.
func (r Report) OffersVaccine(tag string) bool {
	for _, v := range r.VaccinesOffered {
		if v == tag {
			return true
		}
	}
	return false
}
