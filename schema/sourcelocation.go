package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImportContact is one contact method carried inside an imported payload.
type ImportContact struct {
	Contact string `bson:"contact,omitempty" json:"contact,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

// ImportAddress holds the raw address parts of an imported payload.
type ImportAddress struct {
	Street string `bson:"street,omitempty" json:"street,omitempty"`
	City   string `bson:"city,omitempty" json:"city,omitempty"`
	State  string `bson:"state,omitempty" json:"state,omitempty"`
	Zip    string `bson:"zip,omitempty" json:"zip,omitempty"`
}

// ImportPayload is the nested shape a source location arrives in from the
// upstream import feed. The reconciliation workflow normalizes it into a
// flat summary before showing it to a reviewer.
type ImportPayload struct {
	Name      string          `bson:"name" json:"name"`
	Latitude  float64         `bson:"latitude" json:"latitude"`
	Longitude float64         `bson:"longitude" json:"longitude"`
	Contacts  []ImportContact `bson:"contact,omitempty" json:"contact,omitempty"`
	Address   *ImportAddress  `bson:"address,omitempty" json:"address,omitempty"`
}

// SourceLocation is an unreconciled, possibly duplicate, imported record.
// A reviewer either matches it to a canonical Location, promotes it into
// a new one, or dismisses it.
type SourceLocation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SourceID  string             `bson:"source_id" json:"source_id"`
	Payload   ImportPayload      `bson:"import_json" json:"import_json"`
	Matched   bool               `bson:"matched" json:"matched"`
	MatchedID string             `bson:"matched_id,omitempty" json:"matched_id,omitempty"`
	Rejected  bool               `bson:"rejected" json:"rejected"`
}
