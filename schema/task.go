package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TaskTypePotentialDuplicate = "potential_duplicate"

	TaskResolutionMerged       = "merged"
	TaskResolutionNotDuplicate = "not_duplicate"
)

// Task is a server-issued unit of suspected-duplicate merge work. It is
// consumed exactly once by a resolve or merge action.
type Task struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type          string             `bson:"type" json:"type"`
	Location      *Location          `bson:"location" json:"location"`
	OtherLocation *Location          `bson:"other_location" json:"other_location"`
	Region        string             `bson:"region,omitempty" json:"region,omitempty"`
	Resolved      bool               `bson:"resolved" json:"resolved"`
	Resolution    string             `bson:"resolution,omitempty" json:"resolution,omitempty"`
	ResolvedBy    string             `bson:"resolved_by,omitempty" json:"resolved_by,omitempty"`
}
