package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LocationCollection       = "locations"
	SourceLocationCollection = "source_locations"
	MergeTaskCollection      = "merge_tasks"
	ReportCollection         = "reports"
)

// GeoJSON is the mongo-indexable point representation. Coordinates are
// ordered longitude first, the way the 2dsphere index expects them.
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

func NewPoint(longitude, latitude float64) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

type Coordinates struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Location is a canonical vaccination-site record.
type Location struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Position      *GeoJSON           `bson:"location" json:"location"`
	Address       string             `bson:"address" json:"address"`
	City          string             `bson:"city" json:"city"`
	County        string             `bson:"county" json:"county"`
	State         string             `bson:"state" json:"state"`
	Zip           string             `bson:"zip" json:"zip"`
	Website       string             `bson:"website,omitempty" json:"website,omitempty"`
	PhoneNumber   string             `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	ForcePriority bool               `bson:"force_priority" json:"force_priority"`
}

// Latitude returns the point latitude, or 0 for a record without coordinates.
func (l Location) Latitude() float64 {
	if l.Position == nil || len(l.Position.Coordinates) < 2 {
		return 0
	}
	return l.Position.Coordinates[1]
}

func (l Location) Longitude() float64 {
	if l.Position == nil || len(l.Position.Coordinates) < 2 {
		return 0
	}
	return l.Position.Coordinates[0]
}

// Candidate is a Location annotated with its distance from a reference
// coordinate. It only lives for the duration of one workflow fetch.
type Candidate struct {
	Location `bson:",inline"`
	Distance float64 `json:"distance"`
}
