package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/vitalpoint/callhub-api/schema"
)

func TestDistanceQueryShape(t *testing.T) {
	q := distanceQuery(2000, schema.Coordinates{Latitude: 37.7749, Longitude: -122.4194})

	raw, err := bson.Marshal(q)
	assert.NoError(t, err)

	var decoded bson.M
	assert.NoError(t, bson.Unmarshal(raw, &decoded))

	near := decoded["location"].(bson.M)["$nearSphere"].(bson.M)
	geometry := near["$geometry"].(bson.M)

	assert.Equal(t, "Point", geometry["type"])
	// GeoJSON is longitude first
	coords := geometry["coordinates"].(bson.A)
	assert.Equal(t, -122.4194, coords[0])
	assert.Equal(t, 37.7749, coords[1])
	assert.EqualValues(t, 2000, geometry["$maxDistance"])
}

func TestDistanceQueryRadiusBound(t *testing.T) {
	q := distanceQuery(500, schema.Coordinates{})

	raw, err := bson.Marshal(q)
	assert.NoError(t, err)

	var decoded bson.M
	assert.NoError(t, bson.Unmarshal(raw, &decoded))

	geometry := decoded["location"].(bson.M)["$nearSphere"].(bson.M)["$geometry"].(bson.M)
	assert.EqualValues(t, 500, geometry["$maxDistance"])
}
