package geo

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalpoint/callhub-api/schema"
	"github.com/vitalpoint/callhub-api/store/mocks"
)

func location(name string, lon, lat float64) schema.Location {
	return schema.Location{
		ID:       primitive.NewObjectID(),
		Name:     name,
		Position: schema.NewPoint(lon, lat),
	}
}

func TestRankCandidatesSortedAscending(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	center := schema.Coordinates{Latitude: 37.7749, Longitude: -122.4194}
	far := location("far", -122.5, 37.9)
	near := location("near", -122.4195, 37.7750)

	m := mocks.NewMockCallhubStore(ctl)
	m.EXPECT().NearbyLocations(center, 2000, int64(50)).Return([]schema.Location{far, near}, nil)

	candidates, err := RankCandidates(m, center, 2000, 50)
	assert.NoError(t, err)
	assert.Len(t, candidates, 2)
	assert.Equal(t, "near", candidates[0].Name)
	assert.Equal(t, "far", candidates[1].Name)
	assert.True(t, candidates[0].Distance <= candidates[1].Distance)
}

func TestRankCandidatesStableOnTies(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	center := schema.Coordinates{Latitude: 37.7749, Longitude: -122.4194}
	// identical coordinates, so identical distances
	first := location("first", -122.42, 37.775)
	second := location("second", -122.42, 37.775)
	third := location("third", -122.42, 37.775)

	m := mocks.NewMockCallhubStore(ctl)
	m.EXPECT().NearbyLocations(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Location{first, second, third}, nil)

	candidates, err := RankCandidates(m, center, 2000, 50)
	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{candidates[0].Name, candidates[1].Name, candidates[2].Name})
}

func TestRankCandidatesRounding(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	center := schema.Coordinates{Latitude: 37.7749, Longitude: -122.4194}
	loc := location("precise", -122.41948888, 37.77495555)

	m := mocks.NewMockCallhubStore(ctl)
	m.EXPECT().NearbyLocations(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Location{loc}, nil)

	candidates, err := RankCandidates(m, center, 2000, 50)
	assert.NoError(t, err)

	c := candidates[0]
	assert.Equal(t, -122.4195, c.Position.Coordinates[0])
	assert.Equal(t, 37.775, c.Position.Coordinates[1])
	assert.Equal(t, RoundTo(c.Distance, 2), c.Distance)
}

func TestRankCandidatesPropagatesLookupError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	lookupErr := errors.New("store unavailable")

	m := mocks.NewMockCallhubStore(ctl)
	m.EXPECT().NearbyLocations(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, lookupErr)

	candidates, err := RankCandidates(m, schema.Coordinates{}, 2000, 50)
	assert.Nil(t, candidates)
	assert.Equal(t, lookupErr, err)
}
