package reconcile

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalpoint/callhub-api/schema"
	"github.com/vitalpoint/callhub-api/store"
	"github.com/vitalpoint/callhub-api/store/mocks"
)

func sourceLocation(name string, lat, lon float64) *schema.SourceLocation {
	return &schema.SourceLocation{
		ID: primitive.NewObjectID(),
		Payload: schema.ImportPayload{
			Name:      name,
			Latitude:  lat,
			Longitude: lon,
		},
	}
}

func canonical(name string, lon, lat float64) schema.Location {
	return schema.Location{
		ID:       primitive.NewObjectID(),
		Name:     name,
		Position: schema.NewPoint(lon, lat),
	}
}

func TestEngineStartPresentsItem(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCallhubStore(ctl)
	source := sourceLocation("Elm St Pharmacy", 37.77, -122.42)
	nearby := canonical("Elm Street Pharmacy", -122.4201, 37.7701)

	m.EXPECT().RandomUnmatchedSourceLocation().Return(source, nil)
	m.EXPECT().NearbyLocations(gomock.Any(), 2000, int64(50)).Return([]schema.Location{nearby}, nil)

	e := NewEngine(NewMatchMode(m), "reviewer@example.com")
	assert.Equal(t, Idle, e.State())

	assert.NoError(t, e.Start(""))
	assert.Equal(t, PresentingCandidate, e.State())
	assert.Equal(t, source.ID, e.Item().Source.ID)
	assert.NotNil(t, e.SelectedCandidate())
	assert.Equal(t, nearby.ID, e.SelectedCandidate().ID)
}

func TestEngineSkipMakesNoMutation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCallhubStore(ctl)
	first := sourceLocation("first", 37.77, -122.42)
	second := sourceLocation("second", 37.78, -122.43)

	m.EXPECT().RandomUnmatchedSourceLocation().Return(first, nil)
	m.EXPECT().RandomUnmatchedSourceLocation().Return(second, nil)
	m.EXPECT().NearbyLocations(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Location{}, nil).Times(2)

	e := NewEngine(NewMatchMode(m), "reviewer@example.com")
	assert.NoError(t, e.Start(""))
	assert.Equal(t, first.ID, e.Item().Source.ID)

	// no mutating method carries an expectation; any store write here
	// fails the test
	assert.NoError(t, e.HandleKey('4'))
	assert.Equal(t, PresentingCandidate, e.State())
	assert.Equal(t, second.ID, e.Item().Source.ID)
}

func TestEngineMatchCommitAdvances(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCallhubStore(ctl)
	first := sourceLocation("first", 37.77, -122.42)
	second := sourceLocation("second", 37.78, -122.43)
	candidate := canonical("candidate", -122.4201, 37.7701)

	m.EXPECT().RandomUnmatchedSourceLocation().Return(first, nil)
	m.EXPECT().RandomUnmatchedSourceLocation().Return(second, nil)
	m.EXPECT().NearbyLocations(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Location{candidate}, nil)
	m.EXPECT().NearbyLocations(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Location{}, nil)
	m.EXPECT().MatchSourceLocation(first.ID, candidate.ID).Return(nil)

	e := NewEngine(NewMatchMode(m), "reviewer@example.com")
	assert.NoError(t, e.Start(""))
	assert.NoError(t, e.HandleKey('1'))
	assert.Equal(t, PresentingCandidate, e.State())
	assert.Equal(t, second.ID, e.Item().Source.ID)
}

func TestEngineUndoRestoresPriorItem(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCallhubStore(ctl)
	first := sourceLocation("first", 37.77, -122.42)
	second := sourceLocation("second", 37.78, -122.43)
	candidate := canonical("candidate", -122.4201, 37.7701)

	m.EXPECT().RandomUnmatchedSourceLocation().Return(first, nil)
	m.EXPECT().RandomUnmatchedSourceLocation().Return(second, nil)
	m.EXPECT().NearbyLocations(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Location{candidate}, nil)
	m.EXPECT().NearbyLocations(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Location{}, nil)
	m.EXPECT().MatchSourceLocation(first.ID, candidate.ID).Return(nil)
	// exactly one compensating call
	m.EXPECT().UnmatchSourceLocation(first.ID).Return(nil).Times(1)

	e := NewEngine(NewMatchMode(m), "reviewer@example.com")
	assert.NoError(t, e.Start(""))
	assert.NoError(t, e.HandleKey('1'))
	assert.Equal(t, second.ID, e.Item().Source.ID)

	assert.NoError(t, e.HandleKey('5'))
	assert.Equal(t, PresentingCandidate, e.State())
	assert.Equal(t, first.ID, e.Item().Source.ID)
	assert.Equal(t, candidate.ID, e.SelectedCandidate().ID)
}

func TestEngineUndoWithEmptyHistory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCallhubStore(ctl)
	m.EXPECT().RandomUnmatchedSourceLocation().Return(sourceLocation("first", 37.77, -122.42), nil)
	m.EXPECT().NearbyLocations(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Location{}, nil)

	e := NewEngine(NewMatchMode(m), "reviewer@example.com")
	assert.NoError(t, e.Start(""))

	assert.Equal(t, ErrNothingToUndo, e.Undo())
	assert.Equal(t, PresentingCandidate, e.State())
}

func TestEngineCommitFailureIsRecoverable(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCallhubStore(ctl)
	source := sourceLocation("first", 37.77, -122.42)
	candidate := canonical("candidate", -122.4201, 37.7701)
	writeErr := &store.WriteError{Op: "match source location"}

	m.EXPECT().RandomUnmatchedSourceLocation().Return(source, nil)
	m.EXPECT().NearbyLocations(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Location{candidate}, nil)
	m.EXPECT().MatchSourceLocation(source.ID, candidate.ID).Return(writeErr)

	e := NewEngine(NewMatchMode(m), "reviewer@example.com")
	assert.NoError(t, e.Start(""))

	assert.Error(t, e.HandleKey('1'))
	// reviewer stays on the same item and may retry or skip
	assert.Equal(t, PresentingCandidate, e.State())
	assert.Equal(t, source.ID, e.Item().Source.ID)
	assert.Equal(t, writeErr, e.Err())
}

func TestEngineFetchFailureEntersErrorState(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCallhubStore(ctl)
	m.EXPECT().RandomUnmatchedSourceLocation().Return(nil, store.ErrNoSourceLocation)

	e := NewEngine(NewMatchMode(m), "reviewer@example.com")
	assert.Error(t, e.Start(""))
	assert.Equal(t, ErrorState, e.State())
	assert.Equal(t, store.ErrNoSourceLocation, e.Err())
}

func TestEngineIgnoresUnknownKeys(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCallhubStore(ctl)
	m.EXPECT().RandomUnmatchedSourceLocation().Return(sourceLocation("first", 37.77, -122.42), nil)
	m.EXPECT().NearbyLocations(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Location{}, nil)

	e := NewEngine(NewMatchMode(m), "reviewer@example.com")
	assert.NoError(t, e.Start(""))

	item := e.Item()
	assert.NoError(t, e.HandleKey('x'))
	assert.Equal(t, item, e.Item())
	assert.Equal(t, PresentingCandidate, e.State())
}

func TestEngineMergeModeUndoUnsupported(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCallhubStore(ctl)
	e := NewEngine(NewMergeMode(m, "", ""), "reviewer@example.com")

	assert.Equal(t, ErrUndoUnsupported, e.Undo())
}
