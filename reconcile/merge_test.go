package reconcile

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalpoint/callhub-api/schema"
	"github.com/vitalpoint/callhub-api/store"
	"github.com/vitalpoint/callhub-api/store/mocks"
)

func duplicateTask() *schema.Task {
	first := canonical("Main St Clinic", -122.42, 37.775)
	second := canonical("Clinic on Main", -122.421, 37.776)
	return &schema.Task{
		ID:            primitive.NewObjectID(),
		Type:          schema.TaskTypePotentialDuplicate,
		Location:      &first,
		OtherLocation: &second,
	}
}

func TestMergeModeFetchWrapsSecondLocation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	task := duplicateTask()
	m := mocks.NewMockCallhubStore(ctl)
	m.EXPECT().RequestMergeTask("clinic", "CA").Return(task, nil)
	m.EXPECT().GetLocation(task.Location.ID).Return(task.Location, nil)
	m.EXPECT().GetLocation(task.OtherLocation.ID).Return(task.OtherLocation, nil)

	item, err := NewMergeMode(m, "clinic", "CA").FetchWorkItem("")
	assert.NoError(t, err)
	assert.Equal(t, task.ID, item.Task.ID)
	assert.Len(t, item.Candidates, 1)
	assert.Equal(t, task.OtherLocation.ID, item.Candidates[0].ID)
	assert.True(t, item.Candidates[0].Distance > 0)
}

func TestMergeModeFetchRefreshesPair(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	task := duplicateTask()
	renamed := *task.OtherLocation
	renamed.Name = "Clinic on Main (rebranded)"

	m := mocks.NewMockCallhubStore(ctl)
	m.EXPECT().RequestMergeTask("", "").Return(task, nil)
	m.EXPECT().GetLocation(task.Location.ID).Return(task.Location, nil)
	m.EXPECT().GetLocation(renamed.ID).Return(&renamed, nil)

	item, err := NewMergeMode(m, "", "").FetchWorkItem("")
	assert.NoError(t, err)
	assert.Equal(t, "Clinic on Main (rebranded)", item.Candidates[0].Name)
	assert.Equal(t, "Clinic on Main (rebranded)", item.Task.OtherLocation.Name)
}

func TestMergeModeFetchKeepsEmbeddedCopyOnLookupFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	task := duplicateTask()
	m := mocks.NewMockCallhubStore(ctl)
	m.EXPECT().RequestMergeTask("", "").Return(task, nil)
	m.EXPECT().GetLocation(task.Location.ID).Return(nil, store.ErrLocationNotFound)
	m.EXPECT().GetLocation(task.OtherLocation.ID).Return(nil, store.ErrLocationNotFound)

	item, err := NewMergeMode(m, "", "").FetchWorkItem("")
	assert.NoError(t, err)
	assert.Equal(t, "Main St Clinic", item.Task.Location.Name)
	assert.Equal(t, "Clinic on Main", item.Candidates[0].Name)
}

func TestMergeModeFetchDistinctFailures(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCallhubStore(ctl)
	mode := NewMergeMode(m, "", "")

	// queue exhausted
	m.EXPECT().RequestMergeTask("", "").Return(nil, store.ErrTaskQueueEmpty)
	_, err := mode.FetchWorkItem("")
	assert.Equal(t, store.ErrTaskQueueEmpty, err)

	// store lookup error
	lookupErr := &store.LookupError{Op: "request merge task", Err: errors.New("down")}
	m.EXPECT().RequestMergeTask("", "").Return(nil, lookupErr)
	_, err = mode.FetchWorkItem("")
	assert.Equal(t, lookupErr, err)

	// task missing a location
	broken := duplicateTask()
	broken.OtherLocation = nil
	m.EXPECT().RequestMergeTask("", "").Return(broken, nil)
	_, err = mode.FetchWorkItem("")
	assert.True(t, errors.Is(err, ErrTaskIncomplete))
}

func TestMergeModeFirstWins(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	task := duplicateTask()
	m := mocks.NewMockCallhubStore(ctl)
	m.EXPECT().MergeLocations(task.Location.ID, task.OtherLocation.ID).Return(nil)
	m.EXPECT().ResolveMergeTask(task.ID, schema.TaskResolutionMerged, "reviewer@example.com").Return(nil)

	commit, err := NewMergeMode(m, "", "").Apply(ActionMergeFirst, &WorkItem{Task: task}, nil, "reviewer@example.com")
	assert.NoError(t, err)
	assert.Equal(t, task.Location.ID, commit.LocationID)
	assert.Equal(t, task.ID, commit.TaskID)
}

func TestMergeModeSecondWinsSwapsPair(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	task := duplicateTask()
	m := mocks.NewMockCallhubStore(ctl)
	m.EXPECT().MergeLocations(task.OtherLocation.ID, task.Location.ID).Return(nil)
	m.EXPECT().ResolveMergeTask(task.ID, schema.TaskResolutionMerged, "reviewer@example.com").Return(nil)

	commit, err := NewMergeMode(m, "", "").Apply(ActionMergeSecond, &WorkItem{Task: task}, nil, "reviewer@example.com")
	assert.NoError(t, err)
	assert.Equal(t, task.OtherLocation.ID, commit.LocationID)
}

func TestMergeModeNotDuplicateRecordsReviewer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	task := duplicateTask()
	m := mocks.NewMockCallhubStore(ctl)
	m.EXPECT().ResolveMergeTask(task.ID, schema.TaskResolutionNotDuplicate, "reviewer@example.com").Return(nil)

	commit, err := NewMergeMode(m, "", "").Apply(ActionNotDuplicate, &WorkItem{Task: task}, nil, "reviewer@example.com")
	assert.NoError(t, err)
	assert.Equal(t, task.ID, commit.TaskID)
}

func TestMergeModeNotDuplicateWithoutTask(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCallhubStore(ctl)
	_, err := NewMergeMode(m, "", "").Apply(ActionNotDuplicate, &WorkItem{}, nil, "reviewer@example.com")
	assert.Equal(t, ErrMergeNotReady, err)
}

func TestMergeModeRequiresCompletePair(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCallhubStore(ctl)
	task := duplicateTask()
	task.OtherLocation = &schema.Location{} // missing id

	_, err := NewMergeMode(m, "", "").Apply(ActionMergeFirst, &WorkItem{Task: task}, nil, "reviewer@example.com")
	assert.Equal(t, ErrMergeNotReady, err)
}

func TestMergeModeCompensateRefuses(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCallhubStore(ctl)
	err := NewMergeMode(m, "", "").Compensate(&Commit{Action: ActionMergeFirst})
	assert.Equal(t, ErrMergeNoUndo, err)
}
