package reconcile

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalpoint/callhub-api/geo"
	"github.com/vitalpoint/callhub-api/schema"
	"github.com/vitalpoint/callhub-api/store"
)

var (
	ErrTaskIncomplete = errors.New("merge task is missing one of its locations")
	ErrMergeNotReady  = errors.New("merge needs both location ids and the task id")
	ErrMergeNoUndo    = errors.New("merge decisions cannot be undone")
)

// MergeStore is the slice of the store merge mode mutates.
type MergeStore interface {
	store.MergeTasks
	GetLocation(id primitive.ObjectID) (*schema.Location, error)
	MergeLocations(winnerID, loserID primitive.ObjectID) error
}

// MergeMode resolves server-issued potential-duplicate tasks: a pair of
// canonical locations where one wins the merge, or the pair is marked
// not-a-duplicate. Merges fold one record into another, so this mode
// never supports undo.
type MergeMode struct {
	store  MergeStore
	query  string
	region string
}

func NewMergeMode(s MergeStore, query, region string) *MergeMode {
	return &MergeMode{store: s, query: query, region: region}
}

func (m *MergeMode) Name() string { return "merge" }

func (m *MergeMode) SupportsRedo() bool { return false }

// FetchWorkItem requests one duplicate task. The second location is
// wrapped as the sole candidate, annotated with its distance from the
// first. Distinct failures: store lookup error, queue exhausted
// (store.ErrTaskQueueEmpty), or a task missing a location.
func (m *MergeMode) FetchWorkItem(forcedID string) (*WorkItem, error) {
	task, err := m.store.RequestMergeTask(m.query, m.region)
	if err != nil {
		return nil, err
	}
	if task.Location == nil || task.OtherLocation == nil {
		return nil, fmt.Errorf("task %s: %w", task.ID.Hex(), ErrTaskIncomplete)
	}

	// tasks embed the pair as issued; re-read both records so the
	// reviewer compares what the store holds now
	task.Location = m.refresh(task.Location)
	task.OtherLocation = m.refresh(task.OtherLocation)

	first := task.Location
	other := *task.OtherLocation
	candidate := schema.Candidate{
		Location: other,
		Distance: geo.RoundTo(geo.Distance(
			first.Latitude(), first.Longitude(),
			other.Latitude(), other.Longitude(),
		), 2),
	}

	return &WorkItem{
		Task:       task,
		Candidates: []schema.Candidate{candidate},
		Debug:      fmt.Sprintf("task %s: %q / %q", task.ID.Hex(), first.Name, other.Name),
	}, nil
}

// refresh re-reads a task's embedded location. A failed lookup keeps
// the embedded copy; the merge still targets by id.
func (m *MergeMode) refresh(loc *schema.Location) *schema.Location {
	current, err := m.store.GetLocation(loc.ID)
	if err != nil {
		log.WithError(err).WithField("prefix", "reconcile").Warnf("refresh location %s, presenting stored copy", loc.ID.Hex())
		return loc
	}
	return current
}

func (m *MergeMode) Apply(action Action, item *WorkItem, candidate *schema.Candidate, reviewer string) (*Commit, error) {
	task := item.Task

	switch action {
	case ActionMergeFirst, ActionMergeSecond:
		if task == nil || task.ID.IsZero() || task.Location == nil || task.OtherLocation == nil ||
			task.Location.ID.IsZero() || task.OtherLocation.ID.IsZero() {
			return nil, ErrMergeNotReady
		}

		winner, loser := task.Location.ID, task.OtherLocation.ID
		if action == ActionMergeSecond {
			winner, loser = loser, winner
		}

		if err := m.store.MergeLocations(winner, loser); err != nil {
			return nil, err
		}
		if err := m.store.ResolveMergeTask(task.ID, schema.TaskResolutionMerged, reviewer); err != nil {
			return nil, err
		}
		return &Commit{Action: action, LocationID: winner, TaskID: task.ID}, nil

	case ActionNotDuplicate:
		if task == nil || task.ID.IsZero() {
			return nil, ErrMergeNotReady
		}
		if err := m.store.ResolveMergeTask(task.ID, schema.TaskResolutionNotDuplicate, reviewer); err != nil {
			return nil, err
		}
		return &Commit{Action: action, TaskID: task.ID}, nil
	}

	return nil, fmt.Errorf("merge mode cannot apply action %d", action)
}

func (m *MergeMode) Compensate(commit *Commit) error {
	return ErrMergeNoUndo
}
