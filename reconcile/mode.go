package reconcile

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalpoint/callhub-api/schema"
)

// Action is a reviewer decision resolved from a key press. Which actions
// are meaningful depends on the active mode.
type Action int

const (
	ActionNone Action = iota

	// match mode
	ActionMatch
	ActionDismiss
	ActionCreate
	ActionUndo

	// merge mode
	ActionMergeFirst
	ActionMergeSecond
	ActionNotDuplicate

	// both
	ActionSkip
	ActionRestart
)

// Keybind pairs the keys that trigger an action with its legend label.
type Keybind struct {
	Keys  string
	Label string
}

// WorkItem is one unit of reconciliation work handed to a reviewer.
// Match mode fills Source and Summary, merge mode fills Task; both carry
// the candidate list and a raw debug representation.
type WorkItem struct {
	Source     *schema.SourceLocation
	Summary    SourceSummary
	Task       *schema.Task
	Candidates []schema.Candidate
	Debug      string
}

// Commit records a committed store mutation with enough context to issue
// the compensating write on undo.
type Commit struct {
	Action     Action
	SourceID   primitive.ObjectID
	LocationID primitive.ObjectID
	TaskID     primitive.ObjectID
}

// Mode is one of the two reconciliation strategies: 1:1 matching of
// source locations against canonical records, or pairwise merging of
// suspected duplicates. A session selects its mode once and never
// switches.
type Mode interface {
	Name() string

	// FetchWorkItem retrieves the next unit of work, or the one forced
	// by id when forcedID is non-empty.
	FetchWorkItem(forcedID string) (*WorkItem, error)

	// ResolveKey maps a raw key press to an action. It is pure: no
	// store access, no rendering, so dispatch is testable on its own.
	ResolveKey(key rune, hasCandidate bool) Action

	// Apply performs the store mutation for a committing action and
	// returns the commit record used for undo.
	Apply(action Action, item *WorkItem, candidate *schema.Candidate, reviewer string) (*Commit, error)

	// Compensate reverses a previously applied commit.
	Compensate(commit *Commit) error

	SupportsRedo() bool
	Legend() []Keybind
}
