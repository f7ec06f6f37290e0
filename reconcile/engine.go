package reconcile

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/vitalpoint/callhub-api/schema"
)

// State of a reviewer session.
type State int

const (
	Idle State = iota
	AwaitingItem
	PresentingCandidate
	Committing
	ErrorState
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingItem:
		return "awaiting-item"
	case PresentingCandidate:
		return "presenting-candidate"
	case Committing:
		return "committing"
	case ErrorState:
		return "error"
	}
	return "unknown"
}

// Only single-level undo is exercised through the keybind; the stack is
// bounded so a long session cannot grow it without limit.
const maxUndoDepth = 8

var (
	ErrUndoUnsupported = errors.New("this mode does not support undo")
	ErrNothingToUndo   = errors.New("no committed decision to undo")
)

type snapshot struct {
	item     *WorkItem
	selected int
	commit   *Commit
}

// Engine drives one reviewer session: it holds the current work item and
// focused candidate, a bounded undo history, and routes key presses to
// the active mode. Each session owns its own Engine; it is not shared
// across goroutines.
type Engine struct {
	mode     Mode
	reviewer string

	state    State
	item     *WorkItem
	selected int
	history  []snapshot
	lastErr  error
}

func NewEngine(mode Mode, reviewer string) *Engine {
	return &Engine{
		mode:     mode,
		reviewer: reviewer,
		state:    Idle,
		selected: -1,
	}
}

func (e *Engine) Mode() Mode       { return e.mode }
func (e *Engine) State() State     { return e.state }
func (e *Engine) Item() *WorkItem  { return e.item }
func (e *Engine) Err() error       { return e.lastErr }
func (e *Engine) Reviewer() string { return e.reviewer }

// SelectedCandidate returns the focused candidate, or nil when none is.
func (e *Engine) SelectedCandidate() *schema.Candidate {
	if e.item == nil || e.selected < 0 || e.selected >= len(e.item.Candidates) {
		return nil
	}
	return &e.item.Candidates[e.selected]
}

// Select focuses the candidate at index i; out-of-range clears the focus.
func (e *Engine) Select(i int) {
	if e.item == nil || i < 0 || i >= len(e.item.Candidates) {
		e.selected = -1
		return
	}
	e.selected = i
}

// Start begins or restarts the session by fetching a work item, forced by
// id when forcedID is non-empty.
func (e *Engine) Start(forcedID string) error {
	return e.advance(forcedID)
}

// HandleKey routes one raw key press to the active mode. Keys the mode
// does not recognize are ignored. Dispatch only happens while an item is
// presented; in the error state any recognized key restarts the fetch.
func (e *Engine) HandleKey(key rune) error {
	if e.state == ErrorState {
		if e.mode.ResolveKey(key, false) != ActionNone {
			return e.advance("")
		}
		return nil
	}
	if e.state != PresentingCandidate {
		return nil
	}

	action := e.mode.ResolveKey(key, e.SelectedCandidate() != nil)
	switch action {
	case ActionNone:
		return nil
	case ActionSkip:
		// advance without any store mutation
		return e.advance("")
	case ActionRestart:
		return e.advance("")
	case ActionUndo:
		return e.Undo()
	default:
		return e.commit(action)
	}
}

// commit performs the store mutation for the action. A failed commit is
// recoverable: the reviewer stays on the same item and may retry or skip.
func (e *Engine) commit(action Action) error {
	e.state = Committing

	commit, err := e.mode.Apply(action, e.item, e.SelectedCandidate(), e.reviewer)
	if err != nil {
		log.WithError(err).WithField("prefix", "reconcile").Warn("commit failed, staying on item")
		e.lastErr = err
		e.state = PresentingCandidate
		return err
	}

	e.push(snapshot{item: e.item, selected: e.selected, commit: commit})
	return e.advance("")
}

// Undo reverses the most recent committed decision with a compensating
// store mutation and restores the prior item and candidate. It fails
// loudly when the mode does not support undo or nothing was committed.
func (e *Engine) Undo() error {
	if !e.mode.SupportsRedo() {
		e.lastErr = ErrUndoUnsupported
		return ErrUndoUnsupported
	}
	if len(e.history) == 0 {
		e.lastErr = ErrNothingToUndo
		return ErrNothingToUndo
	}

	s := e.history[len(e.history)-1]
	if err := e.mode.Compensate(s.commit); err != nil {
		e.lastErr = err
		return err
	}
	e.history = e.history[:len(e.history)-1]

	e.item = s.item
	e.selected = s.selected
	e.state = PresentingCandidate
	return nil
}

func (e *Engine) advance(forcedID string) error {
	e.state = AwaitingItem

	item, err := e.mode.FetchWorkItem(forcedID)
	if err != nil {
		e.lastErr = err
		e.state = ErrorState
		return err
	}

	e.item = item
	e.lastErr = nil
	if len(item.Candidates) > 0 {
		e.selected = 0
	} else {
		e.selected = -1
	}
	e.state = PresentingCandidate
	return nil
}

func (e *Engine) push(s snapshot) {
	e.history = append(e.history, s)
	if len(e.history) > maxUndoDepth {
		e.history = e.history[1:]
	}
}
