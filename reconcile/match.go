package reconcile

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalpoint/callhub-api/geo"
	"github.com/vitalpoint/callhub-api/schema"
	"github.com/vitalpoint/callhub-api/store"
)

const (
	matchRadiusMeters  = 2000
	matchMaxCandidates = 50
)

var ErrNoCandidateSelected = errors.New("a candidate must be selected first")

// SourceSummary is the flat, display-ready shape of an imported payload:
// one name, 4-decimal coordinates, one website, one phone, one composed
// address line.
type SourceSummary struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Website   string  `json:"website,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Address   string  `json:"address,omitempty"`
}

// MatchStore is the slice of the store match mode mutates.
type MatchStore interface {
	store.SourceLocations
	store.Locations
}

// MatchMode reconciles one unmatched source location at a time against
// nearby canonical records.
type MatchMode struct {
	store MatchStore
}

func NewMatchMode(s MatchStore) *MatchMode {
	return &MatchMode{store: s}
}

func (m *MatchMode) Name() string { return "match" }

func (m *MatchMode) SupportsRedo() bool { return true }

// FetchWorkItem pulls a source location (forced by id, otherwise a random
// unmatched one), normalizes its import payload, and ranks canonical
// candidates within the fixed search radius. Ranking uses the payload's
// full-precision coordinates; the summary carries the rounded ones.
func (m *MatchMode) FetchWorkItem(forcedID string) (*WorkItem, error) {
	var source *schema.SourceLocation
	var err error

	if forcedID != "" {
		id, idErr := primitive.ObjectIDFromHex(forcedID)
		if idErr != nil {
			return nil, fmt.Errorf("invalid source location id %q: %w", forcedID, idErr)
		}
		source, err = m.store.GetSourceLocation(id)
	} else {
		source, err = m.store.RandomUnmatchedSourceLocation()
	}
	if err != nil {
		return nil, err
	}

	center := schema.Coordinates{
		Latitude:  source.Payload.Latitude,
		Longitude: source.Payload.Longitude,
	}
	candidates, err := geo.RankCandidates(m.store, center, matchRadiusMeters, matchMaxCandidates)
	if err != nil {
		return nil, err
	}

	// the store cannot express "everything nearby except the record
	// this source already points at", so the exclusion happens here
	if source.MatchedID != "" {
		kept := candidates[:0]
		for _, c := range candidates {
			if c.ID.Hex() != source.MatchedID {
				kept = append(kept, c)
			}
		}
		candidates = kept
	}

	debug, _ := json.MarshalIndent(source, "", "  ")

	return &WorkItem{
		Source:     source,
		Summary:    NormalizeImport(source.Payload),
		Candidates: candidates,
		Debug:      string(debug),
	}, nil
}

func (m *MatchMode) Apply(action Action, item *WorkItem, candidate *schema.Candidate, reviewer string) (*Commit, error) {
	switch action {
	case ActionMatch:
		if candidate == nil {
			return nil, ErrNoCandidateSelected
		}
		if err := m.store.MatchSourceLocation(item.Source.ID, candidate.ID); err != nil {
			return nil, err
		}
		return &Commit{Action: action, SourceID: item.Source.ID, LocationID: candidate.ID}, nil

	case ActionDismiss:
		if err := m.store.DismissSourceLocation(item.Source.ID); err != nil {
			return nil, err
		}
		return &Commit{Action: action, SourceID: item.Source.ID}, nil

	case ActionCreate:
		loc := locationFromSource(item)
		id, err := m.store.CreateLocation(&loc)
		if err != nil {
			return nil, err
		}
		if err := m.store.MatchSourceLocation(item.Source.ID, id); err != nil {
			return nil, err
		}
		return &Commit{Action: action, SourceID: item.Source.ID, LocationID: id}, nil
	}

	return nil, fmt.Errorf("match mode cannot apply action %d", action)
}

// Compensate reverses a committed decision: matches are unmatched,
// dismissals restored, and a created canonical record is removed again
// before its source is unmatched.
func (m *MatchMode) Compensate(commit *Commit) error {
	switch commit.Action {
	case ActionMatch:
		return m.store.UnmatchSourceLocation(commit.SourceID)
	case ActionDismiss:
		return m.store.UndismissSourceLocation(commit.SourceID)
	case ActionCreate:
		if err := m.store.DeleteLocation(commit.LocationID); err != nil {
			return err
		}
		return m.store.UnmatchSourceLocation(commit.SourceID)
	}
	return fmt.Errorf("match mode cannot compensate action %d", commit.Action)
}

// NormalizeImport flattens a nested import payload: coordinates rounded
// to 4 decimals, the first "general"-tagged website (or the first one at
// all), the first phone contact, and one composed address string.
func NormalizeImport(p schema.ImportPayload) SourceSummary {
	s := SourceSummary{
		Name:      p.Name,
		Latitude:  geo.RoundTo(p.Latitude, 4),
		Longitude: geo.RoundTo(p.Longitude, 4),
	}

	for _, c := range p.Contacts {
		if c.Website != "" && (s.Website == "" || c.Contact == "general") {
			s.Website = c.Website
			if c.Contact == "general" {
				break
			}
		}
	}
	for _, c := range p.Contacts {
		if c.Phone != "" {
			s.Phone = c.Phone
			break
		}
	}

	if a := p.Address; a != nil {
		parts := make([]string, 0, 3)
		if a.Street != "" {
			parts = append(parts, a.Street)
		}
		if a.City != "" {
			parts = append(parts, a.City)
		}
		switch {
		case a.State != "" && a.Zip != "":
			parts = append(parts, a.State+" "+a.Zip)
		case a.State != "":
			parts = append(parts, a.State)
		case a.Zip != "":
			parts = append(parts, a.Zip)
		}
		s.Address = strings.Join(parts, ", ")
	}

	return s
}

func locationFromSource(item *WorkItem) schema.Location {
	p := item.Source.Payload
	loc := schema.Location{
		Name:        p.Name,
		Position:    schema.NewPoint(p.Longitude, p.Latitude),
		Website:     item.Summary.Website,
		PhoneNumber: item.Summary.Phone,
	}
	if a := p.Address; a != nil {
		loc.Address = a.Street
		loc.City = a.City
		loc.State = a.State
		loc.Zip = a.Zip
	}
	return loc
}
