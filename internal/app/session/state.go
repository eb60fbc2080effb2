package session

import (
	"portal/internal/app/catalog"
)

// State is what one visitor has chosen so far. It holds no purchase data;
// CandidateID is zero while nothing awaits confirmation.
type State struct {
	ID          string         `json:"id"`
	Filter      catalog.Filter `json:"filter"`
	Expanded    bool           `json:"expanded"`
	CandidateID int            `json:"candidate_id,omitempty"`
}

func NewState(id string) State {
	return State{ID: id, Filter: catalog.FilterAll}
}

// SetFilter always collapses the listing, even when f is the current filter.
func (s *State) SetFilter(f catalog.Filter) {
	s.Filter = f
	s.Expanded = false
}

func (s *State) SetExpanded(expanded bool) {
	s.Expanded = expanded
}

// Begin records p as the candidate, replacing any earlier one.
func (s *State) Begin(p catalog.Package) {
	s.CandidateID = p.ID
}

// Cancel drops the candidate and leaves filter and expansion alone.
func (s *State) Cancel() {
	s.CandidateID = 0
}

func (s State) HasCandidate() bool {
	return s.CandidateID != 0
}
