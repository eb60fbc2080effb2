package session

import (
	"context"
	"errors"

	"portal/internal/app/catalog"
	"portal/internal/app/metrics"
	"portal/internal/app/purchase"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrNoCandidate is returned by Confirm when nothing was selected.
var ErrNoCandidate = errors.New("no package awaiting confirmation")

// Initiator starts a payment for one package.
type Initiator interface {
	Initiate(ctx context.Context, pkg catalog.Package, phone string) (purchase.Outcome, error)
}

// Service applies visitor actions to stored session state.
type Service struct {
	store     Store
	catalog   *catalog.Catalog
	initiator Initiator
}

func NewService(store Store, cat *catalog.Catalog, initiator Initiator) *Service {
	return &Service{store: store, catalog: cat, initiator: initiator}
}

// View is a session rendered against the catalog.
type View struct {
	State     State
	Catalog   catalog.View
	Candidate *catalog.Package
}

func (s *Service) Create(ctx context.Context) (State, error) {
	st := NewState(uuid.NewString())
	if err := s.store.Save(ctx, st); err != nil {
		return State{}, err
	}
	metrics.SessionsCreated.Inc()
	return st, nil
}

func (s *Service) Get(ctx context.Context, id string) (State, error) {
	return s.store.Load(ctx, id)
}

// Close forgets the session. Later calls with its id return ErrNotFound.
func (s *Service) Close(ctx context.Context, id string) error {
	if _, err := s.store.Load(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *Service) update(ctx context.Context, id string, fn func(*State) error) (State, error) {
	st, err := s.store.Load(ctx, id)
	if err != nil {
		return State{}, err
	}
	if err := fn(&st); err != nil {
		return State{}, err
	}
	if err := s.store.Save(ctx, st); err != nil {
		return State{}, err
	}
	return st, nil
}

func (s *Service) SetFilter(ctx context.Context, id string, f catalog.Filter) (State, error) {
	return s.update(ctx, id, func(st *State) error {
		st.SetFilter(f)
		return nil
	})
}

func (s *Service) SetExpanded(ctx context.Context, id string, expanded bool) (State, error) {
	return s.update(ctx, id, func(st *State) error {
		st.SetExpanded(expanded)
		return nil
	})
}

// Select makes packageID the candidate awaiting confirmation.
func (s *Service) Select(ctx context.Context, id string, packageID int) (State, error) {
	pkg, err := s.catalog.Get(packageID)
	if err != nil {
		return State{}, err
	}
	return s.update(ctx, id, func(st *State) error {
		st.Begin(pkg)
		return nil
	})
}

func (s *Service) Cancel(ctx context.Context, id string) (State, error) {
	return s.update(ctx, id, func(st *State) error {
		st.Cancel()
		return nil
	})
}

// Confirm hands the candidate to the initiator. Without a candidate it
// returns ErrNoCandidate and nothing is sent. An aborted attempt clears the
// candidate; any other outcome keeps it so the visitor can try again.
func (s *Service) Confirm(ctx context.Context, id, phone string) (purchase.Outcome, error) {
	st, err := s.store.Load(ctx, id)
	if err != nil {
		return purchase.Outcome{}, err
	}
	if !st.HasCandidate() {
		return purchase.Outcome{}, ErrNoCandidate
	}

	pkg, err := s.catalog.Get(st.CandidateID)
	if err != nil {
		logrus.WithField("session", id).WithError(err).Warn("candidate no longer in catalog")
		st.Cancel()
		if err := s.store.Save(ctx, st); err != nil {
			return purchase.Outcome{}, err
		}
		return purchase.Outcome{}, ErrNoCandidate
	}

	outcome, err := s.initiator.Initiate(ctx, pkg, phone)
	if err != nil {
		return purchase.Outcome{}, err
	}

	if outcome.Status == purchase.StatusAborted {
		st.Cancel()
		if err := s.store.Save(ctx, st); err != nil {
			return purchase.Outcome{}, err
		}
	}
	return outcome, nil
}

// View renders st. A candidate that has left the catalog is shown as none.
func (s *Service) View(st State) View {
	v := View{
		State:   st,
		Catalog: s.catalog.View(st.Filter, st.Expanded),
	}
	if st.HasCandidate() {
		if pkg, err := s.catalog.Get(st.CandidateID); err == nil {
			v.Candidate = &pkg
		}
	}
	return v
}
