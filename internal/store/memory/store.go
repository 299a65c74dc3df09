// Package memory is an in-process ContractStore for tests and local
// development without Postgres.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"marketplace-contracts-backend/internal/models"
	"marketplace-contracts-backend/internal/services"
)

type Store struct {
	mu        sync.Mutex
	contracts map[uuid.UUID]*models.ContractAggregate
	stepIndex map[uuid.UUID]uuid.UUID
	profiles  map[uuid.UUID]models.Profile
	offers    map[uuid.UUID]models.Offer
}

var _ services.ContractStore = (*Store)(nil)

func New() *Store {
	return &Store{
		contracts: make(map[uuid.UUID]*models.ContractAggregate),
		stepIndex: make(map[uuid.UUID]uuid.UUID),
		profiles:  make(map[uuid.UUID]models.Profile),
		offers:    make(map[uuid.UUID]models.Offer),
	}
}

func (s *Store) PutProfile(p models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = p
}

func (s *Store) PutOffer(o models.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers[o.ID] = o
}

func (s *Store) CreateContract(_ context.Context, agg *models.ContractAggregate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contracts[agg.Contract.ID]; ok {
		return fmt.Errorf("contract %s already exists", agg.Contract.ID)
	}
	s.contracts[agg.Contract.ID] = agg.Clone()
	for _, step := range agg.Steps {
		s.stepIndex[step.ID] = agg.Contract.ID
	}
	return nil
}

func (s *Store) GetContract(_ context.Context, contractID uuid.UUID) (*models.ContractAggregate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agg, ok := s.contracts[contractID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return agg.Clone(), nil
}

func (s *Store) GetStepContractID(_ context.Context, stepID uuid.UUID) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contractID, ok := s.stepIndex[stepID]
	if !ok {
		return uuid.Nil, services.ErrNotFound
	}
	return contractID, nil
}

// UpdateContract holds the store lock for the whole of fn, which serializes
// every mutation the way a row lock does per contract.
func (s *Store) UpdateContract(_ context.Context, contractID uuid.UUID, fn services.MutateFunc) (*models.ContractAggregate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.contracts[contractID]
	if !ok {
		return nil, services.ErrNotFound
	}

	work := stored.Clone()
	changed, err := fn(work)
	if err != nil {
		return nil, err
	}
	if !changed {
		return stored.Clone(), nil
	}

	work.Contract.Version = stored.Contract.Version + 1
	s.contracts[contractID] = work
	return work.Clone(), nil
}

func (s *Store) ListContractsForUser(_ context.Context, userID uuid.UUID) ([]models.ContractAggregate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ContractAggregate, 0)
	for _, agg := range s.contracts {
		if involves(agg, userID) {
			out = append(out, *agg.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Contract.CreatedAt.After(out[j].Contract.CreatedAt)
	})
	return out, nil
}

func involves(agg *models.ContractAggregate, userID uuid.UUID) bool {
	if agg.Contract.ClientID == userID {
		return true
	}
	for i := range agg.Steps {
		if agg.Steps[i].AssignedTo(userID) {
			return true
		}
	}
	return false
}

func (s *Store) SetArchivePath(_ context.Context, contractID uuid.UUID, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	agg, ok := s.contracts[contractID]
	if !ok {
		return services.ErrNotFound
	}
	next := agg.Clone()
	next.Contract.ArchivePath = path
	next.Contract.Version++
	s.contracts[contractID] = next
	return nil
}

func (s *Store) GetProfiles(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[uuid.UUID]models.Profile, len(ids))
	for _, id := range ids {
		if p, ok := s.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (s *Store) GetOffers(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[uuid.UUID]models.Offer, len(ids))
	for _, id := range ids {
		if o, ok := s.offers[id]; ok {
			out[id] = o
		}
	}
	return out, nil
}
