package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"marketplace-contracts-backend/internal/models"
)

// ErrNotFound is returned by stores when a row does not exist.
var ErrNotFound = errors.New("not found")

// MutateFunc changes an aggregate loaded under the contract lock. Returning
// false leaves the stored contract untouched.
type MutateFunc func(agg *models.ContractAggregate) (bool, error)

// ContractStore persists contracts and their steps.
//
// UpdateContract must run fn while holding an exclusive lock on the contract,
// persist the contract and every step whose UpdatedAt changed, and increment
// the contract version, all in one transaction.
type ContractStore interface {
	CreateContract(ctx context.Context, agg *models.ContractAggregate) error
	GetContract(ctx context.Context, contractID uuid.UUID) (*models.ContractAggregate, error)
	GetStepContractID(ctx context.Context, stepID uuid.UUID) (uuid.UUID, error)
	UpdateContract(ctx context.Context, contractID uuid.UUID, fn MutateFunc) (*models.ContractAggregate, error)
	ListContractsForUser(ctx context.Context, userID uuid.UUID) ([]models.ContractAggregate, error)
	SetArchivePath(ctx context.Context, contractID uuid.UUID, path string) error

	GetProfiles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Profile, error)
	GetOffers(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Offer, error)
}

// Broadcaster pushes an event to one user's private realtime channel.
type Broadcaster interface {
	PublishUserEvent(ctx context.Context, userID uuid.UUID, event string, payload any) error
}

// Archiver stores a snapshot of a fully signed contract.
type Archiver interface {
	ArchiveContract(ctx context.Context, clientID, contractID uuid.UUID, snapshot []byte) (string, error)
	PublicURL(path string) string
}
