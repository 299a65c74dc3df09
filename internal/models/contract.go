package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkStatus tracks the operational progress of a contract.
type WorkStatus string

const (
	WorkStatusPending    WorkStatus = "PENDING"
	WorkStatusInProgress WorkStatus = "IN_PROGRESS"
	WorkStatusCompleted  WorkStatus = "COMPLETED"
	WorkStatusRejected   WorkStatus = "REJECTED"
)

// SignatureStatus tracks the bilateral signing of a contract.
type SignatureStatus string

const (
	SignatureStatusUnsigned     SignatureStatus = "UNSIGNED"
	SignatureStatusClientSigned SignatureStatus = "CLIENT_SIGNED"
	SignatureStatusFullySigned  SignatureStatus = "FULLY_SIGNED"
)

// StepStatus is the work status of a single contract step.
type StepStatus string

const (
	StepStatusPending   StepStatus = "PENDING"
	StepStatusAccepted  StepStatus = "ACCEPTED"
	StepStatusRejected  StepStatus = "REJECTED"
	StepStatusCompleted StepStatus = "COMPLETED"
)

// StepSignature is derived from a step's signature timestamps.
type StepSignature string

const (
	StepSignatureUnsigned     StepSignature = "UNSIGNED"
	StepSignatureClientSigned StepSignature = "CLIENT_SIGNED"
	StepSignatureSigned       StepSignature = "SIGNED"
)

func (s StepStatus) Valid() bool {
	switch s {
	case StepStatusPending, StepStatusAccepted, StepStatusRejected, StepStatusCompleted:
		return true
	}
	return false
}

type Contract struct {
	ID                uuid.UUID
	ClientID          uuid.UUID
	Title             string
	Description       string
	TotalPrice        float64
	EstimatedDuration string
	WorkStatus        WorkStatus
	SignatureStatus   SignatureStatus
	ClientSignedAt    *time.Time
	AllStepsSignedAt  *time.Time
	ArchivePath       string
	Version           int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ContractStep struct {
	ID               uuid.UUID
	ContractID       uuid.UUID
	Position         int
	Name             string
	Description      string
	Price            float64
	Duration         string
	IsRealOffer      bool
	ProviderID       *uuid.UUID
	OfferID          *uuid.UUID
	Status           StepStatus
	ClientSignedAt   *time.Time
	ProviderSignedAt *time.Time
	AcceptedAt       *time.Time
	RejectedAt       *time.Time
	RejectionReason  string
	CompletedAt      *time.Time
	StartDate        *time.Time
	Deadline         *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasProvider reports whether the step is bound to a provider. Steps without
// one are placeholders handled by the client.
func (s *ContractStep) HasProvider() bool {
	return s.ProviderID != nil && *s.ProviderID != uuid.Nil
}

// AssignedTo reports whether userID is the step's provider.
func (s *ContractStep) AssignedTo(userID uuid.UUID) bool {
	return s.HasProvider() && *s.ProviderID == userID
}

func (s *ContractStep) Signature() StepSignature {
	switch {
	case s.ClientSignedAt == nil:
		return StepSignatureUnsigned
	case s.ProviderSignedAt == nil && s.HasProvider():
		return StepSignatureClientSigned
	default:
		return StepSignatureSigned
	}
}

// ContractAggregate is a contract together with all of its steps, ordered by
// position. Every mutation goes through an aggregate loaded under lock.
type ContractAggregate struct {
	Contract Contract
	Steps    []ContractStep
}

func (a *ContractAggregate) Step(stepID uuid.UUID) *ContractStep {
	for i := range a.Steps {
		if a.Steps[i].ID == stepID {
			return &a.Steps[i]
		}
	}
	return nil
}

// ProviderIDs returns the distinct providers of the aggregate in step order.
func (a *ContractAggregate) ProviderIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, s := range a.Steps {
		if !s.HasProvider() || seen[*s.ProviderID] {
			continue
		}
		seen[*s.ProviderID] = true
		ids = append(ids, *s.ProviderID)
	}
	return ids
}

// Clone returns a deep copy so callers can mutate without aliasing.
func (a *ContractAggregate) Clone() *ContractAggregate {
	out := &ContractAggregate{Contract: a.Contract, Steps: make([]ContractStep, len(a.Steps))}
	copy(out.Steps, a.Steps)
	return out
}

type Profile struct {
	ID          uuid.UUID
	DisplayName string
	Email       string
}

type Offer struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	Title      string
	Price      float64
}
