package workflow

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"marketplace-contracts-backend/internal/models"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotAllowed        = errors.New("caller may not set this status")
)

// Actor identifies who performs a step transition.
type Actor int

const (
	ActorNone Actor = iota
	ActorClient
	ActorProvider
)

// ActorFor resolves the caller's role on a step. For placeholder steps the
// client stands in for the missing provider, so ActorProvider is returned.
func ActorFor(userID uuid.UUID, c models.Contract, step *models.ContractStep) Actor {
	switch {
	case step.AssignedTo(userID):
		return ActorProvider
	case c.ClientID == userID && !step.HasProvider():
		return ActorProvider
	case c.ClientID == userID:
		return ActorClient
	default:
		return ActorNone
	}
}

var allowed = map[models.StepStatus][]models.StepStatus{
	models.StepStatusPending:  {models.StepStatusAccepted, models.StepStatusRejected},
	models.StepStatusAccepted: {models.StepStatusCompleted},
}

// CanTransition reports whether from -> to is in the transition table.
// Writing the current status again is always allowed.
func CanTransition(from, to models.StepStatus) bool {
	if from == to {
		return true
	}
	for _, s := range allowed[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TransitionStep applies a status write to step on behalf of actor. Same-status
// writes leave the step untouched and report changed=false.
func TransitionStep(step *models.ContractStep, actor Actor, to models.StepStatus, now time.Time) (bool, error) {
	if !to.Valid() {
		return false, ErrInvalidTransition
	}
	if actor == ActorNone {
		return false, ErrNotAllowed
	}
	if !CanTransition(step.Status, to) {
		return false, ErrInvalidTransition
	}
	if step.Status == to {
		return false, nil
	}

	switch to {
	case models.StepStatusAccepted:
		if actor != ActorProvider {
			return false, ErrNotAllowed
		}
		step.AcceptedAt = &now
		if step.StartDate == nil {
			step.StartDate = &now
		}
	case models.StepStatusRejected:
		if actor != ActorProvider {
			return false, ErrNotAllowed
		}
		step.RejectedAt = &now
	case models.StepStatusCompleted:
		step.CompletedAt = &now
	}

	step.Status = to
	step.UpdatedAt = now
	return true, nil
}
