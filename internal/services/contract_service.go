package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"marketplace-contracts-backend/internal/logging"
	"marketplace-contracts-backend/internal/models"
	"marketplace-contracts-backend/internal/workflow"
)

const maxRejectionReason = 1000

//go:generate mockgen -source=contract_service.go -destination=../handlers/mocks/mock_contract_service.go -package=mocks

// IContractService is the contract workflow as seen by the HTTP layer.
type IContractService interface {
	CreateContract(ctx context.Context, clientID uuid.UUID, draft models.ServicePathData) (*ContractView, error)
	ListContracts(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]ContractView, error)
	GetContract(ctx context.Context, userID, contractID uuid.UUID) (*ContractView, error)
	ContractStatus(ctx context.Context, userID, contractID uuid.UUID) (*ContractView, error)
	UpdateStepStatus(ctx context.Context, userID, contractID, stepID uuid.UUID, status models.StepStatus) (*StepView, error)
	SignContract(ctx context.Context, userID, contractID uuid.UUID, signAll bool) (*ContractView, error)
	SignStepAsClient(ctx context.Context, userID, contractID, stepID uuid.UUID) (*StepView, error)
	SignStepAsProvider(ctx context.Context, userID, contractID, stepID uuid.UUID) (*StepView, error)
	AcceptStep(ctx context.Context, userID, stepID uuid.UUID, deadline time.Time) (*StepView, error)
	RejectStep(ctx context.Context, userID, stepID uuid.UUID, reason string) (*StepView, error)
	ListProviderProjects(ctx context.Context, providerID uuid.UUID, status models.StepStatus) ([]StepView, error)
	ClientFeed(ctx context.Context, clientID uuid.UUID) ([]models.ClientFeedItem, error)
	ProviderNotifications(ctx context.Context, providerID uuid.UUID) ([]models.ContractNotification, error)
}

type ContractService struct {
	store      ContractStore
	notifier   *Notifier
	archiver   Archiver
	dispatcher *Dispatcher
	logger     *zap.Logger
	feedWindow time.Duration
	now        func() time.Time
}

var _ IContractService = (*ContractService)(nil)

// NewContractService wires the workflow. archiver may be nil, in which case
// fully signed contracts are not archived.
func NewContractService(store ContractStore, notifier *Notifier, archiver Archiver, dispatcher *Dispatcher, logger *zap.Logger, feedWindow time.Duration) *ContractService {
	return &ContractService{
		store:      store,
		notifier:   notifier,
		archiver:   archiver,
		dispatcher: dispatcher,
		logger:     logger,
		feedWindow: feedWindow,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the time source. Tests only.
func (s *ContractService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *ContractService) CreateContract(ctx context.Context, clientID uuid.UUID, draft models.ServicePathData) (*ContractView, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	var offerIDs []uuid.UUID
	for _, step := range draft.Steps {
		if step.IsRealOffer {
			offerIDs = append(offerIDs, *step.OfferID)
		}
	}
	offers, err := s.store.GetOffers(ctx, offerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load offers: %w", err)
	}

	now := s.now()
	agg := &models.ContractAggregate{
		Contract: models.Contract{
			ID:                uuid.New(),
			ClientID:          clientID,
			Title:             strings.TrimSpace(draft.Title),
			Description:       draft.Description,
			EstimatedDuration: draft.EstimatedDuration,
			WorkStatus:        models.WorkStatusPending,
			SignatureStatus:   models.SignatureStatusUnsigned,
			Version:           1,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
	}

	for i, in := range draft.Steps {
		step := models.ContractStep{
			ID:          uuid.New(),
			ContractID:  agg.Contract.ID,
			Position:    i,
			Name:        strings.TrimSpace(in.Name),
			Description: in.Description,
			Price:       in.Price,
			Duration:    in.Duration,
			IsRealOffer: in.IsRealOffer,
			Status:      models.StepStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if in.IsRealOffer {
			offer, ok := offers[*in.OfferID]
			if !ok {
				return nil, validationf("offer %s not found", *in.OfferID)
			}
			if offer.ProviderID == clientID {
				return nil, validationf("step %q uses your own offer", step.Name)
			}
			offerID, providerID := offer.ID, offer.ProviderID
			step.OfferID = &offerID
			step.ProviderID = &providerID
		}
		agg.Contract.TotalPrice += step.Price
		agg.Steps = append(agg.Steps, step)
	}

	if err := s.store.CreateContract(ctx, agg); err != nil {
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	logging.WithContext(ctx, s.logger).Info("contract created",
		zap.String("contract_id", agg.Contract.ID.String()),
		zap.Int("steps", len(agg.Steps)),
		zap.Int("providers", len(agg.ProviderIDs())),
	)

	profiles, offers := s.hydrate(ctx, agg)
	s.notifier.NotifyContractCreated(ctx, agg, profiles[clientID])

	view := s.contractView(agg, profiles, offers)
	return &view, nil
}

func validateDraft(draft models.ServicePathData) error {
	if strings.TrimSpace(draft.Title) == "" {
		return validationf("title is required")
	}
	if len(draft.Steps) == 0 {
		return validationf("at least one step is required")
	}
	for i, step := range draft.Steps {
		if strings.TrimSpace(step.Name) == "" {
			return validationf("step %d: name is required", i+1)
		}
		if step.Price < 0 {
			return validationf("step %d: price must not be negative", i+1)
		}
		if step.IsRealOffer && (step.OfferID == nil || *step.OfferID == uuid.Nil) {
			return validationf("step %d: offerId is required for a real offer", i+1)
		}
	}
	return nil
}

// mutate runs fn on the locked aggregate, re-derives the contract statuses when
// fn changed something and archives the contract if it just became fully
// signed.
func (s *ContractService) mutate(ctx context.Context, contractID uuid.UUID, fn func(agg *models.ContractAggregate, now time.Time) (bool, error)) (*models.ContractAggregate, error) {
	var before models.SignatureStatus
	var outcome workflow.Outcome

	agg, err := s.store.UpdateContract(ctx, contractID, func(agg *models.ContractAggregate) (bool, error) {
		now := s.now()
		before = agg.Contract.SignatureStatus

		changed, err := fn(agg, now)
		if err != nil || !changed {
			return false, err
		}
		outcome = settle(agg, now)
		return true, nil
	})
	if errors.Is(err, ErrNotFound) {
		return nil, ErrContractNotFound
	}
	if err != nil {
		return nil, err
	}

	if outcome.NeedsAttention {
		logging.WithContext(ctx, s.logger).Warn("contract has rejected steps but is not rejected",
			zap.String("contract_id", contractID.String()),
			zap.String("work_status", string(agg.Contract.WorkStatus)),
		)
	}
	if before != models.SignatureStatusFullySigned && agg.Contract.SignatureStatus == models.SignatureStatusFullySigned {
		s.archive(ctx, agg)
	}
	return agg, nil
}

// settle re-derives both status tracks and stamps the aggregate signature
// timestamps.
func settle(agg *models.ContractAggregate, now time.Time) workflow.Outcome {
	outcome, _ := workflow.Apply(agg)

	if agg.Contract.ClientSignedAt == nil && workflow.AllClientSigned(agg.Steps) {
		agg.Contract.ClientSignedAt = &now
	}
	if outcome.SignatureStatus == models.SignatureStatusFullySigned && agg.Contract.AllStepsSignedAt == nil {
		agg.Contract.AllStepsSignedAt = &now
	}
	agg.Contract.UpdatedAt = now
	return outcome
}

func (s *ContractService) archive(ctx context.Context, agg *models.ContractAggregate) {
	if s.archiver == nil {
		return
	}
	snapshot := agg.Clone()

	s.dispatcher.Go(ctx, "contract_archive", func(ctx context.Context) error {
		data, err := json.Marshal(snapshot)
		if err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		path, err := s.archiver.ArchiveContract(ctx, snapshot.Contract.ClientID, snapshot.Contract.ID, data)
		if err != nil {
			return err
		}
		return s.store.SetArchivePath(ctx, snapshot.Contract.ID, path)
	})
}

func (s *ContractService) UpdateStepStatus(ctx context.Context, userID, contractID, stepID uuid.UUID, status models.StepStatus) (*StepView, error) {
	if !status.Valid() {
		return nil, validationf("unknown status %q", status)
	}

	agg, err := s.mutate(ctx, contractID, func(agg *models.ContractAggregate, now time.Time) (bool, error) {
		step := agg.Step(stepID)
		if step == nil {
			return false, ErrStepNotFound
		}

		changed, err := workflow.TransitionStep(step, workflow.ActorFor(userID, agg.Contract, step), status, now)
		switch {
		case errors.Is(err, workflow.ErrNotAllowed):
			return false, ErrForbidden
		case errors.Is(err, workflow.ErrInvalidTransition):
			return false, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, step.Status, status)
		}
		return changed, err
	})
	if err != nil {
		return nil, err
	}
	return s.viewStep(ctx, agg, stepID), nil
}

func (s *ContractService) SignContract(ctx context.Context, userID, contractID uuid.UUID, signAll bool) (*ContractView, error) {
	if !signAll {
		return nil, validationf("signAll must be true; sign individual steps with sign-client")
	}

	agg, err := s.mutate(ctx, contractID, func(agg *models.ContractAggregate, now time.Time) (bool, error) {
		if agg.Contract.ClientID != userID {
			return false, ErrForbidden
		}
		if agg.Contract.ClientSignedAt != nil {
			return false, ErrAlreadySigned
		}
		for _, step := range agg.Steps {
			if step.Status == models.StepStatusRejected {
				return false, fmt.Errorf("%w: %s", ErrStepRejected, step.Name)
			}
		}
		for i := range agg.Steps {
			if agg.Steps[i].ClientSignedAt == nil {
				agg.Steps[i].ClientSignedAt = &now
				agg.Steps[i].UpdatedAt = now
			}
		}
		agg.Contract.ClientSignedAt = &now
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return s.viewContract(ctx, agg), nil
}

func (s *ContractService) SignStepAsClient(ctx context.Context, userID, contractID, stepID uuid.UUID) (*StepView, error) {
	agg, err := s.mutate(ctx, contractID, func(agg *models.ContractAggregate, now time.Time) (bool, error) {
		if agg.Contract.ClientID != userID {
			return false, ErrForbidden
		}
		step := agg.Step(stepID)
		if step == nil {
			return false, ErrStepNotFound
		}
		if step.Status == models.StepStatusRejected {
			return false, ErrStepRejected
		}
		if step.ClientSignedAt != nil {
			return false, ErrAlreadySigned
		}
		step.ClientSignedAt = &now
		step.UpdatedAt = now
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return s.viewStep(ctx, agg, stepID), nil
}

func (s *ContractService) SignStepAsProvider(ctx context.Context, userID, contractID, stepID uuid.UUID) (*StepView, error) {
	agg, err := s.mutate(ctx, contractID, func(agg *models.ContractAggregate, now time.Time) (bool, error) {
		step := agg.Step(stepID)
		if step == nil {
			return false, ErrStepNotFound
		}
		if !step.AssignedTo(userID) {
			return false, ErrForbidden
		}
		if step.Status == models.StepStatusRejected {
			return false, ErrStepRejected
		}
		if step.ClientSignedAt == nil {
			return false, ErrClientSignatureRequired
		}
		if step.ProviderSignedAt != nil {
			return false, ErrAlreadySigned
		}
		step.ProviderSignedAt = &now
		step.UpdatedAt = now
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return s.viewStep(ctx, agg, stepID), nil
}

// AcceptStep records the provider's acceptance of a pending step. Steps the
// caller does not own or that are no longer pending look the same: not found.
// The deadline is checked only once the step is known to be the caller's.
func (s *ContractService) AcceptStep(ctx context.Context, userID, stepID uuid.UUID, deadline time.Time) (*StepView, error) {
	if deadline.IsZero() {
		return nil, validationf("deadline is required")
	}

	return s.decide(ctx, userID, stepID, func(step *models.ContractStep, now time.Time) error {
		if !deadline.After(now) {
			return validationf("deadline must be in the future")
		}
		if _, err := workflow.TransitionStep(step, workflow.ActorProvider, models.StepStatusAccepted, now); err != nil {
			return err
		}
		deadline := deadline.UTC()
		step.StartDate = &now
		step.Deadline = &deadline
		return nil
	})
}

func (s *ContractService) RejectStep(ctx context.Context, userID, stepID uuid.UUID, reason string) (*StepView, error) {
	reason = strings.TrimSpace(reason)
	if len(reason) > maxRejectionReason {
		return nil, validationf("reason must be at most %d characters", maxRejectionReason)
	}

	return s.decide(ctx, userID, stepID, func(step *models.ContractStep, now time.Time) error {
		if _, err := workflow.TransitionStep(step, workflow.ActorProvider, models.StepStatusRejected, now); err != nil {
			return err
		}
		step.RejectionReason = reason
		return nil
	})
}

func (s *ContractService) decide(ctx context.Context, userID, stepID uuid.UUID, apply func(step *models.ContractStep, now time.Time) error) (*StepView, error) {
	contractID, err := s.store.GetStepContractID(ctx, stepID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrStepNotPending
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find step: %w", err)
	}

	agg, err := s.mutate(ctx, contractID, func(agg *models.ContractAggregate, now time.Time) (bool, error) {
		step := agg.Step(stepID)
		if step == nil || !step.AssignedTo(userID) || step.Status != models.StepStatusPending {
			return false, ErrStepNotPending
		}
		if err := apply(step, now); err != nil {
			return false, err
		}
		return true, nil
	})
	if errors.Is(err, ErrContractNotFound) {
		return nil, ErrStepNotPending
	}
	if err != nil {
		return nil, err
	}
	return s.viewStep(ctx, agg, stepID), nil
}

// Recompute re-derives a contract's statuses from its steps. It repairs rows
// written before the statuses were maintained transactionally.
func (s *ContractService) Recompute(ctx context.Context, contractID uuid.UUID) (*ContractView, error) {
	agg, err := s.mutate(ctx, contractID, func(agg *models.ContractAggregate, now time.Time) (bool, error) {
		probe := agg.Clone()
		settle(probe, now)
		drifted := probe.Contract.WorkStatus != agg.Contract.WorkStatus ||
			probe.Contract.SignatureStatus != agg.Contract.SignatureStatus ||
			(probe.Contract.ClientSignedAt == nil) != (agg.Contract.ClientSignedAt == nil) ||
			(probe.Contract.AllStepsSignedAt == nil) != (agg.Contract.AllStepsSignedAt == nil)
		return drifted, nil
	})
	if err != nil {
		return nil, err
	}
	return s.viewContract(ctx, agg), nil
}

func (s *ContractService) ProviderNotifications(ctx context.Context, providerID uuid.UUID) ([]models.ContractNotification, error) {
	return s.notifier.ProviderNotifications(ctx, providerID)
}
