package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"marketplace-contracts-backend/internal/models"
	"marketplace-contracts-backend/internal/workflow"
)

const (
	RoleClient   = "client"
	RoleProvider = "provider"

	feedLimit = 50
)

// ListFilter narrows GET /contracts. Empty fields match everything.
type ListFilter struct {
	Role   string
	Status string
}

func (f ListFilter) Validate() error {
	switch f.Role {
	case "", RoleClient, RoleProvider:
		return nil
	}
	return validationf("role must be %q or %q", RoleClient, RoleProvider)
}

func (f ListFilter) matchesStatus(c models.Contract) bool {
	if f.Status == "" {
		return true
	}
	want := strings.ToUpper(f.Status)
	return want == string(c.WorkStatus) ||
		want == string(c.SignatureStatus) ||
		want == workflow.ComposeStatus(c.WorkStatus, c.SignatureStatus)
}

// ListContracts returns the contracts userID takes part in. As a provider the
// caller only sees their own steps.
func (s *ContractService) ListContracts(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]ContractView, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	aggs, err := s.store.ListContractsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	visible := make([]*models.ContractAggregate, 0, len(aggs))
	attention := make([]bool, 0, len(aggs))
	for i := range aggs {
		agg := &aggs[i]
		isClient := agg.Contract.ClientID == userID

		switch {
		case filter.Role == RoleClient && !isClient:
			continue
		case filter.Role == RoleProvider && isClient:
			continue
		case !filter.matchesStatus(agg.Contract):
			continue
		}

		// Attention is a property of the whole contract, not the caller's slice of it.
		needsAttention := workflow.Evaluate(agg.Contract, agg.Steps).NeedsAttention
		if !isClient {
			agg = ownSteps(agg, userID)
			if len(agg.Steps) == 0 {
				continue
			}
		}
		visible = append(visible, agg)
		attention = append(attention, needsAttention)
	}

	profiles, offers := s.hydrate(ctx, visible...)
	views := make([]ContractView, 0, len(visible))
	for i, agg := range visible {
		view := s.contractView(agg, profiles, offers)
		view.NeedsAttention = attention[i]
		views = append(views, view)
	}
	return views, nil
}

func ownSteps(agg *models.ContractAggregate, providerID uuid.UUID) *models.ContractAggregate {
	out := &models.ContractAggregate{Contract: agg.Contract}
	for _, step := range agg.Steps {
		if step.AssignedTo(providerID) {
			out.Steps = append(out.Steps, step)
		}
	}
	return out
}

// GetContract returns a contract to its client.
func (s *ContractService) GetContract(ctx context.Context, userID, contractID uuid.UUID) (*ContractView, error) {
	agg, err := s.store.GetContract(ctx, contractID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrContractNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	if agg.Contract.ClientID != userID {
		return nil, ErrForbidden
	}
	return s.viewContract(ctx, agg), nil
}

// ContractStatus returns the contract without hydration, for cheap polling.
// The client and every provider on the contract may read it.
func (s *ContractService) ContractStatus(ctx context.Context, userID, contractID uuid.UUID) (*ContractView, error) {
	agg, err := s.store.GetContract(ctx, contractID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrContractNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	if agg.Contract.ClientID != userID && len(ownSteps(agg, userID).Steps) == 0 {
		return nil, ErrForbidden
	}
	view := s.contractView(agg, nil, nil)
	return &view, nil
}

// ListProviderProjects returns the provider's steps that are under way or
// finished. status narrows the result to one step status.
func (s *ContractService) ListProviderProjects(ctx context.Context, providerID uuid.UUID, status models.StepStatus) ([]StepView, error) {
	if status != "" && !status.Valid() {
		return nil, validationf("unknown status %q", status)
	}

	aggs, err := s.store.ListContractsForUser(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	ptrs := make([]*models.ContractAggregate, len(aggs))
	for i := range aggs {
		ptrs[i] = &aggs[i]
	}
	profiles, offers := s.hydrate(ctx, ptrs...)

	views := make([]StepView, 0)
	for _, agg := range ptrs {
		for _, step := range agg.Steps {
			if !step.AssignedTo(providerID) {
				continue
			}
			if status != "" && step.Status != status {
				continue
			}
			if status == "" && step.Status != models.StepStatusAccepted && step.Status != models.StepStatusCompleted {
				continue
			}
			views = append(views, StepView{Step: step, Contract: agg.Contract, Profiles: profiles, Offers: offers})
		}
	}

	sort.SliceStable(views, func(i, j int) bool {
		return deadlineOf(views[i].Step).Before(deadlineOf(views[j].Step))
	})
	return views, nil
}

// deadlineOf orders steps without a deadline last.
func deadlineOf(step models.ContractStep) time.Time {
	if step.Deadline == nil {
		return time.Unix(1<<62, 0)
	}
	return *step.Deadline
}

// ClientFeed lists recent provider decisions on the client's contracts,
// newest first.
func (s *ContractService) ClientFeed(ctx context.Context, clientID uuid.UUID) ([]models.ClientFeedItem, error) {
	aggs, err := s.store.ListContractsForUser(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	since := s.now().Add(-s.feedWindow)
	owned := make([]*models.ContractAggregate, 0, len(aggs))
	for i := range aggs {
		if aggs[i].Contract.ClientID == clientID {
			owned = append(owned, &aggs[i])
		}
	}
	profiles, _ := s.hydrate(ctx, owned...)

	items := make([]models.ClientFeedItem, 0)
	for _, agg := range owned {
		for _, step := range agg.Steps {
			for _, ev := range stepEvents(step) {
				if ev.at.Before(since) {
					continue
				}
				item := models.ClientFeedItem{
					ContractID:    agg.Contract.ID.String(),
					ContractTitle: agg.Contract.Title,
					StepID:        step.ID.String(),
					StepName:      step.Name,
					Event:         ev.name,
					Reason:        ev.reason,
					OccurredAt:    ev.at,
				}
				if step.HasProvider() {
					party := partyFromProfile(*step.ProviderID, profiles[*step.ProviderID])
					item.Provider = &party
				}
				items = append(items, item)
			}
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].OccurredAt.After(items[j].OccurredAt)
	})
	if len(items) > feedLimit {
		items = items[:feedLimit]
	}
	return items, nil
}

type stepEvent struct {
	name   string
	reason string
	at     time.Time
}

func stepEvents(step models.ContractStep) []stepEvent {
	var events []stepEvent
	if step.AcceptedAt != nil {
		events = append(events, stepEvent{name: "STEP_ACCEPTED", at: *step.AcceptedAt})
	}
	if step.RejectedAt != nil {
		events = append(events, stepEvent{name: "STEP_REJECTED", reason: step.RejectionReason, at: *step.RejectedAt})
	}
	if step.CompletedAt != nil {
		events = append(events, stepEvent{name: "STEP_COMPLETED", at: *step.CompletedAt})
	}
	if step.ProviderSignedAt != nil {
		events = append(events, stepEvent{name: "STEP_SIGNED", at: *step.ProviderSignedAt})
	}
	return events
}
