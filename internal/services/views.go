package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"marketplace-contracts-backend/internal/logging"
	"marketplace-contracts-backend/internal/models"
	"marketplace-contracts-backend/internal/workflow"
)

// ContractView is a contract with the data needed to render it.
type ContractView struct {
	Contract       models.Contract
	Steps          []models.ContractStep
	Profiles       map[uuid.UUID]models.Profile
	Offers         map[uuid.UUID]models.Offer
	NeedsAttention bool
	ArchiveURL     string
}

// StepView is a single step rendered with its parent contract.
type StepView struct {
	Step     models.ContractStep
	Contract models.Contract
	Profiles map[uuid.UUID]models.Profile
	Offers   map[uuid.UUID]models.Offer
}

// hydrate loads profiles and offers referenced by aggs. Lookup failures are
// logged and leave the maps empty; the caller still gets the contract data.
func (s *ContractService) hydrate(ctx context.Context, aggs ...*models.ContractAggregate) (map[uuid.UUID]models.Profile, map[uuid.UUID]models.Offer) {
	var profileIDs, offerIDs []uuid.UUID
	for _, agg := range aggs {
		profileIDs = append(profileIDs, agg.Contract.ClientID)
		for _, step := range agg.Steps {
			if step.HasProvider() {
				profileIDs = append(profileIDs, *step.ProviderID)
			}
			if step.OfferID != nil {
				offerIDs = append(offerIDs, *step.OfferID)
			}
		}
	}

	logger := logging.WithContext(ctx, s.logger)

	profiles, err := s.store.GetProfiles(ctx, profileIDs)
	if err != nil {
		logger.Warn("failed to load profiles", zap.Error(err))
		profiles = map[uuid.UUID]models.Profile{}
	}
	offers, err := s.store.GetOffers(ctx, offerIDs)
	if err != nil {
		logger.Warn("failed to load offers", zap.Error(err))
		offers = map[uuid.UUID]models.Offer{}
	}
	return profiles, offers
}

func (s *ContractService) contractView(agg *models.ContractAggregate, profiles map[uuid.UUID]models.Profile, offers map[uuid.UUID]models.Offer) ContractView {
	view := ContractView{
		Contract:       agg.Contract,
		Steps:          agg.Steps,
		Profiles:       profiles,
		Offers:         offers,
		NeedsAttention: workflow.Evaluate(agg.Contract, agg.Steps).NeedsAttention,
	}
	if agg.Contract.ArchivePath != "" && s.archiver != nil {
		view.ArchiveURL = s.archiver.PublicURL(agg.Contract.ArchivePath)
	}
	return view
}

func (s *ContractService) viewContract(ctx context.Context, agg *models.ContractAggregate) *ContractView {
	profiles, offers := s.hydrate(ctx, agg)
	view := s.contractView(agg, profiles, offers)
	return &view
}

func (s *ContractService) viewStep(ctx context.Context, agg *models.ContractAggregate, stepID uuid.UUID) *StepView {
	profiles, offers := s.hydrate(ctx, agg)
	view := &StepView{Contract: agg.Contract, Profiles: profiles, Offers: offers}
	if step := agg.Step(stepID); step != nil {
		view.Step = *step
	}
	return view
}
