package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"marketplace-contracts-backend/internal/logging"
	"marketplace-contracts-backend/internal/models"
)

const (
	EventNewContract = "new_contract_notification"

	maxConcurrentPushes = 8
)

// ProviderNotification is one fan-out message addressed to a provider.
type ProviderNotification struct {
	ProviderID uuid.UUID
	Payload    models.ContractNotification
}

// Notifier delivers contract notifications to providers. Pushes are
// best-effort; ProviderNotifications rebuilds the same payloads from stored
// steps and is what clients should trust.
type Notifier struct {
	store       ContractStore
	broadcaster Broadcaster
	dispatcher  *Dispatcher
	logger      *zap.Logger
}

func NewNotifier(store ContractStore, broadcaster Broadcaster, dispatcher *Dispatcher, logger *zap.Logger) *Notifier {
	if broadcaster == nil {
		broadcaster = nopBroadcaster{logger: logger}
	}
	return &Notifier{
		store:       store,
		broadcaster: broadcaster,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

// GroupByProvider builds one notification per distinct provider of agg,
// counting the steps that match include. Providers with no matching step are
// skipped. Order follows the first step of each provider.
func GroupByProvider(agg *models.ContractAggregate, client models.Profile, include func(models.ContractStep) bool) []ProviderNotification {
	index := make(map[uuid.UUID]int)
	var out []ProviderNotification

	for _, step := range agg.Steps {
		if !step.HasProvider() || (include != nil && !include(step)) {
			continue
		}
		providerID := *step.ProviderID
		i, ok := index[providerID]
		if !ok {
			i = len(out)
			index[providerID] = i
			out = append(out, ProviderNotification{
				ProviderID: providerID,
				Payload: models.ContractNotification{
					ContractID: agg.Contract.ID,
					Title:      agg.Contract.Title,
					Client:     partyFromProfile(agg.Contract.ClientID, client),
					CreatedAt:  agg.Contract.CreatedAt,
				},
			})
		}
		out[i].Payload.PendingStepsCount++
		out[i].Payload.TotalValue += step.Price
	}
	return out
}

// NotifyContractCreated fans the new contract out to its providers in the
// background. It returns immediately.
func (n *Notifier) NotifyContractCreated(ctx context.Context, agg *models.ContractAggregate, client models.Profile) {
	notifications := GroupByProvider(agg, client, nil)
	if len(notifications) == 0 {
		return
	}

	n.dispatcher.Go(ctx, "contract_fan_out", func(ctx context.Context) error {
		return n.push(ctx, notifications)
	})
}

func (n *Notifier) push(ctx context.Context, notifications []ProviderNotification) error {
	logger := logging.WithContext(ctx, n.logger)

	var g errgroup.Group
	g.SetLimit(maxConcurrentPushes)

	errs := make([]error, len(notifications))
	for i, notification := range notifications {
		g.Go(func() error {
			err := n.broadcaster.PublishUserEvent(ctx, notification.ProviderID, EventNewContract, notification.Payload)
			if err != nil {
				errs[i] = fmt.Errorf("provider %s: %w", notification.ProviderID, err)
				return errs[i]
			}
			logger.Debug("contract notification pushed",
				zap.String("contract_id", notification.Payload.ContractID.String()),
				zap.String("provider_id", notification.ProviderID.String()),
			)
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

// ProviderNotifications lists, newest first, one summary per contract in
// which providerID still has pending steps.
func (n *Notifier) ProviderNotifications(ctx context.Context, providerID uuid.UUID) ([]models.ContractNotification, error) {
	aggs, err := n.store.ListContractsForUser(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	clientIDs := make([]uuid.UUID, 0, len(aggs))
	for _, agg := range aggs {
		clientIDs = append(clientIDs, agg.Contract.ClientID)
	}
	profiles, err := n.store.GetProfiles(ctx, clientIDs)
	if err != nil {
		logging.WithContext(ctx, n.logger).Warn("failed to load client profiles", zap.Error(err))
		profiles = nil
	}

	pending := func(s models.ContractStep) bool {
		return s.Status == models.StepStatusPending && s.AssignedTo(providerID)
	}

	out := make([]models.ContractNotification, 0)
	for i := range aggs {
		for _, pn := range GroupByProvider(&aggs[i], profiles[aggs[i].Contract.ClientID], pending) {
			out = append(out, pn.Payload)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type nopBroadcaster struct {
	logger *zap.Logger
}

func (b nopBroadcaster) PublishUserEvent(ctx context.Context, userID uuid.UUID, event string, _ any) error {
	b.logger.Debug("realtime disabled, dropping event",
		zap.String("user_id", userID.String()),
		zap.String("event", event),
	)
	return nil
}

func partyFromProfile(id uuid.UUID, p models.Profile) models.PartyResponse {
	return models.PartyResponse{
		ID:    id.String(),
		Name:  p.DisplayName,
		Email: p.Email,
	}
}
