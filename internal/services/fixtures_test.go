package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"
	"marketplace-contracts-backend/internal/models"
	"marketplace-contracts-backend/internal/services"
	"marketplace-contracts-backend/internal/store/memory"
)

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type publishedEvent struct {
	UserID  uuid.UUID
	Event   string
	Payload models.ContractNotification
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []publishedEvent
	fail   map[uuid.UUID]bool
}

func (b *recordingBroadcaster) PublishUserEvent(_ context.Context, userID uuid.UUID, event string, payload any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail[userID] {
		return errors.New("realtime unavailable")
	}
	n, _ := payload.(models.ContractNotification)
	b.events = append(b.events, publishedEvent{UserID: userID, Event: event, Payload: n})
	return nil
}

func (b *recordingBroadcaster) byUser() map[uuid.UUID]publishedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[uuid.UUID]publishedEvent, len(b.events))
	for _, e := range b.events {
		out[e.UserID] = e
	}
	return out
}

func (b *recordingBroadcaster) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

type recordingArchiver struct {
	mu        sync.Mutex
	snapshots map[uuid.UUID][]byte
	uploads   int
}

func (a *recordingArchiver) ArchiveContract(_ context.Context, clientID, contractID uuid.UUID, snapshot []byte) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.snapshots == nil {
		a.snapshots = make(map[uuid.UUID][]byte)
	}
	a.snapshots[contractID] = snapshot
	a.uploads++
	return fmt.Sprintf("clients/%s/contracts/%s/signed.json", clientID, contractID), nil
}

func (a *recordingArchiver) PublicURL(path string) string {
	return "https://storage.test/" + path
}

func (a *recordingArchiver) uploadCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.uploads
}

func (a *recordingArchiver) archived(contractID uuid.UUID) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.snapshots[contractID]
	return ok
}

type env struct {
	store       *memory.Store
	broadcaster *recordingBroadcaster
	archiver    *recordingArchiver
	dispatcher  *services.Dispatcher
	svc         *services.ContractService

	client    uuid.UUID
	provider1 uuid.UUID
	provider2 uuid.UUID
	offer1a   uuid.UUID
	offer1b   uuid.UUID
	offer2    uuid.UUID
}

func newEnv(t *testing.T) *env {
	t.Helper()

	logger := zaptest.NewLogger(t)
	e := &env{
		store:       memory.New(),
		broadcaster: &recordingBroadcaster{},
		archiver:    &recordingArchiver{},
		client:      uuid.New(),
		provider1:   uuid.New(),
		provider2:   uuid.New(),
		offer1a:     uuid.New(),
		offer1b:     uuid.New(),
		offer2:      uuid.New(),
	}
	e.dispatcher = services.NewDispatcher(logger, time.Second)
	t.Cleanup(e.dispatcher.Wait)

	e.store.PutProfile(models.Profile{ID: e.client, DisplayName: "Carla Client", Email: "carla@example.com"})
	e.store.PutProfile(models.Profile{ID: e.provider1, DisplayName: "Pat One", Email: "pat@example.com"})
	e.store.PutProfile(models.Profile{ID: e.provider2, DisplayName: "Sam Two", Email: "sam@example.com"})
	e.store.PutOffer(models.Offer{ID: e.offer1a, ProviderID: e.provider1, Title: "Logo", Price: 100})
	e.store.PutOffer(models.Offer{ID: e.offer1b, ProviderID: e.provider1, Title: "Brand book", Price: 250})
	e.store.PutOffer(models.Offer{ID: e.offer2, ProviderID: e.provider2, Title: "Website", Price: 900})

	notifier := services.NewNotifier(e.store, e.broadcaster, e.dispatcher, logger)
	e.svc = services.NewContractService(e.store, notifier, e.archiver, e.dispatcher, logger, 30*24*time.Hour)
	e.svc.SetClock(func() time.Time { return testNow })
	return e
}

func offerStep(name string, price float64, offerID uuid.UUID) models.ServicePathStep {
	id := offerID
	return models.ServicePathStep{Name: name, Price: price, Duration: "1 week", IsRealOffer: true, OfferID: &id}
}

// createThreeStep creates a contract with steps for P1, P1 and P2.
func (e *env) createThreeStep(t *testing.T) *services.ContractView {
	t.Helper()
	view, err := e.svc.CreateContract(context.Background(), e.client, models.ServicePathData{
		Title:             "Brand launch",
		Description:       "Everything for the launch",
		EstimatedDuration: "6 weeks",
		Steps: []models.ServicePathStep{
			offerStep("Logo", 100, e.offer1a),
			offerStep("Brand book", 250, e.offer1b),
			offerStep("Website", 900, e.offer2),
		},
	})
	if err != nil {
		t.Fatalf("create contract: %v", err)
	}
	return view
}

// createSingle creates a contract with one step for P1.
func (e *env) createSingle(t *testing.T) *services.ContractView {
	t.Helper()
	view, err := e.svc.CreateContract(context.Background(), e.client, models.ServicePathData{
		Title: "Logo only",
		Steps: []models.ServicePathStep{offerStep("Logo", 100, e.offer1a)},
	})
	if err != nil {
		t.Fatalf("create contract: %v", err)
	}
	return view
}

func (e *env) stored(t *testing.T, contractID uuid.UUID) *models.ContractAggregate {
	t.Helper()
	agg, err := e.store.GetContract(context.Background(), contractID)
	if err != nil {
		t.Fatalf("get contract: %v", err)
	}
	return agg
}
