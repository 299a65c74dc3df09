package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"marketplace-contracts-backend/internal/handlers"
	"marketplace-contracts-backend/internal/middleware"
	"marketplace-contracts-backend/internal/models"
	"marketplace-contracts-backend/internal/services"
	"marketplace-contracts-backend/internal/store/memory"
)

type apiFixture struct {
	router   *gin.Engine
	client   uuid.UUID
	provider uuid.UUID
	offer    uuid.UUID
}

// fakeAuth trusts the X-User-ID header. Token verification is covered by the
// middleware tests.
func fakeAuth(c *gin.Context) {
	if id := c.GetHeader("X-User-ID"); id != "" {
		c.Set(middleware.UserIDKey, id)
	}
	c.Next()
}

func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zaptest.NewLogger(t)
	store := memory.New()
	f := &apiFixture{client: uuid.New(), provider: uuid.New(), offer: uuid.New()}
	store.PutProfile(models.Profile{ID: f.client, DisplayName: "Carla", Email: "carla@example.com"})
	store.PutProfile(models.Profile{ID: f.provider, DisplayName: "Pat", Email: "pat@example.com"})
	store.PutOffer(models.Offer{ID: f.offer, ProviderID: f.provider, Title: "Logo design", Price: 300})

	dispatcher := services.NewDispatcher(logger, time.Second)
	t.Cleanup(dispatcher.Wait)
	notifier := services.NewNotifier(store, nil, dispatcher, logger)
	svc := services.NewContractService(store, notifier, nil, dispatcher, logger, 30*24*time.Hour)

	f.router = gin.New()
	api := f.router.Group("/api/v1")
	api.Use(fakeAuth)
	handlers.RegisterRoutes(api, handlers.NewContractsHandler(svc, logger), handlers.NewProviderHandler(svc, logger))
	return f
}

func (f *apiFixture) do(t *testing.T, method, path string, user uuid.UUID, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, "/api/v1"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != uuid.Nil {
		req.Header.Set("X-User-ID", user.String())
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (f *apiFixture) createContract(t *testing.T) models.ContractResponse {
	t.Helper()
	offerID := f.offer
	w := f.do(t, http.MethodPost, "/contracts", f.client, models.CreateContractRequest{
		ServicePathData: models.ServicePathData{
			Title: "New brand",
			Steps: []models.ServicePathStep{
				{Name: "Logo", Price: 300, IsRealOffer: true, OfferID: &offerID},
				{Name: "Print shop visit", Price: 0},
			},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.ContractResponse](t, w)
}

func TestCreateContract(t *testing.T) {
	f := newAPI(t)
	contract := f.createContract(t)

	assert.Equal(t, "PENDING", contract.Status)
	assert.Equal(t, 300.0, contract.TotalPrice)
	assert.Equal(t, "Carla", contract.Client.Name)
	require.Len(t, contract.Steps, 2)
	assert.Equal(t, f.provider.String(), contract.Steps[0].ProviderID)
	assert.Equal(t, "Pat", contract.Steps[0].Provider.Name)
	assert.Equal(t, "Logo design", contract.Steps[0].Offer.Title)
	assert.Nil(t, contract.Steps[1].Provider)
	assert.Equal(t, models.StepSignatureUnsigned, contract.Steps[0].SignatureStatus)
}

func TestCreateContract_BadRequests(t *testing.T) {
	f := newAPI(t)

	w := f.do(t, http.MethodPost, "/contracts", f.client, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/contracts", f.client, models.CreateContractRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", decode[models.ErrorResponse](t, w).Error)

	w = f.do(t, http.MethodPost, "/contracts", uuid.Nil, models.CreateContractRequest{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetContract(t *testing.T) {
	f := newAPI(t)
	contract := f.createContract(t)

	w := f.do(t, http.MethodGet, "/contracts/"+contract.ID, f.client, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/contracts/"+contract.ID, f.provider, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(t, http.MethodGet, "/contracts/"+uuid.NewString(), f.client, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodGet, "/contracts/not-a-uuid", f.client, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStatus(t *testing.T) {
	f := newAPI(t)
	contract := f.createContract(t)

	for _, user := range []uuid.UUID{f.client, f.provider} {
		w := f.do(t, http.MethodGet, "/contracts/"+contract.ID+"/status", user, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		status := decode[models.StatusResponse](t, w)
		assert.Equal(t, contract.ID, status.ContractID)
		assert.Equal(t, "PENDING", status.Status)
		assert.Equal(t, models.SignatureStatusUnsigned, status.SignatureStatus)
		assert.Equal(t, contract.Version, status.Version)
	}

	w := f.do(t, http.MethodGet, "/contracts/"+contract.ID+"/status", uuid.New(), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListContracts(t *testing.T) {
	f := newAPI(t)
	f.createContract(t)

	w := f.do(t, http.MethodGet, "/contracts?role=provider", f.provider, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.ContractListResponse](t, w)
	require.Len(t, list.Contracts, 1)
	assert.Len(t, list.Contracts[0].Steps, 1)

	w = f.do(t, http.MethodGet, "/contracts?role=admin", f.provider, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSigningFlow(t *testing.T) {
	f := newAPI(t)
	contract := f.createContract(t)
	stepID := contract.Steps[0].ID

	w := f.do(t, http.MethodPost, "/contracts/"+contract.ID+"/steps/"+stepID+"/sign", f.provider, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "client_signature_required", decode[models.ErrorResponse](t, w).Error)

	w = f.do(t, http.MethodPost, "/contracts/"+contract.ID+"/sign", f.client, map[string]bool{"signAll": false})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/contracts/"+contract.ID+"/sign", f.provider, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(t, http.MethodPost, "/contracts/"+contract.ID+"/sign", f.client, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	signed := decode[models.ContractResponse](t, w)
	assert.Equal(t, "CLIENT_SIGNED", signed.Status)
	assert.NotNil(t, signed.ClientSignedAt)

	w = f.do(t, http.MethodPost, "/contracts/"+contract.ID+"/sign", f.client, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "already_signed", decode[models.ErrorResponse](t, w).Error)

	w = f.do(t, http.MethodPost, "/contracts/"+contract.ID+"/steps/"+stepID+"/sign", f.provider, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	step := decode[models.StepResponse](t, w)
	assert.Equal(t, models.StepSignatureSigned, step.SignatureStatus)
	assert.Equal(t, models.SignatureStatusFullySigned, step.Contract.SignatureStatus)
	assert.Equal(t, "FULLY_SIGNED", step.Contract.Status)
}

func TestUpdateStepStatus(t *testing.T) {
	f := newAPI(t)
	contract := f.createContract(t)
	path := "/contracts/" + contract.ID + "/steps/" + contract.Steps[0].ID

	w := f.do(t, http.MethodPatch, path, f.provider, models.UpdateStepStatusRequest{Status: "DONE"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPatch, path, f.provider, models.UpdateStepStatusRequest{Status: models.StepStatusCompleted})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_transition", decode[models.ErrorResponse](t, w).Error)

	w = f.do(t, http.MethodPatch, path, uuid.New(), models.UpdateStepStatusRequest{Status: models.StepStatusAccepted})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(t, http.MethodPatch, "/contracts/"+contract.ID+"/steps/"+uuid.NewString(), f.provider, models.UpdateStepStatusRequest{Status: models.StepStatusAccepted})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPatch, path, f.provider, models.UpdateStepStatusRequest{Status: models.StepStatusAccepted})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	step := decode[models.StepResponse](t, w)
	assert.Equal(t, models.StepStatusAccepted, step.Status)
	assert.Equal(t, "IN_PROGRESS", step.Contract.Status)
	assert.Equal(t, "Logo design", step.Offer.Title)
}

func TestProviderAcceptReject(t *testing.T) {
	f := newAPI(t)
	contract := f.createContract(t)
	stepID := contract.Steps[0].ID
	deadline := time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339)

	w := f.do(t, http.MethodGet, "/provider/notifications", f.provider, nil)
	require.Equal(t, http.StatusOK, w.Code)
	notes := decode[models.NotificationsResponse](t, w)
	require.Equal(t, 1, notes.Count)
	assert.Equal(t, 1, notes.Notifications[0].PendingStepsCount)
	assert.Equal(t, "Carla", notes.Notifications[0].Client.Name)

	w = f.do(t, http.MethodPost, "/provider/contracts/"+stepID+"/accept", f.provider, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/provider/contracts/"+stepID+"/accept", f.provider, models.AcceptStepRequest{Deadline: "tomorrow"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/provider/contracts/"+stepID+"/accept", f.client, models.AcceptStepRequest{Deadline: deadline})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPost, "/provider/contracts/"+stepID+"/accept", f.provider, models.AcceptStepRequest{Deadline: deadline})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	step := decode[models.StepResponse](t, w)
	assert.Equal(t, models.StepStatusAccepted, step.Status)
	require.NotNil(t, step.Deadline)

	w = f.do(t, http.MethodPost, "/provider/contracts/"+stepID+"/reject", f.provider, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodGet, "/provider/projects", f.provider, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[models.ProjectsResponse](t, w).Projects, 1)

	w = f.do(t, http.MethodGet, "/contracts/notifications", f.client, nil)
	require.Equal(t, http.StatusOK, w.Code)
	feed := decode[models.ClientFeedResponse](t, w)
	require.Equal(t, 1, feed.Count)
	assert.Equal(t, "STEP_ACCEPTED", feed.Items[0].Event)
}

func TestProviderReject(t *testing.T) {
	f := newAPI(t)
	contract := f.createContract(t)

	w := f.do(t, http.MethodPost, "/provider/contracts/"+contract.Steps[0].ID+"/reject", f.provider, models.RejectStepRequest{Reason: "busy"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	step := decode[models.StepResponse](t, w)
	assert.Equal(t, models.StepStatusRejected, step.Status)
	assert.Equal(t, "busy", step.RejectionReason)

	w = f.do(t, http.MethodGet, "/contracts/"+contract.ID, f.client, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[models.ContractResponse](t, w).NeedsAttention)

	w = f.do(t, http.MethodPost, "/contracts/"+contract.ID+"/sign", f.client, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "step_rejected", decode[models.ErrorResponse](t, w).Error)
}

func TestProviderAccept_NotFoundWinsOverPastDeadline(t *testing.T) {
	f := newAPI(t)
	contract := f.createContract(t)
	past := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)

	w := f.do(t, http.MethodPost, "/provider/contracts/"+contract.Steps[0].ID+"/accept", f.client, models.AcceptStepRequest{Deadline: past})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPost, "/provider/contracts/"+uuid.NewString()+"/accept", f.provider, models.AcceptStepRequest{Deadline: past})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPost, "/provider/contracts/"+contract.Steps[0].ID+"/accept", f.provider, models.AcceptStepRequest{Deadline: past})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", decode[models.ErrorResponse](t, w).Error)
}
