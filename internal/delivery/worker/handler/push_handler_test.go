package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"opinator/config"
	"opinator/internal/domain/entity"
	"opinator/internal/domain/repository"
	"opinator/internal/domain/service"
	mockRepo "opinator/internal/mocks/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T, txManager repository.TransactionManager) *PushHandler {
	t.Helper()

	return NewPushHandler(PushHandlerParams{
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		TxManager: txManager,
	})
}

func pushRequest(t *testing.T, event *service.ChangeEvent) *http.Request {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.MessageID = "1"
	pushMsg.Subscription = "projects/local/subscriptions/change-event-sub"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestPushHandler_StoresDecodedEvent(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().EventRepo().Return(eventRepo)
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	occurredAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	eventRepo.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.Event")).
		RunAndReturn(func(_ context.Context, stored *entity.Event) error {
			assert.Equal(t, "review", stored.Category)
			assert.Equal(t, "created", stored.Type)
			assert.Equal(t, occurredAt, stored.Timestamp)
			assert.Equal(t, "a@x.io", stored.Data["email"])

			return nil
		})

	h := newPushHandler(t, txManager)
	e := echo.New()
	req := pushRequest(t, &service.ChangeEvent{
		EventID:    "evt-1",
		Category:   "review",
		Type:       "created",
		OccurredAt: occurredAt,
		Data:       map[string]any{"email": "a@x.io"},
	})
	rec := httptest.NewRecorder()

	err := h.HandlePush(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_BadPayloadIsNotRetried(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	h := newPushHandler(t, txManager)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = "not-base64!!"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e := echo.New()
	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_StorageFailureTriggersRetry(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	h := newPushHandler(t, txManager)
	e := echo.New()
	req := pushRequest(t, &service.ChangeEvent{
		EventID:    "evt-2",
		Category:   "vote",
		Type:       "deleted",
		OccurredAt: time.Now().UTC(),
		Data:       map[string]any{"voteId": float64(9)},
	})
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
