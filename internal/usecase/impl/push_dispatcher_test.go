package impl

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"flock/config"
	"flock/internal/domain/entity"
	"flock/internal/domain/service"
	mockRepo "flock/internal/mocks/repository"
	mockSvc "flock/internal/mocks/service"
	"flock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushDispatcherFixtures struct {
	dispatcher usecase.PushDispatcher
	provider   *mockSvc.MockPushProvider
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestPushDispatcher(t *testing.T, maxBatch, configuredBatch int) pushDispatcherFixtures {
	provider := mockSvc.NewMockPushProvider(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	provider.EXPECT().MaxBatchSize().Return(maxBatch)
	provider.EXPECT().Name().Return("expo").Maybe()
	provider.EXPECT().IsValidToken(mock.Anything).RunAndReturn(func(token string) bool {
		return strings.HasPrefix(token, "ExponentPushToken[")
	}).Maybe()

	cfg := newTestConfig()
	cfg.Push = &config.PushConfig{Provider: "expo", BatchSize: configuredBatch}

	dispatcher := NewPushDispatcher(PushDispatcherParams{
		Provider:   provider,
		DeviceRepo: deviceRepo,
		Config:     cfg,
		Logger:     newDiscardLogger(),
	})

	return pushDispatcherFixtures{
		dispatcher: dispatcher,
		provider:   provider,
		deviceRepo: deviceRepo,
	}
}

func makeTargets(n int) []entity.PushTarget {
	targets := make([]entity.PushTarget, n)
	for i := range targets {
		targets[i] = entity.PushTarget{
			UserID:   uuid.New(),
			DeviceID: fmt.Sprintf("device-%d", i),
			Token:    fmt.Sprintf("ExponentPushToken[%04d]", i),
		}
	}

	return targets
}

func okTickets(messages []service.PushMessage) ([]entity.DispatchTicket, error) {
	tickets := make([]entity.DispatchTicket, len(messages))
	for i := range messages {
		tickets[i] = entity.DispatchTicket{Status: entity.TicketStatusOK, ID: fmt.Sprintf("receipt-%d", i)}
	}

	return tickets, nil
}

var testContent = entity.NotificationContent{
	Title:   "Choir practice",
	Message: "Moved to 7pm tonight",
	Type:    entity.NotificationTypeMeeting,
	Data:    map[string]any{"eventId": "42"},
}

func TestPushDispatcher_ChunksByProviderLimit(t *testing.T) {
	fx := createTestPushDispatcher(t, 100, 0)
	ctx := context.Background()

	var sizes []int
	fx.provider.EXPECT().Send(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, messages []service.PushMessage) ([]entity.DispatchTicket, error) {
			sizes = append(sizes, len(messages))

			return okTickets(messages)
		}).Times(3)

	summary := fx.dispatcher.Dispatch(ctx, makeTargets(250), testContent)

	assert.Equal(t, []int{100, 100, 50}, sizes)
	assert.Equal(t, &entity.DispatchSummary{Requested: 250, Batches: 3, Sent: 250}, summary)
}

func TestPushDispatcher_ConfiguredBatchSizeIsClamped(t *testing.T) {
	tests := []struct {
		name       string
		maxBatch   int
		configured int
		targets    int
		wantSizes  []int
	}{
		{name: "smaller than provider limit", maxBatch: 100, configured: 2, targets: 5, wantSizes: []int{2, 2, 1}},
		{name: "larger than provider limit", maxBatch: 3, configured: 1000, targets: 5, wantSizes: []int{3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPushDispatcher(t, tt.maxBatch, tt.configured)
			ctx := context.Background()

			var sizes []int
			fx.provider.EXPECT().Send(ctx, mock.Anything).
				RunAndReturn(func(_ context.Context, messages []service.PushMessage) ([]entity.DispatchTicket, error) {
					sizes = append(sizes, len(messages))

					return okTickets(messages)
				})

			fx.dispatcher.Dispatch(ctx, makeTargets(tt.targets), testContent)
			assert.Equal(t, tt.wantSizes, sizes)
		})
	}
}

func TestPushDispatcher_MessageShape(t *testing.T) {
	fx := createTestPushDispatcher(t, 100, 0)
	ctx := context.Background()
	targets := makeTargets(1)

	fx.provider.EXPECT().Send(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, messages []service.PushMessage) ([]entity.DispatchTicket, error) {
			require.Len(t, messages, 1)
			msg := messages[0]
			assert.Equal(t, targets[0].Token, msg.To)
			assert.Equal(t, "Choir practice", msg.Title)
			assert.Equal(t, "Moved to 7pm tonight", msg.Body)
			assert.Equal(t, "default", msg.Sound)
			assert.Equal(t, "high", msg.Priority)
			assert.Equal(t, 1, msg.Badge)
			assert.Equal(t, map[string]any{"eventId": "42", "type": "meeting"}, msg.Data)

			return okTickets(messages)
		})

	fx.dispatcher.Dispatch(ctx, targets, testContent)
}

func TestPushDispatcher_SkipsInvalidAndDuplicateTokens(t *testing.T) {
	fx := createTestPushDispatcher(t, 100, 0)
	ctx := context.Background()
	targets := makeTargets(2)
	targets = append(targets,
		entity.PushTarget{UserID: uuid.New(), DeviceID: "legacy", Token: "not-a-token"},
		entity.PushTarget{UserID: uuid.New(), DeviceID: "shared", Token: targets[0].Token},
	)

	fx.provider.EXPECT().Send(ctx, mock.MatchedBy(func(messages []service.PushMessage) bool {
		return len(messages) == 2
	})).RunAndReturn(func(_ context.Context, messages []service.PushMessage) ([]entity.DispatchTicket, error) {
		return okTickets(messages)
	})

	summary := fx.dispatcher.Dispatch(ctx, targets, testContent)
	assert.Equal(t, 4, summary.Requested)
	assert.Equal(t, 1, summary.Invalid)
	assert.Equal(t, 2, summary.Sent)
}

func TestPushDispatcher_NoValidTokens(t *testing.T) {
	fx := createTestPushDispatcher(t, 100, 0)

	summary := fx.dispatcher.Dispatch(context.Background(), []entity.PushTarget{{Token: "bogus"}}, testContent)

	assert.Equal(t, &entity.DispatchSummary{Requested: 1, Invalid: 1}, summary)
	fx.provider.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestPushDispatcher_BatchFailureDoesNotStopLaterBatches(t *testing.T) {
	fx := createTestPushDispatcher(t, 2, 0)
	ctx := context.Background()

	fx.provider.EXPECT().Send(ctx, mock.Anything).Return(nil, errors.New("503 service unavailable")).Once()
	fx.provider.EXPECT().Send(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, messages []service.PushMessage) ([]entity.DispatchTicket, error) {
			return okTickets(messages)
		}).Times(2)

	summary := fx.dispatcher.Dispatch(ctx, makeTargets(6), testContent)

	assert.Equal(t, 3, summary.Batches)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 4, summary.Sent)
}

func TestPushDispatcher_ProviderPanicIsContained(t *testing.T) {
	fx := createTestPushDispatcher(t, 100, 0)
	ctx := context.Background()

	fx.provider.EXPECT().Send(ctx, mock.Anything).
		RunAndReturn(func(context.Context, []service.PushMessage) ([]entity.DispatchTicket, error) {
			panic("nil map write")
		})

	var summary *entity.DispatchSummary
	require.NotPanics(t, func() {
		summary = fx.dispatcher.Dispatch(ctx, makeTargets(3), testContent)
	})
	assert.Equal(t, 3, summary.Failed)
}

func TestPushDispatcher_ErrorTicketsAndPruning(t *testing.T) {
	fx := createTestPushDispatcher(t, 100, 0)
	ctx := context.Background()
	targets := makeTargets(3)

	fx.provider.EXPECT().Send(ctx, mock.Anything).Return([]entity.DispatchTicket{
		{Status: entity.TicketStatusOK, ID: "r1"},
		{Status: entity.TicketStatusError, Message: "not registered", ErrorDetail: entity.TicketErrorDeviceNotRegistered},
		{Status: entity.TicketStatusError, Message: "rate exceeded", ErrorDetail: "MessageRateExceeded"},
	}, nil)
	fx.deviceRepo.EXPECT().DeleteByTokens(ctx, []string{targets[1].Token}).Return(int64(1), nil)

	summary := fx.dispatcher.Dispatch(ctx, targets, testContent)

	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 1, summary.Pruned)
}

func TestPushDispatcher_PruneFailureIsSwallowed(t *testing.T) {
	fx := createTestPushDispatcher(t, 100, 0)
	ctx := context.Background()

	fx.provider.EXPECT().Send(ctx, mock.Anything).Return([]entity.DispatchTicket{
		{Status: entity.TicketStatusError, ErrorDetail: entity.TicketErrorDeviceNotRegistered},
	}, nil)
	fx.deviceRepo.EXPECT().DeleteByTokens(ctx, mock.Anything).Return(int64(0), errors.New("deadlock"))

	summary := fx.dispatcher.Dispatch(ctx, makeTargets(1), testContent)

	assert.Equal(t, 1, summary.Failed)
	assert.Zero(t, summary.Pruned)
}

func TestPushDispatcher_MissingTicketsCountAsFailed(t *testing.T) {
	fx := createTestPushDispatcher(t, 100, 0)
	ctx := context.Background()

	fx.provider.EXPECT().Send(ctx, mock.Anything).Return([]entity.DispatchTicket{
		{Status: entity.TicketStatusOK},
	}, nil)

	summary := fx.dispatcher.Dispatch(ctx, makeTargets(3), testContent)

	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 2, summary.Failed)
}
