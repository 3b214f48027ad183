package impl

import (
	"context"
	"fmt"
	"log/slog"

	"flock/config"
	deliverycontext "flock/internal/delivery/context"
	"flock/internal/domain/entity"
	"flock/internal/domain/repository"
	"flock/internal/domain/service"
	"flock/internal/usecase"

	"go.uber.org/fx"
)

type pushDispatcher struct {
	provider   service.PushProvider
	deviceRepo repository.DeviceRepository
	batchSize  int
	logger     *slog.Logger
}

// PushDispatcherParams holds dependencies for PushDispatcher, injected by Fx.
type PushDispatcherParams struct {
	fx.In

	Provider   service.PushProvider
	DeviceRepo repository.DeviceRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewPushDispatcher creates a dispatcher. The configured batch size is clamped
// to what the provider accepts per request.
func NewPushDispatcher(params PushDispatcherParams) usecase.PushDispatcher {
	batchSize := params.Provider.MaxBatchSize()
	if params.Config != nil && params.Config.Push != nil {
		if size := params.Config.Push.BatchSize; size > 0 && size < batchSize {
			batchSize = size
		}
	}

	return &pushDispatcher{
		provider:   params.Provider,
		deviceRepo: params.DeviceRepo,
		batchSize:  batchSize,
		logger:     params.Logger,
	}
}

func (d *pushDispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// Dispatch sends content to targets chunk by chunk. A failed chunk is logged
// and the next one is still attempted; nothing is retried.
func (d *pushDispatcher) Dispatch(ctx context.Context, targets []entity.PushTarget, content entity.NotificationContent) *entity.DispatchSummary {
	summary := &entity.DispatchSummary{Requested: len(targets)}
	logger := d.log(ctx).With(slog.String("provider", d.provider.Name()))

	valid := d.filterTargets(logger, targets, summary)
	if len(valid) == 0 {
		logger.Info("No valid push tokens to dispatch", slog.Int("requested", summary.Requested))

		return summary
	}

	data := pushData(content)
	var unregistered []string

	for start := 0; start < len(valid); start += d.batchSize {
		end := min(start+d.batchSize, len(valid))
		chunk := valid[start:end]
		summary.Batches++

		tickets, err := d.sendChunk(ctx, chunk, content, data)
		if err != nil {
			summary.Failed += len(chunk)
			logger.Error("Push batch failed",
				slog.Int("batch", summary.Batches),
				slog.Int("size", len(chunk)),
				slog.Any("error", err),
			)

			continue
		}

		for i, target := range chunk {
			if i >= len(tickets) {
				summary.Failed++
				logger.Warn("Push provider returned no ticket",
					slog.String("user_id", target.UserID.String()),
					slog.String("token", target.Token),
				)

				continue
			}

			ticket := tickets[i]
			ticket.Token = target.Token
			ticket.UserID = target.UserID
			ticket.DeviceID = target.DeviceID

			if ticket.Status == entity.TicketStatusOK {
				summary.Sent++

				continue
			}

			summary.Failed++
			logger.Warn("Push ticket error",
				slog.String("user_id", ticket.UserID.String()),
				slog.String("device_id", ticket.DeviceID),
				slog.String("token", ticket.Token),
				slog.String("message", ticket.Message),
				slog.String("detail", ticket.ErrorDetail),
			)

			if ticket.IsUnregistered() {
				unregistered = append(unregistered, ticket.Token)
			}
		}
	}

	summary.Pruned = d.pruneTokens(ctx, logger, unregistered)

	logger.Info("Push dispatch finished",
		slog.Int("requested", summary.Requested),
		slog.Int("invalid", summary.Invalid),
		slog.Int("batches", summary.Batches),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
		slog.Int("pruned", summary.Pruned),
	)

	return summary
}

// filterTargets drops malformed tokens and repeated tokens. A token shared by
// two registrations is pushed once, attributed to its first owner.
func (d *pushDispatcher) filterTargets(logger *slog.Logger, targets []entity.PushTarget, summary *entity.DispatchSummary) []entity.PushTarget {
	seen := make(map[string]struct{}, len(targets))
	valid := make([]entity.PushTarget, 0, len(targets))

	for _, target := range targets {
		if !d.provider.IsValidToken(target.Token) {
			summary.Invalid++
			logger.Warn("Skipping invalid push token",
				slog.String("user_id", target.UserID.String()),
				slog.String("device_id", target.DeviceID),
				slog.String("token", target.Token),
			)

			continue
		}

		if _, ok := seen[target.Token]; ok {
			continue
		}
		seen[target.Token] = struct{}{}
		valid = append(valid, target)
	}

	return valid
}

// sendChunk makes one provider call. A provider panic is reported as a chunk
// failure so it cannot escape the dispatcher.
func (d *pushDispatcher) sendChunk(
	ctx context.Context,
	chunk []entity.PushTarget,
	content entity.NotificationContent,
	data map[string]any,
) (tickets []entity.DispatchTicket, err error) {
	defer func() {
		if r := recover(); r != nil {
			tickets = nil
			err = fmt.Errorf("push provider panicked: %v", r)
		}
	}()

	messages := make([]service.PushMessage, len(chunk))
	for i, target := range chunk {
		messages[i] = service.PushMessage{
			To:       target.Token,
			Title:    content.Title,
			Body:     content.Message,
			Data:     data,
			Sound:    service.PushSoundDefault,
			Priority: service.PushPriorityHigh,
			Badge:    service.PushBadge,
		}
	}

	return d.provider.Send(ctx, messages)
}

func (d *pushDispatcher) pruneTokens(ctx context.Context, logger *slog.Logger, tokens []string) int {
	if len(tokens) == 0 {
		return 0
	}

	removed, err := d.deviceRepo.DeleteByTokens(ctx, tokens)
	if err != nil {
		logger.Warn("Failed to prune unregistered push tokens",
			slog.Int("tokens", len(tokens)),
			slog.Any("error", err),
		)

		return 0
	}

	return int(removed)
}

// pushData is the payload the app receives alongside the banner.
func pushData(content entity.NotificationContent) map[string]any {
	data := make(map[string]any, len(content.Data)+1)
	for k, v := range content.Data {
		data[k] = v
	}
	data["type"] = string(content.Type)

	return data
}
