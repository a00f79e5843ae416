package consumer

import (
	"context"
	"encoding/json"

	"go-leavedesk/internal/events"
	"go-leavedesk/internal/notification"
	"go-leavedesk/internal/request"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// LevelInbox returns the notification marker key for an approval level.
// Approval queues are level-wide: every approver holding the level shares
// one pending counter.
func LevelInbox(level string) string {
	return "level:" + level
}

func ConsumeRequestLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.request_lifecycle")
	log.Info("request lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("request lifecycle consumer stopped")
				return
			}
			log.Error("fetch request lifecycle message failed", zap.Error(err))
			continue
		}

		if err := handleLifecycleMessage(ctx, msg, notificationService, log); err != nil {
			log.Error("handle request lifecycle message failed", zap.Error(err))
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit request lifecycle message failed", zap.Error(err))
		}
	}
}

func handleLifecycleMessage(
	ctx context.Context,
	msg kafkago.Message,
	notificationService notification.Service,
	log *zap.Logger,
) error {
	eventType := headerValue(msg, "event_type")

	switch eventType {
	case events.EventRequestSubmitted:
		var event events.RequestSubmittedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode request_submitted event failed", zap.Error(err))
			return nil
		}

		// Auto-approved submissions have no next level, so the badge goes
		// straight back to the requester.
		if event.NextLevel == "" {
			return notificationService.BumpPending(ctx, event.EmployeeCode, notification.KindRequests)
		}
		return notificationService.BumpPending(ctx, LevelInbox(event.NextLevel), notification.KindApprovals)

	case events.EventRequestDecided:
		var event events.RequestDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode request_decided event failed", zap.Error(err))
			return nil
		}

		if err := notificationService.BumpPending(ctx, event.EmployeeCode, notification.KindRequests); err != nil {
			return err
		}
		if event.Status == request.StatusPending && event.NextLevel != "" {
			return notificationService.BumpPending(ctx, LevelInbox(event.NextLevel), notification.KindApprovals)
		}
		return nil

	default:
		log.Warn("skipping unknown lifecycle event", zap.String("event_type", eventType))
		return nil
	}
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
