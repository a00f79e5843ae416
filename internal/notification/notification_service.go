package notification

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Service interface {
	GetStatus(ctx context.Context, userCode, kind string) (StatusResponse, error)
	MarkViewed(ctx context.Context, userCode, kind string) (StatusResponse, error)
	BumpPending(ctx context.Context, userCode, kind string) error
}

type service struct {
	store  Store
	logger *zap.Logger
}

func NewService(store Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{store: store, logger: l}
}

func (s *service) GetStatus(ctx context.Context, userCode, kind string) (StatusResponse, error) {
	lastViewed, err := s.store.GetLastViewed(ctx, userCode, kind)
	if err != nil {
		return StatusResponse{}, err
	}

	pending, err := s.store.GetPending(ctx, userCode, kind)
	if err != nil {
		return StatusResponse{}, err
	}

	resp := StatusResponse{Kind: kind, Pending: pending}
	if lastViewed != nil {
		formatted := lastViewed.UTC().Format(time.RFC3339)
		resp.LastViewed = &formatted
	}
	return resp, nil
}

// MarkViewed records the view timestamp and clears the pending counter in
// one pass, so the badge resets as soon as the inbox is opened.
func (s *service) MarkViewed(ctx context.Context, userCode, kind string) (StatusResponse, error) {
	now := time.Now().UTC()
	if err := s.store.SetLastViewed(ctx, userCode, kind, now); err != nil {
		return StatusResponse{}, err
	}
	if err := s.store.ResetPending(ctx, userCode, kind); err != nil {
		return StatusResponse{}, err
	}

	formatted := now.Format(time.RFC3339)
	return StatusResponse{Kind: kind, LastViewed: &formatted, Pending: 0}, nil
}

func (s *service) BumpPending(ctx context.Context, userCode, kind string) error {
	if err := s.store.IncrPending(ctx, userCode, kind); err != nil {
		s.logger.Warn("pending counter bump failed",
			zap.String("user_code", userCode),
			zap.String("kind", kind),
			zap.Error(err),
		)
		return err
	}
	return nil
}
