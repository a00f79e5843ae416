package holiday

import (
	"context"

	"go-leavedesk/internal/timewindow"

	"go.uber.org/zap"
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	GetInWindow(ctx context.Context, sel timewindow.Selector) ([]HolidayResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetInWindow(ctx context.Context, sel timewindow.Selector) ([]HolidayResponse, error) {
	window, err := timewindow.Resolve(sel)
	if err != nil {
		return nil, err
	}

	holidays, err := s.repo.FindInRange(ctx, window.Start, window.End)
	if err != nil {
		s.logger.Error("list holidays failed", zap.Error(err))
		return nil, err
	}

	resp := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		resp[i] = HolidayResponse{
			ID:       h.ID.String(),
			Name:     h.Name,
			FromDate: h.FromDate.Format("2006-01-02"),
			ToDate:   h.ToDate.Format("2006-01-02"),
			Type:     h.Type,
		}
	}
	return resp, nil
}
