package approval

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	approvalerrors "go-leavedesk/internal/approval/errors"
	"go-leavedesk/internal/employee"
	"go-leavedesk/internal/events"
	"go-leavedesk/internal/messaging/kafka"
	"go-leavedesk/internal/request"
	requesterrors "go-leavedesk/internal/request/errors"
	"go-leavedesk/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=approval_service.go -destination=mock/approval_service_mock.go -package=mock
type Service interface {
	Approve(ctx context.Context, id, level, approverCode string) (request.RequestResponse, error)
	Reject(ctx context.Context, id, level, approverCode, reason string) (request.RequestResponse, error)
}

type service struct {
	db     *sql.DB
	repo   request.Repository
	roster employee.Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo request.Repository,
	roster employee.Repository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, roster, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo request.Repository,
	roster employee.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("approval.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		roster: roster,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Approve(ctx context.Context, id, level, approverCode string) (request.RequestResponse, error) {
	return s.transition(ctx, id, level, approverCode, request.StatusApproved, nil)
}

func (s *service) Reject(ctx context.Context, id, level, approverCode, reason string) (request.RequestResponse, error) {
	if reason == "" {
		return request.RequestResponse{}, approvalerrors.ErrRejectionReasonRequired
	}
	return s.transition(ctx, id, level, approverCode, request.StatusRejected, &reason)
}

// transition applies one approval action under a per-request row lock, so
// two approvers acting concurrently cannot both see their level as next.
func (s *service) transition(ctx context.Context, id, level, approverCode, outcome string, reason *string) (request.RequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("approval transition requested",
		zap.String("request_id", rid),
		zap.String("id", id),
		zap.String("level", level),
		zap.String("approver_code", approverCode),
		zap.String("outcome", outcome),
	)

	if !ValidLevel(level) {
		return request.RequestResponse{}, approvalerrors.ErrInvalidLevel
	}

	approver, err := s.roster.FindByCode(ctx, approverCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return request.RequestResponse{}, approvalerrors.ErrApproverNotFound
		}
		s.logger.Error("approval roster lookup failed", zap.Error(err))
		return request.RequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("approval begin tx failed", zap.Error(err))
		return request.RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	req, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return request.RequestResponse{}, requesterrors.ErrRequestNotFound
		}
		s.logger.Error("approval load request failed", zap.Error(err))
		return request.RequestResponse{}, err
	}

	if req.IsTerminal() || req.NextLevel() != level {
		s.logger.Warn("approval invalid transition",
			zap.String("id", id),
			zap.String("status", req.Status),
			zap.String("next_level", req.NextLevel()),
			zap.String("attempted_level", level),
		)
		return request.RequestResponse{}, approvalerrors.ErrInvalidTransition
	}

	record := &request.Approval{
		ID:              uuid.New(),
		RequestID:       req.ID,
		Seq:             len(req.Approvals) + 1,
		Level:           level,
		Outcome:         outcome,
		ApproverCode:    approver.Code,
		ApproverName:    approver.Name,
		RejectionReason: reason,
		CreatedAt:       time.Now().UTC(),
	}
	if err := qtx.AppendApproval(ctx, record); err != nil {
		s.logger.Error("approval append record failed", zap.Error(err))
		return request.RequestResponse{}, err
	}
	req.Approvals = append(req.Approvals, *record)

	switch outcome {
	case request.StatusApproved:
		// Approved only once every routed level has signed off.
		if req.NextLevel() == "" {
			req.Status = request.StatusApproved
			now := time.Now().UTC()
			req.DecidedAt = &now
		}
	case request.StatusRejected:
		// One rejection terminates the request, whatever levels remain.
		req.Status = request.StatusRejected
		now := time.Now().UTC()
		req.DecidedAt = &now
	}

	if err := qtx.Update(ctx, req); err != nil {
		s.logger.Error("approval persist failed", zap.String("id", id), zap.Error(err))
		return request.RequestResponse{}, err
	}

	if err := s.writeDecidedEvent(ctx, tx, rid, req, record); err != nil {
		return request.RequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("approval commit failed", zap.String("id", id), zap.Error(err))
		return request.RequestResponse{}, err
	}
	s.logger.Info("approval transition success",
		zap.String("request_id", rid),
		zap.String("id", id),
		zap.String("level", level),
		zap.String("outcome", outcome),
		zap.String("status", req.Status),
	)

	return request.MapToResponse(*req), nil
}

func (s *service) writeDecidedEvent(ctx context.Context, tx *sql.Tx, rid string, req *request.Request, record *request.Approval) error {
	if s.outbox == nil {
		return nil
	}

	event := events.RequestDecidedEvent{
		EventType:    events.EventRequestDecided,
		RequestID:    req.ID.String(),
		EmployeeCode: req.EmployeeCode,
		Level:        record.Level,
		Outcome:      record.Outcome,
		Status:       req.Status,
		NextLevel:    req.NextLevel(),
		ActorCode:    record.ApproverCode,
		OccurredAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal decided event failed", zap.Error(err))
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		TraceID:       rid,
		AggregateType: "request",
		AggregateID:   req.ID.String(),
		EventType:     events.EventRequestDecided,
		Topic:         events.RequestLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
