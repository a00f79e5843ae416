package request

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-leavedesk/internal/employee"
	employeeerrors "go-leavedesk/internal/employee/errors"
	"go-leavedesk/internal/events"
	"go-leavedesk/internal/messaging/kafka"
	requesterrors "go-leavedesk/internal/request/errors"
	"go-leavedesk/internal/shared/contextutil"
	"go-leavedesk/internal/timewindow"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RoutingPolicy supplies the ordered approval levels a requester's role
// must pass. The concrete policy lives in the approval package.
type RoutingPolicy interface {
	LevelsFor(role string) []string
}

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, actorCode string, draft CreateRequestDraft) (RequestResponse, error)
	GetByID(ctx context.Context, id string) (RequestResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]RequestResponse, int64, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	roster  employee.Repository
	routing RoutingPolicy
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	roster employee.Repository,
	routing RoutingPolicy,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, roster, routing, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	roster employee.Repository,
	routing RoutingPolicy,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		roster:  roster,
		routing: routing,
		outbox:  outboxRepo,
		logger:  l,
	}
}

func (s *service) Submit(ctx context.Context, actorCode string, draft CreateRequestDraft) (RequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit request requested",
		zap.String("request_id", rid),
		zap.String("employee_code", actorCode),
		zap.String("type", draft.Type),
		zap.String("start_date", draft.StartDate),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit request begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	requester, err := s.roster.FindByCode(ctx, actorCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("submit request roster lookup failed", zap.Error(err))
		return RequestResponse{}, err
	}
	if !employee.IsKnownRole(requester.Role) {
		s.logger.Warn("submit request unknown role",
			zap.String("employee_code", actorCode),
			zap.String("role", requester.Role),
		)
		return RequestResponse{}, employeeerrors.ErrUnknownRole
	}

	var alternative *employee.Employee
	snapshotCodes := []string{actorCode}
	if draft.AlternativeCode != "" && draft.AlternativeCode != actorCode {
		alt, err := s.roster.FindByCode(ctx, draft.AlternativeCode)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("submit request alternative lookup failed", zap.Error(err))
			return RequestResponse{}, err
		}
		if err == nil {
			alternative = alt
		}
		snapshotCodes = append(snapshotCodes, draft.AlternativeCode)
	}

	existing, err := qtx.FindActiveForEmployees(ctx, snapshotCodes)
	if err != nil {
		s.logger.Error("submit request snapshot failed", zap.Error(err))
		return RequestResponse{}, err
	}

	actor := ActorContext{
		Code:       requester.Code,
		Name:       requester.Name,
		Role:       requester.Role,
		Department: requester.Department,
	}
	normalized, violations := Validate(draft, actor, alternative, existing, uuid.Nil)
	if len(violations) > 0 {
		s.logger.Warn("submit request validation failed",
			zap.String("employee_code", actorCode),
			zap.Int("violations", len(violations)),
		)
		return RequestResponse{}, violations
	}

	levels := s.routing.LevelsFor(requester.Role)
	req := &Request{
		ID:              uuid.New(),
		EmployeeCode:    requester.Code,
		Type:            normalized.Type,
		LeaveMode:       normalized.LeaveMode,
		HalfDaySession:  normalized.HalfDaySession,
		StartDate:       normalized.StartDate,
		EndDate:         normalized.EndDate,
		StartTime:       normalized.StartTime,
		EndTime:         normalized.EndTime,
		Reason:          normalized.Reason,
		AlternativeCode: normalized.AlternativeCode,
		DayCount:        normalized.DayCount,
		Status:          StatusPending,
		RequesterRole:   requester.Role,
		RequiredLevels:  joinLevels(levels),
	}
	if len(levels) == 0 {
		// No gating for this role: effective immediately.
		req.Status = StatusApproved
		now := time.Now().UTC()
		req.DecidedAt = &now
	}

	if err := qtx.Create(ctx, req); err != nil {
		s.logger.Error("submit request persist failed", zap.Error(err))
		return RequestResponse{}, mapRepositoryError(err)
	}

	if err := s.writeSubmittedEvent(ctx, tx, rid, req); err != nil {
		return RequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit request commit failed", zap.Error(err))
		return RequestResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("submit request success",
		zap.String("request_id", rid),
		zap.String("id", req.ID.String()),
		zap.String("employee_code", req.EmployeeCode),
		zap.String("status", req.Status),
	)

	return MapToResponse(*req), nil
}

func (s *service) writeSubmittedEvent(ctx context.Context, tx *sql.Tx, rid string, req *Request) error {
	if s.outbox == nil {
		return nil
	}

	event := events.RequestSubmittedEvent{
		EventType:    events.EventRequestSubmitted,
		RequestID:    req.ID.String(),
		EmployeeCode: req.EmployeeCode,
		Type:         req.Type,
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		NextLevel:    req.NextLevel(),
		OccurredAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal submitted event failed", zap.Error(err))
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		TraceID:       rid,
		AggregateType: "request",
		AggregateID:   req.ID.String(),
		EventType:     events.EventRequestSubmitted,
		Topic:         events.RequestLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetByID(ctx context.Context, id string) (RequestResponse, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, requesterrors.ErrRequestNotFound
		}
		return RequestResponse{}, err
	}
	return MapToResponse(*req), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]RequestResponse, int64, error) {
	repoFilter := Filter{
		EmployeeCode: filter.EmployeeCode,
		Status:       filter.Status,
	}
	if filter.Granularity != "" {
		window, err := timewindow.Resolve(timewindow.Selector{
			Granularity: filter.Granularity,
			Date:        filter.Date,
			Year:        filter.Year,
			Month:       filter.Month,
			Week:        filter.Week,
		})
		if err != nil {
			return nil, 0, err
		}
		repoFilter.WindowStart = window.Start
		repoFilter.WindowEnd = window.End
	}
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		repoFilter.Limit = filter.PageSize
		repoFilter.Offset = (page - 1) * filter.PageSize
	}

	total, err := s.repo.Count(ctx, repoFilter)
	if err != nil {
		s.logger.Error("count requests failed", zap.Error(err))
		return nil, 0, err
	}

	requests, err := s.repo.FindAll(ctx, repoFilter)
	if err != nil {
		s.logger.Error("list requests failed", zap.Error(err))
		return nil, 0, err
	}

	resp := make([]RequestResponse, len(requests))
	for i, r := range requests {
		resp[i] = MapToResponse(r)
	}
	return resp, total, nil
}

func joinLevels(levels []string) string {
	out := ""
	for i, l := range levels {
		if i > 0 {
			out += ","
		}
		out += l
	}
	return out
}

// MapToResponse is shared with the approval handlers, which return the same
// representation after a transition.
func MapToResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:              r.ID.String(),
		EmployeeCode:    r.EmployeeCode,
		Type:            r.Type,
		LeaveMode:       r.LeaveMode,
		HalfDaySession:  r.HalfDaySession,
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Reason:          r.Reason,
		AlternativeCode: r.AlternativeCode,
		DayCount:        r.DayCount,
		Status:          r.Status,
		RequiredLevels:  r.RequiredLevelList(),
		NextLevel:       r.NextLevel(),
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
	resp.Approvals = make([]ApprovalResponse, len(r.Approvals))
	for i, a := range r.Approvals {
		resp.Approvals[i] = ApprovalResponse{
			Level:           a.Level,
			Outcome:         a.Outcome,
			ApproverCode:    a.ApproverCode,
			ApproverName:    a.ApproverName,
			RejectionReason: a.RejectionReason,
			Timestamp:       a.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp
}
