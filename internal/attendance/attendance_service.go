package attendance

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	attendanceerrors "go-leavedesk/internal/attendance/errors"
	"go-leavedesk/internal/employee"
	"go-leavedesk/internal/request"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	dailyKeyPrefix = "attendance:daily:"
	dailyCacheTTL  = 5 * time.Minute
)

func dailyCacheKey(date time.Time) string {
	return dailyKeyPrefix + date.Format("2006-01-02")
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	DailyStatus(ctx context.Context, date string) (DailyStatusResponse, error)
	DepartmentRollup(ctx context.Context, date string) (DepartmentRollupResponse, error)
}

type service struct {
	roster   employee.Repository
	requests request.Repository
	rdb      *redis.Client
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(
	roster employee.Repository,
	requests request.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		roster:   roster,
		requests: requests,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

// statusFor derives the day's status for one employee. Approved leave and
// halfday both read as "leave"; permission reads as "permission"; an on-duty
// request keeps the employee present since they are working off-site.
func statusFor(code string, covering []request.Request) string {
	for i := range covering {
		if covering[i].EmployeeCode != code {
			continue
		}
		switch covering[i].Type {
		case request.TypeLeave, request.TypeHalfday:
			return StatusLeave
		case request.TypePermission:
			return StatusPermission
		}
	}
	return StatusPresent
}

func (s *service) DailyStatus(ctx context.Context, date string) (DailyStatusResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return DailyStatusResponse{}, attendanceerrors.ErrInvalidDate
	}

	cacheKey := dailyCacheKey(day)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp DailyStatusResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.computeDaily(ctx, day)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, dailyCacheTTL).Err(); err != nil {
					s.logger.Warn("attendance cache write failed",
						zap.String("key", cacheKey),
						zap.Error(err),
					)
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return DailyStatusResponse{}, err
	}

	return v.(DailyStatusResponse), nil
}

func (s *service) computeDaily(ctx context.Context, day time.Time) (DailyStatusResponse, error) {
	active, err := s.roster.FindActive(ctx)
	if err != nil {
		return DailyStatusResponse{}, err
	}

	covering, err := s.requests.FindApprovedCoveringDate(ctx, day)
	if err != nil {
		return DailyStatusResponse{}, err
	}

	entries := make([]EmployeeStatus, 0, len(active))
	for i := range active {
		entries = append(entries, EmployeeStatus{
			EmployeeCode: active[i].Code,
			Name:         active[i].Name,
			Department:   active[i].Department,
			Status:       statusFor(active[i].Code, covering),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].EmployeeCode < entries[j].EmployeeCode
	})

	return DailyStatusResponse{
		Date:      day.Format("2006-01-02"),
		Employees: entries,
	}, nil
}

func (s *service) DepartmentRollup(ctx context.Context, date string) (DepartmentRollupResponse, error) {
	daily, err := s.DailyStatus(ctx, date)
	if err != nil {
		return DepartmentRollupResponse{}, err
	}

	byDept := make(map[string]*DepartmentCounts)
	for _, e := range daily.Employees {
		counts, ok := byDept[e.Department]
		if !ok {
			counts = &DepartmentCounts{Department: e.Department}
			byDept[e.Department] = counts
		}
		counts.Total++
		switch e.Status {
		case StatusLeave:
			counts.Leave++
		case StatusPermission:
			counts.Permission++
		default:
			counts.Present++
		}
	}

	departments := make([]DepartmentCounts, 0, len(byDept))
	for _, counts := range byDept {
		departments = append(departments, *counts)
	}
	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Department < departments[j].Department
	})

	return DepartmentRollupResponse{
		Date:        daily.Date,
		Departments: departments,
	}, nil
}
