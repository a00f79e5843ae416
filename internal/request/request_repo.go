package request

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Request) error
	FindByID(ctx context.Context, id string) (*Request, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Request, error)
	FindAll(ctx context.Context, filter Filter) ([]Request, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	FindActiveForEmployees(ctx context.Context, codes []string) ([]Request, error)
	FindApprovedCoveringDate(ctx context.Context, date time.Time) ([]Request, error)
	AppendApproval(ctx context.Context, a *Approval) error
	Update(ctx context.Context, r *Request) error
}

// Filter bounds list queries; zero values mean "no constraint".
type Filter struct {
	EmployeeCode string
	Status       string
	WindowStart  time.Time
	WindowEnd    time.Time
	Limit        int
	Offset       int
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn returns the gorm handle statements must run on. When a service
// transaction is bound, the session is pinned to that transaction's
// connection so the locked read and the writes that follow share it.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	if r.tx == nil {
		return r.db.WithContext(ctx)
	}
	db := r.db.Session(&gorm.Session{Context: ctx, NewDB: true})
	db.Statement.ConnPool = r.tx
	return db
}

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.conn(ctx).Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Request, error) {
	var req Request
	err := r.conn(ctx).
		Preload("Approvals", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		First(&req, "id = ?", id).Error
	return &req, err
}

// FindByIDForUpdate takes a row lock so concurrent approvers serialize on
// the same request. The lock is held by the service transaction; without
// one this degrades to a plain read.
func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Request, error) {
	if r.tx != nil {
		if _, err := r.tx.ExecContext(ctx, "SELECT 1 FROM requests WHERE id = $1 FOR UPDATE", id); err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

func applyFilter(db *gorm.DB, filter Filter) *gorm.DB {
	if filter.EmployeeCode != "" {
		db = db.Where("employee_code = ? OR alternative_code = ?", filter.EmployeeCode, filter.EmployeeCode)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if !filter.WindowStart.IsZero() && !filter.WindowEnd.IsZero() {
		db = db.Where("NOT (end_date < ? OR start_date > ?)", filter.WindowStart, filter.WindowEnd)
	}
	return db
}

func (r *repository) FindAll(ctx context.Context, filter Filter) ([]Request, error) {
	db := applyFilter(r.conn(ctx).
		Preload("Approvals", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		Model(&Request{}), filter)

	if filter.Limit > 0 {
		db = db.Limit(filter.Limit).Offset(filter.Offset)
	}

	var requests []Request
	err := db.Order("start_date DESC, created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *repository) Count(ctx context.Context, filter Filter) (int64, error) {
	var total int64
	err := applyFilter(r.conn(ctx).Model(&Request{}), filter).Count(&total).Error
	return total, err
}

// FindActiveForEmployees returns the pending and approved requests in which
// any of the given employees appears as requester or backup. This is the
// snapshot the validator runs against.
func (r *repository) FindActiveForEmployees(ctx context.Context, codes []string) ([]Request, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	var requests []Request
	err := r.conn(ctx).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("employee_code IN ? OR alternative_code IN ?", codes, codes).
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindApprovedCoveringDate(ctx context.Context, date time.Time) ([]Request, error) {
	var requests []Request
	err := r.conn(ctx).
		Where("status = ?", StatusApproved).
		Where("start_date <= ? AND end_date >= ?", date, date).
		Find(&requests).Error
	return requests, err
}

func (r *repository) AppendApproval(ctx context.Context, a *Approval) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) Update(ctx context.Context, req *Request) error {
	return r.conn(ctx).Omit("Approvals").Save(req).Error
}
