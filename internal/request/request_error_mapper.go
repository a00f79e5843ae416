package request

import (
	"errors"
	"strings"

	requesterrors "go-leavedesk/internal/request/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates driver errors into domain errors. The
// requests table carries an exclusion constraint on (employee_code, date
// range) over active rows, so a concurrent submission that slips past the
// snapshot check still fails at commit and surfaces as a conflict.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return requesterrors.ErrRequestNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23P01": // exclusion_violation
			return requesterrors.ErrScheduleConflict
		case "23505": // unique_violation
			return requesterrors.ErrScheduleConflict
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "conflicting key value violates exclusion constraint") {
		return requesterrors.ErrScheduleConflict
	}

	return err
}
