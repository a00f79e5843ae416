package requesterrors

import (
	"net/http"

	"go-leavedesk/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time format, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_time must be before end_time",
		http.StatusBadRequest,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"reason is required",
		http.StatusBadRequest,
	)
	ErrLeaveModeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"leave_mode is required for leave and halfday requests",
		http.StatusBadRequest,
	)
	ErrLeaveModeNotApplicable = apperror.New(
		apperror.CodeInvalidInput,
		"leave_mode applies only to leave and halfday requests",
		http.StatusBadRequest,
	)
	ErrSessionRequired = apperror.New(
		apperror.CodeInvalidInput,
		"half_day_session is required for halfday requests",
		http.StatusBadRequest,
	)
	ErrEndDateRequired = apperror.New(
		apperror.CodeInvalidInput,
		"end_date is required for leave and od requests",
		http.StatusBadRequest,
	)
	ErrTimesRequired = apperror.New(
		apperror.CodeInvalidInput,
		"start_time and end_time are required for permission requests",
		http.StatusBadRequest,
	)
	ErrQuotaExceeded = apperror.New(
		apperror.CodeQuotaExceeded,
		"casual leave quota for this month is already used",
		http.StatusConflict,
	)
	ErrScheduleConflict = apperror.New(
		apperror.CodeConflict,
		"request overlaps an existing active request",
		http.StatusConflict,
	)
	ErrAlternativeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"alternative employee is required",
		http.StatusBadRequest,
	)
	ErrAlternativeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"alternative employee not found",
		http.StatusBadRequest,
	)
	ErrAlternativeInactive = apperror.New(
		apperror.CodeInvalidInput,
		"alternative employee is not active",
		http.StatusBadRequest,
	)
	ErrAlternativeWrongDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"alternative employee must be in the requester's department",
		http.StatusBadRequest,
	)
	ErrAlternativeWrongRole = apperror.New(
		apperror.CodeInvalidInput,
		"alternative employee must hold an employee role",
		http.StatusBadRequest,
	)
	ErrAlternativeIsSelf = apperror.New(
		apperror.CodeInvalidInput,
		"alternative employee cannot be the requester",
		http.StatusBadRequest,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"request not found",
		http.StatusNotFound,
	)
)
