package request

import (
	"time"

	"go-leavedesk/internal/employee"
	requesterrors "go-leavedesk/internal/request/errors"
	"go-leavedesk/internal/shared/apperror"
	"go-leavedesk/internal/timewindow"

	"github.com/google/uuid"
)

// ActorContext is the requester as seen by the roster at submission time.
type ActorContext struct {
	Code       string
	Name       string
	Role       string
	Department string
}

// Normalized is a draft that passed validation: parsed dates, derived
// times, and the computed day count, ready to persist.
type Normalized struct {
	Type            string
	LeaveMode       *string
	HalfDaySession  *string
	StartDate       time.Time
	EndDate         time.Time
	StartTime       *string
	EndTime         *string
	Reason          string
	AlternativeCode *string
	DayCount        float64
}

func (n Normalized) span() Span {
	return Span{
		StartDate: n.StartDate,
		EndDate:   n.EndDate,
		StartTime: n.StartTime,
		EndTime:   n.EndTime,
	}
}

// Validate normalizes and checks a draft. Every violation is accumulated so
// the caller sees the full list at once; the Normalized result is only
// meaningful when the returned list is empty.
//
// existing must be a snapshot covering the requester's and the alternative's
// active requests; excludeID skips the draft itself on re-checks.
func Validate(
	draft CreateRequestDraft,
	actor ActorContext,
	alternative *employee.Employee,
	existing []Request,
	excludeID uuid.UUID,
) (Normalized, apperror.ValidationErrors) {
	var violations apperror.ValidationErrors

	n := Normalized{Type: draft.Type, Reason: draft.Reason}

	if draft.Reason == "" {
		violations = append(violations, requesterrors.ErrReasonRequired)
	}

	datesOK := normalizeShape(draft, &n, &violations)

	if datesOK && n.hasCasualMode() {
		if v := checkCasualQuota(actor.Code, n.StartDate, existing, excludeID); v != nil {
			violations = append(violations, v)
		}
	}

	if datesOK {
		if cand, ok := FindConflict(actor.Code, n.span(), existing, excludeID); ok {
			violations = append(violations, conflictViolation(cand, actor.Code))
		}
	}

	altNeeded := !employee.IsApprover(actor.Role)
	if draft.AlternativeCode == "" {
		if altNeeded {
			violations = append(violations, requesterrors.ErrAlternativeRequired)
		}
	} else {
		code := draft.AlternativeCode
		n.AlternativeCode = &code
		violations = append(violations, checkAlternative(actor, alternative, code)...)

		if datesOK && alternative != nil {
			if cand, ok := FindConflict(code, n.span(), existing, excludeID); ok {
				violations = append(violations, conflictViolation(cand, code))
			}
		}
	}

	if len(violations) > 0 {
		return Normalized{}, violations
	}
	return n, nil
}

func (n Normalized) hasCasualMode() bool {
	return n.LeaveMode != nil && *n.LeaveMode == ModeCasual
}

// normalizeShape handles per-type field presence, parsing, derived fields,
// and ordering. It reports whether the date span came out usable enough for
// the snapshot-based checks to run.
func normalizeShape(draft CreateRequestDraft, n *Normalized, violations *apperror.ValidationErrors) bool {
	start, startErr := parseDate(draft.StartDate)
	if startErr != nil {
		*violations = append(*violations, requesterrors.ErrInvalidDateFormat)
	}
	n.StartDate = start

	switch draft.Type {
	case TypeLeave, TypeOnDuty:
		if draft.EndDate == "" {
			*violations = append(*violations, requesterrors.ErrEndDateRequired)
			return false
		}
		end, endErr := parseDate(draft.EndDate)
		if endErr != nil {
			*violations = append(*violations, requesterrors.ErrInvalidDateFormat)
			return false
		}
		n.EndDate = end
		if draft.Type == TypeLeave {
			if !bindLeaveMode(draft, n) {
				*violations = append(*violations, requesterrors.ErrLeaveModeRequired)
			}
		} else if draft.LeaveMode != "" {
			*violations = append(*violations, requesterrors.ErrLeaveModeNotApplicable)
		}
		if startErr != nil {
			return false
		}
		if start.After(end) {
			*violations = append(*violations, requesterrors.ErrInvalidDateRange)
			return false
		}
		n.DayCount = end.Sub(start).Hours()/24 + 1
		return true

	case TypeHalfday:
		n.EndDate = start
		if !bindLeaveMode(draft, n) {
			*violations = append(*violations, requesterrors.ErrLeaveModeRequired)
		}
		switch draft.HalfDaySession {
		case SessionMorning:
			n.HalfDaySession = strPtr(SessionMorning)
			n.StartTime, n.EndTime = strPtr(MorningStart), strPtr(MorningEnd)
		case SessionAfternoon:
			n.HalfDaySession = strPtr(SessionAfternoon)
			n.StartTime, n.EndTime = strPtr(AfternoonStart), strPtr(AfternoonEnd)
		default:
			*violations = append(*violations, requesterrors.ErrSessionRequired)
		}
		n.DayCount = 0.5
		return startErr == nil

	case TypePermission:
		n.EndDate = start
		if draft.LeaveMode != "" {
			*violations = append(*violations, requesterrors.ErrLeaveModeNotApplicable)
		}
		if draft.StartTime == "" || draft.EndTime == "" {
			*violations = append(*violations, requesterrors.ErrTimesRequired)
			return false
		}
		st, stErr := parseClock(draft.StartTime)
		et, etErr := parseClock(draft.EndTime)
		if stErr != nil || etErr != nil {
			*violations = append(*violations, requesterrors.ErrInvalidTimeFormat)
			return false
		}
		if st >= et {
			*violations = append(*violations, requesterrors.ErrInvalidTimeRange)
		}
		n.StartTime, n.EndTime = &st, &et
		n.DayCount = 0
		return startErr == nil

	default:
		*violations = append(*violations, apperror.InvalidField("Type"))
		return false
	}
}

func bindLeaveMode(draft CreateRequestDraft, n *Normalized) bool {
	if draft.LeaveMode != ModeCasual && draft.LeaveMode != ModeUnpaid {
		return false
	}
	mode := draft.LeaveMode
	n.LeaveMode = &mode
	return true
}

// checkCasualQuota enforces one approved casual request per employee per
// calendar month, keyed by the request's start date.
func checkCasualQuota(employeeCode string, start time.Time, existing []Request, excludeID uuid.UUID) *apperror.AppError {
	for i := range existing {
		cand := &existing[i]
		if cand.ID == excludeID || cand.Status != StatusApproved {
			continue
		}
		if cand.EmployeeCode != employeeCode {
			continue
		}
		if cand.LeaveMode == nil || *cand.LeaveMode != ModeCasual {
			continue
		}
		if cand.StartDate.Year() == start.Year() && cand.StartDate.Month() == start.Month() {
			resetsOn := time.Date(start.Year(), start.Month()+1, 1, 0, 0, 0, 0, time.UTC)
			return requesterrors.ErrQuotaExceeded.WithMeta(map[string]any{
				"resets_on": resetsOn.Format("2006-01-02"),
			})
		}
	}
	return nil
}

func checkAlternative(actor ActorContext, alt *employee.Employee, code string) apperror.ValidationErrors {
	var violations apperror.ValidationErrors

	if code == actor.Code {
		violations = append(violations, requesterrors.ErrAlternativeIsSelf)
		return violations
	}
	if alt == nil {
		violations = append(violations, requesterrors.ErrAlternativeNotFound)
		return violations
	}
	if !alt.IsActive() {
		violations = append(violations, requesterrors.ErrAlternativeInactive)
	}
	if alt.Department != actor.Department {
		violations = append(violations, requesterrors.ErrAlternativeWrongDepartment)
	}
	if !employee.IsEmployeeEquivalent(alt.Role) {
		violations = append(violations, requesterrors.ErrAlternativeWrongRole)
	}
	return violations
}

func conflictViolation(cand *Request, employeeCode string) *apperror.AppError {
	return requesterrors.ErrScheduleConflict.WithMeta(map[string]any{
		"employee_code":          employeeCode,
		"conflicting_request_id": cand.ID.String(),
		"start_date":             cand.StartDate.Format("2006-01-02"),
		"end_date":               cand.EndDate.Format("2006-01-02"),
	})
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, err
	}
	return timewindow.Truncate(t), nil
}

// parseClock validates "HH:MM" and returns it in canonical zero-padded
// form, so string comparison orders correctly.
func parseClock(v string) (string, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return "", err
	}
	return t.Format("15:04"), nil
}

func strPtr(s string) *string { return &s }
