package request

import (
	"time"

	"github.com/google/uuid"
)

// Span is the date/time extent of a candidate submission.
type Span struct {
	StartDate time.Time
	EndDate   time.Time
	StartTime *string // "HH:MM", set together with EndTime for time-bounded spans
	EndTime   *string
}

func (s Span) timeBounded() bool {
	return s.StartTime != nil && s.EndTime != nil
}

func (s Span) singleDay() bool {
	return s.StartDate.Equal(s.EndDate)
}

// FindConflict returns the first existing request that overlaps the span for
// the given employee, considering requests where the employee appears as
// requester or as the designated backup. Rejected requests never conflict,
// and the request identified by excludeID (the draft being re-checked) is
// skipped.
//
// Date ranges are closed intervals: a shared boundary day counts as a
// conflict. When both the span and the candidate are time-bounded on the
// same single day the time ranges are compared half-open, so back-to-back
// permissions (09:00-11:00 then 11:00-12:00) do not collide.
func FindConflict(employeeCode string, span Span, existing []Request, excludeID uuid.UUID) (*Request, bool) {
	for i := range existing {
		cand := &existing[i]

		if cand.ID == excludeID {
			continue
		}
		if cand.Status != StatusPending && cand.Status != StatusApproved {
			continue
		}
		involved := cand.EmployeeCode == employeeCode ||
			(cand.AlternativeCode != nil && *cand.AlternativeCode == employeeCode)
		if !involved {
			continue
		}

		if cand.StartDate.After(span.EndDate) || cand.EndDate.Before(span.StartDate) {
			continue
		}

		if span.timeBounded() && cand.TimeBounded() &&
			span.singleDay() && cand.StartDate.Equal(cand.EndDate) &&
			span.StartDate.Equal(cand.StartDate) {
			if *span.StartTime < *cand.EndTime && *span.EndTime > *cand.StartTime {
				return cand, true
			}
			continue
		}

		// A span without times blocks the whole day range.
		return cand, true
	}
	return nil, false
}
