package request_test

import (
	"testing"
	"time"

	"go-leavedesk/internal/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func date(v string) time.Time {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

func existingRequest(employeeCode, status, start, end string) request.Request {
	return request.Request{
		ID:           uuid.New(),
		EmployeeCode: employeeCode,
		Type:         request.TypeLeave,
		StartDate:    date(start),
		EndDate:      date(end),
		Status:       status,
	}
}

func TestFindConflict_DateOverlap(t *testing.T) {
	t.Run("shared boundary day conflicts", func(t *testing.T) {
		existing := []request.Request{
			existingRequest("EMP-1", request.StatusApproved, "2024-03-10", "2024-03-12"),
		}
		span := request.Span{StartDate: date("2024-03-12"), EndDate: date("2024-03-14")}

		cand, ok := request.FindConflict("EMP-1", span, existing, uuid.Nil)

		assert.True(t, ok)
		assert.Equal(t, existing[0].ID, cand.ID)
	})

	t.Run("disjoint ranges do not conflict", func(t *testing.T) {
		existing := []request.Request{
			existingRequest("EMP-1", request.StatusApproved, "2024-03-10", "2024-03-12"),
		}
		span := request.Span{StartDate: date("2024-03-13"), EndDate: date("2024-03-14")}

		_, ok := request.FindConflict("EMP-1", span, existing, uuid.Nil)

		assert.False(t, ok)
	})

	t.Run("rejected requests never conflict", func(t *testing.T) {
		existing := []request.Request{
			existingRequest("EMP-1", request.StatusRejected, "2024-03-10", "2024-03-12"),
		}
		span := request.Span{StartDate: date("2024-03-10"), EndDate: date("2024-03-10")}

		_, ok := request.FindConflict("EMP-1", span, existing, uuid.Nil)

		assert.False(t, ok)
	})

	t.Run("pending requests conflict too", func(t *testing.T) {
		existing := []request.Request{
			existingRequest("EMP-1", request.StatusPending, "2024-03-10", "2024-03-12"),
		}
		span := request.Span{StartDate: date("2024-03-11"), EndDate: date("2024-03-11")}

		_, ok := request.FindConflict("EMP-1", span, existing, uuid.Nil)

		assert.True(t, ok)
	})

	t.Run("other employees do not conflict", func(t *testing.T) {
		existing := []request.Request{
			existingRequest("EMP-2", request.StatusApproved, "2024-03-10", "2024-03-12"),
		}
		span := request.Span{StartDate: date("2024-03-10"), EndDate: date("2024-03-10")}

		_, ok := request.FindConflict("EMP-1", span, existing, uuid.Nil)

		assert.False(t, ok)
	})

	t.Run("excluded id is skipped", func(t *testing.T) {
		existing := []request.Request{
			existingRequest("EMP-1", request.StatusApproved, "2024-03-10", "2024-03-12"),
		}
		span := request.Span{StartDate: date("2024-03-10"), EndDate: date("2024-03-10")}

		_, ok := request.FindConflict("EMP-1", span, existing, existing[0].ID)

		assert.False(t, ok)
	})
}

func TestFindConflict_BackupInvolvement(t *testing.T) {
	existing := []request.Request{
		{
			ID:              uuid.New(),
			EmployeeCode:    "EMP-2",
			Type:            request.TypeLeave,
			StartDate:       date("2024-03-10"),
			EndDate:         date("2024-03-12"),
			Status:          request.StatusApproved,
			AlternativeCode: strPtr("EMP-1"),
		},
	}
	span := request.Span{StartDate: date("2024-03-11"), EndDate: date("2024-03-11")}

	cand, ok := request.FindConflict("EMP-1", span, existing, uuid.Nil)

	assert.True(t, ok)
	assert.Equal(t, "EMP-2", cand.EmployeeCode)
}

func TestFindConflict_TimeBounded(t *testing.T) {
	permission := func(start, end string) request.Request {
		return request.Request{
			ID:           uuid.New(),
			EmployeeCode: "EMP-1",
			Type:         request.TypePermission,
			StartDate:    date("2024-03-10"),
			EndDate:      date("2024-03-10"),
			StartTime:    strPtr(start),
			EndTime:      strPtr(end),
			Status:       request.StatusApproved,
		}
	}

	t.Run("back to back permissions do not conflict", func(t *testing.T) {
		existing := []request.Request{permission("09:00", "11:00")}
		span := request.Span{
			StartDate: date("2024-03-10"),
			EndDate:   date("2024-03-10"),
			StartTime: strPtr("11:00"),
			EndTime:   strPtr("12:00"),
		}

		_, ok := request.FindConflict("EMP-1", span, existing, uuid.Nil)

		assert.False(t, ok)
	})

	t.Run("overlapping time ranges conflict", func(t *testing.T) {
		existing := []request.Request{permission("09:00", "11:00")}
		span := request.Span{
			StartDate: date("2024-03-10"),
			EndDate:   date("2024-03-10"),
			StartTime: strPtr("10:30"),
			EndTime:   strPtr("12:00"),
		}

		_, ok := request.FindConflict("EMP-1", span, existing, uuid.Nil)

		assert.True(t, ok)
	})

	t.Run("untimed span blocks the whole day", func(t *testing.T) {
		existing := []request.Request{permission("09:00", "11:00")}
		span := request.Span{StartDate: date("2024-03-10"), EndDate: date("2024-03-10")}

		_, ok := request.FindConflict("EMP-1", span, existing, uuid.Nil)

		assert.True(t, ok)
	})

	t.Run("timed span against multi-day leave conflicts on dates", func(t *testing.T) {
		existing := []request.Request{
			existingRequest("EMP-1", request.StatusApproved, "2024-03-09", "2024-03-11"),
		}
		span := request.Span{
			StartDate: date("2024-03-10"),
			EndDate:   date("2024-03-10"),
			StartTime: strPtr("09:00"),
			EndTime:   strPtr("10:00"),
		}

		_, ok := request.FindConflict("EMP-1", span, existing, uuid.Nil)

		assert.True(t, ok)
	})
}
