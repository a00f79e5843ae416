package attendance_test

import (
	"context"
	"testing"
	"time"

	"go-leavedesk/internal/attendance"
	"go-leavedesk/internal/employee"
	"go-leavedesk/internal/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRoster struct {
	findActiveFn func(ctx context.Context) ([]employee.Employee, error)
}

func (f *fakeRoster) FindByCode(ctx context.Context, code string) (*employee.Employee, error) {
	return nil, nil
}

func (f *fakeRoster) FindAll(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeRoster) FindActive(ctx context.Context) ([]employee.Employee, error) {
	if f.findActiveFn != nil {
		return f.findActiveFn(ctx)
	}
	return nil, nil
}

type fakeRequests struct {
	request.Repository
	findApprovedCoveringDateFn func(ctx context.Context, date time.Time) ([]request.Request, error)
}

func (f *fakeRequests) FindApprovedCoveringDate(ctx context.Context, date time.Time) ([]request.Request, error) {
	if f.findApprovedCoveringDateFn != nil {
		return f.findApprovedCoveringDateFn(ctx, date)
	}
	return nil, nil
}

func date(v string) time.Time {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		panic(err)
	}
	return t
}

func worker(code, department string) employee.Employee {
	return employee.Employee{
		Code: code, Name: "Employee " + code, Role: employee.RoleEmployee,
		Department: department, Status: employee.StatusActive,
	}
}

func approvedRequest(code, reqType string) request.Request {
	return request.Request{
		ID:           uuid.New(),
		EmployeeCode: code,
		Type:         reqType,
		StartDate:    date("2024-03-10"),
		EndDate:      date("2024-03-10"),
		Status:       request.StatusApproved,
	}
}

func TestAttendanceService_DailyStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("statuses derive from approved requests", func(t *testing.T) {
		roster := &fakeRoster{findActiveFn: func(ctx context.Context) ([]employee.Employee, error) {
			return []employee.Employee{
				worker("EMP-1", "engineering"),
				worker("EMP-2", "engineering"),
				worker("EMP-3", "finance"),
				worker("EMP-4", "finance"),
				worker("EMP-5", "finance"),
			}, nil
		}}
		requests := &fakeRequests{findApprovedCoveringDateFn: func(ctx context.Context, d time.Time) ([]request.Request, error) {
			assert.Equal(t, "2024-03-10", d.Format("2006-01-02"))
			return []request.Request{
				approvedRequest("EMP-1", request.TypeLeave),
				approvedRequest("EMP-2", request.TypeHalfday),
				approvedRequest("EMP-3", request.TypePermission),
				approvedRequest("EMP-4", request.TypeOnDuty),
			}, nil
		}}

		svc := attendance.NewService(roster, requests, nil)

		resp, err := svc.DailyStatus(ctx, "2024-03-10")

		assert.NoError(t, err)
		assert.Equal(t, "2024-03-10", resp.Date)
		assert.Len(t, resp.Employees, 5)

		byCode := map[string]string{}
		for _, e := range resp.Employees {
			byCode[e.EmployeeCode] = e.Status
		}
		assert.Equal(t, attendance.StatusLeave, byCode["EMP-1"])
		assert.Equal(t, attendance.StatusLeave, byCode["EMP-2"])
		assert.Equal(t, attendance.StatusPermission, byCode["EMP-3"])
		// on-duty employees are working, just elsewhere
		assert.Equal(t, attendance.StatusPresent, byCode["EMP-4"])
		assert.Equal(t, attendance.StatusPresent, byCode["EMP-5"])
	})

	t.Run("output sorted by employee code", func(t *testing.T) {
		roster := &fakeRoster{findActiveFn: func(ctx context.Context) ([]employee.Employee, error) {
			return []employee.Employee{
				worker("EMP-3", "finance"),
				worker("EMP-1", "engineering"),
				worker("EMP-2", "engineering"),
			}, nil
		}}
		svc := attendance.NewService(roster, &fakeRequests{}, nil)

		resp, err := svc.DailyStatus(ctx, "2024-03-10")

		assert.NoError(t, err)
		assert.Equal(t, "EMP-1", resp.Employees[0].EmployeeCode)
		assert.Equal(t, "EMP-2", resp.Employees[1].EmployeeCode)
		assert.Equal(t, "EMP-3", resp.Employees[2].EmployeeCode)
	})

	t.Run("negative malformed date", func(t *testing.T) {
		svc := attendance.NewService(&fakeRoster{}, &fakeRequests{}, nil)

		_, err := svc.DailyStatus(ctx, "10/03/2024")

		assert.Error(t, err)
	})
}

func TestAttendanceService_DepartmentRollup(t *testing.T) {
	ctx := context.Background()

	roster := &fakeRoster{findActiveFn: func(ctx context.Context) ([]employee.Employee, error) {
		return []employee.Employee{
			worker("EMP-1", "engineering"),
			worker("EMP-2", "engineering"),
			worker("EMP-3", "engineering"),
			worker("EMP-4", "finance"),
		}, nil
	}}
	requests := &fakeRequests{findApprovedCoveringDateFn: func(ctx context.Context, d time.Time) ([]request.Request, error) {
		return []request.Request{
			approvedRequest("EMP-1", request.TypeLeave),
			approvedRequest("EMP-2", request.TypePermission),
		}, nil
	}}

	svc := attendance.NewService(roster, requests, nil)

	resp, err := svc.DepartmentRollup(ctx, "2024-03-10")

	assert.NoError(t, err)
	assert.Len(t, resp.Departments, 2)

	eng := resp.Departments[0]
	assert.Equal(t, "engineering", eng.Department)
	assert.Equal(t, 3, eng.Total)
	assert.Equal(t, 1, eng.Present)
	assert.Equal(t, 1, eng.Leave)
	assert.Equal(t, 1, eng.Permission)

	fin := resp.Departments[1]
	assert.Equal(t, "finance", fin.Department)
	assert.Equal(t, 1, fin.Total)
	assert.Equal(t, 1, fin.Present)
	assert.Equal(t, 0, fin.Leave)
	assert.Equal(t, 0, fin.Permission)
}
