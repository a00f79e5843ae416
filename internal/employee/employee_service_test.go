package employee_test

import (
	"context"
	"errors"
	"testing"

	"go-leavedesk/internal/employee"
	employeeerrors "go-leavedesk/internal/employee/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepository struct {
	findByCodeFn func(ctx context.Context, code string) (*employee.Employee, error)
	findAllFn    func(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error)
	findActiveFn func(ctx context.Context) ([]employee.Employee, error)
}

func (f *fakeRepository) FindByCode(ctx context.Context, code string) (*employee.Employee, error) {
	return f.findByCodeFn(ctx, code)
}

func (f *fakeRepository) FindAll(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	return f.findAllFn(ctx, filter)
}

func (f *fakeRepository) FindActive(ctx context.Context) ([]employee.Employee, error) {
	return f.findActiveFn(ctx)
}

func TestEmployeeService_GetByCode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		manager := "MGR-1"
		repo := &fakeRepository{
			findByCodeFn: func(_ context.Context, code string) (*employee.Employee, error) {
				assert.Equal(t, "EMP-1", code)
				return &employee.Employee{
					Code:        "EMP-1",
					Name:        "Asha Rao",
					Role:        employee.RoleEmployee,
					Department:  "engineering",
					Designation: "Backend Engineer",
					ManagerCode: &manager,
					Status:      employee.StatusActive,
				}, nil
			},
		}
		svc := employee.NewService(repo)

		resp, err := svc.GetByCode(context.Background(), "EMP-1")

		assert.NoError(t, err)
		assert.Equal(t, "EMP-1", resp.Code)
		assert.Equal(t, "Asha Rao", resp.Name)
		assert.Equal(t, "engineering", resp.Department)
		assert.Equal(t, &manager, resp.ManagerCode)
	})

	t.Run("negative not found", func(t *testing.T) {
		repo := &fakeRepository{
			findByCodeFn: func(_ context.Context, _ string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.GetByCode(context.Background(), "EMP-404")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("negative repository error", func(t *testing.T) {
		repo := &fakeRepository{
			findByCodeFn: func(_ context.Context, _ string) (*employee.Employee, error) {
				return nil, errors.New("connection reset")
			},
		}
		svc := employee.NewService(repo)

		_, err := svc.GetByCode(context.Background(), "EMP-1")

		assert.EqualError(t, err, "connection reset")
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	t.Run("success passes filter through", func(t *testing.T) {
		repo := &fakeRepository{
			findAllFn: func(_ context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
				assert.Equal(t, "engineering", filter.Department)
				assert.Equal(t, employee.StatusActive, filter.Status)
				return []employee.Employee{
					{Code: "EMP-1", Name: "Asha Rao", Role: employee.RoleEmployee, Status: employee.StatusActive},
					{Code: "EMP-2", Name: "Ben Kim", Role: employee.RoleManager, Status: employee.StatusActive},
				}, nil
			},
		}
		svc := employee.NewService(repo)

		resp, err := svc.GetAll(context.Background(), employee.ListFilter{
			Department: "engineering",
			Status:     employee.StatusActive,
		})

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "EMP-1", resp[0].Code)
		assert.Equal(t, employee.RoleManager, resp[1].Role)
	})

	t.Run("success empty roster", func(t *testing.T) {
		repo := &fakeRepository{
			findAllFn: func(_ context.Context, _ employee.ListFilter) ([]employee.Employee, error) {
				return nil, nil
			},
		}
		svc := employee.NewService(repo)

		resp, err := svc.GetAll(context.Background(), employee.ListFilter{})

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}
