package rbac_test

import (
	"testing"

	"go-leavedesk/internal/domain"
	"go-leavedesk/internal/rbac"
	"go-leavedesk/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

func setupService(t *testing.T) rbac.Service {
	t.Helper()

	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc, err := rbac.NewService(enforcer)
	assert.NoError(t, err)
	return svc
}

func enforce(t *testing.T, svc rbac.Service, role, resource, action string) bool {
	t.Helper()
	allowed, err := svc.Enforce(domain.EnforceRequest{Role: role, Resource: resource, Action: action})
	assert.NoError(t, err)
	return allowed
}

func TestRBACService_Enforce(t *testing.T) {
	svc := setupService(t)

	t.Run("employees submit and read requests", func(t *testing.T) {
		assert.True(t, enforce(t, svc, "employee", "request", "create"))
		assert.True(t, enforce(t, svc, "employee", "request", "read"))
	})

	t.Run("employees cannot act on approvals", func(t *testing.T) {
		assert.False(t, enforce(t, svc, "employee", "approval", "act"))
		assert.False(t, enforce(t, svc, "employee", "attendance", "read"))
	})

	t.Run("approver chain acts on approvals", func(t *testing.T) {
		for _, role := range []string{"manager", "hr", "superadmin"} {
			assert.True(t, enforce(t, svc, role, "approval", "act"), role)
			assert.True(t, enforce(t, svc, role, "attendance", "read"), role)
		}
	})

	t.Run("approvers inherit employee permissions", func(t *testing.T) {
		assert.True(t, enforce(t, svc, "manager", "request", "create"))
		assert.True(t, enforce(t, svc, "hr", "holiday", "read"))
	})

	t.Run("aux roles inherit employee permissions", func(t *testing.T) {
		for _, role := range []string{"intern", "di", "dm", "associate"} {
			assert.True(t, enforce(t, svc, role, "request", "create"), role)
			assert.False(t, enforce(t, svc, role, "approval", "act"), role)
		}
	})

	t.Run("unknown role gets nothing", func(t *testing.T) {
		assert.False(t, enforce(t, svc, "contractor", "request", "create"))
	})
}

func TestRBACService_Permissions(t *testing.T) {
	svc := setupService(t)

	perms := svc.Permissions()

	assert.NotEmpty(t, perms)
	assert.Contains(t, perms, domain.PermissionResponse{Role: "employee", Resource: "request", Action: "create"})
	assert.Contains(t, perms, domain.PermissionResponse{Role: "manager", Resource: "approval", Action: "act"})
}
