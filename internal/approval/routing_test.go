package approval_test

import (
	"testing"

	"go-leavedesk/internal/approval"
	"go-leavedesk/internal/employee"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicy_LevelsFor(t *testing.T) {
	policy := approval.DefaultPolicy()

	assert.Equal(t, []string{"manager", "hr"}, policy.LevelsFor(employee.RoleEmployee))
	assert.Equal(t, []string{"hr", "superadmin"}, policy.LevelsFor(employee.RoleManager))
	assert.Equal(t, []string{"superadmin"}, policy.LevelsFor(employee.RoleHR))
	assert.Empty(t, policy.LevelsFor(employee.RoleSuperadmin))
}

func TestDefaultPolicy_AuxRolesFollowEmployeeRouting(t *testing.T) {
	policy := approval.DefaultPolicy()

	for _, role := range []string{employee.RoleIntern, employee.RoleDI, employee.RoleDM, employee.RoleAssociate} {
		assert.Equal(t, []string{"manager", "hr"}, policy.LevelsFor(role), role)
	}
}

func TestPolicy_LevelsForReturnsCopy(t *testing.T) {
	policy := approval.DefaultPolicy()

	levels := policy.LevelsFor(employee.RoleEmployee)
	levels[0] = "mutated"

	assert.Equal(t, []string{"manager", "hr"}, policy.LevelsFor(employee.RoleEmployee))
}

func TestValidLevel(t *testing.T) {
	assert.True(t, approval.ValidLevel(approval.LevelManager))
	assert.True(t, approval.ValidLevel(approval.LevelHR))
	assert.True(t, approval.ValidLevel(approval.LevelSuperadmin))
	assert.False(t, approval.ValidLevel("ceo"))
	assert.False(t, approval.ValidLevel(""))
}
