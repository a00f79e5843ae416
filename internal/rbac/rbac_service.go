package rbac

import (
	"sync"

	"go-leavedesk/internal/domain"

	"github.com/casbin/casbin/v2"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	Permissions() []domain.PermissionResponse
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService(enforcer *casbin.Enforcer) (Service, error) {
	s := &service{enforcer: enforcer}
	if err := s.loadStaticPolicy(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) loadStaticPolicy() error {
	s.enforcer.ClearPolicy()

	for _, p := range staticPolicy {
		if _, err := s.enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return err
		}
	}

	for role, parents := range roleInherits {
		for _, parent := range parents {
			if _, err := s.enforcer.AddGroupingPolicy(role, parent); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}

// Permissions returns the static matrix, used by clients to hide actions
// the current role cannot perform.
func (s *service) Permissions() []domain.PermissionResponse {
	out := make([]domain.PermissionResponse, 0, len(staticPolicy))
	for _, p := range staticPolicy {
		out = append(out, domain.PermissionResponse{
			Role:     p.Role,
			Resource: p.Resource,
			Action:   p.Action,
		})
	}
	return out
}
