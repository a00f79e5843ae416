package approval

import (
	"go-leavedesk/internal/middleware"
	"go-leavedesk/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	requests := r.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "approval", "act"), handler.Approve)
		requests.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "approval", "act"), handler.Reject)
	}
}
