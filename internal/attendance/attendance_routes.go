package attendance

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
	attendance := r.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	{
		attendance.GET("/daily", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.GetDaily)
		attendance.GET("/rollup", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.GetRollup)
	}
}
