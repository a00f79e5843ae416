package timewindow

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
	windows := r.Group("/windows")
	windows.Use(middleware.AuthMiddleware())
	{
		windows.GET("/resolve", middleware.RBACAuthorize(rbacService, "window", "read"), handler.Resolve)
	}
}
