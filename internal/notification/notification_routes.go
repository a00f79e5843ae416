package notification

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
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("/status", middleware.RBACAuthorize(rbacService, "notification", "read"), handler.GetStatus)
		notifications.POST("/viewed", middleware.RBACAuthorize(rbacService, "notification", "update"), handler.MarkViewed)
	}
}
