package app

import (
	"database/sql"

	"go-leavedesk/internal/approval"
	"go-leavedesk/internal/attendance"
	"go-leavedesk/internal/employee"
	"go-leavedesk/internal/holiday"
	"go-leavedesk/internal/messaging/kafka"
	"go-leavedesk/internal/notification"
	"go-leavedesk/internal/rbac"
	"go-leavedesk/internal/rbac/infra"
	"go-leavedesk/internal/request"
	"go-leavedesk/internal/timewindow"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	requestRepo := request.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	notificationStore := notification.NewRedisStore(rdb)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	routingPolicy := approval.DefaultPolicy()
	employeeService := employee.NewService(employeeRepo)
	holidayService := holiday.NewService(holidayRepo)
	requestService := request.NewServiceWithOutbox(db, requestRepo, employeeRepo, routingPolicy, outboxRepo)
	approvalService := approval.NewServiceWithOutbox(db, requestRepo, employeeRepo, outboxRepo)
	attendanceService := attendance.NewService(employeeRepo, requestRepo, rdb)
	notificationService := notification.NewService(notificationStore)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	holidayHandler := holiday.NewHandler(holidayService)
	requestHandler := request.NewHandler(requestService)
	approvalHandler := approval.NewHandler(approvalService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	notificationHandler := notification.NewHandler(notificationService)
	windowHandler := timewindow.NewHandler()
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		holiday.RegisterRoutes(api, holidayHandler, rbacService)
		request.RegisterRoutes(api, requestHandler, rbacService, rdb)
		approval.RegisterRoutes(api, approvalHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		notification.RegisterRoutes(api, notificationHandler, rbacService)
		timewindow.RegisterRoutes(api, windowHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
