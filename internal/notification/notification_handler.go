package notification

import (
	"net/http"

	"go-leavedesk/internal/shared/apperror"
	"go-leavedesk/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("notification.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetStatus(c *gin.Context) {
	userCode := c.GetString("employee_code")
	kind := c.DefaultQuery("kind", KindApprovals)

	resp, err := h.service.GetStatus(c.Request.Context(), userCode, kind)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MarkViewed(c *gin.Context) {
	userCode := c.GetString("employee_code")

	var body MarkViewedRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, mapped.Details)
		return
	}

	resp, err := h.service.MarkViewed(c.Request.Context(), userCode, body.Kind)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("mark viewed failed", zap.String("user_code", userCode), zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
