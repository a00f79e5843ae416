package holiday

import (
	"net/http"

	"go-leavedesk/internal/shared/apperror"
	"go-leavedesk/internal/shared/response"
	"go-leavedesk/internal/timewindow"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("holiday.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	var sel timewindow.Selector
	if err := c.ShouldBindQuery(&sel); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid window selector", err.Error())
		return
	}

	resp, err := h.service.GetInWindow(c.Request.Context(), sel)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("holiday request failed",
			zap.String("path", c.FullPath()),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
