package timewindow

import (
	"net/http"

	"go-leavedesk/internal/shared/apperror"
	"go-leavedesk/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type WindowResponse struct {
	Granularity string `json:"granularity"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Resolve(c *gin.Context) {
	var sel Selector
	if err := c.ShouldBindQuery(&sel); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, mapped.Details)
		return
	}

	window, err := Resolve(sel)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, WindowResponse{
		Granularity: sel.Granularity,
		StartDate:   window.StartString(),
		EndDate:     window.EndString(),
	}, nil)
}
