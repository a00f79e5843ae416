package attendanceerrors

import (
	"net/http"

	"go-leavedesk/internal/shared/apperror"
)

var ErrInvalidDate = apperror.New(
	apperror.CodeInvalidInput,
	"date must be in YYYY-MM-DD format",
	http.StatusBadRequest,
)
