package employeeerrors

import (
	"net/http"

	"go-leavedesk/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrUnknownRole = apperror.New(
		apperror.CodeInvalidInput,
		"employee role is not recognized",
		http.StatusBadRequest,
	)
)
