package approvalerrors

import (
	"net/http"

	"go-leavedesk/internal/shared/apperror"
)

var (
	ErrInvalidLevel = apperror.New(
		apperror.CodeInvalidInput,
		"unknown approval level",
		http.StatusBadRequest,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"rejection reason is required",
		http.StatusBadRequest,
	)
	// ErrInvalidTransition covers acting on a terminal request, acting at a
	// level that is not next in the routing, and re-approving an already
	// satisfied level. Kept distinct from validation errors so callers can
	// tell the user "someone already acted on this".
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"request is not awaiting this approval",
		http.StatusConflict,
	)
	ErrApproverNotFound = apperror.New(
		apperror.CodeNotFound,
		"approver not found",
		http.StatusNotFound,
	)
)
