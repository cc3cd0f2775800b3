// Package apierror maps service errors to HTTP responses.
package apierror

import (
	"errors"
	"net/http"

	"github.com/clearops/payroll/internal/domain"
	"github.com/clearops/payroll/pkg/requestid"
	"github.com/clearops/payroll/pkg/utils"
	"go.uber.org/zap"
)

func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrPartialClose):
		return http.StatusMultiStatus
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err with its status. Unexpected errors are logged and hidden
// from the caller.
func Respond(w http.ResponseWriter, r *http.Request, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			requestid.Field(r.Context()),
			zap.Error(err),
		)
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}
