// Package controller holds the JSON HTTP handlers. Controllers depend on
// narrow service interfaces declared here and map typed service errors to
// status codes; everything unrecognized is a 500.
package controller

import (
	"errors"
	"net/http"

	"tourbook/pkg/apperrors"
	"tourbook/pkg/responder"
)

func respondServiceError(rsp responder.Responder, w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		rsp.Error(w, appErr.StatusCode(), appErr.Message)
		return
	}
	rsp.Error(w, http.StatusInternalServerError, "internal server error")
}
