package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uprisingink/studio-api/internal/httperr"
)

// statusForCode maps business error codes to HTTP statuses. Anything not
// listed is treated as a plain validation failure.
var statusForCode = map[string]int{
	"artist_not_found":      http.StatusNotFound,
	"client_not_found":      http.StatusNotFound,
	"appointment_not_found": http.StatusNotFound,
	"message_not_found":     http.StatusNotFound,
	"artwork_not_found":     http.StatusNotFound,
	"recipient_not_found":   http.StatusNotFound,
	"artist_record_missing": http.StatusNotFound,
	"profile_not_found":     http.StatusNotFound,

	"transition_not_allowed": http.StatusForbidden,
	"delete_not_allowed":     http.StatusForbidden,
	"not_participant":        http.StatusForbidden,
	"not_recipient":          http.StatusForbidden,
	"not_owner":              http.StatusForbidden,

	"invalid_transition":        http.StatusConflict,
	"not_deletable":             http.StatusConflict,
	"artist_unavailable":        http.StatusConflict,
	"deposit_already_paid":      http.StatusConflict,
	"appointment_closed":        http.StatusConflict,
	"already_reviewed":          http.StatusConflict,
	"appointment_not_completed": http.StatusConflict,
	"duplicate_email":           http.StatusConflict,

	"payment_provider_failed": http.StatusBadGateway,
	"storage_failed":          http.StatusBadGateway,
	"payments_disabled":       http.StatusServiceUnavailable,
}

// writeBusiness translates a use-case error into an HTTP response.
// Returns false when err is not a business error, in which case the
// caller should report an internal failure.
func writeBusiness(c *gin.Context, err error) bool {
	code, ok := httperr.AnyBusiness(err)
	if !ok {
		return false
	}

	status, mapped := statusForCode[code]
	if !mapped {
		status = http.StatusBadRequest
	}

	httperr.Write(c, status, code, "")
	return true
}
