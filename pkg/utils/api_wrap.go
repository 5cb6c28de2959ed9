package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP statuses. The
// message is surfaced verbatim so the admin UI can show it to the operator.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrExpiredToken),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrPermissionDenied):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidArgument):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrRecordNotFound), errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrEmailAlreadyExists), errors.Is(err, ErrConflict):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrFailedPrecondition):
		RespondError(c, http.StatusPreconditionFailed, err.Error())
	case errors.Is(err, ErrStorageError), errors.Is(err, ErrExternalService):
		log.Printf("External dependency error: %v", err)
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		sentry.CaptureException(err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
