package v1

import (
	"errors"
	"net/http"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// statusForError maps the reports error taxonomy onto an HTTP status and a client safe message
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, reports.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, reports.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, err.Error()
	case errors.Is(err, reports.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, reports.ErrNotFound):
		return http.StatusNotFound, "report not found"
	case errors.Is(err, reports.ErrAuthenticationFailure):
		return http.StatusInternalServerError, "report failed integrity verification"
	case errors.Is(err, reports.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "report storage unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func writeError(ctx *gin.Context, log logger.Logger, err error) {
	status, message := statusForError(err)
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", "path", ctx.FullPath(), "status", status, "error", err)
	}
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}
