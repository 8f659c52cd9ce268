package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"candidate_admin/internal/shared/apperror"
)

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Error     string   `json:"error"`
	Details   []string `json:"details,omitempty"`
	Detail    string   `json:"detail,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// ErrorHandler renders the last error attached with c.Error.
// Errors carrying an *apperror.AppError use its status and message; anything
// else is logged and answered with a generic 500. showDetail adds the raw
// error text to that 500 body and must be off in release mode.
func ErrorHandler(showDetail bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		reqID := c.GetString(ContextRequestID)

		if appErr, ok := apperror.As(err); ok {
			if appErr.Code >= http.StatusInternalServerError {
				slog.Error("request failed", "error", err, "status", appErr.Code, "path", c.FullPath(), "request_id", reqID)
			}
			c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message, Details: appErr.Details, RequestID: reqID})
			return
		}

		slog.Error("unhandled error", "error", err, "method", c.Request.Method, "path", c.FullPath(), "request_id", reqID)
		res := ErrorResponse{Error: "An unexpected error occurred. Please try again later.", RequestID: reqID}
		if showDetail {
			res.Detail = err.Error()
		}
		c.JSON(http.StatusInternalServerError, res)
	}
}
