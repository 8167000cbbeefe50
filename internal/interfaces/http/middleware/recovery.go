package middleware

import (
	stderrors "errors"
	"net/http"
	"runtime/debug"
	"syscall"

	"github.com/gin-gonic/gin"

	"ticketboard/internal/shared/constants"
	"ticketboard/internal/shared/errors"
	"ticketboard/internal/shared/logger"
	"ticketboard/internal/shared/utils"
)

var redactedHeaders = []string{"Authorization", "Cookie"}

// Recovery turns a handler panic into an internal_error envelope. A panic
// caused by the client hanging up is logged and the response abandoned.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		reqLog := log.With(
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", c.GetString(constants.ContextKeyRequestID),
		)

		if clientGone(recovered) {
			reqLog.Warnw("client disconnected mid-response", "error", recovered)
			c.Abort()
			return
		}

		reqLog.Errorw("panic recovered",
			"headers", redact(c.Request.Header),
			"error", recovered,
			"stack", string(debug.Stack()))
		utils.AbortWithError(c, errors.NewInternalError("Internal server error occurred"))
	})
}

func clientGone(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	return stderrors.Is(err, syscall.EPIPE) || stderrors.Is(err, syscall.ECONNRESET)
}

func redact(h http.Header) http.Header {
	out := h.Clone()
	for _, name := range redactedHeaders {
		if out.Get(name) != "" {
			out.Set(name, "***")
		}
	}
	return out
}
