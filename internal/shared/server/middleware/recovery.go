package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"ops-assistant/internal/shared/server/respond"
	"ops-assistant/internal/shared/telemetry"
)

// Recovery turns a panic in a handler into a 500 envelope. The panic value
// is logged, never returned to the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			requestID := RequestIDFromContext(c)
			telemetry.Error("request.panic", map[string]any{
				"request_id":  requestID,
				"route":       c.FullPath(),
				"intent":      c.GetString("intent"),
				"customer_id": c.GetString("customerId"),
				"panic":       fmt.Sprint(rec),
				"stack":       string(debug.Stack()),
			})
			respond.Error(c, http.StatusInternalServerError, "internal", "unexpected server error", gin.H{
				"requestId": requestID,
			})
		}()
		c.Next()
	}
}
