package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"
)

const requestIDKey = "LOG_REQUEST_ID"

// LogWithWriter is the access-log middleware. It tags every request with an
// id so service-layer logs can be correlated with the access line.
func LogWithWriter() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		id := ctx.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.Must(uuid.NewV4()).String()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header("X-Request-ID", id)

		ctx.Next()

		Infof(ctx, "%s %s status=%d latency=%s client=%s",
			ctx.Request.Method,
			ctx.Request.URL.Path,
			ctx.Writer.Status(),
			time.Since(start),
			ctx.ClientIP(),
		)
	}
}
