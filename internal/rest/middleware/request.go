package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/stayloop/stayloop/internal/types"
)

const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware propagates the inbound request id, minting one when
// the client did not send any, and echoes it on the response.
func RequestIDMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	requestID := c.GetHeader(HeaderRequestID)
	if requestID == "" {
		requestID = types.GenerateUUID()
	}

	ctx = context.WithValue(ctx, types.CtxRequestID, requestID)
	c.Request = c.Request.WithContext(ctx)
	c.Header(HeaderRequestID, requestID)

	c.Next()
}
