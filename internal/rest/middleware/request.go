package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

// RequestIDMiddleware tags every request with an id for log correlation
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(headerRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	c.Set("request_id", requestID)
	c.Header(headerRequestID, requestID)

	c.Next()
}
