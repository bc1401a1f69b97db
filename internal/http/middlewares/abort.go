package middlewares

import "github.com/gin-gonic/gin"

// abortError stops the chain with the API error envelope used by the handlers.
func abortError(c *gin.Context, status int, code, message string) {
	body := gin.H{
		"code":    code,
		"message": message,
	}

	if id := c.GetString(CtxRequestID); id != "" {
		body["requestId"] = id
	}

	c.AbortWithStatusJSON(status, gin.H{"error": body})
}
