package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware admits only allow-listed origins, with credentials. Any method and
// header is permitted: preflights get the requested ones echoed back, since "*" is not
// honored by browsers on credentialed requests. Preflights from other origins get a 400.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))

	for _, origin := range allowedOrigins {
		allowed[strings.TrimSpace(origin)] = struct{}{}
	}

	return func(ctx *gin.Context) {
		origin := ctx.GetHeader("Origin")
		if origin == "" {
			ctx.Next()
			return
		}

		ctx.Writer.Header().Add("Vary", "Origin")
		_, ok := allowed[origin]
		preflight := ctx.Request.Method == http.MethodOptions && ctx.GetHeader("Access-Control-Request-Method") != ""

		if !ok {
			if preflight {
				abortError(ctx, http.StatusBadRequest, "cors_origin_denied", "Disallowed CORS origin")
				return
			}
			ctx.Next()
			return
		}

		ctx.Header("Access-Control-Allow-Origin", origin)
		ctx.Header("Access-Control-Allow-Credentials", "true")

		if preflight {
			ctx.Header("Access-Control-Allow-Methods", ctx.GetHeader("Access-Control-Request-Method"))

			if headers := ctx.GetHeader("Access-Control-Request-Headers"); headers != "" {
				ctx.Header("Access-Control-Allow-Headers", headers)
			}
			ctx.Header("Access-Control-Max-Age", "600")
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}
