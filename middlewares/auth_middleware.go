package middlewares

import (
	"net/http"

	"historicgems/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid token cookie and attaches
// the verified email to the context for downstream handlers.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie("token")
		if err != nil || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		email, err := utils.ParseJWT(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		ctx.Set("email", email)
		ctx.Next()
	}
}
