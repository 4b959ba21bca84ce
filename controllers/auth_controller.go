package controllers

import (
	"net/http"

	"historicgems/config"
	"historicgems/utils"

	"github.com/gin-gonic/gin"
)

type credentialRequest struct {
	Email string `json:"email" binding:"required"`
}

// GenerateToken signs a long-lived credential for the submitted email and
// hands it back as an http-only cookie. No password: possession of the
// cookie is the whole credential.
func GenerateToken(ctx *gin.Context) {
	var req credentialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateJWT(req.Email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	setTokenCookie(ctx, token, int(utils.TokenTTL.Seconds()))
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout instructs the client to discard the token cookie immediately.
func Logout(ctx *gin.Context) {
	setTokenCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// setTokenCookie applies the environment-dependent attributes: production
// serves cross-site frontends and needs Secure + SameSite=None, development
// stays strict and plain-http.
func setTokenCookie(ctx *gin.Context, value string, maxAge int) {
	secure := config.IsProduction()
	if secure {
		ctx.SetSameSite(http.SameSiteNoneMode)
	} else {
		ctx.SetSameSite(http.SameSiteStrictMode)
	}
	ctx.SetCookie("token", value, maxAge, "/", "", secure, true)
}
