package handlers

import (
	"net/http"

	"locallink/middleware"
	"locallink/models"

	"github.com/gin-gonic/gin"
)

// requirePrincipal pulls the authenticated principal off the request,
// writing a 401 when the auth middleware did not run or failed.
func requirePrincipal(c *gin.Context) (models.Principal, bool) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Insufficient authorization"})
	}
	return principal, ok
}
