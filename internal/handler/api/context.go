package api

import (
	"net/http"

	"chargeway/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

// callerIdentity pulls the authenticated client's id and upstream bearer
// token out of the request context. Responds 401 and returns false when the
// auth middleware did not run.
func callerIdentity(c *gin.Context) (clientID int64, token string, ok bool) {
	clientID, idOK := middleware.GetClientID(c)
	token, tokenOK := middleware.GetUpstreamToken(c)
	if !idOK || !tokenOK {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return 0, "", false
	}
	return clientID, token, true
}
