// middlewares/ws_auth.go
package middlewares

import (
	"github.com/amrit073/NEPGA/pkg/resp"
	"github.com/amrit073/NEPGA/utils"
	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware accepts the token from ?token= (browsers cannot set headers
// on a websocket handshake) or from the Authorization header.
func WSAuthMiddleware(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			tokenStr = utils.BearerToken(c)
		}

		identity, err := v.Verify(tokenStr)
		if err != nil {
			resp.Unauthorized(c, "Could not validate credentials")
			return
		}
		utils.SetCurrentAdmin(c, identity)
		c.Next()
	}
}
