package middlewares

import (
	"github.com/amrit073/NEPGA/pkg/resp"
	"github.com/amrit073/NEPGA/utils"
	"github.com/gin-gonic/gin"
)

// TokenVerifier is satisfied by *utils.TokenAuthority.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthMiddleware requires a valid admin bearer token. Every failure gets the
// same response.
func AuthMiddleware(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := v.Verify(utils.BearerToken(c))
		if err != nil {
			resp.Unauthorized(c, "Could not validate credentials")
			return
		}
		utils.SetCurrentAdmin(c, identity)
		c.Next()
	}
}
