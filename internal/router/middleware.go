package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartecommerce/insight-api/pkg/global"
)

// AuthMiddleware gates enrichment behind a bearer token when
// AUTH_TOKEN_BCRYPT is set. The env var carries a bcrypt hash of the
// token, not the token itself. Unset means the endpoint is open, which
// is the default for local single-user runs.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenHash := os.Getenv("AUTH_TOKEN_BCRYPT")
		if tokenHash == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Authorization required", []global.ValidationError{
				{Field: "Authorization", Message: "Bearer token is required", Code: "required"},
			}))
			c.Abort()
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)); err != nil {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid token", nil))
			c.Abort()
			return
		}

		c.Next()
	}
}
