package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"slotbook/internal/handler/httperr"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const adminContextKey = "is_admin"

// AdminAuth guards the admin surface with the single shared bearer token.
// Missing, malformed and wrong tokens all get the same 401 so the response
// does not leak which part of the credential failed.
type AdminAuth struct {
	token []byte
}

func NewAdminAuth(cfg config.AdminConfig) *AdminAuth {
	return &AdminAuth{token: []byte(cfg.Token)}
}

func (a *AdminAuth) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		presented, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || presented == "" {
			a.reject(c)
			return
		}

		if subtle.ConstantTimeCompare([]byte(presented), a.token) != 1 {
			a.reject(c)
			return
		}

		c.Set(adminContextKey, true)
		c.Next()
	}
}

func (a *AdminAuth) reject(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("admin authentication failed"), "Unauthorized", nil)
}

func IsAdmin(c *gin.Context) bool {
	v, exists := c.Get(adminContextKey)
	if !exists {
		return false
	}
	flag, ok := v.(bool)
	return ok && flag
}
