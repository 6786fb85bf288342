package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fillme/fillme-backend/internal/logger"
)

// AdminKeyMiddleware guards operator endpoints with a single process-wide
// shared secret. The check is a plain equality gate: no hashing, no expiry,
// no rate limiting.
type AdminKeyMiddleware struct {
	log    *logger.Logger
	secret string
}

func NewAdminKeyMiddleware(log *logger.Logger, secret string) *AdminKeyMiddleware {
	return &AdminKeyMiddleware{
		log:    log.With("middleware", "AdminKeyMiddleware"),
		secret: secret,
	}
}

// RequireAdminKey accepts the key from the "key" query parameter or the
// X-Admin-Key header. Missing and wrong keys get the same response so the
// gate never reveals which one it was.
func (am *AdminKeyMiddleware) RequireAdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.Query("key")
		if presented == "" {
			presented = c.GetHeader("X-Admin-Key")
		}
		if am.secret == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(am.secret)) != 1 {
			am.log.Warn("Rejected admin request", "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
