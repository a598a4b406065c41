package httpserver

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/neski321/E-Store-revamp/internal/domain"
)

const sessionKey = "session"

type sessionResolver interface {
	SessionFromToken(ctx context.Context, token string) (domain.Session, error)
}

// authMiddleware resolves the Authorization header into the explicit
// Session every handler passes down. No token means an anonymous session;
// a token that fails validation is a 401, not a silent downgrade.
func authMiddleware(customers sessionResolver, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Set(sessionKey, domain.AnonymousSession())
			c.Next()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		sess, err := customers.SessionFromToken(c.Request.Context(), token)
		if err != nil {
			writeError(c, logger, err)
			c.Abort()
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func sessionFrom(c *gin.Context) domain.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(domain.Session); ok {
			return sess
		}
	}
	return domain.AnonymousSession()
}
