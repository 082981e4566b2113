package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/session"
)

const sessionCtxKey = "gatewaySession"

// sessionMiddleware rehydrates the session from the cookie on every
// request. A missing or dead cookie leaves the request anonymous; that is
// never an error here.
func sessionMiddleware(authority authorityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie(session.CookieName)
		if err == nil && cookie.Value != "" {
			if sess, ok := authority.Current(c.Request.Context(), cookie.Value); ok {
				c.Set(sessionCtxKey, sess)
			}
		}
		c.Next()
	}
}

// currentSession returns the session loaded by sessionMiddleware, if any.
func currentSession(c *gin.Context) (domain.Session, bool) {
	v, ok := c.Get(sessionCtxKey)
	if !ok {
		return domain.Session{}, false
	}
	sess, ok := v.(domain.Session)
	return sess, ok
}

// requireRole gates a route group on the authority's decision. A denied
// check is a redirect to the matching login view, not an error response.
func requireRole(authority authorityService, required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := currentSession(c)
		decision := authority.Authorize(sess.Role, required)
		if !decision.Allowed {
			c.Redirect(http.StatusSeeOther, decision.RedirectTo)
			c.Abort()
			return
		}
		c.Next()
	}
}
