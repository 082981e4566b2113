package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/session"
)

// backendError funnels every failed backend call through one policy:
// authority rejection resets the session wholesale, backend rejections are
// relayed with their message verbatim, transport failures become a generic
// bad-gateway answer. Nothing here is fatal to the process.
func (h *handlers) backendError(c *gin.Context, err error) {
	if errors.Is(err, backend.ErrAuthRejected) {
		h.resetSession(c)
		return
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Detail})
		return
	}
	h.logger.Printf("backend call failed: %v", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "backend unavailable"})
}

// resetSession is the authority-rejection transition: clear the session
// record and the cart together, drop the cookie, navigate to the public
// landing view.
func (h *handlers) resetSession(c *gin.Context) {
	if sess, ok := currentSession(c); ok {
		_ = h.authority.Logout(c.Request.Context(), sess.ID)
		h.carts.Drop(sess.ID)
	}
	session.ClearCookie(c.Writer, h.cookies)
	c.Redirect(http.StatusSeeOther, "/")
	c.Abort()
}
