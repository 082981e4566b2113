package httpserver

import (
	"io"

	"github.com/gin-gonic/gin"
)

// adminForward relays an admin CRUD request (branches, stores, products,
// employees, customers, orders, supply, users, shipments) to the backend
// untouched and streams the answer back. The admin screens are plumbing;
// the gateway only contributes the credential and the shared reset path.
func (h *handlers) adminForward(c *gin.Context) {
	sess, _ := currentSession(c)
	path := c.Param("backendPath")

	resp, err := h.backend.Forward(c.Request.Context(), sess.Token, c.Request, path)
	if err != nil {
		h.backendError(c, err)
		return
	}
	defer func() { _ = resp.Body.Close() }()

	if contentType := resp.Header.Get("Content-Type"); contentType != "" {
		c.Header("Content-Type", contentType)
	}
	c.Status(resp.StatusCode)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		h.logger.Printf("copy backend response: %v", err)
	}
}
