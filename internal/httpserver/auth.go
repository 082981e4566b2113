package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/session"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func (h *handlers) adminLogin(c *gin.Context) {
	h.login(c, h.backend.AdminLogin, "/admin")
}

func (h *handlers) customerLogin(c *gin.Context) {
	h.login(c, h.backend.CustomerLogin, "/shop/products")
}

func (h *handlers) login(c *gin.Context, authenticate func(context.Context, string, string) (*backend.Credentials, error), landing string) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	creds, err := authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.backendError(c, err)
		return
	}

	sess, err := h.authority.Login(c.Request.Context(), *creds)
	if err != nil {
		h.logger.Printf("store session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not establish session"})
		return
	}

	session.SetCookie(c.Writer, sess.ID, sess.ExpiresAt, h.cookies)
	c.JSON(http.StatusOK, gin.H{
		"role":     sess.Role,
		"username": sess.DisplayName,
		"redirect": landing,
	})
}

// logout clears session and cart unconditionally; logging out while
// anonymous is a no-op that still lands on the public view.
func (h *handlers) logout(c *gin.Context) {
	if sess, ok := currentSession(c); ok {
		_ = h.authority.Logout(c.Request.Context(), sess.ID)
		h.carts.Drop(sess.ID)
	}
	session.ClearCookie(c.Writer, h.cookies)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handlers) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "first name, last name, username, email and password are required"})
		return
	}

	err := h.backend.RegisterCustomer(c.Request.Context(), backend.RegistrationInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		h.backendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"redirect": "/customer/login"})
}
