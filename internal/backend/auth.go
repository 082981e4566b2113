package backend

import (
	"context"
	"net/http"

	"storefront-gateway/internal/domain"
)

// Credentials is the backend's authentication result. The four fields
// always arrive together on a successful login.
type Credentials struct {
	AccessToken string      `json:"access_token"`
	Role        domain.Role `json:"role"`
	UserID      int64       `json:"user_id"`
	Username    string      `json:"username"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLogin authenticates against the admin login endpoint.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (*Credentials, error) {
	var creds Credentials
	err := c.do(ctx, "", http.MethodPost, "/auth/admin/login", nil, loginRequest{Username: username, Password: password}, &creds)
	if err != nil {
		return nil, err
	}
	return &creds, nil
}

// CustomerLogin authenticates against the customer login endpoint.
func (c *Client) CustomerLogin(ctx context.Context, username, password string) (*Credentials, error) {
	var creds Credentials
	err := c.do(ctx, "", http.MethodPost, "/auth/customer/login", nil, loginRequest{Username: username, Password: password}, &creds)
	if err != nil {
		return nil, err
	}
	return &creds, nil
}

// RegistrationInput is the customer registration profile.
type RegistrationInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

// RegisterCustomer creates a customer account. The created record is not
// needed by the gateway; the caller proceeds to the login view.
func (c *Client) RegisterCustomer(ctx context.Context, in RegistrationInput) error {
	return c.do(ctx, "", http.MethodPost, "/customers/register", nil, in, nil)
}
