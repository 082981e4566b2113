package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/session"
)

func TestCustomerLoginIssuesSession(t *testing.T) {
	env := newTestEnv(t)
	env.gateway.creds = &backend.Credentials{AccessToken: "t", Role: domain.RoleCustomer, UserID: 7, Username: "alice"}

	rec := env.do(t, http.MethodPost, "/customer/login", `{"username":"alice","password":"pw"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["role"] != "customer" || payload["username"] != "alice" || payload["redirect"] != "/shop/products" {
		t.Fatalf("unexpected payload: %v", payload)
	}

	var cookieValue string
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName {
			cookieValue = ck.Value
		}
	}
	if cookieValue == "" {
		t.Fatalf("no session cookie issued")
	}
	if role := env.authority.CurrentRole(context.Background(), cookieValue); role != domain.RoleCustomer {
		t.Fatalf("expected stored customer session, got role %q", role)
	}
}

func TestAdminLoginRedirectTarget(t *testing.T) {
	env := newTestEnv(t)
	env.gateway.creds = &backend.Credentials{AccessToken: "t", Role: domain.RoleAdmin, UserID: 1, Username: "root"}

	rec := env.do(t, http.MethodPost, "/login", `{"username":"root","password":"pw"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &payload)
	if payload["redirect"] != "/admin" {
		t.Fatalf("expected admin landing, got %q", payload["redirect"])
	}
}

func TestLoginMissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/customer/login", `{"username":"alice"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLoginBadCredentialsResetToLanding(t *testing.T) {
	env := newTestEnv(t)
	env.gateway.loginErr = backend.ErrAuthRejected

	rec := env.do(t, http.MethodPost, "/customer/login", `{"username":"alice","password":"wrong"}`, nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
	if env.store.Len() != 0 {
		t.Fatalf("no session may exist after a rejected login")
	}
}

func TestLoginBackendValidationErrorSurfacedInline(t *testing.T) {
	env := newTestEnv(t)
	env.gateway.loginErr = &backend.APIError{Status: http.StatusUnprocessableEntity, Detail: "Username too short"}

	rec := env.do(t, http.MethodPost, "/customer/login", `{"username":"a","password":"pw"}`, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var payload map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &payload)
	if payload["error"] != "Username too short" {
		t.Fatalf("detail not surfaced verbatim: %v", payload)
	}
}

func TestLogoutClearsSessionAndCart(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, domain.RoleCustomer)
	env.carts.Add(cookie.Value, domain.Product{ID: 1, Name: "Widget", Price: 9.99})

	rec := env.do(t, http.MethodPost, "/logout", "", cookie)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
	if role := env.authority.CurrentRole(context.Background(), cookie.Value); role != domain.RoleNone {
		t.Fatalf("expected no role after logout, got %q", role)
	}
	if env.store.Len() != 0 {
		t.Fatalf("expected store fully cleared")
	}
	if !env.carts.Snapshot(cookie.Value).Empty() {
		t.Fatalf("expected cart dropped on logout")
	}
}

func TestLogoutWithoutSessionIsNoOp(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/logout", "", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
}

func TestRegisterRedirectsToLogin(t *testing.T) {
	env := newTestEnv(t)

	body := `{"username":"alice","password":"pw","first_name":"Alice","last_name":"Smith","email":"a@example.com"}`
	rec := env.do(t, http.MethodPost, "/customer/register", body, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var payload map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &payload)
	if payload["redirect"] != "/customer/login" {
		t.Fatalf("unexpected redirect: %q", payload["redirect"])
	}
}

func TestRegisterMissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/customer/register", `{"username":"alice"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRegisterBackendConflictSurfaced(t *testing.T) {
	env := newTestEnv(t)
	env.gateway.registerErr = &backend.APIError{Status: http.StatusConflict, Detail: "Username already taken"}

	body := `{"username":"alice","password":"pw","first_name":"Alice","last_name":"Smith","email":"a@example.com"}`
	rec := env.do(t, http.MethodPost, "/customer/register", body, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var payload map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &payload)
	if payload["error"] != "Username already taken" {
		t.Fatalf("detail not surfaced verbatim: %v", payload)
	}
}
