package httpserver

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/domain"
)

func TestAdminForwardRelaysResponse(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, domain.RoleAdmin)
	env.gateway.forwardResp = &http.Response{
		StatusCode: http.StatusCreated,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`{"id":5,"name":"North"}`)),
	}

	rec := env.do(t, http.MethodPost, "/admin/api/branches", `{"name":"North"}`, cookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if rec.Body.String() != `{"id":5,"name":"North"}` {
		t.Fatalf("body not relayed: %s", rec.Body.String())
	}
	if env.gateway.forwardPath != "/branches" {
		t.Fatalf("unexpected forwarded path: %q", env.gateway.forwardPath)
	}
	if env.gateway.forwardToken != "t" {
		t.Fatalf("session token not attached: %q", env.gateway.forwardToken)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type not relayed: %q", ct)
	}
}

func TestAdminForwardNestedPath(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, domain.RoleSuperAdmin)
	env.gateway.forwardResp = &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{"status":"shipped"}`)),
	}

	rec := env.do(t, http.MethodPatch, "/admin/api/orders/41/status", `{"status":"shipped"}`, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if env.gateway.forwardPath != "/orders/41/status" {
		t.Fatalf("unexpected forwarded path: %q", env.gateway.forwardPath)
	}
}

func TestAdminForwardAuthorityRejection(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, domain.RoleAdmin)
	env.gateway.forwardErr = backend.ErrAuthRejected

	rec := env.do(t, http.MethodGet, "/admin/api/users", "", cookie)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to landing, got %q", loc)
	}
	if env.store.Len() != 0 {
		t.Fatalf("expected session cleared for admin as well")
	}
}
