package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yourorg/todokeeper/internal/common"
	"github.com/yourorg/todokeeper/internal/server/auth"
	"github.com/yourorg/todokeeper/internal/server/models"
	"github.com/yourorg/todokeeper/internal/server/services"
)

func mintToken(t *testing.T, userID int64, email string, ttl time.Duration) string {
	t.Helper()
	cfg := testConfig()
	token, err := auth.GenerateToken(userID, email, []byte(cfg.SecretKey), ttl)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return token
}

func authedRequest(t *testing.T, method, target string, body any, token string) *http.Request {
	t.Helper()
	req := jsonRequest(t, method, target, body)
	req.AddCookie(&http.Cookie{Name: common.TokenCookieName, Value: token})
	return req
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	app := newTestApp(t, &fakeUserService{}, &fakeTodoService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/todos", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	d := decodeBody(t, resp)
	if d.Error == nil || d.Error.Message != "Authentication required" {
		t.Fatalf("unexpected error: %+v", d.Error)
	}
	data, ok := d.Data.(map[string]any)
	if !ok || data["redirect"] != "/login" {
		t.Fatalf("expected redirect hint, got %v", d.Data)
	}
}

func TestRequireAuth_InvalidTokenClearsCookie(t *testing.T) {
	app := newTestApp(t, &fakeUserService{}, &fakeTodoService{})

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.AddCookie(&http.Cookie{Name: common.TokenCookieName, Value: "not-a-token"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	d := decodeBody(t, resp)
	if d.Error == nil || d.Error.Message != "Invalid or expired token" {
		t.Fatalf("unexpected error: %+v", d.Error)
	}

	cookie := findCookie(resp, common.TokenCookieName)
	if cookie == nil {
		t.Fatal("expected cookie to be cleared")
	}
	if cookie.Value != "" || cookie.Expires.After(time.Now()) {
		t.Fatalf("cookie not cleared: %+v", cookie)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	app := newTestApp(t, &fakeUserService{}, &fakeTodoService{})

	token := mintToken(t, 7, "alice@example.com", -time.Minute)
	resp, err := app.Test(authedRequest(t, http.MethodGet, "/api/todos", nil, token))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireAuth_ValidTokenPassesIdentity(t *testing.T) {
	todoSvc := &fakeTodoService{listOut: []*models.Todo{}, listPage: &services.Pagination{CurrentPage: 1, PageSize: 10}}
	app := newTestApp(t, &fakeUserService{}, todoSvc)

	token := mintToken(t, 7, "alice@example.com", time.Hour)
	resp, err := app.Test(authedRequest(t, http.MethodGet, "/api/todos", nil, token))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if todoSvc.gotUserID != 7 {
		t.Fatalf("service saw userID %d, want 7", todoSvc.gotUserID)
	}
}
