package integration

import (
	"net/http"
	"testing"
)

func TestAuth_LoginAndProfile(t *testing.T) {
	app := setupApp(t)

	token := app.loginUser(t)

	rec := app.request("GET", "/api/v1/profile", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	if user["email"].(string) != "user@example.com" {
		t.Errorf("unexpected profile %v", user)
	}
}

func TestAuth_InvalidCredentials(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/auth/login",
		`{"email":"user@example.com","password":"wrong"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuth_ProtectedRoutesRequireToken(t *testing.T) {
	app := setupApp(t)

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/transactions"},
		{"POST", "/api/v1/transactions"},
		{"GET", "/api/v1/categories"},
		{"GET", "/api/v1/reports/summary"},
		{"POST", "/api/v1/admin/reset"},
	}
	for _, p := range paths {
		rec := app.request(p.method, p.path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401 without token, got %d", p.method, p.path, rec.Code)
		}
	}
}
