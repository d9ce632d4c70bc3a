package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func adminProtected(t *testing.T, secret []byte) (http.Handler, *bool, **Claims) {
	t.Helper()
	called := false
	var seen *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if c, ok := ClaimsFromContext(r.Context()); ok {
			seen = c
		}
		w.WriteHeader(http.StatusOK)
	})
	return RequireAdmin(secret)(next), &called, &seen
}

func TestRequireAdmin_NoToken(t *testing.T) {
	h, called, _ := adminProtected(t, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/api/contact/messages", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", rec.Code)
	}
	if *called {
		t.Error("expected the handler not to be reached")
	}
}

func TestRequireAdmin_MalformedHeader(t *testing.T) {
	h, _, _ := adminProtected(t, testSecret)

	token, _ := GenerateToken("u-1", "admin", "admin", testSecret)
	req := httptest.NewRequest(http.MethodGet, "/api/contact/messages", nil)
	req.Header.Set("Authorization", token) // missing "Bearer " prefix
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a malformed header, got %d", rec.Code)
	}
}

func TestRequireAdmin_InvalidToken(t *testing.T) {
	h, called, _ := adminProtected(t, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/api/contact/messages", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for an invalid token, got %d", rec.Code)
	}
	if *called {
		t.Error("expected the handler not to be reached")
	}
}

func TestRequireAdmin_NonAdminRole(t *testing.T) {
	h, called, _ := adminProtected(t, testSecret)

	token, err := GenerateToken("u-2", "viewer", "viewer", testSecret)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/contact/messages", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for a non-admin token, got %d", rec.Code)
	}
	if *called {
		t.Error("expected the handler not to be reached")
	}
}

func TestRequireAdmin_ValidAdmin(t *testing.T) {
	h, called, seen := adminProtected(t, testSecret)

	token, err := GenerateToken("u-1", "admin", "admin", testSecret)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/contact/messages", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !*called {
		t.Fatal("expected the handler to be reached")
	}
	if *seen == nil || (*seen).UserID != "u-1" {
		t.Errorf("expected claims in the request context, got %+v", *seen)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"bearer abc.def.ghi", ""},
		{"abc.def.ghi", ""},
		{"", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		if got := BearerToken(req); got != tt.want {
			t.Errorf("BearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
