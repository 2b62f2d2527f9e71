package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func performIdentify(t *testing.T, authorization string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var captured string
	router := gin.New()
	router.GET("/", Identify(), func(c *gin.Context) {
		captured = c.GetString("user_id")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, captured
}

func TestIdentifyRequiresHeader(t *testing.T) {
	w, _ := performIdentify(t, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestIdentifyRejectsEmptyBearer(t *testing.T) {
	// A bare "Bearer " must not flow an empty user id into the services.
	w, user := performIdentify(t, "Bearer ")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if user != "" {
		t.Errorf("handler ran with user id %q", user)
	}
}

func TestIdentifyOpaqueToken(t *testing.T) {
	w, user := performIdentify(t, "Bearer some-opaque-token")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if user != "some-opaque-token" {
		t.Errorf("expected raw token as identity, got %q", user)
	}
}

func TestIdentifyJWTSubject(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-77",
	}).SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	w, user := performIdentify(t, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if user != "user-77" {
		t.Errorf("expected subject claim as identity, got %q", user)
	}
}
