package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/bjrfx/masakali-menu/internal/auth"

	"github.com/gin-gonic/gin"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware())
	router.POST("/admin/catalog/reload", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})
	return router
}

// TestAuthMiddleware_MissingAuthHeader tests the middleware with missing Authorization header
func TestAuthMiddleware_MissingAuthHeader(t *testing.T) {
	router := protectedRouter()

	req := httptest.NewRequest("POST", "/admin/catalog/reload", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

// TestAuthMiddleware_InvalidAuthFormat tests the middleware with invalid Bearer format
func TestAuthMiddleware_InvalidAuthFormat(t *testing.T) {
	router := protectedRouter()

	req := httptest.NewRequest("POST", "/admin/catalog/reload", nil)
	req.Header.Set("Authorization", "InvalidFormat")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

// TestAuthMiddleware_InvalidToken tests the middleware with an invalid token
func TestAuthMiddleware_InvalidToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")
	router := protectedRouter()

	req := httptest.NewRequest("POST", "/admin/catalog/reload", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

// TestAuthMiddleware_ValidToken tests the full flow with a valid admin token
func TestAuthMiddleware_ValidToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")
	router := protectedRouter()

	token, err := auth.GenerateToken("admin", "ADMIN")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	req := httptest.NewRequest("POST", "/admin/catalog/reload", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

// TestRequireRole_Forbidden tests role enforcement for non-admin tokens
func TestRequireRole_Forbidden(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware(), RequireRole("ADMIN"))
	router.POST("/admin/catalog/reload", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	token, err := auth.GenerateToken("someone", "VIEWER")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	req := httptest.NewRequest("POST", "/admin/catalog/reload", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}
