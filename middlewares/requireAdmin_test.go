package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.GET("/admin-only", RequireAdmin(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return server
}

func signToken(t *testing.T, role, secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "admin",
		"role":     role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestRequireAdminAcceptsAdminToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	server := adminRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin", "test-secret"))
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	server := adminRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminRejectsNonAdminRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	server := adminRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user", "test-secret"))
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminRejectsTokenSignedWithWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	server := adminRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin", "another-secret"))
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
