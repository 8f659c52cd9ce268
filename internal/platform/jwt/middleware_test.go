package jwtmw

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// runMiddleware はテスト用コンテキストでミドルウェアを1回実行します。
func runMiddleware(secret, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	AuthRequired(secret)(c)
	return w, c
}

// TestAuthRequired_MissingBearerToken はBearerトークンがない場合やプレフィックスが不正な場合に401が返されることを検証します。
func TestAuthRequired_MissingBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, c := runMiddleware("test-secret", tt.authHeader)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.True(t, c.IsAborted())
		})
	}
}

// TestAuthRequired_MissingJWTSecret はシークレットが空の場合に500が返されることを検証します。
func TestAuthRequired_MissingJWTSecret(t *testing.T) {
	t.Parallel()

	w, c := runMiddleware("", "Bearer sometoken")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, c.IsAborted())
}

// TestAuthRequired_InvalidToken は不正なトークン（改ざん・期限切れ等）で401が返されることを検証します。
func TestAuthRequired_InvalidToken(t *testing.T) {
	t.Parallel()

	const testSecret = "test-secret-key-for-invalid"

	tests := []struct {
		name  string
		token string
	}{
		{"malformed token", "not.a.valid.token"},
		{"random string", "randomstring"},
		{"wrong secret", createTokenWithSecret("wrong-secret", 1, time.Hour)},
		{"expired token", createTokenWithSecret(testSecret, 1, -time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, _ := runMiddleware(testSecret, "Bearer "+tt.token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

// TestAuthRequired_ValidToken は有効なトークンでリクエストが通過し、コンテキストに管理者情報が設定されることを検証します。
func TestAuthRequired_ValidToken(t *testing.T) {
	t.Parallel()

	const testSecret = "test-secret-key-for-valid"

	for _, adminID := range []uint{1, 42, 999} {
		token := createTokenWithSecret(testSecret, adminID, time.Hour)

		w, c := runMiddleware(testSecret, "Bearer "+token)
		require.False(t, c.IsAborted(), "response: %s", w.Body.String())

		got, exists := c.Get(ContextAdminID)
		require.True(t, exists)
		assert.Equal(t, adminID, got)
		assert.Equal(t, "test@example.com", c.GetString(ContextAdminEmail))
	}
}

// TestAuthRequired_GeneratorRoundTrip はGeneratorが発行したトークンをミドルウェアが受け入れることを検証します。
func TestAuthRequired_GeneratorRoundTrip(t *testing.T) {
	t.Parallel()

	token, err := NewGenerator("round-trip", time.Minute).GenerateToken(7, "laura@example.com")
	require.NoError(t, err)

	_, c := runMiddleware("round-trip", "Bearer "+token)
	require.False(t, c.IsAborted())
	assert.Equal(t, uint(7), c.GetUint(ContextAdminID))
	assert.Equal(t, "laura@example.com", c.GetString(ContextAdminEmail))
}

// TestAuthRequired_InvalidSigningMethod はnoneアルゴリズム（未署名）のトークンが拒否されることを検証します。
func TestAuthRequired_InvalidSigningMethod(t *testing.T) {
	t.Parallel()

	const testSecret = "test-secret-key-for-signing"

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": float64(1),
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})
	tokenStr, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)

	w, _ := runMiddleware(testSecret, "Bearer "+tokenStr)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// createTokenWithSecret はテスト用に指定されたシークレットと管理者IDで署名済みJWTトークンを生成します。
func createTokenWithSecret(secret string, adminID uint, expiration time.Duration) string {
	claims := jwt.MapClaims{
		"sub":   float64(adminID),
		"exp":   time.Now().Add(expiration).Unix(),
		"iat":   time.Now().Unix(),
		"email": "test@example.com",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte(secret))
	return signed
}
