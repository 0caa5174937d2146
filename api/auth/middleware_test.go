package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conferential/conferential/database"
)

func newTestRouter(a *Authenticator, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{a.RequireAuth()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		claims, _ := CurrentClaims(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})
	r.GET("/protected", handlers...)
	return r
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	a := New("test-secret", time.Hour)
	r := newTestRouter(a)

	token, err := a.IssueToken(&database.User{ID: 3})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"missing token", "Bearer", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, get(r, tt.header).Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	a := New("test-secret", time.Hour)
	r := newTestRouter(a, RequireAdmin())

	adminToken, err := a.IssueToken(&database.User{ID: 1, IsAdmin: true})
	require.NoError(t, err)
	userToken, err := a.IssueToken(&database.User{ID: 2})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, "Bearer "+adminToken).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "Bearer "+userToken).Code)
}

func TestRequireAdminOrSponsor(t *testing.T) {
	a := New("test-secret", time.Hour)
	r := newTestRouter(a, RequireAdminOrSponsor())

	adminToken, err := a.IssueToken(&database.User{ID: 1, IsAdmin: true})
	require.NoError(t, err)
	sponsorToken, err := a.IssueToken(&database.User{ID: 2, IsSponsor: true})
	require.NoError(t, err)
	userToken, err := a.IssueToken(&database.User{ID: 3})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, "Bearer "+adminToken).Code)
	assert.Equal(t, http.StatusOK, get(r, "Bearer "+sponsorToken).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "Bearer "+userToken).Code)
}

func TestOptionalAuth(t *testing.T) {
	a := New("test-secret", time.Hour)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/maybe", a.OptionalAuth(), func(c *gin.Context) {
		if claims, ok := CurrentClaims(c); ok {
			c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
			return
		}
		c.JSON(http.StatusOK, gin.H{})
	})

	token, err := a.IssueToken(&database.User{ID: 9})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/maybe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "userId")

	req = httptest.NewRequest(http.MethodGet, "/maybe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "userId")

	// An invalid credential on an optional route is ignored, not rejected.
	req = httptest.NewRequest(http.MethodGet, "/maybe", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "userId")
}
