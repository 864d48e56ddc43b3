package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"check-vero.backend/pkg/jwt"
	redispkg "check-vero.backend/pkg/redis"
)

func newAuthTestRouter(jwtSvc *jwt.JWTService, sessionStore *redispkg.SessionStore, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(jwtSvc, sessionStore)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := GetUserID(c)
		username, _ := GetUsername(c)
		role, _ := GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "username": username, "role": role})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	jwtSvc := jwt.NewJWTService("test-secret", time.Minute, time.Hour)
	r := newAuthTestRouter(jwtSvc, nil)

	userID := uuid.New()
	pair, err := jwtSvc.GenerateTokenPair(userID, "alice", "citizen")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestAuthMiddleware_MissingAndMalformedHeader(t *testing.T) {
	jwtSvc := jwt.NewJWTService("test-secret", time.Minute, time.Hour)
	r := newAuthTestRouter(jwtSvc, nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, "Token abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredAndInvalidToken(t *testing.T) {
	expiredSvc := jwt.NewJWTService("test-secret", -time.Second, -time.Second)
	pair, err := expiredSvc.GenerateTokenPair(uuid.New(), "alice", "citizen")
	assert.NoError(t, err)

	jwtSvc := jwt.NewJWTService("test-secret", time.Minute, time.Hour)
	r := newAuthTestRouter(jwtSvc, nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+"garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_SessionID(t *testing.T) {
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	defer srv.Close()

	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	redispkg.SetClient(cli)
	defer cli.Close()

	store, err := redispkg.NewSessionStore("0000000000000000000000000000000000000000000000000000000000000000")
	assert.NoError(t, err)

	jwtSvc := jwt.NewJWTService("test-secret", time.Minute, time.Hour)
	userID := uuid.New()
	pair, err := jwtSvc.GenerateTokenPair(userID, "acme", "business")
	assert.NoError(t, err)

	err = store.CreateSession(context.Background(), "sid-1", &redispkg.SessionData{
		UserID:      userID.String(),
		Role:        "business",
		AccessToken: pair.AccessToken,
	}, time.Minute)
	assert.NoError(t, err)

	r := newAuthTestRouter(jwtSvc, store)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(SessionIDHeader, "sid-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "acme")

	// Unknown session
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(SessionIDHeader, "sid-unknown")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	jwtSvc := jwt.NewJWTService("test-secret", time.Minute, time.Hour)
	r := newAuthTestRouter(jwtSvc, nil, RequireBusinessOrAdmin())

	citizenPair, err := jwtSvc.GenerateTokenPair(uuid.New(), "alice", "citizen")
	assert.NoError(t, err)
	businessPair, err := jwtSvc.GenerateTokenPair(uuid.New(), "acme", "business")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+citizenPair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+businessPair.AccessToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_NoRoleInContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		id := c.GetString(RequestIDKey)
		c.String(http.StatusOK, id)
	})

	// Generated when absent
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))

	// Propagated when supplied
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Body.String())
}
