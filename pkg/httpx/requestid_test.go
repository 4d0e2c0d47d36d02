package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkravtsov/shopfront/pkg/ctxmeta"
	"github.com/dkravtsov/shopfront/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func TestRequestID_Propagated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotID string
	r := gin.New()
	r.Use(httpx.RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		gotID, _ = ctxmeta.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if gotID != "req-42" {
		t.Fatalf("want req-42 in context, got %q", gotID)
	}
	if w.Header().Get("X-Request-ID") != "req-42" {
		t.Fatalf("want request id echoed in header")
	}
}

func TestRequestID_GeneratedWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(httpx.RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("request id must be generated")
	}
}

func TestAuthToken_Extracted(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotToken string
	r := gin.New()
	r.Use(httpx.AuthTokenMiddleware())
	r.GET("/", func(c *gin.Context) {
		gotToken, _ = ctxmeta.AuthTokenFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Authorization", "Bearer tok-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if gotToken != "tok-1" {
		t.Fatalf("want tok-1 in context, got %q", gotToken)
	}
}
