package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"priyansh-be/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		seen = logger.RequestIDFrom(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("Generates ID when missing", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/ping", nil)

		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		assert.Equal(t, w.Header().Get(RequestIDHeader), seen)
	})

	t.Run("Preserves existing ID", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/ping", map[string]string{RequestIDHeader: "test-id-123"})

		assert.Equal(t, "test-id-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "test-id-123", seen)
	})
}

func TestAccessLog(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	defer logger.Replace(zap.New(core))()

	r := gin.New()
	r.Use(RequestID(), AccessLog())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	serve(r, http.MethodGet, "/ok", map[string]string{RequestIDHeader: "rid-1"})
	serve(r, http.MethodGet, "/boom", nil)

	logs := observed.TakeAll()
	require.Len(t, logs, 2)

	assert.Equal(t, "HTTP request", logs[0].Message)
	assert.Equal(t, zapcore.InfoLevel, logs[0].Level)
	assert.Equal(t, "/ok", logs[0].ContextMap()["path"])
	assert.Equal(t, int64(200), logs[0].ContextMap()["status"])
	assert.Equal(t, "rid-1", logs[0].ContextMap()["request_id"])

	assert.Equal(t, zapcore.ErrorLevel, logs[1].Level)
}

func TestCORS(t *testing.T) {
	newRouter := func(origins []string) *gin.Engine {
		r := gin.New()
		r.Use(CORS(origins))
		r.GET("/products", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("Allow all", func(t *testing.T) {
		w := serve(newRouter([]string{"*"}), http.MethodGet, "/products", map[string]string{"Origin": "https://shop.example"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		w := serve(newRouter(nil), http.MethodOptions, "/products", map[string]string{
			"Origin":                        "https://shop.example",
			"Access-Control-Request-Method": "POST",
		})

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Listed origins only", func(t *testing.T) {
		r := newRouter([]string{"https://shop.example"})

		ok := serve(r, http.MethodGet, "/products", map[string]string{"Origin": "https://shop.example"})
		assert.Equal(t, "https://shop.example", ok.Header().Get("Access-Control-Allow-Origin"))

		denied := serve(r, http.MethodGet, "/products", map[string]string{"Origin": "https://evil.example"})
		assert.Equal(t, http.StatusForbidden, denied.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	newRouter := func(l *RateLimiter) *gin.Engine {
		r := gin.New()
		r.Use(l.Middleware())
		r.POST("/checkout", func(c *gin.Context) { c.Status(http.StatusOK) })
		r.GET("/products", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("Strict route exhausts burst", func(t *testing.T) {
		r := newRouter(NewRateLimiter("", "POST /checkout"))

		for i := 0; i < tierStrict.burst; i++ {
			assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/checkout", nil).Code)
		}
		w := serve(r, http.MethodPost, "/checkout", nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "Too Many Requests")

		// General tier has its own bucket.
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/products", nil).Code)
	})

	t.Run("Device id gets its own bucket", func(t *testing.T) {
		r := newRouter(NewRateLimiter("", "POST /checkout"))

		for i := 0; i < tierStrict.burst; i++ {
			serve(r, http.MethodPost, "/checkout", nil)
		}
		w := serve(r, http.MethodPost, "/checkout", map[string]string{headerDeviceID: "tablet-1"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Internal callers use the internal tier", func(t *testing.T) {
		r := newRouter(NewRateLimiter("s3cret", "POST /checkout"))

		for i := 0; i < tierStrict.burst+1; i++ {
			w := serve(r, http.MethodPost, "/checkout", map[string]string{headerServiceAuth: "s3cret"})
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}

func TestRateLimiter_Cleanup(t *testing.T) {
	l := NewRateLimiter("")
	now := time.Now()
	l.now = func() time.Time { return now }

	l.get("ip:1:general", tierGeneral)
	now = now.Add(visitorTTL + time.Second)
	l.get("ip:2:general", tierGeneral)

	l.cleanup()

	assert.NotContains(t, l.visitors, "ip:1:general")
	assert.Contains(t, l.visitors, "ip:2:general")
}

func TestRateLimiter_RunStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		NewRateLimiter("").Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
