package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"calendar-pro/pkg/log"
)

func newTestEngine(m Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.RequestID(), m.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := newTestEngine(New(log.NewNop(), 0))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(HeaderRequestID)
		if id == "" {
			t.Fatal("expected a generated request id")
		}
		if w.Body.String() != id {
			t.Errorf("context id %q differs from header %q", w.Body.String(), id)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		r.ServeHTTP(w, req)

		if w.Header().Get(HeaderRequestID) != "abc-123" || w.Body.String() != "abc-123" {
			t.Errorf("expected caller id to be reused, got %q", w.Header().Get(HeaderRequestID))
		}
	})
}

func TestRateLimit(t *testing.T) {
	// 60/min refills one token per second; burst is 6.
	r := newTestEngine(New(log.NewNop(), 60))

	send := func(remote string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = remote
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 6; i++ {
		if code := send("10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
	if code := send("10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", code)
	}
	if code := send("10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("other clients must not be limited, got %d", code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r := newTestEngine(New(log.NewNop(), 0))
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}
