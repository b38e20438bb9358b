// internal/middleware/rate_limit_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newLimitedEngine(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func ping(r *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	// Refill interval is long enough that no token comes back mid-test.
	r := newLimitedEngine(NewRateLimiter(rate.Every(time.Hour), 2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, ping(r, "10.0.0.1:1234"))
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterTracksVisitorsPerIP(t *testing.T) {
	r := newLimitedEngine(NewRateLimiter(rate.Every(time.Hour), 1))

	assert.Equal(t, http.StatusOK, ping(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, ping(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, ping(r, "10.0.0.2:1234"), "one noisy client must not starve another")
}

func TestRateLimiterInstancesAreIndependent(t *testing.T) {
	a := newLimitedEngine(NewRateLimiter(rate.Every(time.Hour), 1))
	b := newLimitedEngine(NewRateLimiter(rate.Every(time.Hour), 1))

	assert.Equal(t, http.StatusOK, ping(a, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, ping(a, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, ping(b, "10.0.0.1:1234"), "limiters carry no shared state across engines")
}
