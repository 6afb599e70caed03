package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitWithoutRedisFailsOpen(t *testing.T) {
	r := gin.New()
	r.GET("/x", RateLimit(nil, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestKeyFuncs(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	c.Set("real_ip", "203.0.113.9")

	assert.Equal(t, "rl:ip:203.0.113.9", KeyByIP()(c))
	assert.Equal(t, "rl:path:/x:ip:203.0.113.9", KeyByIPAndPath()(c))
}

func TestAllowPrivateIP(t *testing.T) {
	allow := AllowPrivateIP()

	cases := []struct {
		ip   string
		want bool
	}{
		{"127.0.0.1", true},
		{"192.168.1.10", true},
		{"10.0.0.3", true},
		{"203.0.113.9", false},
		{"not-an-ip", false},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
		c.Set("real_ip", tc.ip)
		assert.Equal(t, tc.want, allow(c), tc.ip)
	}
}
