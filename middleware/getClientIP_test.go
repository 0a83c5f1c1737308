package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(remote string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/booking/estimate", nil)
	c.Request.RemoteAddr = remote
	return c
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	c := testContext("10.0.0.1:52114")
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	c.Request.Header.Set("X-Real-IP", "198.51.100.2")

	if got := getClientIP(c); got != "203.0.113.7" {
		t.Errorf("getClientIP = %q, want first forwarded hop 203.0.113.7", got)
	}
}

func TestGetClientIPFallsBackToRealIP(t *testing.T) {
	c := testContext("10.0.0.1:52114")
	c.Request.Header.Set("X-Real-IP", " 198.51.100.2 ")

	if got := getClientIP(c); got != "198.51.100.2" {
		t.Errorf("getClientIP = %q, want 198.51.100.2", got)
	}
}

func TestGetClientIPStripsPortFromRemoteAddr(t *testing.T) {
	c := testContext("192.0.2.9:41000")
	if got := getClientIP(c); got != "192.0.2.9" {
		t.Errorf("getClientIP = %q, want 192.0.2.9", got)
	}
}

func TestGetClientIPIgnoresEmptyForwardedEntry(t *testing.T) {
	c := testContext("192.0.2.9:41000")
	c.Request.Header.Set("X-Forwarded-For", " , 10.0.0.1")

	if got := getClientIP(c); got != "192.0.2.9" {
		t.Errorf("getClientIP = %q, want remote address when forwarded entry is blank", got)
	}
}
