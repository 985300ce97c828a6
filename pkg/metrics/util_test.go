package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeApproximateRequestSize(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/members", nil)
	r.Host = "localhost:8888"
	r.Header.Set("Authorization", "Bearer abc")

	got := computeApproximateRequestSize(r)

	// method + proto + path + host + header name and value
	want := len("GET") + len("HTTP/1.1") + len("/api/v1/members") +
		len("localhost:8888") + len("Authorization") + len("Bearer abc")
	assert.Equal(t, want, got)
}

func TestMillisecondsSince(t *testing.T) {
	start := time.Now().Add(-250 * time.Millisecond)
	got := MillisecondsSince(start)
	assert.GreaterOrEqual(t, got, 250.0)
	assert.Less(t, got, 10_000.0)
}
