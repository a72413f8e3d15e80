package ovhapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		segments []string
		want     string
	}{
		{"no segments", "https://api.example/1.0", nil, "https://api.example/1.0"},
		{"trailing slash", "https://api.example/1.0/", []string{"auth", "time"}, "https://api.example/1.0/auth/time"},
		{"slash in segment", "https://api.example", []string{"sources", "a/b"}, "https://api.example/sources/a%2Fb"},
		{"dot segments", "https://api.example", []string{"..", ".", "x"}, "https://api.example/%2E%2E/%2E/x"},
		{"dots inside a segment", "https://api.example", []string{"a..b", ".env"}, "https://api.example/a..b/.env"},
		{"space and query chars", "https://api.example", []string{"a b?c"}, "https://api.example/a%20b%3Fc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.base, tt.segments...))
		})
	}
}

func TestBuildRequest_SignsWithServerTime(t *testing.T) {
	c, srv := newTestClient(t, apiHandler(func(w http.ResponseWriter, r *http.Request) {}))

	req, err := c.BuildRequest(context.Background(), "get", []string{"cloud", "project"}, nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, srv.URL+"/1.0/cloud/project", req.URL)
	assert.Empty(t, req.Body)
	assert.NotEmpty(t, req.ID)

	h := req.HTTPRequest().Header
	assert.Equal(t, testTime, h.Get(HeaderTimestamp))
	assert.Equal(t, testAppKey, h.Get(HeaderApplication))
	assert.Equal(t, testConsumer, h.Get(HeaderConsumer))
	assert.Equal(t, "application/json; charset=utf-8", h.Get("Accept"))
	assert.Equal(t, "application/json; charset=utf-8", h.Get("Content-Type"))
	assert.Equal(t, DefaultUserAgent, h.Get("User-Agent"))
	assert.Equal(t, Sign("GET", req.URL, "", testTime, testAppSecret, testConsumer), h.Get(HeaderSignature))
}

func TestBuildRequest_BodyAndQuery(t *testing.T) {
	c, srv := newTestClient(t, apiHandler(func(w http.ResponseWriter, r *http.Request) {}))
	name := "my-source"
	spec := domain.SourceSpec{Name: name, Parameters: []domain.Parameter{{Name: "host", Value: "db"}}}

	req, err := c.BuildRequest(context.Background(), http.MethodPost, []string{"sources"},
		[]QueryParam{{Key: "b", Value: "2"}, {Key: "a", Value: "x y"}}, nil, spec)
	require.NoError(t, err)

	want, err := json.Marshal(spec)
	require.NoError(t, err)
	assert.Equal(t, string(want), req.Body)
	assert.Equal(t, srv.URL+"/1.0/sources?a=x+y&b=2", req.URL)
	assert.Equal(t, Sign("POST", req.URL, req.Body, testTime, testAppSecret, testConsumer),
		req.HTTPRequest().Header.Get(HeaderSignature))
}

func TestBuildRequest_ExtraHeadersCannotOverrideAuth(t *testing.T) {
	c, _ := newTestClient(t, apiHandler(func(w http.ResponseWriter, r *http.Request) {}))
	extra := http.Header{}
	extra.Set("X-Custom", "1")
	extra.Set(HeaderConsumer, "forged")

	req, err := c.BuildRequest(context.Background(), http.MethodGet, []string{"x"}, nil, extra, nil)
	require.NoError(t, err)
	assert.Equal(t, "1", req.HTTPRequest().Header.Get("X-Custom"))
	assert.Equal(t, testConsumer, req.HTTPRequest().Header.Get(HeaderConsumer))
}

func TestBuildRequest_ServerVerifiesSignature(t *testing.T) {
	var called atomic.Bool
	c, _ := newTestClient(t, apiHandler(func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
		body, _ := io.ReadAll(r.Body)
		assertSigned(t, r, string(body))
		assert.Equal(t, "/1.0/cloud/project/a%2Fb/dataIntegration/sources", r.URL.EscapedPath())
		_, _ = io.WriteString(w, `{"id":"1","name":"n"}`)
	}))

	got, err := c.CreateSource(context.Background(), "a/b", domain.SourceSpec{Name: "n"})
	require.NoError(t, err)
	assert.True(t, called.Load())
	assert.Equal(t, "1", got.ID)
}

func TestRemoteTime(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int64
	}{
		{"number", "1690000000", 1690000000},
		{"trailing newline", "1690000000\n", 1690000000},
		{"not a number", "oops", FallbackTimestamp},
		{"negative", "-5", FallbackTimestamp},
		{"empty", "", FallbackTimestamp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, timeHandler(tt.body, func(w http.ResponseWriter, r *http.Request) {}))
			got, err := c.RemoteTime(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemoteTime_IsUnauthenticated(t *testing.T) {
	var headers http.Header
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		_, _ = io.WriteString(w, testTime)
	}))
	_, err := c.RemoteTime(context.Background())
	require.NoError(t, err)
	assert.Empty(t, headers.Get(HeaderSignature))
	assert.Empty(t, headers.Get(HeaderConsumer))
	assert.Equal(t, DefaultUserAgent, headers.Get("User-Agent"))
}

func TestBuildRequest_FallbackTimestampHeader(t *testing.T) {
	c, _ := newTestClient(t, timeHandler("oops", func(w http.ResponseWriter, r *http.Request) {}))
	req, err := c.BuildRequest(context.Background(), http.MethodGet, []string{"x"}, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "1", req.HTTPRequest().Header.Get(HeaderTimestamp))
}

func TestBuildRequest_ClockFailures(t *testing.T) {
	t.Run("status error", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "maintenance", http.StatusServiceUnavailable)
		}))
		_, err := c.BuildRequest(context.Background(), http.MethodGet, []string{"x"}, nil, nil, nil)
		assert.Equal(t, http.StatusServiceUnavailable, StatusCode(err))
	})

	t.Run("transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		c, err := New(srv.URL, testAppKey, testAppSecret, testConsumer)
		require.NoError(t, err)
		_, err = c.BuildRequest(context.Background(), http.MethodGet, []string{"x"}, nil, nil, nil)
		assert.True(t, IsTransport(err))
		assert.NotContains(t, err.Error(), testAppSecret)
	})
}
