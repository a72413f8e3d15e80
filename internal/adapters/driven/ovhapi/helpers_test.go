package ovhapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAppKey    = "app-key"
	testAppSecret = "app-secret"
	testConsumer  = "consumer-key"
	testTime      = "1690000000"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL+"/1.0", testAppKey, testAppSecret, testConsumer, opts...)
	require.NoError(t, err)
	return c, srv
}

// apiHandler answers auth/time with testTime and passes other paths to next.
func apiHandler(next http.HandlerFunc) http.Handler {
	return timeHandler(testTime, next)
}

func timeHandler(now string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/1.0/auth/time" {
			_, _ = io.WriteString(w, now)
			return
		}
		next(w, r)
	})
}

// assertSigned checks the request the way the server does.
func assertSigned(t *testing.T, r *http.Request, body string) {
	t.Helper()
	fullURL := "http://" + r.Host + r.RequestURI
	want := Sign(r.Method, fullURL, body, r.Header.Get(HeaderTimestamp), testAppSecret, testConsumer)
	assert.Equal(t, want, r.Header.Get(HeaderSignature))
	assert.Equal(t, testAppKey, r.Header.Get(HeaderApplication))
	assert.Equal(t, testConsumer, r.Header.Get(HeaderConsumer))
}
