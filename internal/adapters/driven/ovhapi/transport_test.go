package ovhapi

import (
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusHandler(code int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
		_, _ = io.WriteString(w, body)
	})
}

func send(t *testing.T, c *Client, tolerated ...int) (*Response, error) {
	t.Helper()
	req, err := c.newRequest(context.Background(), http.MethodGet, []string{"x"}, nil, nil, nil)
	require.NoError(t, err)
	return c.Send(req, tolerated...)
}

func TestSend_SuccessWhateverTheBody(t *testing.T) {
	tests := []struct {
		code int
		body string
	}{
		{http.StatusOK, ""},
		{http.StatusOK, "not json"},
		{http.StatusCreated, `{"message":"created"}`},
		{http.StatusAccepted, "[]"},
		{http.StatusNoContent, ""},
		{299, "odd"},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			c, _ := newTestClient(t, statusHandler(tt.code, tt.body))
			resp, err := send(t, c)
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)
			assert.Equal(t, tt.body, resp.Body)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestSend_ResponseErrorMessage(t *testing.T) {
	tests := []struct {
		name        string
		code        int
		body        string
		wantMessage string
	}{
		{"structured", http.StatusNotFound, `{"message":"not found"}`, "not found"},
		{"structured with extra fields", http.StatusBadRequest, `{"class":"Client::BadRequest","message":"bad"}`, "bad"},
		{"empty message", http.StatusBadRequest, `{"message":""}`, ""},
		{"raw text", http.StatusInternalServerError, "boom", "boom"},
		{"non string message", http.StatusBadRequest, `{"message":3}`, `{"message":3}`},
		{"no message field", http.StatusConflict, `{"error":"x"}`, `{"error":"x"}`},
		{"json null", http.StatusBadGateway, "null", "null"},
		{"empty body", http.StatusUnauthorized, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, statusHandler(tt.code, tt.body))
			resp, err := send(t, c)
			assert.Nil(t, resp)

			var re *ResponseError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tt.code, re.StatusCode)
			assert.Equal(t, tt.wantMessage, re.Message)
			assert.NotEmpty(t, re.RequestID)
		})
	}
}

func TestSend_NotFoundMessage(t *testing.T) {
	c, _ := newTestClient(t, statusHandler(http.StatusNotFound, `{"message":"not found"}`))
	_, err := send(t, c)
	require.Error(t, err)
	assert.Equal(t, "response error: 404: not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthenticated(err))
	assert.False(t, IsTransport(err))
}

func TestSend_ToleratedStatus(t *testing.T) {
	c, _ := newTestClient(t, statusHandler(http.StatusNotFound, `{"message":"not found"}`))

	resp, err := send(t, c, http.StatusNotFound)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, `{"message":"not found"}`, resp.Body)

	_, err = send(t, c, http.StatusConflict)
	assert.True(t, IsNotFound(err))
}

func TestSend_Unauthenticated(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		c, _ := newTestClient(t, statusHandler(code, `{"message":"Invalid credentials"}`))
		_, err := send(t, c)
		assert.True(t, IsUnauthenticated(err), code)
		assert.Equal(t, code, StatusCode(err))
	}
}

func TestSend_NoRetry(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	_, err := send(t, c)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSend_RateLimitHonoursContext(t *testing.T) {
	c, _ := newTestClient(t, statusHandler(http.StatusOK, ""), WithRateLimit(0.001))
	_, err := send(t, c)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req, err := c.newRequest(ctx, http.MethodGet, []string{"x"}, nil, nil, nil)
	require.NoError(t, err)
	_, err = c.Send(req)
	assert.True(t, IsTransport(err))
}
