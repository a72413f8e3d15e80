package ovhapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Header names of the signed protocol.
const (
	HeaderApplication = "X-Ovh-Application"
	HeaderTimestamp   = "X-Ovh-Timestamp"
	HeaderSignature   = "X-Ovh-Signature"
	HeaderConsumer    = "X-Ovh-Consumer"
	HeaderRequestID   = "X-Request-Id"

	contentTypeJSON = "application/json; charset=utf-8"
)

// QueryParam is one query string pair. Order is not significant.
type QueryParam struct {
	Key   string
	Value string
}

// Request is a built request ready to be sent once.
type Request struct {
	ID     string
	Method string
	URL    string
	Body   string

	httpReq *http.Request
}

// HTTPRequest exposes the underlying request, headers included.
func (r *Request) HTTPRequest() *http.Request {
	return r.httpReq
}

// Resolve appends each segment to base, escaping it on its own so that a
// "/" inside a segment never adds a path level.
func Resolve(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(escapeSegment(s))
	}
	return b.String()
}

// escapeSegment escapes s as a single path segment. PathEscape leaves dots
// alone, so "." and ".." are encoded to keep them from walking the path.
func escapeSegment(s string) string {
	switch s {
	case ".":
		return "%2E"
	case "..":
		return "%2E%2E"
	default:
		return url.PathEscape(s)
	}
}

// BuildRequest builds a signed request. The body, when not nil, is encoded
// as JSON. The server time is fetched right before signing.
func (c *Client) BuildRequest(ctx context.Context, method string, path []string, query []QueryParam, headers http.Header, body any) (*Request, error) {
	req, err := c.newRequest(ctx, method, path, query, headers, body)
	if err != nil {
		return nil, err
	}

	ts, err := c.RemoteTime(ctx)
	if err != nil {
		return nil, err
	}
	timestamp := strconv.FormatInt(ts, 10)

	h := req.httpReq.Header
	h.Set("Accept", contentTypeJSON)
	h.Set("Content-Type", contentTypeJSON)
	h.Set(HeaderApplication, c.applicationKey)
	h.Set(HeaderConsumer, c.consumerKey)
	h.Set(HeaderTimestamp, timestamp)
	h.Set(HeaderSignature, Sign(req.Method, req.URL, req.Body, timestamp, c.applicationSecret, c.consumerKey))
	return req, nil
}

// newRequest builds the unsigned part of a request.
func (c *Client) newRequest(ctx context.Context, method string, path []string, query []QueryParam, headers http.Header, body any) (*Request, error) {
	method = strings.ToUpper(method)
	target := Resolve(c.endpoint, path...)
	if len(query) > 0 {
		values := url.Values{}
		for _, q := range query {
			values.Add(q.Key, q.Value)
		}
		target += "?" + values.Encode()
	}

	var payload string
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = string(data)
	}

	var rd io.Reader = http.NoBody
	if payload != "" {
		rd = strings.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	for k, vs := range headers {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("User-Agent", c.userAgent)

	return &Request{
		ID:      uuid.NewString(),
		Method:  method,
		URL:     httpReq.URL.String(),
		Body:    payload,
		httpReq: httpReq,
	}, nil
}
