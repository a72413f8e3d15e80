package ovhapi

import (
	"encoding/json"
	"io"
	"net/http"
	"slices"

	"github.com/ovh/ovhdata-cli/internal/logger"
)

// Response is a completed exchange with its body fully read.
type Response struct {
	RequestID  string
	StatusCode int
	Header     http.Header
	Body       string
}

// Send executes req once. A 2xx status, or one listed in tolerated, is a
// success whatever the body. Any other status is a *ResponseError carrying
// the body's "message" field, or the raw body when there is none.
func (c *Client) Send(req *Request, tolerated ...int) (*Response, error) {
	ctx := req.httpReq.Context()
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Method: req.Method, URL: req.URL, Err: err}
		}
	}

	logger.Info("SEND %s %s %s=%s", req.Method, req.URL, HeaderRequestID, req.ID)
	httpResp, err := c.httpClient.Do(req.httpReq)
	if err != nil {
		logger.Error("[KO] %s %s %s=%s: %v", req.Method, req.URL, HeaderRequestID, req.ID, err)
		return nil, &TransportError{Method: req.Method, URL: req.URL, Err: err}
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		logger.Error("[KO] %s %s %s=%s: read body: %v", req.Method, req.URL, HeaderRequestID, req.ID, err)
		return nil, &TransportError{Method: req.Method, URL: req.URL, Err: err}
	}
	logger.Info("[%d] %s %s %s=%s", httpResp.StatusCode, req.Method, req.URL, HeaderRequestID, req.ID)
	logger.Debug("response body: %d bytes", len(data))

	resp := &Response{
		RequestID:  req.ID,
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       string(data),
	}
	if isSuccess(resp.StatusCode) || slices.Contains(tolerated, resp.StatusCode) {
		return resp, nil
	}
	return nil, &ResponseError{
		StatusCode: resp.StatusCode,
		Message:    errorMessage(resp.Body),
		RequestID:  req.ID,
	}
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// errorMessage extracts {"message": "..."} from body, falling back to the
// raw text.
func errorMessage(body string) string {
	var apiErr struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &apiErr); err == nil && apiErr.Message != nil {
		return *apiErr.Message
	}
	return body
}
