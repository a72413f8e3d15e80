package ovhapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/ovh/ovhdata-cli/internal/logger"
)

// FallbackTimestamp is used when auth/time answers with something that is
// not a number. The server will then reject the signature.
const FallbackTimestamp int64 = 1

const maxLoggedBody = 64

// RemoteTime returns the server clock in seconds since the epoch.
// Transport and status failures are returned; an unparsable body yields
// FallbackTimestamp and a warning.
func (c *Client) RemoteTime(ctx context.Context) (int64, error) {
	req, err := c.newRequest(ctx, http.MethodGet, []string{"auth", "time"}, nil, nil, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.Send(req)
	if err != nil {
		return 0, err
	}

	ts, err := strconv.ParseInt(strings.TrimSpace(resp.Body), 10, 64)
	if err != nil || ts < 0 {
		logger.Warn("unexpected auth/time response %q, using timestamp %d", truncate(resp.Body, maxLoggedBody), FallbackTimestamp)
		return FallbackTimestamp, nil
	}
	return ts, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
