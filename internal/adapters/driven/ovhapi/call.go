package ovhapi

import "context"

// call builds, sends and decodes one request.
func call[T any](ctx context.Context, c *Client, method string, path []string, body any) (T, error) {
	var zero T
	req, err := c.BuildRequest(ctx, method, path, nil, nil, body)
	if err != nil {
		return zero, err
	}
	resp, err := c.Send(req)
	if err != nil {
		return zero, err
	}
	return Parse[T](resp)
}

// callRef is call for single records.
func callRef[T any](ctx context.Context, c *Client, method string, path []string, body any) (*T, error) {
	v, err := call[T](ctx, c, method, path, body)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// exec sends a request whose response body is ignored.
func exec(ctx context.Context, c *Client, method string, path []string, body any) error {
	req, err := c.BuildRequest(ctx, method, path, nil, nil, body)
	if err != nil {
		return err
	}
	_, err = c.Send(req)
	return err
}
