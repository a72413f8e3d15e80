package ovhapi

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driven"
)

// maxProjectFetches bounds the concurrent per-project lookups.
const maxProjectFetches = 8

var _ driven.ProjectAPI = (*Client)(nil)

// ProjectList returns the service names of the account's projects.
func (c *Client) ProjectList(ctx context.Context) ([]string, error) {
	return call[[]string](ctx, c, http.MethodGet, []string{"cloud", "project"}, nil)
}

// Project returns one project.
func (c *Client) Project(ctx context.Context, serviceName string) (*domain.Project, error) {
	return callRef[domain.Project](ctx, c, http.MethodGet, []string{"cloud", "project", serviceName}, nil)
}

// Projects fetches every project concurrently. The result keeps the order
// of ProjectList and the first failure cancels the rest.
func (c *Client) Projects(ctx context.Context) ([]domain.Project, error) {
	ids, err := c.ProjectList(ctx)
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxProjectFetches)
	for i, id := range ids {
		g.Go(func() error {
			p, err := c.Project(gctx, id)
			if err != nil {
				return err
			}
			projects[i] = *p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return projects, nil
}
