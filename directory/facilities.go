package directory

import (
	"context"

	"github.com/maxpoletaev/meshconsole/manager"
)

// Client is the part of the manager API used by the directory.
type Client interface {
	Get(ctx context.Context, path string, opts manager.RequestOptions) (*manager.Response, error)
	Post(ctx context.Context, path string, body interface{}, opts manager.RequestOptions) (*manager.Response, error)
}
