package nodeproxy

//go:generate mockgen -source=facilities.go -destination=mock/client_mock.go -package=mock

import (
	"context"

	"github.com/maxpoletaev/meshconsole/manager"
)

// Client sends requests to the manager.
type Client interface {
	Post(ctx context.Context, path string, body interface{}, opts manager.RequestOptions) (*manager.Response, error)
}
