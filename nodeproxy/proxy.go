// Package nodeproxy sends commands to mesh nodes through the manager's generic
// proxy route.
package nodeproxy

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/meshconsole/internal/generic"
	"github.com/maxpoletaev/meshconsole/manager"
	"github.com/maxpoletaev/meshconsole/mesh"
	"github.com/maxpoletaev/meshconsole/poll"
)

const proxyPath = "req"

type Option func(*Proxy)

func WithLogger(logger log.Logger) Option {
	return func(p *Proxy) {
		p.logger = logger
	}
}

// WithPollInterval sets the interval between result polls of long-running commands.
func WithPollInterval(t time.Duration) Option {
	return func(p *Proxy) {
		p.pollInterval = t
	}
}

// WithPollDeadline sets how long long-running commands wait for a result.
func WithPollDeadline(t time.Duration) Option {
	return func(p *Proxy) {
		p.pollDeadline = t
	}
}

// Proxy runs commands on the current node of a session.
type Proxy struct {
	client       Client
	session      *Session
	logger       log.Logger
	pollInterval time.Duration
	pollDeadline time.Duration
}

func New(client Client, session *Session, opts ...Option) *Proxy {
	p := &Proxy{
		client:       client,
		session:      session,
		logger:       log.NewNopLogger(),
		pollInterval: poll.DefaultInterval,
		pollDeadline: poll.DefaultDeadline,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Session returns the session the proxy sends commands for.
func (p *Proxy) Session() *Session {
	return p.session
}

// TargetURL returns the URL the manager forwards a proxied request to.
func TargetURL(addr, endpoint string) string {
	return "http://" + addr + "/node/" + endpoint
}

// Call sends the endpoint request to the current node through the manager and
// returns the manager's response as is. The target URL is added to the addr
// query parameter; other params in opts are kept and never modified. If no
// node is selected, no request is sent and ErrNoCurrentNode is returned.
func (p *Proxy) Call(ctx context.Context, endpoint string, body interface{}, opts manager.RequestOptions) (*manager.Response, error) {
	node, ok := p.session.CurrentNode()
	if !ok {
		return nil, fmt.Errorf("%s: %w", endpoint, mesh.ErrNoCurrentNode)
	}

	opts.Params = generic.MapMerge(opts.Params, map[string]string{
		"addr": TargetURL(node.Addr, endpoint),
	})

	level.Debug(p.logger).Log("msg", "proxy call", "node", node.Key, "endpoint", endpoint)

	resp, err := p.client.Post(ctx, proxyPath, body, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}

	return resp, nil
}
