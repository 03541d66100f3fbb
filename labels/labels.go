// Package labels resolves human-readable labels for mesh nodes and keeps them
// in a namespaced key/value storage.
package labels

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/meshconsole/mesh"
)

// DefaultLabel derives a label from the last octet of the node's IPv4 address:
//
//	192.168.0.2 -> Manager
//	192.168.0.3 -> Node1
//	...
//	192.168.0.7 -> Node5
//
// Any other address is used as the label as is. The second return value is
// false if the address cannot be parsed.
func DefaultLabel(node mesh.Node) (string, bool) {
	segments := strings.Split(node.Addr, ".")
	if len(segments) < 4 {
		return "", false
	}

	host, _, _ := strings.Cut(segments[3], ":")

	n, err := strconv.Atoi(host)
	if err != nil {
		return "", false
	}

	switch {
	case n == 2:
		return "Manager", true
	case n > 2 && n < 8:
		return "Node" + strconv.Itoa(n-2), true
	default:
		return node.Addr, true
	}
}

// Labeler returns stored labels for nodes, falling back to the default label,
// which is persisted on first use so it stays stable for the node afterwards.
type Labeler struct {
	storage Storage
	logger  log.Logger
	derive  func(mesh.Node) (string, bool)
}

func NewLabeler(storage Storage, logger log.Logger) *Labeler {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &Labeler{
		storage: storage,
		logger:  logger,
		derive:  DefaultLabel,
	}
}

// LabelFor returns the label of the node. The second return value is false if
// the node has no stored label and none can be derived from its address.
// Storage errors are logged and never returned.
func (l *Labeler) LabelFor(ctx context.Context, node mesh.Node) (string, bool) {
	label, err := l.storage.Get(ctx, node.Key)
	if err == nil {
		return label, true
	}

	if !errors.Is(err, ErrNotFound) {
		level.Warn(l.logger).Log("msg", "failed to read node label", "key", node.Key, "err", err)
	}

	label, ok := l.derive(node)
	if !ok {
		return "", false
	}

	if err := l.storage.Put(ctx, node.Key, label); err != nil {
		level.Warn(l.logger).Log("msg", "failed to store default label", "key", node.Key, "err", err)
	}

	return label, true
}

// SetLabel overwrites the label of the node.
func (l *Labeler) SetLabel(ctx context.Context, node mesh.Node, label string) error {
	return l.storage.Put(ctx, node.Key, label)
}
