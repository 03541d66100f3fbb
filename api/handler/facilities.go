package handler

//go:generate mockgen -source=facilities.go -destination=mock/facilities_mock.go -package=mock

import (
	"context"
	"encoding/json"

	"github.com/maxpoletaev/meshconsole/directory"
	"github.com/maxpoletaev/meshconsole/mesh"
)

type Directory interface {
	Snapshot() []mesh.Node
	Find(key string) (mesh.Node, bool)
	FindByAddr(addr string) (mesh.Node, bool)
	Subscribe() *directory.Subscription
	LookupNode(ctx context.Context, key string) (mesh.Node, error)
}

type Labeler interface {
	LabelFor(ctx context.Context, node mesh.Node) (string, bool)
	SetLabel(ctx context.Context, node mesh.Node, label string) error
}

type Session interface {
	SetCurrentNode(node mesh.Node)
	CurrentNode() (mesh.Node, bool)
}

type NodeCommands interface {
	Apps(ctx context.Context) ([]mesh.NodeApp, error)
	Info(ctx context.Context) (mesh.NodeInfo, error)
	SetNodeConfig(ctx context.Context, data map[string]string) (json.RawMessage, error)
	UpdateNodeConfig(ctx context.Context) (json.RawMessage, error)
	AutoStartConfig(ctx context.Context) (mesh.AutoStartConfig, error)
	SetAutoStartConfig(ctx context.Context, conf mesh.AutoStartConfig) (json.RawMessage, error)
	SearchServices(ctx context.Context, key string, pages, limit int, discoveryKey string) (mesh.SearchResult, error)
	Reboot(ctx context.Context) (string, error)
	CheckUpdate(ctx context.Context) (json.RawMessage, error)
	Update(ctx context.Context) (json.RawMessage, error)
}
