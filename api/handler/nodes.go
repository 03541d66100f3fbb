package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/maxpoletaev/meshconsole/api/model"
	"github.com/maxpoletaev/meshconsole/mesh"
)

type NodesHandler struct {
	directory Directory
	labeler   Labeler
	session   Session
}

func NewNodesHandler(directory Directory, labeler Labeler, session Session) *NodesHandler {
	return &NodesHandler{
		directory: directory,
		labeler:   labeler,
		session:   session,
	}
}

func (api *NodesHandler) Register(r chi.Router) {
	r.Get("/nodes", api.getNodes)
	r.Get("/nodes/{key}", api.getNode)
	r.Put("/nodes/{key}/label", api.setLabel)
	r.Get("/current", api.getCurrent)
	r.Put("/current", api.setCurrent)
}

func (api *NodesHandler) toModel(r *http.Request, node mesh.Node) model.Node {
	return labeledNode(r.Context(), api.labeler, node)
}

func labeledNode(ctx context.Context, labeler Labeler, node mesh.Node) model.Node {
	label, _ := labeler.LabelFor(ctx, node)

	return model.Node{
		Key:         node.Key,
		Addr:        node.Addr,
		Type:        node.Type,
		Label:       label,
		SendBytes:   node.SendBytes,
		RecvBytes:   node.RecvBytes,
		LastAckTime: node.LastAckTime,
		StartTime:   node.StartTime,
		Uptime:      int64(node.Uptime(time.Now()) / time.Second),
	}
}

func (api *NodesHandler) getNodes(w http.ResponseWriter, r *http.Request) {
	nodes := api.directory.Snapshot()
	respNodes := make([]model.Node, len(nodes))

	for i, node := range nodes {
		respNodes[i] = api.toModel(r, node)
	}

	render.JSON(w, r, model.GetNodesResponse{
		Nodes: respNodes,
	})
}

// resolveNode prefers the latest snapshot and falls back to asking the manager.
func (api *NodesHandler) resolveNode(r *http.Request, key string) (mesh.Node, error) {
	if node, ok := api.directory.Find(key); ok {
		return node, nil
	}

	return api.directory.LookupNode(r.Context(), key)
}

// findByAddr only looks at the latest snapshot, the manager has no lookup by address.
func (api *NodesHandler) findByAddr(addr string) (mesh.Node, error) {
	node, ok := api.directory.FindByAddr(addr)
	if !ok {
		return mesh.Node{}, fmt.Errorf("%w: no node with address %s", errNotFound, addr)
	}

	return node, nil
}

func (api *NodesHandler) getNode(w http.ResponseWriter, r *http.Request) {
	node, err := api.directory.LookupNode(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, api.toModel(r, node))
}

func (api *NodesHandler) setLabel(w http.ResponseWriter, r *http.Request) {
	var params model.SetLabelParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		renderError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	params.Label = strings.TrimSpace(params.Label)
	if params.Label == "" {
		renderError(w, r, fmt.Errorf("%w: label must not be empty", errBadRequest))
		return
	}

	node, err := api.resolveNode(r, chi.URLParam(r, "key"))
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := api.labeler.SetLabel(r.Context(), node, params.Label); err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, api.toModel(r, node))
}

func (api *NodesHandler) getCurrent(w http.ResponseWriter, r *http.Request) {
	node, ok := api.session.CurrentNode()
	if !ok {
		renderError(w, r, mesh.ErrNoCurrentNode)
		return
	}

	render.JSON(w, r, api.toModel(r, node))
}

func (api *NodesHandler) setCurrent(w http.ResponseWriter, r *http.Request) {
	var params model.SetCurrentNodeParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		renderError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	var (
		node mesh.Node
		err  error
	)

	switch {
	case params.Key != "":
		node, err = api.resolveNode(r, params.Key)
	case params.Addr != "":
		node, err = api.findByAddr(params.Addr)
	default:
		err = fmt.Errorf("%w: key or addr is required", errBadRequest)
	}

	if err != nil {
		renderError(w, r, err)
		return
	}

	api.session.SetCurrentNode(node)
	render.JSON(w, r, api.toModel(r, node))
}
