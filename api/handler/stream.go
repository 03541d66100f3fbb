package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/websocket"

	"github.com/maxpoletaev/meshconsole/api/model"
	"github.com/maxpoletaev/meshconsole/mesh"
)

const writeTimeout = 10 * time.Second

type StreamHandler struct {
	directory Directory
	labeler   Labeler
	logger    kitlog.Logger
	upgrader  websocket.Upgrader
}

func NewStreamHandler(directory Directory, labeler Labeler, logger kitlog.Logger) *StreamHandler {
	return &StreamHandler{
		directory: directory,
		labeler:   labeler,
		logger:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (api *StreamHandler) Register(r chi.Router) {
	r.Get("/nodes/stream", api.stream)
}

func (api *StreamHandler) stream(w http.ResponseWriter, r *http.Request) {
	conn, err := api.upgrader.Upgrade(w, r, nil)
	if err != nil {
		level.Warn(api.logger).Log("msg", "websocket upgrade failed", "err", err)
		return
	}

	defer conn.Close()

	sub := api.directory.Subscribe()
	defer sub.Close()

	level.Debug(api.logger).Log("msg", "stream subscriber connected", "sub_id", sub.ID)

	// The client is not expected to send anything, reading only detects disconnects.
	gone := make(chan struct{})

	go func() {
		defer close(gone)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			level.Debug(api.logger).Log("msg", "stream subscriber disconnected", "sub_id", sub.ID)
			return
		case nodes, ok := <-sub.C:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
					time.Now().Add(writeTimeout))

				return
			}

			if err := api.write(r, conn, nodes); err != nil {
				level.Warn(api.logger).Log("msg", "failed to write snapshot", "sub_id", sub.ID, "err", err)
				return
			}
		}
	}
}

func (api *StreamHandler) write(r *http.Request, conn *websocket.Conn, nodes []mesh.Node) error {
	respNodes := make([]model.Node, len(nodes))

	for i, node := range nodes {
		respNodes[i] = labeledNode(r.Context(), api.labeler, node)
	}

	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}

	return conn.WriteJSON(model.GetNodesResponse{Nodes: respNodes})
}
