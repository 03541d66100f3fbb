package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/maxpoletaev/meshconsole/api/handler/mock"
	"github.com/maxpoletaev/meshconsole/api/model"
	"github.com/maxpoletaev/meshconsole/mesh"
)

var (
	managerNode = mesh.Node{Key: "m", Addr: "192.168.0.2:5000", Type: "manager"}
	workerNode  = mesh.Node{Key: "w", Addr: "192.168.0.3:5000", SendBytes: 10, RecvBytes: 20}
)

type nodesFixture struct {
	mux       *chi.Mux
	directory *mock.MockDirectory
	labeler   *mock.MockLabeler
	session   *mock.MockSession
}

func newNodesFixture(t *testing.T) *nodesFixture {
	ctrl := gomock.NewController(t)

	f := &nodesFixture{
		mux:       chi.NewMux(),
		directory: mock.NewMockDirectory(ctrl),
		labeler:   mock.NewMockLabeler(ctrl),
		session:   mock.NewMockSession(ctrl),
	}

	NewNodesHandler(f.directory, f.labeler, f.session).Register(f.mux)

	return f
}

func (f *nodesFixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	f.mux.ServeHTTP(recorder, req)

	return recorder
}

func decodeResponse[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var resp T
	err := json.NewDecoder(recorder.Body).Decode(&resp)
	require.NoError(t, err, "failed to unmarshal response: %v", err)

	return resp
}

func TestNodesHandler_getNodes(t *testing.T) {
	tests := map[string]struct {
		nodes    []mesh.Node
		wantBody model.GetNodesResponse
	}{
		"Empty": {
			nodes: []mesh.Node{},
			wantBody: model.GetNodesResponse{
				Nodes: []model.Node{},
			},
		},
		"MultipleValues": {
			nodes: []mesh.Node{managerNode, workerNode},
			wantBody: model.GetNodesResponse{
				Nodes: []model.Node{
					{Key: "m", Addr: "192.168.0.2:5000", Type: "manager", Label: "Manager"},
					{Key: "w", Addr: "192.168.0.3:5000", Label: "Node1", SendBytes: 10, RecvBytes: 20},
				},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newNodesFixture(t)
			f.directory.EXPECT().Snapshot().Return(tt.nodes)
			f.labeler.EXPECT().LabelFor(gomock.Any(), managerNode).Return("Manager", true).AnyTimes()
			f.labeler.EXPECT().LabelFor(gomock.Any(), workerNode).Return("Node1", true).AnyTimes()

			recorder := f.do("GET", "/nodes", "")
			require.Equal(t, http.StatusOK, recorder.Code)
			require.Equal(t, tt.wantBody, decodeResponse[model.GetNodesResponse](t, recorder))
		})
	}
}

func TestNodesHandler_getNode(t *testing.T) {
	tests := map[string]struct {
		lookupErr  error
		wantStatus int
	}{
		"Found": {
			wantStatus: http.StatusOK,
		},
		"LookupFailed": {
			lookupErr:  fmt.Errorf("%w: not found", mesh.ErrLookupFailed),
			wantStatus: http.StatusBadGateway,
		},
		"ManagerDown": {
			lookupErr:  fmt.Errorf("%w: %w", mesh.ErrLookupFailed, mesh.ErrBackendUnavailable),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newNodesFixture(t)

			if tt.lookupErr != nil {
				f.directory.EXPECT().LookupNode(gomock.Any(), "w").Return(mesh.Node{}, tt.lookupErr)
			} else {
				f.directory.EXPECT().LookupNode(gomock.Any(), "w").Return(workerNode, nil)
				f.labeler.EXPECT().LabelFor(gomock.Any(), workerNode).Return("Node1", true)
			}

			recorder := f.do("GET", "/nodes/w", "")
			require.Equal(t, tt.wantStatus, recorder.Code)

			if tt.lookupErr == nil {
				node := decodeResponse[model.Node](t, recorder)
				require.Equal(t, "Node1", node.Label)
			}
		})
	}
}

func TestNodesHandler_setLabel(t *testing.T) {
	t.Run("FromSnapshot", func(t *testing.T) {
		f := newNodesFixture(t)
		f.directory.EXPECT().Find("w").Return(workerNode, true)
		f.labeler.EXPECT().SetLabel(gomock.Any(), workerNode, "gateway").Return(nil)
		f.labeler.EXPECT().LabelFor(gomock.Any(), workerNode).Return("gateway", true)

		recorder := f.do("PUT", "/nodes/w/label", `{"Label": " gateway "}`)
		require.Equal(t, http.StatusOK, recorder.Code)
		require.Equal(t, "gateway", decodeResponse[model.Node](t, recorder).Label)
	})

	t.Run("FallsBackToLookup", func(t *testing.T) {
		f := newNodesFixture(t)
		f.directory.EXPECT().Find("w").Return(mesh.Node{}, false)
		f.directory.EXPECT().LookupNode(gomock.Any(), "w").Return(workerNode, nil)
		f.labeler.EXPECT().SetLabel(gomock.Any(), workerNode, "gateway").Return(nil)
		f.labeler.EXPECT().LabelFor(gomock.Any(), workerNode).Return("gateway", true)

		recorder := f.do("PUT", "/nodes/w/label", `{"Label": "gateway"}`)
		require.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("EmptyLabel", func(t *testing.T) {
		f := newNodesFixture(t)

		recorder := f.do("PUT", "/nodes/w/label", `{"Label": "  "}`)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		f := newNodesFixture(t)

		recorder := f.do("PUT", "/nodes/w/label", `{`)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestNodesHandler_current(t *testing.T) {
	t.Run("NoCurrentNode", func(t *testing.T) {
		f := newNodesFixture(t)
		f.session.EXPECT().CurrentNode().Return(mesh.Node{}, false)

		recorder := f.do("GET", "/current", "")
		require.Equal(t, http.StatusConflict, recorder.Code)

		resp := decodeResponse[model.ErrorResponse](t, recorder)
		require.Contains(t, resp.Error, mesh.ErrNoCurrentNode.Error())
	})

	t.Run("SetAndGet", func(t *testing.T) {
		f := newNodesFixture(t)
		f.directory.EXPECT().Find("w").Return(workerNode, true)
		f.session.EXPECT().SetCurrentNode(workerNode)
		f.session.EXPECT().CurrentNode().Return(workerNode, true)
		f.labeler.EXPECT().LabelFor(gomock.Any(), workerNode).Return("Node1", true).Times(2)

		recorder := f.do("PUT", "/current", `{"Key": "w"}`)
		require.Equal(t, http.StatusOK, recorder.Code)

		recorder = f.do("GET", "/current", "")
		require.Equal(t, http.StatusOK, recorder.Code)
		require.Equal(t, "w", decodeResponse[model.Node](t, recorder).Key)
	})

	t.Run("MissingKey", func(t *testing.T) {
		f := newNodesFixture(t)

		recorder := f.do("PUT", "/current", `{}`)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("ByAddr", func(t *testing.T) {
		f := newNodesFixture(t)
		f.directory.EXPECT().FindByAddr("192.168.0.3:5000").Return(workerNode, true)
		f.session.EXPECT().SetCurrentNode(workerNode)
		f.labeler.EXPECT().LabelFor(gomock.Any(), workerNode).Return("Node1", true)

		recorder := f.do("PUT", "/current", `{"Addr": "192.168.0.3:5000"}`)
		require.Equal(t, http.StatusOK, recorder.Code)
		require.Equal(t, "w", decodeResponse[model.Node](t, recorder).Key)
	})

	t.Run("UnknownAddr", func(t *testing.T) {
		f := newNodesFixture(t)
		f.directory.EXPECT().FindByAddr("10.0.0.9:5000").Return(mesh.Node{}, false)

		recorder := f.do("PUT", "/current", `{"Addr": "10.0.0.9:5000"}`)
		require.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("UnknownNode", func(t *testing.T) {
		f := newNodesFixture(t)
		f.directory.EXPECT().Find("x").Return(mesh.Node{}, false)
		f.directory.EXPECT().LookupNode(gomock.Any(), "x").Return(mesh.Node{}, mesh.ErrLookupFailed)

		recorder := f.do("PUT", "/current", `{"Key": "x"}`)
		require.Equal(t, http.StatusBadGateway, recorder.Code)
	})
}

func TestNodesHandler_uptime(t *testing.T) {
	started := mesh.Node{Key: "s", Addr: "192.168.0.4:5000", StartTime: time.Now().Add(-2 * time.Minute).Unix()}

	f := newNodesFixture(t)
	f.directory.EXPECT().Snapshot().Return([]mesh.Node{started})
	f.labeler.EXPECT().LabelFor(gomock.Any(), started).Return("Node2", true)

	recorder := f.do("GET", "/nodes", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	nodes := decodeResponse[model.GetNodesResponse](t, recorder).Nodes
	require.Len(t, nodes, 1)
	require.GreaterOrEqual(t, nodes[0].Uptime, int64(120))
	require.Less(t, nodes[0].Uptime, int64(180))
}
