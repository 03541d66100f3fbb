package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/maxpoletaev/meshconsole/api/handler/mock"
	"github.com/maxpoletaev/meshconsole/api/model"
	"github.com/maxpoletaev/meshconsole/manager"
	"github.com/maxpoletaev/meshconsole/mesh"
)

func serveCommand(t *testing.T, setup func(c *mock.MockNodeCommands), method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var (
		mux      = chi.NewMux()
		ctrl     = gomock.NewController(t)
		commands = mock.NewMockNodeCommands(ctrl)
	)

	if setup != nil {
		setup(commands)
	}

	NewCommandsHandler(commands).Register(mux)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)

	return recorder
}

func TestCommandsHandler_errorMapping(t *testing.T) {
	tests := map[string]struct {
		err        error
		wantStatus int
	}{
		"NoCurrentNode": {
			err:        fmt.Errorf("getApps: %w", mesh.ErrNoCurrentNode),
			wantStatus: http.StatusConflict,
		},
		"ManagerRejected": {
			err:        fmt.Errorf("getApps: %w", &manager.StatusError{Code: 500, Body: "boom"}),
			wantStatus: http.StatusBadGateway,
		},
		"ManagerUnavailable": {
			err:        fmt.Errorf("getApps: %w", mesh.ErrBackendUnavailable),
			wantStatus: http.StatusServiceUnavailable,
		},
		"Other": {
			err:        fmt.Errorf("getApps: unexpected response"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			recorder := serveCommand(t, func(c *mock.MockNodeCommands) {
				c.EXPECT().Apps(gomock.Any()).Return(nil, tt.err)
			}, "GET", "/node/apps", "")

			require.Equal(t, tt.wantStatus, recorder.Code)

			resp := decodeResponse[model.ErrorResponse](t, recorder)
			require.Equal(t, tt.err.Error(), resp.Error)
		})
	}
}

func TestCommandsHandler_getApps(t *testing.T) {
	apps := []mesh.NodeApp{{Key: "socks", ConnectionsQuantity: 3}}

	recorder := serveCommand(t, func(c *mock.MockNodeCommands) {
		c.EXPECT().Apps(gomock.Any()).Return(apps, nil)
	}, "GET", "/node/apps", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, apps, decodeResponse[[]mesh.NodeApp](t, recorder))
}

func TestCommandsHandler_setConfig(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		recorder := serveCommand(t, func(c *mock.MockNodeCommands) {
			c.EXPECT().SetNodeConfig(gomock.Any(), map[string]string{"mode": "relay"}).
				Return(json.RawMessage(`true`), nil)
		}, "POST", "/node/config", `{"Values": {"mode": "relay"}}`)

		require.Equal(t, http.StatusOK, recorder.Code)

		resp := decodeResponse[model.CommandResponse](t, recorder)
		require.JSONEq(t, `true`, string(resp.Result))
	})

	t.Run("NoValues", func(t *testing.T) {
		recorder := serveCommand(t, nil, "POST", "/node/config", `{"Values": {}}`)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestCommandsHandler_setAutoStart(t *testing.T) {
	conf := mesh.AutoStartConfig{Sockss: true, Sshs: false}

	recorder := serveCommand(t, func(c *mock.MockNodeCommands) {
		c.EXPECT().SetAutoStartConfig(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, got mesh.AutoStartConfig) (json.RawMessage, error) {
				require.Equal(t, conf, got)
				return json.RawMessage(`"ok"`), nil
			})
	}, "PUT", "/node/autostart", `{"sockss": true, "sshs": false}`)

	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestCommandsHandler_searchServices(t *testing.T) {
	tests := map[string]struct {
		body       string
		setup      func(c *mock.MockNodeCommands)
		wantStatus int
	}{
		"Success": {
			body: `{"Key": "svc", "Pages": 1, "Limit": 10, "DiscoveryKey": "d"}`,
			setup: func(c *mock.MockNodeCommands) {
				c.EXPECT().SearchServices(gomock.Any(), "svc", 1, 10, "d").
					Return(mesh.SearchResult{Count: 1}, nil)
			},
			wantStatus: http.StatusOK,
		},
		"Timeout": {
			body: `{"Key": "svc"}`,
			setup: func(c *mock.MockNodeCommands) {
				c.EXPECT().SearchServices(gomock.Any(), "svc", 0, 0, "").
					Return(mesh.SearchResult{}, fmt.Errorf("search services: %w", mesh.ErrTimeout))
			},
			wantStatus: http.StatusGatewayTimeout,
		},
		"NegativeLimit": {
			body:       `{"Key": "svc", "Limit": -1}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			recorder := serveCommand(t, tt.setup, "POST", "/node/search", tt.body)
			require.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestCommandsHandler_reboot(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		recorder := serveCommand(t, func(c *mock.MockNodeCommands) {
			c.EXPECT().Reboot(gomock.Any()).Return("rebooting", nil)
		}, "POST", "/node/reboot", "")

		require.Equal(t, http.StatusOK, recorder.Code)
		require.Equal(t, "rebooting", decodeResponse[model.RebootResponse](t, recorder).Message)
	})

	t.Run("Unsupported", func(t *testing.T) {
		recorder := serveCommand(t, func(c *mock.MockNodeCommands) {
			c.EXPECT().Reboot(gomock.Any()).Return("", fmt.Errorf("%w: darwin", mesh.ErrRebootUnsupported))
		}, "POST", "/node/reboot", "")

		require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})
}

func TestCommandsHandler_checkUpdate(t *testing.T) {
	t.Run("Available", func(t *testing.T) {
		recorder := serveCommand(t, func(c *mock.MockNodeCommands) {
			c.EXPECT().CheckUpdate(gomock.Any()).Return(json.RawMessage(`{"version": "1.2"}`), nil)
		}, "GET", "/node/update", "")

		require.Equal(t, http.StatusOK, recorder.Code)

		resp := decodeResponse[model.CommandResponse](t, recorder)
		require.JSONEq(t, `{"version": "1.2"}`, string(resp.Result))
	})

	t.Run("NoUpdate", func(t *testing.T) {
		recorder := serveCommand(t, func(c *mock.MockNodeCommands) {
			c.EXPECT().CheckUpdate(gomock.Any()).Return(nil, mesh.ErrNoUpdate)
		}, "GET", "/node/update", "")

		require.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func TestCommandsHandler_update(t *testing.T) {
	recorder := serveCommand(t, func(c *mock.MockNodeCommands) {
		c.EXPECT().Update(gomock.Any()).Return(json.RawMessage(`"update started"`), nil)
	}, "POST", "/node/update", "")

	require.Equal(t, http.StatusOK, recorder.Code)

	resp := decodeResponse[model.CommandResponse](t, recorder)
	require.JSONEq(t, `"update started"`, string(resp.Result))
}
