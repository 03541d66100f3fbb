package manager

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maxpoletaev/meshconsole/mesh"
)

type recordedRequest struct {
	method      string
	path        string
	query       map[string]string
	contentType string
	accept      string
	body        string
}

type recorder struct {
	mut      sync.Mutex
	requests []recordedRequest
}

func (r *recorder) all() []recordedRequest {
	r.mut.Lock()
	defer r.mut.Unlock()

	return append([]recordedRequest(nil), r.requests...)
}

func newTestServer(t *testing.T, status int, respBody string) (*Client, *recorder) {
	rec := &recorder{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		query := make(map[string]string)
		for k := range r.URL.Query() {
			query[k] = r.URL.Query().Get(k)
		}

		rec.mut.Lock()
		rec.requests = append(rec.requests, recordedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			query:       query,
			contentType: r.Header.Get("Content-Type"),
			accept:      r.Header.Get("Accept"),
			body:        string(body),
		})
		rec.mut.Unlock()

		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))

	t.Cleanup(srv.Close)

	conf := DefaultConfig()
	conf.BaseURL = srv.URL + "/api"

	client, err := New(conf)
	require.NoError(t, err)

	return client, rec
}

func TestNew_InvalidBaseURL(t *testing.T) {
	tests := map[string]string{
		"Empty":     "",
		"NoScheme":  "localhost:8000",
		"BadScheme": "ftp://localhost:8000",
	}

	for name, baseURL := range tests {
		t.Run(name, func(t *testing.T) {
			conf := DefaultConfig()
			conf.BaseURL = baseURL

			_, err := New(conf)
			require.Error(t, err)
		})
	}
}

func TestClient_Get(t *testing.T) {
	client, requests := newTestServer(t, http.StatusOK, `[{"key":"a","addr":"10.0.0.2:5000"}]`)

	resp, err := client.Get(context.Background(), "conn/getAll", RequestOptions{})
	require.NoError(t, err)

	var nodes []mesh.Node
	require.NoError(t, resp.Decode(&nodes))
	require.Equal(t, []mesh.Node{{Key: "a", Addr: "10.0.0.2:5000"}}, nodes)

	require.Len(t, requests.all(), 1)
	req := requests.all()[0]
	require.Equal(t, http.MethodGet, req.method)
	require.Equal(t, "/api/conn/getAll", req.path)
	require.Equal(t, "application/json", req.accept)
}

func TestClient_PostForm(t *testing.T) {
	client, requests := newTestServer(t, http.StatusOK, `{}`)

	opts := FormOptions()
	opts.Params = map[string]string{"addr": "http://10.0.0.3:5000/node/getInfo"}

	_, err := client.Post(context.Background(), "req", map[string]interface{}{"key": "abc", "pages": 2}, opts)
	require.NoError(t, err)

	req := requests.all()[0]
	require.Equal(t, http.MethodPost, req.method)
	require.Equal(t, "application/x-www-form-urlencoded", req.contentType)
	require.Equal(t, "key=abc&pages=2", req.body)
	require.Equal(t, "http://10.0.0.3:5000/node/getInfo", req.query["addr"])
}

func TestClient_PostJSON(t *testing.T) {
	client, requests := newTestServer(t, http.StatusOK, `ok`)

	resp, err := client.Post(context.Background(), "req", nil, TextOptions())
	require.NoError(t, err)
	require.Equal(t, "ok", resp.Text())

	req := requests.all()[0]
	require.Equal(t, "application/json", req.contentType)
	require.Equal(t, "text/plain", req.accept)
	require.Equal(t, "{}", req.body)
}

func TestClient_PostFormUnsupportedBody(t *testing.T) {
	client, requests := newTestServer(t, http.StatusOK, `{}`)

	_, err := client.Post(context.Background(), "req", []int{1, 2}, FormOptions())
	require.ErrorIs(t, err, errUnsupportedFormBody)
	require.Empty(t, requests.all())
}

func TestClient_StatusError(t *testing.T) {
	client, _ := newTestServer(t, http.StatusBadGateway, "node unreachable\n")

	_, err := client.Get(context.Background(), "conn/getAll", RequestOptions{})

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusBadGateway, statusErr.Code)
	require.Equal(t, "node unreachable", statusErr.Body)
}

func TestClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	conf := DefaultConfig()
	conf.BaseURL = srv.URL

	client, err := New(conf)
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "conn/getAll", RequestOptions{})
	require.ErrorIs(t, err, mesh.ErrBackendUnavailable)
}

func TestResponse_IsEmpty(t *testing.T) {
	tests := map[string]struct {
		resp Response
		want bool
	}{
		"EmptyBody":   {Response{Body: nil}, true},
		"Whitespace":  {Response{Body: []byte(" \n")}, true},
		"Null":        {Response{Body: []byte("null")}, true},
		"False":       {Response{Body: []byte("false")}, true},
		"Zero":        {Response{Body: []byte("0")}, true},
		"EmptyString": {Response{Body: []byte(`""`)}, true},
		"EmptyArray":  {Response{Body: []byte("[]")}, false},
		"EmptyObject": {Response{Body: []byte("{}")}, false},
		"True":        {Response{Body: []byte("true")}, false},
		"Array":       {Response{Body: []byte(`[{"id":"r1"}]`)}, false},
		"TextFalse":   {Response{Body: []byte("false"), Type: ResponseText}, false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.resp.IsEmpty())
		})
	}
}

func TestResponse_Raw(t *testing.T) {
	tests := map[string]struct {
		resp Response
		want string
	}{
		"Text":          {Response{Body: []byte("rebooting"), Type: ResponseText}, `"rebooting"`},
		"EmptyBody":     {Response{}, "null"},
		"Object":        {Response{Body: []byte(`{"a":1}`)}, `{"a":1}`},
		"PlainTextBody": {Response{Body: []byte("update started")}, `"update started"`},
		"Truncated":     {Response{Body: []byte(`{"a":`)}, `"{\"a\":"`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			raw := tt.resp.Raw()
			require.Equal(t, tt.want, string(raw))
			require.True(t, json.Valid(raw))
		})
	}
}
