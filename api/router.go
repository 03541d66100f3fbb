package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/meshconsole/api/handler"
)

type Deps struct {
	Directory handler.Directory
	Labeler   handler.Labeler
	Session   handler.Session
	Commands  handler.NodeCommands
	Logger    kitlog.Logger
}

func CreateRouter(deps Deps) *chi.Mux {
	logger := deps.Logger
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	handler.NewNodesHandler(deps.Directory, deps.Labeler, deps.Session).Register(r)
	handler.NewStreamHandler(deps.Directory, deps.Labeler, logger).Register(r)
	handler.NewCommandsHandler(deps.Commands).Register(r)

	return r
}

func requestLogger(logger kitlog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			level.Debug(logger).Log(
				"msg", "request served",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"took", time.Since(start),
			)
		})
	}
}
