package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/maxpoletaev/meshconsole/api/model"
	"github.com/maxpoletaev/meshconsole/mesh"
)

type CommandsHandler struct {
	commands NodeCommands
}

func NewCommandsHandler(commands NodeCommands) *CommandsHandler {
	return &CommandsHandler{
		commands: commands,
	}
}

func (api *CommandsHandler) Register(r chi.Router) {
	r.Route("/node", func(r chi.Router) {
		r.Get("/apps", api.getApps)
		r.Get("/info", api.getInfo)
		r.Post("/config", api.setConfig)
		r.Post("/config/update", api.updateConfig)
		r.Get("/autostart", api.getAutoStart)
		r.Put("/autostart", api.setAutoStart)
		r.Post("/search", api.searchServices)
		r.Post("/reboot", api.reboot)
		r.Get("/update", api.checkUpdate)
		r.Post("/update", api.update)
	})
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return nil
}

func renderResult(w http.ResponseWriter, r *http.Request, result json.RawMessage, err error) {
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, model.CommandResponse{Result: result})
}

func (api *CommandsHandler) getApps(w http.ResponseWriter, r *http.Request) {
	apps, err := api.commands.Apps(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, apps)
}

func (api *CommandsHandler) getInfo(w http.ResponseWriter, r *http.Request) {
	info, err := api.commands.Info(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, info)
}

func (api *CommandsHandler) setConfig(w http.ResponseWriter, r *http.Request) {
	var params model.SetNodeConfigParams
	if err := decodeBody(r, &params); err != nil {
		renderError(w, r, err)
		return
	}

	if len(params.Values) == 0 {
		renderError(w, r, fmt.Errorf("%w: no config values", errBadRequest))
		return
	}

	result, err := api.commands.SetNodeConfig(r.Context(), params.Values)
	renderResult(w, r, result, err)
}

func (api *CommandsHandler) updateConfig(w http.ResponseWriter, r *http.Request) {
	result, err := api.commands.UpdateNodeConfig(r.Context())
	renderResult(w, r, result, err)
}

func (api *CommandsHandler) getAutoStart(w http.ResponseWriter, r *http.Request) {
	conf, err := api.commands.AutoStartConfig(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, conf)
}

func (api *CommandsHandler) setAutoStart(w http.ResponseWriter, r *http.Request) {
	var conf mesh.AutoStartConfig
	if err := decodeBody(r, &conf); err != nil {
		renderError(w, r, err)
		return
	}

	result, err := api.commands.SetAutoStartConfig(r.Context(), conf)
	renderResult(w, r, result, err)
}

func (api *CommandsHandler) searchServices(w http.ResponseWriter, r *http.Request) {
	var params model.SearchServicesParams
	if err := decodeBody(r, &params); err != nil {
		renderError(w, r, err)
		return
	}

	if params.Pages < 0 || params.Limit < 0 {
		renderError(w, r, fmt.Errorf("%w: pages and limit must not be negative", errBadRequest))
		return
	}

	result, err := api.commands.SearchServices(r.Context(), params.Key, params.Pages, params.Limit, params.DiscoveryKey)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, result)
}

func (api *CommandsHandler) reboot(w http.ResponseWriter, r *http.Request) {
	msg, err := api.commands.Reboot(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, model.RebootResponse{Message: msg})
}

func (api *CommandsHandler) checkUpdate(w http.ResponseWriter, r *http.Request) {
	result, err := api.commands.CheckUpdate(r.Context())
	if errors.Is(err, mesh.ErrNoUpdate) {
		render.NoContent(w, r)
		return
	}

	renderResult(w, r, result, err)
}

func (api *CommandsHandler) update(w http.ResponseWriter, r *http.Request) {
	result, err := api.commands.Update(r.Context())
	renderResult(w, r, result, err)
}
