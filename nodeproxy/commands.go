package nodeproxy

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/meshconsole/manager"
	"github.com/maxpoletaev/meshconsole/mesh"
	"github.com/maxpoletaev/meshconsole/poll"
)

// Apps returns the applications running on the current node.
func (p *Proxy) Apps(ctx context.Context) ([]mesh.NodeApp, error) {
	resp, err := p.Call(ctx, "getApps", nil, manager.RequestOptions{})
	if err != nil {
		return nil, err
	}

	apps := make([]mesh.NodeApp, 0)
	if resp.IsEmpty() {
		return apps, nil
	}

	if err := resp.Decode(&apps); err != nil {
		return nil, err
	}

	return apps, nil
}

// Info returns the self-reported state of the current node.
func (p *Proxy) Info(ctx context.Context) (mesh.NodeInfo, error) {
	resp, err := p.Call(ctx, "getInfo", nil, manager.RequestOptions{})
	if err != nil {
		return mesh.NodeInfo{}, err
	}

	var info mesh.NodeInfo
	if err := resp.Decode(&info); err != nil {
		return mesh.NodeInfo{}, err
	}

	return info, nil
}

// SetNodeConfig sends node configuration values as a form.
func (p *Proxy) SetNodeConfig(ctx context.Context, data map[string]string) (json.RawMessage, error) {
	resp, err := p.Call(ctx, "run/setNodeConfig", data, manager.FormOptions())
	if err != nil {
		return nil, err
	}

	return resp.Raw(), nil
}

// UpdateNodeConfig asks the node to reload its configuration.
func (p *Proxy) UpdateNodeConfig(ctx context.Context) (json.RawMessage, error) {
	resp, err := p.Call(ctx, "run/updateNodeConfig", nil, manager.RequestOptions{})
	if err != nil {
		return nil, err
	}

	return resp.Raw(), nil
}

// AutoStartConfig returns the applications the current node starts on boot.
func (p *Proxy) AutoStartConfig(ctx context.Context) (mesh.AutoStartConfig, error) {
	node, ok := p.session.CurrentNode()
	if !ok {
		return mesh.AutoStartConfig{}, fmt.Errorf("run/getAutoStartConfig: %w", mesh.ErrNoCurrentNode)
	}

	body := map[string]string{"key": node.Key}

	resp, err := p.Call(ctx, "run/getAutoStartConfig", body, manager.FormOptions())
	if err != nil {
		return mesh.AutoStartConfig{}, err
	}

	var conf mesh.AutoStartConfig
	if err := resp.Decode(&conf); err != nil {
		return mesh.AutoStartConfig{}, err
	}

	return conf, nil
}

// SetAutoStartConfig replaces the boot applications of the current node.
func (p *Proxy) SetAutoStartConfig(ctx context.Context, conf mesh.AutoStartConfig) (json.RawMessage, error) {
	node, ok := p.session.CurrentNode()
	if !ok {
		return nil, fmt.Errorf("run/setAutoStartConfig: %w", mesh.ErrNoCurrentNode)
	}

	data, err := json.Marshal(conf)
	if err != nil {
		return nil, fmt.Errorf("failed to encode autostart config: %w", err)
	}

	body := map[string]string{
		"key":  node.Key,
		"data": string(data),
	}

	resp, err := p.Call(ctx, "run/setAutoStartConfig", body, manager.FormOptions())
	if err != nil {
		return nil, err
	}

	return resp.Raw(), nil
}

// SearchServices starts a discovery search on the current node and waits for
// the first page of results.
func (p *Proxy) SearchServices(ctx context.Context, key string, pages, limit int, discoveryKey string) (mesh.SearchResult, error) {
	results, err := poll.Run(ctx, poll.Op[[]mesh.SearchResult]{
		Start: func(ctx context.Context) error {
			body := map[string]interface{}{
				"key":          key,
				"pages":        pages,
				"limit":        limit,
				"discoveryKey": discoveryKey,
			}

			_, err := p.Call(ctx, "run/searchServices", body, manager.FormOptions())

			return err
		},
		Poll: func(ctx context.Context) ([]mesh.SearchResult, error) {
			resp, err := p.Call(ctx, "run/getSearchServicesResult", nil, manager.RequestOptions{})
			if err != nil {
				return nil, err
			}

			if resp.IsEmpty() {
				return nil, nil
			}

			var results []mesh.SearchResult
			if err := resp.Decode(&results); err != nil {
				return nil, err
			}

			return results, nil
		},
		Ready: func(results []mesh.SearchResult) bool {
			return len(results) > 0
		},
		Interval: p.pollInterval,
		Deadline: p.pollDeadline,
		OnState: func(s poll.State) {
			if s.IsTerminal() && s != poll.StateSucceeded {
				level.Warn(p.logger).Log("msg", "search services did not succeed", "key", key, "state", s)
				return
			}

			level.Debug(p.logger).Log("msg", "search services", "key", key, "state", s)
		},
	})

	if err != nil {
		return mesh.SearchResult{}, fmt.Errorf("search services: %w", err)
	}

	return results[0], nil
}

// Reboot reboots the current node and returns the node's reply. Nodes running
// on darwin refuse to reboot, which is reported as ErrRebootUnsupported.
func (p *Proxy) Reboot(ctx context.Context) (string, error) {
	resp, err := p.Call(ctx, "reboot", nil, manager.TextOptions())
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if strings.Contains(text, "darwin") {
		return "", fmt.Errorf("%w: %s", mesh.ErrRebootUnsupported, text)
	}

	return text, nil
}

// CheckUpdate checks whether an update is available for the current node. An
// empty or false reply is reported as ErrNoUpdate.
func (p *Proxy) CheckUpdate(ctx context.Context) (json.RawMessage, error) {
	resp, err := p.Call(ctx, "run/checkUpdate", nil, manager.RequestOptions{})
	if err != nil {
		return nil, err
	}

	if resp.IsEmpty() {
		return nil, mesh.ErrNoUpdate
	}

	return resp.Raw(), nil
}

// Update installs the latest version on the current node.
func (p *Proxy) Update(ctx context.Context) (json.RawMessage, error) {
	resp, err := p.Call(ctx, "update", nil, manager.RequestOptions{})
	if err != nil {
		return nil, err
	}

	return resp.Raw(), nil
}
