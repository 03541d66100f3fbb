package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "console.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestParseOptions_Defaults(t *testing.T) {
	o, err := parseOptions(nil, flags.None)
	require.NoError(t, err)

	require.Equal(t, "http://127.0.0.1:8000/api", o.Manager.URL)
	require.Equal(t, 10*time.Second, o.Directory.RefreshInterval)
	require.Equal(t, 500*time.Millisecond, o.Poll.Interval)
	require.Equal(t, 5*time.Second, o.Poll.Deadline)
	require.Equal(t, "file", o.Labels.Backend)
	require.Equal(t, "nodeLabel", o.Labels.Namespace)
	require.False(t, o.Verbose)
}

func TestParseOptions_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
verbose = true

[manager]
url = "http://10.0.0.1:8000/api"
rate_limit = 5

[labels]
backend = "etcd"
etcd_endpoints = ["10.0.0.2:2379", "10.0.0.3:2379"]

[poll]
deadline = "30s"
`)

	o, err := parseOptions([]string{"--config", path, "--manager.url", "http://override/api"}, flags.None)
	require.NoError(t, err)

	require.Equal(t, "http://override/api", o.Manager.URL)
	require.Equal(t, 5.0, o.Manager.RateLimit)
	require.Equal(t, "etcd", o.Labels.Backend)
	require.Equal(t, []string{"10.0.0.2:2379", "10.0.0.3:2379"}, parseAddrs(o.Labels.EtcdEndpoints))
	require.Equal(t, 30*time.Second, o.Poll.Deadline)
	require.Equal(t, 500*time.Millisecond, o.Poll.Interval)
	require.True(t, o.Verbose)
}

func TestParseOptions_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[directory]
refresh_interval = "1m"
`)

	t.Setenv("DIRECTORY_REFRESH_INTERVAL", "3s")

	o, err := parseOptions([]string{"--config", path}, flags.None)
	require.NoError(t, err)
	require.Equal(t, 3*time.Second, o.Directory.RefreshInterval)
}

func TestParseOptions_Errors(t *testing.T) {
	tests := map[string]struct {
		config string
		args   []string
	}{
		"UnknownKey": {
			config: `unknown = 1`,
		},
		"UnknownTableKey": {
			config: "[manager]\nretries = 3",
		},
		"InvalidBackend": {
			config: "[labels]\nbackend = \"redis\"",
		},
		"InvalidFile": {
			config: `[manager`,
		},
		"MissingFile": {
			args: []string{"--config", "/nonexistent/console.toml"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			args := tt.args
			if tt.config != "" {
				args = []string{"--config", writeConfig(t, tt.config)}
			}

			_, err := parseOptions(args, flags.None)
			require.Error(t, err)
		})
	}
}

func TestParseAddrs(t *testing.T) {
	tests := map[string]struct {
		input string
		want  []string
	}{
		"Empty":       {"", []string{}},
		"Single":      {"a:1", []string{"a:1"}},
		"Multiple":    {"a:1, b:2 ,c:3", []string{"a:1", "b:2", "c:3"}},
		"EmptyPieces": {",a:1,,", []string{"a:1"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tt.want, parseAddrs(tt.input))
		})
	}
}
