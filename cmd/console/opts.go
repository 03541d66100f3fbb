package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/jessevdk/go-flags"
)

type options struct {
	Config string `long:"config" env:"CONFIG" description:"path to a TOML file with option defaults"`

	Manager struct {
		URL       string        `long:"url" env:"URL" default:"http://127.0.0.1:8000/api" description:"manager API base url"`
		Timeout   time.Duration `long:"timeout" env:"TIMEOUT" default:"10s" description:"manager request timeout"`
		RateLimit float64       `long:"rate-limit" env:"RATE_LIMIT" default:"20" description:"max manager requests per second, 0 disables"`
		Burst     int           `long:"burst" env:"BURST" default:"10" description:"manager request burst"`
	} `group:"manager" namespace:"manager" env-namespace:"MANAGER"`

	API struct {
		BindAddr string `long:"bind-addr" env:"BIND_ADDR" default:":8080" description:"address to bind the console API"`
	} `group:"api" namespace:"api" env-namespace:"API"`

	Directory struct {
		RefreshInterval time.Duration `long:"refresh-interval" env:"REFRESH_INTERVAL" default:"10s" description:"node list refresh interval"`
		RequestTimeout  time.Duration `long:"request-timeout" env:"REQUEST_TIMEOUT" default:"5s" description:"node list request timeout"`
	} `group:"directory" namespace:"directory" env-namespace:"DIRECTORY"`

	Poll struct {
		Interval time.Duration `long:"interval" env:"INTERVAL" default:"500ms" description:"result poll interval"`
		Deadline time.Duration `long:"deadline" env:"DEADLINE" default:"5s" description:"result poll deadline"`
	} `group:"poll" namespace:"poll" env-namespace:"POLL"`

	Labels struct {
		Backend       string        `long:"backend" env:"BACKEND" default:"file" choice:"memory" choice:"file" choice:"etcd" description:"label storage backend"`
		Path          string        `long:"path" env:"PATH" default:"labels.json" description:"label file path for the file backend"`
		Namespace     string        `long:"namespace" env:"NAMESPACE" default:"nodeLabel" description:"label storage namespace"`
		EtcdEndpoints string        `long:"etcd-endpoints" env:"ETCD_ENDPOINTS" default:"127.0.0.1:2379" description:"comma-separated list of etcd endpoints"`
		EtcdPrefix    string        `long:"etcd-prefix" env:"ETCD_PREFIX" default:"meshconsole" description:"etcd key prefix"`
		EtcdTimeout   time.Duration `long:"etcd-timeout" env:"ETCD_TIMEOUT" default:"3s" description:"etcd request timeout"`
	} `group:"labels" namespace:"labels" env-namespace:"LABELS"`

	Verbose bool `long:"verbose" env:"VERBOSE" description:"verbose mode"`
}

var opts options

// parseOptions parses command line arguments and the environment. When a config
// file is given, its values replace the built-in defaults, so the precedence is
// flags, then environment, then the file, then defaults.
func parseOptions(args []string, parserOpts flags.Options) (*options, error) {
	var first options
	if _, err := flags.NewParser(&first, parserOpts).ParseArgs(args); err != nil {
		return nil, err
	}

	if first.Config == "" {
		return &first, nil
	}

	var raw map[string]interface{}
	if _, err := toml.DecodeFile(first.Config, &raw); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var result options
	p := flags.NewParser(&result, parserOpts)

	if err := applyDefaults(p, "", raw); err != nil {
		return nil, err
	}

	if _, err := p.ParseArgs(args); err != nil {
		return nil, err
	}

	return &result, nil
}

// applyDefaults maps TOML keys to long option names: tables become namespaces
// and underscores become dashes, e.g. [labels] etcd_prefix -> labels.etcd-prefix.
func applyDefaults(p *flags.Parser, prefix string, values map[string]interface{}) error {
	for key, value := range values {
		name := strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			name = prefix + "." + name
		}

		if table, ok := value.(map[string]interface{}); ok {
			if err := applyDefaults(p, name, table); err != nil {
				return err
			}

			continue
		}

		opt := p.FindOptionByLongName(name)
		if opt == nil || name == "config" {
			return fmt.Errorf("unknown config option: %s", name)
		}

		opt.Default = []string{formatValue(value)}
	}

	return nil
}

func formatValue(value interface{}) string {
	list, ok := value.([]interface{})
	if !ok {
		return fmt.Sprint(value)
	}

	items := make([]string, len(list))
	for i, item := range list {
		items[i] = fmt.Sprint(item)
	}

	return strings.Join(items, ",")
}

func parseAddrs(addrs string) []string {
	sl := strings.Split(addrs, ",")
	res := make([]string, 0, len(sl))

	for _, addr := range sl {
		trimmed := strings.TrimSpace(addr)
		if trimmed != "" {
			res = append(res, trimmed)
		}
	}

	return res
}
