package main

import (
	"context"
	"fmt"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	clientv3 "go.etcd.io/etcd/client/v3"
	"golang.org/x/time/rate"

	"github.com/maxpoletaev/meshconsole/directory"
	"github.com/maxpoletaev/meshconsole/labels"
	"github.com/maxpoletaev/meshconsole/manager"
	"github.com/maxpoletaev/meshconsole/nodeproxy"
)

type shutdownFunc func(ctx context.Context) error

var noopShutdown = func(ctx context.Context) error { return nil }

func setupLogger() (kitlog.Logger, shutdownFunc) {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	if !opts.Verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	return logger, noopShutdown
}

func setupManagerClient(logger kitlog.Logger) (*manager.Client, error) {
	conf := manager.DefaultConfig()
	conf.BaseURL = opts.Manager.URL
	conf.Timeout = opts.Manager.Timeout
	conf.RateLimit = rate.Limit(opts.Manager.RateLimit)
	conf.Burst = opts.Manager.Burst
	conf.Logger = kitlog.With(logger, "component", "manager")

	client, err := manager.New(conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create manager client: %w", err)
	}

	return client, nil
}

func setupLabelStorage(logger kitlog.Logger) (labels.Storage, shutdownFunc, error) {
	switch opts.Labels.Backend {
	case "memory":
		level.Info(logger).Log("msg", "using in-memory label storage")
		return labels.NewMemoryStorage(), noopShutdown, nil

	case "etcd":
		endpoints := parseAddrs(opts.Labels.EtcdEndpoints)

		cli, err := clientv3.New(clientv3.Config{
			Endpoints:   endpoints,
			DialTimeout: opts.Labels.EtcdTimeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create etcd client: %w", err)
		}

		level.Info(logger).Log("msg", "using etcd label storage", "endpoints", opts.Labels.EtcdEndpoints)

		storage := labels.NewEtcdStorage(cli, opts.Labels.EtcdPrefix, opts.Labels.Namespace, opts.Labels.EtcdTimeout)

		shutdown := func(ctx context.Context) error {
			logger.Log("msg", "closing etcd client")
			return cli.Close()
		}

		return storage, shutdown, nil

	default:
		storage, err := labels.OpenFileStorage(opts.Labels.Path, opts.Labels.Namespace)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open label file: %w", err)
		}

		level.Info(logger).Log("msg", "using file label storage", "path", opts.Labels.Path)

		return storage, noopShutdown, nil
	}
}

func setupDirectory(client *manager.Client, logger kitlog.Logger) (*directory.Directory, shutdownFunc, error) {
	conf := directory.DefaultConfig()
	conf.RefreshInterval = opts.Directory.RefreshInterval
	conf.RequestTimeout = opts.Directory.RequestTimeout
	conf.Logger = kitlog.With(logger, "component", "directory")

	dir, err := directory.New(client, conf)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create node directory: %w", err)
	}

	dir.Refresh()

	shutdown := func(ctx context.Context) error {
		logger.Log("msg", "stopping node directory")
		dir.Close()

		return nil
	}

	return dir, shutdown, nil
}

func setupProxy(client *manager.Client, logger kitlog.Logger) *nodeproxy.Proxy {
	return nodeproxy.New(
		client,
		nodeproxy.NewSession(),
		nodeproxy.WithLogger(kitlog.With(logger, "component", "nodeproxy")),
		nodeproxy.WithPollInterval(opts.Poll.Interval),
		nodeproxy.WithPollDeadline(opts.Poll.Deadline),
	)
}
