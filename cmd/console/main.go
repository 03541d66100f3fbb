package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log/level"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/maxpoletaev/meshconsole/api"
	"github.com/maxpoletaev/meshconsole/internal/multierror"
	"github.com/maxpoletaev/meshconsole/labels"
)

func main() {
	parsed, err := parseOptions(os.Args[1:], flags.Default)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}

		fmt.Println("cli error:", err)
		os.Exit(2)
	}

	opts = *parsed

	appctx, cancel := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize all components.
	logger, closeLogger := setupLogger()

	client, err := setupManagerClient(logger)
	if err != nil {
		level.Error(logger).Log("msg", "failed to initialize", "err", err)
		os.Exit(1)
	}

	storage, closeStorage, err := setupLabelStorage(logger)
	if err != nil {
		level.Error(logger).Log("msg", "failed to initialize", "err", err)
		os.Exit(1)
	}

	dir, closeDirectory, err := setupDirectory(client, logger)
	if err != nil {
		level.Error(logger).Log("msg", "failed to initialize", "err", err)
		os.Exit(1)
	}

	proxy := setupProxy(client, logger)
	labeler := labels.NewLabeler(storage, logger)

	g, ctx := errgroup.WithContext(appctx)

	g.Go(func() error {
		return api.StartServer(ctx, api.Deps{
			Directory: dir,
			Labeler:   labeler,
			Session:   proxy.Session(),
			Commands:  proxy,
			Logger:    logger,
		}, logger, opts.API.BindAddr)
	})

	// Block until we receive a signal or the server fails.
	<-ctx.Done()
	level.Info(logger).Log("msg", "shutting down")

	if err := g.Wait(); err != nil {
		level.Error(logger).Log("msg", "server stopped", "err", err)
	}

	// Components must be shut down in a particular order.
	shutdownOrder := []struct {
		name string
		f    shutdownFunc
	}{
		{"directory", closeDirectory},
		{"labels", closeStorage},
		{"logger", closeLogger},
	}

	errs := multierror.New[string]()
	for _, step := range shutdownOrder {
		errs.Add(step.name, step.f(context.Background()))
	}

	if err := errs.Combined(); err != nil {
		level.Error(logger).Log("msg", "failed to shutdown components", "err", err)
	}
}
