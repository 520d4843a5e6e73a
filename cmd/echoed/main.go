package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"

	"github.com/echoed/echoed-cli/internal/client/api"
	"github.com/echoed/echoed-cli/internal/client/auth"
	"github.com/echoed/echoed-cli/internal/client/cache"
	"github.com/echoed/echoed-cli/internal/client/cli"
	"github.com/echoed/echoed-cli/internal/client/config"
	"github.com/echoed/echoed-cli/internal/client/expiry"
	"github.com/echoed/echoed-cli/internal/client/iocli"
	"github.com/echoed/echoed-cli/internal/client/session"
	"github.com/echoed/echoed-cli/internal/client/transport"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// clientIDKey lives in the durable scope next to the session keys but
// survives logout: it identifies the install, not the user.
const clientIDKey = "client-id"

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Server URL (overrides config)")
	configFile := flag.String("config", "", "Path to config file")
	dataDir := flag.String("data", "", "Data directory (overrides config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	ctx := context.Background()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create data directory: %v\n", err)
		os.Exit(1)
	}

	durable, err := session.NewBoltScope(ctx, cfg.SessionDBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := durable.Close(); err != nil {
			logger.Error("failed to close session database", "error", err)
		}
	}()

	store := session.NewStore(ctx, durable, session.NewMemScope(), logger)

	notifier := expiry.NewNotifier(func(ctx context.Context) {
		if err := store.Clear(ctx); err != nil {
			logger.Warn("failed to clear expired session", "error", err)
		}
	}, nil, logger)

	// The refresher must bypass the authorizer, or a dead refresh token
	// would recurse.
	refresher := api.NewClient(cfg.ServerURL)

	authorizer := transport.NewAuthorizer(nil, store, refresher, notifier, logger)
	httpClient := &http.Client{
		Timeout:   cfg.HTTPTimeout,
		Transport: authorizer,
	}

	apiClient := api.NewClient(cfg.ServerURL,
		api.WithHTTPClient(httpClient),
		api.WithClientID(loadClientID(ctx, durable, logger)),
	)

	gateway := auth.NewGateway(apiClient, store, nil, logger)

	history, err := cache.New(ctx, cfg.HistoryDBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open history database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := history.Prune(ctx, cfg.HistorySize); err != nil {
			logger.Warn("failed to prune history", "error", err)
		}
		if err := history.Close(); err != nil {
			logger.Error("failed to close history database", "error", err)
		}
	}()

	app := cli.New(iocli.NewStdio(), apiClient, gateway, store, notifier, history, logger)
	app.Run(ctx, command, args[1:])
}

// loadClientID returns the persisted install id, creating one on first run
func loadClientID(ctx context.Context, scope session.Scope, logger *slog.Logger) string {
	id, err := scope.Get(ctx, clientIDKey)
	if err == nil {
		return id
	}
	if !errors.Is(err, session.ErrKeyNotFound) {
		logger.Warn("failed to read client id", "error", err)
	}
	id = uuid.New().String()
	if err := scope.Set(ctx, clientIDKey, id); err != nil {
		logger.Warn("failed to persist client id", "error", err)
	}
	return id
}

func printVersion() {
	fmt.Printf("echoed version %s\n", Version)
	fmt.Printf("Build date: %s\n", BuildDate)
	fmt.Printf("Git commit: %s\n", GitCommit)
}
