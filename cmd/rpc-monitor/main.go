package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sorel-labs/sorel/internal/adapter"
	"github.com/sorel-labs/sorel/internal/config"
	"github.com/sorel-labs/sorel/internal/logger"
	"github.com/sorel-labs/sorel/internal/monitor"
	"github.com/sorel-labs/sorel/internal/providers/solana"
	"github.com/sorel-labs/sorel/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	once       = flag.Bool("once", false, "Run a single check pass with rate limit probes, print the report and exit")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadMonitorConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		Service:         "sorel-rpc-monitor",
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting RPC health monitor")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}

	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()

	// Health probes must observe the endpoint as it is, so rate limited calls are not retried
	retry := solana.RetryConfig{}
	dialer := adapter.NewRPCDialer(cfg.Solana.RequestTimeout)

	clients := make([]solana.Client, 0, len(cfg.Monitor.Endpoints))
	for _, endpoint := range cfg.Monitor.Endpoints {
		c, err := solana.Dial(ctx, dialer, endpoint, cfg.Solana.RequestTimeout, retry)
		if err != nil {
			logger.Fatal("Failed to dial RPC endpoint", zap.Error(err), zap.String("url", endpoint))
		}
		clients = append(clients, c)
	}
	defer func() {
		for _, c := range clients {
			c.Close()
		}
	}()

	checker := monitor.NewChecker(monitor.CheckerConfig{
		RateLimitProbes: cfg.Monitor.RateLimitProbes,
		RateLimitDelay:  cfg.Monitor.RateLimitDelay,
	}, clock)

	healthMonitor := monitor.NewRPCHealthMonitor(monitor.RPCHealthMonitorConfig{
		Interval:       cfg.Monitor.Interval,
		WorkerPoolSize: cfg.Monitor.WorkerPoolSize,
		UptimeLogEvery: cfg.Monitor.UptimeLogEvery,
	}, dataStore, checker, clients, clock)

	logger.InfoCtx(ctx, "Initialized RPC health monitor",
		zap.Strings("endpoints", cfg.Monitor.Endpoints),
		zap.Duration("interval", cfg.Monitor.Interval),
		zap.Bool("once", *once),
	)

	if *once {
		report, err := healthMonitor.RunOnce(ctx)
		if err != nil {
			logger.Fatal("Health check pass failed", zap.Error(err))
		}
		out, err := adapter.NewJSON().MarshalIndent(report, "", "  ")
		if err != nil {
			logger.Fatal("Failed to encode report", zap.Error(err))
		}
		fmt.Println(string(out))
		return
	}

	errChan := make(chan error, 1)
	go func() {
		if err := healthMonitor.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := healthMonitor.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.Info("RPC health monitor stopped")
}
