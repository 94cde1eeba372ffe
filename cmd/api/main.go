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
	"github.com/sorel-labs/sorel/internal/analyzer"
	"github.com/sorel-labs/sorel/internal/api/middleware"
	"github.com/sorel-labs/sorel/internal/api/server"
	"github.com/sorel-labs/sorel/internal/api/shared/executor"
	"github.com/sorel-labs/sorel/internal/config"
	"github.com/sorel-labs/sorel/internal/logger"
	"github.com/sorel-labs/sorel/internal/messaging"
	"github.com/sorel-labs/sorel/internal/providers/jetstream"
	"github.com/sorel-labs/sorel/internal/providers/llm"
	"github.com/sorel-labs/sorel/internal/providers/solana"
	"github.com/sorel-labs/sorel/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		Service:         "sorel-api",
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting SoReL API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()

	// Connect to the Solana node
	retry := solana.DefaultRetryConfig()
	if cfg.Solana.RetryMaxWait > 0 {
		retry.MaxElapsedTime = cfg.Solana.RetryMaxWait
	}
	solanaClient, err := solana.Dial(ctx, adapter.NewRPCDialer(cfg.Solana.RequestTimeout), cfg.Solana.RPCURL, cfg.Solana.RequestTimeout, retry)
	if err != nil {
		logger.Fatal("Failed to connect to Solana RPC", zap.Error(err), zap.String("url", cfg.Solana.RPCURL))
	}
	defer solanaClient.Close()
	logger.InfoCtx(ctx, "Connected to Solana RPC", zap.String("url", cfg.Solana.RPCURL))

	extractor := analyzer.NewExtractor(solanaClient, clock, cfg.Solana.SignatureLimit)

	// Analysis events are optional, without NATS they are dropped
	publisher := messaging.NewNoopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), adapter.NewJSON())
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		logger.WarnCtx(ctx, "NATS url not configured, analysis events will not be published")
	}
	defer publisher.Close()

	// The /api/ai routes answer 503 without an API key
	var llmClient llm.Client
	if cfg.LLM.APIKey != "" {
		llmClient = llm.NewClient(llm.Config{
			BaseURL:       cfg.LLM.BaseURL,
			APIKey:        cfg.LLM.APIKey,
			AnalysisModel: cfg.LLM.AnalysisModel,
			RiskModel:     cfg.LLM.RiskModel,
			MaxTokens:     cfg.LLM.MaxTokens,
			Temperature:   cfg.LLM.Temperature,
			TopP:          cfg.LLM.TopP,
		}, adapter.NewHTTPClient(cfg.LLM.RequestTimeout, adapter.DefaultHTTPRetryConfig()), adapter.NewJSON())
		logger.InfoCtx(ctx, "AI insights enabled",
			zap.String("base_url", cfg.LLM.BaseURL),
			zap.String("analysis_model", cfg.LLM.AnalysisModel),
			zap.String("risk_model", cfg.LLM.RiskModel))
	} else {
		logger.WarnCtx(ctx, "LLM api key not configured, AI insight routes are disabled")
	}

	exec := executor.NewExecutor(dataStore, extractor, publisher, llmClient, adapter.NewJSON(), clock)

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSOrigins:  cfg.Server.CORSOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, exec)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// ctx is canceled at this point
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.Info("Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
