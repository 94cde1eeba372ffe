package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9000
  read_timeout: 5
  cors_origins:
    - https://app.example
database:
  host: localhost
  port: 5433
  user: sorel
  password: secret
  dbname: sorel
  sslmode: require
  max_open_conns: 20
  conn_max_lifetime: 1h
solana:
  rpc_url: https://rpc.example
  signature_limit: 250
  request_timeout: 5s
auth:
  api_keys:
    - key-1
nats:
  url: nats://localhost:4222
llm:
  api_key: together-key
  risk_model: mistralai/Mixtral-8x7B-Instruct-v0.1
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9000, cfg.Server.Port)
				assert.Equal(t, 5, cfg.Server.ReadTimeout)
				assert.Equal(t, []string{"https://app.example"}, cfg.Server.CORSOrigins)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.MaxOpenConns)
				assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
				assert.Equal(t, "https://rpc.example", cfg.Solana.RPCURL)
				assert.Equal(t, 250, cfg.Solana.SignatureLimit)
				assert.Equal(t, 5*time.Second, cfg.Solana.RequestTimeout)
				assert.Equal(t, []string{"key-1"}, cfg.Auth.APIKeys)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "together-key", cfg.LLM.APIKey)
				assert.Equal(t, "mistralai/Mixtral-8x7B-Instruct-v0.1", cfg.LLM.RiskModel)
				assert.Equal(t, "meta-llama/Llama-3-70b-chat-hf", cfg.LLM.AnalysisModel)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  dbname: sorel
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "https://api.mainnet-beta.solana.com", cfg.Solana.RPCURL)
				assert.Equal(t, 100, cfg.Solana.SignatureLimit)
				assert.Equal(t, 15*time.Second, cfg.Solana.RequestTimeout)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
				assert.Empty(t, cfg.NATS.URL)
				assert.Empty(t, cfg.Auth.APIKeys)
				assert.Empty(t, cfg.LLM.APIKey)
				assert.Equal(t, "https://api.together.xyz/v1", cfg.LLM.BaseURL)
				assert.Equal(t, 1000, cfg.LLM.MaxTokens)
				assert.InDelta(t, 0.7, cfg.LLM.Temperature, 1e-9)
				assert.InDelta(t, 0.9, cfg.LLM.TopP, 1e-9)
				assert.Equal(t, time.Minute, cfg.LLM.RequestTimeout)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  dbname: sorel
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAPIConfig(writeConfig(t, tt.configFile), t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadAPIConfig_MissingFileNeedsEnvironment(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nonexistent.yaml")

	cfg, err := LoadAPIConfig(missing, t.TempDir())
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "database.host")
	assert.Contains(t, err.Error(), "database.dbname")
}

func TestLoadMonitorConfig(t *testing.T) {
	t.Run("defaults endpoints to the solana rpc url", func(t *testing.T) {
		cfg, err := LoadMonitorConfig(writeConfig(t, `
database:
  host: localhost
  dbname: sorel
solana:
  rpc_url: https://rpc.example
`), t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, []string{"https://rpc.example"}, cfg.Monitor.Endpoints)
		assert.Equal(t, 60*time.Second, cfg.Monitor.Interval)
		assert.Equal(t, 5, cfg.Monitor.RateLimitProbes)
		assert.Equal(t, 100*time.Millisecond, cfg.Monitor.RateLimitDelay)
		assert.Equal(t, 10, cfg.Monitor.UptimeLogEvery)
	})

	t.Run("explicit endpoints", func(t *testing.T) {
		cfg, err := LoadMonitorConfig(writeConfig(t, `
database:
  host: localhost
  dbname: sorel
monitor:
  interval: 30s
  worker_pool_size: 4
  endpoints:
    - https://a.example
    - https://b.example
`), t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Monitor.Endpoints)
		assert.Equal(t, 30*time.Second, cfg.Monitor.Interval)
		assert.Equal(t, 4, cfg.Monitor.WorkerPoolSize)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "sorel",
		Password: "p@ssw0rd!",
		DBName:   "sorel",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=sorel password=p@ssw0rd! dbname=sorel sslmode=disable", cfg.DSN())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	// t.Setenv restores the variables the .env file overwrites
	for _, key := range []string{
		"SOREL_DEBUG",
		"SOREL_DATABASE_HOST",
		"SOREL_DATABASE_PORT",
		"SOREL_DATABASE_DBNAME",
		"SOREL_SOLANA_RPC_URL",
		"SOREL_MONITOR_ENDPOINTS",
	} {
		t.Setenv(key, "")
	}

	envDir := t.TempDir()
	envContent := `SOREL_DEBUG=true
SOREL_DATABASE_HOST=env-host
SOREL_DATABASE_PORT=6543
SOREL_DATABASE_DBNAME=env-db
SOREL_SOLANA_RPC_URL=https://env-rpc.example
`
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte(envContent), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env.rpc-monitor.local"),
		[]byte("SOREL_MONITOR_ENDPOINTS=https://a.example,https://b.example\n"), 0600))

	configPath := writeConfig(t, `
debug: false
database:
  host: file-host
  port: 5432
  dbname: file-db
`)

	cfg, err := LoadMonitorConfig(configPath, envDir)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.Equal(t, "https://env-rpc.example", cfg.Solana.RPCURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Monitor.Endpoints)
}
