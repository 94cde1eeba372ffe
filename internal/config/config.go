package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const ENV_PREFIX = "SOREL"

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m", "30m"
}

// SolanaConfig holds Solana RPC configuration
type SolanaConfig struct {
	RPCURL         string        `mapstructure:"rpc_url"`
	SignatureLimit int           `mapstructure:"signature_limit"` // Signatures fetched per analysis
	RequestTimeout time.Duration `mapstructure:"request_timeout"` // Bound on each RPC call, retries included
	RetryMaxWait   time.Duration `mapstructure:"retry_max_wait"`  // Give up retrying rate limited calls after this long
}

// NATSConfig holds NATS JetStream configuration. Publishing is disabled when URL is empty.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// LLMConfig holds the chat completion service behind the /api/ai routes.
// The routes answer 503 when APIKey is empty.
type LLMConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	APIKey         string        `mapstructure:"api_key"`
	AnalysisModel  string        `mapstructure:"analysis_model"`
	RiskModel      string        `mapstructure:"risk_model"`
	MaxTokens      int           `mapstructure:"max_tokens"`
	Temperature    float64       `mapstructure:"temperature"`
	TopP           float64       `mapstructure:"top_p"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string   `mapstructure:"host"`
	Port         int      `mapstructure:"port"`
	ReadTimeout  int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int      `mapstructure:"idle_timeout"`  // in seconds
	CORSOrigins  []string `mapstructure:"cors_origins"`
}

// AuthConfig holds authentication configuration for the monitor routes
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// MonitorSettings holds the RPC health monitor settings
type MonitorSettings struct {
	Interval        time.Duration `mapstructure:"interval"`
	Endpoints       []string      `mapstructure:"endpoints"` // Defaults to solana.rpc_url
	WorkerPoolSize  int           `mapstructure:"worker_pool_size"`
	RateLimitProbes int           `mapstructure:"rate_limit_probes"`
	RateLimitDelay  time.Duration `mapstructure:"rate_limit_delay"`
	UptimeLogEvery  int           `mapstructure:"uptime_log_every"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Solana     SolanaConfig   `mapstructure:"solana"`
	Auth       AuthConfig     `mapstructure:"auth"`
	NATS       NATSConfig     `mapstructure:"nats"`
	LLM        LLMConfig      `mapstructure:"llm"`
}

// MonitorConfig holds configuration for the RPC health monitor
type MonitorConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Solana     SolanaConfig    `mapstructure:"solana"`
	Monitor    MonitorSettings `mapstructure:"monitor"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	setCommonDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "sorel-api")
	v.SetDefault("llm.base_url", "https://api.together.xyz/v1")
	v.SetDefault("llm.analysis_model", "meta-llama/Llama-3-70b-chat-hf")
	v.SetDefault("llm.risk_model", "meta-llama/Llama-3-8b-chat-hf")
	v.SetDefault("llm.max_tokens", 1000)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.top_p", 0.9)
	v.SetDefault("llm.request_timeout", "60s")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Database.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadMonitorConfig loads configuration for the RPC health monitor
func LoadMonitorConfig(configFile string, envPath string) (*MonitorConfig, error) {
	v := configureViper("rpc-monitor", configFile, envPath)

	setCommonDefaults(v)
	v.SetDefault("monitor.interval", "60s")
	v.SetDefault("monitor.rate_limit_probes", 5)
	v.SetDefault("monitor.rate_limit_delay", "100ms")
	v.SetDefault("monitor.uptime_log_every", 10)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config MonitorConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Database.Validate(); err != nil {
		return nil, err
	}

	if len(config.Monitor.Endpoints) == 0 {
		config.Monitor.Endpoints = []string{config.Solana.RPCURL}
	}

	return &config, nil
}

func setCommonDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("solana.rpc_url", "https://api.mainnet-beta.solana.com")
	v.SetDefault("solana.signature_limit", 100)
	v.SetDefault("solana.request_timeout", "15s")
	v.SetDefault("solana.retry_max_wait", "10s")
}

// readConfig reads the config file, falling back to environment variables when there is none
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Solana
		"solana.rpc_url",
		"solana.signature_limit",
		"solana.request_timeout",
		"solana.retry_max_wait",
		// NATS
		"nats.url",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// LLM
		"llm.base_url",
		"llm.api_key",
		"llm.analysis_model",
		"llm.risk_model",
		"llm.max_tokens",
		"llm.temperature",
		"llm.top_p",
		"llm.request_timeout",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Monitor
		"monitor.interval",
		"monitor.endpoints",
		"monitor.worker_pool_size",
		"monitor.rate_limit_probes",
		"monitor.rate_limit_delay",
		"monitor.uptime_log_every",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// Validate checks the settings needed to open a connection are present
func (c *DatabaseConfig) Validate() error {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "database.host")
	}
	if c.DBName == "" {
		missing = append(missing, "database.dbname")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	return nil
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
