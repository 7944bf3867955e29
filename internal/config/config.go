package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".pwsync"
	envPrefix  = "PWSYNC"

	KeyServerURL         = "server.url"
	KeyServerTimeout     = "server.timeout"
	KeyRequestsPerSecond = "server.requests_per_second"
	KeyStoreBackend      = "store.backend"
	KeyStorePath         = "store.path"
	KeyStoreDir          = "store.dir"
	KeyPassPrefix        = "store.pass_prefix"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
)

type StoreBackend string

const (
	BackendTOML  StoreBackend = "toml"
	BackendFile  StoreBackend = "file"
	BackendPass  StoreBackend = "pass"
	BackendChain StoreBackend = "chain"
)

func (b StoreBackend) Valid() bool {
	switch b {
	case BackendTOML, BackendFile, BackendPass, BackendChain:
		return true
	default:
		return false
	}
}

type Config struct {
	ServerURL         string
	Timeout           time.Duration
	RequestsPerSecond float64
	StoreBackend      StoreBackend
	StorePath         string
	StoreDir          string
	PassPrefix        string
	LogLevel          string
	LogFormat         string
}

// Load reads ~/.pwsync/config.toml when present and applies PWSYNC_* env
// overrides on top of the defaults. The viper instance is left configured so
// adapters can read their own keys from it.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(baseDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyServerURL, "http://localhost:5000")
	v.SetDefault(KeyServerTimeout, 10*time.Second)
	v.SetDefault(KeyRequestsPerSecond, 0)
	v.SetDefault(KeyStoreBackend, string(BackendTOML))
	v.SetDefault(KeyStorePath, filepath.Join(baseDir, "session.toml"))
	v.SetDefault(KeyStoreDir, filepath.Join(baseDir, "secrets"))
	v.SetDefault(KeyPassPrefix, "pwsync")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		ServerURL:         strings.TrimRight(v.GetString(KeyServerURL), "/"),
		Timeout:           v.GetDuration(KeyServerTimeout),
		RequestsPerSecond: v.GetFloat64(KeyRequestsPerSecond),
		StoreBackend:      StoreBackend(strings.ToLower(v.GetString(KeyStoreBackend))),
		StorePath:         v.GetString(KeyStorePath),
		StoreDir:          v.GetString(KeyStoreDir),
		PassPrefix:        v.GetString(KeyPassPrefix),
		LogLevel:          v.GetString(KeyLogLevel),
		LogFormat:         v.GetString(KeyLogFormat),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	parsed, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("parse %s: %w", KeyServerURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must use http or https", KeyServerURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s host is required", KeyServerURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%s must not be negative", KeyServerTimeout)
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("%s must not be negative", KeyRequestsPerSecond)
	}
	if !c.StoreBackend.Valid() {
		return fmt.Errorf("unsupported %s %q", KeyStoreBackend, c.StoreBackend)
	}

	return nil
}
