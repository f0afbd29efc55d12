// Package bootstrap wires configuration, logging, and the catalog
// pipeline for the binaries.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	shared "fitcatalog/pkg"
	"fitcatalog/pkg/browser"
	"fitcatalog/pkg/cache"
	"fitcatalog/pkg/connectivity"
	"fitcatalog/pkg/source"

	// Registered source backends.
	_ "fitcatalog/pkg/infrastructure/database"
	_ "fitcatalog/pkg/infrastructure/rest"
)

// Config holds standard configuration for all binaries.
type Config struct {
	// Source selects the remote backend by registry ID ("firestore",
	// "rest", "none").
	Source     string
	ProjectID  string
	Collection string
	Endpoint   string
	APIKey     string

	CacheDir  string
	CacheTTL  time.Duration
	SeedStale bool

	ProbeAddr     string
	ProbeInterval time.Duration

	ListenAddr string
}

// DefaultConfig returns the documented defaults: no remote backend,
// 24h cache TTL, stale seed enabled.
func DefaultConfig() *Config {
	return &Config{
		Source:        "none",
		Collection:    "exercises",
		CacheTTL:      cache.DefaultTTL,
		SeedStale:     true,
		ProbeAddr:     connectivity.DefaultProbeAddr,
		ProbeInterval: connectivity.DefaultInterval,
		ListenAddr:    ":8080",
	}
}

// fileConfig is the YAML shape. Durations are strings ("24h", "15s").
type fileConfig struct {
	Source        string `yaml:"source"`
	ProjectID     string `yaml:"project_id"`
	Collection    string `yaml:"collection"`
	Endpoint      string `yaml:"endpoint"`
	APIKey        string `yaml:"api_key"`
	CacheDir      string `yaml:"cache_dir"`
	CacheTTL      string `yaml:"cache_ttl"`
	SeedStale     *bool  `yaml:"seed_stale"`
	ProbeAddr     string `yaml:"probe_addr"`
	ProbeInterval string `yaml:"probe_interval"`
	ListenAddr    string `yaml:"listen_addr"`
}

// LoadConfig layers configuration: defaults, then an optional YAML file
// (FITCAT_CONFIG or ./fitcat.yaml), then environment variables. A .env
// file in the working directory is loaded into the environment first.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	applyFile(cfg, configPath())
	applyEnv(cfg)
	return cfg
}

func configPath() string {
	if p := os.Getenv("FITCAT_CONFIG"); p != "" {
		return p
	}
	return "fitcat.yaml"
}

func applyFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		slog.Warn("Ignoring unparseable config file", "path", path, "error", err)
		return
	}

	setString(&cfg.Source, fc.Source)
	setString(&cfg.ProjectID, fc.ProjectID)
	setString(&cfg.Collection, fc.Collection)
	setString(&cfg.Endpoint, fc.Endpoint)
	setString(&cfg.APIKey, fc.APIKey)
	setString(&cfg.CacheDir, fc.CacheDir)
	setDuration(&cfg.CacheTTL, fc.CacheTTL)
	setString(&cfg.ProbeAddr, fc.ProbeAddr)
	setDuration(&cfg.ProbeInterval, fc.ProbeInterval)
	setString(&cfg.ListenAddr, fc.ListenAddr)
	if fc.SeedStale != nil {
		cfg.SeedStale = *fc.SeedStale
	}
}

func applyEnv(cfg *Config) {
	setString(&cfg.Source, os.Getenv("FITCAT_SOURCE"))
	setString(&cfg.ProjectID, os.Getenv("GOOGLE_CLOUD_PROJECT"))
	setString(&cfg.Collection, os.Getenv("FITCAT_COLLECTION"))
	setString(&cfg.Endpoint, os.Getenv("FITCAT_ENDPOINT"))
	setString(&cfg.APIKey, os.Getenv("FITCAT_API_KEY"))
	setString(&cfg.CacheDir, os.Getenv("FITCAT_CACHE_DIR"))
	setDuration(&cfg.CacheTTL, os.Getenv("FITCAT_CACHE_TTL"))
	setString(&cfg.ProbeAddr, os.Getenv("FITCAT_PROBE_ADDR"))
	setDuration(&cfg.ProbeInterval, os.Getenv("FITCAT_PROBE_INTERVAL"))
	setString(&cfg.ListenAddr, os.Getenv("FITCAT_LISTEN_ADDR"))
	if v := os.Getenv("FITCAT_SEED_STALE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SeedStale = b
		}
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v string) {
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("Ignoring invalid duration", "value", v)
		return
	}
	*dst = d
}

// GetSlogHandlerOptions returns standard handler options.
func GetSlogHandlerOptions(level slog.Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.MessageKey {
				return slog.Attr{Key: "message", Value: a.Value}
			}
			if a.Key == slog.LevelKey {
				return slog.Attr{Key: "severity", Value: a.Value}
			}
			return a
		},
	}
}

// ComponentHandler wraps a slog.Handler to prepend [component] to the message
type ComponentHandler struct {
	slog.Handler
}

// Handle implements slog.Handler
func (h *ComponentHandler) Handle(ctx context.Context, r slog.Record) error {
	var component string

	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "component" {
			component = a.Value.String()
			return false // stop
		}
		return true
	})

	if component != "" {
		newMsg := fmt.Sprintf("[%s] %s", component, r.Message)
		newRecord := slog.NewRecord(r.Time, r.Level, newMsg, r.PC)

		r.Attrs(func(a slog.Attr) bool {
			if a.Key != "component" {
				newRecord.AddAttrs(a)
			}
			return true
		})
		r = newRecord
	}

	return h.Handler.Handle(ctx, r)
}

// InitLogger configures structured JSON logging on the default logger.
func InitLogger() {
	opts := GetSlogHandlerOptions(logLevel())
	handler := slog.NewJSONHandler(os.Stderr, opts)
	logger := slog.New(&ComponentHandler{Handler: handler})
	slog.SetDefault(logger)
}

// NewLogger creates a configured logger instance tagged with a service
// name.
func NewLogger(serviceName string) *slog.Logger {
	opts := GetSlogHandlerOptions(logLevel())
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(&ComponentHandler{Handler: handler}).With("service", serviceName)
}

func logLevel() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Service holds the initialized catalog pipeline.
type Service struct {
	Source  shared.RemoteSource
	Store   shared.SnapshotStore
	Net     shared.Connectivity
	Browser *browser.Browser
	Config  *Config

	monitor *connectivity.Monitor
}

// ServiceOptions tune pipeline construction per binary.
type ServiceOptions struct {
	// Monitor enables the background connectivity monitor. One-shot
	// commands leave it off and probe once instead.
	Monitor bool
}

// NewService initializes the full pipeline: config, remote source,
// snapshot store, connectivity, and a seeded browser. The browser is
// not started; callers decide when background refresh begins.
func NewService(ctx context.Context, opts ServiceOptions) (*Service, error) {
	InitLogger()
	cfg := LoadConfig()

	slog.Info("Initializing catalog pipeline", "source", cfg.Source)

	src, err := source.New(ctx, cfg.Source, source.Config{
		ProjectID:  cfg.ProjectID,
		Collection: cfg.Collection,
		Endpoint:   cfg.Endpoint,
		APIKey:     cfg.APIKey,
	})
	if err != nil {
		slog.Error("Source init failed", "source", cfg.Source, "error", err)
		return nil, fmt.Errorf("source init: %w", err)
	}

	dir := cfg.CacheDir
	if dir == "" {
		dir = cache.DefaultDir()
	}
	store := cache.NewFileStore(dir)

	svc := &Service{
		Source: src,
		Store:  store,
		Config: cfg,
	}

	probe := connectivity.TCPProbe(cfg.ProbeAddr, 2*time.Second)
	if opts.Monitor {
		svc.monitor = connectivity.NewMonitor(probe, cfg.ProbeInterval)
		svc.monitor.Start(ctx)
		svc.Net = svc.monitor
	} else {
		svc.Net = connectivity.Static(probe(ctx))
	}

	svc.Browser = browser.New(src, store, svc.Net, browser.Options{
		TTL:       cfg.CacheTTL,
		SeedStale: cfg.SeedStale,
	})
	return svc, nil
}

// Close tears the pipeline down in reverse order.
func (s *Service) Close() {
	if s.Browser != nil {
		s.Browser.Close()
	}
	if s.monitor != nil {
		s.monitor.Stop()
	}
	if c, ok := s.Source.(io.Closer); ok {
		c.Close()
	}
}
