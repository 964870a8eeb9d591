package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"go-query-cache/internal/cache"
	"go-query-cache/internal/cache/l1"
	"go-query-cache/internal/cache/l2"
	"go-query-cache/internal/cache/multi"
	"go-query-cache/internal/cache/noop"
	"go-query-cache/internal/cache/query"
	"go-query-cache/internal/cache/service"
	"go-query-cache/internal/cache_rules"
	"go-query-cache/internal/config"
	"go-query-cache/internal/drafts"
	"go-query-cache/internal/httpserver"
	"go-query-cache/internal/interfaces"
	"go-query-cache/internal/listview"
	"go-query-cache/internal/mockapi"
	"go-query-cache/internal/models"
)

// CompositionRoot holds all application dependencies and wires them in one place
type CompositionRoot struct {
	// Configuration
	Config     *config.Config
	Logger     *zap.Logger
	QueryRules interfaces.QueryRules

	// Draft tiers
	L1Cache    interfaces.Cache
	L2Cache    interfaces.Cache
	DraftCache interfaces.LevelAwareCache

	// Services
	API          *mockapi.API
	QueryClient  *query.Client[[]mockapi.DataItem]
	QueryService *service.QueryService
	DraftStore   *drafts.Store

	HTTPServer    *httpserver.Server
	MetricsServer *httpserver.MetricsServer
}

// NewCompositionRoot creates and initializes all application dependencies.
//
// Initialization order:
// 1. Logger (needed by all other components)
// 2. Configuration (also reconfigures the logger)
// 3. Query rules (per-query lifecycle policy)
// 4. Draft tiers (L1, L2, multi)
// 5. Services (mock API, query client, drafts)
// 6. HTTP servers
func NewCompositionRoot() (*CompositionRoot, error) {
	root := &CompositionRoot{}

	if err := root.initLogger(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := root.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := root.loadQueryRules(); err != nil {
		return nil, fmt.Errorf("failed to load query rules: %w", err)
	}

	if err := root.initCacheComponents(); err != nil {
		return nil, fmt.Errorf("failed to initialize cache components: %w", err)
	}

	if err := root.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	root.initHTTPServers()

	return root, nil
}

// initLogger initializes the bootstrap logger
func (r *CompositionRoot) initLogger() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	r.Logger = logger
	return nil
}

// buildLogger replaces the bootstrap logger with one matching the log section
func (r *CompositionRoot) buildLogger(cfg config.LogConfig) error {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level

	logger, err := zapCfg.Build()
	if err != nil {
		return err
	}
	_ = r.Logger.Sync()
	r.Logger = logger
	return nil
}

// loadConfig loads the application configuration. A missing file falls back to defaults.
func (r *CompositionRoot) loadConfig() error {
	configPath := envOrDefault("QUERY_CACHE_CONFIG_FILE", "/app/query_cache.yaml")

	cfg, err := config.LoadConfig(configPath, r.Logger)
	switch {
	case errors.Is(err, os.ErrNotExist):
		r.Logger.Warn("Config file not found, using defaults", zap.String("path", configPath))
		cfg = config.Default()
	case err != nil:
		return err
	}

	r.Config = cfg
	return r.buildLogger(cfg.Log)
}

// loadQueryRules loads per-query policies. Without a rules file every query uses the client defaults.
func (r *CompositionRoot) loadQueryRules() error {
	rulesPath := envOrDefault("QUERY_RULES_FILE", "/app/query_rules.yaml")

	if _, err := os.Stat(rulesPath); errors.Is(err, os.ErrNotExist) {
		r.Logger.Warn("Query rules file not found, using client defaults", zap.String("path", rulesPath))
		r.QueryRules = cache_rules.NewClassifier(r.Logger, nil)
		return nil
	}

	rules, err := cache_rules.LoadQueryRules(rulesPath, r.Logger)
	if err != nil {
		return err
	}

	r.QueryRules = cache_rules.NewClassifier(r.Logger, rules)
	return nil
}

// initCacheComponents initializes the draft storage tiers
func (r *CompositionRoot) initCacheComponents() error {
	if err := r.initL1Cache(); err != nil {
		return fmt.Errorf("failed to initialize L1 cache: %w", err)
	}

	r.initL2Cache()

	tiers := make([]multi.Tier, 0, len(r.Config.MultiCache.Levels))
	for _, level := range r.Config.MultiCache.Levels {
		switch level {
		case models.CacheLevelL1:
			tiers = append(tiers, multi.Tier{Level: level, Cache: r.L1Cache})
		case models.CacheLevelL2:
			tiers = append(tiers, multi.Tier{Level: level, Cache: r.L2Cache})
		default:
			return fmt.Errorf("unknown cache level %q", level)
		}
	}

	r.DraftCache = multi.NewMultiCache(tiers, r.Config.MultiCache.EnablePropagation, r.Logger)
	if !r.Config.L1.Enabled && !r.Config.L2.Enabled {
		r.Logger.Warn("All draft tiers disabled, drafts will not persist")
	}
	return nil
}

// initL1Cache initializes the L1 cache (BigCache)
func (r *CompositionRoot) initL1Cache() error {
	if r.Config.L1.Enabled {
		l1Cache, err := l1.NewBigCache(r.Config.L1.Size, r.Config.Drafts.TTL, r.Logger)
		if err != nil {
			return err
		}
		r.L1Cache = l1Cache
		r.Logger.Info("BigCache (L1) initialized", zap.Int("size_mb", r.Config.L1.Size))
	} else {
		r.L1Cache = noop.NewNoOpCache()
		r.Logger.Info("BigCache (L1) disabled")
	}
	return nil
}

// initL2Cache initializes the L2 cache (KeyDB). Connection failures degrade to no L2.
func (r *CompositionRoot) initL2Cache() {
	if !r.Config.L2.Enabled {
		r.L2Cache = noop.NewNoOpCache()
		r.Logger.Info("KeyDB (L2) disabled")
		return
	}

	keydbURL := GetKeyDBURL(r.Logger)
	keydbClient, err := l2.NewRedisKeyDbClient(r.Config, keydbURL, r.Logger)
	if err != nil {
		r.Logger.Warn("Failed to connect to KeyDB, falling back to no L2 cache",
			zap.String("keydb_url", keydbURL),
			zap.Error(err))
		r.L2Cache = noop.NewNoOpCache()
		return
	}

	r.L2Cache = l2.NewKeyDBCache(r.Config, keydbClient, r.Logger)
	r.Logger.Info("KeyDB (L2) initialized", zap.String("keydb_url", keydbURL))
}

// initServices initializes application services
func (r *CompositionRoot) initServices() error {
	r.API = mockapi.New(r.Config.MockAPI, r.Logger)

	r.QueryClient = query.NewClient[[]mockapi.DataItem](r.Logger,
		query.WithSweepInterval(r.Config.Query.SweepInterval),
		query.WithMetrics(NewPrometheusMetrics("items")),
	)

	qs, err := service.NewQueryService(r.QueryClient, r.API, r.QueryRules, cache.NewKeyBuilder(), r.Logger)
	if err != nil {
		return err
	}
	r.QueryService = qs

	r.DraftStore = drafts.NewStore(r.DraftCache, r.Config.Drafts.TTL, r.Config.Drafts.KeyPrefix, r.Logger)
	return nil
}

// initHTTPServers initializes the API and metrics servers
func (r *CompositionRoot) initHTTPServers() {
	lv := r.Config.ListView
	list := httpserver.ListView{
		Virtualizer: listview.FixedVirtualizer{Count: lv.ItemCount, ItemSize: lv.ItemSize, Overscan: lv.Overscan},
		Rows:        listview.RowSource{Base: time.Now()},
		Board:       listview.NewBoard(listview.DefaultBoardItems(lv.BoardSize)),
	}

	r.HTTPServer = httpserver.NewServer(r.QueryService, r.API, r.DraftStore, list, r.Logger)
	r.MetricsServer = httpserver.NewMetricsServer(r.Config.Server.MetricsAddr, r.Logger)
}

// ListenAddr returns the API listen address
func (r *CompositionRoot) ListenAddr() string {
	return GetListenAddr(r.Config.Server.ListenAddr)
}

// Cleanup performs cleanup of all resources
func (r *CompositionRoot) Cleanup() error {
	var errs []error

	if r.QueryClient != nil {
		if err := r.QueryClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close query client: %w", err))
		}
	}

	if l1BigCache, ok := r.L1Cache.(*l1.BigCache); ok {
		if err := l1BigCache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close L1 cache: %w", err))
		}
	}

	if l2KeyDBCache, ok := r.L2Cache.(*l2.KeyDBCache); ok {
		if err := l2KeyDBCache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close L2 cache: %w", err))
		}
	}

	// Sync logger last so the close errors above are flushed
	if r.Logger != nil {
		_ = r.Logger.Sync()
	}

	return errors.Join(errs...)
}
