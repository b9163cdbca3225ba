package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/leaguehub/leaguehub/internal/config"
	"github.com/leaguehub/leaguehub/internal/httpserver"
	"github.com/leaguehub/leaguehub/internal/httpserver/deps"
	"github.com/leaguehub/leaguehub/internal/index"
	"github.com/leaguehub/leaguehub/internal/logger"
	"github.com/leaguehub/leaguehub/internal/notify"
	"github.com/leaguehub/leaguehub/internal/redis"
	"github.com/leaguehub/leaguehub/internal/scheduler"
	"github.com/leaguehub/leaguehub/internal/sources/announcements"
	"github.com/leaguehub/leaguehub/internal/sources/content"
	redisstore "github.com/leaguehub/leaguehub/internal/store/redis"
	"github.com/leaguehub/leaguehub/internal/version"
)

type App struct {
	cfg          *config.Config
	logger       logger.Logger
	server       *httpserver.Server
	redisClient  *goredis.Client
	memIndex     *index.MemoryIndex
	reloader     *scheduler.ContentReloader
	newsReloader *scheduler.NewsReloader
	janitor      *scheduler.ArchiveJanitor
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	sources, err := config.LoadSources(cfg.SourcesFile)
	if err != nil {
		loggerClient.Errorf("Failed to load sources file: %v", err)
		os.Exit(1)
	}

	// Redis is optional. When configured it must answer, a half-working
	// archive is worse than none.
	var redisClient *goredis.Client
	var store *redisstore.Store
	if cfg.ArchiveEnabled() {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		redisClient, err = redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		store = redisstore.NewStore(redisClient)
		loggerClient.Info("Redis initialized successfully")
	} else {
		loggerClient.Info("Redis not configured, snapshot archive disabled")
	}

	memIndex := index.NewMemoryIndex()

	// Restore the archived snapshot so the first reload diffs against
	// the state served before the restart.
	if store != nil {
		syncer := scheduler.NewRedisSyncer(store, memIndex, loggerClient)
		if err := syncer.Sync(context.Background()); err != nil {
			loggerClient.Warn("failed to restore archive from redis, diffing starts fresh",
				logger.Error(err))
		}
	}

	reloadTrigger := make(chan struct{}, 1)

	loader := content.NewLoader(content.NewClient(cfg.FetchTimeout), content.Endpoints{
		CategoryIndex: sources.Links.Index,
		LinkItems:     sources.Links.Items,
		Events:        sources.Events,
		Updates:       sources.Updates,
	})

	reloader := scheduler.NewContentReloader(
		loader,
		store,
		memIndex,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	janitor := scheduler.NewArchiveJanitor(
		store,
		memIndex,
		loggerClient,
		cfg.JanitorInterval,
		cfg.ArchiveRetention,
	)

	var newsReloader *scheduler.NewsReloader
	var newsReloadTrigger chan struct{}
	if sources.News.Feed != "" {
		loggerClient.Info("news feed configured, initializing news reloader",
			logger.String("feed", sources.News.Feed))
		newsReloadTrigger = make(chan struct{}, 1)
		newsReloader = scheduler.NewNewsReloader(
			announcements.NewFetcher(sources.News.Feed, sources.News.Limit),
			memIndex,
			loggerClient,
			cfg.NewsInterval,
			newsReloadTrigger,
		)
	} else {
		loggerClient.Info("news feed not configured, news endpoint serves an empty list")
	}

	d := deps.Deps{
		Logger:              loggerClient,
		StartTime:           time.Now(),
		Version:             version.Version,
		Commit:              version.Commit,
		BuildDate:           version.BuildDate,
		GoVersion:           version.GoVersion,
		TimeNow:             time.Now,
		AllowedHosts:        cfg.AllowedHosts,
		AllowedCIDRS:        cfg.AllowedCIDRS,
		AllowedOrigins:      cfg.AllowedOrigins,
		TrustProxy:          cfg.TrustProxy,
		RedisClient:         redisClient,
		MemoryIndex:         memIndex,
		Notifier:            notify.NewLogNotifier(loggerClient),
		ReloadTrigger:       reloadTrigger,
		NewsReloadTrigger:   newsReloadTrigger,
		SuggestBurst:        cfg.SuggestBurst,
		SuggestRefillPerMin: cfg.SuggestRefillPerMin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:          cfg,
		logger:       loggerClient,
		server:       server,
		redisClient:  redisClient,
		memIndex:     memIndex,
		reloader:     reloader,
		newsReloader: newsReloader,
		janitor:      janitor,
	}
}

func (a *App) Run() error {
	a.logger.Infof("Starting leaguehub %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("leaguehub %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start content reloader (loads documents and starts periodic refresh)
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start content reloader: %w", err)
	}
	a.logger.Info("content reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	if a.newsReloader != nil {
		if err := a.newsReloader.Start(ctx); err != nil {
			return fmt.Errorf("failed to start news reloader: %w", err)
		}
		a.logger.Info("news reloader started",
			logger.Duration("interval", a.cfg.NewsInterval))
	}

	if err := a.janitor.Start(ctx); err != nil {
		return fmt.Errorf("failed to start archive janitor: %w", err)
	}
	a.logger.Info("archive janitor started",
		logger.Duration("interval", a.cfg.JanitorInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.reloader.Stop()
	if a.newsReloader != nil {
		a.newsReloader.Stop()
	}
	a.janitor.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("Redis closed cleanly")
		}
	}

	a.logger.Info("leaguehub stopped cleanly")
	return nil
}
