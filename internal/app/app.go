package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/holytrinity/portal/internal/cache"
	"github.com/holytrinity/portal/internal/config"
	"github.com/holytrinity/portal/internal/discord"
	"github.com/holytrinity/portal/internal/domain"
	"github.com/holytrinity/portal/internal/httpserver"
	"github.com/holytrinity/portal/internal/httpserver/deps"
	"github.com/holytrinity/portal/internal/index"
	"github.com/holytrinity/portal/internal/logger"
	"github.com/holytrinity/portal/internal/minecraft"
	"github.com/holytrinity/portal/internal/redis"
	"github.com/holytrinity/portal/internal/scheduler"
	"github.com/holytrinity/portal/internal/store/memory"
	redisstore "github.com/holytrinity/portal/internal/store/redis"
	"github.com/holytrinity/portal/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	registry    *index.Registry
	reloader    *scheduler.CommunityReloader
	janitor     *scheduler.CacheJanitor
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Redis is optional: it only backs the long-lived profile cache.
	// When unset, profiles live in process memory instead.
	var redisClient *goredis.Client
	var profileCache domain.ProfileCache
	if cfg.RedisAddr != "" {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
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
		loggerClient.Info("Redis initialized successfully")
		redisClient = client
		profileCache = redisstore.NewStore(client)
	} else {
		loggerClient.Info("redis not configured, using in-memory profile cache")
		profileCache = memory.NewProfileStore(cfg.ProfileTTL, nil)
	}

	// Response cache shared by every feed handler
	responseCache := cache.New(nil)

	// Community registry, populated by the reloader
	registry := index.NewRegistry()

	// Create manual reload trigger channel
	reloadTrigger := make(chan struct{}, 1)

	reloader := scheduler.NewCommunityReloader(
		cfg.CommunityFile,
		registry,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	janitor := scheduler.NewCacheJanitor(
		responseCache,
		loggerClient,
		cfg.JanitorInterval,
		scheduler.DefaultJanitorThreshold,
	)

	// Upstream clients
	var discordClient *discord.Client
	if cfg.DiscordToken != "" {
		discordClient = discord.New(cfg.DiscordToken, cfg.UpstreamTimeout)
	} else {
		loggerClient.Warn("DISCORD_BOT_TOKEN not set, announcements and events feeds will report a configuration error")
	}
	minecraftClient := minecraft.NewClient(cfg.UpstreamTimeout)
	mojangClient := minecraft.NewMojangClient(cfg.UpstreamTimeout)

	resolver := domain.NewProfileResolver(mojangClient, profileCache, cfg.LookupDelay, loggerClient)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:           loggerClient,
		StartTime:        time.Now(),
		Version:          version.Version,
		Commit:           version.Commit,
		BuildDate:        version.BuildDate,
		GoVersion:        version.GoVersion,
		TimeNow:          time.Now,
		Cache:            responseCache,
		Registry:         registry,
		Discord:          discordClient,
		Minecraft:        minecraftClient,
		Resolver:         resolver,
		RedisClient:      redisClient,
		AnnouncementsTTL: cfg.AnnouncementsTTL,
		EventsTTL:        cfg.EventsTTL,
		GameTTL:          cfg.GameTTL,
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedHosts:     cfg.AllowedHosts,
		AllowedCIDRS:     cfg.AllowedCIDRS,
		TrustProxy:       cfg.TrustProxy,
		ReloadTrigger:    reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		registry:    registry,
		reloader:    reloader,
		janitor:     janitor,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Portal v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Portal %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start community reloader (loads communities and starts periodic refresh)
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start community reloader: %w", err)
	}
	a.logger.Info("community reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval),
		logger.Int("communities", a.registry.Count()))

	// Start cache janitor
	if err := a.janitor.Start(ctx); err != nil {
		return fmt.Errorf("failed to start cache janitor: %w", err)
	}
	a.logger.Info("cache janitor started",
		logger.Duration("interval", a.cfg.JanitorInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.reloader.Stop()
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
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Portal stopped cleanly")
	return nil
}
