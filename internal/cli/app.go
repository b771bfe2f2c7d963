package cli

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"moviedash/internal/cache"
	"moviedash/internal/config"
	"moviedash/internal/domain"
	"moviedash/internal/logging"
	"moviedash/internal/repository"
	"moviedash/internal/repository/sqlite"
	"moviedash/internal/theme"
	"moviedash/internal/tmdb"
)

var ErrMissingCredentials = errors.New("no TMDB credentials: set api_key or api_token in ~/.moviedash/config.yaml, or MOVIEDASH_API_KEY")

// appContext holds what every command shares for one invocation
type appContext struct {
	cfg      *config.Config
	logger   *zap.Logger
	db       *sqlite.DB
	settings repository.SettingRepository
	source   *cache.Source
}

// loads config, opens the log and the settings database
func newAppContext(verbose bool) (*appContext, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(logging.Config{
		Path:    cfg.LogPath,
		Level:   cfg.LogLevel,
		Verbose: verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := sqlite.NewDB(sqlite.Config{Path: cfg.DBPath})
	if err != nil {
		logger.Sync()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &appContext{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		settings: sqlite.NewSettingRepository(db),
	}, nil
}

func (a *appContext) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close database", zap.Error(err))
		}
	}
	a.logger.Sync()
}

// builds the cached movie source on first use
func (a *appContext) movieSource() (*cache.Source, error) {
	if a.source != nil {
		return a.source, nil
	}
	if !a.cfg.HasCredentials() {
		return nil, ErrMissingCredentials
	}

	client := tmdb.NewClient(tmdb.Config{
		BaseURL: a.cfg.APIBaseURL,
		APIKey:  a.cfg.APIKey,
		Token:   a.cfg.APIToken,
		Timeout: a.cfg.RequestTimeout,
	}, a.logger)
	api := tmdb.NewBreakerClient(client, tmdb.DefaultBreakerSettings(), a.logger)

	a.source = cache.NewSource(api, a.cfg.CacheTTL, a.logger)
	return a.source, nil
}

// fetches movies and genres for one locale
func (a *appContext) loadSnapshot(ctx context.Context, locale domain.Locale) (cache.Snapshot, error) {
	src, err := a.movieSource()
	if err != nil {
		return cache.Snapshot{}, err
	}

	snap, err := src.Load(ctx, locale)
	if err != nil {
		return cache.Snapshot{}, fmt.Errorf("failed to load movies: %w", err)
	}
	return snap, nil
}

// stored setting or fallback when unset
func (a *appContext) setting(ctx context.Context, key, fallback string) string {
	value, err := a.settings.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrSettingNotFound) {
			a.logger.Warn("failed to read setting", zap.String("key", key), zap.Error(err))
		}
		return fallback
	}
	return value
}

func (a *appContext) themeName(ctx context.Context) string {
	return a.setting(ctx, domain.SettingTheme, theme.LightName)
}

// true once the first-run setup has stored a theme
func (a *appContext) hasTheme(ctx context.Context) bool {
	_, err := a.settings.Get(ctx, domain.SettingTheme)
	return err == nil
}

func (a *appContext) styles(ctx context.Context) *theme.Styles {
	return theme.NewStyles(theme.Resolve(a.themeName(ctx)))
}

// flag value wins, then the stored locale, then English
func (a *appContext) locale(ctx context.Context, override string) (domain.Locale, error) {
	if override != "" {
		return domain.ParseLocale(override)
	}

	stored := a.setting(ctx, domain.SettingLocale, "")
	if stored == "" {
		return domain.LocaleEnglish, nil
	}
	locale, err := domain.ParseLocale(stored)
	if err != nil {
		a.logger.Warn("ignoring invalid stored locale", zap.String("locale", stored))
		return domain.LocaleEnglish, nil
	}
	return locale, nil
}
