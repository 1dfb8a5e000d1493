package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/dynasty-league/external/imageproxy"
	"github.com/riskibarqy/dynasty-league/internal/config"
	"github.com/riskibarqy/dynasty-league/internal/infrastructure/account/session"
	"github.com/riskibarqy/dynasty-league/internal/interfaces/httpapi"
	"github.com/riskibarqy/dynasty-league/internal/platform/logging"
	"github.com/riskibarqy/dynasty-league/internal/usecase"
)

// App owns the HTTP server and the resources it must release on shutdown.
type App struct {
	Server *http.Server

	warmup  *usecase.WarmupService
	closers []func() error
	logger  *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{logger: logger}

	store, err := newSheetStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	repos := newRepositories(cfg, store)
	if cfg.CacheEnabled && cfg.CacheWarmupEnabled {
		a.warmup = usecase.NewWarmupService(repos.warmupTasks(), cfg.CacheWarmupWorkers, logger)
	}

	auditRepo, closeAudit, err := newAuditRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, closeAudit)

	signer, err := session.NewSigner(cfg.AuthSecret)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("build session signer: %w", err)
	}

	playerSvc := usecase.NewPlayerService(repos.players)
	leagueSvc := usecase.NewLeagueService(repos.league)
	weekSvc := usecase.NewWeekService(repos.league.WeekDates)
	selectionSvc := usecase.NewSelectionService(
		repos.selections,
		repos.players,
		auditRepo,
		repos.auditIDs,
		usecase.SelectionServiceConfig{CommissionerTeamID: cfg.CommissionerTeamID},
		logger,
	)
	authSvc := usecase.NewAuthService(repos.league.Teams, signer, usecase.AuthConfig{
		CommissionerTeamID: cfg.CommissionerTeamID,
		AccessTTL:          cfg.AuthAccessTTL,
		RefreshTTL:         cfg.AuthRefreshTTL,
		RememberTTL:        cfg.AuthRememberTTL,
	}, logger)
	healthSvc := usecase.NewHealthService(sheetsCredentials(cfg), repos.probe)

	images := imageproxy.NewClient(imageproxy.Config{
		Timeout:  cfg.ImageProxyTimeout,
		MaxBytes: cfg.ImageProxyMaxBytes,
	}, logger)

	handler := httpapi.NewHandler(httpapi.Services{
		League:    leagueSvc,
		Players:   playerSvc,
		Cap:       usecase.NewCapService(repos.players),
		Weeks:     weekSvc,
		Selection: selectionSvc,
		Lineup:    usecase.NewLineupService(repos.players, repos.league.Schedule),
		Board:     usecase.NewBoardService(playerSvc, leagueSvc, weekSvc, selectionSvc),
		Auth:      authSvc,
		Health:    healthSvc,
	}, images, httpapi.CookieConfig{
		Secure: cfg.AuthCookieSecure,
		Domain: cfg.AuthCookieDomain,
	}, logger)

	router := httpapi.NewRouter(handler, authSvc, logger, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}

// Warmup preloads the cached tabs. It is a no-op when caching or warmup is
// disabled.
func (a *App) Warmup(ctx context.Context) {
	if a.warmup == nil {
		return
	}
	result, err := a.warmup.Run(ctx)
	if err != nil {
		a.logger.WarnContext(ctx, "cache warmup failed", "error", err)
		return
	}
	a.logger.InfoContext(ctx, "cache warmup finished",
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)
}

// Close releases everything New opened, in reverse order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func sheetsCredentials(cfg config.Config) usecase.SheetsCredentials {
	hasID, hasEmail, hasKey := cfg.SheetsCredentialsPresent()
	return usecase.SheetsCredentials{
		Backend:        cfg.SheetsBackend,
		HasSheetsID:    hasID,
		HasClientEmail: hasEmail,
		HasPrivateKey:  hasKey,
		UsingBase64:    cfg.GooglePrivateKeyFromBase64,
	}
}
