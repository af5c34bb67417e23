package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	_ "github.com/lib/pq"

	"weddinginvite/config"
	_ "weddinginvite/docs"
	"weddinginvite/internal/adapters/auth"
	"weddinginvite/internal/adapters/email"
	"weddinginvite/internal/adapters/geocode"
	httpdelivery "weddinginvite/internal/delivery/http"
	"weddinginvite/internal/delivery/http/controllers"
	"weddinginvite/internal/ratelimit"
	"weddinginvite/internal/repository/postgres"
	"weddinginvite/internal/services"
	"weddinginvite/internal/storage"
)

// @title Wedding Invitation API
// @version 1.0
// @description Backend for slug-addressed wedding invitation pages: invitation CRUD with owner secrets and edit tokens, guestbook and review entries, media serving, and the retention sweep.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// main wires dependencies and runs the HTTP server. Business logic lives in
// the internal services packages.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFrom,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKey,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	invitationRepo := postgres.NewInvitationRepository(db)
	guestbookRepo := postgres.NewGuestbookRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)

	media := storage.NewFileStore(cfg.MediaRoot)
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := auth.NewJWTManager(cfg.JWTSecret)
	geocoder := geocode.NewHTTPGeocoder(&http.Client{Timeout: 5 * time.Second}, cfg.GeocodeBaseURL)

	invitationSvc := services.NewInvitationService(
		invitationRepo,
		media,
		services.NewSlugAllocator(invitationRepo),
		hasher,
		tokens,
		tokens,
		geocoder,
		logger,
	)
	guestbookSvc := services.NewGuestbookService(guestbookRepo, invitationRepo, hasher)
	reviewSvc := services.NewReviewService(reviewRepo, hasher)
	retentionSvc := services.NewRetentionService(invitationRepo, media, mailer, cfg.ReportEmail, cfg.RetentionDays, logger)
	adminSvc := services.NewAdminService(cfg.AdminSecret, tokens)

	limiter := ratelimit.New(ratelimit.NewMemoryStore(), ratelimit.DefaultRules())

	router := httpdelivery.NewRouter(httpdelivery.RouterConfig{
		Logger:         logger,
		Invitations:    controllers.NewInvitationController(logger, invitationSvc),
		Guestbook:      controllers.NewGuestbookController(logger, guestbookSvc),
		Reviews:        controllers.NewReviewController(logger, reviewSvc),
		Admin:          controllers.NewAdminController(logger, adminSvc, retentionSvc),
		Limiter:        limiter,
		TokenVerifier:  tokens,
		CronKey:        cfg.CronKey,
		MediaRoot:      cfg.MediaRoot,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
