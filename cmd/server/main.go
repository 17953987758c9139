package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"venuehub/config"
	_ "venuehub/docs"
	"venuehub/internal/adapters/auth"
	"venuehub/internal/adapters/cache"
	"venuehub/internal/adapters/email"
	"venuehub/internal/adapters/queue"
	"venuehub/internal/adapters/storage"
	httpdelivery "venuehub/internal/delivery/http"
	"venuehub/internal/delivery/http/controllers"
	"venuehub/internal/delivery/http/middleware"
	"venuehub/internal/repository/postgres"
	"venuehub/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title venuehub API
// @version 1.0
// @description Venue booking and programming API: reservations, events, proposals, talents, and spaces.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := postgres.Open(cfg.DBUrl)
	if err != nil {
		logger.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	reservationRepo := postgres.NewReservationRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	proposalRepo := postgres.NewProposalRepository(db)
	talentRepo := postgres.NewTalentRepository(db)
	spaceRepo := postgres.NewSpaceRepository(db)

	issuer, verifier := auth.NewJWTCodec(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	publisher := queue.NewPublisher(cfg.AMQPUrl)

	posterStore, err := storage.NewDiskPosterStore(cfg.PosterDir)
	if err != nil {
		logger.Error("poster storage init failed", "err", err)
		os.Exit(1)
	}

	listCache := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.CacheTTL)
	if listCache == nil {
		logger.Info("redis not configured, list caching disabled")
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("mailer init failed", "err", err)
		os.Exit(1)
	}

	reservationSvc := services.NewReservationService(reservationRepo, spaceRepo, publisher, logger, serviceTimeout)
	eventSvc := services.NewEventService(eventRepo, spaceRepo, serviceTimeout)
	proposalSvc := services.NewProposalService(proposalRepo, spaceRepo, posterStore, publisher, logger, cfg.ProposalMinLeadTime, serviceTimeout)
	talentSvc := services.NewTalentService(talentRepo, hasher, issuer, cfg.TokenExpiry, serviceTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Decision emails are sent by a consumer fed from the queue, so a broker
	// or mail outage never blocks the decision endpoints.
	go queue.StartDecisionConsumer(ctx, cfg.AMQPUrl, mailer, logger)

	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Reservations: controllers.NewReservationController(logger, reservationSvc, listCache),
		Events:       controllers.NewEventController(logger, eventSvc),
		Proposals:    controllers.NewProposalController(logger, proposalSvc),
		Talents:      controllers.NewTalentController(logger, talentSvc),
		Spaces:       controllers.NewSpaceController(logger, spaceRepo),
		Auth:         controllers.NewAuthController(logger, talentSvc),
	}, verifier, logger)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
