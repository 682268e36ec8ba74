package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"retreat-backoffice/internal/auth"
	"retreat-backoffice/internal/config"
	"retreat-backoffice/internal/crypto"
	"retreat-backoffice/internal/database"
	"retreat-backoffice/internal/event"
	"retreat-backoffice/internal/handler"
	"retreat-backoffice/internal/middleware"
	"retreat-backoffice/internal/model"
	"retreat-backoffice/internal/repository"
	"retreat-backoffice/internal/router"
	"retreat-backoffice/internal/service"
)

type App struct {
	server       *http.Server
	db           *database.DB
	cleanupFuncs []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	postRepo := repository.NewPostRepository(pool)
	programRepo := repository.NewProgramRepository(pool)
	testimonialRepo := repository.NewTestimonialRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)
	settingRepo := repository.NewSettingRepository(pool)
	slog.Info("database ready")

	if err := seedAdmin(context.Background(), cfg, userRepo); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	// The signing secret is process-wide and immutable after startup.
	codec := auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, codec)
	guard := middleware.NewAuthMiddleware(authService)

	bus := event.NewBus()
	notifier := event.NewNotifier(bus)
	notifierCtx, notifierCancel := context.WithCancel(context.Background())
	go notifier.Run(notifierCtx)

	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Post:        handler.NewPostHandler(service.NewPostService(postRepo)),
		Program:     handler.NewProgramHandler(service.NewProgramService(programRepo)),
		Testimonial: handler.NewTestimonialHandler(service.NewTestimonialService(testimonialRepo)),
		Reservation: handler.NewReservationHandler(service.NewReservationService(reservationRepo, programRepo, bus)),
		Message:     handler.NewMessageHandler(service.NewMessageService(messageRepo, bus)),
		Setting:     handler.NewSettingHandler(service.NewSettingService(settingRepo)),
		User:        handler.NewUserHandler(service.NewUserService(userRepo)),
	}

	appRouter := router.New(cfg, guard, handlers)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{
		server: server,
		db:     db,
		cleanupFuncs: []func(){
			func() {
				notifierCancel()
			},
			func() {
				db.Close()
			},
		},
	}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	slog.Info("server stopped")
	return nil
}

// seedAdmin creates the bootstrap admin when no user exists yet, so the
// back-office is reachable on first boot.
func seedAdmin(ctx context.Context, cfg *config.Config, users *repository.UserRepository) error {
	existing, err := users.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	hash, err := crypto.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := model.User{
		ID:           uuid.NewString(),
		Name:         cfg.SeedAdminName,
		Email:        cfg.SeedAdminEmail,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	slog.Info("seeded bootstrap admin", "email", admin.Email)
	return nil
}
