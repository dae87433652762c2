package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	authAPI "futuremail/internal/app/server/api/http/auth"
	capsuleAPI "futuremail/internal/app/server/api/http/capsule"
	commentAPI "futuremail/internal/app/server/api/http/comment"
	healthAPI "futuremail/internal/app/server/api/http/health"
	mediaAPI "futuremail/internal/app/server/api/http/media"
	"futuremail/internal/app/server/api/http/middleware"
	"futuremail/internal/app/server/api/http/middleware/auth"
	"futuremail/internal/app/server/api/http/middleware/logger"
	"futuremail/internal/app/server/config"
	"futuremail/internal/domain/capsule"
	"futuremail/internal/domain/comment"
	"futuremail/internal/domain/media"
	"futuremail/internal/domain/session"
	"futuremail/internal/domain/user"
	"futuremail/internal/infrastructure/oauth"
	"futuremail/internal/infrastructure/storage/postgres"
	"futuremail/internal/infrastructure/storage/s3"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Auth    *authAPI.Handler
	Capsule *capsuleAPI.Handler
	Comment *commentAPI.Handler
	Media   *mediaAPI.Handler
}

// New builds the *chi.Mux with every operation registered through
// huma.Register.
func New(ctx context.Context, cfg *config.Config, storage *postgres.Storage, log *slog.Logger) (*chi.Mux, error) {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("FutureMail API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"session": {Type: "apiKey", In: "cookie", Name: auth.SessionCookie},
	}

	API := humachi.New(mux, humaConfig)

	h, err := handlers(ctx, cfg, storage, log)
	if err != nil {
		return nil, err
	}
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.Capsule.SetupRoutes(API)
	h.Comment.SetupRoutes(API)
	h.Media.SetupRoutes(API)

	mux.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Time Capsule API"))
	})

	return mux, nil
}

func handlers(ctx context.Context, cfg *config.Config, storage *postgres.Storage, log *slog.Logger) (*Handlers, error) {
	sessionRepo := postgres.NewSessionRepository(storage.Pool(), log)
	sessionService := session.NewService(sessionRepo, cfg.Server.SessionTTL, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	userService := user.NewService(userRepo, log)
	google := oauth.NewGoogle(cfg.OAuth.GoogleClientID, cfg.OAuth.GoogleClientSecret,
		cfg.OAuth.CallbackURL, log)
	middlewares.Add(loggerMW.Middleware())
	public := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	authHandler := authAPI.NewHandler(google, userService, sessionService,
		cfg.Server.SessionTTL, cfg.Server.DashboardURL, log,
		public, middlewares.GetAllAndClear())

	capsuleRepo := postgres.NewCapsuleRepository(storage.Pool(), log)
	capsuleService := capsule.NewService(capsuleRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	capsuleHandler := capsuleAPI.NewHandler(capsuleService, log, middlewares.GetAllAndClear())

	commentRepo := postgres.NewCommentRepository(storage.Pool(), log)
	commentService := comment.NewService(commentRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	commentHandler := commentAPI.NewHandler(commentService, log, middlewares.GetAllAndClear())

	mediaRepo, err := mediaRepository(ctx, cfg, storage, log)
	if err != nil {
		return nil, err
	}
	mediaService := media.NewService(mediaRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	mediaHandler := mediaAPI.NewHandler(mediaService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Auth:    authHandler,
		Capsule: capsuleHandler,
		Comment: commentHandler,
		Media:   mediaHandler,
	}, nil
}

func mediaRepository(ctx context.Context, cfg *config.Config, storage *postgres.Storage, log *slog.Logger) (media.Repository, error) {
	if cfg.Media.Backend == config.MediaStorageS3 {
		return s3.NewMediaStore(ctx, cfg.Media.S3Bucket, cfg.Media.S3Region, cfg.Media.S3Endpoint)
	}
	return postgres.NewMediaRepository(storage.Pool(), log), nil
}
