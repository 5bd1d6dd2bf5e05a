package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/dtroode/videoflix-server/internal/api/http/handler"
	"github.com/dtroode/videoflix-server/internal/api/http/middleware"
	"github.com/dtroode/videoflix-server/internal/logger"
	"github.com/dtroode/videoflix-server/internal/metrics"
	"github.com/dtroode/videoflix-server/internal/model"
)

// Config holds transport level settings of the router.
type Config struct {
	AllowedOrigins []string
	Cookies        handler.CookieConfig
	RequestTimeout time.Duration
}

// Router wires handlers and middleware into an http.Handler.
type Router struct {
	authService    handler.AuthService
	tokenService   handler.TokenService
	videoService   handler.VideoService
	resolver       middleware.AccountResolver
	contextManager model.ContextManager
	metrics        *metrics.Metrics
	cfg            Config
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	authService handler.AuthService,
	tokenService handler.TokenService,
	videoService handler.VideoService,
	resolver middleware.AccountResolver,
	contextManager model.ContextManager,
	metrics *metrics.Metrics,
	cfg Config,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		tokenService:   tokenService,
		videoService:   videoService,
		resolver:       resolver,
		contextManager: contextManager,
		metrics:        metrics,
		cfg:            cfg,
		logger:         logger,
	}
}

// Register builds the route tree.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.resolver, r.contextManager, r.logger)
	authHandler := handler.NewAuth(r.authService, r.tokenService, r.cfg.Cookies, r.logger)
	videoHandler := handler.NewVideo(r.videoService, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(logging.Handle)
	mux.Use(chimw.Recoverer)
	if r.metrics != nil {
		mux.Use(r.metrics.Middleware)
	}
	mux.Use(cors.New(cors.Options{
		AllowedOrigins:   r.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)
	if r.cfg.RequestTimeout > 0 {
		mux.Use(chimw.Timeout(r.cfg.RequestTimeout))
	}

	mux.Post("/register/", authHandler.Register)
	mux.Get("/activate/{uid}/{token}/", authHandler.Activate)
	mux.Post("/password_reset/", authHandler.RequestPasswordReset)
	mux.Post("/password_confirm/{uid}/{token}/", authHandler.ConfirmPasswordReset)
	mux.Post("/login/", authHandler.Login)
	mux.Post("/token/refresh/", authHandler.Refresh)

	mux.Group(func(private chi.Router) {
		private.Use(authenticate.Handle)
		private.Post("/logout/", authHandler.Logout)
		private.Get("/video/", videoHandler.List)
	})

	if r.metrics != nil {
		mux.Method(http.MethodGet, "/metrics", r.metrics.Handler())
	}

	return mux
}
