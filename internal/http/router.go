package http

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hemolink/api/internal/auth"
	"github.com/hemolink/api/internal/config"
	"github.com/hemolink/api/internal/db"
	"github.com/hemolink/api/internal/http/handlers"
	"github.com/hemolink/api/internal/http/middlewares"
	"github.com/hemolink/api/internal/observability"
	"github.com/hemolink/api/internal/repo/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const maxBodyBytes = 1 << 20

// Deps is everything the router needs; it is built once in main and owned there.
type Deps struct {
	Users     auth.UserReader          // defaults to the mock table
	Tokens    *auth.Manager            // required
	BloodBank handlers.BloodBankReader // defaults to the demo inventory
	DB        db.Handle                // may be nil
	Registry  *prometheus.Registry
}

// NewRouter panics when deps.Tokens is nil.
func NewRouter(log *slog.Logger, cfg config.Config, deps Deps) *gin.Engine {
	if deps.Tokens == nil {
		panic("http: NewRouter requires a token manager")
	}

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	if deps.Users == nil {
		deps.Users = memory.NewUsersRepo(memory.DefaultUsers())
	}

	if deps.BloodBank == nil {
		deps.BloodBank = memory.NewBloodBankRepo(memory.DefaultBloodBank())
	}

	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}
	prom := observability.NewProm(deps.Registry)

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(prom.GinHandleMiddleware())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(maxBodyBytes))

	// health
	var ping func(ctx context.Context) error
	if deps.DB != nil {
		ping = func(ctx context.Context) error {
			return prom.ObservePing(deps.DB.Driver(), func() error {
				return deps.DB.Ping(ctx)
			})
		}
	}

	h := handlers.NewHealthHandler(ping, nil)

	authHandler := handlers.NewAuthHandler(
		auth.NewAuthenticator(deps.Users),
		deps.Tokens,
		log,
		prom.ObserveLogin,
	)
	authMW := middlewares.NewAuthMiddleware(deps.Tokens, prom.ObserveVerify)

	bank := handlers.NewBloodBankHandler(deps.BloodBank, log)

	api := r.Group("/api")
	{
		api.GET("/", h.Root)
		api.GET("/health", h.Health)
		api.GET("/readyz", h.Readyz)

		api.POST("/auth/login", middlewares.RequireJSON(), authHandler.Login)
		api.GET("/auth/me", authMW.RequireAuth(), authHandler.Me)

		// read-only demo data for the dashboard and hospital network pages
		api.GET("/dashboard/stats", bank.Stats)
		api.GET("/inventory", bank.Inventory)
		api.GET("/hospitals", bank.Hospitals)
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	return r
}
