package router

import (
	"net/http"
	"time"

	"github.com/denmor86/pedidos-sync/internal/config"
	"github.com/denmor86/pedidos-sync/internal/network/handlers"
	"github.com/denmor86/pedidos-sync/internal/network/middleware"
	"github.com/denmor86/pedidos-sync/internal/services"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config   config.Config
	Pipeline services.PipelineService
	Reports  services.ReportsService
	Location *time.Location
	Metrics  http.Handler
}

func NewRouter(config config.Config, pipeline services.PipelineService, reports services.ReportsService,
	loc *time.Location, metrics http.Handler) *Router {
	return &Router{
		Config:   config,
		Pipeline: pipeline,
		Reports:  reports,
		Location: loc,
		Metrics:  metrics,
	}
}

// TokenAuth - проверка HS256 токена для ручного запуска, nil если секрет не задан
func (router *Router) TokenAuth() *jwtauth.JWTAuth {
	if router.Config.Server.JWTSecret == "" {
		return nil
	}
	return jwtauth.New("HS256", []byte(router.Config.Server.JWTSecret), nil)
}

func (router *Router) HandleRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.LogHandle)

	r.Get("/", handlers.HealthHandler())
	r.Group(func(r chi.Router) {
		if ja := router.TokenAuth(); ja != nil {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
		}
		r.Post("/rodar-pedidos", handlers.RunPipelineHandler(router.Pipeline, router.Location))
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/pedidos/resumo", handlers.SummaryHandler(router.Reports))
	})
	if router.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", router.Metrics)
	}
	return r
}
