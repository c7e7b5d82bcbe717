package wire

import (
	"net/http"

	"bistro-boss/internal/adaptor"
	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/metrics"
	"bistro-boss/pkg/middleware"
	"bistro-boss/pkg/token"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router and the services behind it.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
	Policy  Policy
}

// Wiring builds services, handlers and routes on top of repo.
func Wiring(repo *repository.Repository, issuer *token.Issuer, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, issuer, logger)
	handler := adaptor.NewHandler(service, logger)
	policy := PolicyFromConfig(config.Auth.StrictWrites)

	g := gates{
		verifier: issuer,
		checker:  service.Privilege,
		log:      logger.With(zap.String("component", "access")),
	}

	return &App{
		Router:  setupRouter(handler, g, policy, config, logger),
		Service: service,
		Policy:  policy,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	g gates,
	policy Policy,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(metrics.Middleware())
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, g, policy)
	wireMenu(r, handler.Menu, g, policy)
	wireReview(r, handler.Review)
	wireCart(r, handler.Cart)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("Bistro boss is running..."))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
