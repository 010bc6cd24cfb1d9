package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/umtaldejr/money-tracker-api/internal/api/http/handler"
	"github.com/umtaldejr/money-tracker-api/internal/api/http/middleware"
	"github.com/umtaldejr/money-tracker-api/internal/api/http/response"
	"github.com/umtaldejr/money-tracker-api/internal/logger"
	"github.com/umtaldejr/money-tracker-api/internal/model"
	"github.com/umtaldejr/money-tracker-api/internal/service"
)

// Router builds the HTTP route tree with its middleware chain.
type Router struct {
	userService    *service.User
	tokenManager   model.TokenManager
	userStore      model.UserStore
	contextManager model.ContextManager
	meta           *handler.Meta
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	userService *service.User,
	tokenManager model.TokenManager,
	userStore model.UserStore,
	contextManager model.ContextManager,
	meta *handler.Meta,
	logger *logger.Logger,
) *Router {
	return &Router{
		userService:    userService,
		tokenManager:   tokenManager,
		userStore:      userStore,
		contextManager: contextManager,
		meta:           meta,
		logger:         logger,
	}
}

// Register wires handlers and middleware into a chi router.
//
// Registration is deliberately anonymous; every per-identifier route runs
// ValidateID → Authenticate → RequireOwner in that order so malformed IDs
// fail with 400 before auth, and unauthenticated callers see 401, never 403.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.userStore, r.contextManager, r.logger)
	requireOwner := middleware.NewRequireOwner(r.contextManager, r.logger)
	validateID := middleware.NewValidateID(r.logger)

	userHandler := handler.NewUser(r.userService, r.logger)
	authHandler := handler.NewAuth(r.userService, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimiddleware.Recoverer)
	mux.Use(logging.Handle)

	mux.Get("/", r.meta.Welcome)
	mux.Get("/health", r.meta.Health)

	mux.Route("/accounts", func(mux chi.Router) {
		mux.Post("/", userHandler.Create)
		mux.With(authenticate.Handle).Get("/", userHandler.List)

		mux.Route("/{id}", func(mux chi.Router) {
			mux.Use(validateID.Handle)
			mux.Use(authenticate.Handle)
			mux.Use(requireOwner.Handle)

			mux.Get("/", userHandler.Get)
			mux.Put("/", userHandler.Update)
			mux.Delete("/", userHandler.Delete)
		})
	})

	mux.Route("/auth", func(mux chi.Router) {
		mux.Post("/login", authHandler.Login)
		mux.With(authenticate.Handle).Get("/whoami", authHandler.Whoami)
	})

	mux.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, http.StatusNotFound, "Route not found: cannot "+req.Method+" "+req.URL.Path)
	})

	return mux
}
