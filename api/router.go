package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	apiMiddleware "github.com/prasetyowira/bsqr/api/middleware"
	"github.com/prasetyowira/bsqr/constant"
	appLogger "github.com/prasetyowira/bsqr/infrastructure/logger"
)

// RenderHandler serves rendered images
type RenderHandler interface {
	RenderImage(w http.ResponseWriter, r *http.Request)
}

// Router represents the application router
type Router struct {
	handler RenderHandler
	router  *chi.Mux
}

// NewRouter creates a new router
func NewRouter(handler RenderHandler) *Router {
	r := chi.NewRouter()

	// Middleware setup
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.RequestLogger())

	return &Router{
		handler: handler,
		router:  r,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() {
	appLogger.Info(constant.MsgSettingUpRoutes, appLogger.LoggerInfo{
		ContextFunction: constant.CtxRouter,
	})

	r.router.Get(constant.RouteRender, r.handler.RenderImage)
	r.router.Post(constant.RouteRender, r.handler.RenderImage)

	// Healthcheck
	r.router.Get(constant.RouteHealthcheck, func(w http.ResponseWriter, r *http.Request) {
		appLogger.CtxDebug(r.Context(), constant.MsgHealthcheckRequest, appLogger.LoggerInfo{
			ContextFunction: constant.CtxRouter,
		})

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(constant.MsgHealthy))
	})
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
