package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/app-store-api/pkg/metrics"
)

type Middleware = func(http.Handler) http.Handler

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.pending = append(router.pending, routes...)
		}
	}

	// WithAuthentication define o middleware aplicado a toda rota que não seja pública
	WithAuthentication = func(authenticate Middleware) ConfigRouter {
		return func(router *Router) {
			router.authenticate = authenticate
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Public      bool         // Rotas públicas não exigem token
	Middlewares []Middleware // Lista de middlewares específicos para esta rota
}

type Router struct {
	router       *httprouter.Router
	authenticate Middleware
	pending      []Route
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	// as rotas só são registradas depois de todas as configurações,
	// assim a ordem de WithAuthentication e WithRoutes não importa
	router.AddRoutes(router.pending...)
	router.pending = nil

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos.
// Ordem final: métricas → autenticação → middlewares da rota → handler.
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		// Aplicar middlewares específicos da rota, do último para o primeiro
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		if !route.Public && r.authenticate != nil {
			handler = r.authenticate(handler)
		}

		r.router.Handler(route.Method, route.Path, metrics.InstrumentRoute(route.Path, handler))
	}
}
