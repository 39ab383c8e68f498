package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Router dispatches requests through gorilla/mux. Each route gets an otelhttp span named "METHOD pattern".
type Router struct {
	mux.Router
}

type Middleware func(handler http.Handler) http.Handler

func NewRouter() *Router {
	return &Router{Router: *mux.NewRouter()}
}

// Add routes method and pattern to handler. Routes match in the order they are added, so a fixed
// path has to be added before a pattern whose variable would also match it.
func (rou *Router) Add(method, pattern string, handler http.Handler) {
	rou.Methods(method).Path(pattern).Handler(otelhttp.NewHandler(handler, method+" "+pattern))
}

// UseMiddleware wraps every route in mws, outermost first.
func (rou *Router) UseMiddleware(mws ...Middleware) {
	for _, m := range mws {
		rou.Use(mux.MiddlewareFunc(m))
	}
}
