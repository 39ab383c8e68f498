package metrics

import (
	"net/http"
	"net/http/pprof"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// GetHandler creates a new HTTP handler that serves metrics collected by the provided metrics manager
// on the '/metrics' route, along with the pprof profiling endpoints under '/debug/pprof/'.
func GetHandler(m Manager) http.Handler {
	var (
		router   = mux.NewRouter()
		gatherer = prometheus.DefaultGatherer
	)

	if mm, ok := m.(*metricsManager); ok {
		gatherer = mm.registry
	}

	router.NewRoute().Methods(http.MethodGet).Path("/metrics").Handler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("/debug/pprof/profile", pprof.Profile)
	router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("/debug/pprof/trace", pprof.Trace)

	router.NewRoute().Methods(http.MethodGet).PathPrefix("/debug/pprof/").HandlerFunc(pprof.Index)

	return router
}
