package pages

import (
	"net/http"

	"github.com/go-chi/chi"
)

func HealthCheckRouter() http.Handler {

	r := chi.NewRouter()
	r.Get("/", healthCheckHandler)
	return r
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
