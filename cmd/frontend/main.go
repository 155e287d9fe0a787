package main

import (
	"net/http"
	"time"

	"github.com/chenkham/appfolio/cmd/frontend/helpers/session"
	"github.com/chenkham/appfolio/cmd/frontend/pages"
	"github.com/chenkham/appfolio/pkg/config"
	"github.com/chenkham/appfolio/pkg/log"
	"github.com/chenkham/appfolio/pkg/memcache"
	"github.com/chenkham/appfolio/pkg/middleware"
	"github.com/chenkham/appfolio/pkg/mongo"
	"github.com/chenkham/appfolio/pkg/portal"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/gobuffalo/packr/v2"
	"go.uber.org/zap"
)

var version string

func main() {

	err := config.Init(version)
	log.InitZap(log.LogNameFrontend)
	defer log.Flush()
	if err != nil {
		log.FatalS(err)
	}

	session.Init()

	store, err := mongo.NewStore(config.MongoDSN(), config.C.MongoDatabase, config.C.MongoUsername, config.C.MongoPassword)
	if err != nil {
		log.FatalS(err)
	}

	fallback := portal.NewFallbackList(memcacheKV{})

	pages.Init(portal.New(store, fallback, portal.DefaultDelays))

	r := chi.NewRouter()
	r.Use(chiMiddleware.RedirectSlashes)
	r.Use(middleware.MiddlewareRealIP)
	r.Use(middleware.MiddlewareLog)
	r.Use(middleware.MiddlewareCors())
	r.Use(chiMiddleware.Compress(5))
	r.Use(middleware.RateLimiterWait)
	r.Use(middleware.MiddlewareCSRF("/apps/*/download/quick"))

	r.Get("/", pages.HomeHandler)
	r.Mount("/apps", pages.AppsRouter())
	r.Mount("/newsletter", pages.NewsletterRouter())
	r.Mount("/admin", pages.AdminRouter())
	r.Mount("/health-check", pages.HealthCheckRouter())

	// Assets
	assetsBox := packr.New("assets", "./assets")
	r.Get("/assets/*", func(w http.ResponseWriter, req *http.Request) {
		http.StripPrefix("/assets", http.FileServer(assetsBox)).ServeHTTP(w, req)
	})

	// 404
	r.NotFound(pages.Error404Handler)

	log.Info("Starting frontend", zap.String("port", config.ListenOn()), zap.String("env", config.C.Environment))

	s := &http.Server{
		Addr:              config.ListenOn(),
		Handler:           r,
		ReadTimeout:       2 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	err = s.ListenAndServe()
	if err != nil {
		log.ErrS(err)
	}
}

// memcacheKV backs the download fallback list. A missing key reads as an
// empty list, not an error.
type memcacheKV struct{}

func (memcacheKV) Get(key string) (string, error) {

	val, err := memcache.Get(key)
	if err == memcache.ErrNotFound {
		return "", nil
	}
	return val, err
}

func (memcacheKV) Set(key string, value string, expiration uint32) error {
	return memcache.Set(key, value, expiration)
}
