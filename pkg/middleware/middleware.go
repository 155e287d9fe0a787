package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/chenkham/appfolio/pkg/config"
	"github.com/chenkham/appfolio/pkg/log"
	"github.com/go-chi/cors"
	"github.com/justinas/nosurf"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func MiddlewareCors() func(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{config.C.Domain},
		AllowedMethods: []string{"GET", "POST"},
	}).Handler
}

func MiddlewareRealIP(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		cf := r.Header.Get("cf-connecting-ip")
		nginx := r.Header.Get("x-real-ip")

		if cf != "" {
			r.RemoteAddr = cf
		} else if nginx != "" {
			r.RemoteAddr = nginx
		}

		h.ServeHTTP(w, r)
	})
}

func MiddlewareLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if config.IsLocal() {
			zap.S().Named(log.LogNameRequests).Info(r.Method + " " + r.URL.String())
		}
		next.ServeHTTP(w, r)
	})
}

// MiddlewareCSRF protects the form posts. The quick-download endpoint is
// exempted in main as it is called without a rendered form.
func MiddlewareCSRF(exemptGlobs ...string) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {

		csrf := nosurf.New(h)
		for _, v := range exemptGlobs {
			csrf.ExemptGlob(v)
		}
		return csrf
	}
}

type ipLimiters struct {
	ips   map[string]*ipLimiter
	lock  sync.Mutex
	limit rate.Limit
	burst int
}

type ipLimiter struct {
	limiter *rate.Limiter
	updated time.Time
}

func (l *ipLimiters) GetLimiter(ip string) *rate.Limiter {

	l.lock.Lock()
	defer l.lock.Unlock()

	limiter, exists := l.ips[ip]

	if !exists {

		limiter = &ipLimiter{
			limiter: rate.NewLimiter(l.limit, l.burst),
		}

		l.ips[ip] = limiter
	}

	// Touch IP
	limiter.updated = time.Now()

	return limiter.limiter
}

func (l *ipLimiters) clean() {
	for {
		cutoff := time.Now().Add(time.Hour * -1)

		l.lock.Lock()
		for k, v := range l.ips {
			if v.updated.Before(cutoff) {
				delete(l.ips, k)
			}
		}
		l.lock.Unlock()

		time.Sleep(time.Minute)
	}
}

var limiters = func() *ipLimiters {

	l := &ipLimiters{
		ips:   map[string]*ipLimiter{},
		limit: rate.Every(time.Second),
		burst: 10,
	}

	go l.clean()

	return l
}()

func RateLimiterWait(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		err := limiters.GetLimiter(r.RemoteAddr).Wait(r.Context())
		if err != nil {
			log.ErrS(err)
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
