package pages

import (
	"net/http"
	"strconv"

	"github.com/chenkham/appfolio/cmd/frontend/helpers/session"
	"github.com/chenkham/appfolio/pkg/config"
	"github.com/chenkham/appfolio/pkg/log"
	"github.com/chenkham/appfolio/pkg/memcache"
	"github.com/chenkham/appfolio/pkg/mongo"
	"github.com/chenkham/appfolio/pkg/portal"
	"github.com/go-chi/chi"
	"go.uber.org/zap"
)

const adminDownloadsPageSize = 100

func AdminRouter() http.Handler {

	r := chi.NewRouter()
	r.Use(adminMiddleware)
	r.Get("/", adminHandler)
	r.Get("/summary.json", adminSummaryHandler)
	r.Get("/logout", adminLogoutHandler)
	return r
}

// adminMiddleware lets a request through with an admin session, or starts one
// when the configured key is supplied.
func adminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if session.IsAdmin(r) {
			next.ServeHTTP(w, r)
			return
		}

		if key := r.URL.Query().Get("key"); key != "" && config.C.AdminKey != "" && key == config.C.AdminKey {

			session.Set(r, session.SessionAdmin, "1")
			session.Save(w, r)
			next.ServeHTTP(w, r)
			return
		}

		Error404Handler(w, r)
	})
}

func adminHandler(w http.ResponseWriter, r *http.Request) {

	offset := int64(0)
	if val := r.URL.Query().Get("offset"); val != "" {

		i, err := strconv.ParseInt(val, 10, 64)
		if err == nil && i > 0 {
			offset = i
		}
	}

	t := adminTemplate{}
	t.fill(w, r, "Admin", "")
	t.Summary = adminSummary()

	var err error
	t.Downloads, t.DownloadsTotal, err = core.ListDownloads(adminDownloadsPageSize, offset)
	if err != nil {
		log.Err("fetching downloads for dashboard", zap.Error(err))
	}

	t.Subscribers, t.SubscribersTotal, err = core.ListSubscribers(adminDownloadsPageSize, 0)
	if err != nil {
		log.Err("fetching subscribers for dashboard", zap.Error(err))
	}

	t.FallbackEntries, err = core.FallbackEntries()
	if err != nil {
		log.Err("fetching fallback entries for dashboard", zap.Error(err))
	}

	returnTemplate(w, r, "admin", t)
}

type adminTemplate struct {
	globalTemplate
	Summary          portal.Summary
	Downloads        []mongo.Download
	DownloadsTotal   int64
	Subscribers      []mongo.Subscriber
	SubscribersTotal int64
	FallbackEntries  []portal.FallbackEntry
}

func adminSummaryHandler(w http.ResponseWriter, r *http.Request) {

	returnJSON(w, r, adminSummary())
}

func adminSummary() (summary portal.Summary) {

	err := memcache.GetSetInterface(memcache.ItemSummary.Key, memcache.ItemSummary.Expiration, &summary, func() (interface{}, error) {
		return core.GetSummary(), nil
	})
	if err != nil {
		log.ErrS(err)
	}

	return summary
}

func adminLogoutHandler(w http.ResponseWriter, r *http.Request) {

	session.DeleteAll(r)
	session.SetFlash(r, session.SessionGood, "Logged out")
	session.Save(w, r)

	http.Redirect(w, r, "/", http.StatusFound)
}
