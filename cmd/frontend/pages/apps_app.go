package pages

import (
	"html/template"
	"net/http"

	"github.com/chenkham/appfolio/pkg/catalog"
	"github.com/chenkham/appfolio/pkg/portal"
	"github.com/go-chi/chi"
)

const reviewsPageSize = 20

func AppsRouter() http.Handler {

	r := chi.NewRouter()
	r.Get("/{id}", appHandler)
	r.Get("/{id}/download", downloadFormHandler)
	r.Post("/{id}/download", downloadFormPostHandler)
	r.Post("/{id}/download/quick", downloadQuickHandler)
	r.Get("/{id}/reviews", reviewsHandler)
	r.Post("/{id}/reviews", reviewsPostHandler)
	return r
}

func appFromRequest(r *http.Request) (catalog.App, error) {
	return catalog.Get(chi.URLParam(r, "id"))
}

func appHandler(w http.ResponseWriter, r *http.Request) {

	app, err := appFromRequest(r)
	if err != nil {
		Error404Handler(w, r)
		return
	}

	t := appTemplate{}
	t.fill(w, r, app.Name, template.HTML("Download "+app.Name+" - "+app.Tagline))
	t.App = app
	t.Reviews = core.ListReviews(app.ID, reviewsPageSize)
	t.DownloadCount = appDownloadCount(app.ID)

	returnTemplate(w, r, "app", t)
}

type appTemplate struct {
	globalTemplate
	App           catalog.App
	Reviews       portal.ReviewList
	DownloadCount int64
}
