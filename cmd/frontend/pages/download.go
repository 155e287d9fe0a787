package pages

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/badoux/checkmail"
	"github.com/chenkham/appfolio/cmd/frontend/helpers/session"
	"github.com/chenkham/appfolio/pkg/catalog"
	"github.com/chenkham/appfolio/pkg/log"
	"github.com/chenkham/appfolio/pkg/memcache"
	"github.com/chenkham/appfolio/pkg/portal"
)

func downloadFormHandler(w http.ResponseWriter, r *http.Request) {

	app, err := appFromRequest(r)
	if err != nil {
		Error404Handler(w, r)
		return
	}

	t := downloadTemplate{}
	t.fill(w, r, "Download "+app.Name, template.HTML("Fill in your details to download "+app.Name+"."))
	t.App = app

	returnTemplate(w, r, "download_form", t)
}

type downloadTemplate struct {
	globalTemplate
	App catalog.App
}

func downloadFormPostHandler(w http.ResponseWriter, r *http.Request) {

	app, err := appFromRequest(r)
	if err != nil {
		Error404Handler(w, r)
		return
	}

	form, message := func() (portal.DownloadForm, string) {

		err := r.ParseForm()
		if err != nil {
			return portal.DownloadForm{}, "Something went wrong, please try again"
		}

		name := strings.TrimSpace(r.PostFormValue("name"))
		email := strings.TrimSpace(r.PostFormValue("email"))
		location := strings.TrimSpace(r.PostFormValue("location"))

		if name == "" || email == "" || location == "" {
			return portal.DownloadForm{}, "Please fill in all the fields"
		}

		err = checkmail.ValidateFormat(email)
		if err != nil {
			return portal.DownloadForm{}, "Please enter a valid email address"
		}

		return portal.DownloadForm{
			Name:      name,
			Email:     email,
			Location:  location,
			AppID:     app.ID,
			AppName:   app.Name,
			UserAgent: r.UserAgent(),
		}, ""
	}()

	if message != "" {

		session.SetFlash(r, session.SessionBad, message)
		session.Save(w, r)
		http.Redirect(w, r, app.GetDownloadPath(), http.StatusFound)
		return
	}

	var fileURL string
	core.SubmitDownloadForm(form, app.DownloadURL, func(url string) {
		fileURL = url
	})

	clearDownloadCount(app.ID)

	t := downloadStartedTemplate{}
	t.fill(w, r, "Downloading "+app.Name, "Your download is starting.")
	t.App = app
	t.FileURL = fileURL

	returnTemplate(w, r, "download_started", t)
}

type downloadStartedTemplate struct {
	globalTemplate
	App     catalog.App
	FileURL string
}

// downloadQuickHandler records the hit and hands the file URL back as JSON,
// without asking for any details.
func downloadQuickHandler(w http.ResponseWriter, r *http.Request) {

	app, err := appFromRequest(r)
	if err != nil {
		returnJSON(w, r, map[string]interface{}{"error": "app not found"})
		return
	}

	var fileURL string
	core.QuickDownload(app.ID, app.Name, "quick", r.UserAgent(), app.DownloadURL, func(url string) {
		fileURL = url
	})

	clearDownloadCount(app.ID)

	returnJSON(w, r, map[string]interface{}{"url": fileURL})
}

func clearDownloadCount(appID string) {

	err := memcache.Delete(memcache.ItemAppDownloadCount(appID).Key)
	if err != nil {
		log.ErrS(err)
	}
}
