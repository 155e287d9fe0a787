package pages

import (
	"net/http"

	"github.com/chenkham/appfolio/cmd/frontend/helpers/session"
	"github.com/chenkham/appfolio/pkg/log"
	"github.com/go-chi/chi"
	"go.uber.org/zap"
)

func NewsletterRouter() http.Handler {

	r := chi.NewRouter()
	r.Post("/", newsletterPostHandler)
	return r
}

func newsletterPostHandler(w http.ResponseWriter, r *http.Request) {

	message, success := func() (string, bool) {

		err := r.ParseForm()
		if err != nil {
			return "Something went wrong, please try again", false
		}

		result, err := core.Subscribe(r.PostFormValue("email"))
		if err != nil {
			log.Err("subscribing to newsletter", zap.Error(err))
			return "Failed to subscribe. Please try again.", false
		}

		return result.Message, result.Success
	}()

	if success {
		session.SetFlash(r, session.SessionGood, message)
	} else {
		session.SetFlash(r, session.SessionBad, message)
	}

	session.Save(w, r)

	redirect := session.Get(r, session.SessionLastPage)
	if redirect == "" {
		redirect = "/"
	}

	http.Redirect(w, r, redirect, http.StatusFound)
}
