package pages

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chenkham/appfolio/cmd/frontend/helpers/session"
	"github.com/chenkham/appfolio/pkg/log"
	"github.com/chenkham/appfolio/pkg/portal"
	"go.uber.org/zap"
)

func reviewsHandler(w http.ResponseWriter, r *http.Request) {

	app, err := appFromRequest(r)
	if err != nil {
		returnJSON(w, r, portal.ReviewList{})
		return
	}

	returnJSON(w, r, core.ListReviews(app.ID, reviewsPageSize))
}

func reviewsPostHandler(w http.ResponseWriter, r *http.Request) {

	app, err := appFromRequest(r)
	if err != nil {
		Error404Handler(w, r)
		return
	}

	message, success := func() (string, bool) {

		err := r.ParseForm()
		if err != nil {
			return "Something went wrong, please try again", false
		}

		rating := 5
		if val := r.PostFormValue("rating"); val != "" {

			rating, err = strconv.Atoi(val)
			if err != nil {
				return "Please pick a rating between 1 and 5", false
			}
		}

		_, err = core.SubmitReview(app.ID, r.PostFormValue("name"), rating, r.PostFormValue("comment"))
		if errors.Is(err, portal.ErrMissingFields) {
			return "Please add your name and a comment", false
		}
		if errors.Is(err, portal.ErrInvalidRating) {
			return "Please pick a rating between 1 and 5", false
		}
		if err != nil {
			// The page keeps working without the review being saved.
			log.Err("saving review", zap.Error(err), zap.String("app", app.ID))
			return "", false
		}

		return "Thanks for your review!", true
	}()

	if message != "" {
		if success {
			session.SetFlash(r, session.SessionGood, message)
		} else {
			session.SetFlash(r, session.SessionBad, message)
		}
	}

	session.Save(w, r)

	http.Redirect(w, r, app.GetPath(), http.StatusFound)
}
