package session

import (
	"net/http"

	"github.com/Jleagle/session-go/session"
	"github.com/chenkham/appfolio/pkg/config"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	SessionAdmin    = "admin"
	SessionLastPage = "last-page"

	// Flash groups
	SessionGood session.FlashGroup = "good"
	SessionBad  session.FlashGroup = "bad"

	// Cookies
	SessionCookieName = "appfolio-session"
)

func Init() {

	sessionInit := session.Init{}
	sessionInit.AuthenticationKey = config.C.SessionAuthentication
	sessionInit.EncryptionKey = config.C.SessionEncryption
	sessionInit.CookieName = SessionCookieName
	sessionInit.CookieOptions = sessions.Options{
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   2419200, // 30 days
		Path:     "/",
		Domain:   "",
		Secure:   config.IsProd(),
	}

	session.Initialise(sessionInit)
}

func Get(r *http.Request, key string) (value string) {

	val, err := session.Get(r, key)
	logSessionError(err)
	return val
}

func Set(r *http.Request, name string, value string) {

	err := session.Set(r, name, value)
	logSessionError(err)
}

func SetMany(r *http.Request, values map[string]string) {

	err := session.SetMany(r, values)
	logSessionError(err)
}

func GetFlashes(r *http.Request, group session.FlashGroup) (flashes []string) {

	flashes, err := session.GetFlashes(r, group)
	logSessionError(err)

	return flashes
}

func SetFlash(r *http.Request, group session.FlashGroup, flash string) {

	err := session.SetFlash(r, group, flash)
	logSessionError(err)
}

func DeleteAll(r *http.Request) {

	err := session.DeleteAll(r)
	logSessionError(err)
}

func Save(w http.ResponseWriter, r *http.Request) {

	err := session.Save(w, r)
	logSessionError(err)
}

func logSessionError(err error) {

	if err != nil {

		if val, ok := err.(securecookie.Error); ok {
			if val.IsUsage() || val.IsDecode() {
				zap.S().Info(val.Error())
				return
			}
		}

		zap.S().Error(err)
	}
}

func IsAdmin(r *http.Request) bool {

	return Get(r, SessionAdmin) == "1"
}
