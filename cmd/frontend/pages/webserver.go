package pages

import (
	"bytes"
	"encoding/json"
	"html"
	"html/template"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/chenkham/appfolio/cmd/frontend/helpers/session"
	"github.com/chenkham/appfolio/pkg/config"
	"github.com/chenkham/appfolio/pkg/portal"
	"github.com/dustin/go-humanize"
	"github.com/gobuffalo/packr/v2"
	"github.com/gosimple/slug"
	"github.com/justinas/nosurf"
	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
	"go.uber.org/zap"
)

// core is the flow layer behind every page, set once in main via Init.
var core *portal.Portal

func Init(p *portal.Portal) {
	core = p
}

func setHeaders(w http.ResponseWriter, contentType string) {

	csp := []string{
		"default-src 'none'",
		"script-src 'self' 'unsafe-inline' https://cdnjs.cloudflare.com",
		"style-src 'self' 'unsafe-inline' https://cdnjs.cloudflare.com https://fonts.googleapis.com",
		"font-src https://fonts.gstatic.com https://cdnjs.cloudflare.com",
		"connect-src 'self'",
		"manifest-src 'self'",
		"img-src 'self' data: *", // * to hotlink screenshots hosted on release pages
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "SAMEORIGIN")
	w.Header().Set("Content-Security-Policy", strings.Join(csp, "; "))
	w.Header().Set("Referrer-Policy", "no-referrer-when-downgrade")
	w.Header().Set("Server", "")
}

func returnJSON(w http.ResponseWriter, r *http.Request, i interface{}) {

	setHeaders(w, "application/json")

	b, err := json.Marshal(i)
	if err != nil {
		zap.S().Error(err)
		return
	}

	_, err = w.Write(b)
	if err != nil && !strings.Contains(err.Error(), "write: broken pipe") {
		zap.S().Error(err)
	}
}

var templatesBox = packr.New("templates", "../templates")

func returnTemplate(w http.ResponseWriter, r *http.Request, page string, pageData interface{}) {

	var err error

	// Set the last page
	if r.Method == "GET" && page != "error" {
		session.Set(r, session.SessionLastPage, r.URL.Path)
	}

	// Save the session
	session.Save(w, r)

	//
	setHeaders(w, "text/html")

	//
	t := template.New("t")
	t = t.Funcs(getTemplateFuncMap())

	templates := []string{
		"_header.gohtml",
		"_footer.gohtml",
		"_flashes.gohtml",
		page + ".gohtml",
	}

	for _, v := range templates {

		s, err := templatesBox.FindString(v)
		if err != nil {
			zap.S().Error(err)
			continue
		}

		t, err = t.Parse(s)
		if err != nil {
			zap.S().Error(err)
			continue
		}
	}

	// Write a response
	buf := &bytes.Buffer{}
	err = t.ExecuteTemplate(buf, path.Base(page), pageData)
	if err != nil {
		zap.S().Error(err)
		http.Error(w, "Looks like I messed something up, will be fixed soon!", http.StatusInternalServerError)
		return
	}

	if config.IsProd() {

		m := minify.New()
		m.Add("text/html", &minhtml.Minifier{
			KeepDefaultAttrVals: true,
			KeepDocumentTags:    true,
			KeepEndTags:         true,
			KeepWhitespace:      true,
		})

		err = m.Minify("text/html", w, buf)
		if err != nil && !strings.Contains(err.Error(), "write: broken pipe") {
			zap.S().Error(err)
		}

	} else {
		_, err = buf.WriteTo(w)
		if err != nil {
			zap.S().Error(err)
		}
	}
}

func returnErrorTemplate(w http.ResponseWriter, r *http.Request, t errorTemplate) {

	if t.Title == "" {
		t.Title = "Error " + strconv.Itoa(t.Code)
	}

	if t.Code == 0 {
		t.Code = 500
	}

	t.fill(w, r, "Error", "Something has gone wrong!")

	w.WriteHeader(t.Code)

	returnTemplate(w, r, "error", t)
}

type errorTemplate struct {
	globalTemplate
	Title   string
	Message string
	Code    int
}

func Error404Handler(w http.ResponseWriter, r *http.Request) {
	returnErrorTemplate(w, r, errorTemplate{Code: 404, Message: "Page Not Found"})
}

func getTemplateFuncMap() map[string]interface{} {
	return template.FuncMap{
		"comma":      func(a int) string { return humanize.Comma(int64(a)) },
		"comma64":    func(a int64) string { return humanize.Comma(a) },
		"htmlEscape": func(text string) string { return html.EscapeString(text) },
		"inc":        func(i int) int { return i + 1 },
		"join":       func(a []string, glue string) string { return strings.Join(a, glue) },
		"json": func(v interface{}) (string, error) {
			b, err := json.Marshal(v)
			if err != nil {
				zap.S().Error(err)
			}
			return string(b), err
		},
		"lower": func(a string) string { return strings.ToLower(a) },
		"slug":  func(s string) string { return slug.Make(s) },
		"title": func(a string) string { return strings.Title(a) },
	}
}

// globalTemplate is added to every other template
type globalTemplate struct {
	Title       string        // Page title for Chrome
	TitleOnly   string        // Page title
	Description template.HTML // Page description
	Path        string        // URL path
	Env         string        // Environment
	Canonical   string
	CSRF        string

	FlashesGood []string
	FlashesBad  []string

	// Internal
	request  *http.Request
	response http.ResponseWriter
}

func (t *globalTemplate) fill(w http.ResponseWriter, r *http.Request, title string, description template.HTML) {

	t.request = r
	t.response = w

	t.TitleOnly = title
	t.Title = title + " - " + config.C.ShortName
	t.Description = description
	t.Env = config.C.Environment
	t.Path = r.URL.Path
	t.Canonical = config.C.Domain + r.URL.Path
	t.CSRF = nosurf.Token(r)

	t.setFlashes()
}

func (t *globalTemplate) setFlashes() {

	t.FlashesGood = session.GetFlashes(t.request, session.SessionGood)
	t.FlashesBad = session.GetFlashes(t.request, session.SessionBad)
}

func (t globalTemplate) GetVersionHash() string {
	return config.GetShortVersion()
}
