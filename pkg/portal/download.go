package portal

import (
	"time"

	"github.com/chenkham/appfolio/pkg/log"
	"github.com/chenkham/appfolio/pkg/mongo"
	"go.uber.org/zap"
)

type DownloadForm struct {
	Name      string
	Email     string
	Location  string
	AppID     string
	AppName   string
	UserAgent string
}

// RecordDownloadAttempt stores an anonymous download record in the
// background. It never blocks and never reports failure; tracking must not
// get between the user and the file.
func (p *Portal) RecordDownloadAttempt(appID string, appName string, source string, userAgent string) {

	download := &mongo.Download{
		AppID:     appID,
		AppName:   appName,
		Source:    source,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}

	go func() {
		err := p.store.InsertDownload(download)
		if err != nil {
			log.Err("recording download attempt", zap.Error(err), zap.String("app", appID), zap.String("source", source))
		}
	}()
}

// QuickDownload records an attempt concurrently with a short pacing delay,
// then opens the file URL. The record is best-effort.
func (p *Portal) QuickDownload(appID string, appName string, source string, userAgent string, url string, open Opener) {

	p.RecordDownloadAttempt(appID, appName, source, userAgent)

	time.Sleep(p.delays.Quick)

	open(url)
}

// SubmitDownloadForm stores the submission, falling back to the local list
// when the store is unreachable, then opens the file URL. The user sees the
// same successful flow either way; only the log records the degradation.
func (p *Portal) SubmitDownloadForm(form DownloadForm, url string, open Opener) {

	download := &mongo.Download{
		Name:      form.Name,
		Email:     form.Email,
		Location:  form.Location,
		AppID:     form.AppID,
		AppName:   form.AppName,
		UserAgent: form.UserAgent,
		CreatedAt: time.Now(),
	}

	err := p.store.InsertDownload(download)
	if err != nil {

		log.Warn("download store unreachable, keeping submission locally", zap.Error(err), zap.String("app", form.AppID))

		err = p.fallback.Append(form)
		if err != nil {
			log.Err("saving download submission to fallback", zap.Error(err))
		}
	}

	time.Sleep(p.delays.Form)

	open(url)

	time.Sleep(p.delays.Close)
}
