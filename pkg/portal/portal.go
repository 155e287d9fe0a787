package portal

import (
	"time"

	"github.com/chenkham/appfolio/pkg/log"
	"github.com/chenkham/appfolio/pkg/mongo"
	"go.uber.org/zap"
)

type DownloadStore interface {
	InsertDownload(download *mongo.Download) error
	GetDownloads(offset int64, limit int64) ([]mongo.Download, int64, error)
	CountDownloads(appID string) (int64, error)
}

type ReviewStore interface {
	InsertReview(review *mongo.Review) error
	GetReviews(appID string, limit int64) ([]mongo.Review, int64, error)
	CountReviews(appID string) (int64, error)
}

type SubscriberStore interface {
	InsertSubscriber(subscriber *mongo.Subscriber) error
	GetSubscribers(offset int64, limit int64) ([]mongo.Subscriber, int64, error)
	CountSubscribers(email string) (int64, error)
}

// Store is what the portal needs from the document database.
// *mongo.Store satisfies it; tests use fakes.
type Store interface {
	DownloadStore
	ReviewStore
	SubscriberStore
}

// Opener receives the file URL once a download flow reaches the point where
// the user's browser should fetch the file.
type Opener func(url string)

// Delays pace the download flows so the user sees feedback before the file
// opens. They are not correctness-relevant; tests zero them.
type Delays struct {
	Quick time.Duration // Quick download, before the URL opens
	Form  time.Duration // Form download, before the URL opens
	Close time.Duration // Form download, between the URL opening and completion
}

var DefaultDelays = Delays{
	Quick: 800 * time.Millisecond,
	Form:  1500 * time.Millisecond,
	Close: time.Second,
}

type Portal struct {
	store    Store
	fallback *FallbackList
	delays   Delays
}

func New(store Store, fallback *FallbackList, delays Delays) *Portal {

	return &Portal{
		store:    store,
		fallback: fallback,
		delays:   delays,
	}
}

func (p *Portal) ListDownloads(limit int64, offset int64) ([]mongo.Download, int64, error) {
	return p.store.GetDownloads(offset, limit)
}

// CountDownloads is a best-effort counter, zero when the store is down.
func (p *Portal) CountDownloads(appID string) int64 {

	count, err := p.store.CountDownloads(appID)
	if err != nil {
		log.Err("counting downloads", zap.Error(err), zap.String("app", appID))
		return 0
	}

	return count
}

func (p *Portal) ListSubscribers(limit int64, offset int64) ([]mongo.Subscriber, int64, error) {
	return p.store.GetSubscribers(offset, limit)
}

func (p *Portal) FallbackEntries() ([]FallbackEntry, error) {
	return p.fallback.Entries()
}

type Summary struct {
	TotalDownloads   int64 `json:"totalDownloads"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalReviews     int64 `json:"totalReviews"`
}

// GetSummary returns the dashboard counters. A failure on any of the three
// counts degrades to all zeros rather than partial data.
func (p *Portal) GetSummary() Summary {

	downloads, err1 := p.store.CountDownloads("")
	subscribers, err2 := p.store.CountSubscribers("")
	reviews, err3 := p.store.CountReviews("")

	for _, err := range []error{err1, err2, err3} {
		if err != nil {
			log.Err("fetching summary", zap.Error(err))
			return Summary{}
		}
	}

	return Summary{
		TotalDownloads:   downloads,
		TotalSubscribers: subscribers,
		TotalReviews:     reviews,
	}
}
