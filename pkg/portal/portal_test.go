package portal

import (
	"errors"
	"sync"
	"testing"

	"github.com/chenkham/appfolio/pkg/mongo"
)

var errStoreDown = errors.New("store down")

type fakeStore struct {
	lock sync.Mutex

	downloads   []mongo.Download
	reviews     []mongo.Review
	subscribers []mongo.Subscriber

	reviewsTotal int64

	insertDownloadErr   error
	insertReviewErr     error
	insertSubscriberErr error
	getReviewsErr       error
	countDownloadsErr   error
	countReviewsErr     error
	countSubscribersErr error

	// When set, InsertDownload blocks until the channel is closed.
	insertDownloadGate chan struct{}
}

func (s *fakeStore) InsertDownload(download *mongo.Download) error {

	if s.insertDownloadGate != nil {
		<-s.insertDownloadGate
	}

	if s.insertDownloadErr != nil {
		return s.insertDownloadErr
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.downloads = append(s.downloads, *download)
	return nil
}

func (s *fakeStore) GetDownloads(offset int64, limit int64) ([]mongo.Download, int64, error) {

	s.lock.Lock()
	defer s.lock.Unlock()
	return s.downloads, int64(len(s.downloads)), nil
}

func (s *fakeStore) CountDownloads(appID string) (int64, error) {

	if s.countDownloadsErr != nil {
		return 0, s.countDownloadsErr
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if appID == "" {
		return int64(len(s.downloads)), nil
	}

	var count int64
	for _, download := range s.downloads {
		if download.AppID == appID {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) InsertReview(review *mongo.Review) error {

	if s.insertReviewErr != nil {
		return s.insertReviewErr
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.reviews = append(s.reviews, *review)
	return nil
}

func (s *fakeStore) GetReviews(appID string, limit int64) ([]mongo.Review, int64, error) {

	if s.getReviewsErr != nil {
		return nil, 0, s.getReviewsErr
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	total := s.reviewsTotal
	if total == 0 {
		total = int64(len(s.reviews))
	}
	return s.reviews, total, nil
}

func (s *fakeStore) CountReviews(appID string) (int64, error) {

	if s.countReviewsErr != nil {
		return 0, s.countReviewsErr
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	return int64(len(s.reviews)), nil
}

func (s *fakeStore) InsertSubscriber(subscriber *mongo.Subscriber) error {

	if s.insertSubscriberErr != nil {
		return s.insertSubscriberErr
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.subscribers = append(s.subscribers, *subscriber)
	return nil
}

func (s *fakeStore) GetSubscribers(offset int64, limit int64) ([]mongo.Subscriber, int64, error) {

	s.lock.Lock()
	defer s.lock.Unlock()
	return s.subscribers, int64(len(s.subscribers)), nil
}

func (s *fakeStore) CountSubscribers(email string) (int64, error) {

	if s.countSubscribersErr != nil {
		return 0, s.countSubscribersErr
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if email == "" {
		return int64(len(s.subscribers)), nil
	}

	var count int64
	for _, subscriber := range s.subscribers {
		if subscriber.Email == email {
			count++
		}
	}
	return count, nil
}

type fakeKV struct {
	values map[string]string
	setErr error
}

func (kv *fakeKV) Get(key string) (string, error) {
	return kv.values[key], nil
}

func (kv *fakeKV) Set(key string, value string, expiration uint32) error {

	if kv.setErr != nil {
		return kv.setErr
	}

	if kv.values == nil {
		kv.values = map[string]string{}
	}
	kv.values[key] = value
	return nil
}

func newTestPortal(store *fakeStore) *Portal {
	return New(store, NewFallbackList(&fakeKV{}), Delays{})
}

func TestGetSummary(t *testing.T) {

	store := &fakeStore{
		downloads:   []mongo.Download{{AppID: "echofy"}, {AppID: "echofy"}},
		reviews:     []mongo.Review{{AppID: "echofy"}},
		subscribers: []mongo.Subscriber{{Email: "a@b.com"}},
	}

	summary := newTestPortal(store).GetSummary()

	if summary.TotalDownloads != 2 {
		t.Error(summary.TotalDownloads)
	}
	if summary.TotalSubscribers != 1 {
		t.Error(summary.TotalSubscribers)
	}
	if summary.TotalReviews != 1 {
		t.Error(summary.TotalReviews)
	}
}

func TestGetSummaryDegradesToZeros(t *testing.T) {

	store := &fakeStore{
		downloads:           []mongo.Download{{AppID: "echofy"}},
		subscribers:         []mongo.Subscriber{{Email: "a@b.com"}},
		countSubscribersErr: errStoreDown,
	}

	summary := newTestPortal(store).GetSummary()

	if summary != (Summary{}) {
		t.Error("one failing counter should zero the whole summary", summary)
	}
}

func TestCountDownloadsDegradesToZero(t *testing.T) {

	store := &fakeStore{countDownloadsErr: errStoreDown}

	if count := newTestPortal(store).CountDownloads("echofy"); count != 0 {
		t.Error(count)
	}
}
