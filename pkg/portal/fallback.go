package portal

import (
	"encoding/json"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
)

const fallbackKey = "downloads"

// KeyValue is the string store backing the fallback list. Get returns an
// empty value and no error for a missing key.
type KeyValue interface {
	Get(key string) (string, error)
	Set(key string, value string, expiration uint32) error
}

type FallbackEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Location  string    `json:"location"`
	AppID     string    `json:"appId"`
	AppName   string    `json:"appName"`
	Timestamp time.Time `json:"timestamp"`
}

func (entry FallbackEntry) GetTimestampNice() string {
	return entry.Timestamp.Format("02 Jan 2006 15:04")
}

// FallbackList keeps download-form submissions that could not reach the
// document store, as a JSON array under one fixed key. Append-only, no cap,
// no expiry.
type FallbackList struct {
	kv   KeyValue
	lock sync.Mutex
}

func NewFallbackList(kv KeyValue) *FallbackList {
	return &FallbackList{kv: kv}
}

func (f *FallbackList) Append(form DownloadForm) error {

	f.lock.Lock()
	defer f.lock.Unlock()

	entries, err := f.read()
	if err != nil {
		return err
	}

	entries = append(entries, FallbackEntry{
		ID:        uuid.NewV4().String(),
		Name:      form.Name,
		Email:     form.Email,
		Location:  form.Location,
		AppID:     form.AppID,
		AppName:   form.AppName,
		Timestamp: time.Now(),
	})

	b, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	return f.kv.Set(fallbackKey, string(b), 0)
}

// Entries returns the saved submissions, newest first.
func (f *FallbackList) Entries() ([]FallbackEntry, error) {

	f.lock.Lock()
	defer f.lock.Unlock()

	entries, err := f.read()
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	return entries, nil
}

func (f *FallbackList) read() (entries []FallbackEntry, err error) {

	val, err := f.kv.Get(fallbackKey)
	if err != nil {
		return entries, err
	}

	if val == "" {
		return entries, nil
	}

	err = json.Unmarshal([]byte(val), &entries)
	return entries, err
}
