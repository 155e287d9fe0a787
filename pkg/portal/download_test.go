package portal

import (
	"encoding/json"
	"testing"
	"time"
)

const testFileURL = "https://example.com/app.apk"

func TestSubmitDownloadFormStoresAndOpens(t *testing.T) {

	store := &fakeStore{}
	p := newTestPortal(store)

	var opened string
	p.SubmitDownloadForm(DownloadForm{
		Name:     "Alice",
		Email:    "alice@example.com",
		Location: "Paris",
		AppID:    "echofy",
		AppName:  "Echofy",
	}, testFileURL, func(url string) { opened = url })

	if opened != testFileURL {
		t.Error(opened)
	}

	if len(store.downloads) != 1 {
		t.Fatal(len(store.downloads))
	}

	download := store.downloads[0]
	if download.Name != "Alice" || download.Email != "alice@example.com" || download.AppID != "echofy" {
		t.Error(download)
	}
	if download.CreatedAt.IsZero() {
		t.Error("created time not set")
	}
}

func TestSubmitDownloadFormFallsBackWhenStoreDown(t *testing.T) {

	store := &fakeStore{insertDownloadErr: errStoreDown}
	kv := &fakeKV{}
	p := New(store, NewFallbackList(kv), Delays{})

	var opened string
	p.SubmitDownloadForm(DownloadForm{
		Name:    "Bob",
		Email:   "bob@example.com",
		AppID:   "echofy",
		AppName: "Echofy",
	}, testFileURL, func(url string) { opened = url })

	// The user still gets the file
	if opened != testFileURL {
		t.Error(opened)
	}

	var entries []FallbackEntry
	err := json.Unmarshal([]byte(kv.values["downloads"]), &entries)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Fatal(len(entries))
	}
	if entries[0].Name != "Bob" || entries[0].AppID != "echofy" {
		t.Error(entries[0])
	}
	if entries[0].ID == "" {
		t.Error("entry has no ID")
	}
	if entries[0].Timestamp.IsZero() {
		t.Error("entry has no timestamp")
	}
}

func TestQuickDownloadDoesNotWaitForStore(t *testing.T) {

	gate := make(chan struct{})
	store := &fakeStore{insertDownloadGate: gate}
	p := newTestPortal(store)

	done := make(chan string, 1)
	go func() {
		var opened string
		p.QuickDownload("echofy", "Echofy", "quick", "test-agent", testFileURL, func(url string) { opened = url })
		done <- opened
	}()

	// The URL must open while the store write is still blocked
	select {
	case opened := <-done:
		if opened != testFileURL {
			t.Error(opened)
		}
	case <-time.After(time.Second):
		t.Fatal("quick download blocked on the store write")
	}

	close(gate)
}

func TestRecordDownloadAttempt(t *testing.T) {

	store := &fakeStore{}
	p := newTestPortal(store)

	p.RecordDownloadAttempt("echofy", "Echofy", "quick", "test-agent")

	// The write is async
	deadline := time.Now().Add(time.Second)
	for {
		store.lock.Lock()
		count := len(store.downloads)
		store.lock.Unlock()

		if count == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("download attempt never stored")
		}
		time.Sleep(time.Millisecond)
	}

	store.lock.Lock()
	download := store.downloads[0]
	store.lock.Unlock()

	if download.Source != "quick" || download.AppID != "echofy" || download.UserAgent != "test-agent" {
		t.Error(download)
	}
	if download.Name != "" || download.Email != "" {
		t.Error("quick download should not carry personal fields")
	}
}
