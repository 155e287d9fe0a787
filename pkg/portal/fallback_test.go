package portal

import (
	"testing"
)

func TestFallbackListEmpty(t *testing.T) {

	f := NewFallbackList(&fakeKV{})

	entries, err := f.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Error(entries)
	}
}

func TestFallbackListNewestFirst(t *testing.T) {

	f := NewFallbackList(&fakeKV{})

	for _, name := range []string{"first", "second", "third"} {
		err := f.Append(DownloadForm{Name: name, AppID: "echofy"})
		if err != nil {
			t.Fatal(err)
		}
	}

	entries, err := f.Entries()
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 3 {
		t.Fatal(len(entries))
	}
	if entries[0].Name != "third" || entries[2].Name != "first" {
		t.Error(entries)
	}
}

func TestFallbackListUniqueIDs(t *testing.T) {

	f := NewFallbackList(&fakeKV{})

	_ = f.Append(DownloadForm{Name: "a"})
	_ = f.Append(DownloadForm{Name: "b"})

	entries, err := f.Entries()
	if err != nil {
		t.Fatal(err)
	}

	if entries[0].ID == "" || entries[0].ID == entries[1].ID {
		t.Error(entries)
	}
}

func TestFallbackListSetError(t *testing.T) {

	f := NewFallbackList(&fakeKV{setErr: errStoreDown})

	err := f.Append(DownloadForm{Name: "a"})
	if err != errStoreDown {
		t.Error(err)
	}
}
