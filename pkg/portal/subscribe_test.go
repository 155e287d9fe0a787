package portal

import (
	"testing"

	"github.com/chenkham/appfolio/pkg/mongo"
)

func TestSubscribe(t *testing.T) {

	store := &fakeStore{}

	result, err := newTestPortal(store).Subscribe("alice@example.com")
	if err != nil {
		t.Fatal(err)
	}

	if !result.Success || result.Message != "Successfully subscribed!" {
		t.Error(result)
	}

	if len(store.subscribers) != 1 {
		t.Fatal(len(store.subscribers))
	}
	if !store.subscribers[0].IsActive {
		t.Error("new subscriber should be active")
	}
	if store.subscribers[0].SubscribedAt.IsZero() {
		t.Error("subscribed time not set")
	}
}

func TestSubscribeDuplicate(t *testing.T) {

	store := &fakeStore{subscribers: []mongo.Subscriber{{Email: "alice@example.com"}}}

	result, err := newTestPortal(store).Subscribe("alice@example.com")
	if err != nil {
		t.Fatal(err)
	}

	if result.Success || result.Message != "Email already subscribed!" {
		t.Error(result)
	}
	if len(store.subscribers) != 1 {
		t.Error("duplicate should not be stored")
	}
}

func TestSubscribeInvalidEmail(t *testing.T) {

	p := newTestPortal(&fakeStore{})

	for _, email := range []string{"", "not-an-email", "@example.com"} {

		result, err := p.Subscribe(email)
		if err != nil {
			t.Fatal(err)
		}
		if result.Success {
			t.Error(email)
		}
		if result.Message != "Please enter a valid email address" {
			t.Error(result.Message)
		}
	}
}

func TestSubscribeStoreErrors(t *testing.T) {

	p := newTestPortal(&fakeStore{countSubscribersErr: errStoreDown})
	if _, err := p.Subscribe("alice@example.com"); err != errStoreDown {
		t.Error(err)
	}

	p = newTestPortal(&fakeStore{insertSubscriberErr: errStoreDown})
	if _, err := p.Subscribe("alice@example.com"); err != errStoreDown {
		t.Error(err)
	}
}
