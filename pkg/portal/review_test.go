package portal

import (
	"testing"

	"github.com/chenkham/appfolio/pkg/mongo"
)

func TestListReviewsAverage(t *testing.T) {

	store := &fakeStore{reviews: []mongo.Review{
		{AppID: "echofy", Rating: 5},
		{AppID: "echofy", Rating: 4},
		{AppID: "echofy", Rating: 5},
	}}

	list := newTestPortal(store).ListReviews("echofy", 20)

	if list.Total != 3 {
		t.Error(list.Total)
	}
	if list.Average != 4.7 {
		t.Error(list.Average)
	}
}

func TestListReviewsAverageCoversReturnedPageOnly(t *testing.T) {

	// 2 of 10 reviews returned, the mean only covers the 2
	store := &fakeStore{
		reviews:      []mongo.Review{{Rating: 5}, {Rating: 5}},
		reviewsTotal: 10,
	}

	list := newTestPortal(store).ListReviews("echofy", 2)

	if list.Total != 10 {
		t.Error(list.Total)
	}
	if list.Average != 5 {
		t.Error(list.Average)
	}
}

func TestListReviewsEmpty(t *testing.T) {

	list := newTestPortal(&fakeStore{}).ListReviews("echofy", 20)

	if len(list.Reviews) != 0 || list.Total != 0 || list.Average != 0 {
		t.Error(list)
	}
}

func TestListReviewsDegradesWhenStoreDown(t *testing.T) {

	store := &fakeStore{getReviewsErr: errStoreDown}

	list := newTestPortal(store).ListReviews("echofy", 20)

	if len(list.Reviews) != 0 || list.Total != 0 || list.Average != 0 {
		t.Error(list)
	}
}

func TestSubmitReview(t *testing.T) {

	store := &fakeStore{}

	review, err := newTestPortal(store).SubmitReview("echofy", "Alice", 4, "Works great")
	if err != nil {
		t.Fatal(err)
	}

	if review.AppID != "echofy" || review.Rating != 4 {
		t.Error(review)
	}
	if review.CreatedAt.IsZero() {
		t.Error("created time not set")
	}
	if len(store.reviews) != 1 {
		t.Error(len(store.reviews))
	}
}

func TestSubmitReviewValidation(t *testing.T) {

	p := newTestPortal(&fakeStore{})

	if _, err := p.SubmitReview("echofy", "", 4, "Comment"); err != ErrMissingFields {
		t.Error(err)
	}
	if _, err := p.SubmitReview("echofy", "Alice", 4, "  "); err != ErrMissingFields {
		t.Error(err)
	}
	if _, err := p.SubmitReview("echofy", "Alice", 0, "Comment"); err != ErrInvalidRating {
		t.Error(err)
	}
	if _, err := p.SubmitReview("echofy", "Alice", 6, "Comment"); err != ErrInvalidRating {
		t.Error(err)
	}
}

func TestSubmitReviewStoreError(t *testing.T) {

	store := &fakeStore{insertReviewErr: errStoreDown}

	_, err := newTestPortal(store).SubmitReview("echofy", "Alice", 4, "Comment")
	if err != errStoreDown {
		t.Error(err)
	}
}
