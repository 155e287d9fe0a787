package portal

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/chenkham/appfolio/pkg/log"
	"github.com/chenkham/appfolio/pkg/mongo"
	"go.uber.org/zap"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrMissingFields = errors.New("name and comment are required")
)

type ReviewList struct {
	Reviews []mongo.Review `json:"documents"`
	Total   int64          `json:"total"`
	Average float64        `json:"average"`
}

// ListReviews returns the newest reviews for an app plus the total count and
// the mean rating of the returned page, rounded to one decimal. A store
// failure degrades to an empty list.
func (p *Portal) ListReviews(appID string, limit int64) ReviewList {

	reviews, total, err := p.store.GetReviews(appID, limit)
	if err != nil {
		log.Err("fetching reviews", zap.Error(err), zap.String("app", appID))
		return ReviewList{}
	}

	var average float64
	if len(reviews) > 0 {

		var sum int
		for _, review := range reviews {
			sum += review.Rating
		}

		average = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	}

	return ReviewList{
		Reviews: reviews,
		Total:   total,
		Average: average,
	}
}

func (p *Portal) SubmitReview(appID string, userName string, rating int, comment string) (*mongo.Review, error) {

	if strings.TrimSpace(userName) == "" || strings.TrimSpace(comment) == "" {
		return nil, ErrMissingFields
	}

	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	review := &mongo.Review{
		AppID:     appID,
		UserName:  userName,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}

	err := p.store.InsertReview(review)
	if err != nil {
		return nil, err
	}

	return review, nil
}
