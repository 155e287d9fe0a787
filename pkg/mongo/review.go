package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	AppID     string             `bson:"app_id"`
	UserName  string             `bson:"user_name"`
	Rating    int                `bson:"rating"` // 1 to 5
	Comment   string             `bson:"comment"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (review Review) BSON() interface{} {

	return M{
		"app_id":     review.AppID,
		"user_name":  review.UserName,
		"rating":     review.Rating,
		"comment":    review.Comment,
		"created_at": review.CreatedAt,
	}
}

func (review Review) GetCreatedNice() string {
	return review.CreatedAt.Format("02 Jan 2006")
}

func (review Review) GetRatingLabel() string {

	switch review.Rating {
	case 1:
		return "Poor"
	case 2:
		return "Fair"
	case 3:
		return "Good"
	case 4:
		return "Very Good"
	case 5:
		return "Excellent"
	default:
		return ""
	}
}

func (s *Store) InsertReview(review *Review) error {

	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	return s.insertDocument(CollectionReviews, review)
}

func (s *Store) GetReviews(appID string, limit int64) (reviews []Review, total int64, err error) {

	filter := M{"app_id": appID}

	total, err = s.countDocuments(CollectionReviews, filter)
	if err != nil {
		return reviews, total, err
	}

	err = s.getDocuments(CollectionReviews, filter, M{"created_at": -1}, 0, limit, func(cur *mongo.Cursor) error {

		var review Review
		err := cur.Decode(&review)
		if err != nil {
			return err
		}
		reviews = append(reviews, review)
		return nil
	})

	return reviews, total, err
}

func (s *Store) CountReviews(appID string) (int64, error) {

	filter := M{}
	if appID != "" {
		filter["app_id"] = appID
	}

	return s.countDocuments(CollectionReviews, filter)
}
