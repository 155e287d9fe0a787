package mongo

import (
	"time"

	"github.com/chenkham/appfolio/pkg/helpers"
	"github.com/mssola/user_agent"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Download is one recorded download attempt. Personal fields are only present
// on form-based downloads; quick downloads carry just the app and a source
// label. Records are write-once.
type Download struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name,omitempty"`
	Email     string             `bson:"email,omitempty"`
	Location  string             `bson:"location,omitempty"`
	AppID     string             `bson:"app_id"`
	AppName   string             `bson:"app_name"`
	Source    string             `bson:"source,omitempty"`
	UserAgent string             `bson:"user_agent,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (download Download) BSON() interface{} {

	ret := M{
		"app_id":     download.AppID,
		"app_name":   download.AppName,
		"created_at": download.CreatedAt,
	}

	if download.Name != "" {
		ret["name"] = download.Name
	}
	if download.Email != "" {
		ret["email"] = download.Email
	}
	if download.Location != "" {
		ret["location"] = download.Location
	}
	if download.Source != "" {
		ret["source"] = download.Source
	}
	if download.UserAgent != "" {
		ret["user_agent"] = download.UserAgent
	}

	return ret
}

func (download Download) GetCreatedNice() string {
	return download.CreatedAt.Format("02 Jan 2006 15:04")
}

func (download Download) GetUserAgentShort() string {
	return helpers.TruncateString(download.UserAgent, 50, "&hellip;")
}

// GetBrowser returns a readable browser name for the admin table.
func (download Download) GetBrowser() string {

	if download.UserAgent == "" {
		return "-"
	}

	ua := user_agent.New(download.UserAgent)
	name, version := ua.Browser()
	if name == "" {
		return download.GetUserAgentShort()
	}
	return name + " " + version
}

func (download Download) GetSource() string {

	if download.Source == "" {
		return "form"
	}
	return download.Source
}

func (s *Store) InsertDownload(download *Download) error {

	if download.CreatedAt.IsZero() {
		download.CreatedAt = time.Now()
	}

	return s.insertDocument(CollectionDownloads, download)
}

func (s *Store) GetDownloads(offset int64, limit int64) (downloads []Download, total int64, err error) {

	total, err = s.countDocuments(CollectionDownloads, nil)
	if err != nil {
		return downloads, total, err
	}

	err = s.getDocuments(CollectionDownloads, nil, M{"created_at": -1}, offset, limit, func(cur *mongo.Cursor) error {

		var download Download
		err := cur.Decode(&download)
		if err != nil {
			return err
		}
		downloads = append(downloads, download)
		return nil
	})

	return downloads, total, err
}

func (s *Store) CountDownloads(appID string) (int64, error) {

	filter := M{}
	if appID != "" {
		filter["app_id"] = appID
	}

	return s.countDocuments(CollectionDownloads, filter)
}
