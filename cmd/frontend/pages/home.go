package pages

import (
	"net/http"

	"github.com/chenkham/appfolio/pkg/catalog"
	"github.com/chenkham/appfolio/pkg/log"
	"github.com/chenkham/appfolio/pkg/memcache"
)

func HomeHandler(w http.ResponseWriter, r *http.Request) {

	t := homeTemplate{}
	t.fill(w, r, "Home", "Free, open-source apps and tools built for performance and utility.")
	t.Apps = catalog.Apps()
	t.DownloadCounts = map[string]int64{}
	t.Posts = homePosts

	for _, app := range t.Apps {
		t.DownloadCounts[app.ID] = appDownloadCount(app.ID)
	}

	returnTemplate(w, r, "home", t)
}

type homeTemplate struct {
	globalTemplate
	Apps           []catalog.App
	DownloadCounts map[string]int64
	Posts          []homePost
}

type homePost struct {
	Icon        string
	Title       string
	Description string
}

var homePosts = []homePost{
	{Icon: "code", Title: "Open Source Philosophy", Description: "All our applications are open source and free. We believe in transparency and community-driven development."},
	{Icon: "zap", Title: "Performance First", Description: "Built with the latest Android technologies and optimized for smooth performance even on older devices."},
	{Icon: "heart", Title: "User-Centric Design", Description: "Material Design 3 with dynamic theming provides a modern, beautiful, and accessible user experience."},
	{Icon: "shield", Title: "Privacy Focused", Description: "We collect minimal data to improve our apps, but we never share your information with third parties. Your privacy matters."},
}

// appDownloadCount reads the per-app counter through memcache. The counter is
// best-effort; a store failure shows as zero.
func appDownloadCount(appID string) (count int64) {

	item := memcache.ItemAppDownloadCount(appID)

	err := memcache.GetSetInterface(item.Key, item.Expiration, &count, func() (interface{}, error) {
		return core.CountDownloads(appID), nil
	})
	if err != nil {
		log.ErrS(err)
	}

	return count
}
