package catalog

import (
	"errors"

	"github.com/gosimple/slug"
)

var ErrNotFound = errors.New("app not found in catalog")

type Feature struct {
	Icon string
	Text string
}

// App is one entry in the static catalog. The portal is presentational; app
// metadata ships with the binary rather than living in the document store.
type App struct {
	ID          string
	Name        string
	Tagline     string
	Icon        string
	Description string
	Version     string
	FileSize    string
	LastUpdated string
	MinAndroid  string
	Features    []Feature
	Screenshots []string
	Changelog   []string
	DownloadURL string
	OpenSource  bool
	GithubURL   string
}

func (app App) GetPath() string {
	return "/apps/" + app.ID
}

func (app App) GetDownloadPath() string {
	return app.GetPath() + "/download"
}

func (app App) GetSlug() string {
	return slug.Make(app.Name)
}

var apps = []App{
	{
		ID:          "echofy",
		Name:        "Echofy",
		Tagline:     "An Open-Source, Ad-Free Music Streaming App.",
		Icon:        "/assets/img/echofy/logo.jpg",
		Description: "A free, open-source, and ad-free music streaming app. Enjoy a modern Material Design 3 interface with advanced features for streaming and managing your music.",
		Version:     "2.0.0",
		FileSize:    "8 MB",
		LastUpdated: "December 11, 2025",
		MinAndroid:  "Android 7.0+",
		Features: []Feature{
			{Icon: "youtube", Text: "YouTube Music Integration: Stream from YouTube Music library"},
			{Icon: "shield-off", Text: "Ad-Free Experience: Enjoy music without interruptions"},
			{Icon: "play", Text: "Background Playback: Listen while using other apps"},
			{Icon: "wifi-off", Text: "Offline Mode: Download songs for offline listening"},
			{Icon: "palette", Text: "Material Design 3: Modern interface with dynamic colors"},
			{Icon: "music", Text: "Lyrics Support: View synchronized lyrics while listening"},
			{Icon: "volume-2", Text: "Audio Normalization: Consistent volume across all tracks"},
			{Icon: "clock", Text: "Sleep Timer: Set a timer to stop playback"},
			{Icon: "list-plus", Text: "Custom Playlists: Create and manage your playlists locally"},
			{Icon: "list-ordered", Text: "Queue Management: Full control over your playback queue"},
		},
		Screenshots: []string{
			"echofy-player",
			"echofy-library",
			"echofy-home",
		},
		Changelog: []string{
			"We are constantly working to solve bugs. Stay tuned!",
			"Improved audio quality and stability",
			"Enhanced Material Design 3 implementation",
			"Better performance on older devices",
		},
		DownloadURL: "https://github.com/chenkham/Echofy-android-download/releases/download/Echofy/app-universal-release.apk",
		OpenSource:  true,
		GithubURL:   "https://github.com/Chenkham/Echofy",
	},
}

func Apps() []App {
	return apps
}

func Get(id string) (App, error) {

	for _, app := range apps {
		if app.ID == id {
			return app, nil
		}
	}

	return App{}, ErrNotFound
}
