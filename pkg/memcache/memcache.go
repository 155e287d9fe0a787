package memcache

import (
	"sync"

	"github.com/chenkham/appfolio/pkg/config"
	"github.com/chenkham/appfolio/pkg/log"
	"github.com/memcachier/mc/v3"
)

type Item struct {
	Key        string
	Expiration uint32 // Seconds, zero means no expiration
}

var (
	// Fallback list for download-form submissions when the document store is
	// unreachable. No expiry.
	ItemFallbackDownloads = Item{Key: "downloads", Expiration: 0}

	// Counters
	ItemAppDownloadCount = func(appID string) Item { return Item{Key: "app-download-count-" + appID, Expiration: 60 * 10} }
	ItemSummary          = Item{Key: "analytics-summary", Expiration: 60 * 10}
)

var lock sync.Mutex
var client *mc.Client

func getClient() *mc.Client {

	lock.Lock()
	defer lock.Unlock()

	if client == nil {

		if config.C.MemcacheDSN == "" {
			log.ErrS("Missing environment variables")
		}

		client = mc.NewMC(config.C.MemcacheDSN, config.C.MemcacheUsername, config.C.MemcachePassword)
	}

	return client
}
