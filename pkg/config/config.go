package config

import (
	"errors"
	"os"
)

const EnvProd = "production"
const EnvLocal = "local"

const prefix = "APPFOLIO_"

var C BaseConfig

type BaseConfig struct {
	Environment  string
	FrontendPort string
	Domain       string
	ShortName    string
	AdminKey     string

	// Mongo
	MongoHost     string
	MongoPort     string
	MongoUsername string
	MongoPassword string
	MongoDatabase string

	// Memcache
	MemcacheDSN      string
	MemcacheUsername string
	MemcachePassword string

	// Sessions
	SessionAuthentication string
	SessionEncryption     string

	CommitHash string
}

func Init(version string) error {

	C.Environment = env("ENV", EnvLocal)
	C.FrontendPort = env("PORT", "")
	C.Domain = env("DOMAIN", "")
	C.ShortName = env("SHORT_NAME", "Appfolio")
	C.AdminKey = env("ADMIN_KEY", "")

	C.MongoHost = env("MONGO_HOST", "")
	C.MongoPort = env("MONGO_PORT", "27017")
	C.MongoUsername = env("MONGO_USERNAME", "")
	C.MongoPassword = env("MONGO_PASSWORD", "")
	C.MongoDatabase = env("MONGO_DATABASE", "appfolio")

	C.MemcacheDSN = env("MEMCACHE_DSN", "")
	C.MemcacheUsername = env("MEMCACHE_USERNAME", "")
	C.MemcachePassword = env("MEMCACHE_PASSWORD", "")

	C.SessionAuthentication = env("SESSION_AUTHENTICATION", "")
	C.SessionEncryption = env("SESSION_ENCRYPTION", "")

	C.CommitHash = version
	if IsLocal() && C.CommitHash == "" {
		C.CommitHash = "local"
	}

	switch C.Environment {
	case EnvProd:

	case EnvLocal:

		if C.FrontendPort == "" {
			C.FrontendPort = "8081"
		}
		if C.Domain == "" {
			C.Domain = "http://localhost:" + C.FrontendPort
		}
		if C.MongoHost == "" {
			C.MongoHost = "localhost"
		}
		if C.MemcacheDSN == "" {
			C.MemcacheDSN = "localhost:11211"
		}

	default:
		return errors.New("unknown environment: " + C.Environment)
	}

	return nil
}

func env(key string, fallback string) string {

	if val := os.Getenv(prefix + key); val != "" {
		return val
	}
	return fallback
}

func MongoDSN() string {
	return "mongodb://" + C.MongoHost + ":" + C.MongoPort
}

func ListenOn() string {
	return "0.0.0.0:" + C.FrontendPort
}

func IsLocal() bool {
	return C.Environment == EnvLocal
}

func IsProd() bool {
	return C.Environment == EnvProd
}

func GetShortVersion() string {

	hash := C.CommitHash
	if len(hash) > 7 {
		hash = hash[0:7]
	}
	return hash
}
