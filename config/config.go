package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"sailing-venues" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret string `default:"" env:"AUTH_JWT_SECRET"`
	}
	Osm struct {
		OverpassURL      string  `default:"https://overpass-api.de/api/interpreter" env:"OSM_OVERPASS_URL"`
		UserAgent        string  `default:"sailing-venues-backend/1.0" env:"OSM_USER_AGENT"`
		RatePerSecond    float64 `default:"1" env:"OSM_RATE_PER_SECOND"`
		RateBurst        int     `default:"1" env:"OSM_RATE_BURST"`
		QueryTimeoutSec  int     `default:"25" env:"OSM_QUERY_TIMEOUT_SEC"`
		ChunkSize        int     `default:"100" env:"OSM_CHUNK_SIZE"`
		ChunkParallelism int     `default:"2" env:"OSM_CHUNK_PARALLELISM"`
		CacheSize        int     `default:"512" env:"OSM_CACHE_SIZE"`
		CacheTTLMin      int     `default:"60" env:"OSM_CACHE_TTL_MIN"`
		RefreshEnabled   *bool   `default:"true" env:"OSM_REFRESH_ENABLED"`
		RefreshPeriodMin int     `default:"1440" env:"OSM_REFRESH_PERIOD_MIN"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		ExportBucket    string `default:"venue-exports" env:"S3_EXPORT_BUCKET"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Smtp struct {
		User        string `default:"" env:"SMTP_USER"`
		Password    string `default:"" env:"SMTP_PASSWORD"`
		Host        string `default:"" env:"SMTP_HOST"`
		Port        string `default:"" env:"SMTP_PORT"`
		TLSEnabled  *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		NotifyEmail string `default:"" env:"SMTP_NOTIFY_EMAIL"`
	}
	Preload struct {
		VenueDumpPath string `default:"./static_preload/sailing_venues.sql" env:"PRELOAD_VENUE_DUMP"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
