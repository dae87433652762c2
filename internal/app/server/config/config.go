package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	MediaStoragePostgres = "postgres"
	MediaStorageS3       = "s3"
)

type Config struct {
	Env    string
	Server server
	DB     db
	OAuth  oauth
	SMTP   smtp
	Sweep  sweep
	Media  mediaStorage
}

type server struct {
	RunAddress   string
	SessionTTL   time.Duration
	DashboardURL string
}

type db struct {
	DatabaseURI string
	Migrations  string
}

type oauth struct {
	GoogleClientID     string
	GoogleClientSecret string
	CallbackURL        string
}

type smtp struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type sweep struct {
	// Cron spec for the unlock sweep. Hourly by default; any cadence finer
	// than a calendar day keeps the notification promise.
	Schedule string
}

type mediaStorage struct {
	Backend    string // postgres | s3
	S3Bucket   string
	S3Region   string
	S3Endpoint string
}

func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("run_address", ":8080")
	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("migrations_path", "migrations")
	viper.SetDefault("session_ttl", "24h")
	viper.SetDefault("cron_schedule", "0 * * * *")
	viper.SetDefault("smtp_port", 587)
	viper.SetDefault("media_storage", MediaStoragePostgres)
	viper.SetDefault("dashboard_url", "/dashboard.html")
	viper.SetDefault("s3_region", "us-east-1")

	return &Config{
		Env: viper.GetString("app_env"),
		Server: server{
			RunAddress:   viper.GetString("run_address"),
			SessionTTL:   viper.GetDuration("session_ttl"),
			DashboardURL: viper.GetString("dashboard_url"),
		},
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		OAuth: oauth{
			GoogleClientID:     viper.GetString("google_client_id"),
			GoogleClientSecret: viper.GetString("google_client_secret"),
			CallbackURL:        viper.GetString("oauth_callback_url"),
		},
		SMTP: smtp{
			Host:     viper.GetString("smtp_host"),
			Port:     viper.GetInt("smtp_port"),
			Username: viper.GetString("smtp_user"),
			Password: viper.GetString("smtp_pass"),
			From:     viper.GetString("email_from"),
		},
		Sweep: sweep{
			Schedule: viper.GetString("cron_schedule"),
		},
		Media: mediaStorage{
			Backend:    viper.GetString("media_storage"),
			S3Bucket:   viper.GetString("s3_bucket"),
			S3Region:   viper.GetString("s3_region"),
			S3Endpoint: viper.GetString("s3_endpoint"),
		},
	}
}
