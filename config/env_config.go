package config

import (
	"os"
	"strings"
)

type EnvConfig struct {
	Server struct {
		Port string
	}
	Postgres struct {
		Host     string
		Database string
		Username string
		Password string
		Port     string
	}
	CORS struct {
		AllowDomains string
	}
	Upload struct {
		BaseDir string
	}
	Profile struct {
		Nama      string
		Email     string
		Github    string
		PhotoPath string
	}
	Observability struct {
		OTLPEndpoint string
		ServiceName  string
	}
	Environment struct {
		Mode string
	}
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	config.Server.Port = os.Getenv("SERVER_PORT")
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}

	// Postgres
	config.Postgres.Host = os.Getenv("POSTGRES_HOST")
	if config.Postgres.Host == "" {
		config.Postgres.Host = "localhost"
	}
	config.Postgres.Database = os.Getenv("POSTGRES_DB")
	if config.Postgres.Database == "" {
		config.Postgres.Database = "angkasa"
	}
	config.Postgres.Username = os.Getenv("POSTGRES_USER")
	if config.Postgres.Username == "" {
		config.Postgres.Username = "postgres"
	}
	config.Postgres.Password = os.Getenv("POSTGRES_PASSWORD")
	config.Postgres.Port = os.Getenv("POSTGRES_PORT")
	if config.Postgres.Port == "" {
		config.Postgres.Port = "5432"
	}

	config.CORS.AllowDomains = os.Getenv("ALLOWED_DOMAINS")

	config.Upload.BaseDir = os.Getenv("UPLOAD_DIR")
	if config.Upload.BaseDir == "" {
		config.Upload.BaseDir = "uploads"
	}

	config.Profile.Nama = os.Getenv("PROFILE_NAMA")
	if config.Profile.Nama == "" {
		config.Profile.Nama = "Glen Rejeki Sitorus"
	}
	config.Profile.Email = os.Getenv("PROFILE_EMAIL")
	config.Profile.Github = os.Getenv("PROFILE_GITHUB")
	config.Profile.PhotoPath = os.Getenv("PROFILE_PHOTO_PATH")
	if config.Profile.PhotoPath == "" {
		config.Profile.PhotoPath = "uploads/profile/photo.jpg"
	}

	// OpenTelemetry log export stays disabled unless an endpoint is set.
	endpoint := os.Getenv("OTLP_ENDPOINT")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	config.Observability.OTLPEndpoint = endpoint

	config.Observability.ServiceName = os.Getenv("SERVICE_NAME")
	if config.Observability.ServiceName == "" {
		config.Observability.ServiceName = "angkasa-api"
	}

	config.Environment.Mode = os.Getenv("DEPLOY_ENV")
	if config.Environment.Mode == "" {
		config.Environment.Mode = "development"
	}

	return &config
}
