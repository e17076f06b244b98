package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Mail struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		AdminEmail   string `yaml:"admin_email"`
		Enabled      bool   `yaml:"enabled"`
	} `yaml:"mail"`

	Storage struct {
		Type      string `yaml:"type"`       // local, minio
		BasePath  string `yaml:"base_path"`  // local only
		Bucket    string `yaml:"bucket"`     // minio only
		Endpoint  string `yaml:"endpoint"`   // minio only
		AccessKey string `yaml:"access_key"` // minio only
		SecretKey string `yaml:"secret_key"` // minio only
		UseSSL    bool   `yaml:"use_ssl"`
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"` // bytes
		AllowedTypes []string `yaml:"allowed_types"`
	} `yaml:"upload"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or, when DATABASE_URL is set (test and
// container deployments), builds the config from environment variables.
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"image/jpeg", "image/png", "image/webp", "application/pdf",
		}
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
