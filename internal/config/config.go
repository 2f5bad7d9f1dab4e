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
		// TTL in hours; the API contract is a 1 day token.
		TTL int `yaml:"ttl"`
	} `yaml:"jwt"`

	Admin struct {
		// When both are set, a first admin account is seeded at startup.
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
}

var AppConfig *Config

// LoadConfig populates AppConfig. Environment variables win over config.yaml;
// when DATABASE_URL is set the yaml file is skipped entirely (CI / tests).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")
	serverEnv := os.Getenv("SERVER_ENV")
	portStr := os.Getenv("SERVER_PORT")
	jwtSecret := os.Getenv("JWT_SECRET")

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

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file: %v", err)
		}
	}

	if dbURL != "" {
		cfg.Database.DSN = dbURL
	}
	if serverEnv != "" {
		cfg.Server.Env = serverEnv
	}
	if portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			log.Fatalf("Invalid SERVER_PORT %q: %v", portStr, err)
		}
		cfg.Server.Port = port
	}
	if jwtSecret != "" {
		cfg.JWT.Secret = jwtSecret
	}
	if v := os.Getenv("ADMIN_NAME"); v != "" {
		cfg.Admin.Name = v
	}
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		cfg.Admin.Email = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}

	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 24
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT secret is not configured (set JWT_SECRET or jwt.secret)")
	}
	if cfg.Database.DSN == "" {
		log.Fatal("Database DSN is not configured (set DATABASE_URL or database.url)")
	}

	AppConfig = &cfg
}

// GetConfig returns the loaded configuration.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
