package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPAddr     string
	StoreDSN     string
	Secret       string
	ClientSecret string
	AuthSubject  string
	KeyName      string
}

func Load() Config {
	cfg := Config{
		HTTPAddr:     getEnv("TASKMASTER_HTTP_ADDR", ":8000"),
		StoreDSN:     getEnv("TASKMASTER_STORE_DSN", "file:taskmaster.db?cache=shared&mode=rwc"),
		Secret:       getEnv("TASKMASTER_SECRET", "dev-secret-change"),
		ClientSecret: getEnv("TASKMASTER_CLIENT_SECRET", "dev-client-secret-change"),
		AuthSubject:  getEnv("TASKMASTER_AUTH_USER", "AUTH_USER"),
		KeyName:      getEnv("TASKMASTER_KEY_NAME", "access_token"),
	}
	if cfg.Secret == "dev-secret-change" {
		log.Println("WARNING: using development secret; set TASKMASTER_SECRET")
	}
	if cfg.ClientSecret == "dev-client-secret-change" {
		log.Println("WARNING: using development client secret; set TASKMASTER_CLIENT_SECRET")
	}
	return cfg
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
