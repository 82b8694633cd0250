package config

import (
	"fmt"
	"os"
	"strconv"

	"eccli/models"
)

// Version is reported by --version and sent in the User-Agent header.
const Version = "0.2.0"

var Env = GetDefaultConfig()

func LoadEnv() error {
	if value := os.Getenv("EC_BASE_URL"); value != "" {
		Env.BaseURL = value
	}
	if value := os.Getenv("EC_CDN_URL"); value != "" {
		Env.CDNURL = value
	}
	if value := os.Getenv("EC_COOKIE"); value != "" {
		Env.Cookie = value
	}
	if value := os.Getenv("EC_COOKIE_FILE"); value != "" {
		Env.CookieFile = value
	}
	if value := os.Getenv("EC_DATA_DIR"); value != "" {
		Env.DataDir = value
	}
	if value := os.Getenv("EC_USER_AGENT"); value != "" {
		Env.UserAgent = value
	}
	if value := os.Getenv("EC_HTTP3"); value != "" {
		http3, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("EC_HTTP3: %q is not a valid boolean", value)
		}
		Env.HTTP3 = http3
	}
	if value := os.Getenv("HTTP_PROXY"); value != "" {
		Env.HTTPProxy = value
	}
	if value := os.Getenv("HTTPS_PROXY"); value != "" {
		Env.HTTPSProxy = value
	}
	if value := os.Getenv("NO_PROXY"); value != "" {
		Env.NoProxy = value
	}
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		Env.LogLevel = value
	}
	return nil
}

func GetDefaultConfig() *models.EnvConfig {
	return &models.EnvConfig{
		BaseURL:   "https://everybody.codes",
		CDNURL:    "https://everybody-codes.b-cdn.net/assets",
		DataDir:   "data",
		UserAgent: "eccli/" + Version,
		LogLevel:  "info",
	}
}
