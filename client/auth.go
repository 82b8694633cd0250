package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"eccli/config"
	"eccli/util"
)

const cookieName = "everybody-codes"

// resolveCookie finds the session cookie: explicit config first, then a
// Netscape cookie jar, then the well-known cookie files.
func resolveCookie() (string, error) {
	if cookie := sanitizeCookie(config.Env.Cookie); cookie != "" {
		zap.S().Debug("using cookie from configuration")
		return cookie, nil
	}
	if config.Env.CookieFile != "" {
		return cookieFromJar(config.Env.CookieFile)
	}
	if home, err := os.UserHomeDir(); err == nil {
		if cookie, ok := cookieFromFile(filepath.Join(home, ".everybodycodes.cookie")); ok {
			return cookie, nil
		}
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		if cookie, ok := cookieFromFile(filepath.Join(configDir, "everybodycodes", "cookie")); ok {
			return cookie, nil
		}
	}
	return "", ErrMissingCookie
}

func cookieFromFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	cookie := sanitizeCookie(string(data))
	if cookie == "" {
		return "", false
	}
	zap.S().Debugf("loaded cookie from %s", path)
	return cookie, true
}

// cookieFromJar reads an explicitly configured cookie file, either a
// Netscape jar or a file holding the bare cookie value.
func cookieFromJar(path string) (string, error) {
	if cookies, err := util.ParseCookieFile(path); err == nil {
		for _, cookie := range cookies {
			if cookie.Name == cookieName {
				zap.S().Debugf("loaded cookie from jar %s", path)
				return cookie.Value, nil
			}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read cookie file: %w", err)
	}
	cookie := sanitizeCookie(string(data))
	if cookie == "" || strings.ContainsAny(cookie, " \t\n") {
		return "", fmt.Errorf("cookie file %s has no %s cookie", path, cookieName)
	}
	zap.S().Debugf("loaded cookie from %s", path)
	return cookie, nil
}

func sanitizeCookie(raw string) string {
	cookie := strings.TrimSpace(raw)
	// accept a pasted "everybody-codes=..." header pair
	return strings.TrimPrefix(cookie, cookieName+"=")
}
