package util

import (
	"fmt"
	"net/http"
	"os"

	"github.com/aki237/nscjar"
)

var cookiesCache = make(map[string][]*http.Cookie)

// ParseCookieFile reads a Netscape-format cookie jar, e.g. one exported
// by a browser extension. Parsed jars are cached per path.
func ParseCookieFile(path string) ([]*http.Cookie, error) {
	cachedCookies, ok := cookiesCache[path]
	if ok {
		return cachedCookies, nil
	}
	cookieFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cookie file: %w", err)
	}
	defer cookieFile.Close()

	var parser nscjar.Parser
	cookies, err := parser.Unmarshal(cookieFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cookie file: %w", err)
	}
	cookiesCache[path] = cookies
	return cookies, nil
}
