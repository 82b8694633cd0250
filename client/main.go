package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"golang.org/x/sync/singleflight"

	"eccli/config"
	"eccli/models"
	"eccli/util/networking"
)

// Client talks to the puzzle API (authenticated) and the asset CDN
// (anonymous). It is safe for concurrent use; seed and quest keys are
// fetched once and shared.
type Client struct {
	httpClient *http.Client
	cdnClient  *http.Client
	baseURL    string
	cdnURL     string
	userAgent  string
	cookie     string

	group singleflight.Group

	mu       sync.Mutex
	userSeed *int
	keys     map[string]*models.QuestKeys
}

func New() (*Client, error) {
	cookie, err := resolveCookie()
	if err != nil {
		return nil, err
	}
	return &Client{
		httpClient: networking.GetDefaultHTTPClient(),
		cdnClient:  networking.GetCDNHTTPClient(),
		baseURL:    config.Env.BaseURL,
		cdnURL:     config.Env.CDNURL,
		userAgent:  config.Env.UserAgent,
		cookie:     cookie,
		keys:       make(map[string]*models.QuestKeys),
	}, nil
}

func (c *Client) cookieHeader() string {
	return cookieName + "=" + c.cookie
}

func (c *Client) apiGet(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Cookie", c.cookieHeader())
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// cdnGet downloads one asset. CDN requests carry no cookie.
func (c *Client) cdnGet(ctx context.Context, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cdnURL+path, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.cdnClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrQuestNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch asset: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}
