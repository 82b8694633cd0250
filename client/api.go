package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"eccli/database"
	"eccli/models"
)

// GetUserSeed returns the account's seed, which selects the per-user
// input file on the CDN. Fetched once per process.
func (c *Client) GetUserSeed(ctx context.Context) (int, error) {
	c.mu.Lock()
	if c.userSeed != nil {
		seed := *c.userSeed
		c.mu.Unlock()
		return seed, nil
	}
	c.mu.Unlock()

	result, err, _ := c.group.Do("user-seed", func() (any, error) {
		return c.fetchUserSeed(ctx)
	})
	if err != nil {
		return 0, err
	}
	seed := result.(int)

	c.mu.Lock()
	c.userSeed = &seed
	c.mu.Unlock()
	return seed, nil
}

func (c *Client) fetchUserSeed(ctx context.Context) (int, error) {
	zap.S().Info("fetching user seed")
	resp, err := c.apiGet(ctx, "/api/user/me")
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("failed to fetch user seed: status %d", resp.StatusCode)
	}

	var user models.User
	decoder := sonic.ConfigFastest.NewDecoder(resp.Body)
	if err := decoder.Decode(&user); err != nil {
		return 0, fmt.Errorf("failed to parse user response: %w", err)
	}
	zap.S().Debugf("user seed: %d", user.Seed)
	return user.Seed, nil
}

// FetchQuestKeys returns the decryption keys for a quest. Results come
// from the in-process cache, then the local database, then the API.
// Cached rows are trusted only once all three parts have unlocked;
// partial rows are re-fetched so newly opened parts show up.
func (c *Client) FetchQuestKeys(ctx context.Context, year, day int, forceRefresh bool) (*models.QuestKeys, error) {
	keys, _, err := c.questKeys(ctx, year, day, forceRefresh)
	return keys, err
}

// questKeys additionally reports whether the keys came from a cache,
// which decides if a failed decryption is worth a refresh-and-retry.
func (c *Client) questKeys(ctx context.Context, year, day int, forceRefresh bool) (*models.QuestKeys, bool, error) {
	cacheKey := fmt.Sprintf("%d/%d", year, day)

	if !forceRefresh {
		c.mu.Lock()
		keys, ok := c.keys[cacheKey]
		c.mu.Unlock()
		if ok {
			return keys, true, nil
		}

		if keys, err := database.GetQuestKeys(year, day); err == nil && keys.AvailableParts() == models.MaxPart {
			c.rememberKeys(cacheKey, keys)
			return keys, true, nil
		}
	}

	result, err, _ := c.group.Do("quest-keys/"+cacheKey, func() (any, error) {
		return c.fetchQuestKeys(ctx, year, day)
	})
	if err != nil {
		return nil, false, err
	}
	keys := result.(*models.QuestKeys)
	c.rememberKeys(cacheKey, keys)
	return keys, false, nil
}

func (c *Client) rememberKeys(cacheKey string, keys *models.QuestKeys) {
	c.mu.Lock()
	c.keys[cacheKey] = keys
	c.mu.Unlock()
}

func (c *Client) fetchQuestKeys(ctx context.Context, year, day int) (*models.QuestKeys, error) {
	zap.S().Infof("fetching quest keys for %d/%d", year, day)
	resp, err := c.apiGet(ctx, fmt.Sprintf("/api/event/%d/quest/%d", year, day))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch quest keys: status %d", resp.StatusCode)
	}

	var keys models.QuestKeys
	decoder := sonic.ConfigFastest.NewDecoder(resp.Body)
	if err := decoder.Decode(&keys); err != nil {
		return nil, fmt.Errorf("failed to parse quest keys: %w", err)
	}
	if keys.Key1 == "" {
		return nil, fmt.Errorf("quest keys response for %d/%d has no key1", year, day)
	}
	keys.Year = year
	keys.Day = day
	keys.FetchedAt = time.Now()

	if err := database.StoreQuestKeys(&keys); err != nil && !errors.Is(err, database.ErrUnavailable) {
		zap.S().Warnf("failed to cache quest keys: %v", err)
	}
	return &keys, nil
}

// SubmitAnswer posts an answer and records the verdict in the local
// submission history.
func (c *Client) SubmitAnswer(ctx context.Context, quest models.Quest, answer string) (*models.SubmitResponse, error) {
	zap.S().Infof("submitting answer for %s", quest)

	payload, err := sonic.Marshal(&models.AnswerPayload{Answer: answer})
	if err != nil {
		return nil, fmt.Errorf("failed to encode answer: %w", err)
	}
	url := fmt.Sprintf("%s/api/event/%d/quest/%d/part/%d/answer",
		c.baseURL, quest.Year, quest.Day, quest.Part)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Cookie", c.cookieHeader())
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return nil, ErrAlreadySubmitted
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to submit answer: status %d", resp.StatusCode)
	}

	var submitResponse models.SubmitResponse
	decoder := sonic.ConfigFastest.NewDecoder(resp.Body)
	if err := decoder.Decode(&submitResponse); err != nil {
		return nil, fmt.Errorf("failed to parse submit response: %w", err)
	}

	submission := models.NewSubmission(quest, answer, &submitResponse)
	if err := database.StoreSubmission(submission); err != nil && !errors.Is(err, database.ErrUnavailable) {
		zap.S().Warnf("failed to record submission: %v", err)
	}
	return &submitResponse, nil
}
