package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"eccli/crypto"
	"eccli/models"
	"eccli/util/parser"
)

// FetchInput downloads and decrypts the personal puzzle input for one
// part. A decryption failure on cached keys triggers a single key
// refresh and retry.
func (c *Client) FetchInput(ctx context.Context, quest models.Quest) (string, error) {
	seed, err := c.GetUserSeed(ctx)
	if err != nil {
		return "", err
	}

	keys, fromCache, err := c.questKeys(ctx, quest.Year, quest.Day, false)
	if err != nil {
		return "", err
	}

	key, err := crypto.SelectKey(keys, quest.Part)
	if errors.Is(err, crypto.ErrKeyNotAvailable) && fromCache {
		// the part may have unlocked since the keys were cached
		keys, fromCache, err = c.questKeys(ctx, quest.Year, quest.Day, true)
		if err != nil {
			return "", err
		}
		key, err = crypto.SelectKey(keys, quest.Part)
	}
	if err != nil {
		return "", err
	}

	zap.S().Infof("downloading encrypted input for %s", quest)
	path := fmt.Sprintf("/%d/%d/input/%d.json", quest.Year, quest.Day, seed)
	fetch := func() (string, error) {
		body, err := c.cdnGet(ctx, path)
		if err != nil {
			return "", err
		}
		return extractEncryptedInput(body, quest.Part)
	}

	plaintext, err := crypto.ObtainPlaintext(fetch, key)
	if errors.Is(err, crypto.ErrInvalidPadding) && fromCache {
		zap.S().Debug("cached key failed the padding check, refreshing keys")
		keys, _, err = c.questKeys(ctx, quest.Year, quest.Day, true)
		if err != nil {
			return "", err
		}
		key, err = crypto.SelectKey(keys, quest.Part)
		if err != nil {
			return "", err
		}
		plaintext, err = crypto.ObtainPlaintext(fetch, key)
	}
	if err != nil {
		return "", err
	}
	return plaintext, nil
}

// FetchDescription downloads the quest description and decrypts every
// part a key has been issued for, joined by part banners.
func (c *Client) FetchDescription(ctx context.Context, year, day int) (string, error) {
	keys, fromCache, err := c.questKeys(ctx, year, day, false)
	if err != nil {
		return "", err
	}

	zap.S().Infof("downloading encrypted description for %d/%d", year, day)
	body, err := c.cdnGet(ctx, fmt.Sprintf("/%d/%d/description.json", year, day))
	if err != nil {
		return "", err
	}

	combined, err := assembleDescription(body, keys)
	if errors.Is(err, crypto.ErrInvalidPadding) && fromCache {
		zap.S().Debug("cached keys failed the padding check, refreshing")
		keys, _, err = c.questKeys(ctx, year, day, true)
		if err != nil {
			return "", err
		}
		combined, err = assembleDescription(body, keys)
	}
	if err != nil {
		return "", err
	}
	return combined, nil
}

// extractEncryptedInput pulls the ciphertext for one part out of the
// CDN payload. Inputs are JSON objects keyed by part number; very old
// events served a single bare JSON string instead.
func extractEncryptedInput(body string, part int) (string, error) {
	trimmed := strings.TrimSpace(body)
	if strings.HasPrefix(trimmed, "{") {
		encrypted := gjson.Get(trimmed, strconv.Itoa(part))
		if !encrypted.Exists() {
			return "", fmt.Errorf("input has no part %d (not unlocked yet?)", part)
		}
		return encrypted.String(), nil
	}
	return strings.Trim(trimmed, `"`), nil
}

func assembleDescription(body string, keys *models.QuestKeys) (string, error) {
	var combined strings.Builder
	for part := models.MinPart; part <= models.MaxPart; part++ {
		if !keys.HasPart(part) {
			continue
		}
		encrypted := gjson.Get(body, strconv.Itoa(part))
		if !encrypted.Exists() {
			continue
		}
		zap.S().Debugf("decrypting description part %d", part)
		key, err := crypto.SelectKey(keys, part)
		if err != nil {
			return "", err
		}
		plaintext, err := crypto.Decrypt(encrypted.String(), key)
		if err != nil {
			return "", fmt.Errorf("description part %d: %w", part, err)
		}
		if combined.Len() > 0 {
			combined.WriteString(parser.PartBanner(part))
		}
		combined.WriteString(plaintext)
	}
	return combined.String(), nil
}
