package crypto

import (
	"crypto/aes"
	"fmt"

	"eccli/models"
)

// KeySize is the AES-128 key length. The platform reuses the key bytes
// verbatim as the CBC initialization vector, so there is no separate IV
// anywhere in this package.
const KeySize = aes.BlockSize

// DeriveKey takes the first 16 raw bytes of a quest key string. Key
// strings are used as-is even when they happen to be printable hex;
// they are never hex-decoded.
func DeriveKey(keyString string) ([]byte, error) {
	raw := []byte(keyString)
	if len(raw) < KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrKeyTooShort, len(raw), KeySize)
	}
	return raw[:KeySize], nil
}

// SelectKey resolves the decryption key for one part of a quest.
// Part 1 maps to Key1, 2 to Key2, 3 to Key3, nothing else; the caller
// validates the part upstream, so any other value is a programming
// error and reported as one.
func SelectKey(keys *models.QuestKeys, part int) ([]byte, error) {
	var raw string
	switch part {
	case 1:
		raw = keys.Key1
	case 2:
		if !keys.Key2.Valid {
			return nil, fmt.Errorf("%w: part 2", ErrKeyNotAvailable)
		}
		raw = keys.Key2.String
	case 3:
		if !keys.Key3.Valid {
			return nil, fmt.Errorf("%w: part 3", ErrKeyNotAvailable)
		}
		raw = keys.Key3.String
	default:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPart, part)
	}
	key, err := DeriveKey(raw)
	if err != nil {
		return nil, fmt.Errorf("part %d: %w", part, err)
	}
	return key, nil
}
