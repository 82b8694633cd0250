package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"fmt"
	"unicode/utf8"
)

// Decrypt turns hex-encoded AES-128-CBC ciphertext into plaintext with
// a derived 16-byte key. The key doubles as the IV; that is the
// server's encryption scheme and must not be "fixed".
func Decrypt(ciphertextHex string, key []byte) (string, error) {
	if len(key) != KeySize {
		return "", fmt.Errorf("%w: got %d bytes, need %d", ErrKeyTooShort, len(key), KeySize)
	}
	ciphertext := make([]byte, hex.DecodedLen(len(ciphertextHex)))
	n, err := hex.Decode(ciphertext, []byte(ciphertextHex))
	if err != nil {
		return "", fmt.Errorf("%w: %v near offset %d (input length %d)", ErrHexDecode, err, 2*n, len(ciphertextHex))
	}
	ciphertext = ciphertext[:n]
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: got %d bytes", ErrCiphertextLength, len(ciphertext))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create AES cipher: %w", err)
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, key).CryptBlocks(plaintext, ciphertext)

	unpadded, err := removePKCS7Padding(plaintext)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(unpadded) {
		return "", fmt.Errorf("%w: %d bytes after unpadding", ErrInvalidUTF8, len(unpadded))
	}
	return string(unpadded), nil
}

// DecryptString decrypts with a raw quest key string, deriving the
// 16-byte key first.
func DecryptString(ciphertextHex, keyString string) (string, error) {
	key, err := DeriveKey(keyString)
	if err != nil {
		return "", err
	}
	return Decrypt(ciphertextHex, key)
}

// EncryptString is the exact inverse of DecryptString: PKCS#7 pad,
// AES-128-CBC encrypt with the derived key as IV, hex encode. The
// output is deterministic for a given key, which makes it usable for
// test fixtures.
func EncryptString(plaintext, keyString string) (string, error) {
	key, err := DeriveKey(keyString)
	if err != nil {
		return "", err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create AES cipher: %w", err)
	}
	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, key).CryptBlocks(ciphertext, padded)
	return hex.EncodeToString(ciphertext), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - (len(data) % blockSize)
	padtext := bytes.Repeat([]byte{byte(padding)}, padding)
	return append(data, padtext...)
}

// removes PKCS#7 padding, validating every pad byte; a mismatch is the
// primary signal that the wrong key was used
func removePKCS7Padding(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no data", ErrInvalidPadding)
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > aes.BlockSize {
		return nil, fmt.Errorf("%w: pad length %d", ErrInvalidPadding, padding)
	}
	if padding > len(data) {
		return nil, fmt.Errorf("%w: pad length %d exceeds data length %d", ErrInvalidPadding, padding, len(data))
	}
	for i := len(data) - padding; i < len(data); i++ {
		if data[i] != byte(padding) {
			return nil, fmt.Errorf("%w: byte mismatch at position %d", ErrInvalidPadding, i)
		}
	}
	return data[:len(data)-padding], nil
}
