package crypto

import "fmt"

// ObtainPlaintext runs the fetch-then-decrypt pipeline for a single
// asset. Fetch failures pass through untouched so transport errors keep
// their own context; decrypt failures are tagged with the stage so
// callers can tell a download problem from a key problem.
func ObtainPlaintext(fetch func() (string, error), key []byte) (string, error) {
	ciphertextHex, err := fetch()
	if err != nil {
		return "", err
	}
	plaintext, err := Decrypt(ciphertextHex, key)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}
	return plaintext, nil
}
