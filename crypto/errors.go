package crypto

import "github.com/pkg/errors"

// Every failure here is deterministic: decrypting the same bytes with
// the same key always fails the same way, so none of these are worth a
// blind retry. ErrInvalidPadding is the signature of a stale or wrong
// key; the caller's recovery is refreshing the quest keys and retrying
// once.
var (
	ErrHexDecode        = errors.New("ciphertext is not valid hex")
	ErrKeyTooShort      = errors.New("key material too short")
	ErrCiphertextLength = errors.New("ciphertext length is not a positive multiple of the block size")
	ErrInvalidPadding   = errors.New("invalid pkcs7 padding")
	ErrInvalidUTF8      = errors.New("decrypted data is not valid utf-8")
	ErrInvalidPart      = errors.New("part must be 1, 2, or 3")
	ErrKeyNotAvailable  = errors.New("key not issued yet")
)
