package crypto

import (
	"strings"
	"testing"

	"github.com/guregu/null/v6"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eccli/models"
)

// Fixtures generated out-of-band with openssl (aes-128-cbc, IV = key
// bytes, PKCS#7). testKey is 16 ASCII bytes used directly, not decoded.
const (
	testKey = "0123456789abcdef"

	helloWorldHex = "c1e9b4529aac9793010f4677f6358efe"
	fullBlockHex  = "0b9b15da4b44a0f5151dcfc4c01f35d5bf31b919e3892ddc3b59212d6a7b11e6"
	emptyHex      = "ed47fee0545c3fa7dd070d44b86e98d9"

	sampleKey  = "GuardingTheTowerOfHanoi1"
	sampleText = "Vyrdax,Drakzyph,Fyrryn,Elarzris\n\nR3,L2,R3,L1\n"
	sampleHex  = "0ca7898ed32e1551305fb44276948ef44041616349043d6c54fe172c6e68b97e9c32a58e1188c6980d44d96224e7073e"
)

func TestDecryptKnownVector(t *testing.T) {
	plaintext, err := DecryptString(helloWorldHex, testKey)
	require.NoError(t, err)
	assert.Equal(t, "hello world", plaintext)
}

func TestDecryptExactBlockPlaintext(t *testing.T) {
	// 16-byte plaintext forces a full extra padding block
	plaintext, err := DecryptString(fullBlockHex, testKey)
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef", plaintext)
}

func TestDecryptEmptyPlaintext(t *testing.T) {
	plaintext, err := DecryptString(emptyHex, testKey)
	require.NoError(t, err)
	assert.Equal(t, "", plaintext)
}

func TestEncryptMatchesKnownVector(t *testing.T) {
	// encryption is deterministic because the IV is the key
	ciphertextHex, err := EncryptString("hello world", testKey)
	require.NoError(t, err)
	assert.Equal(t, helloWorldHex, ciphertextHex)
}

func TestRoundTrip(t *testing.T) {
	plaintexts := []string{
		"",
		"a",
		"hello world",
		"exactly 16 bytes",
		"one byte over 16!",
		strings.Repeat("multi-block input data\n", 40),
		"unicode: åäö 🗼 改行\nsecond line",
		string([]byte{0x00, 0x01, 0x02, 0x03}),
	}
	for _, plaintext := range plaintexts {
		ciphertextHex, err := EncryptString(plaintext, testKey)
		require.NoError(t, err)
		decrypted, err := DecryptString(ciphertextHex, testKey)
		require.NoError(t, err, "plaintext %q", plaintext)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestDecryptWrongKeyFailsPadding(t *testing.T) {
	// decrypting a known-good ciphertext with the wrong key must be
	// detected through the padding check, not returned as garbage
	_, err := DecryptString(helloWorldHex, "fedcba9876543210")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPadding)
}

func TestDecryptLongKeyUsesFirst16Bytes(t *testing.T) {
	plaintext, err := DecryptString(sampleHex, sampleKey)
	require.NoError(t, err)
	assert.Equal(t, sampleText, plaintext)

	// same result with the key already cut down to 16 bytes
	plaintext, err = DecryptString(sampleHex, sampleKey[:16])
	require.NoError(t, err)
	assert.Equal(t, sampleText, plaintext)
}

func TestDecryptShortKey(t *testing.T) {
	for _, key := range []string{"", "short", "fifteen-bytes-x"} {
		_, err := DecryptString(helloWorldHex, key)
		require.Error(t, err, "key %q", key)
		assert.ErrorIs(t, err, ErrKeyTooShort)
	}
}

func TestDecryptOddLengthHex(t *testing.T) {
	_, err := DecryptString("abc", testKey)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHexDecode)
}

func TestDecryptNonHexInput(t *testing.T) {
	_, err := DecryptString(strings.Repeat("zz", 16), testKey)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHexDecode)
}

func TestDecryptNonBlockAlignedCiphertext(t *testing.T) {
	// 17 bytes decode fine but are not a block multiple
	_, err := DecryptString(strings.Repeat("ab", 17), testKey)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCiphertextLength)
}

func TestDecryptEmptyCiphertext(t *testing.T) {
	_, err := DecryptString("", testKey)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCiphertextLength)
}

func TestDecryptInvalidUTF8(t *testing.T) {
	ciphertextHex, err := EncryptString(string([]byte{0xff, 0xfe, 0xfd}), testKey)
	require.NoError(t, err)
	_, err = DecryptString(ciphertextHex, testKey)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestDeriveKeyRawBytes(t *testing.T) {
	// a key string that happens to be hex is still used byte-for-byte
	key, err := DeriveKey("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789abcdef"), key)
}

func TestSelectKeyTotality(t *testing.T) {
	keys := &models.QuestKeys{
		Key1: "11111111111111111111",
		Key2: null.StringFrom("22222222222222222222"),
		Key3: null.StringFrom("33333333333333333333"),
	}

	expected := map[int]byte{1: '1', 2: '2', 3: '3'}
	for part, marker := range expected {
		key, err := SelectKey(keys, part)
		require.NoError(t, err, "part %d", part)
		require.Len(t, key, KeySize)
		for _, b := range key {
			assert.Equal(t, marker, b, "part %d selects its own key", part)
		}
	}

	for _, part := range []int{0, -1, 4, 100} {
		_, err := SelectKey(keys, part)
		require.Error(t, err, "part %d", part)
		assert.ErrorIs(t, err, ErrInvalidPart)
	}
}

func TestSelectKeyLockedParts(t *testing.T) {
	keys := &models.QuestKeys{Key1: "11111111111111111111"}

	_, err := SelectKey(keys, 2)
	assert.ErrorIs(t, err, ErrKeyNotAvailable)
	_, err = SelectKey(keys, 3)
	assert.ErrorIs(t, err, ErrKeyNotAvailable)
}

func TestSelectKeyShortKey(t *testing.T) {
	keys := &models.QuestKeys{
		Key1: "fine-key-sixteen-bytes-plus",
		Key2: null.StringFrom("too-short"),
	}

	_, err := SelectKey(keys, 1)
	require.NoError(t, err)

	_, err = SelectKey(keys, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyTooShort)
}

func TestObtainPlaintext(t *testing.T) {
	key, err := DeriveKey(testKey)
	require.NoError(t, err)

	plaintext, err := ObtainPlaintext(func() (string, error) {
		return helloWorldHex, nil
	}, key)
	require.NoError(t, err)
	assert.Equal(t, "hello world", plaintext)
}

func TestObtainPlaintextFetchErrorPassesThrough(t *testing.T) {
	key, _ := DeriveKey(testKey)
	errFetch := errors.New("cdn unreachable")

	_, err := ObtainPlaintext(func() (string, error) {
		return "", errFetch
	}, key)
	require.Error(t, err)
	assert.Equal(t, errFetch, err, "fetch errors must surface unmodified")
}

func TestObtainPlaintextDecryptErrorTagged(t *testing.T) {
	key, _ := DeriveKey(testKey)

	_, err := ObtainPlaintext(func() (string, error) {
		return "abc", nil
	}, key)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHexDecode)
	assert.Contains(t, err.Error(), "decrypt:")
}
