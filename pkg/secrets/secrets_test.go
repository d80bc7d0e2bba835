package secrets_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"urs/pkg/secrets"

	"github.com/stretchr/testify/require"
)

func newTestBox(t *testing.T) *secrets.Box {
	t.Helper()

	key, err := secrets.GenerateKey()
	require.NoError(t, err)

	box, err := secrets.New(key)
	require.NoError(t, err)

	return box
}

func TestBox_RoundTrip(t *testing.T) {
	box := newTestBox(t)

	for _, plain := range []string{"client-id-123", "", "päss wörd", strings.Repeat("x", 4096)} {
		sealed, err := box.Encrypt(plain)
		require.NoError(t, err)
		require.NotEqual(t, plain, sealed)

		opened, err := box.Decrypt(sealed)
		require.NoError(t, err)
		require.Equal(t, plain, opened)
	}
}

func TestBox_NonceVariesPerValue(t *testing.T) {
	box := newTestBox(t)

	a, err := box.Encrypt("same secret")
	require.NoError(t, err)
	b, err := box.Encrypt("same secret")
	require.NoError(t, err)
	require.NotEqual(t, a, b, "two seals of one value must not share a nonce")
}

func TestBox_TamperDetected(t *testing.T) {
	box := newTestBox(t)

	sealed, err := box.Encrypt("secret")
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01
	tampered := base64.RawURLEncoding.EncodeToString(raw)

	_, err = box.Decrypt(tampered)
	require.ErrorIs(t, err, secrets.ErrInvalidCiphertext)
}

func TestBox_WrongKeyRejected(t *testing.T) {
	sealed, err := newTestBox(t).Encrypt("secret")
	require.NoError(t, err)

	_, err = newTestBox(t).Decrypt(sealed)
	require.ErrorIs(t, err, secrets.ErrInvalidCiphertext)
}

func TestNew_AcceptsCommonEncodings(t *testing.T) {
	raw := make([]byte, secrets.KeySize)
	for i := range raw {
		raw[i] = byte(i)
	}

	for _, enc := range []*base64.Encoding{
		base64.StdEncoding, base64.URLEncoding, base64.RawStdEncoding, base64.RawURLEncoding,
	} {
		_, err := secrets.New(enc.EncodeToString(raw))
		require.NoError(t, err)
	}
}

func TestNew_RejectsBadKeys(t *testing.T) {
	_, err := secrets.New("not base64 !!!")
	require.Error(t, err)

	short := base64.RawURLEncoding.EncodeToString([]byte("too short"))
	_, err = secrets.New(short)
	require.Error(t, err)
}
