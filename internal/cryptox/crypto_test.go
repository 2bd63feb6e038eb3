package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type payload struct {
	Token   string `json:"token"`
	Trusted bool   `json:"trusted"`
}

func TestDeriveKey_Deterministic(t *testing.T) {
	secret := []byte("secret")
	salt := []byte("salt")

	a := DeriveKey(secret, salt)
	b := DeriveKey(secret, salt)
	require.Equal(t, a, b)
	require.Len(t, a, 32)
}

func TestDeriveKey_SaltMatters(t *testing.T) {
	secret := []byte("secret")
	a := DeriveKey(secret, []byte("salt1"))
	b := DeriveKey(secret, []byte("salt2"))
	require.NotEqual(t, a, b)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveKey([]byte("secret"), []byte("salt"))
	in := payload{Token: "abc123", Trusted: true}

	ct, nonce, err := Seal(in, key)
	require.NoError(t, err)
	require.Len(t, nonce, 12)

	var out payload
	require.NoError(t, Open(ct, nonce, key, &out))
	require.Equal(t, in, out)
}

func TestOpen_WrongKeyFails(t *testing.T) {
	key := DeriveKey([]byte("secret"), []byte("salt"))
	other := DeriveKey([]byte("other"), []byte("salt"))

	ct, nonce, err := Seal(payload{Token: "abc123"}, key)
	require.NoError(t, err)

	var out payload
	require.Error(t, Open(ct, nonce, other, &out))
}

func TestOpen_TamperedCiphertextFails(t *testing.T) {
	key := DeriveKey([]byte("secret"), []byte("salt"))

	ct, nonce, err := Seal(payload{Token: "abc123"}, key)
	require.NoError(t, err)

	ct[0] ^= 0xff

	var out payload
	require.Error(t, Open(ct, nonce, key, &out))
}

func TestSeal_BadKeyLength(t *testing.T) {
	_, _, err := Seal(payload{}, []byte("short"))
	require.Error(t, err)
}
