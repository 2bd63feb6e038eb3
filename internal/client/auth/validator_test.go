package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	exp := time.Now().Add(time.Hour)

	tests := []struct {
		name       string
		token      string
		expiration *time.Time
		want       Lifetime
	}{
		{
			name:  "opaque token without expiration is long-lived",
			token: "abc123",
			want:  LifetimeLongLived,
		},
		{
			name:       "server-reported expiration wins regardless of shape",
			token:      "abc123",
			expiration: &exp,
			want:       LifetimeShortLived,
		},
		{
			name:  "jwt-shaped token is short-lived even without expiration",
			token: "eyJ.xyz.sig",
			want:  LifetimeShortLived,
		},
		{
			name:       "jwt-shaped token with expiration is short-lived",
			token:      "eyJ.xyz.sig",
			expiration: &exp,
			want:       LifetimeShortLived,
		},
		{
			name:  "two segments are not a jwt",
			token: "abc.def",
			want:  LifetimeLongLived,
		},
		{
			name:  "four segments are not a jwt",
			token: "a.b.c.d",
			want:  LifetimeLongLived,
		},
		{
			name:  "empty middle segment is not a jwt",
			token: "a..c",
			want:  LifetimeLongLived,
		},
		{
			name:  "trailing dot is not a jwt",
			token: "a.b.",
			want:  LifetimeLongLived,
		},
		{
			name:  "empty token is long-lived by shape",
			token: "",
			want:  LifetimeLongLived,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.token, tt.expiration))
		})
	}
}

func TestLifetime_String(t *testing.T) {
	require.Equal(t, "long-lived", LifetimeLongLived.String())
	require.Equal(t, "short-lived", LifetimeShortLived.String())
}

func TestExpiryHint_RealJWT(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)

	got, ok := ExpiryHint(signed)
	require.True(t, ok)
	require.True(t, exp.Equal(got))
}

func TestExpiryHint_NoExpClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user"})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)

	_, ok := ExpiryHint(signed)
	require.False(t, ok)
}

func TestExpiryHint_NotAJWT(t *testing.T) {
	_, ok := ExpiryHint("eyJ.xyz.sig")
	require.False(t, ok)

	_, ok = ExpiryHint("abc123")
	require.False(t, ok)
}
