package storefront

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func testJWT(t *testing.T, expiry time.Time) string {
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		jwt.MapClaims{
			"exp": expiry.Unix(),
		},
	)
	signed, err := token.SignedString([]byte("itsasecrettoeverybody"))
	require.NoError(t, err)
	return signed
}

func TestStripBearer(t *testing.T) {
	require.Equal(t, "abc", stripBearer("Bearer abc"))
	require.Equal(t, "abc", stripBearer("abc"))
}

func TestTokenExpiry(t *testing.T) {
	expiry := time.Now().Add(20 * time.Minute).Truncate(time.Second)
	extracted, err := TokenExpiry(testJWT(t, expiry))
	require.NoError(t, err)
	require.True(t, extracted.Equal(expiry))
}

func TestTokenExpiryUnparsable(t *testing.T) {
	_, err := TokenExpiry("notajwt")
	require.Error(t, err)
}

func TestTokenExpiryNoClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{})
	signed, err := token.SignedString([]byte("itsasecrettoeverybody"))
	require.NoError(t, err)
	_, err = TokenExpiry(signed)
	require.Error(t, err)
}

func TestTokenStale(t *testing.T) {
	testCases := []struct {
		name        string
		accessToken string
		stale       bool
	}{
		{
			name:        "fresh token",
			accessToken: testJWT(t, time.Now().Add(20*time.Minute)),
			stale:       false,
		},
		{
			name:        "expired token",
			accessToken: testJWT(t, time.Now().Add(-time.Minute)),
			stale:       true,
		},
		{
			name:        "token expiring within the skew",
			accessToken: testJWT(t, time.Now().Add(10*time.Second)),
			stale:       true,
		},
		{
			name:        "unparsable token",
			accessToken: "notajwt",
			stale:       true,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(
				t,
				testCase.stale,
				TokenStale(testCase.accessToken, 30*time.Second),
			)
		})
	}
}
