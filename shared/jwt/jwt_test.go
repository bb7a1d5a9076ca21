package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

func TestNewTokenAndDecode(t *testing.T) {
	service := New("test_secret", time.Hour)

	token, err := service.NewToken(domain.User{Id: "user-123", Username: "dicoding"})
	require.NoError(t, err)

	decoded, err := service.DecodeToken(token)
	require.NoError(t, err)
	claims := decoded.Claims.(jwt.MapClaims)
	assert.Equal(t, "user-123", claims["uid"])
	assert.Equal(t, "dicoding", claims["username"])
}

func TestResolveUser(t *testing.T) {
	service := New("test_secret", time.Hour)
	valid, err := service.NewToken(domain.User{Id: "user-123", Username: "dicoding"})
	require.NoError(t, err)
	expired, err := New("test_secret", -time.Hour).NewToken(domain.User{Id: "user-123"})
	require.NoError(t, err)
	foreign, err := New("other_secret", time.Hour).NewToken(domain.User{Id: "user-123"})
	require.NoError(t, err)
	noUid, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": "x"}).SignedString([]byte("test_secret"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		kind   internal_errors.Kind
		userId domain.UserId
	}{
		{name: "Valid bearer", header: "Bearer " + valid, userId: "user-123"},
		{name: "Missing header", header: "", kind: internal_errors.KindAuthentication},
		{name: "Not bearer", header: "Basic abc", kind: internal_errors.KindAuthentication},
		{name: "Empty bearer", header: "Bearer ", kind: internal_errors.KindAuthentication},
		{name: "Garbage token", header: "Bearer not.a.token", kind: internal_errors.KindInvariant},
		{name: "Expired token", header: "Bearer " + expired, kind: internal_errors.KindInvariant},
		{name: "Wrong key", header: "Bearer " + foreign, kind: internal_errors.KindInvariant},
		{name: "Missing uid claim", header: "Bearer " + noUid, kind: internal_errors.KindInvariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userId, err := service.ResolveUserId(tt.header)
			if tt.userId != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.userId, userId)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.kind, internal_errors.KindOf(err))
		})
	}

	t.Run("Username is carried", func(t *testing.T) {
		user, err := service.ResolveUser("Bearer " + valid)
		require.NoError(t, err)
		assert.Equal(t, "dicoding", user.Username)
	})

	t.Run("Messages", func(t *testing.T) {
		_, err := service.ResolveUser("")
		assert.EqualError(t, err, MissingAuthentication)
		_, err = service.ResolveUser("Bearer junk")
		assert.EqualError(t, err, InvalidAccessToken)
	})
}
