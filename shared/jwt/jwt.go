package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
)

const (
	MissingAuthentication = "Missing authentication"
	InvalidAccessToken    = "access token is invalid"
)

type JwtService interface {
	NewToken(user domain.User) (string, error)
	DecodeToken(jwtStr string) (*jwt.Token, error)
	// ResolveUser turns an Authorization header value into the caller.
	ResolveUser(authorizationHeader string) (*domain.User, error)
	ResolveUserId(authorizationHeader string) (domain.UserId, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{}
	claims["uid"] = user.Id
	claims["username"] = user.Username
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("can't create token")
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (*jwt.Token, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		logger.Log.Debug("token rejected", "error", err)
		return nil, internal_errors.Invariant(InvalidAccessToken)
	}

	if !token.Valid {
		return nil, internal_errors.Invariant(InvalidAccessToken)
	}

	return token, nil
}

// ResolveUser fails with Authentication when the header is missing or not a
// Bearer credential, and with Invariant when the token itself is bad.
func (j *Jwt) ResolveUser(authorizationHeader string) (*domain.User, error) {
	tokenString, found := strings.CutPrefix(strings.TrimSpace(authorizationHeader), "Bearer ")
	tokenString = strings.TrimSpace(tokenString)
	if !found || tokenString == "" {
		return nil, internal_errors.Authentication(MissingAuthentication)
	}

	token, err := j.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, internal_errors.Invariant(InvalidAccessToken)
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return nil, internal_errors.Invariant(InvalidAccessToken)
	}
	username, _ := claims["username"].(string)

	return &domain.User{Id: uid, Username: username}, nil
}

func (j *Jwt) ResolveUserId(authorizationHeader string) (domain.UserId, error) {
	user, err := j.ResolveUser(authorizationHeader)
	if err != nil {
		return "", err
	}
	return user.Id, nil
}
