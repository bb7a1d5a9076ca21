package middleware

import (
	"context"
	"net/http"

	"github.com/itchan-dev/forum/shared/domain"
	jwt_internal "github.com/itchan-dev/forum/shared/jwt"
	"github.com/itchan-dev/forum/shared/utils"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

const accessTokenCookie = "accessToken"

type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth resolves the caller once per request and rejects the request
// before it reaches the handler if that fails.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.jwtService.ResolveUser(authorizationHeader(r))
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authorizationHeader prefers the Authorization header and falls back to the access token cookie.
func authorizationHeader(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		return header
	}
	if cookie, err := r.Cookie(accessTokenCookie); err == nil && cookie.Value != "" {
		return "Bearer " + cookie.Value
	}
	return ""
}

// GetUserFromContext retrieves the user from the context
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
