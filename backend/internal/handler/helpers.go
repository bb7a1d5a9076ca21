package handler

import (
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	jwt_internal "github.com/itchan-dev/forum/shared/jwt"
)

// returned when a protected route is mounted without the auth middleware
var errMissingUser = internal_errors.Authentication(jwt_internal.MissingAuthentication)
