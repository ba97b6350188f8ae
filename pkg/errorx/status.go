package errorx

import "net/http"

// HTTPStatus returns the status code the error is surfaced with.
func (c Code) HTTPStatus() int {
	switch c {
	case NotFound:
		return http.StatusNotFound
	case BadRequest, AlreadyExists, Unavailable:
		return http.StatusBadRequest
	case Unauthenticated, TokenExpired:
		return http.StatusUnauthorized
	case PermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
