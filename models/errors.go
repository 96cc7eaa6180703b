package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// ErrActorNotFound is returned when the actor id attached to a mutation does
// not resolve to a stored user. It wraps NotFoundError so callers get a 404
// without a dedicated branch.
var ErrActorNotFound = errors.Wrap(NotFoundError, "actor user not found")

var ErrDuplicateAssignment = errors.Wrap(ConflictError,
	"an active assignment already exists for this user and group")
