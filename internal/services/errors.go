// Package services implements the signage core: the screen registry, the
// layout catalog, the image store and the viewer signals. Services return
// sentinel error kinds; controllers translate them with errors.Is. Anything
// that is neither ErrNotFound nor ErrValidation is a storage failure and
// maps to a generic 500.
package services

import "errors"

// ErrNotFound is returned when an operation references a screen id, layout
// id or image filename that does not exist. Handlers should translate this
// into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned for malformed input: bad image refs, empty
// layout names, disallowed MIME types, traversal filenames. Handlers should
// translate this into an HTTP 400 response.
var ErrValidation = errors.New("validation failed")
