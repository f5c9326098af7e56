package catalog

import (
	"errors"

	"github.com/irsalhamdi/harmoni-music/api/weberr"
	"github.com/irsalhamdi/harmoni-music/validate"
)

// RequestError attaches the HTTP response matching a Store error.
func RequestError(err error, opts ...weberr.Opt) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return weberr.NotFound(err, opts...)
	case errors.Is(err, ErrForbidden):
		return weberr.Forbidden(err, opts...)
	case errors.Is(err, validate.ErrInvalid):
		return weberr.Invalid(err, opts...)
	case errors.Is(err, ErrStorage):
		return weberr.InternalError(err, opts...)
	}
	return err
}
