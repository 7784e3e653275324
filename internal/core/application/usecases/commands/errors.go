package commands

import (
	"errors"

	"eats/internal/pkg/errs"
)

// wrapStorageErr converts unexpected repository failures into
// StorageUnavailableError while letting not-found results pass through
// unchanged, so callers keep their 404 semantics.
func wrapStorageErr(op string, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return err
	}
	return errs.NewStorageUnavailableError(op, err)
}
