package shared

import (
	"context"
	"errors"

	"github.com/Fabri-com/esteticas/internal/infra"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"
)

// ErrOverlap is the reason reported when a requested interval collides with an active appointment.
const ErrOverlap = "requested time overlaps an existing appointment"

// TranslateStorageErr maps repository and transaction failures onto the client-facing taxonomy.
// Errors that already belong to it pass through unchanged.
func TranslateStorageErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errs.IsBusiness(err), errors.Is(err, errs.ErrTransientStorage):
		return err
	case errors.Is(err, context.Canceled):
		return err
	case infra.IsKind(err, infra.KindConflict):
		return errs.NewConflictError(ErrOverlap)
	case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.NewNotFoundError(op, "")
	default:
		return errs.NewTransientStorageError(op, err)
	}
}
