package queries

import (
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

func markUserLookup(err error, id uuid.UUID) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Newf("user %s not found", id), ErrUserNotFound)
	}
	return errs.Wrap(err, "failed to load user")
}

func markBookingLookup(err error, id uuid.UUID) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Newf("booking %s not found", id), ErrBookingNotFound)
	}
	return errs.Wrap(err, "failed to load booking")
}

func markItemLookup(err error, id uuid.UUID) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Newf("item %s not found", id), ErrItemNotFound)
	}
	return errs.Wrap(err, "failed to load item")
}

func markRequestLookup(err error, id uuid.UUID) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Newf("item request %s not found", id), ErrRequestNotFound)
	}
	return errs.Wrap(err, "failed to load item request")
}
