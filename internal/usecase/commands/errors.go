package commands

import (
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrItemNotFound    = errs.New("item not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrRequestNotFound = errs.New("item request not found")

	ErrOwnItemBooking    = errs.New("owner cannot book their own item")
	ErrItemUnavailable   = errs.New("item is not available for booking")
	ErrNotItemOwner      = errs.New("item belongs to another user")
	ErrCommentNotAllowed = errs.New("commenting requires a completed rental of the item")
	ErrEmailConflict     = errs.New("email is already in use")
)

func markUserLookup(err error, id uuid.UUID) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Newf("user %s not found", id), ErrUserNotFound)
	}
	return errs.Wrap(err, "failed to load user")
}

func markItemLookup(err error, id uuid.UUID) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Newf("item %s not found", id), ErrItemNotFound)
	}
	return errs.Wrap(err, "failed to load item")
}

func markBookingLookup(err error, id uuid.UUID) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Newf("booking %s not found", id), ErrBookingNotFound)
	}
	return errs.Wrap(err, "failed to load booking")
}
