package registry

import "errors"

var (
	// ErrInvalidDescription means card creation was refused because the
	// description is not in the catalog. No entity is produced.
	ErrInvalidDescription = errors.New("invalid card description")

	// ErrUnknownCard and ErrUnknownSlot mean a mutator was handed an
	// identity absent from the registry. That is a caller bug and is
	// surfaced, never swallowed.
	ErrUnknownCard = errors.New("unknown card")
	ErrUnknownSlot = errors.New("unknown slot")

	// ErrDuplicateCard and ErrDuplicateSlot guard the restore path
	// against a save that lists the same identity twice.
	ErrDuplicateCard = errors.New("duplicate card id")
	ErrDuplicateSlot = errors.New("duplicate slot id")
)
