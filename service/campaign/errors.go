package campaign

import "errors"

var (
	// ErrBelowMinimum ...
	ErrBelowMinimum = errors.New("contribution below minimum")

	// ErrWrongState when the operation is not allowed in the current status
	ErrWrongState = errors.New("wrong campaign state")

	// ErrZeroBalance ...
	ErrZeroBalance = errors.New("participant has zero balance")

	// ErrNotFound ...
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument ...
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientDiscount ...
	ErrInsufficientDiscount = errors.New("insufficient discount")

	// ErrInsufficientValue when the value sent does not match the amount required
	ErrInsufficientValue = errors.New("insufficient value")

	// ErrAlreadyClaimed ...
	ErrAlreadyClaimed = errors.New("already claimed")

	// ErrUnauthorized ...
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConfigurerAlreadySet ...
	ErrConfigurerAlreadySet = errors.New("authorized configurer already set")

	// ErrAlreadyReleased ...
	ErrAlreadyReleased = errors.New("funds already released")

	// ErrNothingPending when there is no deferred owner fee
	ErrNothingPending = errors.New("no pending owner fee")
)
