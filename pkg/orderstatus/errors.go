package orderstatus

import "errors"

var (
	// ErrUnknownStatus is returned when a value is not one of the
	// enumerated statuses.
	ErrUnknownStatus = errors.New("orderstatus: unknown status")

	// ErrTerminalStatus is returned when a transition starts from the
	// terminal finalized state.
	ErrTerminalStatus = errors.New("orderstatus: finalized is terminal")

	// ErrBackwardTransition is returned when a transition moves to a lower
	// index and the target is not the on_pick_up exception.
	ErrBackwardTransition = errors.New("orderstatus: cannot move backward")
)
