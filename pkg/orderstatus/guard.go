package orderstatus

import (
	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/changeset"
	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/validator"
)

// Field is the attribute name the guard watches in a change set and scopes
// its rejections to.
const Field = "status"

// Guard validates order status changes against the lifecycle ordering. The
// zero value is ready to use; the guard is a pure function of its inputs.
type Guard struct{}

// NewGuard returns a transition guard.
func NewGuard() Guard {
	return Guard{}
}

// Check decides whether moving from was to is constitutes a legal
// transition:
//
//   - finalized is terminal: every outgoing move is rejected, including to
//     on_pick_up;
//   - a backward move (lower index) is rejected unless the proposed status
//     is on_pick_up, which stays reachable from any non-terminal state;
//   - forward moves, including skips, are accepted.
func (Guard) Check(was, is Status) error {
	if !was.Valid() || !is.Valid() {
		return ErrUnknownStatus
	}

	if was.Terminal() {
		return ErrTerminalStatus
	}

	if is < was && is != OnPickUp {
		return ErrBackwardTransition
	}

	return nil
}

// Validate runs the transition check against a pending write. It is a no-op
// when the status attribute is not part of the change set; a rejection
// surfaces as a validator.ValidationErrors scoped to the status field, so
// the rest of the update is not aborted.
func (g Guard) Validate(changes changeset.Set) error {
	if !changes.Changed(Field) {
		return nil
	}

	change, _ := changes.Get(Field)
	was, ok := statusValue(change.Old)
	if !ok {
		return validator.Apply(validator.Deny(Field, "is not a known status"))
	}
	is, ok := statusValue(change.New)
	if !ok {
		return validator.Apply(validator.Deny(Field, "is not a known status"))
	}

	switch err := g.Check(was, is); err {
	case nil:
		return nil
	case ErrTerminalStatus:
		return validator.Apply(validator.Deny(Field, "cannot leave a finalized order"))
	case ErrBackwardTransition:
		return validator.Apply(validator.Deny(Field, "cannot move backward"))
	default:
		return validator.Apply(validator.Deny(Field, "is not a known status"))
	}
}

// statusValue coerces a change set value into a Status. Change sets carry
// whatever the caller is about to persist, so both the enum and its string
// form are accepted.
func statusValue(v any) (Status, bool) {
	switch value := v.(type) {
	case Status:
		return value, value.Valid()
	case string:
		status, err := ParseStatus(value)
		return status, err == nil
	case int:
		status := Status(value)
		return status, status.Valid()
	}
	return 0, false
}
