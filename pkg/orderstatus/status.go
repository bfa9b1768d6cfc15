package orderstatus

// Status is the lifecycle state of a rental order. The numeric values form
// the total order the transition guard compares against.
type Status int

const (
	Reserved Status = iota
	OnRoute
	Delivered
	OnPickUp
	Pending
	Finalized
)

var statusNames = map[Status]string{
	Reserved:  "reserved",
	OnRoute:   "on_route",
	Delivered: "delivered",
	OnPickUp:  "on_pick_up",
	Pending:   "pending",
	Finalized: "finalized",
}

// Statuses lists every status in order of its index.
var Statuses = []Status{Reserved, OnRoute, Delivered, OnPickUp, Pending, Finalized}

// Default is the status every order starts in. It is set on creation and
// never caller-supplied.
func Default() Status {
	return Reserved
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether the status is one of the enumerated states.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// Terminal reports whether the status has no outgoing transitions.
func (s Status) Terminal() bool {
	return s == Finalized
}

// ParseStatus converts a string into a Status, failing closed on unknown
// input.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return 0, ErrUnknownStatus
}
