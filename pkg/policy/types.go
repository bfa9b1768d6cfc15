package policy

import (
	"github.com/google/uuid"
)

// Action is the operation an actor is attempting on a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionIndex  Action = "index"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"

	// ActionManage matches every other action. It never appears in a
	// request, only inside rules.
	ActionManage Action = "manage"
)

// Resource type names the engine's fixed rule set recognizes.
const (
	TypeAccount  = "account"
	TypeClient   = "client"
	TypePlace    = "place"
	TypeDocument = "document"
	TypeOrder    = "order"
)

// Resource is any domain object the engine can be asked about.
type Resource interface {
	PolicyType() string
}

// Owned is implemented by client-family resources whose lineage traces to a
// client creator. Ownership is what scopes plain users to their own records.
type Owned interface {
	Resource
	OwnerID() uuid.UUID
}

// Account exposes the identity attributes the account rules compare the
// acting actor against.
type Account interface {
	Resource
	AccountID() uuid.UUID
	Elevated() bool
	Main() bool
}

// clientFamily reports whether the type participates in ownership-scoped
// rules rather than attribute-diff rules.
func clientFamily(resourceType string) bool {
	switch resourceType {
	case TypeClient, TypePlace, TypeDocument, TypeOrder:
		return true
	}
	return false
}

// knownType reports whether the engine's rule set covers the type at all.
func knownType(resourceType string) bool {
	return resourceType == TypeAccount || clientFamily(resourceType)
}
