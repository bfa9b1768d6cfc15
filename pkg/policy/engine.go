package policy

import (
	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/changeset"
	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/identity"
)

// request bundles the inputs a single rule predicate sees.
type request struct {
	actor        *identity.Actor
	action       Action
	resourceType string
	resource     Resource
	changes      changeset.Set
}

// account returns the target as an Account, or nil for type-level checks
// and non-account resources.
func (r request) account() Account {
	if acc, ok := r.resource.(Account); ok {
		return acc
	}
	return nil
}

// owned returns the target as an Owned resource, or nil.
func (r request) owned() Owned {
	if o, ok := r.resource.(Owned); ok {
		return o
	}
	return nil
}

type effect int

const (
	grant effect = iota
	deny
)

// rule pairs an effect with the predicate that triggers it. Rules are
// evaluated in order and the last matching rule wins, which models "broad
// grant, narrow carve-out, explicit override".
type rule struct {
	effect effect
	when   func(request) bool
}

// Engine evaluates the fixed capability rule set of this domain. It is a
// pure function of its inputs and safe for concurrent use.
type Engine struct {
	rules []rule
}

// New creates the engine with the domain's rule set. The rules are fixed,
// not user-configurable.
func New() *Engine {
	return &Engine{rules: []rule{
		// Elevated tier gets broad manage on accounts.
		{grant, func(r request) bool {
			return r.actor.IsElevated() && r.resourceType == TypeAccount
		}},

		// Carve-out: an elevated actor may not escalate or demote its own
		// role.
		{deny, func(r request) bool {
			acc := r.account()
			return r.actor.IsElevated() && !r.actor.IsMain() &&
				r.action == ActionUpdate &&
				acc != nil && acc.AccountID() == r.actor.ID &&
				r.changes.Changed("role")
		}},

		// Carve-out: an elevated actor may not touch other elevated or main
		// accounts.
		{deny, func(r request) bool {
			acc := r.account()
			return r.actor.IsElevated() && !r.actor.IsMain() &&
				r.action == ActionUpdate &&
				acc != nil && acc.AccountID() != r.actor.ID &&
				(acc.Elevated() || acc.Main())
		}},

		// The main actor overrides both carve-outs: unrestricted manage on
		// accounts. Ordered after the denies so it wins.
		{grant, func(r request) bool {
			return r.actor.IsMain() && r.resourceType == TypeAccount
		}},

		// A plain user may read and update its own account, as long as the
		// pending write does not modify the role.
		{grant, func(r request) bool {
			acc := r.account()
			return r.actor.IsPlainUser() &&
				(r.action == ActionRead || r.action == ActionUpdate) &&
				acc != nil && acc.AccountID() == r.actor.ID &&
				!r.changes.Changed("role")
		}},

		// Client-family resources: elevated actors are unrestricted.
		{grant, func(r request) bool {
			return r.actor.IsElevated() && clientFamily(r.resourceType) &&
				(r.action == ActionRead || r.action == ActionIndex ||
					r.action == ActionCreate || r.action == ActionUpdate)
		}},

		// Client-family resources: index and create are type-level; any
		// usable role may hold them, owner scoping happens at persistence.
		{grant, func(r request) bool {
			return clientFamily(r.resourceType) &&
				(r.action == ActionIndex || r.action == ActionCreate)
		}},

		// Client-family resources: instance-level read and update require
		// ownership, traced through the client lineage to its creator.
		{grant, func(r request) bool {
			owned := r.owned()
			return clientFamily(r.resourceType) &&
				(r.action == ActionRead || r.action == ActionUpdate) &&
				owned != nil && owned.OwnerID() == r.actor.ID
		}},
	}}
}

// Can evaluates whether the actor may perform the action on the resource
// given its pending changes. It returns nil when a grant wins, ErrDenied
// when no rule matches or a deny wins, and ErrInvalidActor or
// ErrUnknownResource for malformed references, which indicate a wiring bug
// rather than a policy outcome.
//
// resource may be nil for type-level checks on a not-yet-persisted record;
// pass the resource type explicitly via a typed zero value in that case.
func (e *Engine) Can(actor *identity.Actor, action Action, resource Resource, changes changeset.Set) error {
	if actor == nil {
		return ErrInvalidActor
	}
	if _, err := identity.ParseRole(actor.Role.String()); err != nil {
		return ErrInvalidActor
	}
	if resource == nil {
		return ErrUnknownResource
	}

	resourceType := resource.PolicyType()
	if !knownType(resourceType) {
		return ErrUnknownResource
	}

	req := request{
		actor:        actor,
		action:       action,
		resourceType: resourceType,
		resource:     resource,
		changes:      changes,
	}

	matched := false
	decision := deny
	for _, rl := range e.rules {
		if rl.when(req) {
			matched = true
			decision = rl.effect
		}
	}

	// Denial is the default when no rule matches.
	if !matched || decision == deny {
		return ErrDenied
	}

	return nil
}

// Allowed is a boolean convenience over Can; malformed references also
// report false.
func (e *Engine) Allowed(actor *identity.Actor, action Action, resource Resource, changes changeset.Set) bool {
	return e.Can(actor, action, resource, changes) == nil
}
