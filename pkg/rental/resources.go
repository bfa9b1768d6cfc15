package rental

import (
	"time"

	"github.com/google/uuid"

	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/changeset"
	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/identity"
	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/orderstatus"
	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/policy"
)

// Account adapts an identity.Actor into the policy engine's account
// resource, exposing the attributes the account rules compare against.
type Account struct {
	Actor *identity.Actor
}

func (Account) PolicyType() string { return policy.TypeAccount }

func (a Account) AccountID() uuid.UUID {
	if a.Actor == nil {
		return uuid.Nil
	}
	return a.Actor.ID
}

func (a Account) Elevated() bool { return a.Actor.IsElevated() }

func (a Account) Main() bool { return a.Actor.IsMain() }

// Client is the root of the ownership lineage: every place, document, and
// order traces back to the client whose creator owns the records.
type Client struct {
	ID        uuid.UUID
	CreatorID uuid.UUID
	Name      string
	Active    bool
	CreatedAt time.Time
}

func (Client) PolicyType() string { return policy.TypeClient }

func (c Client) OwnerID() uuid.UUID { return c.CreatorID }

// Place is a delivery location belonging to a client.
type Place struct {
	ID      uuid.UUID
	Client  *Client
	Name    string
	Address string
}

func (Place) PolicyType() string { return policy.TypePlace }

func (p Place) OwnerID() uuid.UUID { return lineageOwner(p.Client) }

// Document is a file record attached to a client.
type Document struct {
	ID       uuid.UUID
	Client   *Client
	Title    string
	Filename string
}

func (Document) PolicyType() string { return policy.TypeDocument }

func (d Document) OwnerID() uuid.UUID { return lineageOwner(d.Client) }

// Order is a rental order for a client's place. Its status is mutated only
// through updates validated by the transition guard.
type Order struct {
	ID        uuid.UUID
	Client    *Client
	Place     *Place
	Status    orderstatus.Status
	StartsAt  time.Time
	EndsAt    time.Time
	CreatedAt time.Time
}

func (Order) PolicyType() string { return policy.TypeOrder }

func (o Order) OwnerID() uuid.UUID { return lineageOwner(o.Client) }

// NewOrder creates an order in the default initial status. The caller never
// supplies the starting status.
func NewOrder(client *Client, place *Place) *Order {
	return &Order{
		ID:        uuid.New(),
		Client:    client,
		Place:     place,
		Status:    orderstatus.Default(),
		CreatedAt: time.Now(),
	}
}

// Validate runs the order's save-time checks against a pending write. The
// status transition guard runs here, during the resource's own validation
// step, independent of the policy engine's decision.
func (o *Order) Validate(changes changeset.Set) error {
	return orderstatus.NewGuard().Validate(changes)
}

func lineageOwner(client *Client) uuid.UUID {
	if client == nil {
		return uuid.Nil
	}
	return client.CreatorID
}
