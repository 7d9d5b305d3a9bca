package tenant

import (
	"github.com/google/uuid"
)

// Tenant is immutable once created. The same type is used for flat owners
// and for tenants reserving slots.
type Tenant struct {
	id    uuid.UUID
	email Email
}

func NewTenant(email Email) Tenant {
	return Tenant{
		id:    uuid.New(),
		email: email,
	}
}

func ReconstructTenant(id uuid.UUID, email Email) Tenant {
	return Tenant{id: id, email: email}
}

func (t Tenant) ID() uuid.UUID { return t.id }
func (t Tenant) Email() Email  { return t.email }
