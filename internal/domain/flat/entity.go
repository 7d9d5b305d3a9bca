package flat

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyAddress   = errors.New("flat address cannot be empty")
	ErrAddressTooLong = errors.New("flat address is too long (max 512 characters)")
	ErrMissingOwner   = errors.New("flat owner is required")
)

const MaxAddressLength = 512

// Flat is immutable; its owner never changes.
type Flat struct {
	id            uuid.UUID
	address       string
	ownerTenantID uuid.UUID
}

func NewFlat(address string, ownerTenantID uuid.UUID) (Flat, error) {
	address = strings.TrimSpace(address)
	if err := validateAddress(address); err != nil {
		return Flat{}, err
	}
	if ownerTenantID == uuid.Nil {
		return Flat{}, ErrMissingOwner
	}

	return Flat{
		id:            uuid.New(),
		address:       address,
		ownerTenantID: ownerTenantID,
	}, nil
}

func ReconstructFlat(id uuid.UUID, address string, ownerTenantID uuid.UUID) Flat {
	return Flat{id: id, address: address, ownerTenantID: ownerTenantID}
}

func (f Flat) IsOwnedBy(tenantID uuid.UUID) bool {
	return f.ownerTenantID == tenantID
}

func validateAddress(address string) error {
	if address == "" {
		return ErrEmptyAddress
	}
	if len(address) > MaxAddressLength {
		return ErrAddressTooLong
	}
	return nil
}

func (f Flat) ID() uuid.UUID            { return f.id }
func (f Flat) Address() string          { return f.address }
func (f Flat) OwnerTenantID() uuid.UUID { return f.ownerTenantID }
