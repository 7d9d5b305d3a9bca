//go:build unit

package flat_test

import (
	"strings"
	"testing"

	"flat-reservation/internal/domain/flat"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlat(t *testing.T) {
	owner := uuid.New()

	cases := []struct {
		name    string
		address string
		owner   uuid.UUID
		errIs   error
	}{
		{name: "valid flat OK", address: "1 Main Street", owner: owner},
		{name: "max length address OK", address: strings.Repeat("a", flat.MaxAddressLength), owner: owner},
		{name: "empty address NG", address: "", owner: owner, errIs: flat.ErrEmptyAddress},
		{name: "blank address NG", address: "   ", owner: owner, errIs: flat.ErrEmptyAddress},
		{name: "too long address NG", address: strings.Repeat("a", flat.MaxAddressLength+1), owner: owner, errIs: flat.ErrAddressTooLong},
		{name: "missing owner NG", address: "1 Main Street", owner: uuid.Nil, errIs: flat.ErrMissingOwner},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := flat.NewFlat(tc.address, tc.owner)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, f.ID())
			assert.Equal(t, tc.owner, f.OwnerTenantID())
			assert.True(t, f.IsOwnedBy(owner))
			assert.False(t, f.IsOwnedBy(uuid.New()))
		})
	}
}
