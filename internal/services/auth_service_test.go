package services

import (
	"testing"

	"food_ordering/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListAddresses(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, nil, 0)

	address, err := svc.CreateAddress(1, CreateAddressRequest{
		Label:   "Home",
		Details: "12 Main St, apartment 4",
		Phone:   "0500000000",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), address.UserID)
	assert.Equal(t, "Home", address.Label)

	_, err = svc.CreateAddress(2, CreateAddressRequest{Details: "another user's place"})
	require.NoError(t, err)

	addresses, err := svc.ListAddresses(1)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, address.ID, addresses[0].ID)
}

func TestCreateAddressRequiresDetails(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, nil, 0)

	_, err := svc.CreateAddress(1, CreateAddressRequest{Label: "Home"})
	assert.ErrorIs(t, err, models.ErrMissingFields)
}
