package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserTypeValid(t *testing.T) {
	for _, ut := range []UserType{UserTypeCustomer, UserTypeStaff, UserTypeAdmin, UserTypeSuperAdmin} {
		assert.True(t, ut.Valid(), "%s should be valid", ut)
	}
	assert.False(t, UserType("vendor").Valid())
	assert.False(t, UserType("").Valid())
}

func TestUserTypeIsStaff(t *testing.T) {
	assert.True(t, UserTypeStaff.IsStaff())
	assert.True(t, UserTypeAdmin.IsStaff())
	assert.True(t, UserTypeSuperAdmin.IsStaff())
	assert.False(t, UserTypeCustomer.IsStaff())
}

func TestCustomerAddressFullAddress(t *testing.T) {
	address := CustomerAddress{
		Address:  "House 7, Road 3",
		Area:     "Banani",
		Upazila:  "Gulshan",
		District: "Dhaka",
		PostCode: "1213",
	}
	assert.Equal(t, "House 7, Road 3, Banani, Gulshan, Dhaka, 1213", address.FullAddress())
}

func TestCustomerAddressFullAddressSkipsEmptyParts(t *testing.T) {
	address := CustomerAddress{
		Address:  "Vill: Char Kewar",
		District: "Munshiganj",
	}
	assert.Equal(t, "Vill: Char Kewar, Munshiganj", address.FullAddress())
}
