package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyValidPersonID(t *testing.T) {
	pol := Default()
	testCases := []struct {
		value string
		valid bool
	}{
		{"150001", true},
		{"159999", true},
		{"400001", true},
		{"500001", true},
		{"699999", true},
		{"110001", true},
		{"160000", true},
		{"170001", false},
		{"100001", false},
		{"250001", false},
		{"15001", false},
		{"1500012", false},
		{"abc123", false},
		{"", false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.valid, pol.ValidPersonID(testCase.value), testCase.value)
	}
}

func TestPolicyFloors(t *testing.T) {
	pol := Default()
	assert.False(t, pol.ValidFloor(1))
	assert.True(t, pol.ValidFloor(2))
	assert.True(t, pol.ValidFloor(6))
	assert.False(t, pol.ValidFloor(7))

	assert.True(t, pol.PartnerOnly(2))
	assert.True(t, pol.PartnerOnly(3))
	assert.False(t, pol.PartnerOnly(4))
}

func TestPolicyPartnership(t *testing.T) {
	pol := Default()
	assert.True(t, pol.ValidPartnership(pol.WithPartner))
	assert.True(t, pol.ValidPartnership(pol.WithoutPartner))
	assert.False(t, pol.ValidPartnership("maybe"))

	assert.True(t, pol.RequiresPartner(pol.WithPartner))
	assert.False(t, pol.RequiresPartner(pol.WithoutPartner))
}

func TestFromConfig(t *testing.T) {
	pol, err := FromConfig(nil)
	assert.Nil(t, err)
	assert.Equal(t, Default(), pol)

	pol, err = FromConfig(&Config{MinFloor: 1, MaxFloor: 9, PartnerOnlyFloors: []int{1}})
	assert.Nil(t, err)
	assert.Equal(t, 1, pol.MinFloor)
	assert.Equal(t, 9, pol.MaxFloor)
	assert.Equal(t, []int{1}, pol.PartnerOnlyFloors)
	// Untouched fields inherit the defaults.
	assert.Equal(t, Default().Consent, pol.Consent)
}

func TestPersonIDOverride(t *testing.T) {
	pol, err := FromConfig(&Config{PersonIDPattern: `^9\d{3}$`})
	assert.Nil(t, err)
	assert.True(t, pol.ValidPersonID("9123"))
	assert.False(t, pol.ValidPersonID("150001"))
	// The custom pattern survives a round trip through Config.
	assert.Equal(t, `^9\d{3}$`, ToConfig(pol).PersonIDPattern)

	custom := Default()
	assert.Nil(t, custom.SetPersonID(`^\d{4}$`))
	assert.True(t, custom.ValidPersonID("0001"))

	_, err = FromConfig(&Config{PersonIDPattern: `^(`})
	assert.NotNil(t, err)
}

func TestContext(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))

	custom := Default()
	custom.MaxFloor = 9
	ctx := WithPolicy(context.Background(), custom)
	assert.Same(t, custom, FromContext(ctx))
}
