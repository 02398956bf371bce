package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JagadeshSrinivasan01/playwright01/internal/money"
)

func TestItemByName(t *testing.T) {
	for _, want := range AllItems() {
		got, err := ItemByName(want.Name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NotEmpty(t, got.Slug)
		assert.Greater(t, got.Price, 0.0)
	}
}

func TestItemByNameUnknown(t *testing.T) {
	_, err := ItemByName("Sauce Labs Teleporter")
	require.ErrorIs(t, err, ErrUnknownItem)
}

func TestAllItemNamesMatchCatalog(t *testing.T) {
	names := AllItemNames()
	require.Len(t, names, len(AllItems()))
	for _, name := range names {
		_, err := ItemByName(name)
		assert.NoError(t, err)
	}
}

// The known-catalog prices must add up to the documented subtotal; the
// overview-total scenarios depend on it.
func TestKnownItemPricesSumToExpectedSubtotal(t *testing.T) {
	var prices []float64
	for _, item := range AllItems() {
		prices = append(prices, item.Price)
	}
	assert.True(t, money.Within(55.97, money.Sum(prices), money.Tolerance))
}

func TestRealUsersShareSitePassword(t *testing.T) {
	for _, creds := range []Credentials{StandardUser, LockedOutUser, ProblemUser, PerformanceGlitchUser} {
		assert.Equal(t, Password, creds.Password, "user %s", creds.Username)
	}
	assert.NotEqual(t, Password, InvalidUser.Password)
}

func TestDefaultCheckoutInfoComplete(t *testing.T) {
	info := DefaultCheckoutInfo()
	assert.NotEmpty(t, info.FirstName)
	assert.NotEmpty(t, info.LastName)
	assert.NotEmpty(t, info.PostalCode)
}
