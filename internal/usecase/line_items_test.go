package usecase

import (
	"testing"

	"github.com/kaiunruh/coffee-cart/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippingCentsTiers(t *testing.T) {
	cases := []struct {
		units int64
		want  int64
	}{
		{1, 1000},
		{4, 1000},
		{5, 1200},
		{8, 1200},
		{9, 1500},
		{42, 1500},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ShippingCents(tc.units), "units=%d", tc.units)
	}
}

func TestBuildLineItemsShipAppendsShippingLast(t *testing.T) {
	items := []CheckoutItem{
		{PriceID: "price_latte", Quantity: 2, Name: "Latte"},
		{PriceID: "price_espresso", Quantity: 3, Name: "Espresso"},
	}

	out, err := BuildLineItems(items, entity.DeliveryShip)
	require.NoError(t, err)
	require.Len(t, out, 3)

	// product items in cart order
	assert.Equal(t, "price_latte", out[0].PriceID)
	assert.Equal(t, int64(2), out[0].Quantity)
	assert.Equal(t, "price_espresso", out[1].PriceID)
	assert.Equal(t, int64(3), out[1].Quantity)

	// shipping always last, tier for 5 units
	shipping := out[2]
	assert.True(t, shipping.AdHoc())
	assert.Equal(t, "Shipping", shipping.Name)
	assert.Equal(t, "usd", shipping.Currency)
	assert.Equal(t, int64(1), shipping.Quantity)
	assert.Equal(t, int64(1200), shipping.UnitAmountCents)
}

func TestBuildLineItemsPickupHasNoShipping(t *testing.T) {
	for _, qty := range []int64{1, 7, 20} {
		out, err := BuildLineItems([]CheckoutItem{{PriceID: "price_a", Quantity: qty}}, entity.DeliveryPickup)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.False(t, out[0].AdHoc())
	}
}

func TestBuildLineItemsEmptyCart(t *testing.T) {
	_, err := BuildLineItems(nil, entity.DeliveryShip)
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = BuildLineItems([]CheckoutItem{}, entity.DeliveryPickup)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuildLineItemsRejectsMalformedItem(t *testing.T) {
	_, err := BuildLineItems([]CheckoutItem{{PriceID: "", Quantity: 1}}, entity.DeliveryShip)
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = BuildLineItems([]CheckoutItem{{PriceID: "price_a", Quantity: 0}}, entity.DeliveryShip)
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestSummarizeItems(t *testing.T) {
	got := SummarizeItems([]CheckoutItem{
		{PriceID: "p1", Quantity: 2, Name: "Latte"},
		{PriceID: "p2", Quantity: 1, Name: "Espresso"},
		{PriceID: "p3", Quantity: 4}, // unnamed entries are skipped
	})
	assert.Equal(t, "Latte x2, Espresso x1", got)
}
