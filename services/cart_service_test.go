package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAdd(t *testing.T) {
	db := newTestDB(t)
	svc := newCartSvc(db)
	user := seedUser(t, db, "a@test.local")
	product := seedProduct(t, db, "Chicken Shawarma", 250, true)

	line, err := svc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "Chicken Shawarma", line.ProductName)

	// zero quantity defaults to one
	line, err = svc.Add(user.ID, &AddToCartIn{ProductID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)

	// identical adds stay separate lines
	lines, _, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestCartAddUnknownOrUnavailable(t *testing.T) {
	db := newTestDB(t)
	svc := newCartSvc(db)
	user := seedUser(t, db, "a@test.local")
	off := seedProduct(t, db, "Sold Out Wrap", 180, false)

	_, err := svc.Add(user.ID, &AddToCartIn{ProductID: 9999, Quantity: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.Add(user.ID, &AddToCartIn{ProductID: off.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrProductUnavail)
}

func TestCartUpdateQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartSvc(db)
	user := seedUser(t, db, "a@test.local")
	product := seedProduct(t, db, "Falafel Roll", 150, true)

	line, err := svc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	out, err := svc.UpdateQuantity(user.ID, line.ID, 3)
	require.NoError(t, err)
	assert.False(t, out.Removed)
	assert.Equal(t, 3, out.Quantity)
	assert.InDelta(t, 450.0, out.LineTotal, 1e-9)
}

func TestCartUpdateQuantityNonPositiveRemoves(t *testing.T) {
	db := newTestDB(t)
	svc := newCartSvc(db)
	user := seedUser(t, db, "a@test.local")
	product := seedProduct(t, db, "Falafel Roll", 150, true)

	for _, qty := range []int{0, -5} {
		line, err := svc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 1})
		require.NoError(t, err)

		out, err := svc.UpdateQuantity(user.ID, line.ID, qty)
		require.NoError(t, err)
		assert.True(t, out.Removed)

		lines, _, err := svc.Get(user.ID)
		require.NoError(t, err)
		assert.Empty(t, lines)
	}
}

func TestCartOwnershipScoping(t *testing.T) {
	db := newTestDB(t)
	svc := newCartSvc(db)
	alice := seedUser(t, db, "alice@test.local")
	bob := seedUser(t, db, "bob@test.local")
	product := seedProduct(t, db, "Beef Shawarma", 280, true)

	line, err := svc.Add(alice.ID, &AddToCartIn{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	// another user's line id behaves like a missing one
	_, err = svc.UpdateQuantity(bob.ID, line.ID, 5)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
	assert.ErrorIs(t, svc.Remove(bob.ID, line.ID), ErrCartItemNotFound)

	lines, _, err := svc.Get(alice.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestCartGetBreakdown(t *testing.T) {
	db := newTestDB(t)
	svc := newCartSvc(db)
	user := seedUser(t, db, "a@test.local")
	product := seedProduct(t, db, "Chicken Shawarma", 250, true)

	_, err := svc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	_, breakdown, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 500.0, breakdown.Subtotal, 1e-9)
	assert.InDelta(t, 717.44, breakdown.Total, 1e-9)
}

func TestCartGetWithAddOns(t *testing.T) {
	db := newTestDB(t)
	svc := newCartSvc(db)
	user := seedUser(t, db, "a@test.local")
	product := seedProduct(t, db, "Chicken Shawarma", 250, true)

	_, err := svc.Add(user.ID, &AddToCartIn{
		ProductID: product.ID,
		Quantity:  1,
		AddOns:    []AddOnIn{{Name: "Extra Garlic Sauce", Price: 30, Quantity: 2}},
	})
	require.NoError(t, err)

	lines, breakdown, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0].AddOns, 1)
	assert.InDelta(t, 310.0, breakdown.Subtotal, 1e-9)
}

func TestCartSkipsDeletedProducts(t *testing.T) {
	db := newTestDB(t)
	svc := newCartSvc(db)
	user := seedUser(t, db, "a@test.local")
	keep := seedProduct(t, db, "Chicken Shawarma", 250, true)
	gone := seedProduct(t, db, "Retired Wrap", 180, true)

	_, err := svc.Add(user.ID, &AddToCartIn{ProductID: keep.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Add(user.ID, &AddToCartIn{ProductID: gone.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, db.Delete(gone).Error)

	lines, breakdown, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.InDelta(t, 250.0, breakdown.Subtotal, 1e-9)
}

func TestCartClear(t *testing.T) {
	db := newTestDB(t)
	svc := newCartSvc(db)
	user := seedUser(t, db, "a@test.local")
	product := seedProduct(t, db, "Chicken Shawarma", 250, true)

	_, err := svc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	require.NoError(t, svc.Clear(user.ID))

	lines, breakdown, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.InDelta(t, 0.0, breakdown.Subtotal, 1e-9)
}
