package services

import (
	"strings"
	"testing"

	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createPaidableOrder(t *testing.T, db *gorm.DB, userID uint) *OrderOut {
	t.Helper()
	svc := newOrderSvc(db)
	product := seedProduct(t, db, "Chicken Shawarma", 250, true)
	out, err := svc.Create(userID, &CreateOrderReq{
		Items: []OrderItemIn{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	return out
}

func TestProcessCardPayment(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentSvc(db)
	user := seedUser(t, db, "a@test.local")
	order := createPaidableOrder(t, db, user.ID)

	txn, err := svc.Process(user.ID, &ProcessPaymentIn{
		OrderID: order.ID, PaymentMethod: "card", Amount: order.Breakdown.Total,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TxnSuccess, txn.Status)
	assert.True(t, strings.HasPrefix(txn.TxnRef, "TXN-"), "ref %q", txn.TxnRef)

	var reread entity.Order
	require.NoError(t, db.First(&reread, order.ID).Error)
	assert.Equal(t, entity.PaymentPaid, reread.PaymentStatus)
}

func TestProcessCashStaysPending(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentSvc(db)
	user := seedUser(t, db, "a@test.local")
	order := createPaidableOrder(t, db, user.ID)

	txn, err := svc.Process(user.ID, &ProcessPaymentIn{
		OrderID: order.ID, PaymentMethod: "cash", Amount: order.Breakdown.Total,
	})
	require.NoError(t, err)

	// intent accepted, money settles at delivery
	assert.Equal(t, entity.TxnSuccess, txn.Status)

	var reread entity.Order
	require.NoError(t, db.First(&reread, order.ID).Error)
	assert.Equal(t, entity.PaymentPending, reread.PaymentStatus)
}

func TestProcessRejectsDoublePayment(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentSvc(db)
	user := seedUser(t, db, "a@test.local")
	order := createPaidableOrder(t, db, user.ID)

	in := &ProcessPaymentIn{OrderID: order.ID, PaymentMethod: "card", Amount: order.Breakdown.Total}
	_, err := svc.Process(user.ID, in)
	require.NoError(t, err)

	_, err = svc.Process(user.ID, in)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestProcessCashCanRetry(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentSvc(db)
	user := seedUser(t, db, "a@test.local")
	order := createPaidableOrder(t, db, user.ID)

	in := &ProcessPaymentIn{OrderID: order.ID, PaymentMethod: "cash", Amount: order.Breakdown.Total}
	_, err := svc.Process(user.ID, in)
	require.NoError(t, err)

	// cash never marks the order paid, so a retry is not a double payment
	_, err = svc.Process(user.ID, in)
	assert.NoError(t, err)
}

func TestProcessOwnershipScoped(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentSvc(db)
	alice := seedUser(t, db, "alice@test.local")
	bob := seedUser(t, db, "bob@test.local")
	order := createPaidableOrder(t, db, alice.ID)

	_, err := svc.Process(bob.ID, &ProcessPaymentIn{
		OrderID: order.ID, PaymentMethod: "card", Amount: order.Breakdown.Total,
	})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestTxnRefsUnique(t *testing.T) {
	refs := map[string]bool{}
	for i := 0; i < 50; i++ {
		ref := newTxnRef()
		assert.False(t, refs[ref], "duplicate ref %q", ref)
		refs[ref] = true
	}
}
