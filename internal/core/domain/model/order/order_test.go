package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItemForOrder(t *testing.T, orderID kernel.UUID, priceAmount, rewardAmount int64) *order.Item {
	t.Helper()
	destination, err := kernel.NewDestination("Kenya", "", "Nairobi")
	require.NoError(t, err)
	price, err := kernel.NewMoney(priceAmount)
	require.NoError(t, err)
	reward, err := kernel.NewMoney(rewardAmount)
	require.NoError(t, err)

	item, err := order.NewItem(
		kernel.NewUUID(), orderID, kernel.NewUUID(),
		destination, time.Now().UTC().AddDate(0, 0, 7), price, reward,
	)
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()

	t.Run("should create order and sum item charges into the total", func(t *testing.T) {
		items := []*order.Item{
			newTestItemForOrder(t, orderID, 5000, 1000),
			newTestItemForOrder(t, orderID, 2000, 500),
		}

		o, err := order.NewOrder(orderID, clientID, "mobile_money", items)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(orderID))
		assert.True(t, o.ClientID().IsEqual(clientID))
		assert.Equal(t, int64(8500), o.TotalAmount().Amount())
		assert.Equal(t, "mobile_money", o.PaymentMethod())
		assert.False(t, o.PaymentProcessed())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := order.NewOrder(orderID, clientID, "mobile_money", nil)

		require.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("should fail without a payment method", func(t *testing.T) {
		items := []*order.Item{newTestItemForOrder(t, orderID, 5000, 1000)}

		_, err := order.NewOrder(orderID, clientID, "", items)

		require.ErrorIs(t, err, order.ErrPaymentMethodIsRequired)
	})

	t.Run("should fail with an unconstructed item", func(t *testing.T) {
		items := []*order.Item{{}}

		_, err := order.NewOrder(orderID, clientID, "mobile_money", items)

		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("should fail with unconstructed identifiers", func(t *testing.T) {
		var badID kernel.UUID
		items := []*order.Item{newTestItemForOrder(t, orderID, 5000, 1000)}

		_, err := order.NewOrder(badID, clientID, "mobile_money", items)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "orderId")
	})
}

func TestOrder_Item(t *testing.T) {
	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	item := newTestItemForOrder(t, orderID, 5000, 1000)
	o, _ := order.NewOrder(orderID, clientID, "card", []*order.Item{item})

	t.Run("should find an owned item by id", func(t *testing.T) {
		found, err := o.Item(item.ID())

		require.NoError(t, err)
		assert.True(t, found.ID().IsEqual(item.ID()))
	})

	t.Run("should return not found for a foreign item id", func(t *testing.T) {
		_, err := o.Item(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_IsOwnedBy(t *testing.T) {
	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	o, _ := order.NewOrder(orderID, clientID, "card",
		[]*order.Item{newTestItemForOrder(t, orderID, 5000, 1000)})

	t.Run("should recognize the placing client", func(t *testing.T) {
		assert.True(t, o.IsOwnedBy(clientID))
	})

	t.Run("should reject any other client", func(t *testing.T) {
		assert.False(t, o.IsOwnedBy(kernel.NewUUID()))
	})
}

func TestOrder_MarkPaymentProcessed(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should flip the flag exactly once", func(t *testing.T) {
		o, _ := order.NewOrder(orderID, kernel.NewUUID(), "card",
			[]*order.Item{newTestItemForOrder(t, orderID, 5000, 1000)})

		require.NoError(t, o.MarkPaymentProcessed())
		assert.True(t, o.PaymentProcessed())

		err := o.MarkPaymentProcessed()

		require.ErrorIs(t, err, order.ErrPaymentAlreadyProcessed)
		assert.True(t, o.PaymentProcessed())
	})
}

func TestRestoreOrder(t *testing.T) {
	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	createdAt := time.Now().UTC().Add(-time.Hour)

	t.Run("should restore order with stored state", func(t *testing.T) {
		items := []*order.Item{newTestItemForOrder(t, orderID, 5000, 1000)}
		total, _ := kernel.NewMoney(6000)

		o, err := order.RestoreOrder(orderID, clientID, "card", items, total, true, createdAt)

		require.NoError(t, err)
		assert.True(t, o.PaymentProcessed())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should reject a stored total that does not match the items", func(t *testing.T) {
		items := []*order.Item{newTestItemForOrder(t, orderID, 5000, 1000)}
		wrongTotal, _ := kernel.NewMoney(9999)

		_, err := order.RestoreOrder(orderID, clientID, "card", items, wrongTotal, false, createdAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "totalAmount")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}
