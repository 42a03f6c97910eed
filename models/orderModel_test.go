package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return d
}

func TestOrderItemBeforeSaveComputesTotals(t *testing.T) {
	item := OrderItem{
		Quantity:          2,
		UnitPrice:         dec(t, "500.00"),
		DiscountUnitPrice: dec(t, "450.00"),
	}

	require.NoError(t, item.BeforeSave(nil))

	assert.True(t, item.TotalPrice.Equal(dec(t, "1000.00")), "got %s", item.TotalPrice)
	assert.True(t, item.DiscountTotalPrice.Equal(dec(t, "900.00")), "got %s", item.DiscountTotalPrice)
}

func TestOrderItemBeforeSaveKeepsPersistedTotals(t *testing.T) {
	item := OrderItem{
		Quantity:           5,
		UnitPrice:          dec(t, "100.00"),
		DiscountUnitPrice:  dec(t, "90.00"),
		TotalPrice:         dec(t, "200.00"),
		DiscountTotalPrice: dec(t, "180.00"),
	}

	require.NoError(t, item.BeforeSave(nil))

	assert.True(t, item.TotalPrice.Equal(dec(t, "200.00")))
	assert.True(t, item.DiscountTotalPrice.Equal(dec(t, "180.00")))
}

func TestOrderAggregates(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{Quantity: 2, TotalPrice: dec(t, "1000.00"), DiscountTotalPrice: dec(t, "900.00")},
			{Quantity: 1, TotalPrice: dec(t, "250.00"), DiscountTotalPrice: dec(t, "225.00")},
		},
	}

	assert.Equal(t, 2, order.ItemCount())
	assert.Equal(t, 3, order.TotalQuantity())
	assert.True(t, order.CurrentTotal().Equal(dec(t, "1250.00")))
	assert.True(t, order.DiscountTotal().Equal(dec(t, "1125.00")))
	assert.True(t, order.DiscountPercentage().Equal(dec(t, "10")), "got %s", order.DiscountPercentage())
}

func TestOrderAggregatesEmpty(t *testing.T) {
	var order Order

	assert.Equal(t, 0, order.ItemCount())
	assert.Equal(t, 0, order.TotalQuantity())
	assert.True(t, order.CurrentTotal().IsZero())
	assert.True(t, order.DiscountTotal().IsZero())
	assert.True(t, order.DiscountPercentage().IsZero())
}

func TestDiscountPercentageRounding(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{Quantity: 1, TotalPrice: dec(t, "300.00"), DiscountTotalPrice: dec(t, "200.00")},
		},
	}

	// 100/300 is a repeating fraction; the percentage rounds to two places.
	assert.Equal(t, "33.33", order.DiscountPercentage().StringFixed(2))
}

func TestDiscountPercentageZeroWhenNoRealDiscount(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		discount string
	}{
		{"no discount recorded", "500.00", "0"},
		{"discount equals total", "500.00", "500.00"},
		{"discount above total", "500.00", "600.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			order := Order{
				Items: []OrderItem{
					{Quantity: 1, TotalPrice: dec(t, tc.total), DiscountTotalPrice: dec(t, tc.discount)},
				},
			}
			assert.True(t, order.DiscountPercentage().IsZero())
		})
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusNew, OrderStatusFollowUp, OrderStatusConfirmed,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
		OrderStatusReturned, OrderStatusRefunded,
	} {
		assert.True(t, s.Valid(), "%s should be valid", s)
	}
	assert.False(t, OrderStatus("archived").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestPaymentStatusValid(t *testing.T) {
	for _, s := range []PaymentStatus{
		PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid,
		PaymentStatusRefundProcessing, PaymentStatusRefund,
	} {
		assert.True(t, s.Valid(), "%s should be valid", s)
	}
	assert.False(t, PaymentStatus("cleared").Valid())
}

func TestDeliveryTypeValid(t *testing.T) {
	assert.True(t, DeliveryTypeCOD.Valid())
	assert.True(t, DeliveryTypeOnlinePayment.Valid())
	assert.False(t, DeliveryType("drone").Valid())
}

func TestTransitionToWithDefaultPolicy(t *testing.T) {
	order := Order{OrderStatus: OrderStatusNew}

	require.NoError(t, order.TransitionTo(OrderStatusConfirmed, nil))
	assert.Equal(t, OrderStatusConfirmed, order.OrderStatus)

	// Flat enumeration: any recognized status may follow any other.
	require.NoError(t, order.TransitionTo(OrderStatusNew, nil))
	assert.Equal(t, OrderStatusNew, order.OrderStatus)
}

func TestTransitionToRejectsUnknownStatus(t *testing.T) {
	order := Order{OrderStatus: OrderStatusNew}

	err := order.TransitionTo(OrderStatus("archived"), nil)
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, OrderStatusNew, order.OrderStatus)
}

func TestTransitionToCustomPolicy(t *testing.T) {
	terminal := func(from, to OrderStatus) error {
		if from == OrderStatusDelivered {
			return ErrInvalidStatus
		}
		return nil
	}

	order := Order{OrderStatus: OrderStatusDelivered}
	assert.ErrorIs(t, order.TransitionTo(OrderStatusCancelled, terminal), ErrInvalidStatus)
	assert.Equal(t, OrderStatusDelivered, order.OrderStatus)
}

func TestSetPaymentStatus(t *testing.T) {
	order := Order{PaymentStatus: PaymentStatusPending}

	require.NoError(t, order.SetPaymentStatus(PaymentStatusPaid))
	assert.Equal(t, PaymentStatusPaid, order.PaymentStatus)

	assert.ErrorIs(t, order.SetPaymentStatus(PaymentStatus("cleared")), ErrInvalidStatus)
	assert.Equal(t, PaymentStatusPaid, order.PaymentStatus)
}
