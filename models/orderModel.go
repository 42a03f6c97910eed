package models

import (
	"time"

	"github.com/buyolex/buyolex-api/utils"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusFollowUp  OrderStatus = "follow_up"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusReturned  OrderStatus = "returned"
	OrderStatusRefunded  OrderStatus = "refunded"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusFollowUp, OrderStatusConfirmed,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
		OrderStatusReturned, OrderStatusRefunded:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending          PaymentStatus = "pending"
	PaymentStatusPartial          PaymentStatus = "partial"
	PaymentStatusPaid             PaymentStatus = "paid"
	PaymentStatusRefundProcessing PaymentStatus = "refund_processing"
	PaymentStatusRefund           PaymentStatus = "refund"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid,
		PaymentStatusRefundProcessing, PaymentStatusRefund:
		return true
	}
	return false
}

type DeliveryType string

const (
	DeliveryTypeCOD           DeliveryType = "COD"
	DeliveryTypeOnlinePayment DeliveryType = "online_payment"
	DeliveryTypeDelivery      DeliveryType = "delivery"
	DeliveryTypePickup        DeliveryType = "pickup"
)

func (t DeliveryType) Valid() bool {
	switch t {
	case DeliveryTypeCOD, DeliveryTypeOnlinePayment, DeliveryTypeDelivery, DeliveryTypePickup:
		return true
	}
	return false
}

// TransitionPolicy decides whether an order may move from one status to
// another. Statuses are a flat enumeration in practice, so the default policy
// only checks that the target value is recognized.
type TransitionPolicy func(from, to OrderStatus) error

func AllowAllTransitions(from, to OrderStatus) error {
	if !to.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

type Order struct {
	gorm.Model
	OrderID       string            `json:"orderId" gorm:"size:9;uniqueIndex;<-:create"`
	CustomerID    *uint             `json:"customerId"`
	Customer      *CustomerProfile  `json:"customer,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	PaymentStatus PaymentStatus     `json:"paymentStatus" gorm:"size:50;default:pending"`
	OrderStatus   OrderStatus       `json:"orderStatus" gorm:"size:50;default:new"`
	DeliveryType  DeliveryType      `json:"deliveryType" gorm:"size:50;default:COD"`
	ShippingTotal decimal.Decimal   `json:"shippingTotal" gorm:"type:decimal(12,2)"`
	TaxTotal      decimal.Decimal   `json:"taxTotal" gorm:"type:decimal(12,2)"`
	Metadata      datatypes.JSONMap `json:"metadata"`
	DeliveryDate  *time.Time        `json:"deliveryDate"`
	Items         []OrderItem       `json:"items" gorm:"foreignKey:OrderRef;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the public order code. The code is never regenerated
// afterwards; the unique index on order_id is the safety net when a
// concurrent insert wins the same draw.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderID != "" {
		return nil
	}
	code, err := utils.GenerateOrderCode(func(candidate string) (bool, error) {
		var count int64
		if err := tx.Model(&Order{}).Where("order_id = ?", candidate).Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	})
	if err != nil {
		return err
	}
	o.OrderID = code
	return nil
}

// TransitionTo moves the order status under the given policy. A nil policy
// falls back to AllowAllTransitions.
func (o *Order) TransitionTo(next OrderStatus, policy TransitionPolicy) error {
	if policy == nil {
		policy = AllowAllTransitions
	}
	if err := policy(o.OrderStatus, next); err != nil {
		return err
	}
	o.OrderStatus = next
	return nil
}

func (o *Order) SetPaymentStatus(next PaymentStatus) error {
	if !next.Valid() {
		return ErrInvalidStatus
	}
	o.PaymentStatus = next
	return nil
}

func (o *Order) ItemCount() int {
	return len(o.Items)
}

func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// CurrentTotal sums the non-discounted line totals. It is recomputed from the
// loaded items on every call, never cached.
func (o *Order) CurrentTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.TotalPrice)
	}
	return total
}

func (o *Order) DiscountTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.DiscountTotalPrice)
	}
	return total
}

// DiscountPercentage returns the effective discount as a percentage of the
// current total, rounded to two decimal places (half away from zero). Zero is
// returned when no real discount applies, which keeps the value in [0, 100).
func (o *Order) DiscountPercentage() decimal.Decimal {
	current := o.CurrentTotal()
	discount := o.DiscountTotal()
	if discount.IsZero() || discount.GreaterThanOrEqual(current) {
		return decimal.Zero
	}
	return current.Sub(discount).Div(current).Mul(decimal.NewFromInt(100)).Round(2)
}

type OrderItem struct {
	gorm.Model
	OrderRef           uint            `json:"orderId" gorm:"index"`
	ProductID          *uint           `json:"productId"`
	Product            *Product        `json:"product,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	VariantID          *uint           `json:"variantId"`
	Variant            *ProductVariant `json:"variant,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	Quantity           int             `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unitPrice" gorm:"type:decimal(12,2)"`
	DiscountUnitPrice  decimal.Decimal `json:"discountUnitPrice" gorm:"type:decimal(12,2)"`
	TotalPrice         decimal.Decimal `json:"totalPrice" gorm:"type:decimal(12,2)"`
	DiscountTotalPrice decimal.Decimal `json:"discountTotalPrice" gorm:"type:decimal(12,2)"`
}

// BeforeSave fills in the line totals from quantity and the captured unit
// prices, but only while they are still zero. A persisted non-zero total is a
// snapshot and is left untouched even if quantity changes later.
func (item *OrderItem) BeforeSave(tx *gorm.DB) error {
	qty := decimal.NewFromInt(int64(item.Quantity))
	if item.TotalPrice.IsZero() {
		item.TotalPrice = qty.Mul(item.UnitPrice)
	}
	if item.DiscountTotalPrice.IsZero() {
		item.DiscountTotalPrice = qty.Mul(item.DiscountUnitPrice)
	}
	return nil
}
