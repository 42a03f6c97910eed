package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Cart struct {
	gorm.Model
	CustomerID *uint             `json:"customerId"`
	Customer   *CustomerProfile  `json:"customer,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	Token      string            `json:"token" gorm:"size:64;uniqueIndex;<-:create"`
	Totals     datatypes.JSONMap `json:"totals"`
	Items      []CartItem        `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// Guest carts are addressed by token only.
func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.Token == "" {
		c.Token = uuid.NewString()
	}
	return nil
}

type CartItem struct {
	gorm.Model
	CartID        uint              `json:"cartId" gorm:"index"`
	ProductID     uint              `json:"productId"`
	VariantID     *uint             `json:"variantId"`
	Quantity      int               `json:"quantity"`
	PriceSnapshot datatypes.JSONMap `json:"priceSnapshot"`
}
