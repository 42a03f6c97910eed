package controllers

import (
	"testing"

	"github.com/buyolex/buyolex-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderEmailDataCarriesDiscountPercentage(t *testing.T) {
	order := models.Order{
		OrderID:       "ABC123456",
		PaymentStatus: models.PaymentStatusPending,
		Customer:      &models.CustomerProfile{FullName: "Rahim Uddin"},
		Items: []models.OrderItem{
			{
				Quantity:           2,
				Product:            &models.Product{Title: "Premium Cotton Panjabi"},
				DiscountUnitPrice:  decimal.NewFromInt(450),
				TotalPrice:         decimal.NewFromInt(1000),
				DiscountTotalPrice: decimal.NewFromInt(900),
			},
		},
	}

	data := orderEmailData(&order)

	assert.Equal(t, "Rahim Uddin", data.Name)
	assert.Equal(t, "ABC123456", data.OrderCode)
	assert.Equal(t, "1000.00", data.CurrentTotal)
	assert.Equal(t, "900.00", data.DiscountTotal)
	assert.Equal(t, "10.00", data.DiscountPercentage)
	assert.Equal(t, "pending", data.PaymentStatus)
	require.Len(t, data.Items, 1)
	assert.Equal(t, "Premium Cotton Panjabi", data.Items[0].Title)
	assert.Equal(t, 2, data.Items[0].Quantity)
	assert.Equal(t, "450.00", data.Items[0].Price)
}

func TestOrderEmailDataOmitsZeroDiscountPercentage(t *testing.T) {
	order := models.Order{
		OrderID: "XYZ987654",
		Items: []models.OrderItem{
			{
				Quantity:           1,
				DiscountUnitPrice:  decimal.NewFromInt(500),
				TotalPrice:         decimal.NewFromInt(500),
				DiscountTotalPrice: decimal.NewFromInt(500),
			},
		},
	}

	data := orderEmailData(&order)

	// An empty string keeps the template from rendering the savings row.
	assert.Empty(t, data.DiscountPercentage)
	assert.Equal(t, "Item", data.Items[0].Title)
	assert.Empty(t, data.Name)
}
