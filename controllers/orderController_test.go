package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/buyolex/buyolex-api/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestVerifyOrderPrice(t *testing.T) {
	authoritative, err := decimal.NewFromString("500.00")
	require.NoError(t, err)

	assert.NoError(t, verifyOrderPrice("500.00", authoritative))
	assert.NoError(t, verifyOrderPrice("500", authoritative))
	assert.NoError(t, verifyOrderPrice("500.004", authoritative))

	assert.ErrorIs(t, verifyOrderPrice("499.99", authoritative), models.ErrPriceMismatch)
	assert.ErrorIs(t, verifyOrderPrice("89.99", authoritative), models.ErrPriceMismatch)
}

func TestResolveOrderPricingVariantOverridesProduct(t *testing.T) {
	product := &models.Product{
		Price:         decimal.NewFromInt(600),
		DiscountPrice: decimal.NewFromInt(500),
	}
	variant := &models.ProductVariant{
		Price:         decimal.NewFromInt(750),
		DiscountPrice: decimal.NewFromInt(700),
	}

	unitPrice, discountPrice := resolveOrderPricing(product, variant)
	assert.True(t, unitPrice.Equal(variant.Price))
	assert.True(t, discountPrice.Equal(variant.DiscountPrice))

	// The variant's discounted price is the one the submitted price is
	// checked against; the parent product's no longer passes.
	assert.NoError(t, verifyOrderPrice("700.00", discountPrice))
	assert.ErrorIs(t, verifyOrderPrice("500.00", discountPrice), models.ErrPriceMismatch)
}

func TestResolveOrderPricingFallsBackToProduct(t *testing.T) {
	product := &models.Product{
		Price:         decimal.NewFromInt(600),
		DiscountPrice: decimal.NewFromInt(500),
	}

	unitPrice, discountPrice := resolveOrderPricing(product, nil)
	assert.True(t, unitPrice.Equal(product.Price))
	assert.True(t, discountPrice.Equal(product.DiscountPrice))
	assert.NoError(t, verifyOrderPrice("500.00", discountPrice))
}

func TestApplyOrderFiltersMatchesListAndCount(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	var orders []models.Order
	stmt := applyOrderFilters(db.Model(&models.Order{}), "ABC", string(models.OrderStatusConfirmed)).
		Find(&orders).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "order_id LIKE ?")
	assert.Contains(t, sql, "order_status = ?")
	assert.Contains(t, stmt.Vars, "%ABC%")
	assert.Contains(t, stmt.Vars, string(models.OrderStatusConfirmed))
}

func TestApplyOrderFiltersNoFilters(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	var orders []models.Order
	stmt := applyOrderFilters(db.Model(&models.Order{}), "", "").
		Find(&orders).Statement

	sql := stmt.SQL.String()
	assert.NotContains(t, sql, "order_id LIKE")
	assert.NotContains(t, sql, "order_status =")
}

func TestVerifyOrderPriceRejectsMalformedInput(t *testing.T) {
	authoritative := decimal.NewFromInt(100)

	assert.Error(t, verifyOrderPrice("", authoritative))
	assert.Error(t, verifyOrderPrice("abc", authoritative))
	assert.Error(t, verifyOrderPrice("100,00", authoritative))
}

func TestPayloadString(t *testing.T) {
	data := map[string]any{
		"name":    "  Rahim Uddin  ",
		"qty":     float64(2),
		"price":   float64(499.5),
		"missing": nil,
		"boolean": true,
	}

	assert.Equal(t, "Rahim Uddin", payloadString(data, "name"))
	assert.Equal(t, "2", payloadString(data, "qty"))
	assert.Equal(t, "499.5", payloadString(data, "price"))
	assert.Equal(t, "", payloadString(data, "missing"))
	assert.Equal(t, "", payloadString(data, "absent"))
	assert.Equal(t, "true", payloadString(data, "boolean"))
}

func TestExtraMetadata(t *testing.T) {
	data := map[string]any{
		"product_id": "1",
		"qty":        "2",
		"name":       "Rahim",
		"phone":      "01712345678",
		"fbclid":     "abc123",
		"utm_source": "facebook",
	}

	metadata := extraMetadata(data)

	assert.Equal(t, datatypes.JSONMap{
		"fbclid":     "abc123",
		"utm_source": "facebook",
	}, metadata)
}

func performRequest(t *testing.T, handler gin.HandlerFunc, method, body, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	req, err := http.NewRequest(method, "/order", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	ctx.Request = req
	handler(ctx)
	return recorder
}

func TestCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing product_id", `{"qty":"1"}`, "product_id is required"},
		{"bad product_id", `{"product_id":"abc","qty":"1"}`, "Invalid product_id"},
		{"missing qty", `{"product_id":"1"}`, "qty is required"},
		{"zero qty", `{"product_id":"1","qty":"0"}`, "qty must be a positive integer"},
		{"negative qty", `{"product_id":"1","qty":-2}`, "qty must be a positive integer"},
		{"missing contact", `{"product_id":"1","qty":"1"}`, "name and phone are required"},
		{
			"missing district",
			`{"product_id":"1","qty":"1","name":"Rahim","phone":"01712345678"}`,
			"district is required",
		},
		{
			"missing address",
			`{"product_id":"1","qty":"1","name":"Rahim","phone":"01712345678","district":"Dhaka"}`,
			"address is required",
		},
		{
			"missing price",
			`{"product_id":"1","qty":"1","name":"Rahim","phone":"01712345678","district":"Dhaka","address":"House 1, Road 2"}`,
			"product_price is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorder := performRequest(t, CreateOrder, http.MethodPost, tc.body, "application/json")
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tc.want)
		})
	}
}

func TestCreateOrderValidationFormEncoded(t *testing.T) {
	body := "product_id=1&qty=0&name=Rahim&phone=01712345678"
	recorder := performRequest(t, CreateOrder, http.MethodPost, body, "application/x-www-form-urlencoded")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "qty must be a positive integer")
}

func TestCreateOrderRejectsMalformedJSON(t *testing.T) {
	recorder := performRequest(t, CreateOrder, http.MethodPost, `{"product_id":`, "application/json")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid request body")
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	recorder := performRequest(t, UpdateOrderStatus, http.MethodPatch,
		`{"order_status":"archived"}`, "application/json")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), models.ErrInvalidStatus.Error())
}

func TestUpdateOrderStatusRejectsUnknownPaymentStatus(t *testing.T) {
	recorder := performRequest(t, UpdateOrderStatus, http.MethodPatch,
		`{"payment_status":"cleared"}`, "application/json")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), models.ErrInvalidStatus.Error())
}

func TestUpdateOrderStatusRejectsBadDeliveryDate(t *testing.T) {
	recorder := performRequest(t, UpdateOrderStatus, http.MethodPatch,
		`{"order_status":"shipped","delivery_date":"31-12-2026"}`, "application/json")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "delivery_date must be YYYY-MM-DD")
}
