package controllers

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/buyolex/buyolex-api/initializers"
	"github.com/buyolex/buyolex-api/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Known checkout fields; anything else submitted with the order is kept
// verbatim in the order metadata.
var checkoutFields = map[string]bool{
	"product_id":      true,
	"variante":        true,
	"product_price":   true,
	"qty":             true,
	"name":            true,
	"phone":           true,
	"email":           true,
	"address":         true,
	"district":        true,
	"upazila":         true,
	"area":            true,
	"notes":           true,
	"delivery_charge": true,
}

// parseOrderPayload accepts either a JSON body or classic form encoding, the
// same way the storefront posts checkouts.
func parseOrderPayload(ctx *gin.Context) (map[string]any, error) {
	if strings.HasPrefix(ctx.ContentType(), "application/json") {
		var data map[string]any
		if err := ctx.ShouldBindJSON(&data); err != nil {
			return nil, err
		}
		return data, nil
	}

	if err := ctx.Request.ParseForm(); err != nil {
		return nil, err
	}
	data := make(map[string]any, len(ctx.Request.PostForm))
	for key, values := range ctx.Request.PostForm {
		if len(values) > 0 {
			data[key] = values[0]
		}
	}
	return data, nil
}

func payloadString(data map[string]any, key string) string {
	value, ok := data[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		// JSON numbers arrive as float64; keep integral values unpadded.
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// extraMetadata collects the arbitrary personal-information fields that are
// not part of the checkout contract.
func extraMetadata(data map[string]any) datatypes.JSONMap {
	metadata := datatypes.JSONMap{}
	for key, value := range data {
		if !checkoutFields[key] {
			metadata[key] = value
		}
	}
	return metadata
}

// resolveOrderPricing picks the prices a line item is built from. A matched
// variant overrides the parent product for both the regular and the
// discounted price.
func resolveOrderPricing(product *models.Product, variant *models.ProductVariant) (unitPrice, discountPrice decimal.Decimal) {
	if variant != nil {
		return variant.Price, variant.DiscountPrice
	}
	return product.Price, product.DiscountPrice
}

// verifyOrderPrice enforces the price-integrity contract: the submitted price
// must match the authoritative discounted price exactly. Both sides are
// normalized to two decimal places before comparing, so equal monetary values
// in different textual forms still match.
func verifyOrderPrice(submitted string, authoritative decimal.Decimal) error {
	input, err := decimal.NewFromString(submitted)
	if err != nil {
		return fmt.Errorf("invalid product_price %q", submitted)
	}
	if !input.Round(2).Equal(authoritative.Round(2)) {
		return models.ErrPriceMismatch
	}
	return nil
}

func getProductForOrder(productID uint) (*models.Product, error) {
	var product models.Product
	if err := initializers.DB.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func getVariantForOrder(productID uint, sku string) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	err := initializers.DB.Where("product_id = ? AND sku = ?", productID, sku).First(&variant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrVariantNotFound
		}
		return nil, err
	}
	return &variant, nil
}

// getOrCreateCustomer resolves the buyer for a checkout: by account email when
// one was supplied, otherwise by phone number for guest orders.
func getOrCreateCustomer(tx *gorm.DB, name, phone, email string) (*models.CustomerProfile, error) {
	if email != "" {
		var user models.User
		err := tx.Where("email = ?", email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{Email: email, FullName: name, UserType: models.UserTypeCustomer}
			if err := tx.Create(&user).Error; err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}

		var profile models.CustomerProfile
		err = tx.Where("user_id = ?", user.ID).First(&profile).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			profile = models.CustomerProfile{UserID: &user.ID, Phone: phone, FullName: name}
			if err := tx.Create(&profile).Error; err != nil {
				return nil, err
			}
			return &profile, nil
		} else if err != nil {
			return nil, err
		}

		if phone != "" && profile.Phone != phone {
			profile.Phone = phone
			if err := tx.Model(&profile).Update("phone", phone).Error; err != nil {
				return nil, err
			}
		}
		return &profile, nil
	}

	var profile models.CustomerProfile
	err := tx.Where("phone = ?", phone).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.CustomerProfile{Phone: phone, FullName: name}
		if err := tx.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	} else if err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateOrder is the checkout endpoint: it verifies the submitted price
// against the catalog, then creates customer, address, order and line item in
// a single transaction. The confirmation email and marketing event run after
// commit and never fail the order.
func CreateOrder(ctx *gin.Context) {
	data, err := parseOrderPayload(ctx)
	if err != nil {
		log.Println("Checkout payload parse error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	productIDStr := payloadString(data, "product_id")
	if productIDStr == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "product_id is required")
		return
	}
	productID, err := strconv.ParseUint(productIDStr, 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product_id")
		return
	}

	qtyStr := payloadString(data, "qty")
	if qtyStr == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "qty is required")
		return
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil || qty <= 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "qty must be a positive integer")
		return
	}

	name := payloadString(data, "name")
	phone := payloadString(data, "phone")
	if name == "" || phone == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "name and phone are required")
		return
	}

	district := payloadString(data, "district")
	if district == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "district is required")
		return
	}

	addressText := payloadString(data, "address")
	if addressText == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "address is required")
		return
	}

	inputPrice := payloadString(data, "product_price")
	if inputPrice == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "product_price is required")
		return
	}

	email := payloadString(data, "email")
	upazila := payloadString(data, "upazila")
	area := payloadString(data, "area")
	notes := payloadString(data, "notes")
	variantSKU := payloadString(data, "variante")

	// Fetch the catalog rows and verify the submitted price before touching
	// any persistent state.
	product, err := getProductForOrder(uint(productID))
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, err.Error())
		} else {
			log.Println("Product lookup error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	var variant *models.ProductVariant
	if variantSKU != "" {
		variant, err = getVariantForOrder(product.ID, variantSKU)
		if err != nil {
			if errors.Is(err, models.ErrVariantNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, err.Error())
			} else {
				log.Println("Variant lookup error:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			}
			return
		}
	}
	unitPrice, authoritative := resolveOrderPricing(product, variant)

	if err := verifyOrderPrice(inputPrice, authoritative); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	metadata := extraMetadata(data)
	if notes != "" {
		metadata["note"] = notes
	}

	shippingTotal := decimal.Zero
	if charge := payloadString(data, "delivery_charge"); charge != "" {
		shippingTotal, err = decimal.NewFromString(charge)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid delivery_charge")
			return
		}
	}

	var order models.Order
	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		customer, err := getOrCreateCustomer(tx, name, phone, email)
		if err != nil {
			return err
		}

		address := models.CustomerAddress{
			CustomerID: customer.ID,
			Address:    addressText,
			Area:       area,
			Upazila:    upazila,
			District:   district,
		}
		if err := tx.Create(&address).Error; err != nil {
			return err
		}
		metadata["shipping_address"] = address.FullAddress()

		order = models.Order{
			CustomerID:    &customer.ID,
			PaymentStatus: models.PaymentStatusPending,
			OrderStatus:   models.OrderStatusNew,
			DeliveryType:  models.DeliveryTypeCOD,
			ShippingTotal: shippingTotal,
			Metadata:      metadata,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		item := models.OrderItem{
			OrderRef:          order.ID,
			ProductID:         &product.ID,
			Quantity:          qty,
			UnitPrice:         unitPrice,
			DiscountUnitPrice: authoritative,
		}
		if variant != nil {
			item.VariantID = &variant.ID
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		order.Items = []models.OrderItem{item}

		return nil
	})
	if err != nil {
		log.Println("Order creation failed:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	// Best-effort side effects after commit: a failure here must not undo the
	// order.
	if email != "" {
		if err := sendOrderConfirmationEmail(&order, email); err != nil {
			log.Println("Order confirmation email failed:", err)
		}
	}
	sendPurchaseEvent(&order)

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Order Successfully Created!",
		"order_id": order.OrderID,
	})
}

// applyOrderFilters narrows a query by order code and status. The listing and
// its pagination count go through the same filters.
func applyOrderFilters(query *gorm.DB, search, status string) *gorm.DB {
	if search != "" {
		query = query.Where("order_id LIKE ?", "%"+search+"%")
	}
	if status != "" {
		query = query.Where("order_status = ?", status)
	}
	return query
}

// GetOrders lists orders for the dashboard with pagination, code search and
// an optional status filter.
func GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	search := ctx.Query("search")
	status := ctx.Query("status")
	if status != "" && !models.OrderStatus(status).Valid() {
		sendErrorResponse(ctx, http.StatusBadRequest, models.ErrInvalidStatus.Error())
		return
	}

	query := applyOrderFilters(initializers.DB.Preload("Items"), search, status)
	result := query.Order("created_at " + sortOrder).Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	applyOrderFilters(initializers.DB.Model(&models.Order{}), search, status).Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

// GetOrderByID returns the order with its computed monetary aggregates.
func GetOrderByID(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	result := initializers.DB.Preload("Items").Preload("Customer").First(&order, orderID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, models.ErrOrderNotFound.Error())
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"order":               order,
		"item_count":          order.ItemCount(),
		"total_quantity":      order.TotalQuantity(),
		"current_total":       order.CurrentTotal(),
		"discount_total":      order.DiscountTotal(),
		"discount_percentage": order.DiscountPercentage(),
	})
}

func GetOrdersByCustomer(ctx *gin.Context) {
	customerID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse userId")
		return
	}

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var orders []models.Order
	result := initializers.DB.Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at " + sortOrder).
		Find(&orders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

type orderStatusUpdate struct {
	OrderStatus   string `json:"order_status" form:"order_status"`
	PaymentStatus string `json:"payment_status" form:"payment_status"`
	Address       string `json:"address" form:"address"`
	District      string `json:"district" form:"district"`
	DeliveryDate  string `json:"delivery_date" form:"delivery_date"`
}

// UpdateOrderStatus is the administrative status-transition endpoint. Both
// status fields are optional; submitted values only need to belong to the
// recognized enumeration, any legal value may overwrite any other.
func UpdateOrderStatus(ctx *gin.Context) {
	var update orderStatusUpdate
	if err := ctx.ShouldBind(&update); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if update.OrderStatus != "" && !models.OrderStatus(update.OrderStatus).Valid() {
		sendErrorResponse(ctx, http.StatusBadRequest, models.ErrInvalidStatus.Error())
		return
	}
	if update.PaymentStatus != "" && !models.PaymentStatus(update.PaymentStatus).Valid() {
		sendErrorResponse(ctx, http.StatusBadRequest, models.ErrInvalidStatus.Error())
		return
	}

	var deliveryDate *time.Time
	if update.DeliveryDate != "" {
		parsed, err := time.Parse("2006-01-02", update.DeliveryDate)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "delivery_date must be YYYY-MM-DD")
			return
		}
		deliveryDate = &parsed
	}

	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if err := initializers.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, models.ErrOrderNotFound.Error())
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	if update.OrderStatus != "" {
		if err := order.TransitionTo(models.OrderStatus(update.OrderStatus), models.AllowAllTransitions); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
			return
		}
	}
	if update.PaymentStatus != "" {
		if err := order.SetPaymentStatus(models.PaymentStatus(update.PaymentStatus)); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
			return
		}
	}
	if deliveryDate != nil {
		order.DeliveryDate = deliveryDate
	}
	if update.Address != "" || update.District != "" {
		if order.Metadata == nil {
			order.Metadata = datatypes.JSONMap{}
		}
		if update.Address != "" {
			order.Metadata["shipping_address"] = update.Address
		}
		if update.District != "" {
			order.Metadata["shipping_district"] = update.District
		}
	}

	if err := initializers.DB.Save(&order).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to update order status")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated successfully.",
	})
}

func DeleteOrder(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id.")
		return
	}

	if result := initializers.DB.Select("Items").Delete(&models.Order{}, orderID); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to delete order.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Order deleted successfully."})
}

// GetOrderStats feeds the dashboard counters.
func GetOrderStats(ctx *gin.Context) {
	var undelivered int64
	result := initializers.DB.Model(&models.Order{}).
		Where("order_status NOT IN ?", []models.OrderStatus{
			models.OrderStatusDelivered,
			models.OrderStatusCancelled,
			models.OrderStatusReturned,
			models.OrderStatusRefunded,
		}).
		Count(&undelivered)
	if result.Error != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to count undelivered orders")
		return
	}

	var total int64
	initializers.DB.Model(&models.Order{}).Count(&total)

	ctx.JSON(http.StatusOK, gin.H{
		"undeliveredOrderCount": undelivered,
		"totalOrderCount":       total,
	})
}
