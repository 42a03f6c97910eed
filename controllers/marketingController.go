package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/buyolex/buyolex-api/initializers"
	"github.com/buyolex/buyolex-api/models"
	"github.com/buyolex/buyolex-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// sendOrderConfirmationEmail renders and sends the confirmation mail through
// the active no-reply server. Called after the checkout transaction commits.
func sendOrderConfirmationEmail(order *models.Order, email string) error {
	config, err := models.ActiveEmailConfig(initializers.DB, models.EmailConfigMailTypeNoReply)
	if err != nil {
		return fmt.Errorf("no active no-reply email config: %w", err)
	}
	if config.ServerType != models.EmailConfigServerTypeSMTP {
		return nil
	}

	var full models.Order
	if err := initializers.DB.Preload("Items.Product").Preload("Customer").First(&full, order.ID).Error; err != nil {
		return err
	}

	subject := fmt.Sprintf("Successfully Confirm Your Order #%s!", full.OrderID)
	templatePath := filepath.Join("templates", "order_confirmation.html")
	return utils.SendEmail(smtpServerFromConfig(config), email, subject, orderEmailData(&full), templatePath)
}

// orderEmailData flattens a loaded order into the confirmation template
// fields. The percentage is left empty when no discount applies so the
// template skips the savings row.
func orderEmailData(order *models.Order) utils.OrderEmailData {
	rows := make([]utils.OrderItemEmailRow, 0, len(order.Items))
	for _, item := range order.Items {
		title := "Item"
		if item.Product != nil {
			title = item.Product.Title
		}
		rows = append(rows, utils.OrderItemEmailRow{
			Title:    title,
			Quantity: item.Quantity,
			Price:    item.DiscountUnitPrice.StringFixed(2),
		})
	}

	name := ""
	if order.Customer != nil {
		name = order.Customer.FullName
	}

	discountPercentage := ""
	if pct := order.DiscountPercentage(); !pct.IsZero() {
		discountPercentage = pct.StringFixed(2)
	}

	return utils.OrderEmailData{
		Name:               name,
		OrderCode:          order.OrderID,
		OrderDate:          order.CreatedAt.Format("02 January 2006"),
		CurrentTotal:       order.CurrentTotal().StringFixed(2),
		DiscountTotal:      order.DiscountTotal().StringFixed(2),
		DiscountPercentage: discountPercentage,
		PaymentStatus:      string(order.PaymentStatus),
		Items:              rows,
		Year:               order.CreatedAt.Year(),
	}
}

// sendPurchaseEvent forwards a purchase to the active Facebook Conversion API
// integration and records the attempt. Best effort only: failures are logged
// on the event row, never surfaced to the buyer.
func sendPurchaseEvent(order *models.Order) {
	integration, err := models.ActiveIntegration(initializers.DB, models.MarketingProviderFacebookCAPI)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Marketing integration lookup error:", err)
		}
		return
	}

	pixelID, _ := integration.Config["pixel_id"].(string)
	accessToken, _ := integration.Config["access_token"].(string)
	if pixelID == "" || accessToken == "" {
		log.Println("facebook_capi integration is active but missing pixel_id or access_token")
		return
	}

	payload := map[string]any{
		"data": []map[string]any{{
			"event_name": "Purchase",
			"event_time": time.Now().Unix(),
			"custom_data": map[string]any{
				"currency":  "BDT",
				"value":     order.DiscountTotal().InexactFloat64(),
				"order_id":  order.OrderID,
				"num_items": order.TotalQuantity(),
			},
		}},
	}

	eventLog := models.MarketingEventLog{
		EventName: "Purchase",
		Payload:   datatypes.JSONMap{"order_id": order.OrderID, "pixel_id": pixelID},
		Attempts:  1,
	}

	resp, err := resty.New().SetTimeout(15 * time.Second).
		R().
		SetHeader("Content-Type", "application/json").
		SetQueryParam("access_token", accessToken).
		SetBody(payload).
		Post(fmt.Sprintf("https://graph.facebook.com/v18.0/%s/events", pixelID))

	now := time.Now()
	eventLog.SentAt = &now
	if err != nil {
		eventLog.Status = "failed"
		eventLog.Response = datatypes.JSONMap{"error": err.Error()}
		log.Println("Marketing event dispatch failed:", err)
	} else if resp.StatusCode() != http.StatusOK {
		eventLog.Status = "failed"
		eventLog.Response = datatypes.JSONMap{"status": resp.StatusCode(), "body": string(resp.Body())}
		log.Printf("Marketing event rejected with status %d", resp.StatusCode())
	} else {
		eventLog.Status = "sent"
		eventLog.Response = datatypes.JSONMap{"status": resp.StatusCode()}
	}

	if err := initializers.DB.Create(&eventLog).Error; err != nil {
		log.Println("Failed to record marketing event:", err)
	}
}

// CreateEmailConfig registers a mail server configuration (admin).
func CreateEmailConfig(ctx *gin.Context) {
	var config models.EmailConfig
	if err := ctx.ShouldBindJSON(&config); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := initializers.DB.Create(&config).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create email config", err)
		return
	}

	ctx.JSON(http.StatusCreated, config)
}

// CreateMarketingIntegration registers a marketing provider (admin).
func CreateMarketingIntegration(ctx *gin.Context) {
	var integration models.MarketingIntegration
	if err := ctx.ShouldBindJSON(&integration); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := initializers.DB.Create(&integration).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create marketing integration", err)
		return
	}

	ctx.JSON(http.StatusCreated, integration)
}

// GetMarketingEvents lists recent marketing event logs (admin).
func GetMarketingEvents(ctx *gin.Context) {
	var events []models.MarketingEventLog
	result := initializers.DB.Order("created_at desc").Limit(100).Find(&events)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch marketing events", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"events": events})
}
