package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SiteSettings struct {
	gorm.Model
	SiteName        string            `json:"siteName" gorm:"default:Buyolex"`
	SiteSlogan      string            `json:"siteSlogan"`
	PrimaryLogo     string            `json:"primaryLogo"`
	SecondaryLogo   string            `json:"secondaryLogo"`
	Favicon         string            `json:"favicon"`
	IntroVideo      string            `json:"introVideo"`
	PrimaryColor    string            `json:"primaryColor"`
	Currency        string            `json:"currency" gorm:"size:3;default:BDT"`
	Timezone        string            `json:"timezone" gorm:"size:64;default:UTC"`
	PaymentGateways datatypes.JSONMap `json:"paymentGateways"`
}

type WhyBuyolex struct {
	gorm.Model
	Question string         `json:"question"`
	Header   string         `json:"header"`
	Content  datatypes.JSON `json:"content"`
	Footer   string         `json:"footer"`
}

type DeliveryReturnPolicy struct {
	gorm.Model
	Title   string         `json:"title"`
	Header  string         `json:"header"`
	Content datatypes.JSON `json:"content"`
	Footer  string         `json:"footer"`
}
