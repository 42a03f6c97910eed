package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EmailConfigMailType string

const (
	EmailConfigMailTypeInfo    EmailConfigMailType = "info"
	EmailConfigMailTypeNoReply EmailConfigMailType = "no_reply"
	EmailConfigMailTypeContact EmailConfigMailType = "contact"
	EmailConfigMailTypeCareer  EmailConfigMailType = "career"
)

type EmailConfigServerType string

const (
	EmailConfigServerTypeSMTP EmailConfigServerType = "smtp"
	EmailConfigServerTypeAPI  EmailConfigServerType = "api"
)

type EmailConfig struct {
	gorm.Model
	Name         string                `json:"name"`
	Email        string                `json:"email"`
	ReplyTo      string                `json:"replyTo"`
	MailType     EmailConfigMailType   `json:"mailType" gorm:"size:50;index"`
	ServerType   EmailConfigServerType `json:"serverType" gorm:"size:50;default:smtp"`
	Host         string                `json:"host"`
	Port         int                   `json:"port"`
	HostUser     string                `json:"hostUser"`
	HostPassword string                `json:"-"`
	IsActive     bool                  `json:"isActive" gorm:"index"`
}

// ActiveEmailConfig resolves the first active configuration for a mail type.
// Callers look this up once per operation instead of holding a global.
func ActiveEmailConfig(db *gorm.DB, mailType EmailConfigMailType) (*EmailConfig, error) {
	var config EmailConfig
	result := db.Where("mail_type = ? AND is_active = ?", mailType, true).First(&config)
	if result.Error != nil {
		return nil, result.Error
	}
	return &config, nil
}

type MarketingProvider string

const (
	MarketingProviderFacebookPixel MarketingProvider = "facebook_pixel"
	MarketingProviderFacebookCAPI  MarketingProvider = "facebook_capi"
	MarketingProviderGTM           MarketingProvider = "gtm"
	MarketingProviderGA4           MarketingProvider = "ga4"
)

type MarketingIntegration struct {
	gorm.Model
	Provider     MarketingProvider `json:"provider" gorm:"size:64;index"`
	Config       datatypes.JSONMap `json:"config"`
	Status       string            `json:"status" gorm:"size:32;default:inactive"`
	LastTestedAt *time.Time        `json:"lastTestedAt"`
}

// ActiveIntegration resolves the first active integration for a provider.
func ActiveIntegration(db *gorm.DB, provider MarketingProvider) (*MarketingIntegration, error) {
	var integration MarketingIntegration
	result := db.Where("provider = ? AND status = ?", provider, "active").First(&integration)
	if result.Error != nil {
		return nil, result.Error
	}
	return &integration, nil
}

type MarketingEventLog struct {
	gorm.Model
	EventName string            `json:"eventName"`
	Payload   datatypes.JSONMap `json:"payload"`
	Response  datatypes.JSONMap `json:"response"`
	Status    string            `json:"status" gorm:"size:64;default:pending"`
	Attempts  int               `json:"attempts"`
	SentAt    *time.Time        `json:"sentAt"`
}
