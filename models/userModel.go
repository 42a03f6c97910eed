package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeCustomer   UserType = "customer"
	UserTypeStaff      UserType = "staff"
	UserTypeAdmin      UserType = "admin"
	UserTypeSuperAdmin UserType = "super_admin"
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeCustomer, UserTypeStaff, UserTypeAdmin, UserTypeSuperAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the user type grants dashboard access.
func (t UserType) IsStaff() bool {
	return t == UserTypeStaff || t == UserTypeAdmin || t == UserTypeSuperAdmin
}

type User struct {
	gorm.Model
	Email                  string   `json:"email" gorm:"size:100;uniqueIndex"`
	FullName               string   `json:"fullName"`
	UserType               UserType `json:"userType" gorm:"size:50;default:customer"`
	Password               string   `json:"password"`
	AccountActivated       bool     `json:"accountActivated"`
	AccountActivationToken string   `json:"-"`
	PasswordResetToken     string   `json:"-"`
}

// AfterCreate mirrors the customer-profile auto-creation signal: every new
// customer account gets an empty profile linked to it.
func (u *User) AfterCreate(tx *gorm.DB) error {
	if u.UserType != UserTypeCustomer {
		return nil
	}
	var count int64
	if err := tx.Model(&CustomerProfile{}).Where("user_id = ?", u.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	profile := CustomerProfile{UserID: &u.ID, FullName: u.FullName}
	return tx.Create(&profile).Error
}

type CustomerProfile struct {
	gorm.Model
	UserID       *uint             `json:"userId"`
	User         *User             `json:"user,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	ProfileUUID  string            `json:"profileUuid" gorm:"size:64;uniqueIndex;<-:create"`
	Phone        string            `json:"phone" gorm:"size:14;index"`
	FullName     string            `json:"fullName"`
	ProfilePhoto string            `json:"profilePhoto"`
	Addresses    []CustomerAddress `json:"addresses" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

func (p *CustomerProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ProfileUUID == "" {
		p.ProfileUUID = strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	return nil
}

type CustomerAddress struct {
	gorm.Model
	CustomerID uint   `json:"customerId" gorm:"index"`
	Address    string `json:"address"`
	Area       string `json:"area"`
	Upazila    string `json:"upazila"`
	District   string `json:"district"`
	Country    string `json:"country" gorm:"default:Bangladesh"`
	PostCode   string `json:"postCode"`
}

// FullAddress joins the populated address parts in delivery order.
func (a *CustomerAddress) FullAddress() string {
	parts := []string{a.Address}
	for _, part := range []string{a.Area, a.Upazila, a.District, a.PostCode} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
