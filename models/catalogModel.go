package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CategoryStatus string

const (
	CategoryStatusActive   CategoryStatus = "active"
	CategoryStatusDeactive CategoryStatus = "deactive"
	CategoryStatusDelete   CategoryStatus = "delete"
	CategoryStatusDraft    CategoryStatus = "draft"
)

type ProductType string

const (
	ProductTypeSimple   ProductType = "simple"
	ProductTypeVariable ProductType = "variable"
	ProductTypeDigital  ProductType = "digital"
	ProductTypeService  ProductType = "service"
)

type ProductStatus string

const (
	ProductStatusPublished   ProductStatus = "published"
	ProductStatusUnpublished ProductStatus = "unpublished"
	ProductStatusDelete      ProductStatus = "delete"
	ProductStatusDraft       ProductStatus = "draft"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

type MediaRole string

const (
	MediaRolePrimary   MediaRole = "primary"
	MediaRoleGallery   MediaRole = "gallery"
	MediaRoleAttribute MediaRole = "attribute"
	MediaRoleHero      MediaRole = "hero"
)

type Category struct {
	gorm.Model
	Name           string         `json:"name" binding:"required"`
	Slug           string         `json:"slug" gorm:"size:255;uniqueIndex"`
	ParentID       *uint          `json:"parentId"`
	Parent         *Category      `json:"parent,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	Icon           string         `json:"icon"`
	BannerImage    string         `json:"bannerImage"`
	Description    string         `json:"description"`
	SeoTitle       string         `json:"seoTitle"`
	SeoDescription string         `json:"seoDescription"`
	Status         CategoryStatus `json:"status" gorm:"size:50;default:active"`
	SortOrder      int            `json:"sortOrder"`
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	return nil
}

type Brand struct {
	gorm.Model
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" gorm:"size:255;uniqueIndex"`
	Logo string `json:"logo"`
}

func (b *Brand) BeforeSave(tx *gorm.DB) error {
	if b.Slug == "" {
		b.Slug = Slugify(b.Name)
	}
	return nil
}

type Product struct {
	gorm.Model
	UUID             string            `json:"uuid" gorm:"size:64;uniqueIndex;<-:create"`
	Title            string            `json:"title" binding:"required"`
	Slug             string            `json:"slug" gorm:"size:512;uniqueIndex"`
	SKU              string            `json:"sku"`
	Barcode          string            `json:"barcode"`
	ProductType      ProductType       `json:"productType" gorm:"size:50;default:simple"`
	CategoryID       *uint             `json:"categoryId"`
	Category         *Category         `json:"category,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	BrandID          *uint             `json:"brandId"`
	Brand            *Brand            `json:"brand,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	ShortDescription string            `json:"shortDescription"`
	DescriptionHTML  string            `json:"descriptionHtml"`
	Price            decimal.Decimal   `json:"price" gorm:"type:decimal(12,2)"`
	DiscountPrice    decimal.Decimal   `json:"discountPrice" gorm:"type:decimal(12,2)"`
	VideoURL         string            `json:"videoUrl"`
	Seo              datatypes.JSONMap `json:"seo"`
	Tags             datatypes.JSON    `json:"tags"`
	Status           ProductStatus     `json:"status" gorm:"size:50;default:draft"`
	Metadata         datatypes.JSONMap `json:"metadata"`
	Variants         []ProductVariant  `json:"variants" gorm:"constraint:OnDelete:CASCADE"`
	Media            []ProductMedia    `json:"media" gorm:"constraint:OnDelete:CASCADE"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.NewString()
	}
	return nil
}

func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.Slug == "" {
		base := Slugify(p.Title)
		if len(base) > 200 {
			base = base[:200]
		}
		uid := p.UUID
		if uid == "" {
			uid = uuid.NewString()
			p.UUID = uid
		}
		p.Slug = fmt.Sprintf("%s-%s", base, uid[:8])
	}
	return nil
}

type ProductVariant struct {
	gorm.Model
	ProductID         uint              `json:"productId" gorm:"index"`
	SKU               string            `json:"sku" gorm:"size:128;uniqueIndex"`
	Barcode           string            `json:"barcode"`
	Price             decimal.Decimal   `json:"price" gorm:"type:decimal(12,2)"`
	DiscountPrice     decimal.Decimal   `json:"discountPrice" gorm:"type:decimal(12,2)"`
	CostPrice         decimal.Decimal   `json:"costPrice" gorm:"type:decimal(12,2)"`
	InventoryQuantity int               `json:"inventoryQuantity"`
	InventoryPolicy   string            `json:"inventoryPolicy" gorm:"size:50;default:deny"`
	Attributes        datatypes.JSONMap `json:"attributes"`
	IsActive          bool              `json:"isActive" gorm:"default:true"`
}

type ProductMedia struct {
	gorm.Model
	ProductID uint      `json:"productId" gorm:"index"`
	VariantID *uint     `json:"variantId"`
	URL       string    `json:"url" binding:"required"`
	Type      MediaType `json:"type" gorm:"size:20;default:image"`
	Role      MediaRole `json:"role" gorm:"size:20;default:gallery"`
	Position  int       `json:"position"`
}

// Slugify lowercases the value and collapses every run of non-alphanumeric
// characters into a single hyphen.
func Slugify(value string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(value) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
