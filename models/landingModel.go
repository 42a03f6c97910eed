package models

import "gorm.io/gorm"

type LandingHeroType string

const (
	LandingHeroTypeImage LandingHeroType = "image"
	LandingHeroTypeVideo LandingHeroType = "video"
)

type HomePageLandingPage struct {
	gorm.Model
	ProductID                    *uint           `json:"productId"`
	Product                      *Product        `json:"product,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	ProductDetailsSectionTitle   string          `json:"productDetailsSectionTitle"`
	ProductVariationSectionTitle string          `json:"productVariationSectionTitle"`
	WhyBuyolexSectionTitle       string          `json:"whyBuyolexSectionTitle"`
	ReviewSectionTitle           string          `json:"reviewSectionTitle"`
	PolicySectionTitle           string          `json:"policySectionTitle"`
	HeroType                     LandingHeroType `json:"heroType" gorm:"size:20;default:image"`
	IsActive                     bool            `json:"isActive" gorm:"index"`
}

// HeroMedia picks the landing hero from the product media: the first video
// when the page wants a video hero and one exists, otherwise the primary
// image.
func (lp *HomePageLandingPage) HeroMedia() *ProductMedia {
	if lp.Product == nil {
		return nil
	}
	if lp.HeroType == LandingHeroTypeVideo {
		for i := range lp.Product.Media {
			if lp.Product.Media[i].Type == MediaTypeVideo {
				return &lp.Product.Media[i]
			}
		}
	}
	for i := range lp.Product.Media {
		if lp.Product.Media[i].Role == MediaRolePrimary {
			return &lp.Product.Media[i]
		}
	}
	if len(lp.Product.Media) > 0 {
		return &lp.Product.Media[0]
	}
	return nil
}
