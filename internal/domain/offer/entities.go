package offer

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("loan offer not found")
	ErrNotOwner = errors.New("loan offer does not belong to this lender")
	ErrInUse    = errors.New("loan offer is referenced by an open loan request")
)

// Offer is a lender's posted loan terms (the "brochure"). It is referenced,
// not owned, by loan requests; while a referencing request is open the offer
// cannot be edited or deleted.
type Offer struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	OfferID  string `gorm:"size:32;uniqueIndex:ux_offers_offer_id" json:"offer_id"`
	LenderID string `gorm:"size:32;index:idx_offers_lender" json:"lender_id"`

	Amount       int     `json:"amount"`
	InterestRate float64 `gorm:"type:decimal(6,2)" json:"interest_rate"`
	TenorDays    int     `json:"tenor_days"`
	Active       bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Offer) TableName() string { return "loan_offers" }
