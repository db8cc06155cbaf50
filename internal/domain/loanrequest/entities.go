package loanrequest

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound               = errors.New("loan request not found")
	ErrDuplicateActiveRequest = errors.New("receiver already has an active loan request")
	ErrInvalidOffer           = errors.New("one or more selected offers are invalid or inactive")
	ErrEligibilityExceeded    = errors.New("selected offer amount exceeds the receiver's eligible ceiling")
	ErrRequestNotPending      = errors.New("loan request is not pending")
	ErrSelfGuarantee          = errors.New("cannot guarantee your own loan")
	ErrNotAnEndorser          = errors.New("guarantor must already be an endorser of the receiver")
	ErrNotAuthorized          = errors.New("not authorized to respond to this guarantor request")
	ErrAlreadyResolved        = errors.New("guarantor request already resolved")
	ErrInvalidState           = errors.New("loan request is not in a state that allows this action")
	ErrNotOwner               = errors.New("no selected offer belongs to this lender")
	ErrDuplicateGuarantorReq  = errors.New("a guarantor request for this pair already exists")
)

type Status string

const (
	StatusPending           Status = "PENDING"
	StatusGuarantorAccepted Status = "GUARANTOR_ACCEPTED"
	StatusContracting       Status = "CONTRACTING"
	StatusCancelled         Status = "CANCELLED"
	StatusFulfilled         Status = "FULFILLED"
)

type GuarantorStatus string

const (
	GuarantorPending  GuarantorStatus = "PENDING"
	GuarantorAccepted GuarantorStatus = "ACCEPTED"
	GuarantorDeclined GuarantorStatus = "DECLINED"
)

// openStatuses are the non-terminal states that count as "active" for the
// one-request-per-receiver rule and for offer edit locking.
func OpenStatuses() []Status {
	return []Status{StatusPending, StatusGuarantorAccepted, StatusContracting}
}

// LoanRequest is a receiver's application against up to three chosen offers.
type LoanRequest struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	RequestID  string `gorm:"size:32;uniqueIndex:ux_loan_requests_request_id" json:"request_id"`
	ReceiverID string `gorm:"size:32;index:idx_loan_requests_receiver" json:"receiver_id"`

	// Up to three chosen offers, stored as a JSON array.
	OfferIDs        []string `gorm:"serializer:json;type:text" json:"offer_ids"`
	SelectedOfferID *string  `gorm:"size:32" json:"selected_offer_id,omitempty"`

	GuarantorID     *string         `gorm:"size:32" json:"guarantor_id,omitempty"`
	GuarantorStatus GuarantorStatus `gorm:"type:enum('PENDING','ACCEPTED','DECLINED');default:'PENDING'" json:"guarantor_status"`

	Status Status `gorm:"type:enum('PENDING','GUARANTOR_ACCEPTED','CONTRACTING','CANCELLED','FULFILLED');default:'PENDING';index" json:"status"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LoanRequest) TableName() string { return "loan_requests" }

// GuarantorRequest is one receiver→guarantor ask for one loan request.
// The pair (guarantor, loan request) is unique.
type GuarantorRequest struct {
	ID                 uint64          `gorm:"primaryKey;column:id" json:"-"`
	GuarantorRequestID string          `gorm:"size:32;uniqueIndex:ux_guarantor_requests_id" json:"guarantor_request_id"`
	RequestID          string          `gorm:"size:32;uniqueIndex:ux_guarantor_requests_pair" json:"request_id"`
	GuarantorID        string          `gorm:"size:32;uniqueIndex:ux_guarantor_requests_pair;index:idx_guarantor_requests_guarantor" json:"guarantor_id"`
	ReceiverID         string          `gorm:"size:32" json:"receiver_id"`
	Status             GuarantorStatus `gorm:"type:enum('PENDING','ACCEPTED','DECLINED');default:'PENDING'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (GuarantorRequest) TableName() string { return "guarantor_requests" }
