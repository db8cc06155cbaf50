package contract

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("contract not found")
	ErrNotSignable    = errors.New("contract is not open for signing")
	ErrNotAParty      = errors.New("not a party to this contract")
	ErrAlreadySigned  = errors.New("this party has already signed")
	ErrNotLender      = errors.New("only the lender may perform this action")
	ErrNotReceiver    = errors.New("only the receiver may perform this action")
	ErrNotGuarantor   = errors.New("only the guarantor may perform this action")
	ErrWrongState     = errors.New("contract is not in the required state")
	ErrProofRequired  = errors.New("payment proof and external transaction reference are required")
	ErrNoDisbursement = errors.New("no pending disbursal transaction for this contract")
)

type Status string

// Contract states, forward-only.
const (
	StatusPendingSignatures   Status = "PENDING_SIGNATURES"
	StatusAwaitingDisbursal   Status = "AWAITING_DISBURSAL"
	StatusAwaitingReceipt     Status = "AWAITING_RECEIPT_CONFIRMATION"
	StatusActive              Status = "ACTIVE"
	StatusRepaid              Status = "REPAID"
	StatusDefault             Status = "DEFAULT"
)

// Party identifies which of the three signers an actor is.
type Party string

const (
	PartyReceiver  Party = "receiver"
	PartyGuarantor Party = "guarantor"
	PartyLender    Party = "lender"
)

// Contract is one funded loan. Exactly one exists per loan request, and its
// status never moves backward.
type Contract struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	ContractID string `gorm:"size:32;uniqueIndex:ux_contracts_contract_id" json:"contract_id"`
	RequestID  string `gorm:"size:32;uniqueIndex:ux_contracts_request_id" json:"request_id"`

	LenderID    string `gorm:"size:32;index:idx_contracts_lender" json:"lender_id"`
	ReceiverID  string `gorm:"size:32;index:idx_contracts_receiver" json:"receiver_id"`
	GuarantorID string `gorm:"size:32;index:idx_contracts_guarantor" json:"guarantor_id"`

	Principal    int     `json:"principal"`
	InterestRate float64 `gorm:"type:decimal(6,2)" json:"interest_rate"`
	TenorDays    int     `json:"tenor_days"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	Status Status `gorm:"type:enum('PENDING_SIGNATURES','AWAITING_DISBURSAL','AWAITING_RECEIPT_CONFIRMATION','ACTIVE','REPAID','DEFAULT');default:'PENDING_SIGNATURES';index" json:"status"`

	SignedReceiver  bool `gorm:"default:false" json:"signed_receiver"`
	SignedGuarantor bool `gorm:"default:false" json:"signed_guarantor"`
	SignedLender    bool `gorm:"default:false" json:"signed_lender"`

	DocumentRef string `gorm:"size:255" json:"document_ref"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Contract) TableName() string { return "contracts" }

// PartyOf resolves an actor to their role on this contract, if any.
func (c *Contract) PartyOf(accountID string) (Party, bool) {
	switch accountID {
	case c.ReceiverID:
		return PartyReceiver, true
	case c.GuarantorID:
		return PartyGuarantor, true
	case c.LenderID:
		return PartyLender, true
	}
	return "", false
}

// Signed reports whether the given party has already signed.
func (c *Contract) Signed(p Party) bool {
	switch p {
	case PartyReceiver:
		return c.SignedReceiver
	case PartyGuarantor:
		return c.SignedGuarantor
	case PartyLender:
		return c.SignedLender
	}
	return false
}

// SetSigned flips one party's signature flag.
func (c *Contract) SetSigned(p Party) {
	switch p {
	case PartyReceiver:
		c.SignedReceiver = true
	case PartyGuarantor:
		c.SignedGuarantor = true
	case PartyLender:
		c.SignedLender = true
	}
}

// FullySigned reports whether all three parties have signed.
func (c *Contract) FullySigned() bool {
	return c.SignedReceiver && c.SignedGuarantor && c.SignedLender
}

// Terminal reports whether the contract has reached a final state.
func (c *Contract) Terminal() bool {
	return c.Status == StatusRepaid || c.Status == StatusDefault
}

type TxnStatus string

const (
	TxnDisbursed TxnStatus = "DISBURSED"
	TxnConfirmed TxnStatus = "CONFIRMED"
)

// Transaction is one fund movement tied to a contract. At most one DISBURSED
// row per contract awaits confirmation at any time.
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	TransactionID string    `gorm:"size:32;uniqueIndex:ux_transactions_txn_id" json:"transaction_id"`
	ContractID    string    `gorm:"size:32;index:idx_transactions_contract" json:"contract_id"`
	FromID        string    `gorm:"size:32" json:"from_id"`
	ToID          string    `gorm:"size:32" json:"to_id"`
	Amount        float64   `gorm:"type:decimal(18,2)" json:"amount"`
	Status        TxnStatus `gorm:"type:enum('DISBURSED','CONFIRMED');default:'DISBURSED'" json:"status"`

	ProofRef    string `gorm:"size:255" json:"proof_ref"`
	ExternalRef string `gorm:"size:64" json:"external_ref"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Transaction) TableName() string { return "transactions" }
