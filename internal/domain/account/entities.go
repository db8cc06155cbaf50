package account

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("account not found")
	ErrWrongRole = errors.New("account role does not permit this action")
	ErrBlocked   = errors.New("account is blocked")
)

type Role string

const (
	RoleReceiver Role = "RECEIVER"
	RoleLender   Role = "LENDER"
)

type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusBlocked Status = "BLOCKED"
)

// Account is a platform participant. TrustScore only ever changes through the
// ledger's Apply; EligibleLoanCeiling is derived from TrustScore and must
// never be written independently.
type Account struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	AccountID string `gorm:"size:32;uniqueIndex:ux_accounts_account_id" json:"account_id"`
	Name      string `gorm:"size:128" json:"name"`
	Role      Role   `gorm:"type:enum('RECEIVER','LENDER');default:'RECEIVER'" json:"role"`
	Status    Status `gorm:"type:enum('ACTIVE','BLOCKED');default:'ACTIVE'" json:"status"`

	TrustScore          int `gorm:"default:400" json:"trust_score"`
	EligibleLoanCeiling int `gorm:"default:1000" json:"eligible_loan_ceiling"`

	SuccessfulRepayments int `gorm:"default:0" json:"successful_repayments"`
	Defaults             int `gorm:"default:0" json:"defaults"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Account) TableName() string { return "accounts" }

// ScoreEvent is one append-only row of an account's score history.
type ScoreEvent struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	AccountID string    `gorm:"size:32;index:idx_score_events_account" json:"account_id"`
	Value     int       `json:"value"`
	Delta     int       `json:"delta"`
	Reason    string    `gorm:"size:255" json:"reason"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ScoreEvent) TableName() string { return "score_events" }
