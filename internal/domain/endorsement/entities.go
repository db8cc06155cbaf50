package endorsement

import (
	"errors"
	"time"
)

var (
	ErrSelfEndorsement     = errors.New("cannot endorse yourself")
	ErrAlreadyEndorsed     = errors.New("already endorsed this account")
	ErrPermanentlyBlocked  = errors.New("cannot re-endorse after removing a previous endorsement")
	ErrQuotaExceeded       = errors.New("endorsement quota exceeded for the current window")
	ErrNoActiveEndorsement = errors.New("no active endorsement for this pair")
)

type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusRemoved Status = "REMOVED"
)

// Edge is a directed trust relation. Rows are never deleted: removal flips
// the status to REMOVED, which permanently blocks the pair from re-endorsing.
type Edge struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	EndorserID string `gorm:"size:32;uniqueIndex:ux_endorsements_pair;index:idx_endorsements_endorser" json:"endorser_id"`
	ReceiverID string `gorm:"size:32;uniqueIndex:ux_endorsements_pair;index:idx_endorsements_receiver" json:"receiver_id"`
	Status     Status `gorm:"type:enum('ACTIVE','REMOVED');default:'ACTIVE'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Edge) TableName() string { return "endorsements" }
